package main

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gorilla/mux"

	"github.com/raolivei/canopy/pkg/common"
	"github.com/raolivei/canopy/pkg/formats"
	"github.com/raolivei/canopy/pkg/processor"
)

const maxUploadSize = 32 << 20

type Handler struct {
	processor ImportProcessor
	history   ImportHistory
}

func NewHandler(
	importProcessor ImportProcessor,
	history ImportHistory,
) *Handler {
	return &Handler{
		processor: importProcessor,
		history:   history,
	}
}

func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/api/formats", h.Formats).Methods(http.MethodGet)
	r.HandleFunc("/api/imports/preview", h.Preview).Methods(http.MethodPost)
	r.HandleFunc("/api/imports/{id}/commit", h.Commit).Methods(http.MethodPost)
	r.HandleFunc("/api/imports/{id}/preview", h.DiscardPreview).Methods(http.MethodDelete)
	r.HandleFunc("/api/imports", h.ListImports).Methods(http.MethodGet)
	r.HandleFunc("/api/imports/{id}", h.DeleteImport).Methods(http.MethodDelete)
}

func (h *Handler) Formats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.processor.Formats())
}

func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(err, "expected multipart form"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(err, "missing file"))
		return
	}
	defer func() {
		_ = file.Close()
	}()

	content, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	request := processor.PreviewRequest{
		FileName:        header.Filename,
		FileContent:     content,
		Format:          formats.BankFormat(r.FormValue("format")),
		DefaultCurrency: r.FormValue("default_currency"),
		DefaultAccount:  r.FormValue("default_account"),
		SkipDuplicates:  r.FormValue("skip_duplicates") == "true",
	}

	if val := r.FormValue("skip_rows"); val != "" {
		skipRows, convErr := strconv.Atoi(val)
		if convErr != nil {
			writeError(w, http.StatusBadRequest, errors.Wrap(convErr, "invalid skip_rows"))
			return
		}

		request.SkipRows = skipRows
	}

	if request.DateRangeStart, err = parseDateParam(r.FormValue("date_range_start")); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if request.DateRangeEnd, err = parseDateParam(r.FormValue("date_range_end")); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if val := r.FormValue("mapping"); val != "" {
		var mapping formats.FieldMapping
		if err = json.Unmarshal([]byte(val), &mapping); err != nil {
			writeError(w, http.StatusBadRequest, errors.Wrap(err, "invalid mapping"))
			return
		}

		request.CustomMapping = &mapping
	}

	if val := r.FormValue("type_inference_rules"); val != "" {
		if err = json.Unmarshal([]byte(val), &request.TypeInferenceRules); err != nil {
			writeError(w, http.StatusBadRequest, errors.Wrap(err, "invalid type_inference_rules"))
			return
		}
	}

	resp, err := h.processor.Preview(r.Context(), request)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, common.ErrEmptyFile) || errors.Is(err, common.ErrNoAmountMapping) {
			status = http.StatusBadRequest
		}

		writeError(w, status, err)
		return
	}

	writeJSON(w, http.StatusOK, toPreviewDto(resp))
}

func (h *Handler) Commit(w http.ResponseWriter, r *http.Request) {
	importID := mux.Vars(r)["id"]

	var dto CommitRequestDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, errors.Wrap(err, "invalid request body"))
		return
	}

	result, err := h.processor.Commit(r.Context(), processor.CommitRequest{
		ImportID:       importID,
		SkipDuplicates: dto.SkipDuplicates,
		SkipErrors:     dto.SkipErrors,
		SelectedRows:   dto.SelectedRows,
	})
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, common.ErrPreviewNotFound) {
			status = http.StatusNotFound
		}

		writeError(w, status, err)
		return
	}

	writeJSON(w, http.StatusOK, toResultDto(result))
}

func (h *Handler) DiscardPreview(w http.ResponseWriter, r *http.Request) {
	importID := mux.Vars(r)["id"]

	if err := h.processor.DiscardPreview(importID); err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListImports(w http.ResponseWriter, r *http.Request) {
	if h.history == nil {
		writeError(w, http.StatusNotFound, errors.New("import history is not available"))
		return
	}

	limit := 50
	if val := r.URL.Query().Get("limit"); val != "" {
		parsed, err := strconv.Atoi(val)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, errors.New("invalid limit"))
			return
		}

		limit = parsed
	}

	offset := 0
	if val := r.URL.Query().Get("offset"); val != "" {
		parsed, err := strconv.Atoi(val)
		if err != nil || parsed < 0 {
			writeError(w, http.StatusBadRequest, errors.New("invalid offset"))
			return
		}

		offset = parsed
	}

	summaries, err := h.history.ListImports(r.Context(), limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	dtos := make([]ImportSummaryDto, 0, len(summaries))
	for _, summary := range summaries {
		dtos = append(dtos, ImportSummaryDto{
			ImportID:         summary.ImportID,
			ImportSource:     summary.ImportSource,
			TransactionCount: summary.TransactionCount,
			EarliestDate:     summary.EarliestDate.Format(time.DateOnly),
			LatestDate:       summary.LatestDate.Format(time.DateOnly),
			ImportedAt:       summary.ImportedAt,
		})
	}

	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) DeleteImport(w http.ResponseWriter, r *http.Request) {
	if h.history == nil {
		writeError(w, http.StatusNotFound, errors.New("import history is not available"))
		return
	}

	importID := mux.Vars(r)["id"]

	removed, err := h.history.DeleteImport(r.Context(), importID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	if removed == 0 {
		writeError(w, http.StatusNotFound, errors.Newf("import %s not found", importID))
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{
		"deleted": removed,
	})
}

func parseDateParam(val string) (*time.Time, error) {
	if val == "" {
		return nil, nil
	}

	parsed, err := time.Parse(time.DateOnly, val)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid date %s", val)
	}

	return &parsed, nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{
		"error": err.Error(),
	})
}

package previewstore

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/raolivei/canopy/pkg/importer"
)

// Entry holds one previewed import between the preview and commit calls.
type Entry struct {
	Preview   *importer.ImportPreview
	Config    importer.ImportConfig
	FileName  string
	CreatedAt time.Time
}

// Store keeps previews in memory until they are committed, discarded or
// expire. The core pipeline stays storage-free; retention is this package's
// whole job.
type Store struct {
	mu      sync.RWMutex
	entries map[string]*Entry
	ttl     time.Duration
	janitor *cron.Cron
}

func NewStore(ttl time.Duration) *Store {
	store := &Store{
		entries: map[string]*Entry{},
		ttl:     ttl,
	}

	store.janitor = cron.New()
	_, _ = store.janitor.AddFunc("@every 5m", store.purgeExpired)
	store.janitor.Start()

	return store
}

// Put stores the entry and returns the opaque import identifier the caller
// must present at commit time.
func (s *Store) Put(entry *Entry) string {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[id] = entry

	return id
}

func (s *Store) Get(id string) (*Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[id]

	return entry, ok
}

func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.entries[id]
	delete(s.entries, id)

	return ok
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}

func (s *Store) Stop() {
	s.janitor.Stop()
}

func (s *Store) purgeExpired() {
	cutoff := time.Now().Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	for id, entry := range s.entries {
		if entry.CreatedAt.Before(cutoff) {
			delete(s.entries, id)
		}
	}
}

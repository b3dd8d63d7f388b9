package duplicates

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/raolivei/canopy/pkg/database"
)

// Amounts closer than one cent count as equal.
var tolerance = decimal.New(1, -2)

// Candidate is the slice of a parsed row compared against persisted records.
type Candidate struct {
	Description string
	Amount      decimal.Decimal
	Date        time.Time
}

// Match reports whether the candidate duplicates one of the existing
// transactions: same calendar day, amounts within the tolerance and
// case-insensitively equal descriptions. First match wins; the reason names
// the matched record. The existing set is read-only and never mutated.
//
// The scan is O(candidates x existing), which is fine at statement-export
// scale. Index by (day, rounded cents) before reaching for anything fancier.
func Match(candidate Candidate, existing []database.Transaction) (bool, string) {
	for _, tx := range existing {
		if !candidate.Matches(Candidate{
			Description: tx.Description,
			Amount:      tx.Amount,
			Date:        tx.Date,
		}) {
			continue
		}

		return true, fmt.Sprintf("matches existing transaction %s", tx.ID)
	}

	return false, ""
}

// Matches applies the same predicate to two candidates, for comparing rows of
// one file against each other.
func (c Candidate) Matches(other Candidate) bool {
	if !sameDay(c.Date, other.Date) {
		return false
	}

	if c.Amount.Sub(other.Amount).Abs().GreaterThanOrEqual(tolerance) {
		return false
	}

	return strings.EqualFold(c.Description, other.Description)
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

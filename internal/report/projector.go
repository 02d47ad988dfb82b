package report

import (
	"fmt"

	"github.com/meubolso/backend/internal/models"
	"github.com/meubolso/backend/internal/types"
)

// ProjectRecurring expands recurring transaction templates into their
// occurrences for the given month. Nothing is written to storage, the
// returned transactions are marked as virtual.
//
// The rules are:
//   - Months before the template's own month get no occurrence, a template
//     never recurs retroactively.
//   - The template's own month gets no occurrence either, that one is the
//     stored row itself.
//   - Monthly templates occur in every later month, yearly templates only
//     in later years in the same calendar month.
//   - The day of the month is kept, clamped to the length of the target
//     month. A template from January 31st occurs on February 28th (or 29th).
//
// The ID of an occurrence is derived from the template ID and the month, so
// repeated projections yield identical results and can be diffed by callers.
func ProjectRecurring(transactions []models.Transaction, month types.Month) []models.Transaction {
	var occurrences []models.Transaction

	for _, t := range transactions {
		if !t.IsRecurring || t.Frequency == "" || t.Virtual {
			continue
		}

		origin := types.MonthOf(t.Date)
		if !month.After(origin) {
			continue
		}

		// For yearly templates, month.After(origin) together with the
		// calendar month check implies a strictly later year
		if t.Frequency == models.FrequencyYearly && month.MonthOfYear() != origin.MonthOfYear() {
			continue
		}

		occurrence := t
		occurrence.Date = month.Date(t.Date.UTC().Day())
		occurrence.Virtual = true
		occurrence.VirtualID = fmt.Sprintf("%s_recurring_%s", t.ID, month)

		templateID := t.ID
		occurrence.OriginalTransactionID = &templateID

		occurrences = append(occurrences, occurrence)
	}

	return occurrences
}

// ForMonth returns the stored transactions of the month together with the
// projected occurrences of all recurring templates. This is the transaction
// list a month view displays.
func ForMonth(transactions []models.Transaction, month types.Month) []models.Transaction {
	result := make([]models.Transaction, 0)

	for _, t := range transactions {
		if month.Contains(t.Date) {
			result = append(result, t)
		}
	}

	return append(result, ProjectRecurring(transactions, month)...)
}

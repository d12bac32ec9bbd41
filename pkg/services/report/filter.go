package report

import (
	"github.com/shop-tools/sales-atlas/pkg/models/domain"
)

// FilterPeriod returns the transactions whose date falls inside the window,
// bounds inclusive, comparing calendar days only. The input is never
// mutated; an inverted window yields an empty result.
func FilterPeriod(txs []domain.Transaction, window domain.PeriodWindow) []domain.Transaction {
	filtered := make([]domain.Transaction, 0, len(txs))
	for _, tx := range txs {
		if window.Contains(tx.Date) {
			filtered = append(filtered, tx)
		}
	}
	return filtered
}

package report

import (
	"sort"

	"github.com/shop-tools/sales-atlas/pkg/models/domain"
	"github.com/shopspring/decimal"
)

// Summarize aggregates a filtered transaction table into a SummaryReport.
// Amounts stay exact decimals; display rounding belongs to the renderer.
func Summarize(txs []domain.Transaction, window domain.PeriodWindow, currency string) domain.SummaryReport {
	report := domain.SummaryReport{
		Window:           window,
		Currency:         currency,
		TotalRevenue:     decimal.Zero,
		TransactionCount: len(txs),
		AvgTicket:        decimal.Zero,
	}

	for _, tx := range txs {
		report.TotalRevenue = report.TotalRevenue.Add(tx.Price)
	}
	if report.TransactionCount > 0 {
		report.AvgTicket = report.TotalRevenue.Div(decimal.NewFromInt(int64(report.TransactionCount)))
	}

	report.ByStaff = groupTotals(txs, func(tx domain.Transaction) string { return tx.StaffName })
	report.ByMethod = groupTotals(txs, func(tx domain.Transaction) string { return tx.PaymentMethod })
	report.ByDay = dailyRevenue(txs)

	return report
}

// groupTotals partitions transactions by a non-empty label and orders the
// groups by revenue descending; ties keep first-seen order. Returns nil
// when the label is empty on every row, so callers can tell an unpopulated
// dimension apart from one with zero revenue.
func groupTotals(txs []domain.Transaction, label func(domain.Transaction) string) []domain.GroupTotal {
	index := make(map[string]int)
	var groups []domain.GroupTotal

	for _, tx := range txs {
		key := label(tx)
		if key == "" {
			continue
		}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, domain.GroupTotal{Label: key, Revenue: decimal.Zero})
		}
		groups[i].Revenue = groups[i].Revenue.Add(tx.Price)
		groups[i].Transactions++
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Revenue.GreaterThan(groups[j].Revenue)
	})

	return groups
}

func dailyRevenue(txs []domain.Transaction) []domain.DailyRevenue {
	index := make(map[string]int)
	var days []domain.DailyRevenue

	for _, tx := range txs {
		d := tx.Day()
		key := d.Format("2006-01-02")
		i, ok := index[key]
		if !ok {
			i = len(days)
			index[key] = i
			days = append(days, domain.DailyRevenue{Date: d, Revenue: decimal.Zero})
		}
		days[i].Revenue = days[i].Revenue.Add(tx.Price)
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})

	return days
}

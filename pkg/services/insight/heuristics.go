package insight

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shop-tools/sales-atlas/pkg/models/domain"
	"github.com/shop-tools/sales-atlas/pkg/services/report"
)

// TopPerformer reports the staff member with the highest revenue. Skipped
// when no row carried a staff name.
func TopPerformer(_ []domain.Transaction, summary domain.SummaryReport) (string, bool) {
	if len(summary.ByStaff) == 0 {
		return "", false
	}

	top := summary.ByStaff[0]
	return fmt.Sprintf("Top performer: %s with %s across %d cuts.",
		top.Label,
		report.FormatCurrency(summary.Currency, top.Revenue),
		top.Transactions), true
}

// CashShare compares the revenue of the method labelled exactly "Cash"
// against everything else. It fires whenever either bucket is nonzero, so
// all-card data still reports a 0.0% cash share.
func CashShare(_ []domain.Transaction, summary domain.SummaryReport) (string, bool) {
	if len(summary.ByMethod) == 0 {
		return "", false
	}

	cash := decimal.Zero
	total := decimal.Zero
	for _, method := range summary.ByMethod {
		total = total.Add(method.Revenue)
		if method.Label == "Cash" {
			cash = cash.Add(method.Revenue)
		}
	}
	card := total.Sub(cash)
	if cash.IsZero() && card.IsZero() {
		return "", false
	}

	share := 0.0
	if !total.IsZero() {
		share, _ = cash.Div(total).Mul(decimal.NewFromInt(100)).Float64()
	}
	return fmt.Sprintf("Cash share: %.1f%% (Cash %s vs Card %s).",
		share,
		report.FormatCurrency(summary.Currency, cash),
		report.FormatCurrency(summary.Currency, card)), true
}

// WeekdayTrend compares the mean transaction value across weekdays and
// reports how far the slowest trails the fastest. Ties resolve to the
// earliest weekday in Monday..Sunday order.
func WeekdayTrend(txs []domain.Transaction, _ domain.SummaryReport) (string, bool) {
	if len(txs) == 0 {
		return "", false
	}

	sums := make(map[time.Weekday]decimal.Decimal)
	counts := make(map[time.Weekday]int)
	for _, tx := range txs {
		weekday := tx.Date.Weekday()
		sums[weekday] = sums[weekday].Add(tx.Price)
		counts[weekday]++
	}

	var slowest, fastest time.Weekday
	var minAvg, maxAvg decimal.Decimal
	seen := false
	for offset := 0; offset < 7; offset++ {
		weekday := time.Weekday((int(time.Monday) + offset) % 7)
		count, ok := counts[weekday]
		if !ok {
			continue
		}
		avg := sums[weekday].Div(decimal.NewFromInt(int64(count)))
		if !seen {
			slowest, fastest = weekday, weekday
			minAvg, maxAvg = avg, avg
			seen = true
			continue
		}
		if avg.LessThan(minAvg) {
			slowest, minAvg = weekday, avg
		}
		if avg.GreaterThan(maxAvg) {
			fastest, maxAvg = weekday, avg
		}
	}
	if !seen || maxAvg.Sign() <= 0 {
		return "", false
	}

	drop, _ := decimal.NewFromInt(1).Sub(minAvg.Div(maxAvg)).Mul(decimal.NewFromInt(100)).Float64()
	return fmt.Sprintf("%ss are %.0f%% slower than %ss on average.", slowest, drop, fastest), true
}

package insight

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shop-tools/sales-atlas/pkg/models/domain"
	"github.com/shop-tools/sales-atlas/pkg/services/report"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func tx(date time.Time, price string, staff, method string) domain.Transaction {
	return domain.Transaction{
		Date:          date,
		Price:         decimal.RequireFromString(price),
		StaffName:     staff,
		PaymentMethod: method,
	}
}

func summarize(txs []domain.Transaction) domain.SummaryReport {
	window := domain.PeriodWindow{
		Start: day(2025, time.January, 1),
		End:   day(2025, time.December, 31),
	}
	return report.Summarize(txs, window, domain.DefaultCurrency)
}

func TestDerive_EmptyInputReturnsSentinelOnly(t *testing.T) {
	registry := NewRegistry()

	got := registry.Derive(nil, summarize(nil))

	assert.Equal(t, []string{NoData}, got)
}

func TestDerive_CashShareScenario(t *testing.T) {
	// Two same-day sales by the same staff member, one Cash and one Card.
	txs := []domain.Transaction{
		tx(day(2025, time.January, 7), "10.00", "Sam", "Cash"),
		tx(day(2025, time.January, 7), "15.00", "Sam", "Card"),
	}

	got := NewRegistry().Derive(txs, summarize(txs))

	require.Len(t, got, 3)
	assert.Equal(t, "Top performer: Sam with OMR 25.00 across 2 cuts.", got[0])
	assert.Equal(t, "Cash share: 40.0% (Cash OMR 10.00 vs Card OMR 15.00).", got[1])
}

func TestCashShare_AllCardStillFires(t *testing.T) {
	txs := []domain.Transaction{
		tx(day(2025, time.January, 7), "15.00", "Sam", "Card"),
	}

	observation, ok := CashShare(txs, summarize(txs))

	require.True(t, ok)
	assert.Equal(t, "Cash share: 0.0% (Cash OMR 0.00 vs Card OMR 15.00).", observation)
}

func TestCashShare_SkippedWithoutMethodData(t *testing.T) {
	txs := []domain.Transaction{
		tx(day(2025, time.January, 7), "15.00", "Sam", ""),
	}

	_, ok := CashShare(txs, summarize(txs))

	assert.False(t, ok)
}

func TestTopPerformer_SkippedWithoutStaffData(t *testing.T) {
	txs := []domain.Transaction{
		tx(day(2025, time.January, 7), "15.00", "", "Card"),
	}

	_, ok := TopPerformer(txs, summarize(txs))

	assert.False(t, ok)
}

func TestWeekdayTrend(t *testing.T) {
	// Mondays average 7.50, Fridays 10.00.
	txs := []domain.Transaction{
		tx(day(2025, time.January, 6), "5.00", "Sam", "Cash"),
		tx(day(2025, time.January, 6), "10.00", "Sam", "Cash"),
		tx(day(2025, time.January, 10), "10.00", "Alex", "Card"),
	}

	observation, ok := WeekdayTrend(txs, summarize(txs))

	require.True(t, ok)
	assert.Equal(t, "Mondays are 25% slower than Fridays on average.", observation)
}

func TestWeekdayTrend_SingleWeekday(t *testing.T) {
	txs := []domain.Transaction{
		tx(day(2025, time.January, 6), "10.00", "Sam", "Cash"),
	}

	observation, ok := WeekdayTrend(txs, summarize(txs))

	require.True(t, ok)
	assert.Equal(t, "Mondays are 0% slower than Mondays on average.", observation)
}

func TestWeekdayTrend_SkippedWhenMaxAverageNotPositive(t *testing.T) {
	txs := []domain.Transaction{
		tx(day(2025, time.January, 6), "0.00", "Sam", "Cash"),
		tx(day(2025, time.January, 10), "-5.00", "Alex", "Card"),
	}

	_, ok := WeekdayTrend(txs, summarize(txs))

	assert.False(t, ok)
}

func TestRegistry_RegisterAppends(t *testing.T) {
	registry := NewRegistry()
	err := registry.Register(func([]domain.Transaction, domain.SummaryReport) (string, bool) {
		return "custom observation", true
	})
	require.NoError(t, err)

	txs := []domain.Transaction{
		tx(day(2025, time.January, 7), "10.00", "Sam", "Cash"),
	}
	got := registry.Derive(txs, summarize(txs))

	require.NotEmpty(t, got)
	assert.Equal(t, "custom observation", got[len(got)-1])
}

func TestRegistry_RegisterNil(t *testing.T) {
	assert.Error(t, NewRegistry().Register(nil))
}

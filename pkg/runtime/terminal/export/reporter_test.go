package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shop-tools/sales-atlas/pkg/models/domain"
)

func TestReporter_Handle(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf)

	summary := domain.SummaryReport{
		Window: domain.PeriodWindow{
			Start: time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2025, time.January, 12, 0, 0, 0, 0, time.UTC),
		},
		Currency:         "OMR",
		TotalRevenue:     decimal.RequireFromString("1250.5"),
		TransactionCount: 3,
		AvgTicket:        decimal.RequireFromString("416.833333"),
		ByStaff: []domain.GroupTotal{
			{Label: "Sam", Revenue: decimal.NewFromInt(1000), Transactions: 2},
			{Label: "Alex", Revenue: decimal.RequireFromString("250.5"), Transactions: 1},
		},
		ByMethod: []domain.GroupTotal{
			{Label: "Cash", Revenue: decimal.RequireFromString("1250.5"), Transactions: 3},
		},
		ByDay: []domain.DailyRevenue{
			{Date: time.Date(2025, time.January, 7, 0, 0, 0, 0, time.UTC), Revenue: decimal.RequireFromString("1250.5")},
		},
	}

	err := reporter.Handle(summary, []string{"Top performer: Sam with OMR 1,000.00 across 2 cuts."})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Sales Summary: 2025-01-06 to 2025-01-12")
	assert.Contains(t, out, "Total Revenue: OMR 1,250.50")
	assert.Contains(t, out, "Average Ticket: OMR 416.83")
	assert.Contains(t, out, "=== Revenue by Staff ===")
	assert.Contains(t, out, "OMR 1,000.00")
	assert.Contains(t, out, "=== Daily Revenue ===")
	assert.Contains(t, out, "2025-01-07")
	assert.Contains(t, out, "- Top performer: Sam with OMR 1,000.00 across 2 cuts.")
}

func TestReporter_HandleEmptySummary(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf)

	summary := domain.SummaryReport{
		Window: domain.PeriodWindow{
			Start: time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC),
		},
		Currency: "OMR",
	}

	err := reporter.Handle(summary, []string{"No data in the selected range."})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Total Revenue: OMR 0.00")
	assert.NotContains(t, out, "=== Revenue by Staff ===")
	assert.Contains(t, out, "- No data in the selected range.")
}

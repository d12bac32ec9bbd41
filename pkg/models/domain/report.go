package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GroupTotal is one row of a grouped breakdown table.
type GroupTotal struct {
	Label        string
	Revenue      decimal.Decimal
	Transactions int
}

// DailyRevenue is one point of the per-day revenue series.
type DailyRevenue struct {
	Date    time.Time
	Revenue decimal.Decimal
}

// SummaryReport is the derived, read-only aggregate over a filtered
// transaction table. It is rebuilt on every request and never persisted.
//
// ByStaff and ByMethod are nil when the dimension has no populated value
// anywhere in the input, which distinguishes "no data for this dimension"
// from "data present but zero revenue".
type SummaryReport struct {
	Window           PeriodWindow
	Currency         string
	TotalRevenue     decimal.Decimal
	TransactionCount int
	AvgTicket        decimal.Decimal
	ByStaff          []GroupTotal
	ByMethod         []GroupTotal
	ByDay            []DailyRevenue
}

// ReloadStatus reports the outcome of pulling a source into the session
// cache. RowsDropped counts rows excluded during normalization.
type ReloadStatus struct {
	Source      string
	RowsLoaded  int
	RowsDropped int
	FetchedAt   time.Time
}

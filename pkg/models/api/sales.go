package api

import "time"

// Source is one spreadsheet profile the service can load.
type Source struct {
	Name     string `json:"name"`
	Currency string `json:"currency"`
}

// ReloadStatus reports the outcome of pulling a source into the session cache.
type ReloadStatus struct {
	Source      string    `json:"source"`
	RowsLoaded  int       `json:"rows_loaded"`
	RowsDropped int       `json:"rows_dropped"`
	FetchedAt   time.Time `json:"fetched_at"`
}

// GroupTotal is one row of a grouped breakdown table, revenue descending.
type GroupTotal struct {
	Label        string  `json:"label"`
	Revenue      float64 `json:"revenue"`
	Transactions int     `json:"transactions"`
}

// DailyRevenue is one point of the per-day revenue series. Date is a
// calendar day in 2006-01-02 form.
type DailyRevenue struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

type SummaryReport struct {
	From             string         `json:"from"`
	To               string         `json:"to"`
	Currency         string         `json:"currency"`
	TotalRevenue     float64        `json:"total_revenue"`
	TransactionCount int            `json:"transaction_count"`
	AvgTicket        float64        `json:"avg_ticket"`
	ByStaff          []GroupTotal   `json:"by_staff,omitempty"`
	ByMethod         []GroupTotal   `json:"by_method,omitempty"`
	ByDay            []DailyRevenue `json:"by_day,omitempty"`
}

// SummaryResponse is the summary endpoint payload: the aggregate report
// plus the heuristic observations derived from it.
type SummaryResponse struct {
	Report   SummaryReport `json:"report"`
	Insights []string      `json:"insights"`
}

type Transaction struct {
	Date          string  `json:"date"`
	Price         float64 `json:"price"`
	StaffName     string  `json:"staff_name,omitempty"`
	PaymentMethod string  `json:"payment_method,omitempty"`
}

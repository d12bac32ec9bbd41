package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one normalized sales record. Date is truncated to a
// calendar day (midnight UTC); Price keeps the sign the source reported,
// so refund rows stay negative.
type Transaction struct {
	Date          time.Time
	Price         decimal.Decimal
	StaffName     string
	PaymentMethod string
}

// Day returns the transaction date truncated to a calendar day.
func (t Transaction) Day() time.Time {
	return time.Date(t.Date.Year(), t.Date.Month(), t.Date.Day(), 0, 0, 0, 0, time.UTC)
}

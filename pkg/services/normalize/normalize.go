package normalize

import (
	"regexp"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/shop-tools/sales-atlas/pkg/models/domain"
	"github.com/shop-tools/sales-atlas/pkg/models/store"
	"github.com/shopspring/decimal"
)

// Canonical column labels after label normalization.
const (
	ColDate       = "Date"
	ColPrice      = "Price"
	ColStaff      = "Barber Name"
	ColStaffAlias = "Barber"
	ColMethod     = "Payment Method"
	ColTimestamp  = "Timestamp"
)

// dateLayouts are tried in order; day-first forms match the sheet entry
// style (7/1/2025 is the 7th of January).
var dateLayouts = []string{
	"2/1/2006",
	"2-1-2006",
	"2006-01-02",
}

// priceJunk matches everything that is not part of a decimal number, so
// currency symbols and thousands separators fall away before parsing.
var priceJunk = regexp.MustCompile(`[^0-9.\-]+`)

// Result carries the typed table plus the rows that did not survive it.
type Result struct {
	Transactions []domain.Transaction
	Excluded     []store.ExcludedRow
}

// Rows cleans raw sheet rows into typed transactions. Rows with an
// unparseable date or price are dropped and reported in Excluded; row
// order is preserved for the survivors. The function is pure and never
// fails on row content.
func Rows(rows []store.RawRecord) Result {
	var res Result

	for i, raw := range rows {
		row := canonicalizeRow(raw)

		var reasons []string

		date, ok := parseDate(row[ColDate])
		if !ok {
			reasons = append(reasons, "unparseable date")
		}
		price, ok := parsePrice(row[ColPrice])
		if !ok {
			reasons = append(reasons, "unparseable price")
		}

		if len(reasons) > 0 {
			res.Excluded = append(res.Excluded, store.ExcludedRow{
				Index:  i,
				Reason: strings.Join(reasons, ", "),
			})
			continue
		}

		res.Transactions = append(res.Transactions, domain.Transaction{
			Date:          date,
			Price:         price,
			StaffName:     strings.TrimSpace(row[ColStaff]),
			PaymentMethod: strings.TrimSpace(row[ColMethod]),
		})
	}

	return res
}

// canonicalizeRow rewrites a raw row under normalized column labels,
// resolves the staff column alias and drops the form timestamp. Raw labels
// are visited in sorted order so duplicate labels collapse deterministically.
func canonicalizeRow(raw store.RawRecord) store.RawRecord {
	labels := make([]string, 0, len(raw))
	for label := range raw {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	row := make(store.RawRecord, len(raw))
	for _, label := range labels {
		row[titleCase(strings.TrimSpace(label))] = raw[label]
	}

	if _, ok := row[ColStaff]; !ok {
		if v, ok := row[ColStaffAlias]; ok {
			row[ColStaff] = v
		}
	}
	delete(row, ColStaffAlias)
	delete(row, ColTimestamp)

	return row
}

// titleCase uppercases the first letter of every alphabetic run and
// lowercases the rest, so "barber name", "BARBER NAME" and "Barber Name"
// all resolve to the same label.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				r = unicode.ToLower(r)
			} else {
				r = unicode.ToUpper(r)
			}
			prevLetter = true
		} else {
			prevLetter = false
		}
		b.WriteRune(r)
	}

	return b.String()
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

func parsePrice(s string) (decimal.Decimal, bool) {
	cleaned := priceJunk.ReplaceAllString(s, "")
	if cleaned == "" {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

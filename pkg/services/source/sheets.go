package source

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/shop-tools/sales-atlas/pkg/models/domain"
	"github.com/shop-tools/sales-atlas/pkg/models/store"
)

// readRange covers every column the sales sheet uses; the first sheet of the
// spreadsheet is read, first row is the header.
const readRange = "A1:Z"

// SheetsSource reads rows from Google Sheets using a service-account
// credentials file referenced by the profile.
type SheetsSource struct{}

func NewSheetsSource() *SheetsSource {
	return &SheetsSource{}
}

func (s *SheetsSource) FetchRows(ctx context.Context, profile domain.SourceProfile) ([]store.RawRecord, error) {
	svc, err := sheets.NewService(ctx,
		option.WithScopes(sheets.SpreadsheetsReadonlyScope),
		option.WithCredentialsFile(profile.CredentialsFile),
	)
	if err != nil {
		return nil, &UnavailableError{Source: profile.Name, Err: fmt.Errorf("failed to create sheets client: %w", err)}
	}

	resp, err := svc.Spreadsheets.Values.Get(profile.SpreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, &UnavailableError{Source: profile.Name, Err: fmt.Errorf("failed to read spreadsheet %s: %w", profile.SpreadsheetID, err)}
	}

	return RecordsFromValues(resp.Values), nil
}

// RecordsFromValues pairs each data row of a Sheets values matrix with the
// header row. Cells are stringified; short rows are padded with empty
// strings, columns with a blank header are dropped.
func RecordsFromValues(values [][]interface{}) []store.RawRecord {
	if len(values) < 2 {
		return nil
	}

	headers := make([]string, len(values[0]))
	for i, cell := range values[0] {
		headers[i] = strings.TrimSpace(fmt.Sprint(cell))
	}

	records := make([]store.RawRecord, 0, len(values)-1)
	for _, row := range values[1:] {
		record := make(store.RawRecord, len(headers))
		for i, header := range headers {
			if header == "" {
				continue
			}
			if i < len(row) {
				record[header] = fmt.Sprint(row[i])
			} else {
				record[header] = ""
			}
		}
		records = append(records, record)
	}
	return records
}

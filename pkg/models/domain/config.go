package domain

import "fmt"

// DefaultCurrency is used when a source profile does not set one.
const DefaultCurrency = "OMR"

// SourceProfile describes one spreadsheet source from the profile registry.
type SourceProfile struct {
	// Name is the profile section name, used as the source identifier in
	// the API and CLI.
	Name string
	// SpreadsheetID is the Google Sheets document key.
	SpreadsheetID string
	// CredentialsFile points at the service-account JSON key.
	CredentialsFile string
	// Currency is the display currency code for formatted amounts.
	Currency string
}

func (p SourceProfile) String() string {
	return fmt.Sprintf("%s:%s", p.Name, p.SpreadsheetID)
}

// CacheKey identifies the cached table a profile maps to. Two profiles
// pointing at the same sheet with the same credential share an entry
// within a session, never across sessions.
func (p SourceProfile) CacheKey() string {
	return fmt.Sprintf("%s|%s|%s", p.Name, p.SpreadsheetID, p.CredentialsFile)
}

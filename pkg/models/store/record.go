package store

// RawRecord is one spreadsheet row keyed by its raw column label, exactly
// as the source adapter delivered it. Labels are free-form and values are
// unparsed cell text; no shape is guaranteed.
type RawRecord map[string]string

// ExcludedRow records a raw row dropped during normalization.
type ExcludedRow struct {
	// Index is the position of the row in the fetched sequence, zero-based.
	Index int
	// Reason names the field that failed coercion.
	Reason string
}

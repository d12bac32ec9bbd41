package source

import (
	"context"
	"fmt"

	"github.com/shop-tools/sales-atlas/pkg/models/domain"
	"github.com/shop-tools/sales-atlas/pkg/models/store"
)

// RecordSource fetches raw sheet rows for a source profile. Implementations
// talk to a remote spreadsheet service; tests substitute an in-memory double.
type RecordSource interface {
	FetchRows(ctx context.Context, profile domain.SourceProfile) ([]store.RawRecord, error)
}

// UnavailableError reports an authentication or transport failure against a
// source. Callers degrade to an empty table rather than keeping stale data.
type UnavailableError struct {
	Source string
	Err    error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("source %s unavailable: %v", e.Source, e.Err)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

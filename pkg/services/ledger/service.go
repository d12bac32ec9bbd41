package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/shop-tools/sales-atlas/pkg/models/domain"
	"github.com/shop-tools/sales-atlas/pkg/services/config"
	"github.com/shop-tools/sales-atlas/pkg/services/insight"
	"github.com/shop-tools/sales-atlas/pkg/services/normalize"
	"github.com/shop-tools/sales-atlas/pkg/services/report"
	"github.com/shop-tools/sales-atlas/pkg/services/source"
)

var (
	// ErrUnknownSource is returned when the named profile does not exist in
	// the registry.
	ErrUnknownSource = errors.New("unknown source")
	// ErrEmptySourceID rejects a reload before any network call when the
	// profile carries no spreadsheet id.
	ErrEmptySourceID = errors.New("source has no spreadsheet id")
)

// Service is the reporting surface consumed by the HTTP handlers and the
// CLI. Every operation is scoped to a caller session; tables loaded in one
// session are invisible to every other.
type Service interface {
	// NewSession mints a session identifier for an isolated cache scope.
	NewSession() string
	// ListSources returns the profiles available in the registry.
	ListSources(ctx context.Context) ([]domain.SourceProfile, error)
	// Reload fetches the source, normalizes it and replaces the session's
	// cached table. A fetch failure clears the cache: the caller degrades
	// to an empty table, never stale data.
	Reload(ctx context.Context, sessionID, sourceName string) (domain.ReloadStatus, error)
	// Summary filters the cached table to the resolved window, aggregates
	// it and derives insights.
	Summary(
		ctx context.Context,
		sessionID, sourceName string,
		mode domain.PeriodMode,
		from, to time.Time,
	) (domain.SummaryReport, []string, error)
	// Transactions returns the cached rows inside the resolved window.
	Transactions(
		ctx context.Context,
		sessionID, sourceName string,
		mode domain.PeriodMode,
		from, to time.Time,
	) ([]domain.Transaction, error)
}

// ServiceFactory is a function type that creates a Service from a profile
// registry path. The CLI defers construction until flags are parsed.
type ServiceFactory func(configPath string) (Service, error)

type service struct {
	registry config.Registry
	source   source.RecordSource
	insights *insight.Registry
	sessions *Sessions
	now      func() time.Time
}

func NewService(registry config.Registry, src source.RecordSource, insights *insight.Registry) Service {
	return &service{
		registry: registry,
		source:   src,
		insights: insights,
		sessions: NewSessions(),
		now:      time.Now,
	}
}

func (s *service) NewSession() string {
	return s.sessions.NewID()
}

func (s *service) ListSources(ctx context.Context) ([]domain.SourceProfile, error) {
	names, err := s.registry.GetProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	profiles := make([]domain.SourceProfile, 0, len(names))
	for _, name := range names {
		profile, err := s.registry.GetProfile(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve profile %q: %w", name, err)
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

func (s *service) Reload(ctx context.Context, sessionID, sourceName string) (domain.ReloadStatus, error) {
	logger := zerolog.Ctx(ctx)

	profile, err := s.lookupProfile(ctx, sourceName)
	if err != nil {
		return domain.ReloadStatus{}, err
	}
	if profile.SpreadsheetID == "" {
		return domain.ReloadStatus{}, fmt.Errorf("%w: profile %q", ErrEmptySourceID, profile.Name)
	}

	rows, err := s.source.FetchRows(ctx, profile)
	if err != nil {
		s.sessions.Drop(sessionID, profile.CacheKey())
		return domain.ReloadStatus{}, fmt.Errorf("reload of %q failed: %w", profile.Name, err)
	}

	res := normalize.Rows(rows)
	if len(res.Excluded) > 0 {
		for _, row := range res.Excluded {
			logger.Debug().
				Str("source", profile.Name).
				Int("row", row.Index).
				Str("reason", row.Reason).
				Msg("row excluded during normalization")
		}
		logger.Warn().
			Str("source", profile.Name).
			Int("dropped", len(res.Excluded)).
			Msg("rows dropped during normalization")
	}

	s.sessions.Put(sessionID, profile.CacheKey(), res.Transactions)
	logger.Info().
		Str("source", profile.Name).
		Int("loaded", len(res.Transactions)).
		Msg("source reloaded")

	return domain.ReloadStatus{
		Source:      profile.Name,
		RowsLoaded:  len(res.Transactions),
		RowsDropped: len(res.Excluded),
		FetchedAt:   s.now(),
	}, nil
}

func (s *service) Summary(
	ctx context.Context,
	sessionID, sourceName string,
	mode domain.PeriodMode,
	from, to time.Time,
) (domain.SummaryReport, []string, error) {
	profile, err := s.lookupProfile(ctx, sourceName)
	if err != nil {
		return domain.SummaryReport{}, nil, err
	}

	filtered, window := s.filtered(sessionID, profile, mode, from, to)
	summary := report.Summarize(filtered, window, profile.Currency)
	return summary, s.insights.Derive(filtered, summary), nil
}

func (s *service) Transactions(
	ctx context.Context,
	sessionID, sourceName string,
	mode domain.PeriodMode,
	from, to time.Time,
) ([]domain.Transaction, error) {
	profile, err := s.lookupProfile(ctx, sourceName)
	if err != nil {
		return nil, err
	}

	filtered, _ := s.filtered(sessionID, profile, mode, from, to)
	return filtered, nil
}

// filtered resolves the period window and applies it to the session's
// cached table. A session that never reloaded simply has an empty table;
// every downstream stage is defined on empty input.
func (s *service) filtered(
	sessionID string,
	profile domain.SourceProfile,
	mode domain.PeriodMode,
	from, to time.Time,
) ([]domain.Transaction, domain.PeriodWindow) {
	txs, _ := s.sessions.Get(sessionID, profile.CacheKey())
	window := domain.ResolveWindow(mode, from, to, s.now())
	return report.FilterPeriod(txs, window), window
}

func (s *service) lookupProfile(ctx context.Context, name string) (domain.SourceProfile, error) {
	if name == "" {
		return domain.SourceProfile{}, fmt.Errorf("%w: no source name given", ErrUnknownSource)
	}
	profile, err := s.registry.GetProfile(ctx, name)
	if err != nil {
		return domain.SourceProfile{}, fmt.Errorf("%w %q", ErrUnknownSource, name)
	}
	return profile, nil
}

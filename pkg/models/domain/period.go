package domain

import (
	"fmt"
	"time"
)

type PeriodMode string

const (
	PeriodDaily   PeriodMode = "daily"
	PeriodWeekly  PeriodMode = "weekly"
	PeriodMonthly PeriodMode = "monthly"
)

// ParsePeriodMode maps the UI period selector value onto a PeriodMode.
// An empty value defaults to daily.
func ParsePeriodMode(s string) (PeriodMode, error) {
	switch PeriodMode(s) {
	case "", PeriodDaily:
		return PeriodDaily, nil
	case PeriodWeekly:
		return PeriodWeekly, nil
	case PeriodMonthly:
		return PeriodMonthly, nil
	default:
		return "", fmt.Errorf("unknown period mode %q", s)
	}
}

// PeriodWindow is an inclusive [Start, End] range of calendar days.
// Start > End is allowed and simply matches nothing.
type PeriodWindow struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether the given date falls inside the window,
// comparing calendar days only.
func (w PeriodWindow) Contains(t time.Time) bool {
	d := truncateDay(t)
	return !d.Before(truncateDay(w.Start)) && !d.After(truncateDay(w.End))
}

func (w PeriodWindow) String() string {
	return fmt.Sprintf("[%s, %s]", w.Start.Format("2006-01-02"), w.End.Format("2006-01-02"))
}

// ResolveWindow turns a period mode plus optional explicit bounds into a
// concrete window. Zero-valued from/to fall back to the mode defaults:
// daily is today, weekly is the trailing seven days, monthly starts on the
// first of the current month. Daily always pins End to Start.
func ResolveWindow(mode PeriodMode, from, to, today time.Time) PeriodWindow {
	today = truncateDay(today)

	switch mode {
	case PeriodWeekly:
		if from.IsZero() {
			from = today.AddDate(0, 0, -6)
		}
		if to.IsZero() {
			to = today
		}
	case PeriodMonthly:
		if from.IsZero() {
			from = time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
		}
		if to.IsZero() {
			to = today
		}
	default: // daily
		if from.IsZero() {
			from = today
		}
		to = from
	}

	return PeriodWindow{Start: truncateDay(from), End: truncateDay(to)}
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

package insight

import (
	"fmt"

	"github.com/shop-tools/sales-atlas/pkg/models/domain"
)

// Heuristic derives a single observation from a filtered transaction set and
// its summary. It returns false when its precondition does not hold; the
// observation is then skipped, never replaced with placeholder text.
type Heuristic func(txs []domain.Transaction, summary domain.SummaryReport) (string, bool)

// NoData is the only message returned when the filtered set is empty.
const NoData = "No data in the selected range."

// Registry holds heuristics in presentation order
type Registry struct {
	heuristics []Heuristic
}

// NewRegistry creates a registry preloaded with the built-in heuristics.
func NewRegistry() *Registry {
	return &Registry{
		heuristics: []Heuristic{TopPerformer, CashShare, WeekdayTrend},
	}
}

// Register appends a heuristic after the existing ones
func (r *Registry) Register(h Heuristic) error {
	if h == nil {
		return fmt.Errorf("heuristic cannot be nil")
	}
	r.heuristics = append(r.heuristics, h)
	return nil
}

// Derive runs every heuristic in order and collects the observations that
// fired. An empty transaction set short-circuits to the NoData sentinel.
func (r *Registry) Derive(txs []domain.Transaction, summary domain.SummaryReport) []string {
	if len(txs) == 0 {
		return []string{NoData}
	}

	insights := make([]string, 0, len(r.heuristics))
	for _, h := range r.heuristics {
		if observation, ok := h(txs, summary); ok {
			insights = append(insights, observation)
		}
	}
	return insights
}

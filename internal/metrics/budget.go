package metrics

import "kexpay/internal/models"

// BudgetState classifies how much of a budget has been used.
type BudgetState string

const (
	BudgetOnTrack   BudgetState = "on_track"
	BudgetCaution   BudgetState = "caution"
	BudgetOverLimit BudgetState = "over_limit"
)

// Thresholds are inclusive: exactly 90% is over limit. They are applied to
// the exact spent/limit ratio, not to the rounded display percent, so 89.9999%
// is still a caution.
const (
	overLimitPercent = 90
	cautionPercent   = 70
)

// Label returns the human-readable status.
func (s BudgetState) Label() string {
	switch s {
	case BudgetOverLimit:
		return "Over limit"
	case BudgetCaution:
		return "Caution"
	default:
		return "On track"
	}
}

// BudgetStatus is the derived view of one budget category.
type BudgetStatus struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Budget      int64       `json:"budget"`
	Spent       int64       `json:"spent"`
	Remaining   int64       `json:"remaining"`
	PercentUsed int         `json:"percent_used"`
	BarPercent  int         `json:"bar_percent"`
	Status      BudgetState `json:"status"`
	StatusLabel string      `json:"status_label"`
}

// ComputeBudgetStatus returns the utilisation of a budget category. A zero
// limit reports 0% used.
func ComputeBudgetStatus(category models.BudgetCategory) BudgetStatus {
	percent := ratioPercent(category.Spent, category.Budget)
	state := ClassifyBudget(category.Spent, category.Budget)

	bar := percent
	if bar > 100 {
		bar = 100
	}
	if bar < 0 {
		bar = 0
	}

	return BudgetStatus{
		ID:          category.ID,
		Name:        category.Name,
		Budget:      category.Budget,
		Spent:       category.Spent,
		Remaining:   category.Budget - category.Spent,
		PercentUsed: percent,
		BarPercent:  bar,
		Status:      state,
		StatusLabel: state.Label(),
	}
}

// ClassifyBudget maps spending against a limit to its status band. A limit
// of zero or less is always on track.
func ClassifyBudget(spent, limit int64) BudgetState {
	if limit <= 0 {
		return BudgetOnTrack
	}
	switch {
	case spent*100 >= overLimitPercent*limit:
		return BudgetOverLimit
	case spent*100 >= cautionPercent*limit:
		return BudgetCaution
	default:
		return BudgetOnTrack
	}
}

// BudgetOverview aggregates every budget category.
type BudgetOverview struct {
	TotalBudget    int64 `json:"total_budget"`
	TotalSpent     int64 `json:"total_spent"`
	TotalRemaining int64 `json:"total_remaining"`
	OverallPercent int   `json:"overall_percent"`
}

// ComputeBudgetOverview sums limits and spending across categories.
func ComputeBudgetOverview(categories []models.BudgetCategory) BudgetOverview {
	var o BudgetOverview
	for _, c := range categories {
		o.TotalBudget += c.Budget
		o.TotalSpent += c.Spent
	}
	o.TotalRemaining = o.TotalBudget - o.TotalSpent
	o.OverallPercent = ratioPercent(o.TotalSpent, o.TotalBudget)
	return o
}

package metrics

import (
	"time"

	"kexpay/internal/models"
)

// GoalProgress is the derived view of one savings goal.
type GoalProgress struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Target    int64  `json:"target"`
	Current   int64  `json:"current"`
	Remaining int64  `json:"remaining"`
	Percent   int    `json:"percent"`
	Deadline  string `json:"deadline"`
	Monthly   int64  `json:"monthly_needed"`
	Completed bool   `json:"completed"`
}

// ComputeGoalProgress returns how far a goal has come. The percent is not
// clamped above 100; a zero target reports 0.
func ComputeGoalProgress(goal models.Goal) GoalProgress {
	remaining := goal.Target - goal.Current
	if remaining < 0 {
		remaining = 0
	}
	return GoalProgress{
		ID:        goal.ID,
		Name:      goal.Name,
		Target:    goal.Target,
		Current:   goal.Current,
		Remaining: remaining,
		Percent:   ratioPercent(goal.Current, goal.Target),
		Deadline:  goal.Deadline,
		Monthly:   goal.MonthlyNeeded,
		Completed: goal.Target > 0 && goal.Current >= goal.Target,
	}
}

// GoalsOverview aggregates every goal.
type GoalsOverview struct {
	TotalTarget    int64 `json:"total_target"`
	TotalSaved     int64 `json:"total_saved"`
	OverallPercent int   `json:"overall_percent"`
}

// ComputeGoalsOverview sums targets and savings across goals.
func ComputeGoalsOverview(goals []models.Goal) GoalsOverview {
	var o GoalsOverview
	for _, g := range goals {
		o.TotalTarget += g.Target
		o.TotalSaved += g.Current
	}
	o.OverallPercent = ratioPercent(o.TotalSaved, o.TotalTarget)
	return o
}

// ComputeMonthlyContribution returns the amount to put aside each month from
// `from` until the deadline month to close the gap between current and
// target. At least one month is always assumed; an unparseable deadline is
// treated as one month away.
func ComputeMonthlyContribution(target, current int64, from time.Time, deadline string) int64 {
	gap := target - current
	if gap <= 0 {
		return 0
	}

	months := int64(1)
	if d, err := time.Parse(models.DateLayout, deadline); err == nil {
		diff := int64(d.Year()-from.Year())*12 + int64(d.Month()) - int64(from.Month())
		if diff > months {
			months = diff
		}
	}
	return (gap + months - 1) / months
}

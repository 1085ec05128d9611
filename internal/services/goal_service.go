package services

import (
	apperrors "kexpay/internal/errors"
	"kexpay/internal/ledger"
	"kexpay/internal/metrics"
	"kexpay/internal/models"
)

// goalService handles savings-goal business logic.
type goalService struct {
	ledger *ledger.Ledger
	audit  AuditServicer
}

// NewGoalService creates a new GoalServicer.
func NewGoalService(l *ledger.Ledger, audit AuditServicer) GoalServicer {
	return &goalService{ledger: l, audit: audit}
}

// CreateGoal creates a savings goal. The monthly contribution is fixed at
// creation time.
func (s *goalService) CreateGoal(name, icon, color string, target, current int64, deadline string) (*metrics.GoalProgress, error) {
	goal, err := s.ledger.AddGoal(models.Goal{
		Name:     name,
		Icon:     icon,
		Color:    color,
		Target:   target,
		Current:  current,
		Deadline: deadline,
	})
	if err != nil {
		return nil, translateLedgerError(err, apperrors.ErrGoalNotFound)
	}

	s.audit.Log("create", "goal", goal.ID, map[string]any{"name": goal.Name, "target": goal.Target})
	progress := metrics.ComputeGoalProgress(goal)
	return &progress, nil
}

// GetGoals returns the progress of every goal and their totals.
func (s *goalService) GetGoals() (*GoalList, error) {
	goals := s.ledger.Goals()
	progress := make([]metrics.GoalProgress, 0, len(goals))
	for _, g := range goals {
		progress = append(progress, metrics.ComputeGoalProgress(g))
	}
	return &GoalList{
		Goals:    progress,
		Overview: metrics.ComputeGoalsOverview(goals),
	}, nil
}

// AddSavings credits a goal, capped at its target.
func (s *goalService) AddSavings(goalID string, amount int64) (*metrics.GoalProgress, error) {
	goal, err := s.ledger.AddSavings(goalID, amount)
	if err != nil {
		return nil, translateLedgerError(err, apperrors.ErrGoalNotFound)
	}

	progress := metrics.ComputeGoalProgress(goal)
	s.audit.Log("save", "goal", goal.ID, map[string]any{"amount": amount, "percent": progress.Percent})
	return &progress, nil
}

// DeleteGoal removes a goal.
func (s *goalService) DeleteGoal(goalID string) error {
	if err := s.ledger.RemoveGoal(goalID); err != nil {
		return translateLedgerError(err, apperrors.ErrGoalNotFound)
	}
	s.audit.Log("delete", "goal", goalID, nil)
	return nil
}

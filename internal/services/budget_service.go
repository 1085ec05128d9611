package services

import (
	apperrors "kexpay/internal/errors"
	"kexpay/internal/ledger"
	"kexpay/internal/metrics"
	"kexpay/internal/models"
)

// budgetService handles budget-related business logic.
type budgetService struct {
	ledger *ledger.Ledger
	audit  AuditServicer
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(l *ledger.Ledger, audit AuditServicer) BudgetServicer {
	return &budgetService{ledger: l, audit: audit}
}

// CreateBudget creates a new monthly budget category.
func (s *budgetService) CreateBudget(name, icon, color string, limit, spent int64) (*metrics.BudgetStatus, error) {
	budget, err := s.ledger.AddBudget(models.BudgetCategory{
		Name:   name,
		Icon:   icon,
		Color:  color,
		Budget: limit,
		Spent:  spent,
	})
	if err != nil {
		return nil, translateLedgerError(err, apperrors.ErrBudgetNotFound)
	}

	s.audit.Log("create", "budget", budget.ID, map[string]any{"name": budget.Name, "budget": budget.Budget})
	status := metrics.ComputeBudgetStatus(budget)
	return &status, nil
}

// GetBudgets returns the status of every budget category and their totals.
func (s *budgetService) GetBudgets() (*BudgetList, error) {
	budgets := s.ledger.Budgets()
	statuses := make([]metrics.BudgetStatus, 0, len(budgets))
	for _, b := range budgets {
		statuses = append(statuses, metrics.ComputeBudgetStatus(b))
	}
	return &BudgetList{
		Budgets:  statuses,
		Overview: metrics.ComputeBudgetOverview(budgets),
	}, nil
}

// LogSpending adds spending to a budget category and returns its new status.
func (s *budgetService) LogSpending(budgetID string, amount int64) (*metrics.BudgetStatus, error) {
	budget, err := s.ledger.LogSpending(budgetID, amount)
	if err != nil {
		return nil, translateLedgerError(err, apperrors.ErrBudgetNotFound)
	}

	status := metrics.ComputeBudgetStatus(budget)
	s.audit.Log("spend", "budget", budget.ID, map[string]any{"amount": amount, "status": status.Status})
	return &status, nil
}

// DeleteBudget removes a budget category.
func (s *budgetService) DeleteBudget(budgetID string) error {
	if err := s.ledger.RemoveBudget(budgetID); err != nil {
		return translateLedgerError(err, apperrors.ErrBudgetNotFound)
	}
	s.audit.Log("delete", "budget", budgetID, nil)
	return nil
}

// Package ledger holds the dashboard's application state: accounts,
// transactions, budget categories and savings goals.
//
// A Ledger is safe for concurrent use. Readers receive copies, so callers may
// hand the returned slices straight to the metrics package.
package ledger

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"kexpay/internal/format"
	"kexpay/internal/metrics"
	"kexpay/internal/models"
)

// Validation and lookup errors returned by Ledger mutations.
var (
	ErrInvalidAmount      = errors.New("amount out of range")
	ErrEmptyDescription   = errors.New("description is required")
	ErrEmptyName          = errors.New("name is required")
	ErrInvalidCategory    = errors.New("unknown category")
	ErrInvalidKind        = errors.New("type must be income or expense")
	ErrInvalidDate        = errors.New("date must be YYYY-MM-DD")
	ErrInvalidAccountType = errors.New("unknown account type")
	ErrNotFound           = errors.New("record not found")
)

// Ledger owns the four record collections. Transactions are kept newest
// first, the order in which the dashboard lists them.
type Ledger struct {
	mu sync.RWMutex

	accounts     []models.Account
	transactions []models.Transaction
	budgets      []models.BudgetCategory
	goals        []models.Goal

	now func() time.Time
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock overrides the time source used for default dates and goal
// contributions.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// New creates an empty Ledger.
func New(opts ...Option) *Ledger {
	l := &Ledger{now: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Now returns the ledger's current time.
func (l *Ledger) Now() time.Time {
	return l.now()
}

// AddAccount validates and appends an account, assigning its id.
func (l *Ledger) AddAccount(a models.Account) (models.Account, error) {
	a.Name = strings.TrimSpace(a.Name)
	if a.Name == "" {
		return models.Account{}, ErrEmptyName
	}
	if !a.Type.Valid() {
		return models.Account{}, fmt.Errorf("%w: %q", ErrInvalidAccountType, a.Type)
	}
	if a.Balance < -models.MaxAmount || a.Balance > models.MaxAmount {
		return models.Account{}, ErrInvalidAmount
	}
	a.ID = ""
	a.Stamp(l.now())
	if a.LastActivity == "" {
		a.LastActivity = "Just now"
	}

	l.mu.Lock()
	l.accounts = append(l.accounts, a)
	l.mu.Unlock()
	return a, nil
}

// RemoveAccount deletes the account with the given id.
func (l *Ledger) RemoveAccount(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	i := indexOf(l.accounts, func(a models.Account) bool { return a.ID == id })
	if i < 0 {
		return ErrNotFound
	}
	l.accounts = append(l.accounts[:i], l.accounts[i+1:]...)
	return nil
}

// Accounts returns a copy of every account in insertion order.
func (l *Ledger) Accounts() []models.Account {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return clone(l.accounts)
}

// AddTransaction validates a transaction and records it as the newest entry.
// Empty date and time default to the ledger clock; the category colour is
// always derived from the category.
func (l *Ledger) AddTransaction(tx models.Transaction) (models.Transaction, error) {
	tx.Description = strings.TrimSpace(tx.Description)
	if tx.Description == "" {
		return models.Transaction{}, ErrEmptyDescription
	}
	if !validAmount(tx.Amount) {
		return models.Transaction{}, ErrInvalidAmount
	}
	if !tx.Type.Valid() {
		return models.Transaction{}, fmt.Errorf("%w: %q", ErrInvalidKind, tx.Type)
	}
	if !models.IsCategory(tx.Category) {
		return models.Transaction{}, fmt.Errorf("%w: %q", ErrInvalidCategory, tx.Category)
	}

	now := l.now()
	if tx.Date == "" {
		tx.Date = now.Format(models.DateLayout)
	} else if !validDate(tx.Date) {
		return models.Transaction{}, fmt.Errorf("%w: %q", ErrInvalidDate, tx.Date)
	}
	if tx.Time == "" {
		tx.Time = format.TimeOfDay(now)
	}
	tx.CategoryColor = models.CategoryColor(tx.Category)
	tx.ID = ""
	tx.Stamp(now)

	l.mu.Lock()
	l.transactions = append([]models.Transaction{tx}, l.transactions...)
	l.mu.Unlock()
	return tx, nil
}

// RemoveTransaction deletes the transaction with the given id.
func (l *Ledger) RemoveTransaction(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	i := indexOf(l.transactions, func(tx models.Transaction) bool { return tx.ID == id })
	if i < 0 {
		return ErrNotFound
	}
	l.transactions = append(l.transactions[:i], l.transactions[i+1:]...)
	return nil
}

// Transactions returns a copy of every transaction, newest first.
func (l *Ledger) Transactions() []models.Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return clone(l.transactions)
}

// RecentTransactions returns at most n of the newest transactions.
func (l *Ledger) RecentTransactions(n int) []models.Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if n < 0 {
		n = 0
	}
	if n > len(l.transactions) {
		n = len(l.transactions)
	}
	return clone(l.transactions[:n])
}

// AddBudget validates and appends a budget category.
func (l *Ledger) AddBudget(b models.BudgetCategory) (models.BudgetCategory, error) {
	b.Name = strings.TrimSpace(b.Name)
	if b.Name == "" {
		return models.BudgetCategory{}, ErrEmptyName
	}
	if !validAmount(b.Budget) || !validTotal(b.Spent) {
		return models.BudgetCategory{}, ErrInvalidAmount
	}
	b.ID = ""
	b.Stamp(l.now())

	l.mu.Lock()
	l.budgets = append(l.budgets, b)
	l.mu.Unlock()
	return b, nil
}

// LogSpending adds amount to a budget category's spent total.
func (l *Ledger) LogSpending(id string, amount int64) (models.BudgetCategory, error) {
	if !validAmount(amount) {
		return models.BudgetCategory{}, ErrInvalidAmount
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	i := indexOf(l.budgets, func(b models.BudgetCategory) bool { return b.ID == id })
	if i < 0 {
		return models.BudgetCategory{}, ErrNotFound
	}
	if !validTotal(l.budgets[i].Spent + amount) {
		return models.BudgetCategory{}, ErrInvalidAmount
	}
	l.budgets[i].Spent += amount
	return l.budgets[i], nil
}

// RemoveBudget deletes the budget category with the given id.
func (l *Ledger) RemoveBudget(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	i := indexOf(l.budgets, func(b models.BudgetCategory) bool { return b.ID == id })
	if i < 0 {
		return ErrNotFound
	}
	l.budgets = append(l.budgets[:i], l.budgets[i+1:]...)
	return nil
}

// Budgets returns a copy of every budget category in insertion order.
func (l *Ledger) Budgets() []models.BudgetCategory {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return clone(l.budgets)
}

// AddGoal validates and appends a goal. Current savings above the target are
// clamped to it. MonthlyNeeded is computed once, here.
func (l *Ledger) AddGoal(g models.Goal) (models.Goal, error) {
	g.Name = strings.TrimSpace(g.Name)
	if g.Name == "" {
		return models.Goal{}, ErrEmptyName
	}
	if !validAmount(g.Target) || !validTotal(g.Current) {
		return models.Goal{}, ErrInvalidAmount
	}
	if !validDate(g.Deadline) {
		return models.Goal{}, fmt.Errorf("%w: %q", ErrInvalidDate, g.Deadline)
	}
	if g.Current > g.Target {
		g.Current = g.Target
	}
	now := l.now()
	g.MonthlyNeeded = metrics.ComputeMonthlyContribution(g.Target, g.Current, now, g.Deadline)
	g.ID = ""
	g.Stamp(now)

	l.mu.Lock()
	l.goals = append(l.goals, g)
	l.mu.Unlock()
	return g, nil
}

// AddSavings credits amount to a goal, never past its target.
func (l *Ledger) AddSavings(id string, amount int64) (models.Goal, error) {
	if !validAmount(amount) {
		return models.Goal{}, ErrInvalidAmount
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	i := indexOf(l.goals, func(g models.Goal) bool { return g.ID == id })
	if i < 0 {
		return models.Goal{}, ErrNotFound
	}
	g := &l.goals[i]
	g.Current += amount
	if g.Current > g.Target {
		g.Current = g.Target
	}
	return *g, nil
}

// RemoveGoal deletes the goal with the given id.
func (l *Ledger) RemoveGoal(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	i := indexOf(l.goals, func(g models.Goal) bool { return g.ID == id })
	if i < 0 {
		return ErrNotFound
	}
	l.goals = append(l.goals[:i], l.goals[i+1:]...)
	return nil
}

// Goals returns a copy of every goal in insertion order.
func (l *Ledger) Goals() []models.Goal {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return clone(l.goals)
}

// validAmount reports whether v is a positive amount within models.MaxAmount.
func validAmount(v int64) bool {
	return v > 0 && v <= models.MaxAmount
}

// validTotal is validAmount that also admits zero.
func validTotal(v int64) bool {
	return v >= 0 && v <= models.MaxAmount
}

func indexOf[T any](items []T, match func(T) bool) int {
	for i, item := range items {
		if match(item) {
			return i
		}
	}
	return -1
}

func clone[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}

func validDate(s string) bool {
	_, err := time.Parse(models.DateLayout, s)
	return err == nil
}

package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"kexpay/internal/ledger"
	"kexpay/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestTransaction records an expense of the given amount (in paise)
// dated FixedNow.
func CreateTestTransaction(t *testing.T, l *ledger.Ledger, amount int64) *models.Transaction {
	t.Helper()
	return CreateTestTransactionWith(t, l, models.Transaction{
		Category: "Food & Dining",
		Amount:   amount,
		Type:     models.TransactionTypeExpense,
	})
}

// CreateTestIncome records an income of the given amount on date.
func CreateTestIncome(t *testing.T, l *ledger.Ledger, amount int64, date string) *models.Transaction {
	t.Helper()
	return CreateTestTransactionWith(t, l, models.Transaction{
		Description: "Salary",
		Category:    "Salary",
		Amount:      amount,
		Type:        models.TransactionTypeIncome,
		Date:        date,
	})
}

// CreateTestExpense records an expense of the given amount and category on date.
func CreateTestExpense(t *testing.T, l *ledger.Ledger, amount int64, category, date string) *models.Transaction {
	t.Helper()
	return CreateTestTransactionWith(t, l, models.Transaction{
		Category: category,
		Amount:   amount,
		Type:     models.TransactionTypeExpense,
		Date:     date,
	})
}

// CreateTestTransactionWith records tx, filling a unique description and a
// default account when they are empty.
func CreateTestTransactionWith(t *testing.T, l *ledger.Ledger, tx models.Transaction) *models.Transaction {
	t.Helper()
	if tx.Description == "" {
		tx.Description = fmt.Sprintf("Purchase %d", nextID())
	}
	if tx.Account == "" {
		tx.Account = "Test Account"
	}
	created, err := l.AddTransaction(tx)
	if err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return &created
}

// CreateTestAccount creates an account of the given type and signed balance.
func CreateTestAccount(t *testing.T, l *ledger.Ledger, accountType models.AccountType, balance int64) *models.Account {
	t.Helper()
	account, err := l.AddAccount(models.Account{
		Name:        fmt.Sprintf("Account %d", nextID()),
		Institution: "Test Bank",
		Type:        accountType,
		Balance:     balance,
	})
	if err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}
	return &account
}

// CreateTestBudget creates a budget category with the given limit and spending.
func CreateTestBudget(t *testing.T, l *ledger.Ledger, limit, spent int64) *models.BudgetCategory {
	t.Helper()
	budget, err := l.AddBudget(models.BudgetCategory{
		Name:   fmt.Sprintf("Budget %d", nextID()),
		Budget: limit,
		Spent:  spent,
	})
	if err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return &budget
}

// CreateTestGoal creates a goal due at the end of the year.
func CreateTestGoal(t *testing.T, l *ledger.Ledger, target, current int64) *models.Goal {
	t.Helper()
	goal, err := l.AddGoal(models.Goal{
		Name:     fmt.Sprintf("Goal %d", nextID()),
		Target:   target,
		Current:  current,
		Deadline: "2026-12-31",
	})
	if err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}
	return &goal
}

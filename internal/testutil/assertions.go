package testutil

import (
	"errors"
	"testing"

	apperrors "kexpay/internal/errors"
	"kexpay/internal/ledger"
)

// AssertAppError checks that err is an *AppError with the expected error code.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertLedgerCounts checks how many accounts, transactions, budgets and goals
// the ledger holds. Use it to prove a rejected mutation left no trace.
func AssertLedgerCounts(t *testing.T, l *ledger.Ledger, accounts, transactions, budgets, goals int) {
	t.Helper()

	got := [4]int{len(l.Accounts()), len(l.Transactions()), len(l.Budgets()), len(l.Goals())}
	want := [4]int{accounts, transactions, budgets, goals}
	if got != want {
		t.Errorf("expected accounts/transactions/budgets/goals %v, got %v", want, got)
	}
}

package ledger

import (
	"encoding/json"
	"fmt"
	"io"

	"kexpay/internal/models"
)

// Seed is the on-disk shape of an initial data set. Transactions are listed
// newest first, the way the dashboard shows them.
type Seed struct {
	Accounts     []models.Account        `json:"accounts"`
	Transactions []models.Transaction    `json:"transactions"`
	Budgets      []models.BudgetCategory `json:"budgets"`
	Goals        []models.Goal           `json:"goals"`
}

// LoadSeed decodes a seed document and replaces the ledger's contents with
// it. Every record goes through the same validation as the Add methods; on
// any error the ledger is left unchanged.
func (l *Ledger) LoadSeed(r io.Reader) error {
	var seed Seed
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&seed); err != nil {
		return fmt.Errorf("decode seed: %w", err)
	}

	staged := New(WithClock(l.now))
	for i, a := range seed.Accounts {
		if _, err := staged.AddAccount(a); err != nil {
			return fmt.Errorf("seed account %d: %w", i, err)
		}
	}
	// AddTransaction prepends, so walk oldest first to keep file order.
	for i := len(seed.Transactions) - 1; i >= 0; i-- {
		if _, err := staged.AddTransaction(seed.Transactions[i]); err != nil {
			return fmt.Errorf("seed transaction %d: %w", i, err)
		}
	}
	for i, b := range seed.Budgets {
		if _, err := staged.AddBudget(b); err != nil {
			return fmt.Errorf("seed budget %d: %w", i, err)
		}
	}
	for i, g := range seed.Goals {
		if _, err := staged.AddGoal(g); err != nil {
			return fmt.Errorf("seed goal %d: %w", i, err)
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.accounts = staged.accounts
	l.transactions = staged.transactions
	l.budgets = staged.budgets
	l.goals = staged.goals
	return nil
}

package services

import (
	apperrors "kexpay/internal/errors"
	"kexpay/internal/ledger"
	"kexpay/internal/metrics"
	"kexpay/internal/models"
)

// accountService handles account-related business logic.
type accountService struct {
	ledger *ledger.Ledger
	audit  AuditServicer
}

// NewAccountService creates a new AccountServicer.
func NewAccountService(l *ledger.Ledger, audit AuditServicer) AccountServicer {
	return &accountService{ledger: l, audit: audit}
}

// CreateAccount records a new account. Balance is signed.
func (s *accountService) CreateAccount(
	name, institution string,
	accountType models.AccountType,
	balance int64,
	number, accentColor string,
) (*models.Account, error) {
	account, err := s.ledger.AddAccount(models.Account{
		Name:        name,
		Institution: institution,
		Type:        accountType,
		Balance:     balance,
		Number:      number,
		AccentColor: accentColor,
	})
	if err != nil {
		return nil, translateLedgerError(err, apperrors.ErrAccountNotFound)
	}

	s.audit.Log("create", "account", account.ID, map[string]any{"name": account.Name, "type": account.Type})
	return &account, nil
}

// GetAccounts returns every account together with the net worth they add up to.
func (s *accountService) GetAccounts() (*AccountList, error) {
	accounts := s.ledger.Accounts()
	return &AccountList{
		Accounts: accounts,
		NetWorth: metrics.ComputeNetWorth(accounts),
	}, nil
}

// DeleteAccount removes an account.
func (s *accountService) DeleteAccount(accountID string) error {
	if err := s.ledger.RemoveAccount(accountID); err != nil {
		return translateLedgerError(err, apperrors.ErrAccountNotFound)
	}
	s.audit.Log("delete", "account", accountID, nil)
	return nil
}

package services

import (
	"strings"

	apperrors "kexpay/internal/errors"
	"kexpay/internal/format"
	"kexpay/internal/ledger"
	"kexpay/internal/metrics"
	"kexpay/internal/models"
	"kexpay/internal/pagination"
)

// Defaults applied to quick-add entries.
const (
	QuickAddCategory = "Shopping"
	QuickAddAccount  = "Cash"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	ledger *ledger.Ledger
	audit  AuditServicer
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(l *ledger.Ledger, audit AuditServicer) TransactionServicer {
	return &transactionService{ledger: l, audit: audit}
}

// CreateTransaction records a transaction. Empty date and time default to now.
func (s *transactionService) CreateTransaction(
	description, category string,
	amount int64,
	transactionType models.TransactionType,
	account, date, timeOfDay string,
) (*models.Transaction, error) {
	tx, err := s.ledger.AddTransaction(models.Transaction{
		Description: description,
		Category:    category,
		Amount:      amount,
		Type:        transactionType,
		Account:     account,
		Date:        date,
		Time:        timeOfDay,
	})
	if err != nil {
		return nil, translateLedgerError(err, apperrors.ErrTransactionNotFound)
	}

	s.audit.Log("create", "transaction", tx.ID, map[string]any{
		"type":     tx.Type,
		"amount":   tx.Amount,
		"category": tx.Category,
	})
	return &tx, nil
}

// QuickAddTransaction records a transaction from free text of the form
// "<description> <amount>", e.g. "Coffee 120". The entry is an expense unless
// the amount carries a leading "+". An empty category uses QuickAddCategory.
func (s *transactionService) QuickAddTransaction(text, category string) (*models.Transaction, error) {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return nil, apperrors.ErrQuickAddUnparseable
	}

	amountText := fields[len(fields)-1]
	transactionType := models.TransactionTypeExpense
	if strings.HasPrefix(amountText, "+") {
		transactionType = models.TransactionTypeIncome
		amountText = amountText[1:]
	}
	// unparseable amounts read as zero, which is never a valid entry
	amount := format.ParseAmountOrZero(amountText)
	if amount <= 0 {
		return nil, apperrors.ErrQuickAddUnparseable
	}

	if category == "" {
		category = QuickAddCategory
	}
	description := strings.Join(fields[:len(fields)-1], " ")
	return s.CreateTransaction(description, category, amount, transactionType, QuickAddAccount, "", "")
}

// GetTransactions filters and paginates transactions, newest first.
func (s *transactionService) GetTransactions(filter metrics.TransactionFilter, page pagination.PageRequest) (*TransactionList, error) {
	filtered := metrics.FilterTransactions(s.ledger.Transactions(), filter)
	result := pagination.Paginate(filtered, page)

	now := s.ledger.Now()
	dated := metrics.GroupByDate(result.Data)
	groups := make([]TransactionGroup, 0, len(dated))
	for _, g := range dated {
		groups = append(groups, TransactionGroup{
			Date:         g.Date,
			Label:        format.DateLabel(g.Date, now),
			Transactions: g.Transactions,
		})
	}

	return &TransactionList{
		PageResponse: result,
		Totals:       metrics.ComputeTotals(filtered),
		Groups:       groups,
	}, nil
}

// GetRecentTransactions returns the newest transactions split by direction.
func (s *transactionService) GetRecentTransactions(limit int) (*RecentTransactions, error) {
	if limit < 1 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "limit must be at least 1")
	}

	recent := &RecentTransactions{
		Expenses: []models.Transaction{},
		Income:   []models.Transaction{},
	}
	for _, tx := range s.ledger.RecentTransactions(limit) {
		if tx.Type == models.TransactionTypeIncome {
			recent.Income = append(recent.Income, tx)
		} else {
			recent.Expenses = append(recent.Expenses, tx)
		}
	}
	return recent, nil
}

// DeleteTransaction removes a transaction.
func (s *transactionService) DeleteTransaction(transactionID string) error {
	if err := s.ledger.RemoveTransaction(transactionID); err != nil {
		return translateLedgerError(err, apperrors.ErrTransactionNotFound)
	}
	s.audit.Log("delete", "transaction", transactionID, nil)
	return nil
}

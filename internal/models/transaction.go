package models

// TransactionType represents the direction of a transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Valid reports whether t is income or expense.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// DateLayout is the zero-padded calendar date format used for Transaction.Date
// and Goal.Deadline. Lexical order on this layout equals chronological order.
const DateLayout = "2006-01-02"

// MaxAmount bounds every stored amount, in paise (₹1,000 crore). Sums over
// millions of entries stay within int64.
const MaxAmount int64 = 1_000_000_000_000

// Transaction represents a single income or expense entry.
// Amount is always a non-negative magnitude; Type carries the sign.
type Transaction struct {
	Base
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	CategoryColor string          `json:"category_color"`
	Amount        int64           `json:"amount"`
	Type          TransactionType `json:"type"`
	Account       string          `json:"account"`
	Date          string          `json:"date"`
	Time          string          `json:"time"`
}

// Signed returns the amount with its direction applied.
func (t Transaction) Signed() int64 {
	if t.Type == TransactionTypeExpense {
		return -t.Amount
	}
	return t.Amount
}

package metrics

import (
	"sort"
	"strings"

	"kexpay/internal/models"
)

// TransactionFilter holds optional filter parameters for listing transactions.
// Zero values match everything.
type TransactionFilter struct {
	Category string
	Type     models.TransactionType
	Search   string
}

// FilterTransactions returns the transactions matching every set criterion,
// keeping input order. Category "All" matches any category; Search is a
// case-insensitive substring match on the description.
func FilterTransactions(transactions []models.Transaction, f TransactionFilter) []models.Transaction {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]models.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if f.Category != "" && f.Category != models.CategoryAll && tx.Category != f.Category {
			continue
		}
		if f.Type != "" && tx.Type != f.Type {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(tx.Description), search) {
			continue
		}
		out = append(out, tx)
	}
	return out
}

// DateGroup is the set of transactions recorded on one date.
type DateGroup struct {
	Date         string               `json:"date"`
	Transactions []models.Transaction `json:"transactions"`
}

// GroupByDate buckets transactions by date, newest date first. Within a
// group the input order is kept.
func GroupByDate(transactions []models.Transaction) []DateGroup {
	idx := make(map[string]int)
	groups := make([]DateGroup, 0)
	for _, tx := range transactions {
		i, ok := idx[tx.Date]
		if !ok {
			i = len(groups)
			idx[tx.Date] = i
			groups = append(groups, DateGroup{Date: tx.Date})
		}
		groups[i].Transactions = append(groups[i].Transactions, tx)
	}
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].Date > groups[j].Date })
	return groups
}

package metrics

import (
	"sort"

	"kexpay/internal/models"
)

// CategoryTotal is the summed expense of one category.
type CategoryTotal struct {
	Name    string `json:"name"`
	Amount  int64  `json:"amount"`
	Percent int    `json:"percent"`
	Color   string `json:"color"`
}

// ComputeCategoryBreakdown groups expense transactions by category and ranks
// the groups by amount, largest first. Equal amounts are ordered by category
// name so the ranking is reproducible.
func ComputeCategoryBreakdown(transactions []models.Transaction) []CategoryTotal {
	sums := make(map[string]int64)
	var total int64
	for _, tx := range transactions {
		if tx.Type != models.TransactionTypeExpense {
			continue
		}
		sums[tx.Category] += tx.Amount
		total += tx.Amount
	}

	out := make([]CategoryTotal, 0, len(sums))
	for name, amount := range sums {
		out = append(out, CategoryTotal{
			Name:    name,
			Amount:  amount,
			Percent: ratioPercent(amount, total),
			Color:   models.CategoryColor(name),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Amount != out[j].Amount {
			return out[i].Amount > out[j].Amount
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// TopCategory returns the highest-spending category, if any.
func TopCategory(breakdown []CategoryTotal) (CategoryTotal, bool) {
	if len(breakdown) == 0 {
		return CategoryTotal{}, false
	}
	return breakdown[0], true
}

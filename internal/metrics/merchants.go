package metrics

import (
	"sort"
	"strings"

	"kexpay/internal/models"
)

// MerchantSummary aggregates expenses sharing a description.
type MerchantSummary struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	Total int64  `json:"total"`
}

// ComputeMerchantSummary groups expenses by trimmed description and ranks
// merchants by total spent, then by name. limit <= 0 returns every merchant.
func ComputeMerchantSummary(transactions []models.Transaction, limit int) []MerchantSummary {
	idx := make(map[string]int)
	out := make([]MerchantSummary, 0)
	for _, tx := range transactions {
		if tx.Type != models.TransactionTypeExpense {
			continue
		}
		name := strings.TrimSpace(tx.Description)
		if name == "" {
			continue
		}
		i, ok := idx[name]
		if !ok {
			i = len(out)
			idx[name] = i
			out = append(out, MerchantSummary{Name: name})
		}
		out[i].Count++
		out[i].Total += tx.Amount
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Name < out[j].Name
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

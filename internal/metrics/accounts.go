package metrics

import "kexpay/internal/models"

// NetWorth summarises account balances.
type NetWorth struct {
	Total       int64 `json:"total"`
	Assets      int64 `json:"assets"`
	Liabilities int64 `json:"liabilities"`
}

// ComputeNetWorth sums signed balances. Liabilities are reported as a
// positive magnitude.
func ComputeNetWorth(accounts []models.Account) NetWorth {
	var nw NetWorth
	for _, a := range accounts {
		nw.Total += a.Balance
		if a.Balance > 0 {
			nw.Assets += a.Balance
		} else {
			nw.Liabilities -= a.Balance
		}
	}
	return nw
}

// Package metrics derives dashboard figures from in-memory records.
//
// Every function here is pure: it reads its arguments, never mutates them and
// keeps no state between calls. Callers recompute from scratch on every
// change, which is cheap at the sizes a single user produces.
//
// Every ratio is guarded against a zero denominator and yields 0 instead of
// NaN or infinity.
package metrics

import (
	"math"

	"kexpay/internal/models"
)

// Totals holds the aggregate income, expense and their difference.
type Totals struct {
	TotalIncome  int64 `json:"total_income"`
	TotalExpense int64 `json:"total_expense"`
	Balance      int64 `json:"balance"`
}

// ComputeTotals sums incomes and expenses. Order of the input is irrelevant.
func ComputeTotals(transactions []models.Transaction) Totals {
	var t Totals
	for _, tx := range transactions {
		switch tx.Type {
		case models.TransactionTypeIncome:
			t.TotalIncome += tx.Amount
		case models.TransactionTypeExpense:
			t.TotalExpense += tx.Amount
		}
	}
	t.Balance = t.TotalIncome - t.TotalExpense
	return t
}

// ComputeSavingsRate returns balance as a rounded percentage of income, or 0
// when there is no income.
func ComputeSavingsRate(totals Totals) int {
	return ratioPercent(totals.Balance, totals.TotalIncome)
}

// ratioPercent returns round(num/den*100), or 0 for den <= 0.
func ratioPercent(num, den int64) int {
	if den <= 0 {
		return 0
	}
	return roundHalfUp(float64(num) / float64(den) * 100)
}

// roundHalfUp rounds halves toward positive infinity (-2.5 -> -2, 2.5 -> 3).
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

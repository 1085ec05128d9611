package metrics

import (
	"sort"

	"kexpay/internal/format"
	"kexpay/internal/models"
)

// MonthlyData holds income and expense for one calendar month.
type MonthlyData struct {
	Month   string `json:"month"`
	Label   string `json:"label"`
	Income  int64  `json:"income"`
	Expense int64  `json:"expense"`
}

// ComputeMonthlySummary buckets transactions by the YYYY-MM prefix of their
// date, oldest month first. Transactions with a malformed date are skipped.
func ComputeMonthlySummary(transactions []models.Transaction) []MonthlyData {
	byMonth := make(map[string]*MonthlyData)
	for _, tx := range transactions {
		if len(tx.Date) < len("2006-01") {
			continue
		}
		key := tx.Date[:7]
		m, ok := byMonth[key]
		if !ok {
			m = &MonthlyData{Month: key, Label: format.MonthLabel(key)}
			byMonth[key] = m
		}
		switch tx.Type {
		case models.TransactionTypeIncome:
			m.Income += tx.Amount
		case models.TransactionTypeExpense:
			m.Expense += tx.Amount
		}
	}

	out := make([]MonthlyData, 0, len(byMonth))
	for _, m := range byMonth {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// ComputeQuarterlySummary folds monthly data into calendar quarters.
func ComputeQuarterlySummary(months []MonthlyData) []MonthlyData {
	out := make([]MonthlyData, 0)
	for _, m := range months {
		key, label := quarterOf(m.Month)
		if n := len(out); n > 0 && out[n-1].Month == key {
			out[n-1].Income += m.Income
			out[n-1].Expense += m.Expense
			continue
		}
		out = append(out, MonthlyData{Month: key, Label: label, Income: m.Income, Expense: m.Expense})
	}
	return out
}

func quarterOf(month string) (key, label string) {
	if len(month) < 7 {
		return month, month
	}
	q := "Q1"
	switch month[5:7] {
	case "04", "05", "06":
		q = "Q2"
	case "07", "08", "09":
		q = "Q3"
	case "10", "11", "12":
		q = "Q4"
	}
	return month[:4] + "-" + q, q + " " + month[:4]
}

// ComputeExpenseChange returns the percent change in expense from prev to
// cur, or 0 when prev had no expense.
func ComputeExpenseChange(cur, prev MonthlyData) int {
	return ratioPercent(cur.Expense-prev.Expense, prev.Expense)
}

// ComputeMonthSavingsRate returns the share of a month's income left after
// expenses, or 0 when the month had no income.
func ComputeMonthSavingsRate(m MonthlyData) int {
	return ratioPercent(m.Income-m.Expense, m.Income)
}

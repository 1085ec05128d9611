package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kexpay/internal/models"
)

func income(amount int64, date string) models.Transaction {
	return models.Transaction{Type: models.TransactionTypeIncome, Amount: amount, Date: date, Category: "Salary", Description: "Salary"}
}

func expense(amount int64, category, date string) models.Transaction {
	return models.Transaction{Type: models.TransactionTypeExpense, Amount: amount, Category: category, Date: date, Description: category}
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(models.DateLayout, s)
	require.NoError(t, err)
	return d
}

func TestComputeTotals(t *testing.T) {
	t.Run("empty input yields zeros", func(t *testing.T) {
		assert.Equal(t, Totals{}, ComputeTotals(nil))
	})

	t.Run("balance is income minus expense", func(t *testing.T) {
		txs := []models.Transaction{
			income(50000, "2026-02-01"),
			expense(20000, "Food & Dining", "2026-02-02"),
			expense(45000, "Housing", "2026-02-03"),
			income(1000, "2026-02-04"),
		}
		got := ComputeTotals(txs)
		assert.Equal(t, int64(51000), got.TotalIncome)
		assert.Equal(t, int64(65000), got.TotalExpense)
		assert.Equal(t, got.TotalIncome-got.TotalExpense, got.Balance)
		assert.Equal(t, int64(-14000), got.Balance)
	})
}

func TestComputeSavingsRate(t *testing.T) {
	cases := []struct {
		name   string
		totals Totals
		want   int
	}{
		{"no income", Totals{TotalExpense: 500, Balance: -500}, 0},
		{"all zero", Totals{}, 0},
		{"sixty percent", Totals{TotalIncome: 50000, TotalExpense: 20000, Balance: 30000}, 60},
		{"rounds half up", Totals{TotalIncome: 8, TotalExpense: 7, Balance: 1}, 13},
		{"negative", Totals{TotalIncome: 100, TotalExpense: 150, Balance: -50}, -50},
		{"negative half rounds toward zero", Totals{TotalIncome: 8, TotalExpense: 9, Balance: -1}, -12},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ComputeSavingsRate(tc.totals))
		})
	}
}

func TestComputeCategoryBreakdown(t *testing.T) {
	t.Run("ranks expenses and ignores income", func(t *testing.T) {
		txs := []models.Transaction{
			income(90000, "2026-02-01"),
			expense(1000, "Transport", "2026-02-01"),
			expense(5000, "Groceries", "2026-02-02"),
			expense(3000, "Transport", "2026-02-03"),
			expense(2000, "Health", "2026-02-03"),
		}
		got := ComputeCategoryBreakdown(txs)
		require.Len(t, got, 3)
		assert.Equal(t, "Groceries", got[0].Name)
		assert.Equal(t, int64(5000), got[0].Amount)
		assert.Equal(t, "Transport", got[1].Name)
		assert.Equal(t, int64(4000), got[1].Amount)
		assert.Equal(t, "Health", got[2].Name)
		assert.Equal(t, 45, got[0].Percent)
		assert.Equal(t, "bg-lime-500", got[0].Color)
	})

	t.Run("ties break alphabetically", func(t *testing.T) {
		txs := []models.Transaction{
			expense(100, "Shopping", "2026-02-01"),
			expense(100, "Entertainment", "2026-02-01"),
			expense(100, "Health", "2026-02-01"),
		}
		got := ComputeCategoryBreakdown(txs)
		require.Len(t, got, 3)
		assert.Equal(t, []string{"Entertainment", "Health", "Shopping"}, []string{got[0].Name, got[1].Name, got[2].Name})
	})

	t.Run("sums to total expense", func(t *testing.T) {
		txs := []models.Transaction{
			income(1234, "2026-01-01"),
			expense(17, "Shopping", "2026-01-02"),
			expense(29, "Health", "2026-01-03"),
			expense(31, "Shopping", "2026-01-04"),
			expense(999, "Housing", "2026-01-05"),
		}
		var sum int64
		for _, c := range ComputeCategoryBreakdown(txs) {
			sum += c.Amount
		}
		assert.Equal(t, ComputeTotals(txs).TotalExpense, sum)
	})

	t.Run("empty input has no top category", func(t *testing.T) {
		got := ComputeCategoryBreakdown(nil)
		assert.Empty(t, got)
		_, ok := TopCategory(got)
		assert.False(t, ok)
	})
}

func TestComputeHealthScore(t *testing.T) {
	t.Run("empty input scores zero", func(t *testing.T) {
		assert.Equal(t, 0, ComputeHealthScore(nil, Totals{}))
	})

	t.Run("maximum", func(t *testing.T) {
		txs := []models.Transaction{
			income(100000, "2026-02-01"),
			expense(1000, "Health", "2026-02-02"),
			expense(1000, "Health", "2026-02-03"),
			expense(1000, "Health", "2026-02-04"),
			expense(1000, "Health", "2026-02-05"),
		}
		assert.Equal(t, 100, ComputeHealthScore(txs, ComputeTotals(txs)))
	})

	t.Run("bands", func(t *testing.T) {
		cases := []struct {
			name  string
			txs   []models.Transaction
			score int
		}{
			// rate 60 -> 40, two txs -> 15, income -> 30
			{"two transactions", []models.Transaction{income(50000, "2026-02-01"), expense(20000, "Food & Dining", "2026-02-01")}, 85},
			// rate 10 -> 25, volume 15, income 30
			{"moderate savings", []models.Transaction{income(1000, "2026-02-01"), expense(900, "Health", "2026-02-01")}, 70},
			// rate 5 -> 10, volume 15, income 30
			{"thin savings", []models.Transaction{income(1000, "2026-02-01"), expense(950, "Health", "2026-02-01")}, 55},
			// rate -50 -> 0, volume 15, income 30
			{"overspending", []models.Transaction{income(1000, "2026-02-01"), expense(1500, "Health", "2026-02-01")}, 45},
			// no income -> rate 0 -> 10, one tx -> 0
			{"single expense", []models.Transaction{expense(1500, "Health", "2026-02-01")}, 10},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				assert.Equal(t, tc.score, ComputeHealthScore(tc.txs, ComputeTotals(tc.txs)))
			})
		}
	})

	t.Run("always within bounds", func(t *testing.T) {
		var txs []models.Transaction
		for i := 0; i < 40; i++ {
			if i%3 == 0 {
				txs = append(txs, income(int64(100*i), "2026-03-01"))
			} else {
				txs = append(txs, expense(int64(70*i), "Health", "2026-03-02"))
			}
			score := ComputeHealthScore(txs, ComputeTotals(txs))
			assert.GreaterOrEqual(t, score, 0)
			assert.LessOrEqual(t, score, 100)
		}
	})
}

func TestComputeRunningBalanceSeries(t *testing.T) {
	t.Run("empty input has no chart", func(t *testing.T) {
		got := ComputeRunningBalanceSeries(nil)
		assert.Empty(t, got)
		assert.False(t, HasChartData(got))
	})

	t.Run("single date has no chart", func(t *testing.T) {
		got := ComputeRunningBalanceSeries([]models.Transaction{income(100, "2026-02-01"), expense(40, "Health", "2026-02-01")})
		require.Len(t, got, 1)
		assert.Equal(t, int64(60), got[0].Value)
		assert.False(t, HasChartData(got))
	})

	t.Run("collapses same date after walking in input order", func(t *testing.T) {
		txs := []models.Transaction{
			expense(300, "Health", "2026-02-05"),
			income(1000, "2026-02-01"),
			income(200, "2026-02-05"),
		}
		got := ComputeRunningBalanceSeries(txs)
		require.Len(t, got, 2)
		assert.Equal(t, SeriesPoint{Date: "2026-02-01", Label: "1 Feb", Value: 1000}, got[0])
		assert.Equal(t, SeriesPoint{Date: "2026-02-05", Label: "5 Feb", Value: 900}, got[1])
		assert.True(t, HasChartData(got))
	})

	t.Run("does not reorder the caller's slice", func(t *testing.T) {
		txs := []models.Transaction{income(1, "2026-02-05"), income(1, "2026-02-01")}
		ComputeRunningBalanceSeries(txs)
		assert.Equal(t, "2026-02-05", txs[0].Date)
	})

	t.Run("grows with new dates and ends at balance", func(t *testing.T) {
		var txs []models.Transaction
		dates := []string{"2026-01-03", "2026-01-01", "2026-01-03", "2026-01-09", "2026-01-02"}
		prev := 0
		for i, d := range dates {
			if i%2 == 0 {
				txs = append(txs, income(int64(500+i), d))
			} else {
				txs = append(txs, expense(int64(300+i), "Health", d))
			}
			got := ComputeRunningBalanceSeries(txs)
			assert.GreaterOrEqual(t, len(got), prev)
			prev = len(got)
			assert.Equal(t, ComputeTotals(txs).Balance, got[len(got)-1].Value)
		}
		assert.Equal(t, 4, prev)
	})
}

func TestComputeBudgetStatus(t *testing.T) {
	cases := []struct {
		name    string
		budget  int64
		spent   int64
		percent int
		state   BudgetState
	}{
		{"exactly ninety percent", 10000, 9000, 90, BudgetOverLimit},
		{"just under ninety percent", 1000000, 899999, 90, BudgetCaution},
		{"exactly seventy percent", 10000, 7000, 70, BudgetCaution},
		{"just under seventy", 10000, 6999, 70, BudgetOnTrack},
		{"on track", 10000, 1000, 10, BudgetOnTrack},
		{"overspent", 10000, 15000, 150, BudgetOverLimit},
		{"zero limit", 0, 500, 0, BudgetOnTrack},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeBudgetStatus(models.BudgetCategory{Budget: tc.budget, Spent: tc.spent})
			assert.Equal(t, tc.percent, got.PercentUsed)
			assert.Equal(t, tc.state, got.Status)
			assert.Equal(t, tc.budget-tc.spent, got.Remaining)
			assert.LessOrEqual(t, got.BarPercent, 100)
		})
	}

	assert.Equal(t, "Over limit", BudgetOverLimit.Label())
	assert.Equal(t, "Caution", BudgetCaution.Label())
	assert.Equal(t, "On track", BudgetOnTrack.Label())
}

func TestComputeBudgetOverview(t *testing.T) {
	got := ComputeBudgetOverview([]models.BudgetCategory{
		{Budget: 10000, Spent: 9000},
		{Budget: 30000, Spent: 1000},
	})
	assert.Equal(t, BudgetOverview{TotalBudget: 40000, TotalSpent: 10000, TotalRemaining: 30000, OverallPercent: 25}, got)
	assert.Equal(t, 0, ComputeBudgetOverview(nil).OverallPercent)
}

func TestComputeGoalProgress(t *testing.T) {
	assert.Equal(t, 100, ComputeGoalProgress(models.Goal{Target: 500000, Current: 500000}).Percent)
	assert.True(t, ComputeGoalProgress(models.Goal{Target: 500000, Current: 500000}).Completed)
	assert.Equal(t, 96, ComputeGoalProgress(models.Goal{Target: 500000, Current: 480000}).Percent)
	assert.Equal(t, 0, ComputeGoalProgress(models.Goal{Target: 0, Current: 10}).Percent)

	over := ComputeGoalProgress(models.Goal{Target: 100, Current: 150})
	assert.Equal(t, 150, over.Percent)
	assert.Equal(t, int64(0), over.Remaining)
}

func TestComputeGoalsOverview(t *testing.T) {
	got := ComputeGoalsOverview([]models.Goal{{Target: 1000, Current: 250}, {Target: 3000, Current: 750}})
	assert.Equal(t, GoalsOverview{TotalTarget: 4000, TotalSaved: 1000, OverallPercent: 25}, got)
}

func TestComputeNetWorth(t *testing.T) {
	got := ComputeNetWorth([]models.Account{
		{Balance: 120000},
		{Balance: -45000},
		{Balance: 0},
		{Balance: 5000},
	})
	assert.Equal(t, NetWorth{Total: 80000, Assets: 125000, Liabilities: 45000}, got)
}

func TestMonthlySummary(t *testing.T) {
	txs := []models.Transaction{
		income(5000, "2026-02-01"),
		expense(1000, "Health", "2026-01-15"),
		expense(2500, "Health", "2026-02-10"),
		income(4000, "2026-01-01"),
		expense(100, "Health", "bad"),
	}
	months := ComputeMonthlySummary(txs)
	require.Len(t, months, 2)
	assert.Equal(t, MonthlyData{Month: "2026-01", Label: "Jan", Income: 4000, Expense: 1000}, months[0])
	assert.Equal(t, MonthlyData{Month: "2026-02", Label: "Feb", Income: 5000, Expense: 2500}, months[1])

	assert.Equal(t, 150, ComputeExpenseChange(months[1], months[0]))
	assert.Equal(t, 0, ComputeExpenseChange(months[1], MonthlyData{}))
	assert.Equal(t, 50, ComputeMonthSavingsRate(months[1]))
	assert.Equal(t, 0, ComputeMonthSavingsRate(MonthlyData{Expense: 10}))

	quarters := ComputeQuarterlySummary(append(months, MonthlyData{Month: "2026-04", Income: 1}))
	require.Len(t, quarters, 2)
	assert.Equal(t, MonthlyData{Month: "2026-Q1", Label: "Q1 2026", Income: 9000, Expense: 3500}, quarters[0])
	assert.Equal(t, "2026-Q2", quarters[1].Month)
}

func TestComputeMerchantSummary(t *testing.T) {
	txs := []models.Transaction{
		{Type: models.TransactionTypeExpense, Description: "Swiggy", Amount: 400},
		{Type: models.TransactionTypeExpense, Description: " Swiggy ", Amount: 600},
		{Type: models.TransactionTypeExpense, Description: "Uber", Amount: 1000},
		{Type: models.TransactionTypeExpense, Description: "Amazon", Amount: 300},
		{Type: models.TransactionTypeIncome, Description: "Salary", Amount: 90000},
	}
	got := ComputeMerchantSummary(txs, 0)
	require.Len(t, got, 3)
	assert.Equal(t, MerchantSummary{Name: "Swiggy", Count: 2, Total: 1000}, got[0])
	assert.Equal(t, MerchantSummary{Name: "Uber", Count: 1, Total: 1000}, got[1])

	assert.Len(t, ComputeMerchantSummary(txs, 1), 1)
}

func TestComputeMonthlyContribution(t *testing.T) {
	from := mustDate(t, "2026-02-10")
	assert.Equal(t, int64(100000), ComputeMonthlyContribution(500000, 0, from, "2026-07-01"))
	assert.Equal(t, int64(3334), ComputeMonthlyContribution(10000, 0, from, "2026-05-20"))
	assert.Equal(t, int64(10000), ComputeMonthlyContribution(10000, 0, from, "2026-02-28"))
	assert.Equal(t, int64(10000), ComputeMonthlyContribution(10000, 0, from, "2025-01-01"))
	assert.Equal(t, int64(0), ComputeMonthlyContribution(10000, 10000, from, "2026-12-01"))
	assert.Equal(t, int64(500), ComputeMonthlyContribution(1000, 500, from, "not a date"))
}

func TestFilterTransactions(t *testing.T) {
	txs := []models.Transaction{
		{Description: "Monthly salary", Category: "Salary", Type: models.TransactionTypeIncome},
		{Description: "Big Basket", Category: "Groceries", Type: models.TransactionTypeExpense},
		{Description: "basket ball", Category: "Entertainment", Type: models.TransactionTypeExpense},
	}

	assert.Len(t, FilterTransactions(txs, TransactionFilter{}), 3)
	assert.Len(t, FilterTransactions(txs, TransactionFilter{Category: models.CategoryAll}), 3)
	assert.Len(t, FilterTransactions(txs, TransactionFilter{Type: models.TransactionTypeExpense}), 2)
	assert.Len(t, FilterTransactions(txs, TransactionFilter{Search: "BASKET"}), 2)

	got := FilterTransactions(txs, TransactionFilter{Category: "Groceries", Search: "basket"})
	require.Len(t, got, 1)
	assert.Equal(t, "Big Basket", got[0].Description)
}

func TestGroupByDate(t *testing.T) {
	txs := []models.Transaction{
		{Description: "a", Date: "2026-02-01"},
		{Description: "b", Date: "2026-02-03"},
		{Description: "c", Date: "2026-02-01"},
	}
	groups := GroupByDate(txs)
	require.Len(t, groups, 2)
	assert.Equal(t, "2026-02-03", groups[0].Date)
	assert.Equal(t, "2026-02-01", groups[1].Date)
	require.Len(t, groups[1].Transactions, 2)
	assert.Equal(t, "a", groups[1].Transactions[0].Description)
	assert.Equal(t, "c", groups[1].Transactions[1].Description)
}

func TestComputeOverview(t *testing.T) {
	t.Run("income and food expense", func(t *testing.T) {
		o := ComputeOverview([]models.Transaction{
			income(50000, "2026-02-01"),
			expense(20000, "Food", "2026-02-02"),
		})
		assert.Equal(t, int64(30000), o.Totals.Balance)
		assert.Equal(t, 60, o.SavingsRate)
		require.NotNil(t, o.TopCategory)
		assert.Equal(t, "Food", o.TopCategory.Name)
		assert.Equal(t, int64(20000), o.TopCategory.Amount)
		assert.True(t, o.HasChartData)
	})

	t.Run("empty", func(t *testing.T) {
		o := ComputeOverview(nil)
		assert.Equal(t, Totals{}, o.Totals)
		assert.Equal(t, 0, o.HealthScore)
		assert.Nil(t, o.TopCategory)
		assert.False(t, o.HasChartData)
	})
}

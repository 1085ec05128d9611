package services

import (
	"fmt"
	"strconv"

	"kexpay/internal/format"
	"kexpay/internal/ledger"
	"kexpay/internal/metrics"
)

// dashboardService composes the overview page.
type dashboardService struct {
	ledger *ledger.Ledger
}

// NewDashboardService creates a new DashboardServicer.
func NewDashboardService(l *ledger.Ledger) DashboardServicer {
	return &dashboardService{ledger: l}
}

// GetMetrics returns the four headline cards. The expense card compares the
// two most recent months that have any activity.
func (s *dashboardService) GetMetrics() (*DashboardMetrics, error) {
	txs := s.ledger.Transactions()
	totals := metrics.ComputeTotals(txs)
	rate := metrics.ComputeSavingsRate(totals)

	expenses := MetricCard{
		Title:  "Expenses",
		Value:  format.Currency(totals.TotalExpense),
		Amount: totals.TotalExpense,
	}
	savings := MetricCard{
		Title:  "Savings Rate",
		Value:  format.Percent(rate),
		Amount: int64(rate),
	}
	if months := metrics.ComputeMonthlySummary(txs); len(months) >= 2 {
		cur, prev := months[len(months)-1], months[len(months)-2]
		if prev.Expense > 0 {
			change := metrics.ComputeExpenseChange(cur, prev)
			expenses.Change = fmt.Sprintf("%+d%% vs last month", change)
			expenses.Trend = trendOf(int64(change))
		}
		delta := metrics.ComputeMonthSavingsRate(cur) - metrics.ComputeMonthSavingsRate(prev)
		savings.Change = fmt.Sprintf("%+d pts vs last month", delta)
		savings.Trend = trendOf(int64(delta))
	}

	return &DashboardMetrics{
		Cards: []MetricCard{
			{
				Title:  "Total Balance",
				Value:  format.SignedCurrency(totals.Balance),
				Amount: totals.Balance,
				Trend:  trendOf(totals.Balance),
			},
			{
				Title:  "Income",
				Value:  format.Currency(totals.TotalIncome),
				Amount: totals.TotalIncome,
			},
			expenses,
			savings,
		},
		Totals: totals,
	}, nil
}

// GetInsights returns the health score and the lines explaining it. With no
// transactions the score is absent and the list is empty.
func (s *dashboardService) GetInsights() (*DashboardInsights, error) {
	txs := s.ledger.Transactions()
	if len(txs) == 0 {
		return &DashboardInsights{Metrics: []InsightMetric{}}, nil
	}

	overview := metrics.ComputeOverview(txs)
	score := overview.HealthScore
	lines := []InsightMetric{
		{Label: "Savings rate", Value: format.Percent(overview.SavingsRate), Desc: "Share of income kept"},
	}
	if top := overview.TopCategory; top != nil {
		lines = append(lines, InsightMetric{
			Label: "Top category",
			Value: top.Name,
			Desc:  format.Currency(top.Amount) + " spent",
		})
	}
	lines = append(lines, InsightMetric{
		Label: "Transactions",
		Value: strconv.Itoa(len(txs)),
		Desc:  "Recorded so far",
	})

	if budgets := s.ledger.Budgets(); len(budgets) > 0 {
		onTrack := 0
		for _, b := range budgets {
			if metrics.ComputeBudgetStatus(b).Status == metrics.BudgetOnTrack {
				onTrack++
			}
		}
		lines = append(lines, InsightMetric{
			Label: "Budgets on track",
			Value: fmt.Sprintf("%d/%d", onTrack, len(budgets)),
			Desc:  "Under 70% of their limit",
		})
	}
	if goals := s.ledger.Goals(); len(goals) > 0 {
		lines = append(lines, InsightMetric{
			Label: "Goals",
			Value: format.Percent(metrics.ComputeGoalsOverview(goals).OverallPercent),
			Desc:  "Saved toward targets",
		})
	}

	return &DashboardInsights{OverallPercent: &score, Metrics: lines}, nil
}

// GetChart returns the running balance series.
func (s *dashboardService) GetChart() (*ChartData, error) {
	series := metrics.ComputeRunningBalanceSeries(s.ledger.Transactions())
	return &ChartData{Points: series, HasData: metrics.HasChartData(series)}, nil
}

func trendOf(v int64) string {
	switch {
	case v > 0:
		return TrendUp
	case v < 0:
		return TrendDown
	default:
		return TrendNeutral
	}
}

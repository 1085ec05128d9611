package metrics

import "kexpay/internal/models"

// Overview bundles every figure the overview page derives from transactions.
type Overview struct {
	Totals       Totals          `json:"totals"`
	SavingsRate  int             `json:"savings_rate"`
	HealthScore  int             `json:"health_score"`
	Breakdown    []CategoryTotal `json:"breakdown"`
	TopCategory  *CategoryTotal  `json:"top_category,omitempty"`
	Series       []SeriesPoint   `json:"series"`
	HasChartData bool            `json:"has_chart_data"`
}

// ComputeOverview runs the full calculator over one transaction list.
func ComputeOverview(transactions []models.Transaction) Overview {
	totals := ComputeTotals(transactions)
	breakdown := ComputeCategoryBreakdown(transactions)
	series := ComputeRunningBalanceSeries(transactions)

	o := Overview{
		Totals:       totals,
		SavingsRate:  ComputeSavingsRate(totals),
		HealthScore:  ComputeHealthScore(transactions, totals),
		Breakdown:    breakdown,
		Series:       series,
		HasChartData: HasChartData(series),
	}
	if top, ok := TopCategory(breakdown); ok {
		o.TopCategory = &top
	}
	return o
}

package metrics

import (
	"sort"

	"kexpay/internal/format"
	"kexpay/internal/models"
)

// SeriesPoint is one point of the running balance chart.
type SeriesPoint struct {
	Date  string `json:"date"`
	Label string `json:"label"`
	Value int64  `json:"value"`
}

// minChartPoints is the smallest series worth drawing as a line.
const minChartPoints = 2

// ComputeRunningBalanceSeries walks the transactions in date order and emits
// one point per distinct date carrying the running balance after that date.
//
// Dates compare lexically, which is chronological for zero-padded YYYY-MM-DD.
// The sort is stable: transactions sharing a date are applied in input order
// and the last of them determines the point's value.
func ComputeRunningBalanceSeries(transactions []models.Transaction) []SeriesPoint {
	sorted := make([]models.Transaction, len(transactions))
	copy(sorted, transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})

	points := make([]SeriesPoint, 0)
	var running int64
	for _, tx := range sorted {
		running += tx.Signed()
		if n := len(points); n > 0 && points[n-1].Date == tx.Date {
			points[n-1].Value = running
			continue
		}
		points = append(points, SeriesPoint{
			Date:  tx.Date,
			Label: format.ShortDate(tx.Date),
			Value: running,
		})
	}
	return points
}

// HasChartData reports whether a series has enough points to draw. Fewer
// than two points render the empty state.
func HasChartData(series []SeriesPoint) bool {
	return len(series) >= minChartPoints
}

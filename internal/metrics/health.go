package metrics

import "kexpay/internal/models"

const (
	maxHealthScore = 100

	savingsStrong   = 20
	savingsModerate = 10

	volumeActive = 5
	volumeSome   = 2
)

// ComputeHealthScore combines savings rate, transaction volume and income
// presence into a 0-100 indicator. An empty transaction list scores 0.
func ComputeHealthScore(transactions []models.Transaction, totals Totals) int {
	if len(transactions) == 0 {
		return 0
	}

	score := savingsBand(ComputeSavingsRate(totals)) + volumeBand(len(transactions))
	if totals.TotalIncome > 0 {
		score += 30
	}

	if score < 0 {
		return 0
	}
	if score > maxHealthScore {
		return maxHealthScore
	}
	return score
}

func savingsBand(rate int) int {
	switch {
	case rate >= savingsStrong:
		return 40
	case rate >= savingsModerate:
		return 25
	case rate >= 0:
		return 10
	default:
		return 0
	}
}

func volumeBand(n int) int {
	switch {
	case n >= volumeActive:
		return 30
	case n >= volumeSome:
		return 15
	default:
		return 0
	}
}

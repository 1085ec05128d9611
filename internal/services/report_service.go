package services

import (
	apperrors "kexpay/internal/errors"
	"kexpay/internal/ledger"
	"kexpay/internal/metrics"
)

// topMerchants is how many merchants a report lists.
const topMerchants = 5

// reportService builds the reports page.
type reportService struct {
	ledger *ledger.Ledger
}

// NewReportService creates a new ReportServicer.
func NewReportService(l *ledger.Ledger) ReportServicer {
	return &reportService{ledger: l}
}

// GetReport aggregates transactions by month or quarter. Expense change and
// savings rate describe the latest period against the one before it.
func (s *reportService) GetReport(period string) (*Report, error) {
	if period == "" {
		period = PeriodMonthly
	}

	txs := s.ledger.Transactions()
	periods := metrics.ComputeMonthlySummary(txs)
	switch period {
	case PeriodMonthly:
	case PeriodQuarterly:
		periods = metrics.ComputeQuarterlySummary(periods)
	default:
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "period must be monthly or quarterly")
	}

	report := &Report{
		Period:    period,
		Periods:   periods,
		Totals:    metrics.ComputeTotals(txs),
		Breakdown: metrics.ComputeCategoryBreakdown(txs),
		Merchants: metrics.ComputeMerchantSummary(txs, topMerchants),
	}
	if n := len(periods); n > 0 {
		report.SavingsRate = metrics.ComputeMonthSavingsRate(periods[n-1])
		if n > 1 {
			report.ExpenseChange = metrics.ComputeExpenseChange(periods[n-1], periods[n-2])
		}
	}
	return report, nil
}

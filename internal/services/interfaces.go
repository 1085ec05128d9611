package services

import (
	"kexpay/internal/metrics"
	"kexpay/internal/models"
	"kexpay/internal/pagination"
)

// AccountList is the accounts page payload.
type AccountList struct {
	Accounts []models.Account `json:"accounts"`
	NetWorth metrics.NetWorth `json:"net_worth"`
}

// AccountServicer defines the contract for account-related business logic.
type AccountServicer interface {
	CreateAccount(name, institution string, accountType models.AccountType, balance int64, number, accentColor string) (*models.Account, error)
	GetAccounts() (*AccountList, error)
	DeleteAccount(accountID string) error
}

// TransactionGroup is one dated section of the transactions list.
type TransactionGroup struct {
	Date         string               `json:"date"`
	Label        string               `json:"label"`
	Transactions []models.Transaction `json:"transactions"`
}

// TransactionList is a filtered, paginated transaction listing. Totals cover
// the whole filtered set, not just the page.
type TransactionList struct {
	pagination.PageResponse[models.Transaction]
	Totals metrics.Totals      `json:"totals"`
	Groups []TransactionGroup `json:"groups"`
}

// RecentTransactions splits the newest transactions by direction.
type RecentTransactions struct {
	Expenses []models.Transaction `json:"expenses"`
	Income   []models.Transaction `json:"income"`
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(description, category string, amount int64, transactionType models.TransactionType, account, date, timeOfDay string) (*models.Transaction, error)
	QuickAddTransaction(text, category string) (*models.Transaction, error)
	GetTransactions(filter metrics.TransactionFilter, page pagination.PageRequest) (*TransactionList, error)
	GetRecentTransactions(limit int) (*RecentTransactions, error)
	DeleteTransaction(transactionID string) error
}

// BudgetList is the budgets page payload.
type BudgetList struct {
	Budgets  []metrics.BudgetStatus `json:"budgets"`
	Overview metrics.BudgetOverview `json:"overview"`
}

// BudgetServicer defines the contract for budget-related business logic.
type BudgetServicer interface {
	CreateBudget(name, icon, color string, limit, spent int64) (*metrics.BudgetStatus, error)
	GetBudgets() (*BudgetList, error)
	LogSpending(budgetID string, amount int64) (*metrics.BudgetStatus, error)
	DeleteBudget(budgetID string) error
}

// GoalList is the goals page payload.
type GoalList struct {
	Goals    []metrics.GoalProgress `json:"goals"`
	Overview metrics.GoalsOverview  `json:"overview"`
}

// GoalServicer defines the contract for savings-goal business logic.
type GoalServicer interface {
	CreateGoal(name, icon, color string, target, current int64, deadline string) (*metrics.GoalProgress, error)
	GetGoals() (*GoalList, error)
	AddSavings(goalID string, amount int64) (*metrics.GoalProgress, error)
	DeleteGoal(goalID string) error
}

// Trend directions for metric cards.
const (
	TrendUp      = "up"
	TrendDown    = "down"
	TrendNeutral = "neutral"
)

// MetricCard is one headline figure on the overview page.
type MetricCard struct {
	Title  string `json:"title"`
	Value  string `json:"value"`
	Amount int64  `json:"amount"`
	Change string `json:"change,omitempty"`
	Trend  string `json:"trend,omitempty"`
}

// DashboardMetrics holds the overview metric cards.
type DashboardMetrics struct {
	Cards  []MetricCard   `json:"cards"`
	Totals metrics.Totals `json:"totals"`
}

// InsightMetric is one line of the insights widget.
type InsightMetric struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Desc  string `json:"desc"`
}

// DashboardInsights holds the health score and its supporting lines.
// OverallPercent is nil when there is nothing to score.
type DashboardInsights struct {
	OverallPercent *int            `json:"overall_percent"`
	Metrics        []InsightMetric `json:"metrics"`
}

// ChartData is the running balance chart payload.
type ChartData struct {
	Points  []metrics.SeriesPoint `json:"points"`
	HasData bool                  `json:"has_data"`
}

// DashboardServicer composes the overview page from the ledger.
type DashboardServicer interface {
	GetMetrics() (*DashboardMetrics, error)
	GetInsights() (*DashboardInsights, error)
	GetChart() (*ChartData, error)
}

// Report periods.
const (
	PeriodMonthly   = "monthly"
	PeriodQuarterly = "quarterly"
)

// Report is the reports page payload.
type Report struct {
	Period        string                    `json:"period"`
	Periods       []metrics.MonthlyData     `json:"periods"`
	Totals        metrics.Totals            `json:"totals"`
	ExpenseChange int                       `json:"expense_change"`
	SavingsRate   int                       `json:"savings_rate"`
	Breakdown     []metrics.CategoryTotal   `json:"breakdown"`
	Merchants     []metrics.MerchantSummary `json:"merchants"`
}

// ReportServicer builds period reports.
type ReportServicer interface {
	GetReport(period string) (*Report, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(action, resourceType, resourceID string, changes map[string]any)
}

// Package server assembles the HTTP API: services over a ledger, handlers,
// middleware and routes.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"kexpay/internal/config"
	_ "kexpay/internal/docs" // registers the swagger document
	"kexpay/internal/handlers"
	"kexpay/internal/ledger"
	"kexpay/internal/middleware"
	"kexpay/internal/services"
	"kexpay/internal/validator"
)

// Services bundles every service the router exposes.
type Services struct {
	Accounts     services.AccountServicer
	Transactions services.TransactionServicer
	Budgets      services.BudgetServicer
	Goals        services.GoalServicer
	Dashboard    services.DashboardServicer
	Reports      services.ReportServicer
}

// NewServices builds the full service set over one ledger.
func NewServices(l *ledger.Ledger, audit services.AuditServicer) Services {
	return Services{
		Accounts:     services.NewAccountService(l, audit),
		Transactions: services.NewTransactionService(l, audit),
		Budgets:      services.NewBudgetService(l, audit),
		Goals:        services.NewGoalService(l, audit),
		Dashboard:    services.NewDashboardService(l),
		Reports:      services.NewReportService(l),
	}
}

// NewRouter wires middleware and every /api route. It also registers the
// custom binding validators the handlers rely on.
func NewRouter(cfg *config.Config, svc Services) *gin.Engine {
	validator.Register()

	accountHandler := handlers.NewAccountHandler(svc.Accounts)
	transactionHandler := handlers.NewTransactionHandler(svc.Transactions, cfg.RecentLimit)
	budgetHandler := handlers.NewBudgetHandler(svc.Budgets)
	goalHandler := handlers.NewGoalHandler(svc.Goals)
	dashboardHandler := handlers.NewDashboardHandler(svc.Dashboard, svc.Reports)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS(cfg.CORSOrigin))
	router.NoRoute(middleware.NotFound())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	accounts := api.Group("/accounts")
	accounts.POST("", accountHandler.CreateAccount)
	accounts.GET("", accountHandler.GetAccounts)
	accounts.DELETE("/:id", accountHandler.DeleteAccount)

	transactions := api.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.POST("/quick", transactionHandler.QuickAddTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.GET("/recent", transactionHandler.GetRecentTransactions)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	budgets := api.Group("/budgets")
	budgets.POST("", budgetHandler.CreateBudget)
	budgets.GET("", budgetHandler.GetBudgets)
	budgets.POST("/:id/spend", budgetHandler.LogSpending)
	budgets.DELETE("/:id", budgetHandler.DeleteBudget)

	goals := api.Group("/goals")
	goals.POST("", goalHandler.CreateGoal)
	goals.GET("", goalHandler.GetGoals)
	goals.POST("/:id/savings", goalHandler.AddSavings)
	goals.DELETE("/:id", goalHandler.DeleteGoal)

	dashboard := api.Group("/dashboard")
	dashboard.GET("/metrics", dashboardHandler.GetMetrics)
	dashboard.GET("/insights", dashboardHandler.GetInsights)
	dashboard.GET("/chart", dashboardHandler.GetChart)

	api.GET("/reports", dashboardHandler.GetReport)

	return router
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "kexpay/internal/errors"
	"kexpay/internal/metrics"
	"kexpay/internal/models"
	"kexpay/internal/pagination"
	"kexpay/internal/services"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
	recentLimit        int
}

// NewTransactionHandler creates a new TransactionHandler. recentLimit is the
// default size of the recent transactions list.
func NewTransactionHandler(transactionService services.TransactionServicer, recentLimit int) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService, recentLimit: recentLimit}
}

// CreateTransactionRequest represents the request payload for creating a transaction
type CreateTransactionRequest struct {
	Description string                 `json:"description" binding:"required,max=200"`
	Category    string                 `json:"category" binding:"required,txn_category"`
	Amount      int64                  `json:"amount" binding:"required,gt=0,lte=1000000000000"`
	Type        models.TransactionType `json:"type" binding:"required,transaction_kind"`
	Account     string                 `json:"account" binding:"max=100"`
	Date        string                 `json:"date" binding:"omitempty,iso_date"`
	Time        string                 `json:"time" binding:"max=20"`
}

// QuickAddRequest represents the free-text quick add payload.
type QuickAddRequest struct {
	Text     string `json:"text" binding:"required,max=200"`
	Category string `json:"category" binding:"omitempty,txn_category"`
}

// TransactionListQuery holds the list filters.
type TransactionListQuery struct {
	pagination.PageRequest
	Category string                 `form:"category"`
	Type     models.TransactionType `form:"type" binding:"omitempty,transaction_kind"`
	Search   string                 `form:"search" binding:"max=100"`
}

// RecentQuery holds the recent transactions limit.
type RecentQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}

// CreateTransaction handles the creation of a new transaction
// @Summary     Create a transaction
// @Description Record an income or expense. Date and time default to now.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} models.Transaction "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	tx, err := h.transactionService.CreateTransaction(
		req.Description, req.Category, req.Amount, req.Type, req.Account, req.Date, req.Time,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": tx})
}

// QuickAddTransaction handles free-text entry such as "Coffee 120".
// @Summary     Quick add a transaction
// @Description Parse "<description> <amount>" into an expense; a leading + on the amount records income
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       request body QuickAddRequest true "Quick add text"
// @Success     201 {object} models.Transaction "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /transactions/quick [post]
func (h *TransactionHandler) QuickAddTransaction(c *gin.Context) {
	var req QuickAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	tx, err := h.transactionService.QuickAddTransaction(req.Text, req.Category)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": tx})
}

// GetTransactions handles the filtered transaction list.
// @Summary     List transactions
// @Description Filter by category, type and search text; totals cover every matching transaction
// @Tags        transactions
// @Produce     json
// @Param       category  query string false "Category name or All"
// @Param       type      query string false "income or expense"
// @Param       search    query string false "Case-insensitive description search"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} services.TransactionList "Transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /transactions [get]
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	var q TransactionListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	if q.Category != "" && q.Category != models.CategoryAll && !models.IsCategory(q.Category) {
		respondWithError(c, apperrors.ErrInvalidCategory)
		return
	}

	filter := metrics.TransactionFilter{Category: q.Category, Type: q.Type, Search: q.Search}
	result, err := h.transactionService.GetTransactions(filter, q.PageRequest)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetRecentTransactions handles the quick transactions widget.
// @Summary     Recent transactions
// @Description Newest transactions split into expenses and income
// @Tags        transactions
// @Produce     json
// @Param       limit query int false "How many transactions to consider"
// @Success     200 {object} services.RecentTransactions "Recent transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /transactions/recent [get]
func (h *TransactionHandler) GetRecentTransactions(c *gin.Context) {
	var q RecentQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	if q.Limit == 0 {
		q.Limit = h.recentLimit
	}

	recent, err := h.transactionService.GetRecentTransactions(q.Limit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, recent)
}

// DeleteTransaction handles transaction removal.
// @Summary     Delete a transaction
// @Tags        transactions
// @Produce     json
// @Param       id path string true "Transaction ID"
// @Success     200 {object} map[string]string "Transaction deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.transactionService.DeleteTransaction(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}

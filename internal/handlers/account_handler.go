package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "kexpay/internal/errors"
	"kexpay/internal/models"
	"kexpay/internal/services"
)

// AccountHandler handles account-related requests
type AccountHandler struct {
	accountService services.AccountServicer
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(accountService services.AccountServicer) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// CreateAccountRequest represents the request payload for creating an account.
// Balance is signed; credit cards carry a negative balance.
type CreateAccountRequest struct {
	Name        string             `json:"name" binding:"required,min=1,max=100"`
	Institution string             `json:"institution" binding:"max=100"`
	Type        models.AccountType `json:"type" binding:"required,account_type"`
	Balance     int64              `json:"balance" binding:"gte=-1000000000000,lte=1000000000000"`
	Number      string             `json:"number" binding:"max=30"`
	AccentColor string             `json:"accent_color" binding:"max=50"`
}

// CreateAccount handles account creation
// @Summary     Create an account
// @Tags        accounts
// @Accept      json
// @Produce     json
// @Param       request body CreateAccountRequest true "Account details"
// @Success     201 {object} models.Account "Account created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /accounts [post]
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	account, err := h.accountService.CreateAccount(req.Name, req.Institution, req.Type, req.Balance, req.Number, req.AccentColor)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"account": account})
}

// GetAccounts lists every account with the resulting net worth
// @Summary     List accounts
// @Tags        accounts
// @Produce     json
// @Success     200 {object} services.AccountList "Accounts and net worth"
// @Router      /accounts [get]
func (h *AccountHandler) GetAccounts(c *gin.Context) {
	result, err := h.accountService.GetAccounts()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// DeleteAccount handles account removal
// @Summary     Delete an account
// @Tags        accounts
// @Produce     json
// @Param       id path string true "Account ID"
// @Success     200 {object} map[string]string "Account deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Router      /accounts/{id} [delete]
func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.accountService.DeleteAccount(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account deleted successfully"})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "kexpay/internal/errors"
	"kexpay/internal/services"
)

// GoalHandler handles savings-goal requests.
type GoalHandler struct {
	goalService services.GoalServicer
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(goalService services.GoalServicer) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

// CreateGoalRequest represents the request payload for creating a goal.
type CreateGoalRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Icon     string `json:"icon" binding:"max=50"`
	Color    string `json:"color" binding:"max=50"`
	Target   int64  `json:"target" binding:"required,gt=0,lte=1000000000000"`
	Current  int64  `json:"current" binding:"gte=0,lte=1000000000000"`
	Deadline string `json:"deadline" binding:"required,iso_date"`
}

// CreateGoal handles the creation of a new goal.
// @Summary     Create a goal
// @Description Create a savings goal; the monthly contribution is fixed at creation
// @Tags        goals
// @Accept      json
// @Produce     json
// @Param       request body CreateGoalRequest true "Goal details"
// @Success     201 {object} metrics.GoalProgress "Goal created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /goals [post]
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	var req CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	goal, err := h.goalService.CreateGoal(req.Name, req.Icon, req.Color, req.Target, req.Current, req.Deadline)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"goal": goal})
}

// GetGoals handles listing goals with progress.
// @Summary     Get goals
// @Tags        goals
// @Produce     json
// @Success     200 {object} services.GoalList "Goals"
// @Router      /goals [get]
func (h *GoalHandler) GetGoals(c *gin.Context) {
	result, err := h.goalService.GetGoals()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// AddSavings handles crediting a goal.
// @Summary     Add savings
// @Description Credit a goal; savings never exceed the target
// @Tags        goals
// @Accept      json
// @Produce     json
// @Param       id      path string        true "Goal ID"
// @Param       request body AmountRequest true "Amount saved"
// @Success     200 {object} metrics.GoalProgress "Updated goal"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Router      /goals/{id}/savings [post]
func (h *GoalHandler) AddSavings(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	goal, err := h.goalService.AddSavings(id, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"goal": goal})
}

// DeleteGoal handles deleting a goal.
// @Summary     Delete a goal
// @Tags        goals
// @Produce     json
// @Param       id path string true "Goal ID"
// @Success     200 {object} map[string]string "Goal deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Router      /goals/{id} [delete]
func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.goalService.DeleteGoal(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Goal deleted successfully"})
}

package handlers

import (
	"time"

	"debtledger/models"
	"debtledger/services"
	"debtledger/utils"

	"github.com/gin-gonic/gin"
)

// DebtHandler handles debt-related HTTP requests
type DebtHandler struct {
	debtService *services.DebtService
}

// NewDebtHandler creates a new debt handler
func NewDebtHandler(debtService *services.DebtService) *DebtHandler {
	return &DebtHandler{debtService: debtService}
}

// ListDebts handles POST /debts/list
func (h *DebtHandler) ListDebts(c *gin.Context) {
	utils.HandleSuccess(c, h.debtService.Views(time.Now()))
}

// CreateDebt handles POST /debts/create
func (h *DebtHandler) CreateDebt(c *gin.Context) {
	var req models.CreateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	if err := validateDebtFields(req.Title, req.Amount, req.InterestRate); err != nil {
		utils.HandleError(c, err)
		return
	}

	debt := models.NewDebt(req.Title, req.Amount, req.DueDate, req.InterestRate, req.Notes)
	h.debtService.Add(*debt)

	utils.HandleSuccess(c, debt)
}

// UpdateDebt handles POST /debts/update
func (h *DebtHandler) UpdateDebt(c *gin.Context) {
	var req models.UpdateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	if err := validateDebtFields(req.Title, req.Amount, req.InterestRate); err != nil {
		utils.HandleError(c, err)
		return
	}

	existing, found := h.findDebt(req.ID)
	if !found {
		utils.HandleError(c, utils.NewNotFoundError("Debt"))
		return
	}

	updated := models.Debt{
		ID:           req.ID,
		Title:        req.Title,
		Amount:       req.Amount,
		DueDate:      req.DueDate,
		InterestRate: req.InterestRate,
		Notes:        req.Notes,
		Payments:     existing.Payments,
	}
	h.debtService.Update(updated)

	utils.HandleSuccess(c, updated)
}

// DeleteDebt handles POST /debts/remove
func (h *DebtHandler) DeleteDebt(c *gin.Context) {
	var req models.DeleteDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	if _, found := h.findDebt(req.ID); !found {
		utils.HandleError(c, utils.NewNotFoundError("Debt"))
		return
	}

	h.debtService.Delete(req.ID)
	utils.HandleSuccess(c, gin.H{"message": "Debt deleted successfully"})
}

// validateDebtFields rejects input the binding tags cannot express, like
// whitespace-only titles
func validateDebtFields(title string, amount, interestRate float64) error {
	if err := utils.ValidateRequired(title, "title"); err != nil {
		return err
	}
	if err := utils.ValidatePositive(amount, "amount"); err != nil {
		return err
	}
	return utils.ValidateNonNegative(interestRate, "interest rate")
}

func (h *DebtHandler) findDebt(id string) (models.Debt, bool) {
	for _, debt := range h.debtService.Debts() {
		if debt.ID == id {
			return debt, true
		}
	}
	return models.Debt{}, false
}

package handlers

import (
	"debtledger/models"
	"debtledger/services"
	"debtledger/utils"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles payment-related HTTP requests
type PaymentHandler struct {
	debtService *services.DebtService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(debtService *services.DebtService) *PaymentHandler {
	return &PaymentHandler{debtService: debtService}
}

// AddPayment handles POST /payments/add
func (h *PaymentHandler) AddPayment(c *gin.Context) {
	var req models.AddPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	if err := utils.ValidatePositive(req.Amount, "amount"); err != nil {
		utils.HandleError(c, err)
		return
	}

	found := false
	for _, debt := range h.debtService.Debts() {
		if debt.ID == req.DebtID {
			found = true
			break
		}
	}
	if !found {
		utils.HandleError(c, utils.NewNotFoundError("Debt"))
		return
	}

	payment := models.NewPayment(req.Amount, req.Date, req.Notes)
	h.debtService.AddPayment(req.DebtID, payment)

	utils.HandleSuccess(c, payment)
}

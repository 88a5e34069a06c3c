package handlers

import (
	"time"

	"debtledger/services"
	"debtledger/utils"

	"github.com/gin-gonic/gin"
)

// SummaryHandler serves the collection-wide read models
type SummaryHandler struct {
	debtService *services.DebtService
}

// NewSummaryHandler creates a new summary handler
func NewSummaryHandler(debtService *services.DebtService) *SummaryHandler {
	return &SummaryHandler{debtService: debtService}
}

// GetSummary handles GET /summary
func (h *SummaryHandler) GetSummary(c *gin.Context) {
	utils.HandleSuccess(c, h.debtService.Summary(time.Now()))
}

// GetCalendar handles GET /calendar
func (h *SummaryHandler) GetCalendar(c *gin.Context) {
	utils.HandleSuccess(c, h.debtService.Calendar())
}

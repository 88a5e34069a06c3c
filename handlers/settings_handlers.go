package handlers

import (
	"debtledger/models"
	"debtledger/services"
	"debtledger/utils"

	"github.com/gin-gonic/gin"
)

// SettingsHandler handles settings-related HTTP requests
type SettingsHandler struct {
	settingsService *services.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetTheme handles GET /settings/theme
func (h *SettingsHandler) GetTheme(c *gin.Context) {
	utils.HandleSuccess(c, gin.H{"theme": h.settingsService.Theme()})
}

// SetTheme handles POST /settings/theme
func (h *SettingsHandler) SetTheme(c *gin.Context) {
	var req models.SetThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	if err := h.settingsService.SetTheme(req.Theme); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"theme": req.Theme})
}

// ResetAllData handles POST /settings/reset
func (h *SettingsHandler) ResetAllData(c *gin.Context) {
	h.settingsService.ResetAllData()
	utils.HandleSuccess(c, gin.H{"message": "All data cleared"})
}

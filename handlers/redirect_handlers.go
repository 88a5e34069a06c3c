package handlers

import (
	"log"

	"debtledger/models"
	"debtledger/services"
	"debtledger/utils"

	"github.com/gin-gonic/gin"
)

// RedirectHandler serves the launch decision
type RedirectHandler struct {
	redirectService *services.RedirectService
}

// NewRedirectHandler creates a new redirect handler
func NewRedirectHandler(redirectService *services.RedirectService) *RedirectHandler {
	return &RedirectHandler{redirectService: redirectService}
}

// Launch handles GET /launch. A failed resolution is not an error for
// the client; it means the native surface should be shown.
func (h *RedirectHandler) Launch(c *gin.Context) {
	resolution, err := h.redirectService.Resolve()
	if err != nil {
		log.Printf("Redirect resolution failed, falling back to native: %v", err)
		utils.HandleSuccess(c, models.LaunchResponse{Mode: utils.LaunchModeNative})
		return
	}

	utils.HandleSuccess(c, models.LaunchResponse{
		Mode: utils.LaunchModeRedirect,
		Link: resolution.Link,
	})
}

package routes

import (
	"debtledger/handlers"

	"github.com/gin-gonic/gin"
)

// Handlers bundles every handler the router needs
type Handlers struct {
	Debt     *handlers.DebtHandler
	Payment  *handlers.PaymentHandler
	Summary  *handlers.SummaryHandler
	Redirect *handlers.RedirectHandler
	Settings *handlers.SettingsHandler
	Excel    *handlers.ExcelHandler
}

// SetupRoutes configures all API routes for the application
func SetupRoutes(router *gin.Engine, h Handlers) {
	// Launch decision sits outside the versioned group; it is the first
	// call a client makes
	router.GET("/launch", h.Redirect.Launch)

	v1 := router.Group("/api/v1")
	{
		// Debt endpoints
		v1.POST("/debts/list", h.Debt.ListDebts)
		v1.POST("/debts/create", h.Debt.CreateDebt)
		v1.POST("/debts/update", h.Debt.UpdateDebt)
		v1.POST("/debts/remove", h.Debt.DeleteDebt)

		// Payment endpoints
		v1.POST("/payments/add", h.Payment.AddPayment)

		// Read models
		v1.GET("/summary", h.Summary.GetSummary)
		v1.GET("/calendar", h.Summary.GetCalendar)

		// Settings endpoints
		v1.GET("/settings/theme", h.Settings.GetTheme)
		v1.POST("/settings/theme", h.Settings.SetTheme)
		v1.POST("/settings/reset", h.Settings.ResetAllData)

		// Report export
		v1.GET("/export", h.Excel.ExportDebts)
	}
}

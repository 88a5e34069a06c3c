package handlers

import (
	"fmt"
	"net/http"
	"time"

	"debtledger/services"

	"github.com/gin-gonic/gin"
)

// ExcelHandler serves the Excel report download
type ExcelHandler struct {
	excelService *services.ExcelService
}

// NewExcelHandler creates a new excel handler
func NewExcelHandler(excelService *services.ExcelService) *ExcelHandler {
	return &ExcelHandler{excelService: excelService}
}

// ExportDebts handles GET /export
func (h *ExcelHandler) ExportDebts(c *gin.Context) {
	excelFile, filename, err := h.excelService.ExportToExcel(time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export debts: " + err.Error()})
		return
	}

	// Set headers for file download
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	c.Header("Content-Transfer-Encoding", "binary")

	// Write Excel file to response
	if err := excelFile.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file: " + err.Error()})
		return
	}
}

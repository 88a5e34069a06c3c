package services

import (
	"fmt"
	"time"

	"debtledger/models"

	"github.com/xuri/excelize/v2"
)

// ExcelService handles Excel export functionality
type ExcelService struct {
	debtService *DebtService
}

// NewExcelService creates a new Excel service
func NewExcelService(debtService *DebtService) *ExcelService {
	return &ExcelService{
		debtService: debtService,
	}
}

// ExportToExcel generates an Excel report of the whole collection
func (s *ExcelService) ExportToExcel(now time.Time) (*excelize.File, string, error) {
	views := s.debtService.Views(now)
	summary := s.debtService.Summary(now)

	f := excelize.NewFile()

	if err := s.createSummarySheet(f, summary); err != nil {
		return nil, "", fmt.Errorf("failed to create summary sheet: %v", err)
	}

	if err := s.createDebtsSheet(f, views); err != nil {
		return nil, "", fmt.Errorf("failed to create debts sheet: %v", err)
	}

	if err := s.createPaymentsSheet(f, views); err != nil {
		return nil, "", fmt.Errorf("failed to create payments sheet: %v", err)
	}

	// Delete the default sheet if it exists
	f.DeleteSheet("Sheet1")

	filename := fmt.Sprintf("Debts_Export_%s.xlsx", now.Format("2006-01-02"))

	return f, filename, nil
}

// createSummarySheet creates Sheet 1: Summary
func (s *ExcelService) createSummarySheet(f *excelize.File, summary models.DebtSummary) error {
	sheetName := "Summary"
	f.NewSheet(sheetName)
	sheetIndex, _ := f.GetSheetIndex(sheetName)
	f.SetActiveSheet(sheetIndex)

	rows := [][]interface{}{
		{"Total Debt", summary.TotalRemaining},
		{"Daily Payment", summary.TotalDailyPayment},
		{"Overdue Debts", summary.OverdueCount},
		{"Due Soon", summary.DueSoonCount},
	}

	for i, row := range rows {
		for j, value := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return err
			}
		}
	}

	return nil
}

// createDebtsSheet creates Sheet 2: one row per debt with derived figures
func (s *ExcelService) createDebtsSheet(f *excelize.File, views []models.DebtView) error {
	sheetName := "Debts"
	f.NewSheet(sheetName)

	headers := []string{"Title", "Principal", "Due Date", "Interest Rate", "Projected Total", "Paid", "Remaining", "Daily Payment", "Status", "Notes"}
	for j, header := range headers {
		cell, err := excelize.CoordinatesToCellName(j+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return err
		}
	}

	for i, view := range views {
		row := []interface{}{
			view.Debt.Title,
			view.Debt.Amount,
			view.Debt.DueDate.Format("2006-01-02"),
			view.Debt.InterestRate,
			view.TotalAmount,
			view.TotalPaid,
			view.RemainingAmount,
			view.DailyPayment,
			s.statusLabel(view),
			view.Debt.Notes,
		}
		for j, value := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return err
			}
		}
	}

	return nil
}

// createPaymentsSheet creates Sheet 3: the flat payment ledger
func (s *ExcelService) createPaymentsSheet(f *excelize.File, views []models.DebtView) error {
	sheetName := "Payments"
	f.NewSheet(sheetName)

	headers := []string{"Debt", "Amount", "Date", "Notes"}
	for j, header := range headers {
		cell, err := excelize.CoordinatesToCellName(j+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return err
		}
	}

	rowIndex := 2
	for _, view := range views {
		for _, payment := range view.Debt.Payments {
			row := []interface{}{
				view.Debt.Title,
				payment.Amount,
				payment.Date.Format("2006-01-02"),
				payment.Notes,
			}
			for j, value := range row {
				cell, err := excelize.CoordinatesToCellName(j+1, rowIndex)
				if err != nil {
					return err
				}
				if err := f.SetCellValue(sheetName, cell, value); err != nil {
					return err
				}
			}
			rowIndex++
		}
	}

	return nil
}

func (s *ExcelService) statusLabel(view models.DebtView) string {
	switch {
	case view.IsPaidOff:
		return "Paid Off"
	case view.IsOverdue:
		return "Overdue"
	case view.IsDueSoon:
		return "Due Soon"
	default:
		return "Open"
	}
}

// models/models.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// Debt represents a single tracked debt and its payment ledger
type Debt struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Amount       float64   `json:"amount"`
	DueDate      time.Time `json:"dueDate"`
	InterestRate float64   `json:"interestRate"`
	Notes        string    `json:"notes"`
	Payments     []Payment `json:"payments"`
}

// DebtView is a Debt plus its derived accrual figures for read endpoints
type DebtView struct {
	Debt            Debt    `json:"debt"`
	DaysUntilDue    int     `json:"daysUntilDue"`
	TotalAmount     float64 `json:"totalAmount"`
	TotalPaid       float64 `json:"totalPaid"`
	RemainingAmount float64 `json:"remainingAmount"`
	DailyPayment    float64 `json:"dailyPayment"`
	IsPaidOff       bool    `json:"isPaidOff"`
	IsOverdue       bool    `json:"isOverdue"`
	IsDueSoon       bool    `json:"isDueSoon"`
}

// DebtSummary aggregates derived figures across the whole collection
type DebtSummary struct {
	TotalRemaining    float64 `json:"totalRemaining"`
	TotalDailyPayment float64 `json:"totalDailyPayment"`
	OverdueCount      int     `json:"overdueCount"`
	DueSoonCount      int     `json:"dueSoonCount"`
	Overdue           []Debt  `json:"overdue"`
	DueSoon           []Debt  `json:"dueSoon"`
}

// CalendarGroup represents all debts due on one calendar day
type CalendarGroup struct {
	Date       time.Time `json:"date"`
	Debts      []Debt    `json:"debts"`
	HasPayment bool      `json:"hasPayment"`
}

// CreateDebtRequest request model
type CreateDebtRequest struct {
	Title        string    `json:"title" binding:"required"`
	Amount       float64   `json:"amount" binding:"required,gt=0"`
	DueDate      time.Time `json:"dueDate" binding:"required"`
	InterestRate float64   `json:"interestRate" binding:"gte=0"`
	Notes        string    `json:"notes"`
}

// UpdateDebtRequest request model
type UpdateDebtRequest struct {
	ID           string    `json:"id" binding:"required"`
	Title        string    `json:"title" binding:"required"`
	Amount       float64   `json:"amount" binding:"required,gt=0"`
	DueDate      time.Time `json:"dueDate" binding:"required"`
	InterestRate float64   `json:"interestRate" binding:"gte=0"`
	Notes        string    `json:"notes"`
}

// DeleteDebtRequest request model
type DeleteDebtRequest struct {
	ID string `json:"id" binding:"required"`
}

// SetThemeRequest request model
type SetThemeRequest struct {
	Theme string `json:"theme" binding:"required"`
}

// LaunchResponse tells the client which surface to show on startup
type LaunchResponse struct {
	Mode string `json:"mode"`
	Link string `json:"link,omitempty"`
}

// NewDebt creates a new Debt instance
func NewDebt(title string, amount float64, dueDate time.Time, interestRate float64, notes string) *Debt {
	return &Debt{
		ID:           uuid.New().String(),
		Title:        title,
		Amount:       amount,
		DueDate:      dueDate,
		InterestRate: interestRate,
		Notes:        notes,
		Payments:     []Payment{},
	}
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Payment represents a single repayment against a debt. Immutable once created.
type Payment struct {
	ID     string    `json:"id"`
	Amount float64   `json:"amount"`
	Date   time.Time `json:"date"`
	Notes  string    `json:"notes"`
}

// AddPaymentRequest represents the request body for recording a payment
type AddPaymentRequest struct {
	DebtID string    `json:"debtId" binding:"required"`
	Amount float64   `json:"amount" binding:"required,gt=0"`
	Date   time.Time `json:"date" binding:"required"`
	Notes  string    `json:"notes"`
}

// NewPayment creates a new Payment instance
func NewPayment(amount float64, date time.Time, notes string) Payment {
	return Payment{
		ID:     uuid.New().String(),
		Amount: amount,
		Date:   date,
		Notes:  notes,
	}
}

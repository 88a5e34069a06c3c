package services

import (
	"math"
	"time"

	"debtledger/models"
	"debtledger/utils"
)

// AccrualService computes derived figures for a single debt snapshot.
// It is stateless; the current date is always passed in explicitly so
// the math stays deterministic under test.
type AccrualService struct{}

// NewAccrualService creates a new accrual service
func NewAccrualService() *AccrualService {
	return &AccrualService{}
}

// DaysUntilDue returns whole days between now and the due date, both
// normalized to midnight. Negative when the due date has passed.
func (s *AccrualService) DaysUntilDue(debt *models.Debt, now time.Time) int {
	today := utils.StartOfDay(now)
	due := utils.StartOfDay(debt.DueDate)
	return int(math.Round(due.Sub(today).Hours() / 24))
}

// TotalAmount values the debt at its projected due-date balance. The
// principal compounds daily over the full remaining day count, so the
// figure front-loads interest for days not yet elapsed.
func (s *AccrualService) TotalAmount(debt *models.Debt, now time.Time) float64 {
	days := s.DaysUntilDue(debt, now)
	if debt.InterestRate <= 0 || days <= 0 {
		return debt.Amount
	}
	return debt.Amount * utils.CompoundFactor(utils.DailyRate(debt.InterestRate), days)
}

// TotalPaid sums every payment regardless of date
func (s *AccrualService) TotalPaid(debt *models.Debt) float64 {
	var total float64
	for _, payment := range debt.Payments {
		total += payment.Amount
	}
	return total
}

// RemainingAmount is the projected balance less payments, floored at zero
func (s *AccrualService) RemainingAmount(debt *models.Debt, now time.Time) float64 {
	return math.Max(0, s.TotalAmount(debt, now)-s.TotalPaid(debt))
}

// IsPaidOff treats balances within a small epsilon as settled to absorb
// rounding drift from compounding
func (s *AccrualService) IsPaidOff(debt *models.Debt, now time.Time) bool {
	return s.RemainingAmount(debt, now) <= utils.PaidOffEpsilon
}

// IsOverdue reports an unsettled debt whose due date has passed
func (s *AccrualService) IsOverdue(debt *models.Debt, now time.Time) bool {
	return s.DaysUntilDue(debt, now) < 0 && !s.IsPaidOff(debt, now)
}

// IsDueSoon reports an unsettled debt due within the next week
func (s *AccrualService) IsDueSoon(debt *models.Debt, now time.Time) bool {
	days := s.DaysUntilDue(debt, now)
	return days >= 0 && days <= utils.DueSoonDays && !s.IsPaidOff(debt, now)
}

// DailyPayment is the amount needed per remaining day to retire the debt
// by its due date. Due or overdue debts route to "pay it all now".
func (s *AccrualService) DailyPayment(debt *models.Debt, now time.Time) float64 {
	days := s.DaysUntilDue(debt, now)
	remaining := s.RemainingAmount(debt, now)

	if days <= 0 || s.IsPaidOff(debt, now) {
		return remaining
	}

	if debt.InterestRate > 0 {
		projected := remaining * utils.CompoundFactor(utils.DailyRate(debt.InterestRate), days)
		return projected / float64(days)
	}
	return remaining / float64(days)
}

// HasPaymentOnDate reports whether any payment falls on the same calendar day
func (s *AccrualService) HasPaymentOnDate(debt *models.Debt, date time.Time) bool {
	for _, payment := range debt.Payments {
		if utils.SameDay(payment.Date, date) {
			return true
		}
	}
	return false
}

// TotalPaidOnDate sums the payments made on one calendar day
func (s *AccrualService) TotalPaidOnDate(debt *models.Debt, date time.Time) float64 {
	var total float64
	for _, payment := range debt.Payments {
		if utils.SameDay(payment.Date, date) {
			total += payment.Amount
		}
	}
	return total
}

// View bundles a debt with all of its derived figures
func (s *AccrualService) View(debt *models.Debt, now time.Time) models.DebtView {
	return models.DebtView{
		Debt:            *debt,
		DaysUntilDue:    s.DaysUntilDue(debt, now),
		TotalAmount:     utils.Round(s.TotalAmount(debt, now)),
		TotalPaid:       utils.Round(s.TotalPaid(debt)),
		RemainingAmount: utils.Round(s.RemainingAmount(debt, now)),
		DailyPayment:    utils.Round(s.DailyPayment(debt, now)),
		IsPaidOff:       s.IsPaidOff(debt, now),
		IsOverdue:       s.IsOverdue(debt, now),
		IsDueSoon:       s.IsDueSoon(debt, now),
	}
}

package services

import (
	"math"
	"testing"
	"time"

	"debtledger/models"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

func makeDebt(amount float64, dueInDays int, interestRate float64) *models.Debt {
	return &models.Debt{
		ID:           "debt-1",
		Title:        "Car loan",
		Amount:       amount,
		DueDate:      testNow.AddDate(0, 0, dueInDays),
		InterestRate: interestRate,
		Payments:     []models.Payment{},
	}
}

func TestAccrualService_ZeroInterestDebt(t *testing.T) {
	service := NewAccrualService()
	debt := makeDebt(1000, 10, 0)

	assert.Equal(t, 10, service.DaysUntilDue(debt, testNow))
	assert.Equal(t, 1000.0, service.TotalAmount(debt, testNow))
	assert.Equal(t, 1000.0, service.RemainingAmount(debt, testNow))
	assert.Equal(t, 100.0, service.DailyPayment(debt, testNow))
	assert.False(t, service.IsPaidOff(debt, testNow))
	assert.False(t, service.IsOverdue(debt, testNow))
	assert.False(t, service.IsDueSoon(debt, testNow), "10 days out is past the due-soon window")
}

func TestAccrualService_FullPaymentSettlesDebt(t *testing.T) {
	service := NewAccrualService()
	debt := makeDebt(1000, 10, 0)
	debt.Payments = append(debt.Payments, models.Payment{
		ID:     "pay-1",
		Amount: 1000,
		Date:   testNow,
	})

	assert.Equal(t, 0.0, service.RemainingAmount(debt, testNow))
	assert.True(t, service.IsPaidOff(debt, testNow))
	assert.Equal(t, 0.0, service.DailyPayment(debt, testNow))

	// Original fields are untouched by payments
	assert.Equal(t, 1000.0, debt.Amount)
	assert.Equal(t, 0.0, debt.InterestRate)
}

func TestAccrualService_OverdueDebt(t *testing.T) {
	service := NewAccrualService()
	debt := makeDebt(500, -1, 0)

	assert.Equal(t, -1, service.DaysUntilDue(debt, testNow))
	assert.True(t, service.IsOverdue(debt, testNow))
	assert.False(t, service.IsDueSoon(debt, testNow))

	// Overdue routes to "pay it all now"
	assert.Equal(t, 500.0, service.DailyPayment(debt, testNow))
}

func TestAccrualService_PaidOffAndOverdueAreMutuallyExclusive(t *testing.T) {
	service := NewAccrualService()
	debt := makeDebt(500, -3, 0)
	debt.Payments = append(debt.Payments, models.Payment{ID: "pay-1", Amount: 500, Date: testNow})

	assert.True(t, service.IsPaidOff(debt, testNow))
	assert.False(t, service.IsOverdue(debt, testNow))
}

func TestAccrualService_DueTodayPaysEverythingToday(t *testing.T) {
	service := NewAccrualService()
	debt := makeDebt(300, 0, 0)

	assert.Equal(t, 0, service.DaysUntilDue(debt, testNow))
	assert.Equal(t, 300.0, service.DailyPayment(debt, testNow))
	assert.True(t, service.IsDueSoon(debt, testNow), "day zero is inside the due-soon window")
}

func TestAccrualService_InterestCompoundsOverRemainingDays(t *testing.T) {
	service := NewAccrualService()

	// 36.5% annual rate gives a daily rate of exactly 0.001
	debt := makeDebt(1000, 10, 36.5)

	expectedTotal := 1000 * math.Pow(1.001, 10)
	assert.InDelta(t, expectedTotal, service.TotalAmount(debt, testNow), 0.0001)

	// Daily payment projects the remaining balance forward before dividing
	expectedDaily := service.RemainingAmount(debt, testNow) * math.Pow(1.001, 10) / 10
	assert.InDelta(t, expectedDaily, service.DailyPayment(debt, testNow), 0.0001)
}

func TestAccrualService_InterestIgnoredOncePastDue(t *testing.T) {
	service := NewAccrualService()
	debt := makeDebt(1000, -5, 36.5)

	assert.Equal(t, 1000.0, service.TotalAmount(debt, testNow))
}

func TestAccrualService_ZeroInterestDailyPaymentIdentity(t *testing.T) {
	service := NewAccrualService()

	for _, days := range []int{1, 3, 7, 30, 365} {
		debt := makeDebt(987.65, days, 0)
		daily := service.DailyPayment(debt, testNow)
		remaining := service.RemainingAmount(debt, testNow)
		assert.InDelta(t, remaining, daily*float64(days), 0.0001,
			"dailyPayment x daysUntilDue should recover the remaining amount for %d days", days)
	}
}

func TestAccrualService_OverpaymentNeverGoesNegative(t *testing.T) {
	service := NewAccrualService()
	debt := makeDebt(100, 5, 0)
	debt.Payments = append(debt.Payments, models.Payment{ID: "pay-1", Amount: 250, Date: testNow})

	assert.Equal(t, 0.0, service.RemainingAmount(debt, testNow))
	assert.True(t, service.IsPaidOff(debt, testNow))
}

func TestAccrualService_EpsilonAbsorbsRoundingDrift(t *testing.T) {
	service := NewAccrualService()
	debt := makeDebt(100, 5, 0)
	debt.Payments = append(debt.Payments, models.Payment{ID: "pay-1", Amount: 99.995, Date: testNow})

	assert.True(t, service.IsPaidOff(debt, testNow), "a balance inside the epsilon counts as settled")
}

func TestAccrualService_PaymentSumIsOrderIndependent(t *testing.T) {
	service := NewAccrualService()
	debt := makeDebt(1000, 10, 0)
	debt.Payments = []models.Payment{
		{ID: "pay-2", Amount: 300, Date: testNow.AddDate(0, 0, -1)},
		{ID: "pay-1", Amount: 200, Date: testNow.AddDate(0, 0, -10)},
		{ID: "pay-3", Amount: 100, Date: testNow.AddDate(0, 0, 2)},
	}

	assert.Equal(t, 600.0, service.TotalPaid(debt))
	assert.Equal(t, 400.0, service.RemainingAmount(debt, testNow))
}

func TestAccrualService_DateScopedQueries(t *testing.T) {
	service := NewAccrualService()
	payDay := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	debt := makeDebt(1000, 10, 0)
	debt.Payments = []models.Payment{
		{ID: "pay-1", Amount: 50, Date: payDay.Add(9 * time.Hour)},
		{ID: "pay-2", Amount: 25, Date: payDay.Add(21 * time.Hour)},
		{ID: "pay-3", Amount: 10, Date: payDay.AddDate(0, 0, 1)},
	}

	assert.True(t, service.HasPaymentOnDate(debt, payDay))
	assert.False(t, service.HasPaymentOnDate(debt, payDay.AddDate(0, 0, -1)))

	// Two payments on the same calendar day regardless of time of day
	assert.Equal(t, 75.0, service.TotalPaidOnDate(debt, payDay))
	assert.Equal(t, 10.0, service.TotalPaidOnDate(debt, payDay.AddDate(0, 0, 1)))
	assert.Equal(t, 0.0, service.TotalPaidOnDate(debt, payDay.AddDate(0, 0, 5)))
}

func TestAccrualService_ViewBundlesDerivedFigures(t *testing.T) {
	service := NewAccrualService()
	debt := makeDebt(1000, 10, 0)
	debt.Payments = append(debt.Payments, models.Payment{ID: "pay-1", Amount: 400, Date: testNow})

	view := service.View(debt, testNow)

	assert.Equal(t, debt.ID, view.Debt.ID)
	assert.Equal(t, 10, view.DaysUntilDue)
	assert.Equal(t, 1000.0, view.TotalAmount)
	assert.Equal(t, 400.0, view.TotalPaid)
	assert.Equal(t, 600.0, view.RemainingAmount)
	assert.Equal(t, 60.0, view.DailyPayment)
	assert.False(t, view.IsPaidOff)
}

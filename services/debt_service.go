package services

import (
	"encoding/json"
	"log"
	"sort"
	"sync"
	"time"

	"debtledger/models"
	"debtledger/repository"
	"debtledger/utils"
)

// DebtService owns the debt collection. Mutations go through its methods,
// keep the collection sorted by due date, and persist the whole list as
// one encoded blob in the injected store. Handlers run on concurrent
// goroutines, so every method takes the collection lock.
type DebtService struct {
	mu          sync.RWMutex
	store       repository.Store
	accrual     *AccrualService
	debts       []models.Debt
	loading     bool
	subscribers []func()
}

// NewDebtService creates a new debt service backed by the given store
func NewDebtService(store repository.Store, accrual *AccrualService) *DebtService {
	return &DebtService{
		store:   store,
		accrual: accrual,
	}
}

// Subscribe registers a callback fired after every mutation
func (s *DebtService) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// notify runs the callbacks outside the lock so a subscriber may read
// back from the service
func (s *DebtService) notify() {
	s.mu.RLock()
	subs := make([]func(), len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.RUnlock()

	for _, fn := range subs {
		fn()
	}
}

// Load restores the collection from the store. Missing or corrupt data
// yields an empty collection; nothing is surfaced to the caller.
func (s *DebtService) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading = true
	defer func() { s.loading = false }()

	s.debts = nil

	raw, ok := s.store.Get(utils.DebtsKey)
	if !ok {
		return
	}

	var decoded []models.Debt
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		log.Printf("Discarding corrupt debt data: %v", err)
		return
	}

	s.debts = decoded
	s.sortByDueDate()
}

// Debts returns the current collection in due-date order
func (s *DebtService) Debts() []models.Debt {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Debt, len(s.debts))
	copy(out, s.debts)
	return out
}

// Add appends a debt and re-sorts the collection
func (s *DebtService) Add(debt models.Debt) {
	s.mu.Lock()
	s.debts = append(s.debts, debt)
	s.sortByDueDate()
	s.persist()
	s.mu.Unlock()

	s.notify()
}

// Update replaces the debt with a matching ID. Unknown IDs are a no-op.
func (s *DebtService) Update(debt models.Debt) {
	s.mu.Lock()
	found := false
	for i := range s.debts {
		if s.debts[i].ID == debt.ID {
			s.debts[i] = debt
			s.sortByDueDate()
			s.persist()
			found = true
			break
		}
	}
	s.mu.Unlock()

	if found {
		s.notify()
	}
}

// Delete removes a debt and its payments. Unknown IDs are a no-op.
func (s *DebtService) Delete(id string) {
	s.mu.Lock()
	found := false
	for i := range s.debts {
		if s.debts[i].ID == id {
			s.debts = append(s.debts[:i], s.debts[i+1:]...)
			s.persist()
			found = true
			break
		}
	}
	s.mu.Unlock()

	if found {
		s.notify()
	}
}

// AddPayment appends a payment to the matching debt and keeps that
// debt's ledger newest-first. Unknown debt IDs are a no-op.
func (s *DebtService) AddPayment(debtID string, payment models.Payment) {
	s.mu.Lock()
	found := false
	for i := range s.debts {
		if s.debts[i].ID == debtID {
			s.debts[i].Payments = append(s.debts[i].Payments, payment)
			sort.SliceStable(s.debts[i].Payments, func(a, b int) bool {
				return s.debts[i].Payments[a].Date.After(s.debts[i].Payments[b].Date)
			})
			s.persist()
			found = true
			break
		}
	}
	s.mu.Unlock()

	if found {
		s.notify()
	}
}

// ResetAll clears the collection and erases the persisted blob
func (s *DebtService) ResetAll() {
	s.mu.Lock()
	s.debts = nil
	if err := s.store.Remove(utils.DebtsKey); err != nil {
		log.Printf("Failed to erase debt data: %v", err)
	}
	s.mu.Unlock()

	s.notify()
}

// Views returns every debt with its derived figures
func (s *DebtService) Views(now time.Time) []models.DebtView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	views := make([]models.DebtView, 0, len(s.debts))
	for i := range s.debts {
		views = append(views, s.accrual.View(&s.debts[i], now))
	}
	return views
}

// Summary recomputes the collection-wide aggregates from current state
func (s *DebtService) Summary(now time.Time) models.DebtSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summary := models.DebtSummary{
		Overdue: []models.Debt{},
		DueSoon: []models.Debt{},
	}

	for i := range s.debts {
		debt := &s.debts[i]
		summary.TotalRemaining += s.accrual.RemainingAmount(debt, now)
		if !s.accrual.IsPaidOff(debt, now) {
			summary.TotalDailyPayment += s.accrual.DailyPayment(debt, now)
		}
		if s.accrual.IsOverdue(debt, now) {
			summary.Overdue = append(summary.Overdue, *debt)
		}
		if s.accrual.IsDueSoon(debt, now) {
			summary.DueSoon = append(summary.DueSoon, *debt)
		}
	}

	summary.TotalRemaining = utils.Round(summary.TotalRemaining)
	summary.TotalDailyPayment = utils.Round(summary.TotalDailyPayment)
	summary.OverdueCount = len(summary.Overdue)
	summary.DueSoonCount = len(summary.DueSoon)
	return summary
}

// Calendar groups debts by due-date day, ascending. Grouping keys off the
// wall-clock date so zones agree with the same-day payment matching. A
// group is flagged when any payment in the collection falls on that day.
func (s *DebtService) Calendar() []models.CalendarGroup {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byDay := make(map[string][]models.Debt)
	for _, debt := range s.debts {
		key := debt.DueDate.Format("2006-01-02")
		byDay[key] = append(byDay[key], debt)
	}

	groups := make([]models.CalendarGroup, 0, len(byDay))
	for key, debts := range byDay {
		day, err := time.Parse("2006-01-02", key)
		if err != nil {
			continue
		}
		groups = append(groups, models.CalendarGroup{
			Date:       day,
			Debts:      debts,
			HasPayment: s.hasAnyPaymentOn(day),
		})
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Date.Before(groups[j].Date)
	})
	return groups
}

func (s *DebtService) hasAnyPaymentOn(date time.Time) bool {
	for i := range s.debts {
		if s.accrual.HasPaymentOnDate(&s.debts[i], date) {
			return true
		}
	}
	return false
}

func (s *DebtService) sortByDueDate() {
	sort.SliceStable(s.debts, func(i, j int) bool {
		return s.debts[i].DueDate.Before(s.debts[j].DueDate)
	})
}

// persist writes the whole collection as one blob. Callers hold the lock.
// Writes are suppressed while Load is replaying data that was just read.
func (s *DebtService) persist() {
	if s.loading {
		return
	}

	encoded, err := json.Marshal(s.debts)
	if err != nil {
		log.Printf("Failed to encode debts: %v", err)
		return
	}

	if err := s.store.Set(utils.DebtsKey, string(encoded)); err != nil {
		log.Printf("Failed to persist debts: %v", err)
	}
}

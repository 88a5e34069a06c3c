package services

import (
	"debtledger/repository"
	"debtledger/utils"
)

// SettingsService persists app settings in the store
type SettingsService struct {
	store       repository.Store
	debtService *DebtService
}

// NewSettingsService creates a new settings service
func NewSettingsService(store repository.Store, debtService *DebtService) *SettingsService {
	return &SettingsService{
		store:       store,
		debtService: debtService,
	}
}

// Theme returns the selected theme, falling back to System for missing
// or unrecognized values
func (s *SettingsService) Theme() string {
	theme, ok := s.store.Get(utils.ThemeKey)
	if !ok || utils.ValidateTheme(theme) != nil {
		return utils.ThemeSystem
	}
	return theme
}

// SetTheme validates and persists the theme selection
func (s *SettingsService) SetTheme(theme string) error {
	if err := utils.ValidateTheme(theme); err != nil {
		return err
	}
	return s.store.Set(utils.ThemeKey, theme)
}

// ResetAllData clears every debt and its payments
func (s *SettingsService) ResetAllData() {
	s.debtService.ResetAll()
}

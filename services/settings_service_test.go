package services

import (
	"testing"

	"debtledger/repository"
	"debtledger/utils"

	"github.com/stretchr/testify/assert"
)

func newTestSettingsService() (*SettingsService, *DebtService, *repository.MemoryStore) {
	store := repository.NewMemoryStore()
	debtService := NewDebtService(store, NewAccrualService())
	return NewSettingsService(store, debtService), debtService, store
}

func TestSettingsService_DefaultsToSystemTheme(t *testing.T) {
	service, _, _ := newTestSettingsService()
	assert.Equal(t, utils.ThemeSystem, service.Theme())
}

func TestSettingsService_SetThemePersists(t *testing.T) {
	service, _, store := newTestSettingsService()

	err := service.SetTheme(utils.ThemeDark)
	assert.NoError(t, err)
	assert.Equal(t, utils.ThemeDark, service.Theme())

	saved, _ := store.Get(utils.ThemeKey)
	assert.Equal(t, utils.ThemeDark, saved)
}

func TestSettingsService_RejectsUnknownTheme(t *testing.T) {
	service, _, _ := newTestSettingsService()

	err := service.SetTheme("Sepia")
	assert.Error(t, err)
	assert.Equal(t, utils.ThemeSystem, service.Theme())
}

func TestSettingsService_UnrecognizedStoredValueFallsBack(t *testing.T) {
	service, _, store := newTestSettingsService()
	store.Data[utils.ThemeKey] = "garbage"

	assert.Equal(t, utils.ThemeSystem, service.Theme())
}

func TestSettingsService_ResetAllDataClearsDebts(t *testing.T) {
	service, debtService, store := newTestSettingsService()
	debtService.Add(debtDueIn("a", 5, 100))

	service.ResetAllData()

	assert.Empty(t, debtService.Debts())
	_, exists := store.Data[utils.DebtsKey]
	assert.False(t, exists)
}

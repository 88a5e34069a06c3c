package utils

const (
	// Storage keys
	DebtsKey = "SavedDebts"
	TokenKey = "serverToken"
	LinkKey  = "serverLink"
	ThemeKey = "appTheme"

	// Themes
	ThemeLight  = "Light"
	ThemeDark   = "Dark"
	ThemeSystem = "System"

	// Launch modes
	LaunchModeRedirect = "redirect"
	LaunchModeNative   = "native"

	// HTTP status messages
	ErrInvalidRequest = "Invalid request"
	ErrInvalidTheme   = "Invalid theme"

	// Due-soon horizon in days
	DueSoonDays = 7

	// Balance below this many currency units counts as settled
	PaidOffEpsilon = 0.01

	// Precision for monetary calculations
	MoneyPrecision = 100.0

	// Day count convention for converting annual rates
	DaysPerYear = 365.0
)

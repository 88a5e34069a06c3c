package main

import (
	"log"
	"os"
	"runtime"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"

	"debtledger/handlers"
	"debtledger/repository"
	"debtledger/routes"
	"debtledger/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// Initialize New Relic
	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName("DebtLedger API"),
		newrelic.ConfigLicense(os.Getenv("NEW_RELIC_LICENSE_KEY")),
		newrelic.ConfigDistributedTracerEnabled(true),
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize New Relic: %v", err)
	}

	// Pick the storage backend
	store, cleanup, err := buildStore()
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer cleanup()

	// Initialize services
	accrualService := services.NewAccrualService()
	debtService := services.NewDebtService(store, accrualService)
	debtService.Load()

	settingsService := services.NewSettingsService(store, debtService)
	excelService := services.NewExcelService(debtService)
	redirectService := services.NewRedirectService(store, buildRedirectConfig())

	// Set up Gin router
	router := gin.Default()

	// Add New Relic middleware
	if app != nil {
		router.Use(nrgin.Middleware(app))
	}

	// Configure CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Change to your frontend URL in production
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Set up routes
	routes.SetupRoutes(router, routes.Handlers{
		Debt:     handlers.NewDebtHandler(debtService),
		Payment:  handlers.NewPaymentHandler(debtService),
		Summary:  handlers.NewSummaryHandler(debtService),
		Redirect: handlers.NewRedirectHandler(redirectService),
		Settings: handlers.NewSettingsHandler(settingsService),
		Excel:    handlers.NewExcelHandler(excelService),
	})

	// Get port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Start server
	log.Printf("Server starting on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// buildStore selects the key-value backend from STORE_DRIVER: postgres,
// redis, or memory (default)
func buildStore() (repository.Store, func(), error) {
	switch os.Getenv("STORE_DRIVER") {
	case "postgres":
		if err := repository.InitDB(); err != nil {
			return nil, nil, err
		}
		return repository.NewPostgresStore(), repository.CloseDB, nil
	case "redis":
		addr := os.Getenv("REDIS_ADDR")
		if addr == "" {
			addr = "localhost:6379"
		}
		return repository.NewRedisStore(addr), func() {}, nil
	default:
		log.Println("STORE_DRIVER not set, using in-memory store")
		return repository.NewMemoryStore(), func() {}, nil
	}
}

func buildRedirectConfig() services.RedirectConfig {
	return services.RedirectConfig{
		BaseURL:     getEnvOrDefault("REDIRECT_BASE_URL", "https://gtappinfo.site/ios-financetracker-personalloans/server.php"),
		Secret:      getEnvOrDefault("REDIRECT_SECRET", "Bs2675kDjkb5Ga"),
		OS:          getEnvOrDefault("CLIENT_OS", runtime.GOOS),
		Language:    getEnvOrDefault("CLIENT_LANGUAGE", "en"),
		DeviceModel: getEnvOrDefault("CLIENT_DEVICE_MODEL", "unknown"),
		Country:     getEnvOrDefault("CLIENT_COUNTRY", "US"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"debtledger/models"
	"debtledger/repository"
	"debtledger/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestRouter() (*gin.Engine, *services.DebtService) {
	gin.SetMode(gin.TestMode)

	store := repository.NewMemoryStore()
	debtService := services.NewDebtService(store, services.NewAccrualService())

	router := gin.New()
	debtHandler := NewDebtHandler(debtService)
	paymentHandler := NewPaymentHandler(debtService)
	router.POST("/debts/create", debtHandler.CreateDebt)
	router.POST("/payments/add", paymentHandler.AddPayment)

	return router, debtService
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	encoded, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(encoded))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestDebtHandler_ConcurrentCreates(t *testing.T) {
	router, debtService := newTestRouter()
	dueDate := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			w := postJSON(router, "/debts/create", models.CreateDebtRequest{
				Title:   fmt.Sprintf("Debt %d", n),
				Amount:  100,
				DueDate: dueDate.AddDate(0, 0, n),
			})
			assert.Equal(t, http.StatusOK, w.Code)
		}(i)
	}
	wg.Wait()

	assert.Len(t, debtService.Debts(), 20, "every concurrent create must land")
}

func TestDebtHandler_RejectsWhitespaceTitle(t *testing.T) {
	router, debtService := newTestRouter()

	w := postJSON(router, "/debts/create", models.CreateDebtRequest{
		Title:   "   ",
		Amount:  100,
		DueDate: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, debtService.Debts())
}

func TestDebtHandler_RejectsNonPositiveAmount(t *testing.T) {
	router, debtService := newTestRouter()

	w := postJSON(router, "/debts/create", map[string]interface{}{
		"title":   "Car loan",
		"amount":  -50,
		"dueDate": "2025-07-01T00:00:00Z",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, debtService.Debts())
}

func TestPaymentHandler_RejectsNonPositiveAmount(t *testing.T) {
	router, debtService := newTestRouter()

	create := postJSON(router, "/debts/create", models.CreateDebtRequest{
		Title:   "Car loan",
		Amount:  100,
		DueDate: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.Equal(t, http.StatusOK, create.Code)
	debtID := debtService.Debts()[0].ID

	w := postJSON(router, "/payments/add", map[string]interface{}{
		"debtId": debtID,
		"amount": -10,
		"date":   "2025-06-20T00:00:00Z",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, debtService.Debts()[0].Payments)
}

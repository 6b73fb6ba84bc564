package dashboard

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mehtaarjun/paisa-tracker/internal/lib/derive"
	"github.com/mehtaarjun/paisa-tracker/internal/services/tracker"
)

// MockService реализует интерфейс dashboard.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Dashboard(ctx context.Context, year int, month time.Month) tracker.DashboardSummary {
	args := m.Called(ctx, year, month)
	return args.Get(0).(tracker.DashboardSummary)
}

func TestDashboardHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	t.Run("явные год и месяц", func(t *testing.T) {
		mockSvc := new(MockService)
		mockSvc.On("Dashboard", mock.Anything, 2025, time.August).
			Return(tracker.DashboardSummary{
				Totals:           derive.MonthlyTotals{Income: 100, Expense: 40, Balance: 60},
				SubscriptionCost: 20,
			})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard?year=2025&month=8", nil)
		w := httptest.NewRecorder()

		New(logger, mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"balance":60`)
		mockSvc.AssertExpectations(t)
	})

	t.Run("некорректный месяц", func(t *testing.T) {
		mockSvc := new(MockService)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard?month=13", nil)
		w := httptest.NewRecorder()

		New(logger, mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"status":"Error","error":"invalid month"}`, w.Body.String())
		mockSvc.AssertNotCalled(t, "Dashboard", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("без параметров берётся текущий месяц", func(t *testing.T) {
		mockSvc := new(MockService)
		now := time.Now()
		mockSvc.On("Dashboard", mock.Anything, now.Year(), now.Month()).
			Return(tracker.DashboardSummary{})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
		w := httptest.NewRecorder()

		New(logger, mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockSvc.AssertExpectations(t)
	})
}

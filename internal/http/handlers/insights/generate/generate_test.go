package generate

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mehtaarjun/paisa-tracker/internal/models"
)

type MockTracker struct{ mock.Mock }

func (m *MockTracker) Snapshot(ctx context.Context) models.State {
	args := m.Called(ctx)
	return args.Get(0).(models.State)
}

type MockInsights struct{ mock.Mock }

func (m *MockInsights) Generate(ctx context.Context, state models.State) string {
	args := m.Called(ctx, state)
	return args.String(0)
}

func TestGenerateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	t.Run("успешная генерация", func(t *testing.T) {
		state := models.EmptyState()
		mockTracker := new(MockTracker)
		mockTracker.On("Snapshot", mock.Anything).Return(state)
		mockInsights := new(MockInsights)
		mockInsights.On("Generate", mock.Anything, state).Return("- cut down on chai")

		req := httptest.NewRequest(http.MethodPost, "/api/v1/insights/generate", nil)
		w := httptest.NewRecorder()

		New(logger, mockTracker, mockInsights).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"OK","data":{"insight":"- cut down on chai"}}`, w.Body.String())
		mockTracker.AssertExpectations(t)
		mockInsights.AssertExpectations(t)
	})

	t.Run("деградация до фиксированного сообщения остаётся 200", func(t *testing.T) {
		mockTracker := new(MockTracker)
		mockTracker.On("Snapshot", mock.Anything).Return(models.EmptyState())
		mockInsights := new(MockInsights)
		mockInsights.On("Generate", mock.Anything, mock.Anything).
			Return("Oops! I'm having trouble analyzing your finances right now. Please try again later.")

		req := httptest.NewRequest(http.MethodPost, "/api/v1/insights/generate", nil)
		w := httptest.NewRecorder()

		New(logger, mockTracker, mockInsights).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Oops!")
	})
}

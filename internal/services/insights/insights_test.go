package insights

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mehtaarjun/paisa-tracker/internal/models"
)

type SummarizerMock struct{ mock.Mock }

func (m *SummarizerMock) Summarize(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func sampleState() models.State {
	return models.State{
		Transactions: []models.Transaction{
			{ID: "t1", Amount: 5000, Type: models.TypeIncome, Category: "Salary"},
			{ID: "t2", Amount: 250, Type: models.TypeExpense, Category: "Food & Dining", Note: "pizza"},
		},
		Subscriptions: []models.Subscription{
			{ID: "s1", Name: "Netflix", Amount: 199, Frequency: models.FrequencyMonthly, IsActive: true},
			{ID: "s2", Name: "Gym", Amount: 1200, Frequency: models.FrequencyYearly, IsActive: false},
		},
	}
}

func TestGenerate_MissingCredentials(t *testing.T) {
	svc := New(newNoopLogger(), nil)

	got := svc.Generate(context.Background(), sampleState())

	assert.Equal(t, MsgMissingKey, got)
}

func TestGenerate_Success(t *testing.T) {
	m := new(SummarizerMock)
	m.On("Summarize", mock.Anything, mock.Anything).Return("- spend less on pizza", nil)
	svc := New(newNoopLogger(), m)

	got := svc.Generate(context.Background(), sampleState())

	assert.Equal(t, "- spend less on pizza", got)
	m.AssertExpectations(t)
}

func TestGenerate_ServiceFailure(t *testing.T) {
	m := new(SummarizerMock)
	m.On("Summarize", mock.Anything, mock.Anything).Return("", errors.New("network down"))
	svc := New(newNoopLogger(), m)

	got := svc.Generate(context.Background(), sampleState())

	assert.Equal(t, MsgFallback, got)
}

func TestGenerate_EmptyResponse(t *testing.T) {
	m := new(SummarizerMock)
	m.On("Summarize", mock.Anything, mock.Anything).Return("   ", nil)
	svc := New(newNoopLogger(), m)

	got := svc.Generate(context.Background(), sampleState())

	assert.Equal(t, MsgEmpty, got)
}

func TestBuildPrompt_ContainsSummary(t *testing.T) {
	prompt := BuildPrompt(sampleState())

	assert.Contains(t, prompt, "Total Income: ₹5000")
	assert.Contains(t, prompt, "Total Expenses: ₹250")
	assert.Contains(t, prompt, "Netflix (₹199/MONTHLY)")
	// неактивные подписки в промпт не попадают
	assert.NotContains(t, prompt, "Gym")
	assert.Contains(t, prompt, `"cat":"Food & Dining"`)
	assert.Contains(t, prompt, `"note":"pizza"`)
}

func TestBuildPrompt_TruncatesExpenses(t *testing.T) {
	state := models.State{}
	for i := 0; i < 30; i++ {
		state.Transactions = append(state.Transactions, models.Transaction{
			ID: "t", Amount: float64(i + 1), Type: models.TypeExpense, Category: "Other",
		})
	}

	prompt := BuildPrompt(state)

	// в выжимку попадают только последние 20 расходов
	assert.Contains(t, prompt, `"amt":30`)
	assert.NotContains(t, prompt, `"amt":10,`)
}

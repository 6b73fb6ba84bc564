package storage

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mehtaarjun/paisa-tracker/internal/models"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	path := filepath.Join(t.TempDir(), "paisa.db")
	log := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	s, err := New(path, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func sampleState() models.State {
	return models.State{
		Transactions: []models.Transaction{
			{ID: "t1", Amount: 100, Type: models.TypeIncome, Category: "Salary",
				Date: time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC), Note: "august salary"},
		},
		Subscriptions: []models.Subscription{
			{ID: "s1", Name: "Netflix", Amount: 199, Frequency: models.FrequencyMonthly,
				NextDueDate: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), Category: "Entertainment", IsActive: true},
		},
		Goals: []models.Goal{
			{ID: "g1", Name: "New Phone", TargetAmount: 20000, CurrentAmount: 5000,
				Deadline: time.Date(2025, 11, 27, 0, 0, 0, 0, time.UTC)},
		},
	}
}

func TestLoad_EmptySlot(t *testing.T) {
	s := newTestStorage(t)

	state := s.Load(context.Background())

	assert.Equal(t, models.EmptyState(), state)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := newTestStorage(t)
	want := sampleState()

	require.NoError(t, s.Save(context.Background(), want))

	got := s.Load(context.Background())
	assert.Equal(t, want, got)
}

func TestSave_Idempotent(t *testing.T) {
	s := newTestStorage(t)
	want := sampleState()

	require.NoError(t, s.Save(context.Background(), want))
	require.NoError(t, s.Save(context.Background(), want))

	got := s.Load(context.Background())
	assert.Equal(t, want, got)
}

func TestSave_OverwritesPreviousValue(t *testing.T) {
	s := newTestStorage(t)
	first := sampleState()
	require.NoError(t, s.Save(context.Background(), first))

	second := models.EmptyState()
	require.NoError(t, s.Save(context.Background(), second))

	got := s.Load(context.Background())
	assert.Empty(t, got.Transactions)
	assert.Empty(t, got.Subscriptions)
	assert.Empty(t, got.Goals)
}

func TestLoad_CorruptValueFallsBackToEmpty(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.db.Exec(`INSERT INTO app_state (key, value) VALUES (?, ?)`, StateKey, "{not json")
	require.NoError(t, err)

	state := s.Load(context.Background())
	assert.Equal(t, models.EmptyState(), state)
}

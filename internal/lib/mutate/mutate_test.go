package mutate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mehtaarjun/paisa-tracker/internal/models"
)

func baseState() models.State {
	return models.State{
		Transactions: []models.Transaction{
			{ID: "t1", Amount: 100, Type: models.TypeIncome, Category: "Salary", Date: time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)},
		},
		Subscriptions: []models.Subscription{
			{ID: "s1", Name: "Netflix", Amount: 199, Frequency: models.FrequencyMonthly, IsActive: true},
			{ID: "s2", Name: "Gym", Amount: 1200, Frequency: models.FrequencyYearly, IsActive: false},
		},
		Goals: []models.Goal{
			{ID: "g1", Name: "New Phone", TargetAmount: 20000, CurrentAmount: 5000},
			{ID: "g2", Name: "Trip", TargetAmount: 50000, CurrentAmount: 0},
		},
	}
}

func TestAddTransaction_AppendOnly(t *testing.T) {
	before := baseState()
	tx := models.Transaction{ID: "t2", Amount: 40, Type: models.TypeExpense, Category: "Food & Dining"}

	after := AddTransaction(before, tx)

	require.Len(t, after.Transactions, len(before.Transactions)+1)
	assert.Equal(t, before.Transactions, after.Transactions[:len(before.Transactions)])
	assert.Equal(t, tx, after.Transactions[len(after.Transactions)-1])
	// аргумент не изменяется
	assert.Len(t, before.Transactions, 1)
}

func TestToggleSubscription_DoubleToggleIsIdentity(t *testing.T) {
	s := baseState()

	once, found := ToggleSubscription(s, "s1")
	require.True(t, found)
	assert.False(t, once.Subscriptions[0].IsActive)

	twice, found := ToggleSubscription(once, "s1")
	require.True(t, found)
	assert.Equal(t, s, twice)
}

func TestToggleSubscription_MissingID(t *testing.T) {
	s := baseState()
	after, found := ToggleSubscription(s, "nope")
	assert.False(t, found)
	assert.Equal(t, s, after)
}

func TestUpdateGoal(t *testing.T) {
	s := baseState()
	updated := models.Goal{ID: "g1", Name: "New Phone", TargetAmount: 25000, CurrentAmount: 7500}

	after, found := UpdateGoal(s, updated)
	require.True(t, found)
	assert.Equal(t, updated, after.Goals[0])
	assert.Equal(t, s.Goals[1], after.Goals[1])
	// исходная цель не тронута
	assert.Equal(t, float64(20000), s.Goals[0].TargetAmount)
}

func TestUpdateGoal_MissingID(t *testing.T) {
	s := baseState()
	after, found := UpdateGoal(s, models.Goal{ID: "nope"})
	assert.False(t, found)
	assert.Equal(t, s, after)
}

func TestDeleteGoal(t *testing.T) {
	s := baseState()

	after, found := DeleteGoal(s, "g1")
	require.True(t, found)
	require.Len(t, after.Goals, 1)
	assert.Equal(t, "g2", after.Goals[0].ID)
}

func TestDeleteGoal_MissingID_NoChange(t *testing.T) {
	s := baseState()
	after, found := DeleteGoal(s, "nope")
	assert.False(t, found)
	assert.Equal(t, s, after)
}

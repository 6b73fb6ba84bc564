// Package tracker содержит бизнес-логику трекера: сервис-координатор,
// который владеет текущим состоянием, применяет к нему чистые переходы
// из пакета mutate и после каждого принятого изменения сохраняет состояние
// через шлюз персистентности. Сбой сохранения логируется и не откатывает
// изменение: источником истины на время работы процесса остаётся память.
package tracker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mehtaarjun/paisa-tracker/internal/lib/derive"
	"github.com/mehtaarjun/paisa-tracker/internal/lib/mutate"
	"github.com/mehtaarjun/paisa-tracker/internal/lib/sl"
	"github.com/mehtaarjun/paisa-tracker/internal/models"
)

// StateStore определяет методы шлюза персистентности.
type StateStore interface {
	// Load читает состояние из слота, деградируя до пустого при сбое.
	Load(ctx context.Context) models.State
	// Save перезаписывает слот сериализованным состоянием.
	Save(ctx context.Context, state models.State) error
}

// Service реализует API мутаций и выдаёт производные представления.
type Service struct {
	store StateStore
	log   *slog.Logger

	mu    sync.RWMutex
	state models.State
}

// DashboardSummary сводка для дашборда за текущий месяц.
type DashboardSummary struct {
	Totals              derive.MonthlyTotals `json:"totals"`
	SubscriptionCost    float64              `json:"subscription_cost"`
	ActiveSubscriptions int                  `json:"active_subscriptions"`
	RecentTransactions  []models.Transaction `json:"recent_transactions"`
}

// GoalView цель вместе с рассчитанным прогрессом в процентах.
type GoalView struct {
	models.Goal
	Progress int `json:"progress"`
}

// New создаёт сервис и восстанавливает состояние из хранилища.
func New(ctx context.Context, store StateStore, log *slog.Logger) *Service {
	return &Service{
		store: store,
		log:   log,
		state: store.Load(ctx),
	}
}

// commit применяет уже рассчитанное новое состояние и сохраняет его.
// Вызывается под мьютексом.
func (s *Service) commit(ctx context.Context, next models.State) {
	s.state = next
	if err := s.store.Save(ctx, next); err != nil {
		s.log.Warn("failed to save state, in-memory state remains authoritative", sl.Err(err))
	}
}

// AddTransaction создаёт транзакцию из данных запроса и добавляет её в состояние.
func (s *Service) AddTransaction(ctx context.Context, req models.DummyTransaction) (models.Transaction, error) {
	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("invalid date: %w", err)
	}

	t := models.Transaction{
		ID:       uuid.NewString(),
		Amount:   req.Amount,
		Type:     models.TransactionType(req.Type),
		Category: req.Category,
		Date:     date,
		Note:     req.Note,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.commit(ctx, mutate.AddTransaction(s.state, t))

	s.log.Info("created new transaction", slog.String("id", t.ID), slog.String("type", req.Type))
	return t, nil
}

// ListTransactions возвращает все транзакции в порядке вставки.
func (s *Service) ListTransactions(_ context.Context) []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]models.Transaction, len(s.state.Transactions))
	copy(result, s.state.Transactions)
	return result
}

// AddSubscription создаёт подписку из данных запроса. Новая подписка активна.
func (s *Service) AddSubscription(ctx context.Context, req models.DummySubscription) (models.Subscription, error) {
	nextDueDate, err := time.Parse(time.RFC3339, req.NextDueDate)
	if err != nil {
		return models.Subscription{}, fmt.Errorf("invalid next due date: %w", err)
	}

	sub := models.Subscription{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Amount:      req.Amount,
		Frequency:   models.Frequency(req.Frequency),
		NextDueDate: nextDueDate,
		Category:    req.Category,
		IsActive:    true,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.commit(ctx, mutate.AddSubscription(s.state, sub))

	s.log.Info("created new subscription", slog.String("id", sub.ID), slog.String("name", sub.Name))
	return sub, nil
}

// ListSubscriptions возвращает все подписки в порядке вставки.
func (s *Service) ListSubscriptions(_ context.Context) []models.Subscription {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]models.Subscription, len(s.state.Subscriptions))
	copy(result, s.state.Subscriptions)
	return result
}

// ToggleSubscription переключает статус активности подписки.
// Второе значение — false, если подписка с таким id не найдена.
func (s *Service) ToggleSubscription(ctx context.Context, id string) (models.Subscription, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, found := mutate.ToggleSubscription(s.state, id)
	if !found {
		return models.Subscription{}, false
	}
	s.commit(ctx, next)

	for _, sub := range s.state.Subscriptions {
		if sub.ID == id {
			s.log.Info("toggled subscription", slog.String("id", id), slog.Bool("is_active", sub.IsActive))
			return sub, true
		}
	}
	return models.Subscription{}, false
}

// AddGoal создаёт цель из данных запроса. При отсутствии дедлайна
// назначается срок через 90 дней.
func (s *Service) AddGoal(ctx context.Context, req models.DummyGoal) (models.Goal, error) {
	deadline := time.Now().AddDate(0, 0, 90)
	if req.Deadline != "" {
		parsed, err := time.Parse(time.RFC3339, req.Deadline)
		if err != nil {
			return models.Goal{}, fmt.Errorf("invalid deadline: %w", err)
		}
		deadline = parsed
	}

	g := models.Goal{
		ID:            uuid.NewString(),
		Name:          req.Name,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		Deadline:      deadline,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.commit(ctx, mutate.AddGoal(s.state, g))

	s.log.Info("created new goal", slog.String("id", g.ID), slog.String("name", g.Name))
	return g, nil
}

// UpdateGoal целиком заменяет цель с данным id.
// Второе значение — false, если цель не найдена.
func (s *Service) UpdateGoal(ctx context.Context, id string, req models.DummyGoal) (models.Goal, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var existing *models.Goal
	for i := range s.state.Goals {
		if s.state.Goals[i].ID == id {
			existing = &s.state.Goals[i]
			break
		}
	}
	if existing == nil {
		return models.Goal{}, false, nil
	}

	deadline := existing.Deadline
	if req.Deadline != "" {
		parsed, err := time.Parse(time.RFC3339, req.Deadline)
		if err != nil {
			return models.Goal{}, false, fmt.Errorf("invalid deadline: %w", err)
		}
		deadline = parsed
	}

	g := models.Goal{
		ID:            id,
		Name:          req.Name,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		Deadline:      deadline,
	}

	next, found := mutate.UpdateGoal(s.state, g)
	if !found {
		return models.Goal{}, false, nil
	}
	s.commit(ctx, next)

	s.log.Info("updated goal", slog.String("id", id))
	return g, true, nil
}

// RemoveGoal удаляет цель с данным id. Возвращает false, если цель не найдена.
func (s *Service) RemoveGoal(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, found := mutate.DeleteGoal(s.state, id)
	if !found {
		return false
	}
	s.commit(ctx, next)

	s.log.Info("removed goal", slog.String("id", id))
	return true
}

// ListGoals возвращает все цели с рассчитанным прогрессом, в порядке вставки.
func (s *Service) ListGoals(_ context.Context) []GoalView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]GoalView, 0, len(s.state.Goals))
	for _, g := range s.state.Goals {
		result = append(result, GoalView{Goal: g, Progress: derive.GoalProgress(g)})
	}
	return result
}

// Dashboard собирает сводку за указанный месяц: итоги, приведённую месячную
// стоимость активных подписок и последние пять транзакций месяца.
func (s *Service) Dashboard(_ context.Context, year int, month time.Month) DashboardSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return DashboardSummary{
		Totals:              derive.TotalsForMonth(s.state, year, month),
		SubscriptionCost:    derive.MonthlySubscriptionCost(s.state),
		ActiveSubscriptions: len(derive.ActiveSubscriptions(s.state)),
		RecentTransactions:  derive.RecentTransactions(s.state, year, month, 5),
	}
}

// ExpenseBreakdown возвращает суммы расходов по категориям
// в порядке первого появления категории.
func (s *Service) ExpenseBreakdown(_ context.Context) []derive.CategoryTotal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return derive.ExpenseByCategory(s.state)
}

// Snapshot возвращает копию текущего состояния для построения отчётов.
func (s *Service) Snapshot(_ context.Context) models.State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := models.State{
		Transactions:  make([]models.Transaction, len(s.state.Transactions)),
		Subscriptions: make([]models.Subscription, len(s.state.Subscriptions)),
		Goals:         make([]models.Goal, len(s.state.Goals)),
	}
	copy(snap.Transactions, s.state.Transactions)
	copy(snap.Subscriptions, s.state.Subscriptions)
	copy(snap.Goals, s.state.Goals)
	return snap
}

// Package mutate содержит чистые функции перехода состояния.
// Каждая функция принимает текущее State и возвращает новое, не изменяя
// аргумент: последовательности копируются целиком. Операции по id
// дополнительно сообщают, нашлась ли запись, чтобы вызывающая сторона
// могла отличить "ничего не совпало" от "совпало и изменилось".
package mutate

import "github.com/mehtaarjun/paisa-tracker/internal/models"

// AddTransaction добавляет транзакцию в конец последовательности.
func AddTransaction(s models.State, t models.Transaction) models.State {
	next := s
	next.Transactions = append(copyTransactions(s.Transactions), t)
	return next
}

// AddSubscription добавляет подписку в конец последовательности.
func AddSubscription(s models.State, sub models.Subscription) models.State {
	next := s
	next.Subscriptions = append(copySubscriptions(s.Subscriptions), sub)
	return next
}

// ToggleSubscription переключает IsActive у подписки с данным id.
// Второе значение — false, если подписка не найдена; состояние при этом
// возвращается без изменений.
func ToggleSubscription(s models.State, id string) (models.State, bool) {
	found := false
	subs := copySubscriptions(s.Subscriptions)
	for i := range subs {
		if subs[i].ID == id {
			subs[i].IsActive = !subs[i].IsActive
			found = true
			break
		}
	}
	if !found {
		return s, false
	}
	next := s
	next.Subscriptions = subs
	return next, true
}

// AddGoal добавляет цель в конец последовательности.
func AddGoal(s models.State, g models.Goal) models.State {
	next := s
	next.Goals = append(copyGoals(s.Goals), g)
	return next
}

// UpdateGoal целиком заменяет цель с id равным g.ID.
// Второе значение — false, если цель не найдена.
func UpdateGoal(s models.State, g models.Goal) (models.State, bool) {
	found := false
	goals := copyGoals(s.Goals)
	for i := range goals {
		if goals[i].ID == g.ID {
			goals[i] = g
			found = true
			break
		}
	}
	if !found {
		return s, false
	}
	next := s
	next.Goals = goals
	return next, true
}

// DeleteGoal удаляет цель с данным id.
// Второе значение — false, если цель не найдена.
func DeleteGoal(s models.State, id string) (models.State, bool) {
	idx := -1
	for i := range s.Goals {
		if s.Goals[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return s, false
	}
	goals := make([]models.Goal, 0, len(s.Goals)-1)
	goals = append(goals, s.Goals[:idx]...)
	goals = append(goals, s.Goals[idx+1:]...)
	next := s
	next.Goals = goals
	return next, true
}

func copyTransactions(src []models.Transaction) []models.Transaction {
	dst := make([]models.Transaction, len(src))
	copy(dst, src)
	return dst
}

func copySubscriptions(src []models.Subscription) []models.Subscription {
	dst := make([]models.Subscription, len(src))
	copy(dst, src)
	return dst
}

func copyGoals(src []models.Goal) []models.Goal {
	dst := make([]models.Goal, len(src))
	copy(dst, src)
	return dst
}

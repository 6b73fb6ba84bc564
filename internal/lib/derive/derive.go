// Package derive содержит чистые функции расчёта производных представлений
// состояния: месячные итоги, месячная стоимость подписок, расходы по
// категориям и прогресс целей. Все функции пересчитывают результат за один
// проход при каждом вызове, без кеширования.
package derive

import (
	"math"
	"time"

	"github.com/mehtaarjun/paisa-tracker/internal/models"
)

// MonthlyTotals итоги за календарный месяц.
type MonthlyTotals struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}

// CategoryTotal сумма расходов по одной категории.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// TotalsForMonth считает доход, расход и баланс по транзакциям, дата которых
// попадает в указанный месяц и год. Сравнение покомпонентное (год и месяц),
// а не по диапазону дат.
func TotalsForMonth(s models.State, year int, month time.Month) MonthlyTotals {
	var totals MonthlyTotals
	for _, t := range s.Transactions {
		if t.Date.Year() != year || t.Date.Month() != month {
			continue
		}
		switch t.Type {
		case models.TypeIncome:
			totals.Income += t.Amount
		case models.TypeExpense:
			totals.Expense += t.Amount
		}
	}
	totals.Balance = totals.Income - totals.Expense
	return totals
}

// MonthlySubscriptionCost приводит активные подписки к месячной стоимости:
// YEARLY делится на 12, QUARTERLY на 3, MONTHLY как есть.
func MonthlySubscriptionCost(s models.State) float64 {
	var cost float64
	for _, sub := range s.Subscriptions {
		if !sub.IsActive {
			continue
		}
		switch sub.Frequency {
		case models.FrequencyYearly:
			cost += sub.Amount / 12
		case models.FrequencyQuarterly:
			cost += sub.Amount / 3
		default:
			cost += sub.Amount
		}
	}
	return cost
}

// ExpenseByCategory группирует все расходные транзакции по категориям
// и суммирует их. Порядок категорий — порядок первого появления.
func ExpenseByCategory(s models.State) []CategoryTotal {
	index := make(map[string]int)
	result := make([]CategoryTotal, 0)
	for _, t := range s.Transactions {
		if t.Type != models.TypeExpense {
			continue
		}
		i, ok := index[t.Category]
		if !ok {
			index[t.Category] = len(result)
			result = append(result, CategoryTotal{Category: t.Category, Total: t.Amount})
			continue
		}
		result[i].Total += t.Amount
	}
	return result
}

// GoalProgress возвращает прогресс цели в процентах, округлённый до целого
// и ограниченный сверху значением 100. При нулевой или отрицательной целевой
// сумме прогресс равен 0.
func GoalProgress(g models.Goal) int {
	if g.TargetAmount <= 0 {
		return 0
	}
	progress := int(math.Round(100 * g.CurrentAmount / g.TargetAmount))
	if progress > 100 {
		return 100
	}
	return progress
}

// OverallTotals считает доход и расход по всей истории транзакций,
// без фильтрации по месяцу.
func OverallTotals(s models.State) (income, expense float64) {
	for _, t := range s.Transactions {
		switch t.Type {
		case models.TypeIncome:
			income += t.Amount
		case models.TypeExpense:
			expense += t.Amount
		}
	}
	return income, expense
}

// RecentExpenses возвращает не более n последних расходных транзакций,
// самые свежие первыми.
func RecentExpenses(s models.State, n int) []models.Transaction {
	result := make([]models.Transaction, 0, n)
	for i := len(s.Transactions) - 1; i >= 0 && len(result) < n; i-- {
		if s.Transactions[i].Type == models.TypeExpense {
			result = append(result, s.Transactions[i])
		}
	}
	return result
}

// RecentTransactions возвращает не более n последних транзакций месяца,
// самые свежие первыми. Используется дашбордом.
func RecentTransactions(s models.State, year int, month time.Month, n int) []models.Transaction {
	result := make([]models.Transaction, 0, n)
	for i := len(s.Transactions) - 1; i >= 0 && len(result) < n; i-- {
		t := s.Transactions[i]
		if t.Date.Year() == year && t.Date.Month() == month {
			result = append(result, t)
		}
	}
	return result
}

// ActiveSubscriptions возвращает активные подписки в порядке вставки.
func ActiveSubscriptions(s models.State) []models.Subscription {
	result := make([]models.Subscription, 0, len(s.Subscriptions))
	for _, sub := range s.Subscriptions {
		if sub.IsActive {
			result = append(result, sub)
		}
	}
	return result
}

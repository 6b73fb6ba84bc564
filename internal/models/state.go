// Package models содержит доменные структуры трекера личных финансов:
// транзакции, подписки, цели накоплений и общее состояние приложения,
// а также вспомогательные типы для приёма данных из JSON-запросов.
package models

import "time"

// TransactionType тип транзакции: доход или расход.
type TransactionType string

// Возможные значения типа транзакции.
const (
	TypeIncome  TransactionType = "INCOME"
	TypeExpense TransactionType = "EXPENSE"
)

// Frequency периодичность списания по подписке.
type Frequency string

// Возможные значения периодичности.
const (
	FrequencyMonthly   Frequency = "MONTHLY"
	FrequencyYearly    Frequency = "YEARLY"
	FrequencyQuarterly Frequency = "QUARTERLY"
)

// Categories фиксированный набор меток категорий. Поле category остаётся
// свободной строкой, набор используется клиентами как подсказка.
var Categories = []string{
	"Food & Dining",
	"Travel & Commute",
	"Rent & Utilities",
	"Shopping",
	"UPI & Transfers",
	"Entertainment",
	"Coaching & Books",
	"Health & Fitness",
	"Investment",
	"Salary",
	"Freelance",
	"Pocket Money",
	"Other",
}

// Transaction разовое событие дохода или расхода.
// Запись неизменяема после создания: состояние только дополняется.
type Transaction struct {
	ID       string          `json:"id"`
	Amount   float64         `json:"amount"`
	Type     TransactionType `json:"type"`
	Category string          `json:"category"`
	Date     time.Time       `json:"date"`
	Note     string          `json:"note"`
}

// Subscription регулярный платёж с периодичностью и статусом активности.
// После создания меняется только поле IsActive (переключение).
type Subscription struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Amount      float64   `json:"amount"`
	Frequency   Frequency `json:"frequency"`
	NextDueDate time.Time `json:"nextDueDate"`
	Category    string    `json:"category"`
	IsActive    bool      `json:"isActive"`
}

// Goal цель накоплений с целевой суммой и текущим прогрессом.
// CurrentAmount может превышать TargetAmount.
type Goal struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	TargetAmount  float64   `json:"targetAmount"`
	CurrentAmount float64   `json:"currentAmount"`
	Deadline      time.Time `json:"deadline"`
}

// State полное состояние приложения: три последовательности записей
// в порядке вставки. Порядок вставки — единственный порядок модели.
type State struct {
	Transactions  []Transaction  `json:"transactions"`
	Subscriptions []Subscription `json:"subscriptions"`
	Goals         []Goal         `json:"goals"`
}

// EmptyState возвращает нулевое состояние: три пустые последовательности.
func EmptyState() State {
	return State{
		Transactions:  []Transaction{},
		Subscriptions: []Subscription{},
		Goals:         []Goal{},
	}
}

// DummyTransaction используется для приёма данных транзакции из JSON-запроса,
// прежде чем конвертировать их в Transaction. Дата приходит строкой
// в формате RFC3339, чтобы её можно было валидировать и парсить вручную.
type DummyTransaction struct {
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Type     string  `json:"type" validate:"required,oneof=INCOME EXPENSE"`
	Category string  `json:"category" validate:"required"`
	Date     string  `json:"date" validate:"required"`
	Note     string  `json:"note"`
}

// DummySubscription используется для приёма данных подписки из JSON-запроса.
type DummySubscription struct {
	Name        string  `json:"name" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Frequency   string  `json:"frequency" validate:"required,oneof=MONTHLY YEARLY QUARTERLY"`
	NextDueDate string  `json:"next_due_date" validate:"required"`
	Category    string  `json:"category" validate:"required"`
}

// DummyGoal используется для приёма данных цели из JSON-запроса.
// Deadline необязателен: при отсутствии назначается срок через 90 дней.
type DummyGoal struct {
	Name          string  `json:"name" validate:"required"`
	TargetAmount  float64 `json:"target_amount" validate:"required,gt=0"`
	CurrentAmount float64 `json:"current_amount" validate:"gte=0"`
	Deadline      string  `json:"deadline"`
}

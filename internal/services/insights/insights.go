// Package insights реализует запрос текстовой сводки о финансах у внешнего
// генеративного сервиса. Сервис собирает ограниченную выжимку состояния
// (общие доход и расход, активные подписки, последние 20 расходов), строит
// из неё промпт и отправляет его суммаризатору. Любой сбой деградирует до
// фиксированного дружелюбного сообщения; ошибка наружу не отдаётся.
package insights

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mehtaarjun/paisa-tracker/internal/lib/derive"
	"github.com/mehtaarjun/paisa-tracker/internal/lib/sl"
	"github.com/mehtaarjun/paisa-tracker/internal/models"
)

// Summarizer описывает способность получить текстовую сводку по промпту.
// Подменяется заглушкой в тестах, чтобы не ходить в сеть.
type Summarizer interface {
	Summarize(ctx context.Context, prompt string) (string, error)
}

// Фиксированные сообщения для пользователя при деградации.
const (
	MsgMissingKey = "Unable to generate insights: API Key missing."
	MsgEmpty      = "Could not generate insights at this time."
	MsgFallback   = "Oops! I'm having trouble analyzing your finances right now. Please try again later."
)

// recentExpensesLimit ограничивает размер промпта, а не корректность.
const recentExpensesLimit = 20

// Service сервис генерации финансовых инсайтов.
type Service struct {
	log        *slog.Logger
	summarizer Summarizer // nil, если учётные данные не настроены
}

// New создаёт сервис. summarizer может быть nil — тогда генерация
// недоступна и возвращается фиксированное сообщение без попытки вызова.
func New(log *slog.Logger, summarizer Summarizer) *Service {
	return &Service{
		log:        log,
		summarizer: summarizer,
	}
}

// Generate строит промпт по состоянию и запрашивает сводку.
// Единственная попытка, без ретраев; результат всегда пригоден для показа.
func (s *Service) Generate(ctx context.Context, state models.State) string {
	const op = "services.insights.generate"

	if s.summarizer == nil {
		s.log.Warn("insights requested without configured credentials", slog.String("op", op))
		return MsgMissingKey
	}

	prompt := BuildPrompt(state)

	text, err := s.summarizer.Summarize(ctx, prompt)
	if err != nil {
		s.log.Error("failed to generate insights", slog.String("op", op), sl.Err(err))
		return MsgFallback
	}
	if strings.TrimSpace(text) == "" {
		return MsgEmpty
	}
	return text
}

// BuildPrompt собирает промпт с инструкцией по стилю и выжимкой данных.
func BuildPrompt(state models.State) string {
	income, expense := derive.OverallTotals(state)
	activeSubs := derive.ActiveSubscriptions(state)
	recent := derive.RecentExpenses(state, recentExpensesLimit)

	subParts := make([]string, 0, len(activeSubs))
	for _, sub := range activeSubs {
		subParts = append(subParts, fmt.Sprintf("%s (₹%g/%s)", sub.Name, sub.Amount, sub.Frequency))
	}

	type expenseLine struct {
		Cat  string  `json:"cat"`
		Amt  float64 `json:"amt"`
		Note string  `json:"note"`
	}
	lines := make([]expenseLine, 0, len(recent))
	for _, t := range recent {
		lines = append(lines, expenseLine{Cat: t.Category, Amt: t.Amount, Note: t.Note})
	}
	recentJSON, _ := json.Marshal(lines)

	return fmt.Sprintf(
		`I am an Indian student/young earner. Analyze my financial data below and give me 3 short, punchy, friendly insights or warnings in a list format.
Focus on "Rupee" savings, unnecessary subscriptions, or high spending categories.
Currency: INR (₹).

Data:
- Total Income: ₹%g
- Total Expenses: ₹%g
- Active Subscriptions: %s
- Recent Expenses: %s

Tone: Friendly, encouraging, like a smart older sibling.
Output: Plain text, bullet points. No markdown bolding.`,
		income,
		expense,
		strings.Join(subParts, ", "),
		string(recentJSON),
	)
}

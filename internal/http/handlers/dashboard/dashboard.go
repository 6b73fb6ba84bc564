// Package dashboard реализует HTTP-обработчик сводки за календарный месяц:
// итоги по доходам и расходам, приведённая месячная стоимость активных
// подписок и последние транзакции месяца. По умолчанию берётся текущий
// месяц, год и месяц можно задать параметрами запроса.
package dashboard

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/mehtaarjun/paisa-tracker/internal/http/response"
	"github.com/mehtaarjun/paisa-tracker/internal/services/tracker"
)

// Handler управляет HTTP-запросами сводки дашборда.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики сводки.
type Service interface {
	Dashboard(ctx context.Context, year int, month time.Month) tracker.DashboardSummary
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.dashboard"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	now := time.Now()
	year := now.Year()
	month := now.Month()

	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil {
			log.Error("invalid year format")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid year"))
			return
		}
		year = parsed
	}
	if monthStr := r.URL.Query().Get("month"); monthStr != "" {
		parsed, err := strconv.Atoi(monthStr)
		if err != nil || parsed < 1 || parsed > 12 {
			log.Error("invalid month format")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid month"))
			return
		}
		month = time.Month(parsed)
	}

	summary := h.service.Dashboard(r.Context(), year, month)

	log.Info("dashboard summary built",
		slog.Int("year", year), slog.Int("month", int(month)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"year":      year,
		"month":     int(month),
		"dashboard": summary,
	}))
}

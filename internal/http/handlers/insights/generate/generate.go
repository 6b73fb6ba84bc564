// Package generate реализует HTTP-обработчик запроса текстовой сводки
// о финансах у внешнего генеративного сервиса.
//
// Обработчик всегда отвечает 200: сбои генерации деградируют до
// фиксированных сообщений внутри сервиса инсайтов.
package generate

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/mehtaarjun/paisa-tracker/internal/http/response"
	"github.com/mehtaarjun/paisa-tracker/internal/models"
)

// Handler управляет HTTP-запросами генерации инсайтов.
type Handler struct {
	log      *slog.Logger
	tracker  TrackerService
	insights InsightsService
}

// TrackerService отдаёт снимок текущего состояния.
type TrackerService interface {
	Snapshot(ctx context.Context) models.State
}

// InsightsService генерирует текстовую сводку по состоянию.
type InsightsService interface {
	Generate(ctx context.Context, state models.State) string
}

// New создает новый Handler с переданными логгером и сервисами.
func New(log *slog.Logger, tracker TrackerService, insights InsightsService) *Handler {
	return &Handler{
		log:      log,
		tracker:  tracker,
		insights: insights,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.insights.generate"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	state := h.tracker.Snapshot(r.Context())
	text := h.insights.Generate(r.Context(), state)

	log.Info("insights generated", slog.Int("length", len(text)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"insight": text,
	}))
}

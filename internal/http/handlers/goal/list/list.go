package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/mehtaarjun/paisa-tracker/internal/http/response"
	"github.com/mehtaarjun/paisa-tracker/internal/services/tracker"
)

type Handler struct {
	log     *slog.Logger
	service Service
}

type Service interface {
	ListGoals(ctx context.Context) []tracker.GoalView
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.goal.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	res := h.service.ListGoals(r.Context())

	log.Info("list goals", "count", len(res))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"list_count": len(res),
		"goals":      res,
	}))
}

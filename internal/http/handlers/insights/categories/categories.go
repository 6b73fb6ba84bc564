package categories

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/mehtaarjun/paisa-tracker/internal/http/response"
	"github.com/mehtaarjun/paisa-tracker/internal/lib/derive"
)

type Handler struct {
	log     *slog.Logger
	service Service
}

type Service interface {
	ExpenseBreakdown(ctx context.Context) []derive.CategoryTotal
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.insights.categories"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	res := h.service.ExpenseBreakdown(r.Context())

	log.Info("expense breakdown built", "count", len(res))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"categories": res,
	}))
}

// Package update реализует HTTP-обработчик полной замены цели по id.
//
// Промах по id возвращается как 404, а не молчаливый no-op.
package update

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/mehtaarjun/paisa-tracker/internal/http/response"
	"github.com/mehtaarjun/paisa-tracker/internal/lib/sl"
	"github.com/mehtaarjun/paisa-tracker/internal/models"
)

// Handler управляет HTTP-запросами на обновление целей.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики обновления цели.
type Service interface {
	UpdateGoal(ctx context.Context, id string, req models.DummyGoal) (models.Goal, bool, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.goal.update"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	if id == "" {
		log.Error("missing goal id")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid id"))
		return
	}

	var req models.DummyGoal
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	g, found, err := h.service.UpdateGoal(r.Context(), id, req)
	if err != nil {
		log.Error("failed to update goal", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not update goal"))
		return
	}
	if !found {
		log.Info("goal not found", slog.String("id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("goal not found"))
		return
	}

	log.Info("success to update goal", slog.String("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"goal": g,
	}))
}

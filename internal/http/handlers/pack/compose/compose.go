// Package compose реализует HTTP-обработчик предварительного расчёта
// состава пакета: часы, цена и себестоимость без сохранения в базу.
package compose

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/mkravelev/maas-platform/internal/http/middlewarectx"
	"github.com/mkravelev/maas-platform/internal/http/response"
	"github.com/mkravelev/maas-platform/internal/lib/sl"
	"github.com/mkravelev/maas-platform/internal/models"
	"github.com/mkravelev/maas-platform/internal/pricing"
)

// Handler управляет HTTP-запросами расчёта состава.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики расчёта состава.
type Service interface {
	Compose(ctx context.Context, req models.DummyComposeRequest) (pricing.Result, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Рассчитать состав пакета
// @Description Считает суммарные часы, цену и себестоимость по выбранным шаблонам работ. Позиции с неизвестными шаблонами пропускаются и возвращаются отдельным списком.
// @Tags Packages
// @Accept  json
// @Produce  json
// @Param request body models.DummyComposeRequest true "Выбранные шаблоны и количества"
// @Success 200 {object} map[string]any "Итоги расчёта"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security BearerAuth
// @Router /packages/compose [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.pack.compose"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyComposeRequest
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

	username, ok := r.Context().Value(middlewarectx.User).(string)
	if !ok || username == "" {
		log.Error("username not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	result, err := h.service.Compose(r.Context(), req)
	if err != nil {
		log.Error("failed to compose package", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not compose package"))
		return
	}

	log.Info("composition calculated",
		slog.Float64("total_hours", result.TotalHours),
		slog.Int("missing_templates", len(result.Missing)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"composition": result,
	}))
}

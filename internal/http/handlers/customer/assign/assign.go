// Package assign реализует HTTP-обработчик подключения пакета клиенту.
package assign

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/mkravelev/maas-platform/internal/http/middlewarectx"
	"github.com/mkravelev/maas-platform/internal/http/response"
	"github.com/mkravelev/maas-platform/internal/lib/sl"
	"github.com/mkravelev/maas-platform/internal/models"
	"github.com/mkravelev/maas-platform/internal/storage/repository"
)

// Handler управляет HTTP-запросами подключения пакетов.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики подключения пакета.
type Service interface {
	AssignPackage(ctx context.Context, customerID int64, req models.DummyAssignPackage) (int64, error)
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
// @Summary Подключить пакет клиенту
// @Description Подключает пакет услуг клиенту с датой начала. Повторное подключение активного пакета возвращает конфликт.
// @Tags Customers
// @Accept  json
// @Produce  json
// @Param id path int true "ID клиента"
// @Param request body models.DummyAssignPackage true "Пакет и дата начала"
// @Success 200 {object} map[string]any "Успешное подключение"
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 409 {object} response.ErrorResponse "Пакет уже подключен"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security BearerAuth
// @Router /customers/{id}/packages [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.customer.assign"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	customerID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Error("invalid customer id", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid customer id"))
		return
	}

	var req models.DummyAssignPackage
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

	id, err := h.service.AssignPackage(r.Context(), customerID, req)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateAssignment) {
			log.Warn("package already assigned",
				slog.Int64("customer_id", customerID),
				slog.Int64("package_id", req.PackageID))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("package already assigned"))
			return
		}
		log.Error("failed to assign package", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not assign package"))
		return
	}

	log.Info("package assigned",
		slog.Int64("customer_id", customerID),
		slog.Int64("customer_package_id", id))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"customer_package_id": id,
	}))
}

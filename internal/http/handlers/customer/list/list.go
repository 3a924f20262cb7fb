// Package list реализует HTTP-обработчик для получения списка клиентов.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/mkravelev/maas-platform/internal/http/middlewarectx"
	"github.com/mkravelev/maas-platform/internal/http/response"
	"github.com/mkravelev/maas-platform/internal/lib/sl"
	"github.com/mkravelev/maas-platform/internal/models"
)

// Handler управляет HTTP-запросами на получение списка клиентов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики списка клиентов.
type Service interface {
	List(ctx context.Context, limit, offset int) ([]*models.Customer, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список клиентов
// @Description Возвращает страницу клиентов с пагинацией через limit и offset.
// @Tags Customers
// @Produce  json
// @Param limit query int false "Максимум записей (по умолчанию 50)"
// @Param offset query int false "Смещение (по умолчанию 0)"
// @Success 200 {object} map[string]any "Список клиентов"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security BearerAuth
// @Router /customers [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.customer.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = 50
	}
	offset, err := strconv.Atoi(r.URL.Query().Get("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}

	username, ok := r.Context().Value(middlewarectx.User).(string)
	if !ok || username == "" {
		log.Error("username not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	customers, err := h.service.List(r.Context(), limit, offset)
	if err != nil {
		log.Error("failed to list customers", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list customers"))
		return
	}

	log.Info("customers listed", slog.Int("count", len(customers)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"customers": customers,
	}))
}

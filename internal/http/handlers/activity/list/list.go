// Package list реализует HTTP-обработчик списка записей о работе
// по конкретному подключению пакета.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/mkravelev/maas-platform/internal/http/middlewarectx"
	"github.com/mkravelev/maas-platform/internal/http/response"
	"github.com/mkravelev/maas-platform/internal/lib/sl"
	"github.com/mkravelev/maas-platform/internal/models"
)

// Handler управляет HTTP-запросами списка записей о работе.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики списка записей.
type Service interface {
	List(ctx context.Context, customerPackageID int64, limit, offset int) ([]*models.Activity, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список записей о работе
// @Description Возвращает записи о работе по подключению пакета с пагинацией.
// @Tags Activities
// @Produce  json
// @Param id path int true "ID подключения пакета"
// @Param limit query int false "Максимум записей (по умолчанию 50)"
// @Param offset query int false "Смещение (по умолчанию 0)"
// @Success 200 {object} map[string]any "Список записей"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security BearerAuth
// @Router /customer-packages/{id}/activities [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.activity.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	customerPackageID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Error("invalid customer package id", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid customer package id"))
		return
	}

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

	activities, err := h.service.List(r.Context(), customerPackageID, limit, offset)
	if err != nil {
		log.Error("failed to list activities", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list activities"))
		return
	}

	log.Info("activities listed",
		slog.Int64("customer_package_id", customerPackageID),
		slog.Int("count", len(activities)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"activities": activities,
	}))
}

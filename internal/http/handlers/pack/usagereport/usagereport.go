// Package usagereport реализует HTTP-обработчик отчёта о загрузке пакета.
package usagereport

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
	"github.com/mkravelev/maas-platform/internal/usage"
)

// Handler управляет HTTP-запросами отчёта о загрузке.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики отчёта о загрузке.
type Service interface {
	Usage(ctx context.Context, id int64) (usage.Report, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Отчёт о загрузке пакета
// @Description Возвращает использованные часы, процент загрузки (не выше 100), остаток часов и статус пакета: optimal, attention или overloaded.
// @Tags Packages
// @Produce  json
// @Param id path int true "ID пакета"
// @Success 200 {object} map[string]any "Отчёт о загрузке"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security BearerAuth
// @Router /packages/{id}/usage [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.pack.usagereport"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Error("invalid package id", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid package id"))
		return
	}

	username, ok := r.Context().Value(middlewarectx.User).(string)
	if !ok || username == "" {
		log.Error("username not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	report, err := h.service.Usage(r.Context(), id)
	if err != nil {
		log.Error("failed to build usage report", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not build usage report"))
		return
	}

	log.Info("usage report built",
		slog.Int64("id", id),
		slog.String("status", report.Status))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"usage": report,
	}))
}

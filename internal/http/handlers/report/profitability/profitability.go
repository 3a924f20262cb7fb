// Package profitability реализует HTTP-обработчик отчёта о рентабельности
// клиентов: срез по каждому клиенту плюс агрегаты по агентству.
package profitability

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/mkravelev/maas-platform/internal/http/middlewarectx"
	"github.com/mkravelev/maas-platform/internal/http/response"
	"github.com/mkravelev/maas-platform/internal/lib/sl"
	"github.com/mkravelev/maas-platform/internal/services/report"
)

// Handler управляет HTTP-запросами отчёта о рентабельности.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики отчёта.
type Service interface {
	Profitability(ctx context.Context) (*report.Data, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Отчёт о рентабельности клиентов
// @Description Возвращает по каждому клиенту договорные и фактические показатели, маржу и статус (profit/risk/loss), а также сводные итоги по агентству.
// @Tags Reports
// @Produce  json
// @Success 200 {object} map[string]any "Отчёт о рентабельности"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security BearerAuth
// @Router /reports/profitability [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.report.profitability"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	username, ok := r.Context().Value(middlewarectx.User).(string)
	if !ok || username == "" {
		log.Error("username not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	data, err := h.service.Profitability(r.Context())
	if err != nil {
		log.Error("failed to build profitability report", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not build profitability report"))
		return
	}

	log.Info("profitability report built", slog.Int("customers", len(data.Customers)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"report": data,
	}))
}

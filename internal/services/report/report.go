// Package report содержит бизнес-логику отчёта о рентабельности:
// по показателям каждого клиента строятся снимки, по снимкам — сводка
// портфеля. Отчёт кешируется на короткое время и сбрасывается записью
// новых работ или изменением подключений.
package report

import (
	"context"
	"log/slog"
	"time"

	"github.com/mkravelev/maas-platform/internal/config"
	"github.com/mkravelev/maas-platform/internal/models"
	"github.com/mkravelev/maas-platform/internal/profitability"
)

// Ключ кеша отчёта о рентабельности.
const cacheKey = "profitability:report"

// Repository определяет выборку исходных показателей клиентов.
type Repository interface {
	// ListCustomerFigures возвращает показатели всех клиентов.
	ListCustomerFigures(ctx context.Context) ([]models.CustomerFigures, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
}

// Data — полный отчёт: снимки клиентов и сводка портфеля.
type Data struct {
	Customers []profitability.Snapshot `json:"customers"`
	Summary   profitability.Summary    `json:"summary"`
}

// Service реализует построение отчёта о рентабельности.
type Service struct {
	repo  Repository
	cache Cache
	rates config.Rates
	log   *slog.Logger
}

// New создает новый Service отчётов.
func New(repo Repository, cache Cache, rates config.Rates, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		rates: rates,
		log:   log,
	}
}

// Profitability строит отчёт о рентабельности по всем клиентам.
// Снимки не сохраняются: отчёт пересчитывается на каждый запрос,
// кеш лишь сглаживает частые обращения к дашборду.
func (s *Service) Profitability(ctx context.Context) (*Data, error) {
	var cached Data
	found, err := s.cache.Get(cacheKey, &cached)
	if err == nil && found {
		return &cached, nil
	}

	figures, err := s.repo.ListCustomerFigures(ctx)
	if err != nil {
		return nil, err
	}

	snapshots := make([]profitability.Snapshot, 0, len(figures))
	for _, fig := range figures {
		snapshots = append(snapshots, profitability.Analyze(fig, s.rates.CostRate))
	}

	data := &Data{
		Customers: snapshots,
		Summary:   profitability.Summarize(snapshots),
	}

	if err := s.cache.Set(cacheKey, data, 5*time.Minute); err != nil {
		s.log.Warn("failed to cache profitability report", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return data, nil
}

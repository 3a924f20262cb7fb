// Package activity содержит бизнес-логику записей фактических работ.
package activity

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mkravelev/maas-platform/internal/models"
)

// Ключ кеша отчёта о рентабельности; сбрасывается при записи новой работы.
const profitabilityCacheKey = "profitability:report"

// Repository определяет методы для работы с записями работ в хранилище.
type Repository interface {
	// CreateActivity добавляет запись о работе и возвращает её ID.
	CreateActivity(ctx context.Context, activity models.Activity) (int64, error)
	// ListActivities возвращает записи по подключению пакета с пагинацией.
	ListActivities(ctx context.Context, customerPackageID int64, limit, offset int) ([]*models.Activity, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Invalidate(key string) error
}

// Service реализует бизнес-логику записей работ.
type Service struct {
	repo  Repository
	cache Cache
	log   *slog.Logger
}

// New создает новый Service записей работ.
func New(repo Repository, cache Cache, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// Create создает запись о выполненной работе и возвращает её ID.
// Дата приходит строкой в формате 02-01-2006, статус по умолчанию PENDING.
func (s *Service) Create(ctx context.Context, req models.DummyActivity) (int64, error) {
	date, err := time.Parse("02-01-2006", req.Date)
	if err != nil {
		return 0, fmt.Errorf("invalid date: %w", err)
	}

	status := req.Status
	if status == "" {
		status = models.ActivityPending
	}

	activity := models.Activity{
		CustomerPackageID: req.CustomerPackageID,
		EmployeeID:        req.EmployeeID,
		Description:       req.Description,
		Hours:             req.Hours,
		Date:              date,
		Status:            status,
	}

	id, err := s.repo.CreateActivity(ctx, activity)
	if err != nil {
		return 0, err
	}
	s.log.Info("logged activity", slog.Int64("id", id),
		slog.Int64("customer_package_id", req.CustomerPackageID))

	if err := s.cache.Invalidate(profitabilityCacheKey); err != nil {
		s.log.Warn("failed to invalidate profitability cache",
			slog.String("key", profitabilityCacheKey), slog.Any("err", err))
	}
	return id, nil
}

// List возвращает записи о работах по подключению пакета с пагинацией.
func (s *Service) List(ctx context.Context, customerPackageID int64, limit, offset int) ([]*models.Activity, error) {
	return s.repo.ListActivities(ctx, customerPackageID, limit, offset)
}

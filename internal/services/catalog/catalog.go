// Package catalog содержит бизнес-логику каталога шаблонов работ.
package catalog

import (
	"context"
	"log/slog"
	"time"

	"github.com/mkravelev/maas-platform/internal/models"
)

// Ключ кеша полного каталога шаблонов.
const cacheKeyAll = "catalog:all"

// Repository определяет методы для работы с шаблонами в хранилище.
type Repository interface {
	// CreateTemplate добавляет новый шаблон и возвращает его ID.
	CreateTemplate(ctx context.Context, tpl models.ActivityTemplate) (int64, error)
	// ReadTemplate возвращает шаблон по ID.
	ReadTemplate(ctx context.Context, id int64) (*models.ActivityTemplate, error)
	// ListTemplates возвращает список шаблонов с пагинацией.
	ListTemplates(ctx context.Context, limit, offset int) ([]*models.ActivityTemplate, error)
	// ListAllTemplates возвращает все шаблоны без пагинации.
	ListAllTemplates(ctx context.Context) ([]*models.ActivityTemplate, error)
	// UpdateTemplate обновляет шаблон по ID.
	UpdateTemplate(ctx context.Context, tpl models.ActivityTemplate, id int64) (int, error)
	// RemoveTemplate удаляет шаблон по ID.
	RemoveTemplate(ctx context.Context, id int64) (int, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// Service реализует бизнес-логику каталога, включая кеширование.
type Service struct {
	repo  Repository
	cache Cache
	log   *slog.Logger
}

// New создает новый Service каталога.
func New(repo Repository, cache Cache, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// Create создает новый шаблон работы и возвращает его ID.
func (s *Service) Create(ctx context.Context, req models.DummyActivityTemplate) (int64, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	tpl := models.ActivityTemplate{
		Name:           req.Name,
		Description:    req.Description,
		Category:       req.Category,
		EstimatedHours: req.EstimatedHours,
		SellingPrice:   req.SellingPrice,
		CostPrice:      req.CostPrice,
		IsActive:       isActive,
	}

	id, err := s.repo.CreateTemplate(ctx, tpl)
	if err != nil {
		return 0, err
	}
	s.log.Info("created new activity template", slog.Int64("id", id))

	s.invalidateCatalog()
	return id, nil
}

// Read возвращает шаблон по ID.
func (s *Service) Read(ctx context.Context, id int64) (*models.ActivityTemplate, error) {
	return s.repo.ReadTemplate(ctx, id)
}

// List возвращает список шаблонов с пагинацией.
func (s *Service) List(ctx context.Context, limit, offset int) ([]*models.ActivityTemplate, error) {
	return s.repo.ListTemplates(ctx, limit, offset)
}

// Update обновляет шаблон и возвращает число изменённых строк.
func (s *Service) Update(ctx context.Context, req models.DummyActivityTemplate, id int64) (int, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	tpl := models.ActivityTemplate{
		Name:           req.Name,
		Description:    req.Description,
		Category:       req.Category,
		EstimatedHours: req.EstimatedHours,
		SellingPrice:   req.SellingPrice,
		CostPrice:      req.CostPrice,
		IsActive:       isActive,
	}
	count, err := s.repo.UpdateTemplate(ctx, tpl, id)
	if err != nil {
		return 0, err
	}
	s.invalidateCatalog()
	return count, nil
}

// Remove удаляет шаблон по ID и возвращает число удалённых строк.
func (s *Service) Remove(ctx context.Context, id int64) (int, error) {
	count, err := s.repo.RemoveTemplate(ctx, id)
	if err != nil {
		return 0, err
	}
	s.invalidateCatalog()
	return count, nil
}

// CatalogMap возвращает каталог шаблонов в виде отображения id -> шаблон
// для расчёта состава пакета. Результат кешируется на короткое время.
func (s *Service) CatalogMap(ctx context.Context) (map[int64]models.ActivityTemplate, error) {
	var cached map[int64]models.ActivityTemplate
	found, err := s.cache.Get(cacheKeyAll, &cached)
	if err == nil && found {
		return cached, nil
	}

	templates, err := s.repo.ListAllTemplates(ctx)
	if err != nil {
		return nil, err
	}

	catalog := make(map[int64]models.ActivityTemplate, len(templates))
	for _, tpl := range templates {
		catalog[tpl.ID] = *tpl
	}

	if err := s.cache.Set(cacheKeyAll, catalog, 5*time.Minute); err != nil {
		s.log.Warn("failed to cache catalog", slog.String("key", cacheKeyAll), slog.Any("err", err))
	}
	return catalog, nil
}

func (s *Service) invalidateCatalog() {
	if err := s.cache.Invalidate(cacheKeyAll); err != nil {
		s.log.Warn("failed to invalidate catalog cache",
			slog.String("key", cacheKeyAll), slog.Any("err", err))
	}
}

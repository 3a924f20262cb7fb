// Package packages содержит бизнес-логику пакетов услуг: сохранение
// пакетов с составом, предварительный расчёт состава через композер
// и отчёт о загрузке с оповещением о перегрузке.
package packages

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mkravelev/maas-platform/internal/config"
	"github.com/mkravelev/maas-platform/internal/models"
	"github.com/mkravelev/maas-platform/internal/pricing"
	"github.com/mkravelev/maas-platform/internal/usage"
)

// Ключ маршрутизации оповещения о перегруженном пакете.
const overloadRoutingKey = "package.overloaded"

// Repository определяет методы для работы с пакетами в хранилище.
type Repository interface {
	// CreatePackage добавляет пакет с составом и возвращает его ID.
	CreatePackage(ctx context.Context, pkg models.Package, activities []models.PackageActivity) (int64, error)
	// ReadPackage возвращает пакет по ID.
	ReadPackage(ctx context.Context, id int64) (*models.Package, error)
	// ListPackages возвращает список пакетов с пагинацией.
	ListPackages(ctx context.Context, limit, offset int) ([]*models.Package, error)
	// UpdatePackage обновляет пакет и, при непустом составе, заменяет состав.
	UpdatePackage(ctx context.Context, pkg models.Package, activities []models.PackageActivity, id int64) (int, error)
	// RemovePackage удаляет пакет по ID.
	RemovePackage(ctx context.Context, id int64) (int, error)
	// ListPackageActivityRows возвращает состав пакета для расчёта загрузки.
	ListPackageActivityRows(ctx context.Context, packageID int64) ([]models.PackageActivityRow, error)
}

// CatalogProvider отдаёт каталог шаблонов для композера.
type CatalogProvider interface {
	CatalogMap(ctx context.Context) (map[int64]models.ActivityTemplate, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// AlertPublisher публикует оповещения в обменник уведомлений.
type AlertPublisher interface {
	Publish(routingKey string, message any) error
}

// OverloadAlert — сообщение о пакете, состав которого превысил лимит часов.
type OverloadAlert struct {
	PackageID   int64   `json:"package_id"`
	PackageName string  `json:"package_name"`
	UsedHours   float64 `json:"used_hours"`
	MaxHours    float64 `json:"max_hours"`
}

// Service реализует бизнес-логику пакетов услуг.
type Service struct {
	repo    Repository
	catalog CatalogProvider
	cache   Cache
	alerts  AlertPublisher
	rates   config.Rates
	log     *slog.Logger
}

// New создает новый Service пакетов.
func New(repo Repository, catalog CatalogProvider, cache Cache, alerts AlertPublisher, rates config.Rates, log *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		catalog: catalog,
		cache:   cache,
		alerts:  alerts,
		rates:   rates,
		log:     log,
	}
}

// Create создает пакет с составом и возвращает его ID.
// Позиции с нулевым количеством отбрасываются до сохранения.
func (s *Service) Create(ctx context.Context, req models.DummyPackage) (int64, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	pkg := models.Package{
		Name:        req.Name,
		Description: req.Description,
		MaxHours:    req.MaxHours,
		Price:       req.Price,
		IsActive:    isActive,
	}

	id, err := s.repo.CreatePackage(ctx, pkg, selectionsToActivities(req.Selections))
	if err != nil {
		return 0, err
	}
	s.log.Info("created new package", slog.Int64("id", id))
	return id, nil
}

// Read возвращает пакет по ID.
func (s *Service) Read(ctx context.Context, id int64) (*models.Package, error) {
	return s.repo.ReadPackage(ctx, id)
}

// List возвращает список пакетов с пагинацией.
func (s *Service) List(ctx context.Context, limit, offset int) ([]*models.Package, error) {
	return s.repo.ListPackages(ctx, limit, offset)
}

// Update обновляет пакет и его состав, сбрасывает кеш загрузки.
func (s *Service) Update(ctx context.Context, req models.DummyPackage, id int64) (int, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	pkg := models.Package{
		Name:        req.Name,
		Description: req.Description,
		MaxHours:    req.MaxHours,
		Price:       req.Price,
		IsActive:    isActive,
	}

	var activities []models.PackageActivity
	if req.Selections != nil {
		activities = selectionsToActivities(req.Selections)
	}

	count, err := s.repo.UpdatePackage(ctx, pkg, activities, id)
	if err != nil {
		return 0, err
	}
	s.invalidateUsage(id)
	return count, nil
}

// Remove удаляет пакет по ID, сбрасывает кеш загрузки.
func (s *Service) Remove(ctx context.Context, id int64) (int, error) {
	count, err := s.repo.RemovePackage(ctx, id)
	if err != nil {
		return 0, err
	}
	s.invalidateUsage(id)
	return count, nil
}

// Compose считает итоги состава без сохранения: часы, цену и себестоимость
// по плоской эталонной ставке из конфигурации. Позиции с неизвестными
// шаблонами вносят ноль; о них пишется предупреждение в лог.
func (s *Service) Compose(ctx context.Context, req models.DummyComposeRequest) (pricing.Result, error) {
	catalog, err := s.catalog.CatalogMap(ctx)
	if err != nil {
		return pricing.Result{}, err
	}

	selections := make([]pricing.Selection, 0, len(req.Selections))
	for _, sel := range req.Selections {
		selections = append(selections, pricing.Selection{
			TemplateID: sel.ActivityTemplateID,
			Quantity:   sel.Quantity,
		})
	}

	result := pricing.Compose(selections, catalog, pricing.FlatRate{HourlyRate: s.rates.HourlyRate})
	if len(result.Missing) > 0 {
		s.log.Warn("composition references unknown templates", slog.Any("template_ids", result.Missing))
	}
	return result, nil
}

// Usage считает загрузку пакета. Результат кешируется на короткое время;
// перегруженный пакет дополнительно публикует оповещение.
func (s *Service) Usage(ctx context.Context, id int64) (usage.Report, error) {
	cacheKey := fmt.Sprintf("usage:%d", id)
	var cached usage.Report
	found, err := s.cache.Get(cacheKey, &cached)
	if err == nil && found {
		return cached, nil
	}

	pkg, err := s.repo.ReadPackage(ctx, id)
	if err != nil {
		return usage.Report{}, err
	}
	rows, err := s.repo.ListPackageActivityRows(ctx, id)
	if err != nil {
		return usage.Report{}, err
	}

	report := usage.Compute(pkg.MaxHours, rows)

	if err := s.cache.Set(cacheKey, report, 5*time.Minute); err != nil {
		s.log.Warn("failed to cache usage report", slog.String("key", cacheKey), slog.Any("err", err))
	}

	if report.Status == usage.StatusOverloaded {
		alert := OverloadAlert{
			PackageID:   pkg.ID,
			PackageName: pkg.Name,
			UsedHours:   report.UsedHours,
			MaxHours:    report.TotalHours,
		}
		if err := s.alerts.Publish(overloadRoutingKey, alert); err != nil {
			s.log.Warn("failed to publish overload alert", slog.Int64("package_id", pkg.ID), slog.Any("err", err))
		}
	}

	return report, nil
}

func (s *Service) invalidateUsage(id int64) {
	cacheKey := fmt.Sprintf("usage:%d", id)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate usage cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
}

func selectionsToActivities(selections []models.DummySelection) []models.PackageActivity {
	result := make([]models.PackageActivity, 0, len(selections))
	for _, sel := range selections {
		if sel.Quantity == 0 {
			continue
		}
		result = append(result, models.PackageActivity{
			ActivityTemplateID: sel.ActivityTemplateID,
			Quantity:           sel.Quantity,
			IsIncluded:         true,
		})
	}
	return result
}

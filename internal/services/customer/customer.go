// Package customer содержит бизнес-логику клиентов и подключения
// пакетов.
package customer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mkravelev/maas-platform/internal/models"
)

// Ключ кеша отчёта о рентабельности; сбрасывается при изменении подключений.
const profitabilityCacheKey = "profitability:report"

// Repository определяет методы для работы с клиентами в хранилище.
type Repository interface {
	// CreateCustomer добавляет клиента и возвращает его ID.
	CreateCustomer(ctx context.Context, customer models.Customer) (int64, error)
	// ReadCustomer возвращает клиента по ID.
	ReadCustomer(ctx context.Context, id int64) (*models.Customer, error)
	// ListCustomers возвращает список клиентов с пагинацией.
	ListCustomers(ctx context.Context, limit, offset int) ([]*models.Customer, error)
	// AssignPackage подключает пакет клиенту.
	AssignPackage(ctx context.Context, customerID, packageID int64, startDate time.Time) (int64, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Invalidate(key string) error
}

// Service реализует бизнес-логику клиентов.
type Service struct {
	repo  Repository
	cache Cache
	log   *slog.Logger
}

// New создает новый Service клиентов.
func New(repo Repository, cache Cache, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// Create создает нового клиента и возвращает его ID.
func (s *Service) Create(ctx context.Context, req models.DummyCustomer) (int64, error) {
	customer := models.Customer{
		UID:         uuid.New().String(),
		CompanyName: req.CompanyName,
		ContactName: req.ContactName,
		Email:       req.Email,
		Status:      "active",
	}

	id, err := s.repo.CreateCustomer(ctx, customer)
	if err != nil {
		return 0, err
	}
	s.log.Info("created new customer", slog.Int64("id", id))
	return id, nil
}

// Read возвращает клиента по ID.
func (s *Service) Read(ctx context.Context, id int64) (*models.Customer, error) {
	return s.repo.ReadCustomer(ctx, id)
}

// List возвращает список клиентов с пагинацией.
func (s *Service) List(ctx context.Context, limit, offset int) ([]*models.Customer, error) {
	return s.repo.ListCustomers(ctx, limit, offset)
}

// AssignPackage подключает пакет клиенту и сбрасывает кеш отчёта
// о рентабельности. Дата начала приходит строкой в формате 02-01-2006.
func (s *Service) AssignPackage(ctx context.Context, customerID int64, req models.DummyAssignPackage) (int64, error) {
	startDate, err := time.Parse("02-01-2006", req.StartDate)
	if err != nil {
		return 0, fmt.Errorf("invalid start date: %w", err)
	}

	id, err := s.repo.AssignPackage(ctx, customerID, req.PackageID, startDate)
	if err != nil {
		return 0, err
	}
	s.log.Info("assigned package to customer",
		slog.Int64("customer_id", customerID), slog.Int64("package_id", req.PackageID))

	if err := s.cache.Invalidate(profitabilityCacheKey); err != nil {
		s.log.Warn("failed to invalidate profitability cache",
			slog.String("key", profitabilityCacheKey), slog.Any("err", err))
	}
	return id, nil
}

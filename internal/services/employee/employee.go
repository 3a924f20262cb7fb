// Package employee содержит бизнес-логику сотрудников агентства.
package employee

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mkravelev/maas-platform/internal/models"
)

// Repository определяет методы для работы с сотрудниками в хранилище.
type Repository interface {
	// CreateEmployee добавляет сотрудника и возвращает его ID.
	CreateEmployee(ctx context.Context, employee models.Employee) (int64, error)
	// ListEmployees возвращает список сотрудников с пагинацией.
	ListEmployees(ctx context.Context, limit, offset int) ([]*models.Employee, error)
}

// Service реализует бизнес-логику сотрудников.
type Service struct {
	repo Repository
	log  *slog.Logger
}

// New создает новый Service сотрудников.
func New(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// Create создает нового сотрудника и возвращает его ID.
func (s *Service) Create(ctx context.Context, req models.DummyEmployee) (int64, error) {
	employee := models.Employee{
		UID:      uuid.New().String(),
		Name:     req.Name,
		Email:    req.Email,
		Role:     req.Role,
		CostRate: req.CostRate,
	}

	id, err := s.repo.CreateEmployee(ctx, employee)
	if err != nil {
		return 0, err
	}
	s.log.Info("created new employee", slog.Int64("id", id))
	return id, nil
}

// List возвращает список сотрудников с пагинацией.
func (s *Service) List(ctx context.Context, limit, offset int) ([]*models.Employee, error) {
	return s.repo.ListEmployees(ctx, limit, offset)
}

package repository

import (
	"context"
	"fmt"

	"github.com/mkravelev/maas-platform/internal/models"
)

// CreateEmployee вставляет нового сотрудника и возвращает его ID.
func (s *Storage) CreateEmployee(ctx context.Context, employee models.Employee) (int64, error) {
	const op = "repository.CreateEmployee"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO employees (uid, name, email, role, cost_rate)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`
	var newID int64
	err := s.DB.QueryRowContext(ctx, query,
		employee.UID, employee.Name, employee.Email, employee.Role, employee.CostRate).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListEmployees возвращает список сотрудников с пагинацией.
func (s *Storage) ListEmployees(ctx context.Context, limit, offset int) ([]*models.Employee, error) {
	const op = "repository.ListEmployees"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, uid, name, email, role, cost_rate
			  FROM employees
			  ORDER BY id
			  LIMIT $1 OFFSET $2`
	rows, err := s.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var result []*models.Employee
	for rows.Next() {
		var item models.Employee
		if err := rows.Scan(&item.ID, &item.UID, &item.Name,
			&item.Email, &item.Role, &item.CostRate); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	err = rows.Close()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

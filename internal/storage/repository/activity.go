package repository

import (
	"context"
	"fmt"

	"github.com/mkravelev/maas-platform/internal/models"
)

// CreateActivity вставляет запись о фактически выполненной работе
// и возвращает её ID.
func (s *Storage) CreateActivity(ctx context.Context, activity models.Activity) (int64, error) {
	const op = "repository.CreateActivity"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO activities (customer_package_id, employee_id, description, hours, date, status)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id`
	var newID int64
	err := s.DB.QueryRowContext(ctx, query,
		activity.CustomerPackageID, activity.EmployeeID, activity.Description,
		activity.Hours, activity.Date, activity.Status).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListActivities возвращает записи о работах по подключению пакета
// с пагинацией.
func (s *Storage) ListActivities(ctx context.Context, customerPackageID int64, limit, offset int) ([]*models.Activity, error) {
	const op = "repository.ListActivities"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, customer_package_id, employee_id, description, hours, date, status
			  FROM activities
			  WHERE customer_package_id = $1
			  ORDER BY date DESC, id DESC
			  LIMIT $2 OFFSET $3`
	rows, err := s.DB.QueryContext(ctx, query, customerPackageID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var result []*models.Activity
	for rows.Next() {
		var item models.Activity
		if err := rows.Scan(&item.ID, &item.CustomerPackageID, &item.EmployeeID,
			&item.Description, &item.Hours, &item.Date, &item.Status); err != nil {
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

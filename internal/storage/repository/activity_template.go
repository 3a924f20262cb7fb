package repository

import (
	"context"
	"fmt"

	"github.com/mkravelev/maas-platform/internal/models"
)

// CreateTemplate вставляет новый шаблон работы и возвращает его ID.
func (s *Storage) CreateTemplate(ctx context.Context, tpl models.ActivityTemplate) (int64, error) {
	const op = "repository.CreateTemplate"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO activity_templates (name, description, category, estimated_hours,
			      selling_price, cost_price, is_active)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING id`
	var newID int64
	err := s.DB.QueryRowContext(ctx, query,
		tpl.Name, tpl.Description, tpl.Category, tpl.EstimatedHours,
		tpl.SellingPrice, tpl.CostPrice, tpl.IsActive).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ReadTemplate возвращает шаблон работы по его ID.
func (s *Storage) ReadTemplate(ctx context.Context, id int64) (*models.ActivityTemplate, error) {
	const op = "repository.ReadTemplate"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, description, category, estimated_hours, selling_price, cost_price, is_active
			  FROM activity_templates WHERE id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)

	var result models.ActivityTemplate
	if err := row.Scan(&result.ID, &result.Name, &result.Description, &result.Category,
		&result.EstimatedHours, &result.SellingPrice, &result.CostPrice, &result.IsActive); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// ListTemplates возвращает список шаблонов с пагинацией.
func (s *Storage) ListTemplates(ctx context.Context, limit, offset int) ([]*models.ActivityTemplate, error) {
	const op = "repository.ListTemplates"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, description, category, estimated_hours, selling_price, cost_price, is_active
			  FROM activity_templates
			  ORDER BY id
			  LIMIT $1 OFFSET $2`
	rows, err := s.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var result []*models.ActivityTemplate
	for rows.Next() {
		var item models.ActivityTemplate
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.Category,
			&item.EstimatedHours, &item.SellingPrice, &item.CostPrice, &item.IsActive); err != nil {
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

// ListAllTemplates возвращает все шаблоны без пагинации.
// Используется для построения каталога при расчёте состава пакета.
func (s *Storage) ListAllTemplates(ctx context.Context) ([]*models.ActivityTemplate, error) {
	const op = "repository.ListAllTemplates"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, description, category, estimated_hours, selling_price, cost_price, is_active
			  FROM activity_templates
			  ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var result []*models.ActivityTemplate
	for rows.Next() {
		var item models.ActivityTemplate
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.Category,
			&item.EstimatedHours, &item.SellingPrice, &item.CostPrice, &item.IsActive); err != nil {
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

// UpdateTemplate обновляет шаблон по ID и возвращает число изменённых строк.
func (s *Storage) UpdateTemplate(ctx context.Context, tpl models.ActivityTemplate, id int64) (int, error) {
	const op = "repository.UpdateTemplate"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE activity_templates
			  SET name = $1, description = $2, category = $3, estimated_hours = $4,
			      selling_price = $5, cost_price = $6, is_active = $7
			  WHERE id = $8`
	result, err := s.DB.ExecContext(ctx, query,
		tpl.Name, tpl.Description, tpl.Category, tpl.EstimatedHours,
		tpl.SellingPrice, tpl.CostPrice, tpl.IsActive, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// RemoveTemplate удаляет шаблон по ID и возвращает число удалённых строк.
// Удаление шаблона, на который ссылаются составы пакетов, блокируется
// ограничением внешнего ключа.
func (s *Storage) RemoveTemplate(ctx context.Context, id int64) (int, error) {
	const op = "repository.RemoveTemplate"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM activity_templates WHERE id = $1`
	result, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

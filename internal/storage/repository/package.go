package repository

import (
	"context"
	"fmt"

	"github.com/mkravelev/maas-platform/internal/models"
)

// CreatePackage вставляет пакет вместе с его составом в одной транзакции
// и возвращает ID пакета. Позиции с нулевым количеством не сохраняются.
func (s *Storage) CreatePackage(ctx context.Context, pkg models.Package, activities []models.PackageActivity) (int64, error) {
	const op = "repository.CreatePackage"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `INSERT INTO packages (name, description, max_hours, price, is_active)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`
	var newID int64
	err = tx.QueryRowContext(ctx, query,
		pkg.Name, pkg.Description, pkg.MaxHours, pkg.Price, pkg.IsActive).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	for _, pa := range activities {
		if pa.Quantity == 0 {
			continue
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO package_activities (package_id, activity_template_id, quantity, is_included)
			 VALUES ($1, $2, $3, $4)`,
			newID, pa.ActivityTemplateID, pa.Quantity, pa.IsIncluded)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", op, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ReadPackage возвращает пакет по его ID.
func (s *Storage) ReadPackage(ctx context.Context, id int64) (*models.Package, error) {
	const op = "repository.ReadPackage"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, description, max_hours, price, is_active
			  FROM packages WHERE id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)

	var result models.Package
	if err := row.Scan(&result.ID, &result.Name, &result.Description,
		&result.MaxHours, &result.Price, &result.IsActive); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// ListPackages возвращает список пакетов с пагинацией.
func (s *Storage) ListPackages(ctx context.Context, limit, offset int) ([]*models.Package, error) {
	const op = "repository.ListPackages"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, description, max_hours, price, is_active
			  FROM packages
			  ORDER BY id
			  LIMIT $1 OFFSET $2`
	rows, err := s.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var result []*models.Package
	for rows.Next() {
		var item models.Package
		if err := rows.Scan(&item.ID, &item.Name, &item.Description,
			&item.MaxHours, &item.Price, &item.IsActive); err != nil {
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

// UpdatePackage обновляет атрибуты пакета и, если передан состав,
// заменяет его целиком. Возвращает число изменённых строк пакета.
func (s *Storage) UpdatePackage(ctx context.Context, pkg models.Package, activities []models.PackageActivity, id int64) (int, error) {
	const op = "repository.UpdatePackage"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `UPDATE packages
			  SET name = $1, description = $2, max_hours = $3, price = $4, is_active = $5
			  WHERE id = $6`
	result, err := tx.ExecContext(ctx, query,
		pkg.Name, pkg.Description, pkg.MaxHours, pkg.Price, pkg.IsActive, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if activities != nil {
		if _, err = tx.ExecContext(ctx,
			`DELETE FROM package_activities WHERE package_id = $1`, id); err != nil {
			return 0, fmt.Errorf("%s: %w", op, err)
		}
		for _, pa := range activities {
			if pa.Quantity == 0 {
				continue
			}
			_, err = tx.ExecContext(ctx,
				`INSERT INTO package_activities (package_id, activity_template_id, quantity, is_included)
				 VALUES ($1, $2, $3, $4)`,
				id, pa.ActivityTemplateID, pa.Quantity, pa.IsIncluded)
			if err != nil {
				return 0, fmt.Errorf("%s: %w", op, err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// RemovePackage удаляет пакет вместе с составом (каскадом) и возвращает
// число удалённых строк.
func (s *Storage) RemovePackage(ctx context.Context, id int64) (int, error) {
	const op = "repository.RemovePackage"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM packages WHERE id = $1`
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

// ListPackageActivityRows возвращает состав пакета со строками,
// уже дополненными данными шаблона, для расчёта загрузки.
func (s *Storage) ListPackageActivityRows(ctx context.Context, packageID int64) ([]models.PackageActivityRow, error) {
	const op = "repository.ListPackageActivityRows"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT pa.activity_template_id, t.name, t.estimated_hours, pa.quantity, pa.is_included
			  FROM package_activities pa
			  JOIN activity_templates t ON t.id = pa.activity_template_id
			  WHERE pa.package_id = $1
			  ORDER BY pa.id`
	rows, err := s.DB.QueryContext(ctx, query, packageID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var result []models.PackageActivityRow
	for rows.Next() {
		var item models.PackageActivityRow
		if err := rows.Scan(&item.ActivityTemplateID, &item.TemplateName,
			&item.EstimatedHours, &item.Quantity, &item.IsIncluded); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, item)
	}
	err = rows.Close()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mkravelev/maas-platform/internal/models"
)

// ErrDuplicateAssignment возвращается при попытке подключить клиенту пакет,
// который у него уже активен.
var ErrDuplicateAssignment = errors.New("customer already has an active assignment of this package")

// CreateCustomer вставляет нового клиента и возвращает его ID.
func (s *Storage) CreateCustomer(ctx context.Context, customer models.Customer) (int64, error) {
	const op = "repository.CreateCustomer"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO customers (uid, company_name, contact_name, email, status)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`
	var newID int64
	err := s.DB.QueryRowContext(ctx, query,
		customer.UID, customer.CompanyName, customer.ContactName,
		customer.Email, customer.Status).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ReadCustomer возвращает клиента по его ID.
func (s *Storage) ReadCustomer(ctx context.Context, id int64) (*models.Customer, error) {
	const op = "repository.ReadCustomer"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, uid, company_name, contact_name, email, status, created_at
			  FROM customers WHERE id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)

	var result models.Customer
	if err := row.Scan(&result.ID, &result.UID, &result.CompanyName,
		&result.ContactName, &result.Email, &result.Status, &result.CreatedAt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// ListCustomers возвращает список клиентов с пагинацией.
func (s *Storage) ListCustomers(ctx context.Context, limit, offset int) ([]*models.Customer, error) {
	const op = "repository.ListCustomers"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, uid, company_name, contact_name, email, status, created_at
			  FROM customers
			  ORDER BY id
			  LIMIT $1 OFFSET $2`
	rows, err := s.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var result []*models.Customer
	for rows.Next() {
		var item models.Customer
		if err := rows.Scan(&item.ID, &item.UID, &item.CompanyName,
			&item.ContactName, &item.Email, &item.Status, &item.CreatedAt); err != nil {
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

// AssignPackage подключает пакет клиенту. Если у клиента уже есть активное
// подключение этого пакета, возвращает ErrDuplicateAssignment.
func (s *Storage) AssignPackage(ctx context.Context, customerID, packageID int64, startDate time.Time) (int64, error) {
	const op = "repository.AssignPackage"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var exists bool
	err := s.DB.QueryRowContext(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM customer_packages
			WHERE customer_id = $1 AND package_id = $2 AND status = 'ACTIVE'
		)`, customerID, packageID).Scan(&exists)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if exists {
		return 0, fmt.Errorf("%s: %w", op, ErrDuplicateAssignment)
	}

	query := `INSERT INTO customer_packages (customer_id, package_id, status, start_date)
			  VALUES ($1, $2, 'ACTIVE', $3)
			  RETURNING id`
	var newID int64
	if err := s.DB.QueryRowContext(ctx, query, customerID, packageID, startDate).Scan(&newID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// UpdateCustomerPackageStatus переводит подключение пакета в новый статус
// и возвращает число изменённых строк. При переходе в CANCELLED
// проставляется дата окончания.
func (s *Storage) UpdateCustomerPackageStatus(ctx context.Context, id int64, status string) (int, error) {
	const op = "repository.UpdateCustomerPackageStatus"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE customer_packages
			  SET status = $1,
			      end_date = CASE WHEN $1 = 'CANCELLED' THEN NOW() ELSE end_date END
			  WHERE id = $2`
	result, err := s.DB.ExecContext(ctx, query, status, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// ListCustomerFigures возвращает исходные показатели всех клиентов для
// анализа рентабельности: договорные часы и выручку по активным пакетам
// плюс сумму часов завершённых работ.
func (s *Storage) ListCustomerFigures(ctx context.Context) ([]models.CustomerFigures, error) {
	const op = "repository.ListCustomerFigures"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT c.id, c.company_name,
			         COALESCE(SUM(p.max_hours), 0) AS current_hours,
			         COALESCE(SUM(p.price), 0) AS current_revenue,
			         COALESCE((
			             SELECT SUM(a.hours)
			             FROM activities a
			             JOIN customer_packages cp2 ON cp2.id = a.customer_package_id
			             WHERE cp2.customer_id = c.id AND a.status = 'COMPLETED'
			         ), 0) AS real_hours
			  FROM customers c
			  LEFT JOIN customer_packages cp ON cp.customer_id = c.id AND cp.status = 'ACTIVE'
			  LEFT JOIN packages p ON p.id = cp.package_id
			  GROUP BY c.id, c.company_name
			  ORDER BY c.id`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var result []models.CustomerFigures
	for rows.Next() {
		var item models.CustomerFigures
		if err := rows.Scan(&item.CustomerID, &item.CompanyName,
			&item.CurrentHours, &item.CurrentRevenue, &item.RealHours); err != nil {
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

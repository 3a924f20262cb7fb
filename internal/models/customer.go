package models

import "time"

// Статусы подключения пакета клиенту.
const (
	CustomerPackageActive    = "ACTIVE"
	CustomerPackageSuspended = "SUSPENDED"
	CustomerPackageCancelled = "CANCELLED"
)

// Customer представляет собой клиента агентства.
type Customer struct {
	ID          int64     // Идентификатор клиента
	UID         string    // Внешний UUID клиента
	CompanyName string    // Название компании
	ContactName string    // Контактное лицо
	Email       string    // Контактный e-mail
	Status      string    // Статус клиента (active/archived)
	CreatedAt   time.Time // Дата создания записи
}

// CustomerPackage — подключение пакета клиенту. На пару (клиент, пакет)
// допускается не более одной записи со статусом ACTIVE.
type CustomerPackage struct {
	ID         int64      // Идентификатор подключения
	CustomerID int64      // Идентификатор клиента
	PackageID  int64      // Идентификатор пакета
	Status     string     // ACTIVE / SUSPENDED / CANCELLED
	StartDate  time.Time  // Дата начала действия
	EndDate    *time.Time // Дата окончания (nil — бессрочно)
}

// CustomerFigures — исходные показатели клиента для анализа рентабельности:
// договорные часы и выручка по активным пакетам плюс фактически
// отработанные часы за период.
type CustomerFigures struct {
	CustomerID     int64   // Идентификатор клиента
	CompanyName    string  // Название компании
	CurrentHours   float64 // Договорные часы в месяц
	CurrentRevenue float64 // Договорная выручка
	RealHours      float64 // Фактически отработанные часы
}

// DummyCustomer используется для приёма данных клиента из JSON-запроса.
type DummyCustomer struct {
	CompanyName string `json:"company_name" validate:"required"` // Название компании
	ContactName string `json:"contact_name,omitempty"`           // Контактное лицо
	Email       string `json:"email" validate:"required,email"`  // Контактный e-mail
}

// DummyAssignPackage — запрос на подключение пакета клиенту.
// Дата приходит строкой в формате 02-01-2006.
type DummyAssignPackage struct {
	PackageID int64  `json:"package_id" validate:"required,gt=0"` // Идентификатор пакета
	StartDate string `json:"start_date" validate:"required"`      // Дата начала в формате 02-01-2006
}

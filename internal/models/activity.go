package models

import "time"

// Статусы записи фактической работы.
const (
	ActivityPending   = "PENDING"
	ActivityCompleted = "COMPLETED"
)

// Activity — запись о фактически выполненной работе по подключённому пакету.
// Не путать с ActivityTemplate: шаблон описывает норматив, Activity — факт.
type Activity struct {
	ID                int64     // Идентификатор записи
	CustomerPackageID int64     // Подключение пакета, по которому велась работа
	EmployeeID        int64     // Исполнитель
	Description       string    // Описание выполненной работы
	Hours             float64   // Фактически затраченные часы
	Date              time.Time // Дата выполнения
	Status            string    // PENDING / COMPLETED
}

// DummyActivity используется для приёма записи о работе из JSON-запроса.
type DummyActivity struct {
	CustomerPackageID int64   `json:"customer_package_id" validate:"required,gt=0"`      // Подключение пакета
	EmployeeID        int64   `json:"employee_id" validate:"required,gt=0"`              // Исполнитель
	Description       string  `json:"description" validate:"required"`                   // Описание работы
	Hours             float64 `json:"hours" validate:"required,gt=0"`                    // Затраченные часы
	Date              string  `json:"date" validate:"required"`                          // Дата в формате 02-01-2006
	Status            string  `json:"status,omitempty" validate:"omitempty,oneof=PENDING COMPLETED"` // Статус
}

package models

// Employee представляет собой сотрудника агентства.
// CostRate — индивидуальная почасовая себестоимость; nil означает,
// что при расчётах используется ставка из конфигурации.
type Employee struct {
	ID       int64    // Идентификатор сотрудника
	UID      string   // Внешний UUID сотрудника
	Name     string   // Имя
	Email    string   // Рабочий e-mail
	Role     string   // Роль (manager, specialist, admin)
	CostRate *float64 // Почасовая себестоимость (опционально)
}

// DummyEmployee используется для приёма данных сотрудника из JSON-запроса.
type DummyEmployee struct {
	Name     string   `json:"name" validate:"required"`                       // Имя
	Email    string   `json:"email" validate:"required,email"`                // Рабочий e-mail
	Role     string   `json:"role" validate:"required,oneof=manager specialist admin"` // Роль
	CostRate *float64 `json:"cost_rate,omitempty" validate:"omitempty,gte=0"` // Себестоимость часа
}

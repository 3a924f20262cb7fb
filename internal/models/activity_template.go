// Package models содержит доменные структуры платформы: шаблоны работ,
// пакеты услуг, клиентов, сотрудников и записи фактических работ,
// а также вспомогательные типы для приёма данных из JSON-запросов.
package models

// ActivityTemplate представляет собой элемент каталога — типовой вид
// оплачиваемой работы с нормативной длительностью одной единицы.
// SellingPrice и CostPrice — почасовые ставки; CostPrice может быть nil,
// если внутренняя себестоимость не задана.
type ActivityTemplate struct {
	ID             int64    // Идентификатор шаблона
	Name           string   // Название вида работы
	Description    string   // Свободное описание
	Category       string   // Категория (SEO, DESIGN, CONTENT...)
	EstimatedHours float64  // Нормативная длительность одной единицы, часов (> 0)
	SellingPrice   float64  // Почасовая ставка для клиента (>= 0)
	CostPrice      *float64 // Внутренняя почасовая себестоимость (опционально)
	IsActive       bool     // Доступен ли шаблон для включения в пакеты
}

// DummyActivityTemplate используется для приёма данных шаблона из JSON-запроса
// до валидации и преобразования в ActivityTemplate.
type DummyActivityTemplate struct {
	Name           string   `json:"name" validate:"required"`                                                            // Название вида работы
	Description    string   `json:"description,omitempty"`                                                               // Описание (опционально)
	Category       string   `json:"category" validate:"required,oneof=SEO DESIGN CONTENT ADS SOCIAL EMAIL WEB ANALYTICS"` // Категория
	EstimatedHours float64  `json:"estimated_hours" validate:"required,gt=0"`                                            // Длительность единицы (> 0)
	SellingPrice   float64  `json:"selling_price" validate:"gte=0"`                                                      // Почасовая ставка клиента
	CostPrice      *float64 `json:"cost_price,omitempty" validate:"omitempty,gte=0"`                                     // Себестоимость (опционально)
	IsActive       *bool    `json:"is_active,omitempty"`                                                                 // Активность (по умолчанию true)
}

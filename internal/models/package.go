package models

// Package представляет собой продаваемый пакет услуг: лимит часов
// на расчётный период и договорная цена. Производные показатели
// (суммарные часы и стоимость состава) не хранятся и считаются по запросу.
type Package struct {
	ID          int64   // Идентификатор пакета
	Name        string  // Название пакета
	Description string  // Описание
	MaxHours    float64 // Лимит часов на период (>= 0)
	Price       float64 // Договорная цена за период
	IsActive    bool    // Доступен ли пакет для подключения
}

// PackageActivity — связующая запись: сколько единиц шаблона входит в пакет.
// Записи с нулевым количеством не хранятся, а удаляются при сохранении.
type PackageActivity struct {
	ID                 int64 // Идентификатор записи
	PackageID          int64 // Идентификатор пакета
	ActivityTemplateID int64 // Идентификатор шаблона работы
	Quantity           int   // Количество единиц (>= 0)
	IsIncluded         bool  // Учитывается ли запись в итогах пакета
}

// PackageActivityRow — строка состава пакета с уже разрешённым шаблоном,
// в том виде, в котором её отдаёт хранилище для расчёта загрузки.
type PackageActivityRow struct {
	ActivityTemplateID int64   // Идентификатор шаблона
	TemplateName       string  // Название шаблона
	EstimatedHours     float64 // Нормативная длительность единицы
	Quantity           int     // Количество единиц в пакете
	IsIncluded         bool    // Учитывается ли строка в итогах
}

// DummySelection — одна позиция состава пакета из JSON-запроса.
type DummySelection struct {
	ActivityTemplateID int64 `json:"activity_template_id" validate:"required,gt=0"` // Идентификатор шаблона
	Quantity           int   `json:"quantity" validate:"gte=0"`                     // Количество единиц
}

// DummyPackage используется для приёма данных пакета из JSON-запроса.
type DummyPackage struct {
	Name        string           `json:"name" validate:"required"`           // Название пакета
	Description string           `json:"description,omitempty"`              // Описание
	MaxHours    float64          `json:"max_hours" validate:"gte=0"`         // Лимит часов на период
	Price       float64          `json:"price" validate:"gte=0"`             // Цена за период
	IsActive    *bool            `json:"is_active,omitempty"`                // Активность (по умолчанию true)
	Selections  []DummySelection `json:"selections,omitempty" validate:"omitempty,dive"` // Состав пакета
}

// DummyComposeRequest — запрос на предварительный расчёт состава пакета
// без сохранения.
type DummyComposeRequest struct {
	Selections []DummySelection `json:"selections" validate:"required,min=1,dive"` // Позиции состава
}

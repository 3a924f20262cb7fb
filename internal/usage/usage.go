// Package usage реализует расчёт загрузки пакета: сколько часов состава
// израсходовано относительно лимита и в каком из трёх состояний пакет
// находится. Статус считается по несрезанному проценту, в ответе процент
// срезается до 100 для отображения.
package usage

import (
	"github.com/mkravelev/maas-platform/internal/lib/money"
	"github.com/mkravelev/maas-platform/internal/models"
)

// Статусы загрузки пакета. Верхняя граница attention — ровно 100%:
// представления в старом интерфейсе расходились (95 и 100), здесь
// зафиксирована граница из управления пакетами.
const (
	StatusOptimal    = "optimal"
	StatusAttention  = "attention"
	StatusOverloaded = "overloaded"
)

// Report — результат расчёта загрузки пакета.
// Percentage срезан до 100, TotalHours — лимит часов пакета.
type Report struct {
	UsedHours  float64 `json:"used_hours"`
	TotalHours float64 `json:"total_hours"`
	Percentage float64 `json:"percentage"`
	FreeHours  float64 `json:"free_hours"`
	Status     string  `json:"status"`
}

// Compute считает загрузку пакета по строкам его состава.
// Строки с IsIncluded == false не учитываются. При нулевом лимите процент
// равен нулю (никаких NaN/Inf), но любой расход при нулевом лимите — это
// сразу overloaded.
func Compute(maxHours float64, rows []models.PackageActivityRow) Report {
	maxHours = money.Sanitize(maxHours)

	var used float64
	for _, row := range rows {
		if !row.IsIncluded {
			continue
		}
		qty := row.Quantity
		if qty < 0 {
			qty = 0
		}
		used += money.Sanitize(row.EstimatedHours) * float64(qty)
	}

	var raw float64 // несрезанный процент, по нему считается статус
	if maxHours > 0 {
		raw = used / maxHours * 100
	}

	status := StatusOptimal
	switch {
	case maxHours == 0 && used > 0:
		status = StatusOverloaded
	case raw > 100:
		status = StatusOverloaded
	case raw > 80:
		status = StatusAttention
	}

	display := raw
	if display > 100 {
		display = 100
	}
	free := maxHours - used
	if free < 0 {
		free = 0
	}

	return Report{
		UsedHours:  money.Round2(used),
		TotalHours: money.Round2(maxHours),
		Percentage: money.Round2(display),
		FreeHours:  money.Round2(free),
		Status:     status,
	}
}

// Package pricing реализует расчёт состава пакета: превращает набор
// позиций (шаблон работы, количество) в суммарные часы, цену и
// себестоимость. Ценообразование вынесено в интерфейс Strategy,
// чтобы замена плоской ставки на поштучные ставки шаблонов не требовала
// переписывать расчёт.
package pricing

import (
	"github.com/mkravelev/maas-platform/internal/lib/money"
	"github.com/mkravelev/maas-platform/internal/models"
)

// Selection — одна позиция состава: шаблон и количество единиц.
type Selection struct {
	TemplateID int64
	Quantity   int
}

// Contribution — вклад одной позиции в итоги пакета.
type Contribution struct {
	Hours float64
	Price float64
	Cost  float64
}

// Strategy определяет, как позиция превращается в часы, цену и себестоимость.
type Strategy interface {
	Contribution(tpl models.ActivityTemplate, quantity int) Contribution
}

// FlatRate — плоская эталонная ставка: и цена, и себестоимость позиции
// считаются как часы, умноженные на единую почасовую ставку.
// Поштучные ставки шаблонов при этом не используются.
type FlatRate struct {
	HourlyRate float64
}

// Contribution считает вклад позиции по плоской ставке.
func (f FlatRate) Contribution(tpl models.ActivityTemplate, quantity int) Contribution {
	hours := tpl.EstimatedHours * float64(quantity)
	amount := hours * f.HourlyRate
	return Contribution{Hours: hours, Price: amount, Cost: amount}
}

// TemplateRates — ценообразование по ставкам самого шаблона:
// цена по SellingPrice, себестоимость по CostPrice (ноль, если не задана).
type TemplateRates struct{}

// Contribution считает вклад позиции по ставкам шаблона.
func (TemplateRates) Contribution(tpl models.ActivityTemplate, quantity int) Contribution {
	hours := tpl.EstimatedHours * float64(quantity)
	var cost float64
	if tpl.CostPrice != nil {
		cost = hours * *tpl.CostPrice
	}
	return Contribution{Hours: hours, Price: hours * tpl.SellingPrice, Cost: cost}
}

// Result — итоги расчёта состава. Missing содержит идентификаторы позиций,
// не найденных в каталоге: такие позиции вносят ноль и не считаются ошибкой,
// вызывающая сторона сама решает, предупреждать ли о них.
type Result struct {
	TotalHours float64 `json:"total_hours"`
	TotalPrice float64 `json:"total_price"`
	TotalCost  float64 `json:"total_cost"`
	Missing    []int64 `json:"missing,omitempty"`
}

// Compose считает итоги состава по каталогу шаблонов.
// Позиции с отсутствующим в каталоге шаблоном пропускаются и попадают
// в Missing, отрицательное количество трактуется как ноль.
// Пустой список позиций даёт нулевые итоги. Итоги округлены до двух знаков.
func Compose(selections []Selection, catalog map[int64]models.ActivityTemplate, strategy Strategy) Result {
	var res Result
	for _, sel := range selections {
		tpl, ok := catalog[sel.TemplateID]
		if !ok {
			res.Missing = append(res.Missing, sel.TemplateID)
			continue
		}
		qty := sel.Quantity
		if qty < 0 {
			qty = 0
		}
		c := strategy.Contribution(tpl, qty)
		res.TotalHours += c.Hours
		res.TotalPrice += c.Price
		res.TotalCost += c.Cost
	}
	res.TotalHours = money.Round2(res.TotalHours)
	res.TotalPrice = money.Round2(res.TotalPrice)
	res.TotalCost = money.Round2(res.TotalCost)
	return res
}

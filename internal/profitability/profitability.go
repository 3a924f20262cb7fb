// Package profitability реализует анализ рентабельности клиентов:
// по договорным и фактическим показателям каждого клиента строится
// снимок с прибылью, маржой и классификацией profit/risk/loss,
// а по портфелю — сводка с суммами и средней маржой.
//
// Это презентационная агрегация поверх уже сохранённых чисел: некорректный
// вход (отрицательные часы, NaN) приводится к нулю, ошибки не возвращаются.
package profitability

import (
	"github.com/mkravelev/maas-platform/internal/lib/money"
	"github.com/mkravelev/maas-platform/internal/models"
)

// Статусы рентабельности клиента. Границы: маржа строго больше 20 —
// profit, от 0 до 20 включительно — risk, меньше нуля — loss.
const (
	StatusProfit = "profit"
	StatusRisk   = "risk"
	StatusLoss   = "loss"
)

// Snapshot — снимок рентабельности одного клиента за период.
// Не сохраняется, пересчитывается на каждый запрос.
type Snapshot struct {
	CustomerID        int64   `json:"customer_id"`
	CompanyName       string  `json:"company_name"`
	CurrentHours      float64 `json:"current_hours"`
	CurrentRevenue    float64 `json:"current_revenue"`
	RealHours         float64 `json:"real_hours"`
	RealRevenue       float64 `json:"real_revenue"`
	CurrentProfit     float64 `json:"current_profit"`
	RealProfit        float64 `json:"real_profit"`
	CurrentMargin     float64 `json:"current_margin"`
	RealMargin        float64 `json:"real_margin"`
	HourlyRateCurrent float64 `json:"hourly_rate_current"`
	HourlyRateReal    float64 `json:"hourly_rate_real"`
	Status            string  `json:"status"`
}

// Summary — сводка по портфелю клиентов. Средняя маржа — простое
// арифметическое среднее по клиентам, без взвешивания по выручке.
type Summary struct {
	TotalHours          float64 `json:"total_hours"`
	TotalCurrentRevenue float64 `json:"total_current_revenue"`
	TotalRealRevenue    float64 `json:"total_real_revenue"`
	TotalProfit         float64 `json:"total_profit"`
	AverageMargin       float64 `json:"average_margin"`
	ProfitCount         int     `json:"profit_count"`
	RiskCount           int     `json:"risk_count"`
	LossCount           int     `json:"loss_count"`
}

// Analyze строит снимок рентабельности клиента. Фактическая выручка
// считается как фактические часы по договорной почасовой ставке:
// «сколько бы мы выставили, если бы биллили отработанные часы по той же
// ставке». costRate — эталонная внутренняя себестоимость часа.
func Analyze(fig models.CustomerFigures, costRate float64) Snapshot {
	currentHours := money.Sanitize(fig.CurrentHours)
	currentRevenue := money.Sanitize(fig.CurrentRevenue)
	realHours := money.Sanitize(fig.RealHours)
	costRate = money.Sanitize(costRate)

	var rateCurrent float64
	if currentHours > 0 {
		rateCurrent = currentRevenue / currentHours
	}

	realRevenue := realHours * rateCurrent
	var rateReal float64
	if realHours > 0 {
		rateReal = realRevenue / realHours
	}

	currentProfit := currentRevenue - currentHours*costRate
	realProfit := realRevenue - realHours*costRate

	var currentMargin float64
	if currentRevenue > 0 {
		currentMargin = currentProfit / currentRevenue * 100
	}
	var realMargin float64
	if realRevenue > 0 {
		realMargin = realProfit / realRevenue * 100
	}

	status := StatusRisk
	switch {
	case realMargin > 20:
		status = StatusProfit
	case realMargin < 0:
		status = StatusLoss
	}

	return Snapshot{
		CustomerID:        fig.CustomerID,
		CompanyName:       fig.CompanyName,
		CurrentHours:      money.Round2(currentHours),
		CurrentRevenue:    money.Round2(currentRevenue),
		RealHours:         money.Round2(realHours),
		RealRevenue:       money.Round2(realRevenue),
		CurrentProfit:     money.Round2(currentProfit),
		RealProfit:        money.Round2(realProfit),
		CurrentMargin:     money.Round2(currentMargin),
		RealMargin:        money.Round2(realMargin),
		HourlyRateCurrent: money.Round2(rateCurrent),
		HourlyRateReal:    money.Round2(rateReal),
		Status:            status,
	}
}

// Summarize строит сводку по списку снимков. Пустой портфель даёт
// нулевую сводку без деления на ноль.
func Summarize(snapshots []Snapshot) Summary {
	var sum Summary
	for _, s := range snapshots {
		sum.TotalHours += s.CurrentHours
		sum.TotalCurrentRevenue += s.CurrentRevenue
		sum.TotalRealRevenue += s.RealRevenue
		sum.TotalProfit += s.RealProfit
		sum.AverageMargin += s.RealMargin
		switch s.Status {
		case StatusProfit:
			sum.ProfitCount++
		case StatusLoss:
			sum.LossCount++
		default:
			sum.RiskCount++
		}
	}
	if len(snapshots) > 0 {
		sum.AverageMargin /= float64(len(snapshots))
	}
	sum.TotalHours = money.Round2(sum.TotalHours)
	sum.TotalCurrentRevenue = money.Round2(sum.TotalCurrentRevenue)
	sum.TotalRealRevenue = money.Round2(sum.TotalRealRevenue)
	sum.TotalProfit = money.Round2(sum.TotalProfit)
	sum.AverageMargin = money.Round2(sum.AverageMargin)
	return sum
}

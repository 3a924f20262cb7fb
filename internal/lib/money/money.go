// Package money содержит вспомогательные функции для денежной арифметики.
// Все суммы и часы в ответах API округляются до двух знаков.
package money

import "math"

// Round2 округляет значение до двух знаков после запятой.
// NaN и бесконечности приводятся к нулю, чтобы некорректное значение
// не попало в JSON-ответ.
func Round2(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return math.Round(x*100) / 100
}

// Sanitize приводит значение к безопасному для расчётов виду:
// NaN, бесконечности и отрицательные величины становятся нулём.
// Используется для входных часов и выручки, которые по смыслу
// не могут быть отрицательными.
func Sanitize(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) || x < 0 {
		return 0
	}
	return x
}

package profitability

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkravelev/maas-platform/internal/models"
)

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name     string
		fig      models.CustomerFigures
		costRate float64
		want     Snapshot
	}{
		{
			name: "прибыльный клиент",
			fig: models.CustomerFigures{
				CustomerID:     1,
				CompanyName:    "ООО Ромашка",
				CurrentHours:   10,
				CurrentRevenue: 1000,
				RealHours:      10,
			},
			costRate: 60,
			want: Snapshot{
				CustomerID:        1,
				CompanyName:       "ООО Ромашка",
				CurrentHours:      10,
				CurrentRevenue:    1000,
				RealHours:         10,
				RealRevenue:       1000,
				CurrentProfit:     400,
				RealProfit:        400,
				CurrentMargin:     40,
				RealMargin:        40,
				HourlyRateCurrent: 100,
				HourlyRateReal:    100,
				Status:            StatusProfit,
			},
		},
		{
			name: "переработка съедает маржу до убытка",
			fig: models.CustomerFigures{
				CustomerID:     2,
				CompanyName:    "ИП Иванов",
				CurrentHours:   10,
				CurrentRevenue: 500,
				RealHours:      20,
			},
			costRate: 60,
			want: Snapshot{
				CustomerID:        2,
				CompanyName:       "ИП Иванов",
				CurrentHours:      10,
				CurrentRevenue:    500,
				RealHours:         20,
				RealRevenue:       1000,
				CurrentProfit:     -100,
				RealProfit:        -200,
				CurrentMargin:     -20,
				RealMargin:        -20,
				HourlyRateCurrent: 50,
				HourlyRateReal:    50,
				Status:            StatusLoss,
			},
		},
		{
			name: "нулевые часы не дают деления на ноль",
			fig: models.CustomerFigures{
				CustomerID:  3,
				CompanyName: "Новый клиент",
			},
			costRate: 60,
			want: Snapshot{
				CustomerID:  3,
				CompanyName: "Новый клиент",
				Status:      StatusRisk,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Analyze(tt.fig, tt.costRate)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAnalyzeStatusBoundaries(t *testing.T) {
	// realMargin = (revenue - hours*costRate) / revenue * 100
	tests := []struct {
		name     string
		revenue  float64
		costRate float64
		want     string
	}{
		{"ровно 20 процентов — еще риск", 1000, 80, StatusRisk},
		{"чуть выше 20 процентов — прибыль", 1000, 79, StatusProfit},
		{"ровно ноль — риск", 1000, 100, StatusRisk},
		{"ниже нуля — убыток", 1000, 101, StatusLoss},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fig := models.CustomerFigures{
				CurrentHours:   10,
				CurrentRevenue: tt.revenue,
				RealHours:      10,
			}
			got := Analyze(fig, tt.costRate)
			assert.Equal(t, tt.want, got.Status)
		})
	}
}

func TestAnalyzeSanitizesBrokenInput(t *testing.T) {
	fig := models.CustomerFigures{
		CustomerID:     4,
		CurrentHours:   math.NaN(),
		CurrentRevenue: math.Inf(1),
		RealHours:      -5,
	}
	got := Analyze(fig, 60)
	assert.Equal(t, 0.0, got.CurrentHours)
	assert.Equal(t, 0.0, got.CurrentRevenue)
	assert.Equal(t, 0.0, got.RealHours)
	assert.Equal(t, StatusRisk, got.Status)
}

func TestSummarize(t *testing.T) {
	snapshots := []Snapshot{
		{CurrentHours: 10, CurrentRevenue: 1000, RealRevenue: 1000, RealProfit: 400, RealMargin: 40, Status: StatusProfit},
		{CurrentHours: 20, CurrentRevenue: 1500, RealRevenue: 1200, RealProfit: 100, RealMargin: 10, Status: StatusRisk},
		{CurrentHours: 5, CurrentRevenue: 300, RealRevenue: 500, RealProfit: -100, RealMargin: -20, Status: StatusLoss},
	}

	got := Summarize(snapshots)

	assert.Equal(t, 35.0, got.TotalHours)
	assert.Equal(t, 2800.0, got.TotalCurrentRevenue)
	assert.Equal(t, 2700.0, got.TotalRealRevenue)
	assert.Equal(t, 400.0, got.TotalProfit)
	assert.Equal(t, 10.0, got.AverageMargin)
	assert.Equal(t, 1, got.ProfitCount)
	assert.Equal(t, 1, got.RiskCount)
	assert.Equal(t, 1, got.LossCount)
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))
}

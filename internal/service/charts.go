package service

import "heart-risk/internal/domain"

const (
	GaugeColorHigh   = "crimson"
	GaugeColorMedium = "orange"
	GaugeColorLow    = "green"
)

var gaugeSteps = []domain.GaugeStep{
	{From: 0, To: 30, Color: "lightgreen"},
	{From: 30, To: 60, Color: "yellow"},
	{From: 60, To: 100, Color: "lightcoral"},
}

// Valores de referencia del grafico de barras.
var comparisonNormals = []struct {
	metric string
	normal float64
	value  func(p domain.HealthProfile) float64
}{
	{"RestingBP", 120, func(p domain.HealthProfile) float64 { return float64(p.RestingBP) }},
	{"Cholesterol", 200, func(p domain.HealthProfile) float64 { return float64(p.Cholesterol) }},
	{"MaxHR", 170, func(p domain.HealthProfile) float64 { return float64(p.MaxHR) }},
	{"Oldpeak", 1.0, func(p domain.HealthProfile) float64 { return p.Oldpeak }},
}

var radarAxes = []string{"Age", "RestingBP", "Cholesterol", "MaxHR", "Oldpeak"}

var radarNormals = []float64{50, 120, 200, 170, 1.0}

// GaugeBarColor: crimson sobre 0.6, orange sobre 0.3, green en el resto.
func GaugeBarColor(probability float64) string {
	switch {
	case probability > 0.6:
		return GaugeColorHigh
	case probability > 0.3:
		return GaugeColorMedium
	default:
		return GaugeColorLow
	}
}

func buildGauge(probability float64) domain.Gauge {
	steps := make([]domain.GaugeStep, len(gaugeSteps))
	copy(steps, gaugeSteps)
	return domain.Gauge{
		Title:    "Heart Disease Risk %",
		Value:    probability * 100,
		AxisMin:  0,
		AxisMax:  100,
		BarColor: GaugeBarColor(probability),
		Steps:    steps,
	}
}

func buildComparison(p domain.HealthProfile) []domain.MetricRow {
	rows := make([]domain.MetricRow, 0, len(comparisonNormals))
	for _, n := range comparisonNormals {
		rows = append(rows, domain.MetricRow{
			Metric: n.metric,
			User:   n.value(p),
			Normal: n.normal,
		})
	}
	return rows
}

func buildRadar(p domain.HealthProfile) domain.Radar {
	axes := make([]string, len(radarAxes))
	copy(axes, radarAxes)
	normals := make([]float64, len(radarNormals))
	copy(normals, radarNormals)
	return domain.Radar{
		Axes: axes,
		User: []float64{
			float64(p.Age),
			float64(p.RestingBP),
			float64(p.Cholesterol),
			float64(p.MaxHR),
			p.Oldpeak,
		},
		Normal: normals,
	}
}

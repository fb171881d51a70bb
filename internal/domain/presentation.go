package domain

// PresentationBundle agrupa todo lo que necesita el dashboard tras un "Analyze".
// Se construye una vez por analisis y no se modifica.
type PresentationBundle struct {
	Prediction     Prediction     `json:"prediction"`
	RiskPercentage float64        `json:"risk_percentage"`
	Interpretation Interpretation `json:"interpretation"`
	RiskLevel      RiskLevelNote  `json:"risk_level"`
	Concerns       Concerns       `json:"concerns"`
	Gauge          Gauge          `json:"gauge"`
	Comparison     []MetricRow    `json:"comparison"`
	Radar          Radar          `json:"radar"`
	Advisories     []Advisory     `json:"advisories"`
	ClosingNote    string         `json:"closing_note"`
	Persisted      bool           `json:"persisted"`
	PersistWarning string         `json:"persist_warning,omitempty"`
}

type Interpretation struct {
	HighRisk bool   `json:"high_risk"`
	Message  string `json:"message"`
}

type RiskLevelNote struct {
	Level       string `json:"level"`
	Explanation string `json:"explanation"`
}

// Concerns son las alertas que devuelve el propio predictor.
type Concerns struct {
	Items   []string `json:"items"`
	Message string   `json:"message"`
}

type GaugeStep struct {
	From  float64 `json:"from"`
	To    float64 `json:"to"`
	Color string  `json:"color"`
}

type Gauge struct {
	Title    string      `json:"title"`
	Value    float64     `json:"value"`
	AxisMin  float64     `json:"axis_min"`
	AxisMax  float64     `json:"axis_max"`
	BarColor string      `json:"bar_color"`
	Steps    []GaugeStep `json:"steps"`
}

// MetricRow compara un valor del usuario con su referencia.
type MetricRow struct {
	Metric string  `json:"metric"`
	User   float64 `json:"user"`
	Normal float64 `json:"normal"`
}

type Radar struct {
	Axes   []string  `json:"axes"`
	User   []float64 `json:"user"`
	Normal []float64 `json:"normal"`
}

// Advisory es un consejo disparado por umbral, independiente del predictor.
type Advisory struct {
	Key  string `json:"key"`
	Text string `json:"text"`
}

package domain

// Prediction es la salida del modelo externo. No se valida localmente.
type Prediction struct {
	Actual      *int     `json:"actual,omitempty"`
	Predicted   int      `json:"predicted"`
	Probability float64  `json:"probability"`
	RiskLevel   string   `json:"risk_level"`
	Flagged     []string `json:"flagged"`
}

// Percentage escala la probabilidad a 0-100.
func (p Prediction) Percentage() float64 {
	return p.Probability * 100
}

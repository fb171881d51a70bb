package predictor

import (
	"context"

	"heart-risk/internal/domain"
)

// MockPredictor permite tests sin llamar al modelo real.
type MockPredictor struct {
	Result       domain.Prediction
	Err          error
	Calls        int
	LastFeatures map[string]any
}

func (m *MockPredictor) Predict(ctx context.Context, features map[string]any) (domain.Prediction, error) {
	m.Calls++
	m.LastFeatures = features
	return m.Result, m.Err
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"heart-risk/internal/domain"
	"heart-risk/internal/metrics"
	"heart-risk/internal/predictor"
	"heart-risk/internal/repository"
)

var ErrPredictionFailed = errors.New("prediction failed")

const (
	riskLevelExplanation = "This level is determined based on a combination of vitals and lifestyle indicators."
	allClearMessage      = "All your vital signs appear to be within healthy ranges."
	concernsMessage      = "Areas of Concern Detected:"
	closingNote          = "Regular checkups, lifestyle changes, and early detection can greatly reduce your risk."
)

// RiskPresenter llama al predictor, guarda el porcentaje y arma el bundle del dashboard.
type RiskPresenter struct {
	predictor predictor.Predictor
	records   repository.HealthRepository
	logger    *zap.Logger
	metrics   *metrics.Recorder
}

func NewRiskPresenter(
	p predictor.Predictor,
	records repository.HealthRepository,
	logger *zap.Logger,
	rec *metrics.Recorder,
) *RiskPresenter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RiskPresenter{
		predictor: p,
		records:   records,
		logger:    logger,
		metrics:   rec,
	}
}

// Assess ejecuta un analisis completo para un perfil ya cargado.
// Solo falla si falla el predictor; un error al guardar el riesgo queda en PersistWarning.
func (s *RiskPresenter) Assess(ctx context.Context, userID string, profile domain.HealthProfile) (domain.PresentationBundle, error) {
	start := time.Now()
	pred, err := s.predictor.Predict(ctx, profile.Features())
	s.metrics.PredictorCall(time.Since(start), err)
	if err != nil {
		s.logger.Error("predict failed", zap.Error(err), zap.String("user_id", userID))
		return domain.PresentationBundle{}, fmt.Errorf("%w: %v", ErrPredictionFailed, err)
	}

	pct := pred.Percentage()
	bundle := domain.PresentationBundle{
		Prediction:     pred,
		RiskPercentage: pct,
		Interpretation: interpret(pred),
		RiskLevel: domain.RiskLevelNote{
			Level:       pred.RiskLevel,
			Explanation: riskLevelExplanation,
		},
		Concerns:    concerns(pred.Flagged),
		Gauge:       buildGauge(pred.Probability),
		Comparison:  buildComparison(profile),
		Radar:       buildRadar(profile),
		Advisories:  DeriveAdvisories(profile),
		ClosingNote: closingNote,
	}

	if err := s.records.UpdateLatestRiskPercentage(ctx, userID, pct); err != nil {
		s.logger.Warn("save risk percentage failed", zap.Error(err), zap.String("user_id", userID))
		s.metrics.RiskPersistFailure()
		bundle.PersistWarning = fmt.Sprintf("Could not save risk percentage: %v", err)
	} else {
		bundle.Persisted = true
	}

	s.metrics.Analysis(bundle.Gauge.BarColor)
	for _, a := range bundle.Advisories {
		s.metrics.Advisory(a.Key)
	}
	return bundle, nil
}

func interpret(pred domain.Prediction) domain.Interpretation {
	pct := int(pred.Probability * 100)
	if pred.Predicted == 1 {
		return domain.Interpretation{
			HighRisk: true,
			Message:  fmt.Sprintf("High Risk Detected: You have a %d%% chance of heart disease.", pct),
		}
	}
	return domain.Interpretation{
		Message: fmt.Sprintf("Low Risk: Based on your data, the model predicts a low likelihood of heart disease (%d%%).", pct),
	}
}

func concerns(flagged []string) domain.Concerns {
	if len(flagged) == 0 {
		return domain.Concerns{Items: []string{}, Message: allClearMessage}
	}
	items := make([]string, len(flagged))
	copy(items, flagged)
	return domain.Concerns{Items: items, Message: concernsMessage}
}

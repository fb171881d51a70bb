package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"heart-risk/internal/domain"
	"heart-risk/internal/metrics"
	"heart-risk/internal/repository"
)

var (
	ErrProfileNotFound = errors.New("health profile not found")
	ErrStorageFailure  = errors.New("health storage failure")
)

// ProfileLoader lee el registro mas reciente del usuario y lo normaliza.
type ProfileLoader struct {
	records repository.HealthRepository
	logger  *zap.Logger
	metrics *metrics.Recorder
}

func NewProfileLoader(records repository.HealthRepository, logger *zap.Logger, rec *metrics.Recorder) *ProfileLoader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProfileLoader{
		records: records,
		logger:  logger,
		metrics: rec,
	}
}

// Load devuelve el perfil normalizado de userID.
// Sin fila devuelve ErrProfileNotFound. Un fallo de almacenamiento devuelve un error que
// cumple errors.Is tanto con ErrProfileNotFound como con ErrStorageFailure.
func (l *ProfileLoader) Load(ctx context.Context, userID string) (domain.HealthProfile, error) {
	rec, err := l.records.GetLatestByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			l.metrics.ProfileLoad(metrics.LoadNotFound)
			return domain.HealthProfile{}, ErrProfileNotFound
		}
		l.logger.Error("load health profile failed", zap.Error(err), zap.String("user_id", userID))
		l.metrics.ProfileLoad(metrics.LoadStorageFailure)
		return domain.HealthProfile{}, fmt.Errorf("%w: %w: %v", ErrProfileNotFound, ErrStorageFailure, err)
	}

	l.metrics.ProfileLoad(metrics.LoadOK)
	return domain.NewHealthProfile(rec), nil
}

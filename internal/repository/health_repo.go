package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"heart-risk/internal/domain"
)

// HealthRepository accede a heart_patient_data. "Mas reciente" es siempre el id mayor del usuario.
type HealthRepository interface {
	Create(ctx context.Context, record domain.HealthRecord) (domain.HealthRecord, error)
	GetLatestByUserID(ctx context.Context, userID string) (domain.HealthRecord, error)
	UpdateLatestRiskPercentage(ctx context.Context, userID string, riskPercentage float64) error
}

type PgHealthRepository struct {
	pool *pgxpool.Pool
}

func NewPgHealthRepository(pool *pgxpool.Pool) *PgHealthRepository {
	return &PgHealthRepository{pool: pool}
}

func (r *PgHealthRepository) Create(ctx context.Context, record domain.HealthRecord) (domain.HealthRecord, error) {
	const query = `
		INSERT INTO heart_patient_data (
			user_id, age, sex, chest_pain_type, resting_bp, cholesterol, fasting_bs,
			resting_ecg, max_hr, exercise_angina, oldpeak, st_slope, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id
	`
	err := r.pool.QueryRow(ctx, query,
		record.UserID,
		record.Age,
		record.Sex,
		record.ChestPainType,
		record.RestingBP,
		record.Cholesterol,
		record.FastingBS,
		record.RestingECG,
		record.MaxHR,
		record.ExerciseAngina,
		record.Oldpeak,
		record.STSlope,
		record.CreatedAt,
	).Scan(&record.ID)
	if err != nil {
		return domain.HealthRecord{}, err
	}
	return record, nil
}

func (r *PgHealthRepository) GetLatestByUserID(ctx context.Context, userID string) (domain.HealthRecord, error) {
	const query = `
		SELECT id, user_id, age, sex, chest_pain_type, resting_bp, cholesterol, fasting_bs,
			resting_ecg, max_hr, exercise_angina, oldpeak, st_slope, risk_percentage, created_at
		FROM heart_patient_data
		WHERE user_id = $1
		ORDER BY id DESC
		LIMIT 1
	`
	var rec domain.HealthRecord
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&rec.ID,
		&rec.UserID,
		&rec.Age,
		&rec.Sex,
		&rec.ChestPainType,
		&rec.RestingBP,
		&rec.Cholesterol,
		&rec.FastingBS,
		&rec.RestingECG,
		&rec.MaxHR,
		&rec.ExerciseAngina,
		&rec.Oldpeak,
		&rec.STSlope,
		&rec.RiskPercentage,
		&rec.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.HealthRecord{}, err
	}
	return rec, err
}

// UpdateLatestRiskPercentage pisa risk_percentage en la fila mas reciente del usuario.
// Devuelve pgx.ErrNoRows si el usuario no tiene filas.
func (r *PgHealthRepository) UpdateLatestRiskPercentage(ctx context.Context, userID string, riskPercentage float64) error {
	const query = `
		UPDATE heart_patient_data
		SET risk_percentage = $1
		WHERE id = (
			SELECT id FROM heart_patient_data
			WHERE user_id = $2
			ORDER BY id DESC
			LIMIT 1
		)
	`
	tag, err := r.pool.Exec(ctx, query, riskPercentage, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

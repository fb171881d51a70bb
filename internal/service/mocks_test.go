package service

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"heart-risk/internal/domain"
)

type mockHealthRepo struct {
	records   map[string]domain.HealthRecord
	getErr    error
	updateErr error

	getCalls     int
	updateCalls  int
	lastUserID   string
	lastRiskPct  float64
	createdCount int
}

func newMockHealthRepo(records ...domain.HealthRecord) *mockHealthRepo {
	m := &mockHealthRepo{records: make(map[string]domain.HealthRecord)}
	for _, r := range records {
		m.records[r.UserID] = r
	}
	return m
}

func (m *mockHealthRepo) Create(_ context.Context, record domain.HealthRecord) (domain.HealthRecord, error) {
	m.createdCount++
	record.ID = int64(m.createdCount)
	m.records[record.UserID] = record
	return record, nil
}

func (m *mockHealthRepo) GetLatestByUserID(_ context.Context, userID string) (domain.HealthRecord, error) {
	m.getCalls++
	if m.getErr != nil {
		return domain.HealthRecord{}, m.getErr
	}
	rec, ok := m.records[userID]
	if !ok {
		return domain.HealthRecord{}, pgx.ErrNoRows
	}
	return rec, nil
}

func (m *mockHealthRepo) UpdateLatestRiskPercentage(_ context.Context, userID string, riskPercentage float64) error {
	m.updateCalls++
	m.lastUserID = userID
	m.lastRiskPct = riskPercentage
	if m.updateErr != nil {
		return m.updateErr
	}
	rec, ok := m.records[userID]
	if !ok {
		return pgx.ErrNoRows
	}
	rec.RiskPercentage = &riskPercentage
	m.records[userID] = rec
	return nil
}

type mockUserRepo struct {
	usersByID    map[string]domain.User
	usersByEmail map[string]string
	err          error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		usersByID:    make(map[string]domain.User),
		usersByEmail: make(map[string]string),
	}
}

func (m *mockUserRepo) Create(_ context.Context, user domain.User) error {
	if m.err != nil {
		return m.err
	}
	m.usersByID[user.ID] = user
	m.usersByEmail[user.Email] = user.ID
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (domain.User, error) {
	if m.err != nil {
		return domain.User{}, m.err
	}
	user, ok := m.usersByID[id]
	if !ok {
		return domain.User{}, pgx.ErrNoRows
	}
	return user, nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	if m.err != nil {
		return domain.User{}, m.err
	}
	id, ok := m.usersByEmail[email]
	if !ok {
		return domain.User{}, pgx.ErrNoRows
	}
	return m.GetByID(ctx, id)
}

func sampleRecord(userID string) domain.HealthRecord {
	return domain.HealthRecord{
		ID:             7,
		UserID:         userID,
		Age:            54,
		Sex:            domain.SexMale,
		ChestPainType:  "Atypical Angina",
		RestingBP:      130,
		Cholesterol:    250,
		FastingBS:      135,
		RestingECG:     "ST-T Wave Abnormality",
		MaxHR:          150,
		ExerciseAngina: "N",
		Oldpeak:        1.5,
		STSlope:        "Flat",
		CreatedAt:      time.Now().UTC(),
	}
}

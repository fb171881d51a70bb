package http

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"heart-risk/internal/domain"
)

type mockHealthRepo struct {
	latest    map[string]domain.HealthRecord
	getErr    error
	updateErr error
	createErr error

	created     []domain.HealthRecord
	updateCalls int
	lastRiskPct float64
}

func newMockHealthRepo() *mockHealthRepo {
	return &mockHealthRepo{latest: make(map[string]domain.HealthRecord)}
}

func (m *mockHealthRepo) Create(_ context.Context, record domain.HealthRecord) (domain.HealthRecord, error) {
	if m.createErr != nil {
		return domain.HealthRecord{}, m.createErr
	}
	record.ID = int64(len(m.created) + 1)
	m.created = append(m.created, record)
	m.latest[record.UserID] = record
	return record, nil
}

func (m *mockHealthRepo) GetLatestByUserID(_ context.Context, userID string) (domain.HealthRecord, error) {
	if m.getErr != nil {
		return domain.HealthRecord{}, m.getErr
	}
	rec, ok := m.latest[userID]
	if !ok {
		return domain.HealthRecord{}, pgx.ErrNoRows
	}
	return rec, nil
}

func (m *mockHealthRepo) UpdateLatestRiskPercentage(_ context.Context, userID string, riskPercentage float64) error {
	m.updateCalls++
	m.lastRiskPct = riskPercentage
	if m.updateErr != nil {
		return m.updateErr
	}
	rec, ok := m.latest[userID]
	if !ok {
		return pgx.ErrNoRows
	}
	rec.RiskPercentage = &riskPercentage
	m.latest[userID] = rec
	return nil
}

type mockUserRepo struct {
	users map[string]domain.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]domain.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user domain.User) error {
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (domain.User, error) {
	user, ok := m.users[id]
	if !ok {
		return domain.User{}, pgx.ErrNoRows
	}
	return user, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (domain.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, pgx.ErrNoRows
}

type mockPinger struct {
	err error
}

func (m mockPinger) Ping(context.Context) error {
	return m.err
}

var errDBDown = errors.New("connection refused")

func sampleRecord(userID string) domain.HealthRecord {
	return domain.HealthRecord{
		ID:             3,
		UserID:         userID,
		Age:            61,
		Sex:            domain.SexFemale,
		ChestPainType:  "Asymptomatic",
		RestingBP:      140,
		Cholesterol:    289,
		FastingBS:      90,
		RestingECG:     "Normal",
		MaxHR:          172,
		ExerciseAngina: "Y",
		Oldpeak:        2.0,
		STSlope:        "Flat",
		CreatedAt:      time.Now().UTC(),
	}
}

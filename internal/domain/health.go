package domain

import "time"

// FastingBSThreshold es el valor (mg/dL) a partir del cual la glucosa en ayunas cuenta como alta.
const FastingBSThreshold = 120

const (
	SexMale   = "Male"
	SexFemale = "Female"
)

// HealthRecord es la fila almacenada en heart_patient_data, con las etiquetas tal cual las eligio el usuario.
type HealthRecord struct {
	ID             int64     `json:"id"`
	UserID         string    `json:"user_id"`
	Age            int       `json:"age"`
	Sex            string    `json:"sex"`
	ChestPainType  string    `json:"chest_pain_type"`
	RestingBP      int       `json:"resting_bp"`
	Cholesterol    int       `json:"cholesterol"`
	FastingBS      int       `json:"fasting_bs"` // lectura cruda en mg/dL
	RestingECG     string    `json:"resting_ecg"`
	MaxHR          int       `json:"max_hr"`
	ExerciseAngina string    `json:"exercise_angina"`
	Oldpeak        float64   `json:"oldpeak"`
	STSlope        string    `json:"st_slope"`
	RiskPercentage *float64  `json:"risk_percentage,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// HealthProfile es el perfil normalizado que consume el predictor. Solo lectura.
type HealthProfile struct {
	RecordID          int64   `json:"record_id"`
	UserID            string  `json:"user_id"`
	Age               int     `json:"age"`
	Sex               string  `json:"sex"`
	ChestPainType     string  `json:"chest_pain_type"`
	RestingBP         int     `json:"resting_bp"`
	Cholesterol       int     `json:"cholesterol"`
	FastingBloodSugar int     `json:"fasting_blood_sugar"` // mg/dL, sin derivar
	FastingBS         int     `json:"fasting_bs"`          // 1 si FastingBloodSugar >= 120
	RestingECG        string  `json:"resting_ecg"`
	MaxHR             int     `json:"max_hr"`
	ExerciseAngina    string  `json:"exercise_angina"`
	Oldpeak           float64 `json:"oldpeak"`
	STSlope           string  `json:"st_slope"`
}

// NewHealthProfile normaliza un registro: etiquetas a codigos y bandera de glucosa derivada.
func NewHealthProfile(rec HealthRecord) HealthProfile {
	return HealthProfile{
		RecordID:          rec.ID,
		UserID:            rec.UserID,
		Age:               rec.Age,
		Sex:               rec.Sex,
		ChestPainType:     ChestPainTypes.Code(rec.ChestPainType),
		RestingBP:         rec.RestingBP,
		Cholesterol:       rec.Cholesterol,
		FastingBloodSugar: rec.FastingBS,
		FastingBS:         DeriveFastingBS(rec.FastingBS),
		RestingECG:        RestingECGs.Code(rec.RestingECG),
		MaxHR:             rec.MaxHR,
		ExerciseAngina:    rec.ExerciseAngina,
		Oldpeak:           rec.Oldpeak,
		STSlope:           STSlopes.Code(rec.STSlope),
	}
}

// DeriveFastingBS convierte la lectura cruda en la bandera 0/1 que espera el modelo.
func DeriveFastingBS(raw int) int {
	if raw < FastingBSThreshold {
		return 0
	}
	return 1
}

// Features devuelve las 11 columnas con los nombres que usa el modelo.
func (p HealthProfile) Features() map[string]any {
	return map[string]any{
		"Age":            p.Age,
		"Sex":            p.Sex,
		"ChestPainType":  p.ChestPainType,
		"RestingBP":      p.RestingBP,
		"Cholesterol":    p.Cholesterol,
		"FastingBS":      p.FastingBS,
		"RestingECG":     p.RestingECG,
		"MaxHR":          p.MaxHR,
		"ExerciseAngina": p.ExerciseAngina,
		"Oldpeak":        p.Oldpeak,
		"ST_Slope":       p.STSlope,
	}
}

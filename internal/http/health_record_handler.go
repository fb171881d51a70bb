package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"heart-risk/internal/domain"
	"heart-risk/internal/repository"
)

// HealthRecordHandler recibe los datos de salud que luego lee el ProfileLoader.
type HealthRecordHandler struct {
	logger  *zap.Logger
	records repository.HealthRepository
}

func NewHealthRecordHandler(logger *zap.Logger, records repository.HealthRepository) *HealthRecordHandler {
	return &HealthRecordHandler{
		logger:  logger,
		records: records,
	}
}

// CreateRecord maneja POST /health/records. Las etiquetas se guardan tal cual; el mapeo a codigos
// ocurre al cargar el perfil.
func (h *HealthRecordHandler) CreateRecord(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "You are not logged in!", "next": "/auth/login"})
		return
	}

	var req struct {
		Age               int     `json:"age" binding:"required,min=1,max=120"`
		Sex               string  `json:"sex" binding:"required,oneof=Male Female"`
		ChestPainType     string  `json:"chest_pain_type" binding:"required"`
		RestingBP         int     `json:"resting_bp" binding:"required,min=1"`
		Cholesterol       int     `json:"cholesterol" binding:"min=0"`
		FastingBloodSugar int     `json:"fasting_blood_sugar" binding:"min=0"`
		RestingECG        string  `json:"resting_ecg" binding:"required"`
		MaxHR             int     `json:"max_hr" binding:"required,min=1"`
		ExerciseAngina    string  `json:"exercise_angina" binding:"required,oneof=Y N"`
		Oldpeak           float64 `json:"oldpeak"`
		STSlope           string  `json:"st_slope" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid health record request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	record := domain.HealthRecord{
		UserID:         claims.UserID,
		Age:            req.Age,
		Sex:            req.Sex,
		ChestPainType:  strings.TrimSpace(req.ChestPainType),
		RestingBP:      req.RestingBP,
		Cholesterol:    req.Cholesterol,
		FastingBS:      req.FastingBloodSugar,
		RestingECG:     strings.TrimSpace(req.RestingECG),
		MaxHR:          req.MaxHR,
		ExerciseAngina: req.ExerciseAngina,
		Oldpeak:        req.Oldpeak,
		STSlope:        strings.TrimSpace(req.STSlope),
		CreatedAt:      time.Now().UTC(),
	}

	saved, err := h.records.Create(c.Request.Context(), record)
	if err != nil {
		h.logger.Error("create health record failed", zap.Error(err), zap.String("user_id", claims.UserID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save health data"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"record": saved})
}

package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"heart-risk/internal/domain"
	"heart-risk/internal/service"
)

const profileCompletionPath = "/health/records"

// AnalysisHandler expone el perfil normalizado y el analisis de riesgo del usuario autenticado.
type AnalysisHandler struct {
	logger    *zap.Logger
	loader    *service.ProfileLoader
	presenter *service.RiskPresenter
}

func NewAnalysisHandler(logger *zap.Logger, loader *service.ProfileLoader, presenter *service.RiskPresenter) *AnalysisHandler {
	return &AnalysisHandler{
		logger:    logger,
		loader:    loader,
		presenter: presenter,
	}
}

// GetProfile maneja GET /analysis/profile.
func (h *AnalysisHandler) GetProfile(c *gin.Context) {
	profile, ok := h.loadProfile(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// Analyze maneja POST /analysis: carga el perfil, predice, guarda el riesgo y devuelve el bundle.
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	profile, ok := h.loadProfile(c)
	if !ok {
		return
	}

	bundle, err := h.presenter.Assess(c.Request.Context(), profile.UserID, profile)
	if err != nil {
		if errors.Is(err, service.ErrPredictionFailed) {
			c.JSON(http.StatusBadGateway, gin.H{"error": "prediction service unavailable"})
			return
		}
		h.logger.Error("assess failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not analyze"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile, "bundle": bundle})
}

// loadProfile escribe la respuesta de error y devuelve false si no hay perfil utilizable.
func (h *AnalysisHandler) loadProfile(c *gin.Context) (domain.HealthProfile, bool) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "You are not logged in!", "next": "/auth/login"})
		return domain.HealthProfile{}, false
	}

	profile, err := h.loader.Load(c.Request.Context(), claims.UserID)
	if err == nil {
		return profile, true
	}

	switch {
	case errors.Is(err, service.ErrStorageFailure):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Error fetching user details", "next": profileCompletionPath})
	case errors.Is(err, service.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "You haven't filled your health data", "next": profileCompletionPath})
	default:
		h.logger.Error("load profile failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load profile"})
	}
	return domain.HealthProfile{}, false
}

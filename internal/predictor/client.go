package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"heart-risk/internal/domain"
)

// Predictor define la interfaz del modelo externo de riesgo cardiaco.
type Predictor interface {
	Predict(ctx context.Context, features map[string]any) (domain.Prediction, error)
}

// HTTPClient implementa Predictor contra un servicio de inferencia HTTP (POST {base}/predict).
type HTTPClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  *zap.Logger
}

// NewHTTPClient construye el cliente. timeout <= 0 usa 30s.
func NewHTTPClient(baseURL, apiKey string, timeout time.Duration, logger *zap.Logger) *HTTPClient {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

func (c *HTTPClient) Predict(ctx context.Context, features map[string]any) (domain.Prediction, error) {
	bodyBytes, err := json.Marshal(predictRequest{Features: features})
	if err != nil {
		return domain.Prediction{}, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(bodyBytes))
	if err != nil {
		return domain.Prediction{}, fmt.Errorf("create request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return domain.Prediction{}, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Prediction{}, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		c.logger.Warn("predictor error status",
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(respBody)),
		)
		return domain.Prediction{}, fmt.Errorf("predictor http error: status=%d", resp.StatusCode)
	}

	var pr predictResponse
	if err := json.Unmarshal(respBody, &pr); err != nil {
		return domain.Prediction{}, fmt.Errorf("unmarshal response: %w", err)
	}
	if pr.Error != nil {
		return domain.Prediction{}, fmt.Errorf("predictor api error: %s", pr.Error.Message)
	}

	flagged := pr.Flagged
	if flagged == nil {
		flagged = []string{}
	}
	return domain.Prediction{
		Actual:      pr.Actual,
		Predicted:   pr.Predicted,
		Probability: pr.Probability,
		RiskLevel:   pr.RiskLevel,
		Flagged:     flagged,
	}, nil
}

type predictRequest struct {
	Features map[string]any `json:"features"`
}

type predictResponse struct {
	Actual      *int     `json:"actual"`
	Predicted   int      `json:"predicted"`
	Probability float64  `json:"probability"`
	RiskLevel   string   `json:"risk_level"`
	Flagged     []string `json:"flagged"`
	Error       *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

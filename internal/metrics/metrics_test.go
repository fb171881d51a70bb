package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorderCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	r, err := NewRecorder(reg)
	if err != nil {
		t.Fatalf("new recorder: %v", err)
	}

	r.ProfileLoad(LoadOK)
	r.ProfileLoad(LoadOK)
	r.ProfileLoad(LoadNotFound)
	r.PredictorCall(10*time.Millisecond, nil)
	r.PredictorCall(10*time.Millisecond, errors.New("boom"))
	r.RiskPersistFailure()
	r.Advisory("cholesterol")

	if got := testutil.ToFloat64(r.profileLoads.WithLabelValues(LoadOK)); got != 2 {
		t.Fatalf("expected 2 ok loads, got %v", got)
	}
	if got := testutil.ToFloat64(r.predictorErrors); got != 1 {
		t.Fatalf("expected 1 predictor error, got %v", got)
	}
	if got := testutil.ToFloat64(r.riskPersistFailures); got != 1 {
		t.Fatalf("expected 1 persist failure, got %v", got)
	}
	if got := testutil.ToFloat64(r.advisories.WithLabelValues("cholesterol")); got != 1 {
		t.Fatalf("expected 1 cholesterol advisory, got %v", got)
	}
}

func TestRecorderDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := NewRecorder(reg); err != nil {
		t.Fatalf("first registration: %v", err)
	}
	if _, err := NewRecorder(reg); err == nil {
		t.Fatalf("expected error registering twice on the same registry")
	}
}

func TestNilRecorderIsNoop(t *testing.T) {
	var r *Recorder
	r.ProfileLoad(LoadOK)
	r.Analysis("green")
	r.PredictorCall(time.Second, nil)
	r.RiskPersistFailure()
	r.Advisory("oldpeak")
	r.HTTPRequest("GET", "/", 200, time.Millisecond)
}

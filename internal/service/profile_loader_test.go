package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"heart-risk/internal/domain"
)

func TestProfileLoaderLoadMapsLabels(t *testing.T) {
	repo := newMockHealthRepo(sampleRecord("u1"))
	loader := NewProfileLoader(repo, zap.NewNop(), nil)

	profile, err := loader.Load(context.Background(), "u1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if profile.ChestPainType != "ATA" {
		t.Fatalf("expected ChestPainType ATA, got %s", profile.ChestPainType)
	}
	if profile.RestingECG != "ST" {
		t.Fatalf("expected RestingECG ST, got %s", profile.RestingECG)
	}
	if profile.STSlope != "Flat" {
		t.Fatalf("expected ST_Slope Flat, got %s", profile.STSlope)
	}
	if profile.FastingBS != 1 || profile.FastingBloodSugar != 135 {
		t.Fatalf("expected FastingBS=1 raw=135, got %d raw=%d", profile.FastingBS, profile.FastingBloodSugar)
	}
	if profile.ExerciseAngina != "N" || profile.Sex != domain.SexMale {
		t.Fatalf("expected pass-through fields, got %+v", profile)
	}
	if profile.RecordID != 7 || profile.UserID != "u1" {
		t.Fatalf("unexpected record reference: %+v", profile)
	}
}

func TestProfileLoaderPassesThroughUnknownLabels(t *testing.T) {
	rec := sampleRecord("u2")
	rec.ChestPainType = "Something New"
	rec.RestingECG = "LVH"
	rec.STSlope = ""
	repo := newMockHealthRepo(rec)
	loader := NewProfileLoader(repo, zap.NewNop(), nil)

	profile, err := loader.Load(context.Background(), "u2")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if profile.ChestPainType != "Something New" || profile.RestingECG != "LVH" || profile.STSlope != "" {
		t.Fatalf("expected unknown labels unchanged, got %+v", profile)
	}
}

func TestProfileLoaderNotFound(t *testing.T) {
	repo := newMockHealthRepo()
	loader := NewProfileLoader(repo, zap.NewNop(), nil)

	_, err := loader.Load(context.Background(), "missing")
	if !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
	if errors.Is(err, ErrStorageFailure) {
		t.Fatalf("missing row must not be reported as storage failure")
	}
	if repo.updateCalls != 0 {
		t.Fatalf("expected no storage write, got %d", repo.updateCalls)
	}
}

func TestProfileLoaderStorageFailure(t *testing.T) {
	repo := newMockHealthRepo(sampleRecord("u1"))
	repo.getErr = errors.New("connection refused")
	loader := NewProfileLoader(repo, zap.NewNop(), nil)

	_, err := loader.Load(context.Background(), "u1")
	if !errors.Is(err, ErrStorageFailure) {
		t.Fatalf("expected ErrStorageFailure, got %v", err)
	}
	if !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected storage failure to also read as not found, got %v", err)
	}
	if repo.getCalls != 1 {
		t.Fatalf("expected a single read, got %d", repo.getCalls)
	}
}

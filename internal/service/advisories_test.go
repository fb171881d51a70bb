package service

import (
	"testing"

	"heart-risk/internal/domain"
)

func healthyProfile() domain.HealthProfile {
	return domain.HealthProfile{
		Age:         40,
		RestingBP:   110,
		Cholesterol: 180,
		MaxHR:       90,
		Oldpeak:     0.5,
		FastingBS:   0,
	}
}

func advisoryKeys(advs []domain.Advisory) []string {
	keys := make([]string, 0, len(advs))
	for _, a := range advs {
		keys = append(keys, a.Key)
	}
	return keys
}

func TestDeriveAdvisoriesThresholdsAreStrict(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(p *domain.HealthProfile)
		key    string
		fires  bool
	}{
		{"cholesterol at 200", func(p *domain.HealthProfile) { p.Cholesterol = 200 }, "cholesterol", false},
		{"cholesterol at 201", func(p *domain.HealthProfile) { p.Cholesterol = 201 }, "cholesterol", true},
		{"resting bp at 120", func(p *domain.HealthProfile) { p.RestingBP = 120 }, "blood_pressure", false},
		{"resting bp at 121", func(p *domain.HealthProfile) { p.RestingBP = 121 }, "blood_pressure", true},
		{"max hr at 100", func(p *domain.HealthProfile) { p.MaxHR = 100 }, "max_hr", false},
		{"max hr at 101", func(p *domain.HealthProfile) { p.MaxHR = 101 }, "max_hr", true},
		{"oldpeak at 1.0", func(p *domain.HealthProfile) { p.Oldpeak = 1.0 }, "oldpeak", false},
		{"oldpeak at 1.01", func(p *domain.HealthProfile) { p.Oldpeak = 1.01 }, "oldpeak", true},
		{"fasting bs flag 0", func(p *domain.HealthProfile) { p.FastingBS = 0 }, "fasting_bs", false},
		{"fasting bs flag 1", func(p *domain.HealthProfile) { p.FastingBS = 1 }, "fasting_bs", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := healthyProfile()
			tc.mutate(&p)
			advs := DeriveAdvisories(p)
			if tc.fires {
				if len(advs) != 1 || advs[0].Key != tc.key {
					t.Fatalf("expected only %s to fire, got %v", tc.key, advisoryKeys(advs))
				}
				if advs[0].Text == "" {
					t.Fatalf("expected advisory text")
				}
				return
			}
			if len(advs) != 0 {
				t.Fatalf("expected no advisory, got %v", advisoryKeys(advs))
			}
		})
	}
}

func TestDeriveAdvisoriesOnlyCholesterol(t *testing.T) {
	p := domain.HealthProfile{Cholesterol: 250, RestingBP: 110, MaxHR: 90, Oldpeak: 0.5, FastingBS: 0}

	advs := DeriveAdvisories(p)
	if len(advs) != 1 || advs[0].Key != "cholesterol" {
		t.Fatalf("expected exactly the cholesterol advisory, got %v", advisoryKeys(advs))
	}
}

func TestDeriveAdvisoriesAllFireInOrder(t *testing.T) {
	p := domain.HealthProfile{Cholesterol: 300, RestingBP: 160, MaxHR: 180, Oldpeak: 2.3, FastingBS: 1}

	got := advisoryKeys(DeriveAdvisories(p))
	want := []string{"cholesterol", "blood_pressure", "max_hr", "oldpeak", "fasting_bs"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestDeriveAdvisoriesNoneReturnsEmptySlice(t *testing.T) {
	advs := DeriveAdvisories(healthyProfile())
	if advs == nil || len(advs) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", advs)
	}
}

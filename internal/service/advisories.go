package service

import "heart-risk/internal/domain"

// Umbrales de los consejos. Todos se comparan con ">" estricto salvo la glucosa (bandera == 1).
const (
	CholesterolAdvisoryThreshold = 200
	RestingBPAdvisoryThreshold   = 120
	MaxHRAdvisoryThreshold       = 100
	OldpeakAdvisoryThreshold     = 1.0
)

type advisoryRule struct {
	key   string
	text  string
	fires func(p domain.HealthProfile) bool
}

var advisoryRules = []advisoryRule{
	{
		key:   "cholesterol",
		text:  "Your cholesterol is high. Consider reducing saturated fats, exercising regularly, and speaking to your doctor about treatment.",
		fires: func(p domain.HealthProfile) bool { return p.Cholesterol > CholesterolAdvisoryThreshold },
	},
	{
		key:   "blood_pressure",
		text:  "Elevated blood pressure can increase your risk. Reduce salt intake, manage stress, and follow medical guidance.",
		fires: func(p domain.HealthProfile) bool { return p.RestingBP > RestingBPAdvisoryThreshold },
	},
	{
		key:   "max_hr",
		text:  "Your maximum heart rate is elevated. While this can be normal for active individuals, consistently high MaxHR may indicate overexertion or cardiovascular stress. Monitor during workouts and consult a healthcare professional if concerned.",
		fires: func(p domain.HealthProfile) bool { return p.MaxHR > MaxHRAdvisoryThreshold },
	},
	{
		key:   "oldpeak",
		text:  "Your ST depression is higher than normal. This may indicate heart strain. Consider a follow-up with your healthcare provider.",
		fires: func(p domain.HealthProfile) bool { return p.Oldpeak > OldpeakAdvisoryThreshold },
	},
	{
		key:   "fasting_bs",
		text:  "High fasting blood sugar is a diabetes risk. Consider cutting back on sugar and refined carbs.",
		fires: func(p domain.HealthProfile) bool { return p.FastingBS == 1 },
	},
}

// DeriveAdvisories evalua cada regla por separado; pueden dispararse ninguna, algunas o todas.
func DeriveAdvisories(p domain.HealthProfile) []domain.Advisory {
	out := make([]domain.Advisory, 0, len(advisoryRules))
	for _, r := range advisoryRules {
		if r.fires(p) {
			out = append(out, domain.Advisory{Key: r.key, Text: r.text})
		}
	}
	return out
}

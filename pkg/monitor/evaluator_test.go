package monitor

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liyu1981.xyz/vitals-monitor-service/pkg/models"
)

func sampleOf(hr, spo2, temp float64) models.Sample {
	return models.Sample{Vitals: models.Vitals{HeartRate: hr, SpO2: spo2, Temp: temp}}
}

func TestEvaluate_CriticalSpO2(t *testing.T) {
	alerts := Evaluate(DefaultRules, sampleOf(80, 85, 98.6), "P-001")

	require.Len(t, alerts, 1)
	assert.Equal(t, models.PriorityCritical, alerts[0].Priority)
	assert.Equal(t, models.VitalSpO2, alerts[0].Vital)
	assert.Equal(t, "P-001", alerts[0].PatientID)
	assert.True(t, strings.HasPrefix(alerts[0].Message, "Critical SpO₂"), alerts[0].Message)
	assert.Contains(t, alerts[0].Message, "85")
	assert.Contains(t, alerts[0].Message, "86")
}

func TestEvaluate_HeartRateThresholds(t *testing.T) {
	cases := []struct {
		hr       float64
		priority models.Priority
		prefix   string
	}{
		{hr: 119.9},
		{hr: 120, priority: models.PriorityWarning, prefix: "High HR"},
		{hr: 149.9, priority: models.PriorityWarning, prefix: "High HR"},
		{hr: 150, priority: models.PriorityCritical, prefix: "Critical HR"},
		{hr: 200, priority: models.PriorityCritical, prefix: "Critical HR"},
	}

	for _, tc := range cases {
		alerts := Evaluate(DefaultRules, sampleOf(tc.hr, 97, 98.6), "P-001")
		if tc.prefix == "" {
			assert.Empty(t, alerts, "hr=%v", tc.hr)
			continue
		}
		require.Len(t, alerts, 1, "hr=%v", tc.hr)
		assert.Equal(t, tc.priority, alerts[0].Priority, "hr=%v", tc.hr)
		assert.True(t, strings.HasPrefix(alerts[0].Message, tc.prefix), alerts[0].Message)
	}
}

func TestEvaluate_TemperatureAndOrder(t *testing.T) {
	alerts := Evaluate(DefaultRules, sampleOf(155, 91, 100.4), "P-002")

	require.Len(t, alerts, 3)
	assert.Equal(t, []models.VitalType{models.VitalHeartRate, models.VitalSpO2, models.VitalTemp},
		[]models.VitalType{alerts[0].Vital, alerts[1].Vital, alerts[2].Vital})
	assert.Equal(t, models.PriorityCritical, alerts[0].Priority)
	assert.Equal(t, models.PriorityWarning, alerts[1].Priority)
	assert.True(t, strings.HasPrefix(alerts[1].Message, "Low SpO₂"))
	assert.Equal(t, models.PriorityWarning, alerts[2].Priority)
	assert.True(t, strings.HasPrefix(alerts[2].Message, "High Temp"))

	critical := Evaluate(DefaultRules, sampleOf(80, 97, 102.0), "P-002")
	require.Len(t, critical, 1)
	assert.True(t, strings.HasPrefix(critical[0].Message, "Critical Temp"))
}

func TestEvaluate_AtMostOneAlertPerVital(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))

	for range 5000 {
		rules := models.RuleSet{
			HRHigh:       90 + rnd.Float64()*60,
			HRCritical:   130 + rnd.Float64()*60,
			SpO2Low:      88 + rnd.Float64()*8,
			SpO2Critical: 80 + rnd.Float64()*8,
			TempHigh:     99 + rnd.Float64()*2,
			TempCritical: 101 + rnd.Float64()*2,
		}
		s := sampleOf(45+rnd.Float64()*165, 70+rnd.Float64()*30, 95+rnd.Float64()*11)

		alerts := Evaluate(rules, s, "P-003")
		require.LessOrEqual(t, len(alerts), 3)

		seen := map[models.VitalType]bool{}
		for _, a := range alerts {
			require.False(t, seen[a.Vital], "vital %s alerted twice", a.Vital)
			seen[a.Vital] = true
		}

		if s.HeartRate >= rules.HRCritical {
			require.True(t, seen[models.VitalHeartRate])
			require.Equal(t, models.PriorityCritical, alerts[0].Priority)
		}
	}
}

func TestEvaluate_MessageKeepsMeasuredPrecision(t *testing.T) {
	// rounding to whole units would print 150 next to a warning
	alerts := Evaluate(DefaultRules, sampleOf(149.6, 97, 98.6), "P-001")
	require.Len(t, alerts, 1)
	assert.Equal(t, models.PriorityWarning, alerts[0].Priority)
	assert.Equal(t, "High HR 149.6 bpm (≥ 120)", alerts[0].Message)

	alerts = Evaluate(DefaultRules, sampleOf(80, 86.4, 98.6), "P-001")
	require.Len(t, alerts, 1)
	assert.Equal(t, models.PriorityWarning, alerts[0].Priority)
	assert.Equal(t, "Low SpO₂ 86.4% (≤ 92%)", alerts[0].Message)

	alerts = Evaluate(DefaultRules, sampleOf(150, 86, 98.6), "P-001")
	require.Len(t, alerts, 2)
	assert.Equal(t, "Critical HR 150.0 bpm (≥ 150)", alerts[0].Message)
	assert.Equal(t, "Critical SpO₂ 86.0% (≤ 86%)", alerts[1].Message)
}

package monitor

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"liyu1981.xyz/vitals-monitor-service/pkg/models"
)

func TestGenerateSample_Baseline(t *testing.T) {
	now := time.Now()
	p := NewPatient(DefaultPatients[0])

	s := GenerateSample(p, now, ZeroNoise{})
	assert.False(t, s.InEvent)
	assert.Equal(t, 78.0, s.HeartRate)
	assert.Equal(t, 97.0, s.SpO2)
	assert.Equal(t, 98.6, s.Temp)

	assert.Empty(t, Evaluate(DefaultRules, s, p.ID), "baseline vitals must not alert")
}

func TestGenerateSample_EventBias(t *testing.T) {
	now := time.Now()
	p := NewPatient(DefaultPatients[0])

	until := StartEvent(p, now)
	assert.Equal(t, now.Add(25*time.Second).UnixMilli(), until)

	s := GenerateSample(p, now.Add(time.Second), ZeroNoise{})
	assert.True(t, s.InEvent)
	assert.Equal(t, 118.0, s.HeartRate)
	assert.Equal(t, 89.0, s.SpO2)
	assert.InDelta(t, 100.2, s.Temp, 1e-9)

	for _, a := range Evaluate(DefaultRules, s, p.ID) {
		assert.NotEqual(t, models.VitalHeartRate, a.Vital, "biased mean 118 stays under 120")
	}

	expired := GenerateSample(p, now.Add(EventWindow), ZeroNoise{})
	assert.False(t, expired.InEvent)
	assert.Equal(t, 78.0, expired.HeartRate)
}

func TestGenerateSample_Clamped(t *testing.T) {
	p := NewPatient(DefaultPatients[1])

	high := GenerateSample(p, time.Now(), constNoise(1000))
	assert.Equal(t, 210.0, high.HeartRate)
	assert.Equal(t, 100.0, high.SpO2)
	assert.Equal(t, 106.0, high.Temp)

	low := GenerateSample(p, time.Now(), constNoise(-1000))
	assert.Equal(t, 45.0, low.HeartRate)
	assert.Equal(t, 70.0, low.SpO2)
	assert.Equal(t, 95.0, low.Temp)
}

func TestPolarNoise_IsStandardNormal(t *testing.T) {
	noise := NewPolarNoise(42)

	const n = 20000
	var sum, sumSq float64
	for range n {
		g := noise.Gaussian()
		assert.False(t, math.IsNaN(g) || math.IsInf(g, 0))
		sum += g
		sumSq += g * g
	}
	mean := sum / n
	std := math.Sqrt(sumSq/n - mean*mean)

	assert.InDelta(t, 0, mean, 0.05)
	assert.InDelta(t, 1, std, 0.05)
}

func TestPatient_EventWindow(t *testing.T) {
	now := time.Now()
	p := NewPatient(DefaultPatients[2])
	assert.False(t, p.EventActive(now))

	StartEvent(p, now)
	assert.True(t, p.EventActive(now.Add(24*time.Second)))
	assert.False(t, p.EventActive(now.Add(25*time.Second)))
}

package monitor

import (
	"math"
	"math/rand"
	"time"

	"liyu1981.xyz/vitals-monitor-service/pkg/common"
	"liyu1981.xyz/vitals-monitor-service/pkg/models"
)

const EventWindow = 25 * time.Second

var (
	eventBias  = models.Vitals{HeartRate: 40, SpO2: -8, Temp: 1.6}
	noiseSigma = models.Vitals{HeartRate: 3, SpO2: 0.6, Temp: 0.12}
)

type vitalRange struct{ lo, hi float64 }

var (
	heartRateRange = vitalRange{45, 210}
	spo2Range      = vitalRange{70, 100}
	tempRange      = vitalRange{95, 106}
)

// NoiseSource yields standard normal draws.
type NoiseSource interface {
	Gaussian() float64
}

// PolarNoise implements the polar form of the Box–Muller transform.
type PolarNoise struct {
	rnd *rand.Rand
}

func NewPolarNoise(seed int64) *PolarNoise {
	return &PolarNoise{rnd: rand.New(rand.NewSource(seed))}
}

func (p *PolarNoise) Gaussian() float64 {
	for {
		u := 2*p.rnd.Float64() - 1
		v := 2*p.rnd.Float64() - 1
		s := u*u + v*v
		if s == 0 || s >= 1 {
			continue
		}
		return u * math.Sqrt(-2*math.Log(s)/s)
	}
}

type ZeroNoise struct{}

func (ZeroNoise) Gaussian() float64 { return 0 }

// GenerateSample draws one sample for p at now. Inside an event window the
// baseline is shifted by eventBias before noise is added.
func GenerateSample(p *Patient, now time.Time, noise NoiseSource) models.Sample {
	inEvent := p.EventActive(now)

	mean := p.Baseline
	if inEvent {
		mean.HeartRate += eventBias.HeartRate
		mean.SpO2 += eventBias.SpO2
		mean.Temp += eventBias.Temp
	}

	return models.Sample{
		Vitals: models.Vitals{
			HeartRate: draw(mean.HeartRate, noiseSigma.HeartRate, heartRateRange, noise),
			SpO2:      draw(mean.SpO2, noiseSigma.SpO2, spo2Range, noise),
			Temp:      draw(mean.Temp, noiseSigma.Temp, tempRange, noise),
		},
		InEvent: inEvent,
	}
}

func draw(mean, sigma float64, r vitalRange, noise NoiseSource) float64 {
	return common.Clamp(mean+sigma*noise.Gaussian(), r.lo, r.hi)
}

// StartEvent opens a simulated deterioration window on p and returns its end.
func StartEvent(p *Patient, now time.Time) int64 {
	p.EventUntil = now.Add(EventWindow).UnixMilli()
	return p.EventUntil
}

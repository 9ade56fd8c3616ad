package monitor

import (
	"time"

	"liyu1981.xyz/vitals-monitor-service/pkg/models"
	"liyu1981.xyz/vitals-monitor-service/pkg/ringbuf"
)

type PatientSpec struct {
	ID       string
	Label    string
	Baseline models.Vitals
}

var DefaultPatients = []PatientSpec{
	{ID: "P-001", Label: "Bed 1 · A. Rivera", Baseline: models.Vitals{HeartRate: 78, SpO2: 97, Temp: 98.6}},
	{ID: "P-002", Label: "Bed 2 · M. Chen", Baseline: models.Vitals{HeartRate: 92, SpO2: 95, Temp: 99.1}},
	{ID: "P-003", Label: "Bed 3 · J. Okafor", Baseline: models.Vitals{HeartRate: 68, SpO2: 98, Temp: 98.2}},
}

type Patient struct {
	ID       string
	Label    string
	Baseline models.Vitals

	HeartRate *ringbuf.Buffer[float64]
	SpO2      *ringbuf.Buffer[float64]
	Temp      *ringbuf.Buffer[float64]

	// EventUntil is epoch milliseconds; zero or past means no active event.
	EventUntil int64
}

func NewPatient(spec PatientSpec) *Patient {
	return &Patient{
		ID:        spec.ID,
		Label:     spec.Label,
		Baseline:  spec.Baseline,
		HeartRate: ringbuf.New[float64](ringbuf.DefaultCapacity),
		SpO2:      ringbuf.New[float64](ringbuf.DefaultCapacity),
		Temp:      ringbuf.New[float64](ringbuf.DefaultCapacity),
	}
}

func (p *Patient) EventActive(now time.Time) bool {
	return now.UnixMilli() < p.EventUntil
}

func (p *Patient) Push(s models.Sample) {
	p.HeartRate.Push(s.HeartRate)
	p.SpO2.Push(s.SpO2)
	p.Temp.Push(s.Temp)
}

// LatestVitals uses nil for a vital with no samples yet so that clients can
// render a placeholder.
type LatestVitals struct {
	HeartRate *float64 `json:"hr"`
	SpO2      *float64 `json:"spo2"`
	Temp      *float64 `json:"temp"`
}

type VitalSeries struct {
	HeartRate []float64 `json:"hr"`
	SpO2      []float64 `json:"spo2"`
	Temp      []float64 `json:"temp"`
}

type PatientView struct {
	ID          string        `json:"id"`
	Label       string        `json:"label"`
	Baseline    models.Vitals `json:"baseline"`
	EventUntil  int64         `json:"eventUntil"`
	EventActive bool          `json:"eventActive"`
	Latest      LatestVitals  `json:"latest"`
	Series      *VitalSeries  `json:"series,omitempty"`
}

func lastOrNil(b *ringbuf.Buffer[float64]) *float64 {
	if v, ok := b.Last(); ok {
		return &v
	}
	return nil
}

func (p *Patient) View(now time.Time, withSeries bool) PatientView {
	view := PatientView{
		ID:          p.ID,
		Label:       p.Label,
		Baseline:    p.Baseline,
		EventUntil:  p.EventUntil,
		EventActive: p.EventActive(now),
		Latest: LatestVitals{
			HeartRate: lastOrNil(p.HeartRate),
			SpO2:      lastOrNil(p.SpO2),
			Temp:      lastOrNil(p.Temp),
		},
	}
	if withSeries {
		view.Series = &VitalSeries{
			HeartRate: p.HeartRate.Values(),
			SpO2:      p.SpO2.Values(),
			Temp:      p.Temp.Values(),
		}
	}
	return view
}

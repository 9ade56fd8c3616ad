package monitor

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"liyu1981.xyz/vitals-monitor-service/pkg/models"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 10, 17, 9, 30, 0, 0, time.Local)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	return c.now
}

// constNoise returns the same standard-normal draw every time.
type constNoise float64

func (c constNoise) Gaussian() float64 { return float64(c) }

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("alert-%d", n)
	}
}

func newTestMonitor(t *testing.T, clock *fakeClock, patients ...PatientSpec) *Monitor {
	t.Helper()
	m := New(context.Background(), Options{
		Patients: patients,
		Noise:    ZeroNoise{},
		Clock:    clock.Now,
		NewID:    sequentialIDs(),
	})
	t.Cleanup(func() { m.Stop() })
	return m
}

func lowSpO2Patient(id string) PatientSpec {
	return PatientSpec{ID: id, Label: id, Baseline: models.Vitals{HeartRate: 80, SpO2: 85, Temp: 98.6}}
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		var j any
		if err := json.Unmarshal(scanner.Bytes(), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}

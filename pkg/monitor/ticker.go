package monitor

import (
	"context"
	"time"

	"go.uber.org/zap"
	"liyu1981.xyz/vitals-monitor-service/pkg/common"
	"liyu1981.xyz/vitals-monitor-service/pkg/models"
)

// Snapshot is the render payload published after every tick.
type Snapshot struct {
	Ts        int64          `json:"ts"`
	Running   bool           `json:"running"`
	Patients  []PatientView  `json:"patients"`
	Alerts    []models.Alert `json:"alerts"`
	Retained  int            `json:"retained"`
	Metrics   models.Metrics `json:"metrics"`
	Rules     models.RuleSet `json:"rules"`
	UndoDepth int            `json:"undoDepth"`
	RunLogLen int            `json:"runLogLen"`
}

func (m *Monitor) snapshotLocked(now time.Time) Snapshot {
	return Snapshot{
		Ts:        now.UnixMilli(),
		Running:   m.running,
		Patients:  common.Mapper(m.patients, func(p *Patient) PatientView { return p.View(now, false) }),
		Alerts:    m.alerts.View(),
		Retained:  m.alerts.Len(),
		Metrics:   m.metrics,
		Rules:     m.rules.Active(),
		UndoDepth: m.rules.Depth(),
		RunLogLen: m.runLog.Len(),
	}
}

func (m *Monitor) Running() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running
}

// Start moves Idle to Running, fires one tick right away and then one per
// interval. It reports false when the monitor was already running.
func (m *Monitor) Start() bool {
	m.mu.Lock()
	if m.running {
		m.mu.Unlock()
		return false
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	m.running, m.cancel, m.done = true, cancel, done
	m.mu.Unlock()

	common.GetLoggerWith(
		common.LoggerNameMonitor,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryTick),
	).Info("Monitor started", zap.Duration("interval", m.interval))

	m.Tick(m.clock())
	go m.loop(ctx, done)
	return true
}

// Stop cancels the timer and waits for the loop to exit, so no tick fires
// after it returns. It reports false when the monitor was already idle.
func (m *Monitor) Stop() bool {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return false
	}
	cancel, done := m.cancel, m.done
	m.running, m.cancel, m.done = false, nil, nil
	m.mu.Unlock()

	cancel()
	<-done

	common.GetLoggerWith(
		common.LoggerNameMonitor,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryTick),
	).Info("Monitor stopped")
	return true
}

func (m *Monitor) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if ctx.Err() != nil {
				return
			}
			m.Tick(m.clock())
		}
	}
}

// Tick runs one pass of the pipeline for every patient in insertion order,
// then evicts expired alerts, rebuilds the priority view, trims the run log
// and publishes a snapshot.
func (m *Monitor) Tick(now time.Time) Snapshot {
	started := time.Now()
	alertLogger := common.GetLoggerWith(
		common.LoggerNameMonitor,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryAlert),
	)

	m.mu.Lock()

	nowMs := now.UnixMilli()
	rules := m.rules.Active()

	for _, p := range m.patients {
		sample := GenerateSample(p, now, m.noise)
		p.Push(sample)

		alerts := Evaluate(rules, sample, p.ID)
		for i := range alerts {
			m.seq++
			alerts[i].ID = m.newID()
			alerts[i].Seq = m.seq
			alerts[i].Timestamp = nowMs
			alerts[i].TruePositive = sample.InEvent
			recordAlert(&m.metrics, alerts[i])
			alertLogger.Info("Alert raised", zap.Reflect("alert", alerts[i]))
		}
		m.alerts.Append(alerts...)

		m.runLog.Append(models.RunLogEntry{
			Ts:         nowMs,
			PatientID:  p.ID,
			HeartRate:  sample.HeartRate,
			SpO2:       sample.SpO2,
			Temp:       sample.Temp,
			InEvent:    sample.InEvent,
			AlertCount: len(alerts),
		})
	}

	evicted := m.alerts.Evict(now)
	m.alerts.Rebuild(m.topK)
	trimmed := m.runLog.Truncate()
	m.metrics.Ticks++

	snap := m.snapshotLocked(now)
	m.mu.Unlock()

	TicksTotal.Inc()
	RetainedAlerts.Set(float64(snap.Retained))
	TickDuration.Observe(time.Since(started).Seconds())

	common.GetLoggerWith(
		common.LoggerNameMonitor,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryTick),
	).Debug("Tick processed",
		zap.Int64("ts", nowMs),
		zap.Int("retained", snap.Retained),
		zap.Int("evicted", evicted),
		zap.Int("run_log_trimmed", trimmed),
	)

	m.broadcaster.Publish(snap)
	return snap
}

package monitor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"liyu1981.xyz/vitals-monitor-service/pkg/common"
	"liyu1981.xyz/vitals-monitor-service/pkg/models"
	"liyu1981.xyz/vitals-monitor-service/pkg/store"
)

const DefaultTickInterval = 1000 * time.Millisecond

var ErrUnknownPatient = errors.New("unknown patient")

//go:generate mockgen -destination=mocks/mock_monitor.go -package=mocks liyu1981.xyz/vitals-monitor-service/pkg/monitor IRules,IAlert,IEvent,IExport

type IRules interface {
	GetRules() (models.RuleSet, int)
	UpdateRules(next models.RuleSet) error
	SetRule(key string, value float64) error
	UndoRules() (models.RuleSet, error)
	SaveRules(ctx context.Context) error
}

type IAlert interface {
	GetTopAlerts() []models.Alert
	GetMetrics() models.Metrics
}

type IEvent interface {
	InjectEvent(patientID string) (int64, error)
}

type IExport interface {
	ExportCSV() (*Export, error)
	ExportXLSX() (*Export, error)
}

type Options struct {
	Store       store.Store
	Patients    []PatientSpec
	Noise       NoiseSource
	Clock       func() time.Time
	NewID       func() string
	Interval    time.Duration
	TopK        int
	RunLogLimit int
}

// Monitor owns all session state. Every read and write goes through mu so the
// ticker goroutine and request handlers never interleave mid-operation.
type Monitor struct {
	mu sync.Mutex

	store    store.Store
	noise    NoiseSource
	clock    func() time.Time
	newID    func() string
	interval time.Duration
	topK     int

	patients []*Patient
	byID     map[string]*Patient
	rules    *RuleBook
	alerts   *AlertStore
	runLog   *RunLog
	metrics  models.Metrics
	seq      uint64

	running bool
	cancel  context.CancelFunc
	done    chan struct{}

	broadcaster *Broadcaster

	Rules  IRules
	Alert  IAlert
	Event  IEvent
	Export IExport
}

type ServiceOpts struct {
	Rules  IRules
	Alert  IAlert
	Event  IEvent
	Export IExport
}

// New builds a Monitor with persisted rules loaded from opts.Store and its
// own service implementations wired in.
func New(ctx context.Context, opts Options) *Monitor {
	if len(opts.Patients) == 0 {
		opts.Patients = DefaultPatients
	}
	if opts.Noise == nil {
		opts.Noise = NewPolarNoise(time.Now().UnixNano())
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultTickInterval
	}
	if opts.TopK <= 0 {
		opts.TopK = DefaultTopK
	}

	m := &Monitor{
		store:       opts.Store,
		noise:       opts.Noise,
		clock:       opts.Clock,
		newID:       opts.NewID,
		interval:    opts.Interval,
		topK:        opts.TopK,
		byID:        make(map[string]*Patient, len(opts.Patients)),
		rules:       NewRuleBook(LoadRules(ctx, opts.Store)),
		alerts:      NewAlertStore(),
		runLog:      NewRunLog(opts.RunLogLimit),
		broadcaster: NewBroadcaster(),
	}
	for _, spec := range opts.Patients {
		p := NewPatient(spec)
		m.patients = append(m.patients, p)
		m.byID[p.ID] = p
	}

	m.WithServices(ServiceOpts{
		Rules:  m.GetIRules(),
		Alert:  m.GetIAlert(),
		Event:  m.GetIEvent(),
		Export: m.GetIExport(),
	})
	return m
}

func (m *Monitor) WithServices(opts ServiceOpts) *Monitor {
	if opts.Rules != nil {
		m.Rules = opts.Rules
	}
	if opts.Alert != nil {
		m.Alert = opts.Alert
	}
	if opts.Event != nil {
		m.Event = opts.Event
	}
	if opts.Export != nil {
		m.Export = opts.Export
	}
	return m
}

func (m *Monitor) Broadcaster() *Broadcaster { return m.broadcaster }

func (m *Monitor) Now() time.Time { return m.clock() }

func (m *Monitor) Patients() []PatientView {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.clock()
	return common.Mapper(m.patients, func(p *Patient) PatientView { return p.View(now, false) })
}

func (m *Monitor) PatientIDs() []string {
	return common.Mapper(m.patients, func(p *Patient) string { return p.ID })
}

func (m *Monitor) PatientVitals(patientID string) (PatientView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.byID[patientID]
	if !ok {
		return PatientView{}, fmt.Errorf("%w: %s", ErrUnknownPatient, patientID)
	}
	return p.View(m.clock(), true), nil
}

func (m *Monitor) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked(m.clock())
}

func (m *Monitor) GetTheme(ctx context.Context) models.Theme {
	return LoadTheme(ctx, m.store)
}

func (m *Monitor) SetTheme(ctx context.Context, theme models.Theme) error {
	return SaveTheme(ctx, m.store, theme)
}

func (m *Monitor) injectEvent(patientID string) (int64, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameMonitor,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryEvent),
	)

	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.byID[patientID]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownPatient, patientID)
	}

	until := StartEvent(p, m.clock())
	EventsInjectedTotal.WithLabelValues(patientID).Inc()
	logger.Info("Event injected", zap.String("patient_id", patientID), zap.Int64("until", until))
	return until, nil
}

func (m *Monitor) rulesLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameMonitor,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryRules),
	)
}

func (m *Monitor) getRules() (models.RuleSet, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rules.Active(), m.rules.Depth()
}

func (m *Monitor) updateRules(next models.RuleSet) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rules.Update(next)
	m.rulesLogger().Info("Rules replaced", zap.Reflect("rules", next), zap.Int("undo_depth", m.rules.Depth()))
	return nil
}

func (m *Monitor) setRule(key string, value float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.rules.Set(key, value); err != nil {
		return err
	}
	m.rulesLogger().Info("Rule edited", zap.String("key", key), zap.Float64("value", value))
	return nil
}

func (m *Monitor) undoRules() (models.RuleSet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rules, err := m.rules.Undo()
	if err != nil {
		m.rulesLogger().Info("Undo requested with empty history")
		return rules, err
	}
	m.rulesLogger().Info("Rules restored", zap.Reflect("rules", rules))
	return rules, nil
}

func (m *Monitor) saveRules(ctx context.Context) error {
	rules, _ := m.getRules()
	if err := SaveRules(ctx, m.store, rules); err != nil {
		return err
	}
	m.rulesLogger().Info("Rules persisted", zap.Reflect("rules", rules))
	return nil
}

func (m *Monitor) topAlerts() []models.Alert {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.alerts.View()
}

func (m *Monitor) sessionMetrics() models.Metrics {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.metrics
}

type IRulesImpl struct {
	m *Monitor
}

func (ir *IRulesImpl) GetRules() (models.RuleSet, int) { return ir.m.getRules() }

func (ir *IRulesImpl) UpdateRules(next models.RuleSet) error { return ir.m.updateRules(next) }

func (ir *IRulesImpl) SetRule(key string, value float64) error { return ir.m.setRule(key, value) }

func (ir *IRulesImpl) UndoRules() (models.RuleSet, error) { return ir.m.undoRules() }

func (ir *IRulesImpl) SaveRules(ctx context.Context) error { return ir.m.saveRules(ctx) }

func (m *Monitor) GetIRules() IRules {
	return &IRulesImpl{m: m}
}

type IAlertImpl struct {
	m *Monitor
}

func (ia *IAlertImpl) GetTopAlerts() []models.Alert { return ia.m.topAlerts() }

func (ia *IAlertImpl) GetMetrics() models.Metrics { return ia.m.sessionMetrics() }

func (m *Monitor) GetIAlert() IAlert {
	return &IAlertImpl{m: m}
}

type IEventImpl struct {
	m *Monitor
}

func (ie *IEventImpl) InjectEvent(patientID string) (int64, error) {
	return ie.m.injectEvent(patientID)
}

func (m *Monitor) GetIEvent() IEvent {
	return &IEventImpl{m: m}
}

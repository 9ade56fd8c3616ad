package monitor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"liyu1981.xyz/vitals-monitor-service/pkg/common"
	"liyu1981.xyz/vitals-monitor-service/pkg/models"
	"liyu1981.xyz/vitals-monitor-service/pkg/store"
)

const RulesStoreKey = "vitals.rules.v1"

var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrUnknownRule   = errors.New("unknown rule key")
)

var DefaultRules = models.RuleSet{
	HRHigh:       120,
	HRCritical:   150,
	SpO2Low:      92,
	SpO2Critical: 86,
	TempHigh:     100.4,
	TempCritical: 102.0,
}

// RuleKeys lists the editable thresholds by their persisted names.
var RuleKeys = []string{"hrHigh", "hrCrit", "spo2Low", "spo2Crit", "tempHigh", "tempCrit"}

// RuleBook holds the active rule set and the snapshots it replaced. There is
// no redo.
type RuleBook struct {
	active  models.RuleSet
	history []models.RuleSet
}

func NewRuleBook(initial models.RuleSet) *RuleBook {
	return &RuleBook{active: initial}
}

func (rb *RuleBook) Active() models.RuleSet { return rb.active }

func (rb *RuleBook) Depth() int { return len(rb.history) }

func (rb *RuleBook) Update(next models.RuleSet) {
	rb.history = append(rb.history, rb.active)
	rb.active = next
}

func (rb *RuleBook) Set(key string, value float64) error {
	next, err := withRule(rb.active, key, value)
	if err != nil {
		return err
	}
	rb.Update(next)
	return nil
}

func (rb *RuleBook) Undo() (models.RuleSet, error) {
	n := len(rb.history)
	if n == 0 {
		return rb.active, ErrNothingToUndo
	}
	rb.active = rb.history[n-1]
	rb.history = rb.history[:n-1]
	return rb.active, nil
}

func withRule(rules models.RuleSet, key string, value float64) (models.RuleSet, error) {
	switch key {
	case "hrHigh":
		rules.HRHigh = value
	case "hrCrit":
		rules.HRCritical = value
	case "spo2Low":
		rules.SpO2Low = value
	case "spo2Crit":
		rules.SpO2Critical = value
	case "tempHigh":
		rules.TempHigh = value
	case "tempCrit":
		rules.TempCritical = value
	default:
		return rules, fmt.Errorf("%w: %q", ErrUnknownRule, key)
	}
	return rules, nil
}

// DecodeRules overlays raw JSON on the defaults: missing keys keep their
// default, unknown keys are ignored.
func DecodeRules(raw string) (models.RuleSet, error) {
	rules := DefaultRules
	if err := json.Unmarshal([]byte(raw), &rules); err != nil {
		return DefaultRules, err
	}
	return rules, nil
}

// LoadRules never fails: an absent or unreadable entry yields DefaultRules.
func LoadRules(ctx context.Context, s store.Store) models.RuleSet {
	logger := common.GetLoggerWith(
		common.LoggerNameMonitor,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryRules),
	)

	if s == nil {
		return DefaultRules
	}

	raw, err := s.Get(ctx, RulesStoreKey)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			logger.Warn("Failed to read persisted rules, using defaults", zap.Error(err))
		}
		return DefaultRules
	}

	rules, err := DecodeRules(raw)
	if err != nil {
		logger.Warn("Persisted rules are corrupt, using defaults", zap.Error(err))
		return DefaultRules
	}

	logger.Info("Loaded persisted rules", zap.Reflect("rules", rules))
	return rules
}

func SaveRules(ctx context.Context, s store.Store, rules models.RuleSet) error {
	if s == nil {
		return errors.New("rule store not available")
	}
	raw, err := json.Marshal(rules)
	if err != nil {
		return err
	}
	if err := s.Set(ctx, RulesStoreKey, string(raw)); err != nil {
		return fmt.Errorf("persist rules: %w", err)
	}
	return nil
}

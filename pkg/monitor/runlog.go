package monitor

import "liyu1981.xyz/vitals-monitor-service/pkg/models"

// DefaultRunLogLimit holds about 20 minutes of 1 s ticks for three patients.
const DefaultRunLogLimit = 20 * 60 * 3

type RunLog struct {
	entries []models.RunLogEntry
	limit   int
}

func NewRunLog(limit int) *RunLog {
	if limit <= 0 {
		limit = DefaultRunLogLimit
	}
	return &RunLog{limit: limit}
}

func (l *RunLog) Append(e models.RunLogEntry) {
	l.entries = append(l.entries, e)
}

// Truncate drops the oldest entries beyond the limit.
func (l *RunLog) Truncate() int {
	over := len(l.entries) - l.limit
	if over <= 0 {
		return 0
	}
	l.entries = append(l.entries[:0:0], l.entries[over:]...)
	return over
}

func (l *RunLog) Entries() []models.RunLogEntry {
	return append([]models.RunLogEntry(nil), l.entries...)
}

func (l *RunLog) Len() int { return len(l.entries) }

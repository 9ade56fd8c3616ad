package monitor

import (
	"container/heap"
	"time"

	"liyu1981.xyz/vitals-monitor-service/pkg/models"
)

const (
	AlertWindow = 2 * time.Minute
	DefaultTopK = 12
)

// alertHeap orders critical before warning, then newer before older, then
// earlier insertion first.
type alertHeap []models.Alert

func (h alertHeap) Len() int { return len(h) }

func (h alertHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	if a.Timestamp != b.Timestamp {
		return a.Timestamp > b.Timestamp
	}
	return a.Seq < b.Seq
}

func (h alertHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *alertHeap) Push(x any) { *h = append(*h, x.(models.Alert)) }

func (h *alertHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// AlertStore keeps alerts for AlertWindow and a priority-ordered view that is
// rebuilt from scratch on every tick.
type AlertStore struct {
	alerts []models.Alert
	view   []models.Alert
}

func NewAlertStore() *AlertStore {
	return &AlertStore{}
}

func (s *AlertStore) Append(alerts ...models.Alert) {
	s.alerts = append(s.alerts, alerts...)
}

// Evict drops alerts older than AlertWindow relative to now and returns how
// many were removed.
func (s *AlertStore) Evict(now time.Time) int {
	cutoff := now.Add(-AlertWindow).UnixMilli()
	kept := s.alerts[:0]
	for _, a := range s.alerts {
		if a.Timestamp >= cutoff {
			kept = append(kept, a)
		}
	}
	evicted := len(s.alerts) - len(kept)
	clear(s.alerts[len(kept):])
	s.alerts = kept
	return evicted
}

// Rebuild heapifies a copy of the retained alerts and extracts the top k.
func (s *AlertStore) Rebuild(k int) {
	h := make(alertHeap, len(s.alerts))
	copy(h, s.alerts)
	heap.Init(&h)

	n := min(k, h.Len())
	view := make([]models.Alert, 0, n)
	for range n {
		view = append(view, heap.Pop(&h).(models.Alert))
	}
	s.view = view
}

func (s *AlertStore) View() []models.Alert {
	return append([]models.Alert(nil), s.view...)
}

func (s *AlertStore) Retained() []models.Alert {
	return append([]models.Alert(nil), s.alerts...)
}

func (s *AlertStore) Len() int { return len(s.alerts) }

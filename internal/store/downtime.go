package store

import (
	"context"
	"sort"
	"time"

	er "github.com/mcorbin/corbierror"
	"github.com/sloguard/server/pkg/downtime/aggregates"
)

func copyBreach(breach *aggregates.Breach) *aggregates.Breach {
	result := *breach
	return &result
}

func (m *Memory) AddDowntimeRecord(ctx context.Context, record *aggregates.DowntimeRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := *record
	m.downtime = append(m.downtime, &stored)
	return nil
}

// ListDowntimeSince returns the ledger entries of a SLO with recorded_at >=
// since, in insertion order.
func (m *Memory) ListDowntimeSince(ctx context.Context, sloID string, since time.Time) ([]*aggregates.DowntimeRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := []*aggregates.DowntimeRecord{}
	for _, record := range m.downtime {
		if record.SLOID != sloID {
			continue
		}
		if record.RecordedAt.Before(since) {
			continue
		}
		stored := *record
		result = append(result, &stored)
	}
	return result, nil
}

func (m *Memory) CreateBreach(ctx context.Context, breach *aggregates.Breach) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.breaches = append(m.breaches, copyBreach(breach))
	return nil
}

func (m *Memory) MarkBreachEscalated(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, breach := range m.breaches {
		if breach.ID == id {
			breach.AutoEscalated = true
			return nil
		}
	}
	return er.Newf("breach %s not found", er.NotFound, true, id)
}

// ListBreaches returns breaches sorted by started_at descending. A nil sloID
// matches every SLO; limit <= 0 means no truncation.
func (m *Memory) ListBreaches(ctx context.Context, sloID *string, limit int) ([]*aggregates.Breach, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := []*aggregates.Breach{}
	for _, breach := range m.breaches {
		if sloID != nil && breach.SLOID != *sloID {
			continue
		}
		result = append(result, copyBreach(breach))
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].StartedAt.After(result[j].StartedAt)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *Memory) ClearDowntimeHistory(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.downtime = []*aggregates.DowntimeRecord{}
	m.breaches = []*aggregates.Breach{}
	return nil
}

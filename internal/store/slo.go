package store

import (
	"context"

	er "github.com/mcorbin/corbierror"
	"github.com/sloguard/server/pkg/slo/aggregates"
)

func copySLO(slo *aggregates.SLO) *aggregates.SLO {
	result := *slo
	return &result
}

func (m *Memory) CreateSLO(ctx context.Context, slo *aggregates.SLO) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slos[slo.ID] = copySLO(slo)
	return nil
}

func (m *Memory) GetSLO(ctx context.Context, id string) (*aggregates.SLO, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	slo, ok := m.slos[id]
	if !ok {
		return nil, er.Newf("SLO %s not found", er.NotFound, true, id)
	}
	return copySLO(slo), nil
}

func (m *Memory) ListSLOs(ctx context.Context) ([]*aggregates.SLO, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := []*aggregates.SLO{}
	for _, slo := range m.slos {
		result = append(result, copySLO(slo))
	}
	return result, nil
}

func (m *Memory) UpdateSLO(ctx context.Context, slo *aggregates.SLO) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.slos[slo.ID]; !ok {
		return er.Newf("SLO %s not found", er.NotFound, true, slo.ID)
	}
	m.slos[slo.ID] = copySLO(slo)
	return nil
}

// DeleteSLO removes the definition only: downtime records and breaches
// referencing the id are kept.
func (m *Memory) DeleteSLO(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.slos[id]; !ok {
		return er.Newf("SLO %s not found", er.NotFound, true, id)
	}
	delete(m.slos, id)
	return nil
}

func (m *Memory) CountSLOs(ctx context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.slos), nil
}

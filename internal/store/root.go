// Package store provides the process-memory storage backend. State lives
// for the lifetime of the process and is lost on restart. Reads and writes
// go through a single RWMutex: the domain services assume one writer, the
// hosting HTTP server does not.
package store

import (
	"log/slog"
	"sync"

	downtimeaggregates "github.com/sloguard/server/pkg/downtime/aggregates"
	sloaggregates "github.com/sloguard/server/pkg/slo/aggregates"
)

type Memory struct {
	Logger *slog.Logger

	mu       sync.RWMutex
	slos     map[string]*sloaggregates.SLO
	downtime []*downtimeaggregates.DowntimeRecord
	breaches []*downtimeaggregates.Breach
}

func New(logger *slog.Logger) *Memory {
	return &Memory{
		Logger:   logger,
		slos:     make(map[string]*sloaggregates.SLO),
		downtime: []*downtimeaggregates.DowntimeRecord{},
		breaches: []*downtimeaggregates.Breach{},
	}
}

// Clear wipes every collection.
func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slos = make(map[string]*sloaggregates.SLO)
	m.downtime = []*downtimeaggregates.DowntimeRecord{}
	m.breaches = []*downtimeaggregates.Breach{}
}

package budget

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	downtimeaggregates "github.com/sloguard/server/pkg/downtime/aggregates"
	sloaggregates "github.com/sloguard/server/pkg/slo/aggregates"
)

type Store interface {
	GetSLO(ctx context.Context, id string) (*sloaggregates.SLO, error)
	ListDowntimeSince(ctx context.Context, sloID string, since time.Time) ([]*downtimeaggregates.DowntimeRecord, error)
}

type Service struct {
	logger         *slog.Logger
	store          Store
	clock          func() time.Time
	remainingGauge *prometheus.GaugeVec
}

func New(logger *slog.Logger, store Store, registry *prometheus.Registry, clock func() time.Time) (*Service, error) {
	if clock == nil {
		clock = func() time.Time { return time.Now().UTC() }
	}
	remainingGauge := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "error_budget_remaining_percentage",
			Help: "Remaining error budget for a SLO, in percent of its window budget.",
		},
		[]string{"slo_id", "slo_name"})
	err := registry.Register(remainingGauge)
	if err != nil {
		return nil, err
	}
	return &Service{
		logger:         logger,
		store:          store,
		clock:          clock,
		remainingGauge: remainingGauge,
	}, nil
}

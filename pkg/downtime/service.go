package downtime

import (
	"context"
	"log/slog"
	"time"

	budgetaggregates "github.com/sloguard/server/pkg/budget/aggregates"
	"github.com/sloguard/server/pkg/downtime/aggregates"
	sloaggregates "github.com/sloguard/server/pkg/slo/aggregates"
)

type Store interface {
	GetSLO(ctx context.Context, id string) (*sloaggregates.SLO, error)
	AddDowntimeRecord(ctx context.Context, record *aggregates.DowntimeRecord) error
	CreateBreach(ctx context.Context, breach *aggregates.Breach) error
	MarkBreachEscalated(ctx context.Context, id string) error
	ListBreaches(ctx context.Context, sloID *string, limit int) ([]*aggregates.Breach, error)
	ClearDowntimeHistory(ctx context.Context) error
}

type Calculator interface {
	Calculate(ctx context.Context, sloID string) (*budgetaggregates.ErrorBudget, error)
	AutoEscalate(ctx context.Context, sloID string) (*budgetaggregates.Escalation, error)
}

type Service struct {
	logger     *slog.Logger
	store      Store
	calculator Calculator
	clock      func() time.Time
}

func New(logger *slog.Logger, store Store, calculator Calculator, clock func() time.Time) *Service {
	if clock == nil {
		clock = func() time.Time { return time.Now().UTC() }
	}
	return &Service{
		logger:     logger,
		store:      store,
		calculator: calculator,
		clock:      clock,
	}
}

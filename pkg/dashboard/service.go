package dashboard

import (
	"context"
	"log/slog"

	budgetaggregates "github.com/sloguard/server/pkg/budget/aggregates"
	downtimeaggregates "github.com/sloguard/server/pkg/downtime/aggregates"
	sloaggregates "github.com/sloguard/server/pkg/slo/aggregates"
)

type Registry interface {
	ListSLOs(ctx context.Context) ([]*sloaggregates.SLO, error)
}

type Calculator interface {
	Calculate(ctx context.Context, sloID string) (*budgetaggregates.ErrorBudget, error)
}

type BreachLister interface {
	ListBreaches(ctx context.Context, sloID *string, limit int) ([]*downtimeaggregates.Breach, error)
}

type Service struct {
	logger     *slog.Logger
	registry   Registry
	calculator Calculator
	breaches   BreachLister
}

func New(logger *slog.Logger, registry Registry, calculator Calculator, breaches BreachLister) *Service {
	return &Service{
		logger:     logger,
		registry:   registry,
		calculator: calculator,
		breaches:   breaches,
	}
}

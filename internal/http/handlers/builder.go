package handlers

import (
	"context"

	budgetaggregates "github.com/sloguard/server/pkg/budget/aggregates"
	dashboardaggregates "github.com/sloguard/server/pkg/dashboard/aggregates"
	downtimeaggregates "github.com/sloguard/server/pkg/downtime/aggregates"
	sloaggregates "github.com/sloguard/server/pkg/slo/aggregates"
)

type SLOService interface {
	CreateSLO(ctx context.Context, slo *sloaggregates.SLO) error
	GetSLO(ctx context.Context, id string) (*sloaggregates.SLO, error)
	ListSLOs(ctx context.Context) ([]*sloaggregates.SLO, error)
	UpdateSLO(ctx context.Context, id string, update sloaggregates.UpdateInput) (*sloaggregates.SLO, error)
	DeleteSLO(ctx context.Context, id string) error
	InitSLO(slo *sloaggregates.SLO)
}

type DowntimeService interface {
	RecordDowntime(ctx context.Context, sloID string, durationMinutes float64, description *string) (*downtimeaggregates.Breach, error)
	ListBreaches(ctx context.Context, sloID *string, limit int) ([]*downtimeaggregates.Breach, error)
	CheckBreach(ctx context.Context, sloID string) (bool, error)
}

type BudgetService interface {
	Calculate(ctx context.Context, sloID string) (*budgetaggregates.ErrorBudget, error)
	AutoEscalate(ctx context.Context, sloID string) (*budgetaggregates.Escalation, error)
}

type DashboardService interface {
	GetDashboard(ctx context.Context) (*dashboardaggregates.Dashboard, error)
}

type Builder struct {
	slo       SLOService
	downtime  DowntimeService
	budget    BudgetService
	dashboard DashboardService
}

func NewBuilder(slo SLOService, downtime DowntimeService, budget BudgetService, dashboard DashboardService) *Builder {
	return &Builder{
		slo:       slo,
		downtime:  downtime,
		budget:    budget,
		dashboard: dashboard,
	}
}

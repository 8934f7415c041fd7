package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sloguard/server/api"
	"github.com/sloguard/server/pkg/dashboard/aggregates"
)

func toDashboard(dashboard aggregates.Dashboard) api.Dashboard {
	summaries := []api.SLOSummary{}
	for _, summary := range dashboard.SLOs {
		summaries = append(summaries, api.SLOSummary{
			SLOID:               summary.SLOID,
			Name:                summary.Name,
			Service:             summary.Service,
			Target:              summary.Target,
			Status:              string(summary.Status),
			RemainingPercentage: summary.RemainingPercentage,
			BurnRate:            summary.BurnRate,
		})
	}
	return api.Dashboard{
		OverallHealth:  dashboard.OverallHealth,
		SLOs:           summaries,
		RecentBreaches: toBreaches(dashboard.RecentBreaches),
		BudgetSummary: api.BudgetSummary{
			Total:     dashboard.BudgetSummary.Total,
			Healthy:   dashboard.BudgetSummary.Healthy,
			Warning:   dashboard.BudgetSummary.Warning,
			Critical:  dashboard.BudgetSummary.Critical,
			Exhausted: dashboard.BudgetSummary.Exhausted,
		},
	}
}

func (b *Builder) GetDashboard(ec echo.Context) error {
	dashboard, err := b.dashboard.GetDashboard(ec.Request().Context())
	if err != nil {
		return err
	}
	result := toDashboard(*dashboard)
	return ec.JSON(http.StatusOK, &result)
}

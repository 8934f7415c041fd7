package dashboard

import (
	"context"

	budgetaggregates "github.com/sloguard/server/pkg/budget/aggregates"
	"github.com/sloguard/server/pkg/dashboard/aggregates"
)

const recentBreachesLimit = 10

// GetDashboard recomputes the budget of every registered SLO and folds the
// results into a single view. Overall health is worst-of, never averaged.
// An empty registry yields a healthy dashboard with zeroed counters.
func (s *Service) GetDashboard(ctx context.Context) (*aggregates.Dashboard, error) {
	slos, err := s.registry.ListSLOs(ctx)
	if err != nil {
		return nil, err
	}

	summaries := []aggregates.SLOSummary{}
	budgetSummary := aggregates.BudgetSummary{Total: len(slos)}
	anyCritical := false
	anyWarning := false
	for i := range slos {
		slo := slos[i]
		errorBudget, err := s.calculator.Calculate(ctx, slo.ID)
		if err != nil {
			return nil, err
		}
		switch errorBudget.Status {
		case budgetaggregates.StatusHealthy:
			budgetSummary.Healthy++
		case budgetaggregates.StatusWarning:
			budgetSummary.Warning++
			anyWarning = true
		case budgetaggregates.StatusCritical:
			budgetSummary.Critical++
			anyCritical = true
		case budgetaggregates.StatusExhausted:
			budgetSummary.Exhausted++
			anyCritical = true
		}
		summaries = append(summaries, aggregates.SLOSummary{
			SLOID:               slo.ID,
			Name:                slo.Name,
			Service:             slo.Service,
			Target:              slo.Target,
			Status:              errorBudget.Status,
			RemainingPercentage: errorBudget.RemainingPercentage,
			BurnRate:            errorBudget.BurnRate,
		})
	}

	overall := "healthy"
	if anyWarning {
		overall = "warning"
	}
	if anyCritical {
		overall = "critical"
	}

	recent, err := s.breaches.ListBreaches(ctx, nil, recentBreachesLimit)
	if err != nil {
		return nil, err
	}

	return &aggregates.Dashboard{
		OverallHealth:  overall,
		SLOs:           summaries,
		RecentBreaches: recent,
		BudgetSummary:  budgetSummary,
	}, nil
}

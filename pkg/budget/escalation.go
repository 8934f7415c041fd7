package budget

import (
	"context"
	"fmt"

	"github.com/sloguard/server/pkg/budget/aggregates"
)

const EscalationAction = "page_oncall"

// NotifyTargets is the fixed recipient list of escalation payloads. Actual
// delivery is the responsibility of an external paging integration.
var NotifyTargets = []string{"oncall-sre", "service-owner", "engineering-lead"}

// AutoEscalate recomputes the budget of a SLO and builds a paging payload
// from it. It has no side effect beyond logging: the caller owns delivery.
func (s *Service) AutoEscalate(ctx context.Context, sloID string) (*aggregates.Escalation, error) {
	slo, err := s.store.GetSLO(ctx, sloID)
	if err != nil {
		return nil, err
	}
	errorBudget, err := s.Calculate(ctx, sloID)
	if err != nil {
		return nil, err
	}
	priority := "P2"
	if errorBudget.Status == aggregates.StatusExhausted {
		priority = "P1"
	}
	message := fmt.Sprintf("error budget for %s (service %s) is %s: %.2f%% remaining, burn rate %.2f",
		slo.Name, slo.Service, errorBudget.Status, errorBudget.RemainingPercentage, errorBudget.BurnRate)
	escalation := &aggregates.Escalation{
		SLOID:               slo.ID,
		SLOName:             slo.Name,
		Service:             slo.Service,
		Target:              slo.Target,
		Status:              errorBudget.Status,
		RemainingPercentage: errorBudget.RemainingPercentage,
		BurnRate:            errorBudget.BurnRate,
		Action:              EscalationAction,
		Priority:            priority,
		NotifyTargets:       NotifyTargets,
		Message:             message,
		Timestamp:           s.clock(),
	}
	s.logger.Warn(fmt.Sprintf("escalating SLO %s: %s", slo.ID, message))
	return escalation, nil
}

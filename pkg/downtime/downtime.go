package downtime

import (
	"context"
	"fmt"
	"time"

	er "github.com/mcorbin/corbierror"
	"github.com/sloguard/server/internal/util"
	budgetaggregates "github.com/sloguard/server/pkg/budget/aggregates"
	"github.com/sloguard/server/pkg/downtime/aggregates"
)

func severityFor(remainingPercentage float64) aggregates.BreachSeverity {
	switch {
	case remainingPercentage <= 0:
		return aggregates.SeverityCritical
	case remainingPercentage <= 20:
		return aggregates.SeverityHigh
	case remainingPercentage <= 50:
		return aggregates.SeverityMedium
	default:
		return aggregates.SeverityLow
	}
}

// RecordDowntime appends a ledger entry for the SLO, recomputes the error
// budget including the new entry, and stores a breach whose severity derives
// from the remaining budget. If the budget is critical or exhausted the
// breach is escalated and flagged before it is returned.
func (s *Service) RecordDowntime(ctx context.Context, sloID string, durationMinutes float64, description *string) (*aggregates.Breach, error) {
	slo, err := s.store.GetSLO(ctx, sloID)
	if err != nil {
		return nil, err
	}
	if durationMinutes < 0 {
		return nil, er.New("The downtime duration can not be negative", er.BadRequest, true)
	}
	s.logger.Info(fmt.Sprintf("recording %.4f minutes of downtime for SLO %s", durationMinutes, slo.ID))

	now := s.clock()
	record := &aggregates.DowntimeRecord{
		SLOID:           slo.ID,
		DurationMinutes: durationMinutes,
		RecordedAt:      now,
		Description:     description,
	}
	if err := s.store.AddDowntimeRecord(ctx, record); err != nil {
		return nil, err
	}

	errorBudget, err := s.calculator.Calculate(ctx, slo.ID)
	if err != nil {
		return nil, err
	}

	breach := &aggregates.Breach{
		ID:              util.NewUUID(),
		SLOID:           slo.ID,
		Service:         slo.Service,
		StartedAt:       now,
		EndedAt:         now.Add(time.Duration(durationMinutes * float64(time.Minute))),
		DurationMinutes: durationMinutes,
		Severity:        severityFor(errorBudget.RemainingPercentage),
		Description:     description,
	}
	if err := s.store.CreateBreach(ctx, breach); err != nil {
		return nil, err
	}

	if errorBudget.Status == budgetaggregates.StatusCritical || errorBudget.Status == budgetaggregates.StatusExhausted {
		if _, err := s.calculator.AutoEscalate(ctx, slo.ID); err != nil {
			return nil, err
		}
		if err := s.store.MarkBreachEscalated(ctx, breach.ID); err != nil {
			return nil, err
		}
		breach.AutoEscalated = true
	}
	return breach, nil
}

// ListBreaches returns breaches sorted by start time, most recent first,
// optionally filtered by SLO id and truncated to limit.
func (s *Service) ListBreaches(ctx context.Context, sloID *string, limit int) ([]*aggregates.Breach, error) {
	return s.store.ListBreaches(ctx, sloID, limit)
}

// CheckBreach reports whether the error budget of a SLO is exhausted right
// now. The answer is recomputed from the ledger, not a stored flag.
func (s *Service) CheckBreach(ctx context.Context, sloID string) (bool, error) {
	errorBudget, err := s.calculator.Calculate(ctx, sloID)
	if err != nil {
		return false, err
	}
	return errorBudget.Status == budgetaggregates.StatusExhausted, nil
}

// ClearHistory wipes the downtime ledger and the breach list.
func (s *Service) ClearHistory(ctx context.Context) error {
	s.logger.Info("clearing downtime and breach history")
	return s.store.ClearDowntimeHistory(ctx)
}

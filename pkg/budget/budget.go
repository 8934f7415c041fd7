package budget

import (
	"context"
	"math"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sloguard/server/pkg/budget/aggregates"
)

const minutesPerDay = 24 * 60

func round(value float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(value*factor) / factor
}

func statusFor(consumedPercentage float64) aggregates.BudgetStatus {
	switch {
	case consumedPercentage >= 100:
		return aggregates.StatusExhausted
	case consumedPercentage >= 80:
		return aggregates.StatusCritical
	case consumedPercentage >= 50:
		return aggregates.StatusWarning
	default:
		return aggregates.StatusHealthy
	}
}

// Calculate recomputes the error budget of a SLO from the downtime ledger,
// over a rolling window ending at the current time. It is a pure function of
// the SLO definition, the ledger and the clock: calling it twice with a
// frozen clock and no ledger change returns identical values.
func (s *Service) Calculate(ctx context.Context, sloID string) (*aggregates.ErrorBudget, error) {
	slo, err := s.store.GetSLO(ctx, sloID)
	if err != nil {
		return nil, err
	}
	now := s.clock()

	totalWindowMinutes := float64(slo.WindowDays * minutesPerDay)
	totalBudget := totalWindowMinutes * (1 - slo.Target/100)

	windowStart := now.Add(-time.Duration(slo.WindowDays) * 24 * time.Hour)
	records, err := s.store.ListDowntimeSince(ctx, sloID, windowStart)
	if err != nil {
		return nil, err
	}
	consumed := 0.0
	for _, record := range records {
		consumed += record.DurationMinutes
	}

	remaining := math.Max(0, totalBudget-consumed)
	remainingPercentage := 0.0
	if totalBudget > 0 {
		remainingPercentage = remaining / totalBudget * 100
	}

	// The window starts exactly WindowDays before now, so this fraction is
	// always 1.0. The computation is kept in its literal form: burn rate and
	// projection below are defined in terms of it.
	elapsedFraction := now.Sub(windowStart).Seconds() / float64(slo.WindowDays*24*3600)

	burnRate := 0.0
	if totalBudget > 0 && elapsedFraction > 0 {
		burnRate = (consumed / elapsedFraction) / totalBudget
	}

	var projectedExhaustion *time.Time
	if burnRate > 0 && remaining > 0 {
		minutesPerWindow := consumed / elapsedFraction
		if minutesPerWindow > 0 {
			remainingFraction := remaining / minutesPerWindow
			projected := now.Add(time.Duration(remainingFraction * float64(slo.WindowDays) * 24 * float64(time.Hour)))
			projectedExhaustion = &projected
		}
	}

	// Statuses derive from the rounded percentage so that a budget consumed
	// to the exact ceiling lands on the exhausted boundary instead of a few
	// float ulps before it.
	remainingPercentage = round(remainingPercentage, 2)
	consumedPercentage := 100 - remainingPercentage

	result := &aggregates.ErrorBudget{
		SLOID:               slo.ID,
		TotalMinutes:        round(totalBudget, 4),
		ConsumedMinutes:     round(consumed, 4),
		RemainingMinutes:    round(remaining, 4),
		RemainingPercentage: remainingPercentage,
		BurnRate:            round(burnRate, 2),
		ProjectedExhaustion: projectedExhaustion,
		Status:              statusFor(consumedPercentage),
	}
	s.remainingGauge.With(prometheus.Labels{"slo_id": slo.ID, "slo_name": slo.Name}).Set(result.RemainingPercentage)
	return result, nil
}

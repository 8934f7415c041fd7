package aggregates

import "time"

type BudgetStatus string

const (
	StatusHealthy   BudgetStatus = "healthy"
	StatusWarning   BudgetStatus = "warning"
	StatusCritical  BudgetStatus = "critical"
	StatusExhausted BudgetStatus = "exhausted"
)

// ErrorBudget is a derived view: it is recomputed from the downtime ledger
// on every call and never stored.
type ErrorBudget struct {
	SLOID               string
	TotalMinutes        float64
	ConsumedMinutes     float64
	RemainingMinutes    float64
	RemainingPercentage float64
	BurnRate            float64
	ProjectedExhaustion *time.Time
	Status              BudgetStatus
}

type Escalation struct {
	SLOID               string
	SLOName             string
	Service             string
	Target              float64
	Status              BudgetStatus
	RemainingPercentage float64
	BurnRate            float64
	Action              string
	Priority            string
	NotifyTargets       []string
	Message             string
	Timestamp           time.Time
}

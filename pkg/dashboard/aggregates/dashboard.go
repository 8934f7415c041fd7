package aggregates

import (
	budgetaggregates "github.com/sloguard/server/pkg/budget/aggregates"
	downtimeaggregates "github.com/sloguard/server/pkg/downtime/aggregates"
)

type SLOSummary struct {
	SLOID               string
	Name                string
	Service             string
	Target              float64
	Status              budgetaggregates.BudgetStatus
	RemainingPercentage float64
	BurnRate            float64
}

type BudgetSummary struct {
	Total     int
	Healthy   int
	Warning   int
	Critical  int
	Exhausted int
}

type Dashboard struct {
	OverallHealth  string
	SLOs           []SLOSummary
	RecentBreaches []*downtimeaggregates.Breach
	BudgetSummary  BudgetSummary
}

// Package api defines the request and response payloads of the HTTP API.
package api

import "time"

type Response struct {
	Messages []string `json:"messages"`
}

type CreateSLOInput struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Service     string  `json:"service" validate:"required,max=255"`
	Target      float64 `json:"target" validate:"required,gt=0,lte=100"`
	WindowDays  int     `json:"window_days" validate:"required,gte=1"`
	MetricType  string  `json:"metric_type,omitempty"`
	Description string  `json:"description,omitempty"`
}

type GetSLOInput struct {
	ID string `param:"id" validate:"required"`
}

type UpdateSLOInput struct {
	ID          string   `param:"id" json:"-" validate:"required"`
	Name        *string  `json:"name,omitempty"`
	Target      *float64 `json:"target,omitempty"`
	WindowDays  *int     `json:"window_days,omitempty"`
	Description *string  `json:"description,omitempty"`
}

type DeleteSLOInput struct {
	ID string `param:"id" validate:"required"`
}

type SLO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Service     string    `json:"service"`
	Target      float64   `json:"target"`
	WindowDays  int       `json:"window_days"`
	MetricType  string    `json:"metric_type"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ListSLOsOutput struct {
	Result []SLO `json:"result"`
}

type RecordDowntimeInput struct {
	SLOID           string  `json:"slo_id" validate:"required"`
	DurationMinutes float64 `json:"duration_minutes" validate:"gte=0"`
	Description     string  `json:"description,omitempty"`
}

type Breach struct {
	ID              string    `json:"id"`
	SLOID           string    `json:"slo_id"`
	Service         string    `json:"service"`
	StartedAt       time.Time `json:"started_at"`
	EndedAt         time.Time `json:"ended_at"`
	DurationMinutes float64   `json:"duration_minutes"`
	Severity        string    `json:"severity"`
	Description     string    `json:"description,omitempty"`
	AutoEscalated   bool      `json:"auto_escalated"`
}

type ListBreachesInput struct {
	SLOID string `query:"slo-id"`
	Limit int    `query:"limit"`
}

type ListBreachesOutput struct {
	Result []Breach `json:"result"`
}

type CheckBreachInput struct {
	ID string `param:"id" validate:"required"`
}

type CheckBreachOutput struct {
	SLOID    string `json:"slo_id"`
	Breached bool   `json:"breached"`
}

type ErrorBudget struct {
	SLOID               string     `json:"slo_id"`
	TotalMinutes        float64    `json:"total_minutes"`
	ConsumedMinutes     float64    `json:"consumed_minutes"`
	RemainingMinutes    float64    `json:"remaining_minutes"`
	RemainingPercentage float64    `json:"remaining_percentage"`
	BurnRate            float64    `json:"burn_rate"`
	ProjectedExhaustion *time.Time `json:"projected_exhaustion,omitempty"`
	Status              string     `json:"status"`
}

type GetErrorBudgetInput struct {
	ID string `param:"id" validate:"required"`
}

type EscalateInput struct {
	ID string `param:"id" validate:"required"`
}

type Escalation struct {
	SLOID               string    `json:"slo_id"`
	SLOName             string    `json:"slo_name"`
	Service             string    `json:"service"`
	Target              float64   `json:"target"`
	Status              string    `json:"status"`
	RemainingPercentage float64   `json:"remaining_percentage"`
	BurnRate            float64   `json:"burn_rate"`
	Action              string    `json:"action"`
	Priority            string    `json:"priority"`
	NotifyTargets       []string  `json:"notify_targets"`
	Message             string    `json:"message"`
	Timestamp           time.Time `json:"timestamp"`
}

type SLOSummary struct {
	SLOID               string  `json:"slo_id"`
	Name                string  `json:"name"`
	Service             string  `json:"service"`
	Target              float64 `json:"target"`
	Status              string  `json:"status"`
	RemainingPercentage float64 `json:"remaining_percentage"`
	BurnRate            float64 `json:"burn_rate"`
}

type BudgetSummary struct {
	Total     int `json:"total"`
	Healthy   int `json:"healthy"`
	Warning   int `json:"warning"`
	Critical  int `json:"critical"`
	Exhausted int `json:"exhausted"`
}

type Dashboard struct {
	OverallHealth  string        `json:"overall_health"`
	SLOs           []SLOSummary  `json:"slos"`
	RecentBreaches []Breach      `json:"recent_breaches"`
	BudgetSummary  BudgetSummary `json:"budget_summary"`
}

package aggregates

import "time"

type SLO struct {
	ID          string
	Name        string `validate:"required,max=255"`
	Service     string `validate:"required,max=255"`
	Target      float64
	WindowDays  int
	MetricType  string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// UpdateInput carries a partial update: nil fields are left untouched.
type UpdateInput struct {
	Name        *string
	Target      *float64
	WindowDays  *int
	Description *string
}

package aggregates

import "time"

type BreachSeverity string

const (
	SeverityLow      BreachSeverity = "low"
	SeverityMedium   BreachSeverity = "medium"
	SeverityHigh     BreachSeverity = "high"
	SeverityCritical BreachSeverity = "critical"
)

// DowntimeRecord is an immutable ledger entry. RecordedAt is set by the
// service at insertion time, never by the caller.
type DowntimeRecord struct {
	SLOID           string
	DurationMinutes float64
	RecordedAt      time.Time
	Description     *string
}

type Breach struct {
	ID              string
	SLOID           string
	Service         string
	StartedAt       time.Time
	EndedAt         time.Time
	DurationMinutes float64
	Severity        BreachSeverity
	Description     *string
	AutoEscalated   bool
}

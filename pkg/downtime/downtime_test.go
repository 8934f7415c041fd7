package downtime_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/baidubce/bce-sdk-go/util"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sloguard/server/internal/store"
	"github.com/sloguard/server/pkg/budget"
	"github.com/sloguard/server/pkg/downtime"
	"github.com/sloguard/server/pkg/downtime/aggregates"
	"github.com/sloguard/server/pkg/slo"
	sloaggregates "github.com/sloguard/server/pkg/slo/aggregates"
	"github.com/stretchr/testify/assert"
)

var frozenNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

type testEngine struct {
	store    *store.Memory
	slo      *slo.Service
	budget   *budget.Service
	downtime *downtime.Service
	current  *time.Time
}

func newTestEngine(t *testing.T) *testEngine {
	t.Helper()
	current := frozenNow
	clock := func() time.Time { return current }
	logger := slog.Default()
	memoryStore := store.New(logger)
	sloService := slo.New(logger, memoryStore, clock)
	budgetService, err := budget.New(logger, memoryStore, prometheus.NewRegistry(), clock)
	assert.NoError(t, err)
	downtimeService := downtime.New(logger, memoryStore, budgetService, clock)
	return &testEngine{
		store:    memoryStore,
		slo:      sloService,
		budget:   budgetService,
		downtime: downtimeService,
		current:  &current,
	}
}

func (e *testEngine) createSLO(t *testing.T, name string, target float64, windowDays int) *sloaggregates.SLO {
	t.Helper()
	definition := &sloaggregates.SLO{
		Name:       name,
		Service:    "checkout",
		Target:     target,
		WindowDays: windowDays,
	}
	e.slo.InitSLO(definition)
	err := e.slo.CreateSLO(context.Background(), definition)
	assert.NoError(t, err)
	return definition
}

func TestRecordDowntimeEndToEnd(t *testing.T) {
	engine := newTestEngine(t)
	definition := engine.createSLO(t, "checkout-availability", 99.9, 30)

	description := "full outage"
	breach, err := engine.downtime.RecordDowntime(context.Background(), definition.ID, 50, &description)
	assert.NoError(t, err)
	assert.NotEmpty(t, breach.ID)
	assert.Equal(t, definition.ID, breach.SLOID)
	assert.Equal(t, "checkout", breach.Service)
	assert.Equal(t, frozenNow, breach.StartedAt)
	assert.Equal(t, frozenNow.Add(50*time.Minute), breach.EndedAt)
	assert.Equal(t, aggregates.SeverityCritical, breach.Severity)
	assert.True(t, breach.AutoEscalated)

	errorBudget, err := engine.budget.Calculate(context.Background(), definition.ID)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, errorBudget.RemainingMinutes)
	assert.Equal(t, 0.0, errorBudget.RemainingPercentage)

	breached, err := engine.downtime.CheckBreach(context.Background(), definition.ID)
	assert.NoError(t, err)
	assert.True(t, breached)
}

func TestRecordDowntimeSeverityProgression(t *testing.T) {
	engine := newTestEngine(t)
	definition := engine.createSLO(t, "checkout-availability", 99.9, 30)

	// 43.2 minute budget consumed in four steps
	steps := []struct {
		minutes   float64
		severity  aggregates.BreachSeverity
		escalated bool
	}{
		{minutes: 10, severity: aggregates.SeverityLow, escalated: false},
		{minutes: 15, severity: aggregates.SeverityMedium, escalated: false},
		{minutes: 10, severity: aggregates.SeverityHigh, escalated: true},
		{minutes: 10, severity: aggregates.SeverityCritical, escalated: true},
	}
	for i, step := range steps {
		*engine.current = frozenNow.Add(time.Duration(i) * time.Minute)
		breach, err := engine.downtime.RecordDowntime(context.Background(), definition.ID, step.minutes, nil)
		assert.NoError(t, err)
		assert.Equal(t, step.severity, breach.Severity, "step %d", i)
		assert.Equal(t, step.escalated, breach.AutoEscalated, "step %d", i)
	}

	// the stored breaches carry the escalation flags, most recent first
	breaches, err := engine.downtime.ListBreaches(context.Background(), &definition.ID, 0)
	assert.NoError(t, err)
	assert.Len(t, breaches, 4)
	assert.Equal(t, aggregates.SeverityCritical, breaches[0].Severity)
	assert.True(t, breaches[0].AutoEscalated)
	assert.Equal(t, aggregates.SeverityLow, breaches[3].Severity)
	assert.False(t, breaches[3].AutoEscalated)
}

func TestRecordDowntimeUnknownSLO(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.downtime.RecordDowntime(context.Background(), util.NewUUID(), 10, nil)
	assert.ErrorContains(t, err, "not found")
}

func TestRecordDowntimeNegativeDuration(t *testing.T) {
	engine := newTestEngine(t)
	definition := engine.createSLO(t, "checkout-availability", 99.9, 30)

	_, err := engine.downtime.RecordDowntime(context.Background(), definition.ID, -1, nil)
	assert.ErrorContains(t, err, "negative")
}

func TestListBreachesFilterAndLimit(t *testing.T) {
	engine := newTestEngine(t)
	first := engine.createSLO(t, "checkout-availability", 99.9, 30)
	second := engine.createSLO(t, "search-availability", 99.5, 30)

	for i := 0; i < 3; i++ {
		*engine.current = frozenNow.Add(time.Duration(i) * time.Minute)
		_, err := engine.downtime.RecordDowntime(context.Background(), first.ID, 1, nil)
		assert.NoError(t, err)
	}
	*engine.current = frozenNow.Add(10 * time.Minute)
	_, err := engine.downtime.RecordDowntime(context.Background(), second.ID, 2, nil)
	assert.NoError(t, err)

	all, err := engine.downtime.ListBreaches(context.Background(), nil, 0)
	assert.NoError(t, err)
	assert.Len(t, all, 4)
	assert.Equal(t, second.ID, all[0].SLOID)

	filtered, err := engine.downtime.ListBreaches(context.Background(), &first.ID, 0)
	assert.NoError(t, err)
	assert.Len(t, filtered, 3)

	limited, err := engine.downtime.ListBreaches(context.Background(), &first.ID, 2)
	assert.NoError(t, err)
	assert.Len(t, limited, 2)
	assert.True(t, limited[0].StartedAt.After(limited[1].StartedAt))
}

func TestDeleteSLOKeepsHistory(t *testing.T) {
	engine := newTestEngine(t)
	definition := engine.createSLO(t, "checkout-availability", 99.9, 30)

	_, err := engine.downtime.RecordDowntime(context.Background(), definition.ID, 10, nil)
	assert.NoError(t, err)

	err = engine.slo.DeleteSLO(context.Background(), definition.ID)
	assert.NoError(t, err)

	breaches, err := engine.downtime.ListBreaches(context.Background(), &definition.ID, 0)
	assert.NoError(t, err)
	assert.Len(t, breaches, 1)

	_, err = engine.budget.Calculate(context.Background(), definition.ID)
	assert.ErrorContains(t, err, "not found")

	_, err = engine.downtime.CheckBreach(context.Background(), definition.ID)
	assert.ErrorContains(t, err, "not found")
}

func TestClearHistory(t *testing.T) {
	engine := newTestEngine(t)
	definition := engine.createSLO(t, "checkout-availability", 99.9, 30)

	_, err := engine.downtime.RecordDowntime(context.Background(), definition.ID, 10, nil)
	assert.NoError(t, err)

	err = engine.downtime.ClearHistory(context.Background())
	assert.NoError(t, err)

	breaches, err := engine.downtime.ListBreaches(context.Background(), nil, 0)
	assert.NoError(t, err)
	assert.Len(t, breaches, 0)

	errorBudget, err := engine.budget.Calculate(context.Background(), definition.ID)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, errorBudget.ConsumedMinutes)
}

package budget_test

import (
	"context"
	"testing"
	"time"

	"github.com/baidubce/bce-sdk-go/util"
	"github.com/sloguard/server/pkg/budget"
	budgetaggregates "github.com/sloguard/server/pkg/budget/aggregates"
	"github.com/stretchr/testify/assert"
)

func TestAutoEscalateExhausted(t *testing.T) {
	memoryStore, service := newTestService(t)
	slo := createSLO(t, memoryStore, 99.9, 30)
	addDowntime(t, memoryStore, slo.ID, 50, frozenNow.Add(-time.Minute))

	escalation, err := service.AutoEscalate(context.Background(), slo.ID)
	assert.NoError(t, err)
	assert.Equal(t, slo.ID, escalation.SLOID)
	assert.Equal(t, slo.Name, escalation.SLOName)
	assert.Equal(t, slo.Service, escalation.Service)
	assert.Equal(t, budgetaggregates.StatusExhausted, escalation.Status)
	assert.Equal(t, budget.EscalationAction, escalation.Action)
	assert.Equal(t, "P1", escalation.Priority)
	assert.Equal(t, []string{"oncall-sre", "service-owner", "engineering-lead"}, escalation.NotifyTargets)
	assert.Contains(t, escalation.Message, "exhausted")
	assert.Equal(t, frozenNow, escalation.Timestamp)
}

func TestAutoEscalateCritical(t *testing.T) {
	memoryStore, service := newTestService(t)
	slo := createSLO(t, memoryStore, 99.9, 30)
	// 81% of the 43.2 minute budget
	addDowntime(t, memoryStore, slo.ID, 35, frozenNow.Add(-time.Minute))

	escalation, err := service.AutoEscalate(context.Background(), slo.ID)
	assert.NoError(t, err)
	assert.Equal(t, budgetaggregates.StatusCritical, escalation.Status)
	assert.Equal(t, "P2", escalation.Priority)
}

func TestAutoEscalateUnknownSLO(t *testing.T) {
	_, service := newTestService(t)

	_, err := service.AutoEscalate(context.Background(), util.NewUUID())
	assert.ErrorContains(t, err, "not found")
}

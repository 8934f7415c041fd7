package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sloguard/server/api"
	"github.com/sloguard/server/pkg/budget/aggregates"
)

func toErrorBudget(errorBudget aggregates.ErrorBudget) api.ErrorBudget {
	return api.ErrorBudget{
		SLOID:               errorBudget.SLOID,
		TotalMinutes:        errorBudget.TotalMinutes,
		ConsumedMinutes:     errorBudget.ConsumedMinutes,
		RemainingMinutes:    errorBudget.RemainingMinutes,
		RemainingPercentage: errorBudget.RemainingPercentage,
		BurnRate:            errorBudget.BurnRate,
		ProjectedExhaustion: errorBudget.ProjectedExhaustion,
		Status:              string(errorBudget.Status),
	}
}

func (b *Builder) GetErrorBudget(ec echo.Context) error {
	var payload api.GetErrorBudgetInput
	if err := ec.Bind(&payload); err != nil {
		return err
	}
	if err := ec.Validate(payload); err != nil {
		return err
	}

	errorBudget, err := b.budget.Calculate(ec.Request().Context(), payload.ID)
	if err != nil {
		return err
	}
	result := toErrorBudget(*errorBudget)
	return ec.JSON(http.StatusOK, &result)
}

func (b *Builder) Escalate(ec echo.Context) error {
	var payload api.EscalateInput
	if err := ec.Bind(&payload); err != nil {
		return err
	}
	if err := ec.Validate(payload); err != nil {
		return err
	}

	escalation, err := b.budget.AutoEscalate(ec.Request().Context(), payload.ID)
	if err != nil {
		return err
	}
	result := api.Escalation{
		SLOID:               escalation.SLOID,
		SLOName:             escalation.SLOName,
		Service:             escalation.Service,
		Target:              escalation.Target,
		Status:              string(escalation.Status),
		RemainingPercentage: escalation.RemainingPercentage,
		BurnRate:            escalation.BurnRate,
		Action:              escalation.Action,
		Priority:            escalation.Priority,
		NotifyTargets:       escalation.NotifyTargets,
		Message:             escalation.Message,
		Timestamp:           escalation.Timestamp,
	}
	return ec.JSON(http.StatusOK, &result)
}

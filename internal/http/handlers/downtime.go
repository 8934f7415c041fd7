package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sloguard/server/api"
	"github.com/sloguard/server/pkg/downtime/aggregates"
)

func toBreach(breach aggregates.Breach) api.Breach {
	result := api.Breach{
		ID:              breach.ID,
		SLOID:           breach.SLOID,
		Service:         breach.Service,
		StartedAt:       breach.StartedAt,
		EndedAt:         breach.EndedAt,
		DurationMinutes: breach.DurationMinutes,
		Severity:        string(breach.Severity),
		AutoEscalated:   breach.AutoEscalated,
	}
	if breach.Description != nil {
		result.Description = *breach.Description
	}
	return result
}

func toBreaches(breaches []*aggregates.Breach) []api.Breach {
	result := []api.Breach{}
	for i := range breaches {
		breach := *breaches[i]
		result = append(result, toBreach(breach))
	}
	return result
}

func (b *Builder) RecordDowntime(ec echo.Context) error {
	var payload api.RecordDowntimeInput
	if err := ec.Bind(&payload); err != nil {
		return err
	}
	if err := ec.Validate(payload); err != nil {
		return err
	}

	var description *string
	if payload.Description != "" {
		description = &payload.Description
	}
	breach, err := b.downtime.RecordDowntime(ec.Request().Context(), payload.SLOID, payload.DurationMinutes, description)
	if err != nil {
		return err
	}
	result := toBreach(*breach)
	return ec.JSON(http.StatusCreated, &result)
}

func (b *Builder) ListBreaches(ec echo.Context) error {
	var payload api.ListBreachesInput
	if err := ec.Bind(&payload); err != nil {
		return err
	}

	var sloID *string
	if payload.SLOID != "" {
		sloID = &payload.SLOID
	}
	breaches, err := b.downtime.ListBreaches(ec.Request().Context(), sloID, payload.Limit)
	if err != nil {
		return err
	}
	result := api.ListBreachesOutput{
		Result: toBreaches(breaches),
	}
	return ec.JSON(http.StatusOK, &result)
}

func (b *Builder) CheckBreach(ec echo.Context) error {
	var payload api.CheckBreachInput
	if err := ec.Bind(&payload); err != nil {
		return err
	}
	if err := ec.Validate(payload); err != nil {
		return err
	}

	breached, err := b.downtime.CheckBreach(ec.Request().Context(), payload.ID)
	if err != nil {
		return err
	}
	result := api.CheckBreachOutput{
		SLOID:    payload.ID,
		Breached: breached,
	}
	return ec.JSON(http.StatusOK, &result)
}

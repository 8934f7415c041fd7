package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sloguard/server/api"
	"github.com/sloguard/server/pkg/slo/aggregates"
)

func toSLO(slo aggregates.SLO) api.SLO {
	result := api.SLO{
		ID:         slo.ID,
		Name:       slo.Name,
		Service:    slo.Service,
		Target:     slo.Target,
		WindowDays: slo.WindowDays,
		MetricType: slo.MetricType,
		CreatedAt:  slo.CreatedAt,
		UpdatedAt:  slo.UpdatedAt,
	}
	if slo.Description != nil {
		result.Description = *slo.Description
	}
	return result
}

func toSLOs(slos []*aggregates.SLO) []api.SLO {
	result := []api.SLO{}
	for i := range slos {
		slo := *slos[i]
		result = append(result, toSLO(slo))
	}
	return result
}

func (b *Builder) CreateSLO(ec echo.Context) error {
	var payload api.CreateSLOInput
	if err := ec.Bind(&payload); err != nil {
		return err
	}
	if err := ec.Validate(payload); err != nil {
		return err
	}

	slo := aggregates.SLO{
		Name:       payload.Name,
		Service:    payload.Service,
		Target:     payload.Target,
		WindowDays: payload.WindowDays,
		MetricType: payload.MetricType,
	}
	if payload.Description != "" {
		slo.Description = &payload.Description
	}

	b.slo.InitSLO(&slo)
	err := b.slo.CreateSLO(ec.Request().Context(), &slo)
	if err != nil {
		return err
	}
	result := toSLO(slo)
	return ec.JSON(http.StatusCreated, &result)
}

func (b *Builder) GetSLO(ec echo.Context) error {
	var payload api.GetSLOInput
	if err := ec.Bind(&payload); err != nil {
		return err
	}
	if err := ec.Validate(payload); err != nil {
		return err
	}

	slo, err := b.slo.GetSLO(ec.Request().Context(), payload.ID)
	if err != nil {
		return err
	}
	result := toSLO(*slo)
	return ec.JSON(http.StatusOK, &result)
}

func (b *Builder) ListSLOs(ec echo.Context) error {
	slos, err := b.slo.ListSLOs(ec.Request().Context())
	if err != nil {
		return err
	}
	result := api.ListSLOsOutput{
		Result: toSLOs(slos),
	}
	return ec.JSON(http.StatusOK, &result)
}

func (b *Builder) UpdateSLO(ec echo.Context) error {
	var payload api.UpdateSLOInput
	if err := ec.Bind(&payload); err != nil {
		return err
	}
	if err := ec.Validate(payload); err != nil {
		return err
	}

	update := aggregates.UpdateInput{
		Name:        payload.Name,
		Target:      payload.Target,
		WindowDays:  payload.WindowDays,
		Description: payload.Description,
	}
	slo, err := b.slo.UpdateSLO(ec.Request().Context(), payload.ID, update)
	if err != nil {
		return err
	}
	result := toSLO(*slo)
	return ec.JSON(http.StatusOK, &result)
}

func (b *Builder) DeleteSLO(ec echo.Context) error {
	var payload api.DeleteSLOInput
	if err := ec.Bind(&payload); err != nil {
		return err
	}
	if err := ec.Validate(payload); err != nil {
		return err
	}

	err := b.slo.DeleteSLO(ec.Request().Context(), payload.ID)
	if err != nil {
		return err
	}
	return ec.JSON(http.StatusOK, NewResponse(fmt.Sprintf("SLO %s deleted", payload.ID)))
}

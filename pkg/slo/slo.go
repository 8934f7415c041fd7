package slo

import (
	"context"
	"fmt"

	"github.com/sloguard/server/internal/util"
	"github.com/sloguard/server/internal/validator"
	"github.com/sloguard/server/pkg/slo/aggregates"
	er "github.com/mcorbin/corbierror"
)

const DefaultMetricType = "availability"

func checkTarget(target float64) error {
	if target <= 0 || target > 100 {
		return er.New("The SLO target should be greater than 0 and at most 100", er.BadRequest, true)
	}
	return nil
}

func checkWindow(windowDays int) error {
	if windowDays < 1 {
		return er.New("The SLO window should be at least 1 day", er.BadRequest, true)
	}
	return nil
}

func (s *Service) InitSLO(slo *aggregates.SLO) {
	now := s.clock()
	slo.ID = util.NewUUID()
	slo.CreatedAt = now
	slo.UpdatedAt = now
	if slo.MetricType == "" {
		slo.MetricType = DefaultMetricType
	}
}

func (s *Service) CreateSLO(ctx context.Context, slo *aggregates.SLO) error {
	s.logger.Info(fmt.Sprintf("creating SLO %s for service %s", slo.Name, slo.Service))
	if err := checkTarget(slo.Target); err != nil {
		return err
	}
	if err := checkWindow(slo.WindowDays); err != nil {
		return err
	}
	err := validator.Validator.Struct(*slo)
	if err != nil {
		return err
	}
	return s.store.CreateSLO(ctx, slo)
}

func (s *Service) GetSLO(ctx context.Context, id string) (*aggregates.SLO, error) {
	return s.store.GetSLO(ctx, id)
}

func (s *Service) ListSLOs(ctx context.Context) ([]*aggregates.SLO, error) {
	return s.store.ListSLOs(ctx)
}

// UpdateSLO applies a partial update. Only name, target, window and
// description can change; absent fields keep their current value.
func (s *Service) UpdateSLO(ctx context.Context, id string, update aggregates.UpdateInput) (*aggregates.SLO, error) {
	s.logger.Info(fmt.Sprintf("updating SLO %s", id))
	slo, err := s.store.GetSLO(ctx, id)
	if err != nil {
		return nil, err
	}
	if update.Name != nil {
		slo.Name = *update.Name
	}
	if update.Target != nil {
		if err := checkTarget(*update.Target); err != nil {
			return nil, err
		}
		slo.Target = *update.Target
	}
	if update.WindowDays != nil {
		if err := checkWindow(*update.WindowDays); err != nil {
			return nil, err
		}
		slo.WindowDays = *update.WindowDays
	}
	if update.Description != nil {
		slo.Description = update.Description
	}
	slo.UpdatedAt = s.clock()
	err = validator.Validator.Struct(*slo)
	if err != nil {
		return nil, err
	}
	if err := s.store.UpdateSLO(ctx, slo); err != nil {
		return nil, err
	}
	return slo, nil
}

// DeleteSLO removes the definition only. Downtime and breach history
// referencing the id stays in place.
func (s *Service) DeleteSLO(ctx context.Context, id string) error {
	s.logger.Info(fmt.Sprintf("deleting SLO %s", id))
	return s.store.DeleteSLO(ctx, id)
}

func (s *Service) CountSLOs(ctx context.Context) (int, error) {
	return s.store.CountSLOs(ctx)
}

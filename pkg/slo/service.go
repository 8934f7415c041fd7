package slo

import (
	"context"
	"log/slog"
	"time"

	"github.com/sloguard/server/pkg/slo/aggregates"
)

type Store interface {
	CreateSLO(ctx context.Context, slo *aggregates.SLO) error
	GetSLO(ctx context.Context, id string) (*aggregates.SLO, error)
	ListSLOs(ctx context.Context) ([]*aggregates.SLO, error)
	UpdateSLO(ctx context.Context, slo *aggregates.SLO) error
	DeleteSLO(ctx context.Context, id string) error
	CountSLOs(ctx context.Context) (int, error)
}

type Service struct {
	logger *slog.Logger
	store  Store
	clock  func() time.Time
}

func New(logger *slog.Logger, store Store, clock func() time.Time) *Service {
	if clock == nil {
		clock = func() time.Time { return time.Now().UTC() }
	}
	return &Service{
		logger: logger,
		store:  store,
		clock:  clock,
	}
}

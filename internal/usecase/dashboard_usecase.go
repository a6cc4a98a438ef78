package usecase

import (
	"context"
	"net/http"

	repo "warkop/internal/repository"

	"github.com/rs/zerolog"
)

type DashboardUsecase struct {
	stats repo.StatsRepository
	log   zerolog.Logger
}

// DI
func NewDashboardUsecase(stats repo.StatsRepository, log zerolog.Logger) *DashboardUsecase {
	return &DashboardUsecase{stats: stats, log: log}
}

func (u *DashboardUsecase) Stats(ctx context.Context) (repo.DashboardStats, error) {
	stats, err := u.stats.Load(ctx)
	if err != nil {
		u.log.Error().Err(err).Msg("load dashboard stats failed")
		return repo.DashboardStats{}, NewHTTPError(http.StatusInternalServerError, msgServerError)
	}
	return stats, nil
}

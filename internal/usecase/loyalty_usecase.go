package usecase

import (
	"context"
	"net/http"

	"warkop/internal/domain/model"
	repo "warkop/internal/repository"

	"github.com/rs/zerolog"
)

type LoyaltyUsecase struct {
	loyalty repo.LoyaltyRepository
	log     zerolog.Logger
}

// DI
func NewLoyaltyUsecase(loyalty repo.LoyaltyRepository, log zerolog.Logger) *LoyaltyUsecase {
	return &LoyaltyUsecase{loyalty: loyalty, log: log}
}

// GetByUserはユーザーのロイヤルティを返す。
// まだ1度も注文していなければゼロ値のBronzeを返す（404にしない）。
func (u *LoyaltyUsecase) GetByUser(ctx context.Context, userID int64) (model.CustomerLoyalty, error) {
	if userID <= 0 {
		return model.CustomerLoyalty{}, NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	l, err := u.loyalty.FindByUserID(ctx, userID)
	if err == repo.ErrNotFound {
		return model.CustomerLoyalty{
			UserID: userID,
			Tier:   model.TierBronze,
		}, nil
	}
	if err != nil {
		u.log.Error().Err(err).Int64("user_id", userID).Msg("find loyalty failed")
		return model.CustomerLoyalty{}, NewHTTPError(http.StatusInternalServerError, msgServerError)
	}
	return l, nil
}

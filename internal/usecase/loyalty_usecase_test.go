package usecase_test

import (
	"context"
	"testing"
	"time"

	"warkop/internal/domain/model"
	repo "warkop/internal/repository"
	"warkop/internal/usecase"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// 行が無いユーザーはゼロ値のBronzeとして返す
func TestLoyaltyUsecase_GetByUser_NoRowYet(t *testing.T) {
	lRepo := new(LoyaltyRepoMock)
	uc := usecase.NewLoyaltyUsecase(lRepo, zerolog.Nop())

	lRepo.On("FindByUserID", mock.Anything, int64(7)).Return(model.CustomerLoyalty{}, repo.ErrNotFound)

	out, err := uc.GetByUser(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), out.UserID)
	assert.Equal(t, model.TierBronze, out.Tier)
	assert.Equal(t, int64(0), out.Points)
	assert.Equal(t, int64(0), out.TotalSpent)
}

func TestLoyaltyUsecase_GetByUser_Existing(t *testing.T) {
	lRepo := new(LoyaltyRepoMock)
	uc := usecase.NewLoyaltyUsecase(lRepo, zerolog.Nop())

	lRepo.On("FindByUserID", mock.Anything, int64(7)).Return(model.CustomerLoyalty{
		UserID:      7,
		Points:      536,
		TotalSpent:  536_000,
		TotalOrders: 12,
		Tier:        model.TierSilver,
		LastVisit:   time.Date(2026, 8, 1, 9, 0, 0, 0, time.Local),
	}, nil)

	out, err := uc.GetByUser(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, model.TierSilver, out.Tier)
	assert.Equal(t, int64(536), out.Points)
}

func TestLoyaltyUsecase_GetByUser_InvalidID(t *testing.T) {
	lRepo := new(LoyaltyRepoMock)
	uc := usecase.NewLoyaltyUsecase(lRepo, zerolog.Nop())

	_, err := uc.GetByUser(context.Background(), 0)
	assertStatus(t, err, 400)
}

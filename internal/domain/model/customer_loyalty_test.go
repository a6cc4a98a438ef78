package model_test

import (
	"testing"

	"warkop/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

func TestPointsForAmount(t *testing.T) {
	assert.Equal(t, int64(0), model.PointsForAmount(0))
	assert.Equal(t, int64(0), model.PointsForAmount(999))
	assert.Equal(t, int64(1), model.PointsForAmount(1000))
	assert.Equal(t, int64(1), model.PointsForAmount(1999))
	assert.Equal(t, int64(36), model.PointsForAmount(36000))
	assert.Equal(t, int64(0), model.PointsForAmount(-500))
}

// ティアの境界値。しきい値ちょうどで昇格する。
func TestTierForSpent_Boundaries(t *testing.T) {
	assert.Equal(t, model.TierBronze, model.TierForSpent(0))
	assert.Equal(t, model.TierBronze, model.TierForSpent(499_999))
	assert.Equal(t, model.TierSilver, model.TierForSpent(500_000))
	assert.Equal(t, model.TierSilver, model.TierForSpent(999_999))
	assert.Equal(t, model.TierGold, model.TierForSpent(1_000_000))
	assert.Equal(t, model.TierGold, model.TierForSpent(5_000_000))
}

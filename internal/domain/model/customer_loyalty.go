package model

import "time"

type LoyaltyTier string

const (
	TierBronze LoyaltyTier = "Bronze"
	TierSilver LoyaltyTier = "Silver"
	TierGold   LoyaltyTier = "Gold"
)

// ティアのしきい値（累計支出、ルピア）
const (
	SilverThreshold = 500_000
	GoldThreshold   = 1_000_000
)

// 1ポイント＝1000ルピアの支出
const PointsPerUnit = 1000

// ユーザーごとに1行。points / total_spent は増えるだけ。
type CustomerLoyalty struct {
	ID          int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      int64       `gorm:"not null;uniqueIndex" json:"user_id"`
	Points      int64       `gorm:"not null;default:0" json:"points"`
	TotalSpent  int64       `gorm:"not null;default:0" json:"total_spent"`
	TotalOrders int64       `gorm:"not null;default:0" json:"total_orders"`
	Tier        LoyaltyTier `gorm:"type:varchar(10);not null;default:'Bronze'" json:"tier"`
	LastVisit   time.Time   `gorm:"not null" json:"last_visit"`
	CreatedAt   time.Time   `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time   `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (CustomerLoyalty) TableName() string { return "customer_loyalty" }

// PointsForAmountは注文額から獲得ポイントを求める。
func PointsForAmount(amount int64) int64 {
	if amount <= 0 {
		return 0
	}
	return amount / PointsPerUnit
}

// TierForSpentは累計支出からティアを求める。
// total_spentは減らないのでティアは実質単調増加。
func TierForSpent(totalSpent int64) LoyaltyTier {
	switch {
	case totalSpent >= GoldThreshold:
		return TierGold
	case totalSpent >= SilverThreshold:
		return TierSilver
	default:
		return TierBronze
	}
}

package repository

import "context"

// ダッシュボードの集計値
type DashboardStats struct {
	TodaySales     int64   `json:"todaySales"`
	TodayOrders    int64   `json:"todayOrders"`
	TotalProducts  int64   `json:"totalProducts"`
	TotalCustomers int64   `json:"totalCustomers"`
	AvgOrderValue  float64 `json:"avgOrderValue"`
}

type StatsRepository interface {
	// 「今日」はサーバーのローカルタイムゾーンで判定する
	Load(ctx context.Context) (DashboardStats, error)
}

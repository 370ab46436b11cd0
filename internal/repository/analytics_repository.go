package repository

import (
	"context"

	"shoplink/internal/domain"
)

// DateRange bounds a report query; empty strings mean unbounded.
type DateRange struct {
	Start string
	End   string
}

type AnalyticsRepository interface {
	ShopIDsByOwner(ctx context.Context, ownerID uint64) ([]uint64, error)

	SalesTotals(ctx context.Context, shopIDs []uint64, r DateRange) (domain.SalesTotals, error)
	MonthlySales(ctx context.Context, shopIDs []uint64, r DateRange) ([]domain.MonthlySales, error)
	TopProducts(ctx context.Context, shopIDs []uint64, r DateRange) ([]domain.TopProduct, error)
	RevenueTrend(ctx context.Context, shopIDs []uint64, r DateRange) ([]domain.RevenuePoint, error)

	Activity(ctx context.Context, shopIDs []uint64) (domain.ActivityReport, error)

	UpcomingEventCount(ctx context.Context, organizerID uint64) (int64, error)
	CompletedEventCount(ctx context.Context, organizerID uint64) (int64, error)
	RegistrationCount(ctx context.Context, organizerID uint64, r DateRange) (int64, error)
	EventPerformance(ctx context.Context, organizerID uint64, r DateRange) ([]domain.EventPerformance, error)
	EventRevenue(ctx context.Context, organizerID uint64, r DateRange) ([]domain.EventRevenue, error)

	LowStockProducts(ctx context.Context, shopIDs []uint64) ([]domain.Product, error)
	UpcomingEvents(ctx context.Context, organizerID uint64) ([]domain.Event, error)
	HighSalesDays(ctx context.Context, shopIDs []uint64) ([]domain.DailySales, error)
}

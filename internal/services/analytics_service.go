package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"shoplink/internal/domain"
	"shoplink/internal/repository"
)

type AnalyticsService struct {
	analytics repository.AnalyticsRepository
}

func NewAnalyticsService(analytics repository.AnalyticsRepository) *AnalyticsService {
	return &AnalyticsService{analytics: analytics}
}

// SalesReport aggregates completed-order figures across all shops the
// user owns. The independent queries run concurrently.
func (s *AnalyticsService) SalesReport(ctx context.Context, ownerID uint64, dr repository.DateRange) (*domain.SalesReport, error) {
	shopIDs, err := s.analytics.ShopIDsByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	report := &domain.SalesReport{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		totals, err := s.analytics.SalesTotals(gctx, shopIDs, dr)
		if err != nil {
			return err
		}
		report.TotalSales = totals.TotalOrders
		report.TotalRevenue = totals.TotalRevenue
		return nil
	})
	g.Go(func() error {
		monthly, err := s.analytics.MonthlySales(gctx, shopIDs, dr)
		if err != nil {
			return err
		}
		report.MonthlySales = monthly
		return nil
	})
	g.Go(func() error {
		top, err := s.analytics.TopProducts(gctx, shopIDs, dr)
		if err != nil {
			return err
		}
		report.TopProducts = top
		return nil
	})
	g.Go(func() error {
		trend, err := s.analytics.RevenueTrend(gctx, shopIDs, dr)
		if err != nil {
			return err
		}
		report.RevenueTrend = trend
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return report, nil
}

func (s *AnalyticsService) ActivityReport(ctx context.Context, ownerID uint64) (*domain.ActivityReport, error) {
	shopIDs, err := s.analytics.ShopIDsByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	report, err := s.analytics.Activity(ctx, shopIDs)
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (s *AnalyticsService) EventReport(ctx context.Context, organizerID uint64, dr repository.DateRange) (*domain.EventReport, error) {
	report := &domain.EventReport{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.analytics.UpcomingEventCount(gctx, organizerID)
		report.UpcomingEvents = n
		return err
	})
	g.Go(func() error {
		n, err := s.analytics.CompletedEventCount(gctx, organizerID)
		report.CompletedEvents = n
		return err
	})
	g.Go(func() error {
		n, err := s.analytics.RegistrationCount(gctx, organizerID, dr)
		report.TotalRegistrations = n
		return err
	})
	g.Go(func() error {
		perf, err := s.analytics.EventPerformance(gctx, organizerID, dr)
		report.EventPerformance = perf
		return err
	})
	g.Go(func() error {
		rev, err := s.analytics.EventRevenue(gctx, organizerID, dr)
		report.EventRevenue = rev
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return report, nil
}

// Alerts surfaces low stock, events starting within a week and unusually
// busy sales days.
func (s *AnalyticsService) Alerts(ctx context.Context, ownerID uint64) ([]domain.Alert, error) {
	shopIDs, err := s.analytics.ShopIDsByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	var lowStock []domain.Product
	var upcoming []domain.Event
	var busyDays []domain.DailySales

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		lowStock, err = s.analytics.LowStockProducts(gctx, shopIDs)
		return err
	})
	g.Go(func() error {
		var err error
		upcoming, err = s.analytics.UpcomingEvents(gctx, ownerID)
		return err
	})
	g.Go(func() error {
		var err error
		busyDays, err = s.analytics.HighSalesDays(gctx, shopIDs)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	alerts := make([]domain.Alert, 0, len(lowStock)+len(upcoming)+len(busyDays))
	for _, p := range lowStock {
		alerts = append(alerts, domain.Alert{
			Type:      "low_stock",
			Message:   fmt.Sprintf("%s has only %d left in stock", p.Name, p.StockQuantity),
			ProductID: p.ID,
			ShopID:    p.ShopID,
		})
	}
	for _, e := range upcoming {
		alerts = append(alerts, domain.Alert{
			Type:      "upcoming_event",
			Message:   fmt.Sprintf("%s starts soon", e.Title),
			EventID:   e.ID,
			StartDate: e.StartDate.Format("2006-01-02"),
		})
	}
	for _, d := range busyDays {
		alerts = append(alerts, domain.Alert{
			Type:    "high_sales",
			Message: fmt.Sprintf("%d orders on %s", d.OrderCount, d.Date),
			Date:    d.Date,
		})
	}
	return alerts, nil
}

package sqlite

import (
	"context"

	"gorm.io/gorm"

	"shoplink/internal/domain"
	"shoplink/internal/repository"
)

type analyticsRepo struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) repository.AnalyticsRepository {
	return &analyticsRepo{db: db}
}

func (r *analyticsRepo) ShopIDsByOwner(ctx context.Context, ownerID uint64) ([]uint64, error) {
	var ids []uint64
	err := r.db.WithContext(ctx).Model(&domain.Shop{}).
		Where("owner_id = ?", ownerID).
		Pluck("id", &ids).Error
	return ids, err
}

// rangeClause appends parameter-bound bounds for the given column. Date
// strings are never interpolated into the SQL text.
func rangeClause(col string, dr repository.DateRange, args []any) (string, []any) {
	clause := ""
	if dr.Start != "" {
		clause += " AND " + col + " >= ?"
		args = append(args, dr.Start)
	}
	if dr.End != "" {
		clause += " AND " + col + " <= ?"
		args = append(args, dr.End)
	}
	return clause, args
}

func (r *analyticsRepo) SalesTotals(ctx context.Context, shopIDs []uint64, dr repository.DateRange) (domain.SalesTotals, error) {
	var out domain.SalesTotals
	if len(shopIDs) == 0 {
		return out, nil
	}
	args := []any{shopIDs}
	clause, args := rangeClause("created_at", dr, args)
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) AS total_orders, COALESCE(SUM(total_amount), 0) AS total_revenue
		FROM orders
		WHERE shop_id IN ? AND status = 'completed'`+clause, args...).
		Scan(&out).Error
	return out, err
}

func (r *analyticsRepo) MonthlySales(ctx context.Context, shopIDs []uint64, dr repository.DateRange) ([]domain.MonthlySales, error) {
	if len(shopIDs) == 0 {
		return nil, nil
	}
	args := []any{shopIDs}
	clause, args := rangeClause("created_at", dr, args)
	var out []domain.MonthlySales
	err := r.db.WithContext(ctx).Raw(`
		SELECT strftime('%Y-%m', created_at) AS month,
		       COUNT(*) AS order_count,
		       COALESCE(SUM(total_amount), 0) AS revenue
		FROM orders
		WHERE shop_id IN ? AND status = 'completed'`+clause+`
		GROUP BY month
		ORDER BY month DESC
		LIMIT 12`, args...).
		Scan(&out).Error
	return out, err
}

func (r *analyticsRepo) TopProducts(ctx context.Context, shopIDs []uint64, dr repository.DateRange) ([]domain.TopProduct, error) {
	if len(shopIDs) == 0 {
		return nil, nil
	}
	args := []any{shopIDs}
	clause, args := rangeClause("o.created_at", dr, args)
	var out []domain.TopProduct
	err := r.db.WithContext(ctx).Raw(`
		SELECT p.id, p.name, p.image_url,
		       COALESCE(SUM(oi.quantity), 0) AS total_sold,
		       COALESCE(SUM(oi.subtotal), 0) AS total_revenue
		FROM order_items oi
		JOIN orders o ON oi.order_id = o.id
		JOIN products p ON oi.product_id = p.id
		WHERE o.shop_id IN ? AND o.status = 'completed'`+clause+`
		GROUP BY p.id, p.name, p.image_url
		ORDER BY total_sold DESC
		LIMIT 10`, args...).
		Scan(&out).Error
	return out, err
}

func (r *analyticsRepo) RevenueTrend(ctx context.Context, shopIDs []uint64, dr repository.DateRange) ([]domain.RevenuePoint, error) {
	if len(shopIDs) == 0 {
		return nil, nil
	}
	args := []any{shopIDs}
	clause, args := rangeClause("created_at", dr, args)
	var out []domain.RevenuePoint
	err := r.db.WithContext(ctx).Raw(`
		SELECT date(created_at) AS date,
		       COALESCE(SUM(total_amount), 0) AS revenue
		FROM orders
		WHERE shop_id IN ? AND status = 'completed'
		  AND created_at >= datetime('now', '-30 days')`+clause+`
		GROUP BY date
		ORDER BY date ASC`, args...).
		Scan(&out).Error
	return out, err
}

func (r *analyticsRepo) Activity(ctx context.Context, shopIDs []uint64) (domain.ActivityReport, error) {
	var out domain.ActivityReport
	if len(shopIDs) == 0 {
		return out, nil
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT
		  (SELECT COALESCE(SUM(followers_count), 0) FROM shops WHERE id IN ?) AS shop_followers,
		  (SELECT COALESCE(SUM(views_count), 0) FROM products WHERE shop_id IN ?) AS product_views,
		  (SELECT COALESCE(SUM(reviews_count), 0) FROM shops WHERE id IN ?) AS total_reviews,
		  (SELECT COUNT(*) FROM orders
		   WHERE shop_id IN ? AND created_at >= datetime('now', '-30 days')) AS recent_interactions`,
		shopIDs, shopIDs, shopIDs, shopIDs).
		Scan(&out).Error
	if err != nil {
		return out, err
	}
	if out.ProductViews > 0 {
		out.EngagementRate = float64(out.ShopFollowers+out.TotalReviews) / float64(out.ProductViews) * 100
	}
	return out, nil
}

func (r *analyticsRepo) UpcomingEventCount(ctx context.Context, organizerID uint64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Event{}).
		Where("organizer_id = ? AND start_date > CURRENT_TIMESTAMP AND status != ?",
			organizerID, domain.EventStatusCancelled).
		Count(&n).Error
	return n, err
}

func (r *analyticsRepo) CompletedEventCount(ctx context.Context, organizerID uint64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Event{}).
		Where("organizer_id = ? AND start_date <= CURRENT_TIMESTAMP AND status != ?",
			organizerID, domain.EventStatusCancelled).
		Count(&n).Error
	return n, err
}

func (r *analyticsRepo) RegistrationCount(ctx context.Context, organizerID uint64, dr repository.DateRange) (int64, error) {
	args := []any{organizerID}
	clause, args := rangeClause("er.created_at", dr, args)
	var n int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM event_registrations er
		JOIN events e ON er.event_id = e.id
		WHERE e.organizer_id = ?`+clause, args...).
		Scan(&n).Error
	return n, err
}

func (r *analyticsRepo) EventPerformance(ctx context.Context, organizerID uint64, dr repository.DateRange) ([]domain.EventPerformance, error) {
	args := []any{organizerID}
	clause, args := rangeClause("start_date", dr, args)
	var out []domain.EventPerformance
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, title,
		       strftime('%Y-%m-%d %H:%M:%S', start_date) AS start_date,
		       strftime('%Y-%m-%d %H:%M:%S', end_date) AS end_date,
		       registrations_count, views_count, ticket_price, is_free,
		       CASE WHEN is_free THEN 0 ELSE registrations_count * ticket_price END AS revenue
		FROM events
		WHERE organizer_id = ?`+clause+`
		ORDER BY start_date DESC`, args...).
		Scan(&out).Error
	return out, err
}

func (r *analyticsRepo) EventRevenue(ctx context.Context, organizerID uint64, dr repository.DateRange) ([]domain.EventRevenue, error) {
	args := []any{organizerID}
	clause, args := rangeClause("start_date", dr, args)
	var out []domain.EventRevenue
	err := r.db.WithContext(ctx).Raw(`
		SELECT strftime('%Y-%m', start_date) AS month,
		       COUNT(*) AS event_count,
		       COALESCE(SUM(CASE WHEN is_free THEN 0 ELSE registrations_count * ticket_price END), 0) AS revenue
		FROM events
		WHERE organizer_id = ? AND is_free = 0`+clause+`
		GROUP BY month
		ORDER BY month DESC
		LIMIT 12`, args...).
		Scan(&out).Error
	return out, err
}

func (r *analyticsRepo) LowStockProducts(ctx context.Context, shopIDs []uint64) ([]domain.Product, error) {
	if len(shopIDs) == 0 {
		return nil, nil
	}
	var out []domain.Product
	err := r.db.WithContext(ctx).
		Where("shop_id IN ? AND is_available = ? AND stock_quantity <= 10", shopIDs, true).
		Order("stock_quantity ASC").
		Find(&out).Error
	return out, err
}

func (r *analyticsRepo) UpcomingEvents(ctx context.Context, organizerID uint64) ([]domain.Event, error) {
	var out []domain.Event
	err := r.db.WithContext(ctx).
		Where("organizer_id = ? AND status != ?", organizerID, domain.EventStatusCancelled).
		Where("start_date BETWEEN CURRENT_TIMESTAMP AND datetime('now', '+7 days')").
		Order("start_date ASC").
		Find(&out).Error
	return out, err
}

func (r *analyticsRepo) HighSalesDays(ctx context.Context, shopIDs []uint64) ([]domain.DailySales, error) {
	if len(shopIDs) == 0 {
		return nil, nil
	}
	var out []domain.DailySales
	err := r.db.WithContext(ctx).Raw(`
		SELECT date(created_at) AS date,
		       COUNT(*) AS order_count,
		       COALESCE(SUM(total_amount), 0) AS revenue
		FROM orders
		WHERE shop_id IN ? AND created_at >= datetime('now', '-30 days')
		GROUP BY date
		HAVING COUNT(*) >= 5
		ORDER BY date DESC`, shopIDs).
		Scan(&out).Error
	return out, err
}

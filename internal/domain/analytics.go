package domain

// Read-side aggregate rows for the seller analytics endpoints. Scanned
// straight from SQL, never persisted.

type SalesTotals struct {
	TotalOrders  int64   `json:"total_orders"`
	TotalRevenue float64 `json:"total_revenue"`
}

type MonthlySales struct {
	Month      string  `json:"month"`
	OrderCount int64   `json:"order_count"`
	Revenue    float64 `json:"revenue"`
}

type TopProduct struct {
	ID           uint64  `json:"id"`
	Name         string  `json:"name"`
	ImageURL     string  `json:"image_url"`
	TotalSold    int64   `json:"total_sold"`
	TotalRevenue float64 `json:"total_revenue"`
}

type DailySales struct {
	Date       string  `json:"date"`
	OrderCount int64   `json:"order_count"`
	Revenue    float64 `json:"revenue"`
}

type RevenuePoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

type SalesReport struct {
	TotalSales   int64          `json:"total_sales"`
	TotalRevenue float64        `json:"total_revenue"`
	MonthlySales []MonthlySales `json:"monthly_sales"`
	TopProducts  []TopProduct   `json:"top_products"`
	RevenueTrend []RevenuePoint `json:"revenue_trend"`
}

type ActivityReport struct {
	ShopFollowers      int64   `json:"shop_followers"`
	ProductViews       int64   `json:"product_views"`
	TotalReviews       int64   `json:"total_reviews"`
	EngagementRate     float64 `json:"engagement_rate"`
	RecentInteractions int64   `json:"recent_interactions"`
}

type EventPerformance struct {
	ID                 uint64  `json:"id"`
	Title              string  `json:"title"`
	StartDate          string  `json:"start_date"`
	EndDate            *string `json:"end_date"`
	RegistrationsCount int64   `json:"registrations_count"`
	ViewsCount         int64   `json:"views_count"`
	TicketPrice        float64 `json:"ticket_price"`
	IsFree             bool    `json:"is_free"`
	Revenue            float64 `json:"revenue"`
}

type EventRevenue struct {
	Month      string  `json:"month"`
	EventCount int64   `json:"event_count"`
	Revenue    float64 `json:"revenue"`
}

type EventReport struct {
	UpcomingEvents     int64              `json:"upcoming_events"`
	CompletedEvents    int64              `json:"completed_events"`
	TotalRegistrations int64              `json:"total_registrations"`
	EventPerformance   []EventPerformance `json:"event_performance"`
	EventRevenue       []EventRevenue     `json:"event_revenue"`
}

type Alert struct {
	Type      string `json:"type"`
	Message   string `json:"message"`
	ProductID uint64 `json:"product_id,omitempty"`
	ShopID    uint64 `json:"shop_id,omitempty"`
	EventID   uint64 `json:"event_id,omitempty"`
	Date      string `json:"date,omitempty"`
	StartDate string `json:"start_date,omitempty"`
}

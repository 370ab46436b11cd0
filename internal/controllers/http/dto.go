package http

import (
	"time"

	"shoplink/internal/domain"
)

type SignupRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

type CreateShopRequest struct {
	Name                 string  `json:"name" binding:"required"`
	Category             string  `json:"category"`
	Description          string  `json:"description"`
	Location             string  `json:"location"`
	Address              string  `json:"address"`
	City                 string  `json:"city"`
	State                string  `json:"state"`
	Country              string  `json:"country"`
	Latitude             float64 `json:"latitude"`
	Longitude            float64 `json:"longitude"`
	Phone                string  `json:"phone"`
	Email                string  `json:"email"`
	Website              string  `json:"website"`
	BusinessHours        string  `json:"business_hours"`
	IsOnlineSelling      *bool   `json:"is_online_selling"`
	IsOfflineSelling     *bool   `json:"is_offline_selling"`
	AcceptsOnlinePayment *bool   `json:"accepts_online_payment"`
	AcceptsCash          *bool   `json:"accepts_cash"`
}

type CreateProductRequest struct {
	ShopID           uint64   `json:"shop_id" binding:"required"`
	Name             string   `json:"name" binding:"required"`
	Description      string   `json:"description"`
	Price            float64  `json:"price" binding:"min=0"`
	OriginalPrice    *float64 `json:"original_price"`
	ImageURL         string   `json:"image_url"`
	StockQuantity    int64    `json:"stock_quantity" binding:"min=0"`
	MinOrderQuantity int64    `json:"min_order_quantity"`
	MaxOrderQuantity *int64   `json:"max_order_quantity"`
	SKU              string   `json:"sku"`
	Barcode          string   `json:"barcode"`
	Weight           float64  `json:"weight"`
	Dimensions       string   `json:"dimensions"`
	Category         string   `json:"category"`
	Tags             string   `json:"tags"`
	IsFeatured       bool     `json:"is_featured"`
}

type AddCartItemRequest struct {
	ProductID uint64 `json:"product_id" binding:"required"`
	Quantity  int64  `json:"quantity" binding:"required,min=1"`
}

type UpdateCartItemRequest struct {
	Quantity int64 `json:"quantity" binding:"required,min=1"`
}

type PlaceOrderRequest struct {
	ShopID          uint64                  `json:"shop_id" binding:"required"`
	Items           []domain.OrderItemInput `json:"items" binding:"required"`
	PaymentMethod   string                  `json:"payment_method"`
	ShippingAddress string                  `json:"shipping_address"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CreateEventRequest struct {
	Title        string     `json:"title" binding:"required"`
	Description  string     `json:"description"`
	EventType    string     `json:"event_type"`
	Category     string     `json:"category"`
	StartDate    time.Time  `json:"start_date" binding:"required"`
	EndDate      *time.Time `json:"end_date"`
	ShopID       *uint64    `json:"shop_id"`
	Location     string     `json:"location"`
	VenueName    string     `json:"venue_name"`
	VenueAddress string     `json:"venue_address"`
	VenueCity    string     `json:"venue_city"`
	VenueState   string     `json:"venue_state"`
	VenueCountry string     `json:"venue_country"`
	Latitude     float64    `json:"latitude"`
	Longitude    float64    `json:"longitude"`
	MeetingURL   string     `json:"meeting_url"`
	MaxAttendees *int64     `json:"max_attendees"`
	TicketPrice  float64    `json:"ticket_price" binding:"min=0"`
	IsPublished  bool       `json:"is_published"`
}

type CreateReviewRequest struct {
	Rating int    `json:"rating" binding:"required,min=1,max=5"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

type CartResponse struct {
	Items []domain.CartItem `json:"items"`
	Total float64           `json:"total"`
}

package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shoplink/internal/auth"
	"shoplink/internal/services"
)

type Handler struct {
	tokens        *auth.TokenManager
	auth          *services.AuthService
	users         *services.UserService
	shops         *services.ShopService
	products      *services.ProductService
	cart          *services.CartService
	orders        *services.OrderService
	events        *services.EventService
	reviews       *services.ReviewService
	followers     *services.FollowerService
	notifications *services.NotificationService
	analytics     *services.AnalyticsService
}

type Services struct {
	Auth          *services.AuthService
	Users         *services.UserService
	Shops         *services.ShopService
	Products      *services.ProductService
	Cart          *services.CartService
	Orders        *services.OrderService
	Events        *services.EventService
	Reviews       *services.ReviewService
	Followers     *services.FollowerService
	Notifications *services.NotificationService
	Analytics     *services.AnalyticsService
}

func NewHandler(tokens *auth.TokenManager, svc Services) *Handler {
	return &Handler{
		tokens:        tokens,
		auth:          svc.Auth,
		users:         svc.Users,
		shops:         svc.Shops,
		products:      svc.Products,
		cart:          svc.Cart,
		orders:        svc.Orders,
		events:        svc.Events,
		reviews:       svc.Reviews,
		followers:     svc.Followers,
		notifications: svc.Notifications,
		analytics:     svc.Analytics,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)

	api := r.Group("/api")
	authed := api.Group("", AuthRequired(h.tokens))

	api.POST("/auth/signup", h.Signup)
	api.POST("/auth/login", h.Login)
	authed.GET("/auth/me", h.Me)

	authed.GET("/users/me", h.GetProfile)
	authed.PUT("/users/me", h.UpdateProfile)
	authed.GET("/users/me/shops", h.MyShops)
	authed.GET("/users/me/events", h.MyEvents)

	api.GET("/shops", h.ListShops)
	api.GET("/shops/:id", h.GetShop)
	api.GET("/shops/:id/products", h.ListShopProducts)
	api.GET("/shops/:id/reviews", h.ListShopReviews)
	api.GET("/shops/:id/followers", h.ListShopFollowers)
	authed.POST("/shops", h.CreateShop)
	authed.PUT("/shops/:id", h.UpdateShop)
	authed.GET("/shops/:id/orders", h.ListShopOrders)
	authed.POST("/shops/:id/reviews", h.ReviewShop)
	authed.POST("/shops/:id/follow", h.FollowShop)
	authed.DELETE("/shops/:id/follow", h.UnfollowShop)
	authed.GET("/shops/:id/follow", h.CheckFollowing)

	api.GET("/products/:id", h.GetProduct)
	api.GET("/products/:id/reviews", h.ListProductReviews)
	authed.POST("/products", h.CreateProduct)
	authed.PUT("/products/:id", h.UpdateProduct)
	authed.DELETE("/products/:id", h.DeleteProduct)
	authed.POST("/products/:id/reviews", h.ReviewProduct)

	authed.GET("/cart", h.GetCart)
	authed.POST("/cart/items", h.AddCartItem)
	authed.PUT("/cart/items/:productId", h.UpdateCartItem)
	authed.DELETE("/cart/items/:productId", h.RemoveCartItem)
	authed.DELETE("/cart", h.ClearCart)

	authed.POST("/orders", h.PlaceOrder)
	authed.GET("/orders", h.ListMyOrders)
	authed.GET("/orders/:id", h.GetOrder)
	authed.PATCH("/orders/:id/status", h.UpdateOrderStatus)

	api.GET("/events", h.ListEvents)
	api.GET("/events/:id", h.GetEvent)
	authed.POST("/events", h.CreateEvent)
	authed.PUT("/events/:id", h.UpdateEvent)
	authed.POST("/events/:id/register", h.RegisterForEvent)
	authed.GET("/events/:id/registrations", h.ListEventRegistrations)

	authed.GET("/notifications", h.ListNotifications)
	authed.PATCH("/notifications/:id/read", h.MarkNotificationRead)
	authed.POST("/notifications/read-all", h.MarkAllNotificationsRead)
	authed.GET("/notifications/unread-count", h.UnreadNotificationCount)

	authed.GET("/analytics/sales", h.SalesReport)
	authed.GET("/analytics/activity", h.ActivityReport)
	authed.GET("/analytics/events", h.EventReport)
	authed.GET("/analytics/alerts", h.Alerts)
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func pathID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		respondBadRequest(c, "invalid "+name)
		return 0, false
	}
	return id, true
}

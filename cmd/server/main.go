package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	handler "shoplink/internal/controllers/http"

	"shoplink/internal/auth"
	"shoplink/internal/config"
	"shoplink/internal/infra/rabbitmq"
	"shoplink/internal/infra/sqlite"
	sqliterepo "shoplink/internal/repository/sqlite"
	"shoplink/internal/services"
)

const tokenTTL = 24 * time.Hour

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sqlite.Open(cfg.SQLitePath)
	if err != nil {
		log.Fatalf("db: open: %v", err)
	}

	users := sqliterepo.NewUserRepository(db)
	shops := sqliterepo.NewShopRepository(db)
	products := sqliterepo.NewProductRepository(db)
	cart := sqliterepo.NewCartRepository(db)
	orders := sqliterepo.NewOrderRepository(db)
	events := sqliterepo.NewEventRepository(db)
	reviews := sqliterepo.NewReviewRepository(db)
	followers := sqliterepo.NewFollowerRepository(db)
	notifications := sqliterepo.NewNotificationRepository(db)
	analytics := sqliterepo.NewAnalyticsRepository(db)

	var publisher rabbitmq.PublisherInterface = rabbitmq.NoopPublisher{}
	if cfg.RabbitURL != "" {
		p, err := rabbitmq.NewPublisher(cfg.RabbitURL, "shoplink.events")
		if err != nil {
			log.Fatalf("rabbitmq: %v", err)
		}
		defer p.Close()
		publisher = p
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret, tokenTTL)

	authSvc := services.NewAuthService(users, tokens)
	userSvc := services.NewUserService(users, shops, events)
	shopSvc := services.NewShopService(shops)
	productSvc := services.NewProductService(products, shops)
	cartSvc := services.NewCartService(cart, products)
	orderSvc := services.NewOrderService(orders, shops, notifications, publisher)
	eventSvc := services.NewEventService(events, shops)
	reviewSvc := services.NewReviewService(reviews, shops, products)
	followerSvc := services.NewFollowerService(followers, shops, users, notifications, publisher)
	notificationSvc := services.NewNotificationService(notifications)
	analyticsSvc := services.NewAnalyticsService(analytics)

	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:         cfg.RedisAddr,
			DialTimeout:  2 * time.Second,
			ReadTimeout:  500 * time.Millisecond,
			WriteTimeout: 500 * time.Millisecond,
		})
		productSvc.SetRedisClient(redisClient)
		orderSvc.SetRedisClient(redisClient)
		notificationSvc.SetRedisClient(redisClient)
	}

	h := handler.NewHandler(tokens, handler.Services{
		Auth:          authSvc,
		Users:         userSvc,
		Shops:         shopSvc,
		Products:      productSvc,
		Cart:          cartSvc,
		Orders:        orderSvc,
		Events:        eventSvc,
		Reviews:       reviewSvc,
		Followers:     followerSvc,
		Notifications: notificationSvc,
		Analytics:     analyticsSvc,
	})

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	h.RegisterRoutes(r)

	log.Printf("starting %s on %s", cfg.ServiceName, cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatalf("server run: %v", err)
	}
}

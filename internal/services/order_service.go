package services

import (
	"context"
	"fmt"
	"log"

	"github.com/go-redis/redis/v8"

	"shoplink/internal/apperr"
	"shoplink/internal/domain"
	rabbit "shoplink/internal/infra/rabbitmq"
	"shoplink/internal/repository"
)

type OrderService struct {
	orders        repository.OrderRepository
	shops         repository.ShopRepository
	notifications repository.NotificationRepository
	publisher     rabbit.PublisherInterface
	redisClient   *redis.Client
}

func NewOrderService(orders repository.OrderRepository, shops repository.ShopRepository, notifications repository.NotificationRepository, pub rabbit.PublisherInterface) *OrderService {
	return &OrderService{
		orders:        orders,
		shops:         shops,
		notifications: notifications,
		publisher:     pub,
	}
}

func (s *OrderService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

// PlaceOrder checks the request shape, then hands the stock reservation
// and all money movements to the repository as a single transaction.
// Event publishing, the owner notification and cache invalidation happen
// after commit and never fail the order.
func (s *OrderService) PlaceOrder(ctx context.Context, userID, shopID uint64, items []domain.OrderItemInput, paymentMethod, shippingAddress string) (*domain.Order, error) {
	if len(items) == 0 {
		return nil, apperr.New(apperr.KindInvalidArgument, "order must contain at least one item")
	}
	for _, it := range items {
		if it.Quantity < 1 {
			return nil, apperr.Newf(apperr.KindInvalidArgument, "invalid quantity for product %d", it.ProductID)
		}
	}

	order := &domain.Order{
		UserID:          userID,
		ShopID:          shopID,
		PaymentMethod:   paymentMethod,
		ShippingAddress: shippingAddress,
	}

	placed, err := s.orders.Place(ctx, order, items)
	if err != nil {
		return nil, err
	}

	for _, it := range items {
		s.invalidateProductCache(ctx, it.ProductID)
	}

	go s.publishOrderCreated(context.Background(), placed)
	go s.notifyShopOwner(context.Background(), placed)

	return placed, nil
}

func (s *OrderService) GetOrder(ctx context.Context, orderID, userID uint64) (*domain.Order, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperr.New(apperr.KindNotFound, "order not found")
	}
	if order.UserID != userID {
		owner, err := s.ownsShop(ctx, order.ShopID, userID)
		if err != nil {
			return nil, err
		}
		if !owner {
			return nil, apperr.New(apperr.KindUnauthorized, "not your order")
		}
	}
	return order, nil
}

func (s *OrderService) ListMyOrders(ctx context.Context, userID uint64) ([]domain.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}

func (s *OrderService) ListShopOrders(ctx context.Context, shopID, userID uint64) ([]domain.Order, error) {
	owner, err := s.ownsShop(ctx, shopID, userID)
	if err != nil {
		return nil, err
	}
	if !owner {
		return nil, apperr.New(apperr.KindUnauthorized, "not your shop")
	}
	return s.orders.ListByShop(ctx, shopID)
}

// UpdateStatus is shop-owner-only. Terminal states never change again.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID, userID uint64, to domain.OrderStatus) (*domain.Order, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperr.New(apperr.KindNotFound, "order not found")
	}

	owner, err := s.ownsShop(ctx, order.ShopID, userID)
	if err != nil {
		return nil, err
	}
	if !owner {
		return nil, apperr.New(apperr.KindUnauthorized, "only the shop owner can update order status")
	}

	from := order.Status
	if err := s.orders.UpdateStatus(ctx, orderID, to); err != nil {
		return nil, err
	}
	order.Status = to

	go s.publishStatusChanged(context.Background(), order, from, to)
	go s.notifyBuyer(context.Background(), order, to)

	return order, nil
}

func (s *OrderService) ownsShop(ctx context.Context, shopID, userID uint64) (bool, error) {
	shop, err := s.shops.FindByID(ctx, shopID)
	if err != nil {
		return false, err
	}
	return shop != nil && shop.OwnerID == userID, nil
}

func (s *OrderService) invalidateProductCache(ctx context.Context, productID uint64) {
	if s.redisClient == nil {
		return
	}
	s.redisClient.Del(ctx, fmt.Sprintf("product:%d", productID))
}

func (s *OrderService) publishOrderCreated(ctx context.Context, order *domain.Order) {
	evt := domain.OrderCreatedEvent{
		OrderID:     order.ID,
		UserID:      order.UserID,
		ShopID:      order.ShopID,
		TotalAmount: order.TotalAmount,
		Currency:    order.Currency,
		ItemCount:   len(order.Items),
		CreatedAt:   order.CreatedAt,
	}
	if err := s.publisher.Publish(ctx, domain.RoutingKeyOrderCreated, evt); err != nil {
		log.Printf("failed to publish %s for order %d: %v", domain.RoutingKeyOrderCreated, order.ID, err)
	}
}

func (s *OrderService) publishStatusChanged(ctx context.Context, order *domain.Order, from, to domain.OrderStatus) {
	evt := domain.OrderStatusChangedEvent{
		OrderID: order.ID,
		ShopID:  order.ShopID,
		From:    from,
		To:      to,
	}
	if err := s.publisher.Publish(ctx, domain.RoutingKeyOrderStatus, evt); err != nil {
		log.Printf("failed to publish %s for order %d: %v", domain.RoutingKeyOrderStatus, order.ID, err)
	}
}

func (s *OrderService) notifyShopOwner(ctx context.Context, order *domain.Order) {
	shop, err := s.shops.FindByID(ctx, order.ShopID)
	if err != nil || shop == nil {
		return
	}
	n := &domain.Notification{
		UserID:  shop.OwnerID,
		Type:    domain.NotificationTypeOrderPlaced,
		Message: fmt.Sprintf("New order #%d for %.2f %s", order.ID, order.TotalAmount, order.Currency),
	}
	if err := s.notifications.Create(ctx, n); err != nil {
		log.Printf("failed to notify shop owner for order %d: %v", order.ID, err)
	}
}

func (s *OrderService) notifyBuyer(ctx context.Context, order *domain.Order, to domain.OrderStatus) {
	n := &domain.Notification{
		UserID:  order.UserID,
		Type:    domain.NotificationTypeOrderStatus,
		Message: fmt.Sprintf("Order #%d is now %s", order.ID, to),
	}
	if err := s.notifications.Create(ctx, n); err != nil {
		log.Printf("failed to notify buyer for order %d: %v", order.ID, err)
	}
}

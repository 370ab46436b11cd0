package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"shoplink/internal/domain"
	"shoplink/internal/repository"
)

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, routingKey string, data any) error {
	args := m.Called(ctx, routingKey, data)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type MockShopRepository struct {
	mock.Mock
}

func (m *MockShopRepository) Create(ctx context.Context, shop *domain.Shop) error {
	args := m.Called(ctx, shop)
	return args.Error(0)
}

func (m *MockShopRepository) FindByID(ctx context.Context, id uint64) (*domain.Shop, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shop), args.Error(1)
}

func (m *MockShopRepository) FindActiveByID(ctx context.Context, id uint64) (*domain.Shop, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shop), args.Error(1)
}

func (m *MockShopRepository) List(ctx context.Context, category string, limit, offset int) ([]domain.Shop, error) {
	args := m.Called(ctx, category, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Shop), args.Error(1)
}

func (m *MockShopRepository) ListByOwner(ctx context.Context, ownerID uint64) ([]domain.Shop, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Shop), args.Error(1)
}

func (m *MockShopRepository) Save(ctx context.Context, shop *domain.Shop) error {
	args := m.Called(ctx, shop)
	return args.Error(0)
}

func (m *MockShopRepository) SlugTaken(ctx context.Context, slug string, excludeID uint64) (bool, error) {
	args := m.Called(ctx, slug, excludeID)
	return args.Bool(0), args.Error(1)
}

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uint64) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) FindAvailableByID(ctx context.Context, id uint64) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) ListByShop(ctx context.Context, shopID uint64) ([]domain.Product, error) {
	args := m.Called(ctx, shopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) SoftDelete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) IncrementViews(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) SlugTaken(ctx context.Context, shopID uint64, slug string, excludeID uint64) (bool, error) {
	args := m.Called(ctx, shopID, slug, excludeID)
	return args.Bool(0), args.Error(1)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Place(ctx context.Context, order *domain.Order, items []domain.OrderItemInput) (*domain.Order, error) {
	args := m.Called(ctx, order, items)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uint64) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByUser(ctx context.Context, userID uint64) ([]domain.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByShop(ctx context.Context, shopID uint64) ([]domain.Order, error) {
	args := m.Called(ctx, shopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, orderID uint64, to domain.OrderStatus) error {
	args := m.Called(ctx, orderID, to)
	return args.Error(0)
}

type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) ListByUser(ctx context.Context, userID uint64) ([]domain.CartItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CartItem), args.Error(1)
}

func (m *MockCartRepository) Find(ctx context.Context, userID, productID uint64) (*domain.CartItem, error) {
	args := m.Called(ctx, userID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CartItem), args.Error(1)
}

func (m *MockCartRepository) Create(ctx context.Context, item *domain.CartItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockCartRepository) UpdateQuantity(ctx context.Context, userID, productID uint64, quantity int64) (bool, error) {
	args := m.Called(ctx, userID, productID, quantity)
	return args.Bool(0), args.Error(1)
}

func (m *MockCartRepository) Delete(ctx context.Context, userID, productID uint64) (bool, error) {
	args := m.Called(ctx, userID, productID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCartRepository) Clear(ctx context.Context, userID uint64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Create(ctx context.Context, event *domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) FindByID(ctx context.Context, id uint64) (*domain.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockEventRepository) List(ctx context.Context, filter repository.EventFilter) ([]domain.Event, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *MockEventRepository) ListByOrganizer(ctx context.Context, organizerID uint64) ([]domain.Event, error) {
	args := m.Called(ctx, organizerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *MockEventRepository) Save(ctx context.Context, event *domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) IncrementViews(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEventRepository) Register(ctx context.Context, eventID, userID uint64) error {
	args := m.Called(ctx, eventID, userID)
	return args.Error(0)
}

func (m *MockEventRepository) ListRegistrations(ctx context.Context, eventID uint64) ([]domain.EventRegistration, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EventRegistration), args.Error(1)
}

func (m *MockEventRepository) SlugTaken(ctx context.Context, slug string, excludeID uint64) (bool, error) {
	args := m.Called(ctx, slug, excludeID)
	return args.Bool(0), args.Error(1)
}

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) CreateShopReview(ctx context.Context, review *domain.ShopReview) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) HasShopReview(ctx context.Context, shopID, userID uint64) (bool, error) {
	args := m.Called(ctx, shopID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockReviewRepository) ListShopReviews(ctx context.Context, shopID uint64) ([]domain.ShopReview, error) {
	args := m.Called(ctx, shopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShopReview), args.Error(1)
}

func (m *MockReviewRepository) CreateProductReview(ctx context.Context, review *domain.ProductReview) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) HasProductReview(ctx context.Context, productID, userID uint64) (bool, error) {
	args := m.Called(ctx, productID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockReviewRepository) ListProductReviews(ctx context.Context, productID uint64) ([]domain.ProductReview, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProductReview), args.Error(1)
}

type MockFollowerRepository struct {
	mock.Mock
}

func (m *MockFollowerRepository) Follow(ctx context.Context, shopID, userID uint64) error {
	args := m.Called(ctx, shopID, userID)
	return args.Error(0)
}

func (m *MockFollowerRepository) Unfollow(ctx context.Context, shopID, userID uint64) (bool, error) {
	args := m.Called(ctx, shopID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowerRepository) IsFollowing(ctx context.Context, shopID, userID uint64) (bool, error) {
	args := m.Called(ctx, shopID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowerRepository) ListByShop(ctx context.Context, shopID uint64) ([]domain.ShopFollower, error) {
	args := m.Called(ctx, shopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShopFollower), args.Error(1)
}

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) ListByUser(ctx context.Context, userID uint64, isRead *bool, limit int) ([]domain.Notification, error) {
	args := m.Called(ctx, userID, isRead, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, id, userID uint64) (bool, error) {
	args := m.Called(ctx, id, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockNotificationRepository) MarkAllRead(ctx context.Context, userID uint64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockNotificationRepository) UnreadCount(ctx context.Context, userID uint64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

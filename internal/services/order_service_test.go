package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"shoplink/internal/apperr"
	"shoplink/internal/domain"
	"shoplink/internal/mocks"
)

func TestOrderService_PlaceOrder(t *testing.T) {
	items := []domain.OrderItemInput{{ProductID: 1, Quantity: 2}}

	tests := []struct {
		name       string
		items      []domain.OrderItemInput
		setupMocks func(*mocks.MockOrderRepository)
		wantKind   apperr.Kind
		wantErr    bool
	}{
		{
			name:  "successful placement",
			items: items,
			setupMocks: func(orders *mocks.MockOrderRepository) {
				orders.On("Place", mock.Anything, mock.AnythingOfType("*domain.Order"), items).
					Return(&domain.Order{ID: 1, UserID: 2, ShopID: 3, Status: domain.OrderStatusPending, TotalAmount: 50}, nil)
			},
		},
		{
			name:     "empty items rejected before the repository",
			items:    nil,
			wantErr:  true,
			wantKind: apperr.KindInvalidArgument,
		},
		{
			name:     "zero quantity rejected",
			items:    []domain.OrderItemInput{{ProductID: 1, Quantity: 0}},
			wantErr:  true,
			wantKind: apperr.KindInvalidArgument,
		},
		{
			name:  "repository failure propagates",
			items: items,
			setupMocks: func(orders *mocks.MockOrderRepository) {
				orders.On("Place", mock.Anything, mock.Anything, items).
					Return(nil, apperr.New(apperr.KindInsufficientStock, "insufficient stock for product 1"))
			},
			wantErr:  true,
			wantKind: apperr.KindInsufficientStock,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders := new(mocks.MockOrderRepository)
			shops := new(mocks.MockShopRepository)
			notifications := new(mocks.MockNotificationRepository)
			pub := new(mocks.MockPublisher)
			pub.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
			shops.On("FindByID", mock.Anything, mock.Anything).Return(&domain.Shop{ID: 3, OwnerID: 9}, nil).Maybe()
			notifications.On("Create", mock.Anything, mock.Anything).Return(nil).Maybe()

			if tt.setupMocks != nil {
				tt.setupMocks(orders)
			}

			svc := NewOrderService(orders, shops, notifications, pub)
			order, err := svc.PlaceOrder(context.Background(), 2, 3, tt.items, "cash", "12 Main St")

			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, apperr.IsKind(err, tt.wantKind))
				assert.Nil(t, order)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, order)
			}
			orders.AssertExpectations(t)
		})
	}
}

func TestOrderService_PublishOrderCreated(t *testing.T) {
	pub := new(mocks.MockPublisher)
	pub.On("Publish", mock.Anything, domain.RoutingKeyOrderCreated, mock.MatchedBy(func(evt domain.OrderCreatedEvent) bool {
		return evt.OrderID == 7 && evt.TotalAmount == 50
	})).Return(nil)

	svc := NewOrderService(new(mocks.MockOrderRepository), new(mocks.MockShopRepository), new(mocks.MockNotificationRepository), pub)
	svc.publishOrderCreated(context.Background(), &domain.Order{ID: 7, TotalAmount: 50})

	pub.AssertExpectations(t)
}

func TestOrderService_NotifyShopOwner(t *testing.T) {
	shops := new(mocks.MockShopRepository)
	shops.On("FindByID", mock.Anything, uint64(3)).Return(&domain.Shop{ID: 3, OwnerID: 9, Name: "Corner Store"}, nil)

	notifications := new(mocks.MockNotificationRepository)
	notifications.On("Create", mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
		return n.UserID == 9 && n.Type == domain.NotificationTypeOrderPlaced
	})).Return(nil)

	svc := NewOrderService(new(mocks.MockOrderRepository), shops, notifications, new(mocks.MockPublisher))
	svc.notifyShopOwner(context.Background(), &domain.Order{ID: 7, ShopID: 3, TotalAmount: 50, Currency: "USD"})

	notifications.AssertExpectations(t)
}

func TestOrderService_GetOrder(t *testing.T) {
	t.Run("buyer can read own order", func(t *testing.T) {
		orders := new(mocks.MockOrderRepository)
		orders.On("FindByID", mock.Anything, uint64(1)).Return(&domain.Order{ID: 1, UserID: 2, ShopID: 3}, nil)

		svc := NewOrderService(orders, new(mocks.MockShopRepository), new(mocks.MockNotificationRepository), new(mocks.MockPublisher))
		order, err := svc.GetOrder(context.Background(), 1, 2)
		assert.NoError(t, err)
		assert.Equal(t, uint64(1), order.ID)
	})

	t.Run("shop owner can read shop order", func(t *testing.T) {
		orders := new(mocks.MockOrderRepository)
		orders.On("FindByID", mock.Anything, uint64(1)).Return(&domain.Order{ID: 1, UserID: 2, ShopID: 3}, nil)
		shops := new(mocks.MockShopRepository)
		shops.On("FindByID", mock.Anything, uint64(3)).Return(&domain.Shop{ID: 3, OwnerID: 9}, nil)

		svc := NewOrderService(orders, shops, new(mocks.MockNotificationRepository), new(mocks.MockPublisher))
		_, err := svc.GetOrder(context.Background(), 1, 9)
		assert.NoError(t, err)
	})

	t.Run("stranger is refused", func(t *testing.T) {
		orders := new(mocks.MockOrderRepository)
		orders.On("FindByID", mock.Anything, uint64(1)).Return(&domain.Order{ID: 1, UserID: 2, ShopID: 3}, nil)
		shops := new(mocks.MockShopRepository)
		shops.On("FindByID", mock.Anything, uint64(3)).Return(&domain.Shop{ID: 3, OwnerID: 9}, nil)

		svc := NewOrderService(orders, shops, new(mocks.MockNotificationRepository), new(mocks.MockPublisher))
		_, err := svc.GetOrder(context.Background(), 1, 42)
		assert.True(t, apperr.IsKind(err, apperr.KindUnauthorized))
	})

	t.Run("missing order", func(t *testing.T) {
		orders := new(mocks.MockOrderRepository)
		orders.On("FindByID", mock.Anything, uint64(1)).Return(nil, nil)

		svc := NewOrderService(orders, new(mocks.MockShopRepository), new(mocks.MockNotificationRepository), new(mocks.MockPublisher))
		_, err := svc.GetOrder(context.Background(), 1, 2)
		assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	})
}

func TestOrderService_UpdateStatus(t *testing.T) {
	t.Run("owner updates status", func(t *testing.T) {
		orders := new(mocks.MockOrderRepository)
		orders.On("FindByID", mock.Anything, uint64(1)).Return(&domain.Order{ID: 1, UserID: 2, ShopID: 3, Status: domain.OrderStatusPending}, nil)
		orders.On("UpdateStatus", mock.Anything, uint64(1), domain.OrderStatusCompleted).Return(nil)
		shops := new(mocks.MockShopRepository)
		shops.On("FindByID", mock.Anything, uint64(3)).Return(&domain.Shop{ID: 3, OwnerID: 9}, nil)
		pub := new(mocks.MockPublisher)
		pub.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
		notifications := new(mocks.MockNotificationRepository)
		notifications.On("Create", mock.Anything, mock.Anything).Return(nil).Maybe()

		svc := NewOrderService(orders, shops, notifications, pub)
		order, err := svc.UpdateStatus(context.Background(), 1, 9, domain.OrderStatusCompleted)
		assert.NoError(t, err)
		assert.Equal(t, domain.OrderStatusCompleted, order.Status)
		orders.AssertExpectations(t)
	})

	t.Run("buyer cannot update status", func(t *testing.T) {
		orders := new(mocks.MockOrderRepository)
		orders.On("FindByID", mock.Anything, uint64(1)).Return(&domain.Order{ID: 1, UserID: 2, ShopID: 3, Status: domain.OrderStatusPending}, nil)
		shops := new(mocks.MockShopRepository)
		shops.On("FindByID", mock.Anything, uint64(3)).Return(&domain.Shop{ID: 3, OwnerID: 9}, nil)

		svc := NewOrderService(orders, shops, new(mocks.MockNotificationRepository), new(mocks.MockPublisher))
		_, err := svc.UpdateStatus(context.Background(), 1, 2, domain.OrderStatusCompleted)
		assert.True(t, apperr.IsKind(err, apperr.KindUnauthorized))
	})

	t.Run("repository errors pass through", func(t *testing.T) {
		orders := new(mocks.MockOrderRepository)
		orders.On("FindByID", mock.Anything, uint64(1)).Return(nil, errors.New("db down"))

		svc := NewOrderService(orders, new(mocks.MockShopRepository), new(mocks.MockNotificationRepository), new(mocks.MockPublisher))
		_, err := svc.UpdateStatus(context.Background(), 1, 9, domain.OrderStatusCompleted)
		assert.Error(t, err)
	})
}

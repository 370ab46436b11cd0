package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"shoplink/internal/apperr"
	"shoplink/internal/domain"
	"shoplink/internal/mocks"
)

func TestCartService_AddItem(t *testing.T) {
	product := &domain.Product{ID: 1, ShopID: 3, Price: 10, StockQuantity: 5, IsAvailable: true}

	t.Run("new line created", func(t *testing.T) {
		cart := new(mocks.MockCartRepository)
		products := new(mocks.MockProductRepository)
		products.On("FindAvailableByID", mock.Anything, uint64(1)).Return(product, nil)
		cart.On("Find", mock.Anything, uint64(2), uint64(1)).Return(nil, nil)
		cart.On("Create", mock.Anything, mock.MatchedBy(func(it *domain.CartItem) bool {
			return it.UserID == 2 && it.ProductID == 1 && it.Quantity == 3
		})).Return(nil)

		svc := NewCartService(cart, products)
		assert.NoError(t, svc.AddItem(context.Background(), 2, 1, 3))
		cart.AssertExpectations(t)
	})

	t.Run("existing line merges and rechecks stock", func(t *testing.T) {
		cart := new(mocks.MockCartRepository)
		products := new(mocks.MockProductRepository)
		products.On("FindAvailableByID", mock.Anything, uint64(1)).Return(product, nil)
		cart.On("Find", mock.Anything, uint64(2), uint64(1)).Return(&domain.CartItem{UserID: 2, ProductID: 1, Quantity: 3}, nil)
		cart.On("UpdateQuantity", mock.Anything, uint64(2), uint64(1), int64(5)).Return(true, nil)

		svc := NewCartService(cart, products)
		assert.NoError(t, svc.AddItem(context.Background(), 2, 1, 2))
		cart.AssertExpectations(t)
	})

	t.Run("merged quantity over stock rejected", func(t *testing.T) {
		cart := new(mocks.MockCartRepository)
		products := new(mocks.MockProductRepository)
		products.On("FindAvailableByID", mock.Anything, uint64(1)).Return(product, nil)
		cart.On("Find", mock.Anything, uint64(2), uint64(1)).Return(&domain.CartItem{UserID: 2, ProductID: 1, Quantity: 4}, nil)

		svc := NewCartService(cart, products)
		err := svc.AddItem(context.Background(), 2, 1, 2)
		assert.True(t, apperr.IsKind(err, apperr.KindInsufficientStock))
	})

	t.Run("unknown product", func(t *testing.T) {
		cart := new(mocks.MockCartRepository)
		products := new(mocks.MockProductRepository)
		products.On("FindAvailableByID", mock.Anything, uint64(1)).Return(nil, nil)

		svc := NewCartService(cart, products)
		err := svc.AddItem(context.Background(), 2, 1, 1)
		assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	})

	t.Run("zero quantity", func(t *testing.T) {
		svc := NewCartService(new(mocks.MockCartRepository), new(mocks.MockProductRepository))
		err := svc.AddItem(context.Background(), 2, 1, 0)
		assert.True(t, apperr.IsKind(err, apperr.KindInvalidArgument))
	})
}

func TestCartService_Get(t *testing.T) {
	cart := new(mocks.MockCartRepository)
	cart.On("ListByUser", mock.Anything, uint64(2)).Return([]domain.CartItem{
		{ProductID: 1, Quantity: 2, Price: 10},
		{ProductID: 4, Quantity: 1, Price: 5.5},
	}, nil)

	svc := NewCartService(cart, new(mocks.MockProductRepository))
	items, total, err := svc.Get(context.Background(), 2)
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.InDelta(t, 25.5, total, 0.001)
}

func TestCartService_RemoveItem(t *testing.T) {
	cart := new(mocks.MockCartRepository)
	cart.On("Delete", mock.Anything, uint64(2), uint64(1)).Return(false, nil)

	svc := NewCartService(cart, new(mocks.MockProductRepository))
	err := svc.RemoveItem(context.Background(), 2, 1)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

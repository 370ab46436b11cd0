package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shoplink/internal/apperr"
	"shoplink/internal/domain"
	"shoplink/internal/mocks"
)

func TestShopService_Create(t *testing.T) {
	t.Run("slug collision gets a numeric suffix", func(t *testing.T) {
		shops := new(mocks.MockShopRepository)
		shops.On("SlugTaken", mock.Anything, "corner-store", uint64(0)).Return(true, nil)
		shops.On("SlugTaken", mock.Anything, "corner-store-2", uint64(0)).Return(true, nil)
		shops.On("SlugTaken", mock.Anything, "corner-store-3", uint64(0)).Return(false, nil)
		shops.On("Create", mock.Anything, mock.AnythingOfType("*domain.Shop")).Return(nil)

		svc := NewShopService(shops)
		shop, err := svc.Create(context.Background(), &domain.Shop{OwnerID: 1, Name: "Corner Store"})
		require.NoError(t, err)
		assert.Equal(t, "corner-store-3", shop.Slug)
		assert.True(t, shop.IsActive)
		shops.AssertExpectations(t)
	})

	t.Run("missing name", func(t *testing.T) {
		svc := NewShopService(new(mocks.MockShopRepository))
		_, err := svc.Create(context.Background(), &domain.Shop{OwnerID: 1})
		assert.True(t, apperr.IsKind(err, apperr.KindInvalidArgument))
	})
}

func TestShopService_Update(t *testing.T) {
	existing := func() *domain.Shop {
		return &domain.Shop{ID: 3, OwnerID: 1, Name: "Corner Store", Slug: "corner-store", IsActive: true}
	}

	t.Run("rename re-slugs", func(t *testing.T) {
		shops := new(mocks.MockShopRepository)
		shops.On("FindByID", mock.Anything, uint64(3)).Return(existing(), nil)
		shops.On("SlugTaken", mock.Anything, "new-name", uint64(3)).Return(false, nil)
		shops.On("Save", mock.Anything, mock.AnythingOfType("*domain.Shop")).Return(nil)

		name := "New Name"
		svc := NewShopService(shops)
		shop, err := svc.Update(context.Background(), 3, 1, domain.ShopUpdate{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "new-name", shop.Slug)
	})

	t.Run("non-owner refused", func(t *testing.T) {
		shops := new(mocks.MockShopRepository)
		shops.On("FindByID", mock.Anything, uint64(3)).Return(existing(), nil)

		svc := NewShopService(shops)
		_, err := svc.Update(context.Background(), 3, 42, domain.ShopUpdate{})
		assert.True(t, apperr.IsKind(err, apperr.KindUnauthorized))
	})

	t.Run("missing shop", func(t *testing.T) {
		shops := new(mocks.MockShopRepository)
		shops.On("FindByID", mock.Anything, uint64(3)).Return(nil, nil)

		svc := NewShopService(shops)
		_, err := svc.Update(context.Background(), 3, 1, domain.ShopUpdate{})
		assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	})
}

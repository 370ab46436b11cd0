package services

import (
	"context"
	"fmt"

	"shoplink/internal/apperr"
	"shoplink/internal/domain"
	"shoplink/internal/repository"
	"shoplink/internal/slug"
)

type ShopService struct {
	shops repository.ShopRepository
}

func NewShopService(shops repository.ShopRepository) *ShopService {
	return &ShopService{shops: shops}
}

func (s *ShopService) Create(ctx context.Context, shop *domain.Shop) (*domain.Shop, error) {
	if shop.Name == "" {
		return nil, apperr.New(apperr.KindInvalidArgument, "shop name is required")
	}

	sl, err := s.uniqueSlug(ctx, shop.Name, 0)
	if err != nil {
		return nil, err
	}
	shop.Slug = sl
	shop.IsActive = true

	if err := s.shops.Create(ctx, shop); err != nil {
		return nil, err
	}
	return shop, nil
}

func (s *ShopService) Get(ctx context.Context, id uint64) (*domain.Shop, error) {
	shop, err := s.shops.FindActiveByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, apperr.New(apperr.KindNotFound, "shop not found")
	}
	return shop, nil
}

func (s *ShopService) List(ctx context.Context, category string, limit, offset int) ([]domain.Shop, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.shops.List(ctx, category, limit, offset)
}

func (s *ShopService) Update(ctx context.Context, id, userID uint64, upd domain.ShopUpdate) (*domain.Shop, error) {
	shop, err := s.shops.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, apperr.New(apperr.KindNotFound, "shop not found")
	}
	if shop.OwnerID != userID {
		return nil, apperr.New(apperr.KindUnauthorized, "not your shop")
	}

	if upd.Name != nil && *upd.Name != shop.Name {
		shop.Name = *upd.Name
		sl, err := s.uniqueSlug(ctx, shop.Name, shop.ID)
		if err != nil {
			return nil, err
		}
		shop.Slug = sl
	}
	if upd.Category != nil {
		shop.Category = *upd.Category
	}
	if upd.Description != nil {
		shop.Description = *upd.Description
	}
	if upd.Location != nil {
		shop.Location = *upd.Location
	}
	if upd.Address != nil {
		shop.Address = *upd.Address
	}
	if upd.City != nil {
		shop.City = *upd.City
	}
	if upd.State != nil {
		shop.State = *upd.State
	}
	if upd.Country != nil {
		shop.Country = *upd.Country
	}
	if upd.Latitude != nil {
		shop.Latitude = *upd.Latitude
	}
	if upd.Longitude != nil {
		shop.Longitude = *upd.Longitude
	}
	if upd.Phone != nil {
		shop.Phone = *upd.Phone
	}
	if upd.Email != nil {
		shop.Email = *upd.Email
	}
	if upd.Website != nil {
		shop.Website = *upd.Website
	}
	if upd.BusinessHours != nil {
		shop.BusinessHours = *upd.BusinessHours
	}
	if upd.IsOnlineSelling != nil {
		shop.IsOnlineSelling = *upd.IsOnlineSelling
	}
	if upd.IsOfflineSelling != nil {
		shop.IsOfflineSelling = *upd.IsOfflineSelling
	}
	if upd.AcceptsOnlinePayment != nil {
		shop.AcceptsOnlinePayment = *upd.AcceptsOnlinePayment
	}
	if upd.AcceptsCash != nil {
		shop.AcceptsCash = *upd.AcceptsCash
	}

	if err := s.shops.Save(ctx, shop); err != nil {
		return nil, err
	}
	return shop, nil
}

// uniqueSlug slugifies the name and appends -2, -3, ... until the slug is
// free among other shops.
func (s *ShopService) uniqueSlug(ctx context.Context, name string, excludeID uint64) (string, error) {
	base := slug.Make(name)
	candidate := base
	for i := 2; ; i++ {
		taken, err := s.shops.SlugTaken(ctx, candidate, excludeID)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}

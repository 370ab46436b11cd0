package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"shoplink/internal/apperr"
	"shoplink/internal/domain"
	"shoplink/internal/repository"
	"shoplink/internal/slug"
)

const productCacheTTL = time.Minute

type ProductService struct {
	products    repository.ProductRepository
	shops       repository.ShopRepository
	redisClient *redis.Client
}

func NewProductService(products repository.ProductRepository, shops repository.ShopRepository) *ProductService {
	return &ProductService{products: products, shops: shops}
}

func (s *ProductService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

func (s *ProductService) Create(ctx context.Context, userID uint64, product *domain.Product) (*domain.Product, error) {
	if product.Name == "" {
		return nil, apperr.New(apperr.KindInvalidArgument, "product name is required")
	}
	if product.Price < 0 {
		return nil, apperr.New(apperr.KindInvalidArgument, "price cannot be negative")
	}

	shop, err := s.shops.FindByID(ctx, product.ShopID)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, apperr.New(apperr.KindNotFound, "shop not found")
	}
	if shop.OwnerID != userID {
		return nil, apperr.New(apperr.KindUnauthorized, "not your shop")
	}

	sl, err := s.uniqueSlug(ctx, product.ShopID, product.Name, 0)
	if err != nil {
		return nil, err
	}
	product.Slug = sl
	product.DiscountPercentage = domain.DiscountFor(product.Price, product.OriginalPrice)
	product.IsAvailable = true
	product.IsInStock = product.StockQuantity > 0

	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Get serves available products through the cache, counting a view on
// every hit.
func (s *ProductService) Get(ctx context.Context, id uint64) (*domain.Product, error) {
	if err := s.products.IncrementViews(ctx, id); err != nil {
		return nil, err
	}

	product, err := s.getWithCache(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperr.New(apperr.KindNotFound, "product not found")
	}
	return product, nil
}

func (s *ProductService) ListByShop(ctx context.Context, shopID uint64) ([]domain.Product, error) {
	return s.products.ListByShop(ctx, shopID)
}

func (s *ProductService) Update(ctx context.Context, id, userID uint64, upd domain.ProductUpdate) (*domain.Product, error) {
	product, owner, err := s.findOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if !owner {
		return nil, apperr.New(apperr.KindUnauthorized, "not your product")
	}

	if upd.Name != nil && *upd.Name != product.Name {
		product.Name = *upd.Name
		sl, err := s.uniqueSlug(ctx, product.ShopID, product.Name, product.ID)
		if err != nil {
			return nil, err
		}
		product.Slug = sl
	}
	if upd.Description != nil {
		product.Description = *upd.Description
	}
	if upd.Price != nil {
		if *upd.Price < 0 {
			return nil, apperr.New(apperr.KindInvalidArgument, "price cannot be negative")
		}
		product.Price = *upd.Price
	}
	if upd.OriginalPrice != nil {
		product.OriginalPrice = upd.OriginalPrice
	}
	if upd.StockQuantity != nil {
		if *upd.StockQuantity < 0 {
			return nil, apperr.New(apperr.KindInvalidArgument, "stock cannot be negative")
		}
		product.StockQuantity = *upd.StockQuantity
	}
	if upd.MinOrderQuantity != nil {
		product.MinOrderQuantity = *upd.MinOrderQuantity
	}
	if upd.MaxOrderQuantity != nil {
		product.MaxOrderQuantity = upd.MaxOrderQuantity
	}
	if upd.SKU != nil {
		product.SKU = *upd.SKU
	}
	if upd.Barcode != nil {
		product.Barcode = *upd.Barcode
	}
	if upd.Weight != nil {
		product.Weight = *upd.Weight
	}
	if upd.Dimensions != nil {
		product.Dimensions = *upd.Dimensions
	}
	if upd.Category != nil {
		product.Category = *upd.Category
	}
	if upd.Tags != nil {
		product.Tags = *upd.Tags
	}
	if upd.IsAvailable != nil {
		product.IsAvailable = *upd.IsAvailable
	}
	if upd.IsFeatured != nil {
		product.IsFeatured = *upd.IsFeatured
	}

	product.DiscountPercentage = domain.DiscountFor(product.Price, product.OriginalPrice)
	product.IsInStock = product.StockQuantity > 0

	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}
	s.invalidateCache(ctx, product.ID)
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id, userID uint64) error {
	_, owner, err := s.findOwned(ctx, id, userID)
	if err != nil {
		return err
	}
	if !owner {
		return apperr.New(apperr.KindUnauthorized, "not your product")
	}

	if err := s.products.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.invalidateCache(ctx, id)
	return nil
}

func (s *ProductService) findOwned(ctx context.Context, id, userID uint64) (*domain.Product, bool, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, false, err
	}
	if product == nil {
		return nil, false, apperr.New(apperr.KindNotFound, "product not found")
	}
	shop, err := s.shops.FindByID(ctx, product.ShopID)
	if err != nil {
		return nil, false, err
	}
	return product, shop != nil && shop.OwnerID == userID, nil
}

func (s *ProductService) getWithCache(ctx context.Context, id uint64) (*domain.Product, error) {
	cacheKey := fmt.Sprintf("product:%d", id)

	if s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			var p domain.Product
			if err := json.Unmarshal([]byte(cached), &p); err == nil {
				return &p, nil
			}
		}
	}

	product, err := s.products.FindAvailableByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.redisClient != nil && product != nil {
		if data, err := json.Marshal(product); err == nil {
			s.redisClient.Set(ctx, cacheKey, data, productCacheTTL)
		}
	}
	return product, nil
}

func (s *ProductService) invalidateCache(ctx context.Context, id uint64) {
	if s.redisClient == nil {
		return
	}
	s.redisClient.Del(ctx, fmt.Sprintf("product:%d", id))
}

func (s *ProductService) uniqueSlug(ctx context.Context, shopID uint64, name string, excludeID uint64) (string, error) {
	base := slug.Make(name)
	candidate := base
	for i := 2; ; i++ {
		taken, err := s.products.SlugTaken(ctx, shopID, candidate, excludeID)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}

package services

import (
	"context"

	"shoplink/internal/apperr"
	"shoplink/internal/domain"
	"shoplink/internal/repository"
)

type ReviewService struct {
	reviews  repository.ReviewRepository
	shops    repository.ShopRepository
	products repository.ProductRepository
}

func NewReviewService(reviews repository.ReviewRepository, shops repository.ShopRepository, products repository.ProductRepository) *ReviewService {
	return &ReviewService{reviews: reviews, shops: shops, products: products}
}

func (s *ReviewService) ReviewShop(ctx context.Context, userID, shopID uint64, rating int, title, body string) (*domain.ShopReview, error) {
	if rating < 1 || rating > 5 {
		return nil, apperr.New(apperr.KindInvalidArgument, "rating must be between 1 and 5")
	}

	shop, err := s.shops.FindActiveByID(ctx, shopID)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, apperr.New(apperr.KindNotFound, "shop not found")
	}

	reviewed, err := s.reviews.HasShopReview(ctx, shopID, userID)
	if err != nil {
		return nil, err
	}
	if reviewed {
		return nil, apperr.New(apperr.KindInvalidArgument, "you have already reviewed this shop")
	}

	review := &domain.ShopReview{
		ShopID: shopID,
		UserID: userID,
		Rating: rating,
		Title:  title,
		Body:   body,
	}
	if err := s.reviews.CreateShopReview(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) ListShopReviews(ctx context.Context, shopID uint64) ([]domain.ShopReview, error) {
	return s.reviews.ListShopReviews(ctx, shopID)
}

func (s *ReviewService) ReviewProduct(ctx context.Context, userID, productID uint64, rating int, title, body string) (*domain.ProductReview, error) {
	if rating < 1 || rating > 5 {
		return nil, apperr.New(apperr.KindInvalidArgument, "rating must be between 1 and 5")
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperr.New(apperr.KindNotFound, "product not found")
	}

	reviewed, err := s.reviews.HasProductReview(ctx, productID, userID)
	if err != nil {
		return nil, err
	}
	if reviewed {
		return nil, apperr.New(apperr.KindInvalidArgument, "you have already reviewed this product")
	}

	review := &domain.ProductReview{
		ProductID: productID,
		UserID:    userID,
		Rating:    rating,
		Title:     title,
		Body:      body,
	}
	if err := s.reviews.CreateProductReview(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) ListProductReviews(ctx context.Context, productID uint64) ([]domain.ProductReview, error) {
	return s.reviews.ListProductReviews(ctx, productID)
}

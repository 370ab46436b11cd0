package services

import (
	"context"

	"shoplink/internal/apperr"
	"shoplink/internal/domain"
	"shoplink/internal/repository"
)

type CartService struct {
	cart     repository.CartRepository
	products repository.ProductRepository
}

func NewCartService(cart repository.CartRepository, products repository.ProductRepository) *CartService {
	return &CartService{cart: cart, products: products}
}

func (s *CartService) Get(ctx context.Context, userID uint64) ([]domain.CartItem, float64, error) {
	items, err := s.cart.ListByUser(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	var total float64
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}
	return items, total, nil
}

// AddItem merges with an existing line for the same product, re-checking
// stock against the merged quantity.
func (s *CartService) AddItem(ctx context.Context, userID, productID uint64, quantity int64) error {
	if quantity < 1 {
		return apperr.New(apperr.KindInvalidArgument, "quantity must be at least 1")
	}

	product, err := s.products.FindAvailableByID(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil {
		return apperr.New(apperr.KindNotFound, "product not found")
	}

	existing, err := s.cart.Find(ctx, userID, productID)
	if err != nil {
		return err
	}

	want := quantity
	if existing != nil {
		want += existing.Quantity
	}
	if product.StockQuantity < want {
		return apperr.Newf(apperr.KindInsufficientStock, "only %d of product %d in stock", product.StockQuantity, productID)
	}

	if existing != nil {
		_, err := s.cart.UpdateQuantity(ctx, userID, productID, want)
		return err
	}
	return s.cart.Create(ctx, &domain.CartItem{UserID: userID, ProductID: productID, Quantity: quantity})
}

func (s *CartService) UpdateItem(ctx context.Context, userID, productID uint64, quantity int64) error {
	if quantity < 1 {
		return apperr.New(apperr.KindInvalidArgument, "quantity must be at least 1")
	}

	product, err := s.products.FindAvailableByID(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil {
		return apperr.New(apperr.KindNotFound, "product not found")
	}
	if product.StockQuantity < quantity {
		return apperr.Newf(apperr.KindInsufficientStock, "only %d of product %d in stock", product.StockQuantity, productID)
	}

	updated, err := s.cart.UpdateQuantity(ctx, userID, productID, quantity)
	if err != nil {
		return err
	}
	if !updated {
		return apperr.New(apperr.KindNotFound, "item not in cart")
	}
	return nil
}

func (s *CartService) RemoveItem(ctx context.Context, userID, productID uint64) error {
	removed, err := s.cart.Delete(ctx, userID, productID)
	if err != nil {
		return err
	}
	if !removed {
		return apperr.New(apperr.KindNotFound, "item not in cart")
	}
	return nil
}

func (s *CartService) Clear(ctx context.Context, userID uint64) error {
	return s.cart.Clear(ctx, userID)
}

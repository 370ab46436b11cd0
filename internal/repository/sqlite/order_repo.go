package sqlite

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"shoplink/internal/apperr"
	"shoplink/internal/domain"
	"shoplink/internal/repository"
)

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) Place(ctx context.Context, order *domain.Order, items []domain.OrderItemInput) (*domain.Order, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var shop domain.Shop
		err := tx.Where("id = ? AND is_active = ?", order.ShopID, true).First(&shop).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.New(apperr.KindNotFound, "shop not found")
		}
		if err != nil {
			return err
		}

		// Validate the full batch before touching anything. Rows are read
		// with an exclusive lock so a competing order against the same
		// product waits behind this transaction.
		total := 0.0
		lines := make([]domain.OrderItem, 0, len(items))
		for _, it := range items {
			var p domain.Product
			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("id = ? AND shop_id = ?", it.ProductID, order.ShopID).
				First(&p).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.Newf(apperr.KindNotFound, "product %d not found", it.ProductID)
			}
			if err != nil {
				return err
			}
			if !p.IsAvailable {
				return apperr.Newf(apperr.KindUnavailable, "product %d not available", it.ProductID)
			}
			if p.StockQuantity < it.Quantity {
				return apperr.Newf(apperr.KindInsufficientStock, "insufficient stock for product %d", it.ProductID)
			}

			subtotal := p.Price * float64(it.Quantity)
			total += subtotal
			lines = append(lines, domain.OrderItem{
				ProductID:   it.ProductID,
				Quantity:    it.Quantity,
				UnitPrice:   p.Price,
				Subtotal:    subtotal,
				ProductName: p.Name,
				ImageURL:    p.ImageURL,
			})
		}

		order.Status = domain.OrderStatusPending
		order.TotalAmount = total
		if order.Currency == "" {
			order.Currency = "USD"
		}
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		for i := range lines {
			lines[i].OrderID = order.ID
		}
		if err := tx.Create(&lines).Error; err != nil {
			return err
		}

		for _, it := range items {
			// Guarded decrement: the stock check is re-evaluated by the
			// UPDATE itself, so a concurrent commit between the read above
			// and this write cannot drive stock below zero.
			res := tx.Model(&domain.Product{}).
				Where("id = ? AND stock_quantity >= ?", it.ProductID, it.Quantity).
				Updates(map[string]any{
					"stock_quantity": gorm.Expr("stock_quantity - ?", it.Quantity),
					"sales_count":    gorm.Expr("sales_count + ?", it.Quantity),
					"is_in_stock":    gorm.Expr("stock_quantity - ? > 0", it.Quantity),
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected != 1 {
				return apperr.Newf(apperr.KindInsufficientStock, "insufficient stock for product %d", it.ProductID)
			}
		}

		err = tx.Model(&domain.Shop{}).Where("id = ?", order.ShopID).
			Update("total_sales", gorm.Expr("total_sales + ?", total)).Error
		if err != nil {
			return err
		}

		payment := domain.Payment{
			OrderID:   order.ID,
			Provider:  order.PaymentMethod,
			Reference: uuid.NewString(),
			Amount:    total,
			Currency:  order.Currency,
			Status:    domain.PaymentStatusPending,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		order.Items = lines
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepo) FindByID(ctx context.Context, id uint64) (*domain.Order, error) {
	var o domain.Order
	if err := r.db.WithContext(ctx).First(&o, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	items, err := r.itemsOf(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

func (r *orderRepo) itemsOf(ctx context.Context, orderID uint64) ([]domain.OrderItem, error) {
	var items []domain.OrderItem
	err := r.db.WithContext(ctx).
		Table("order_items oi").
		Select("oi.*, p.name AS product_name, p.image_url").
		Joins("JOIN products p ON oi.product_id = p.id").
		Where("oi.order_id = ?", orderID).
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *orderRepo) ListByUser(ctx context.Context, userID uint64) ([]domain.Order, error) {
	var out []domain.Order
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *orderRepo) ListByShop(ctx context.Context, shopID uint64) ([]domain.Order, error) {
	var out []domain.Order
	err := r.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *orderRepo) UpdateStatus(ctx context.Context, orderID uint64, to domain.OrderStatus) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var o domain.Order
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&o, orderID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.New(apperr.KindNotFound, "order not found")
		}
		if err != nil {
			return err
		}

		if !domain.CanTransition(o.Status, to) {
			return apperr.Newf(apperr.KindInvalidArgument, "cannot transition order from %s to %s", o.Status, to)
		}

		if err := tx.Model(&o).Update("status", to).Error; err != nil {
			return err
		}

		if to == domain.OrderStatusCompleted {
			err := tx.Model(&domain.Payment{}).
				Where("order_id = ?", orderID).
				Update("status", domain.PaymentStatusCompleted).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

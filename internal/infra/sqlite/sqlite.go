package sqlite

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"shoplink/internal/domain"
)

// Open connects to the SQLite database at path and migrates the schema.
// Foreign keys and a busy timeout are enabled so write transactions from
// concurrent requests queue instead of failing immediately.
func Open(path string) (*gorm.DB, error) {
	dsn := path + "?_foreign_keys=1&_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Shop{},
		&domain.Product{},
		&domain.Event{},
		&domain.EventRegistration{},
		&domain.ShopFollower{},
		&domain.ShopReview{},
		&domain.ProductReview{},
		&domain.CartItem{},
		&domain.Order{},
		&domain.OrderItem{},
		&domain.Payment{},
		&domain.Notification{},
	)
}

package database

import (
	"github.com/pr-poehali-dev/sochi-tour-guide-app/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Attraction{},
		&models.Hotel{},
		&models.Booking{},
		&models.Favorite{},
		&models.HotelSearchHistory{},
	); err != nil {
		return err
	}

	// Индексы под частые выборки, которые AutoMigrate не покрывает
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_bookings_user_created ON bookings(user_id, created_at DESC)`).Error; err != nil {
		return err
	}
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_search_history_user_created ON hotel_search_histories(user_id, created_at DESC)`).Error; err != nil {
		return err
	}

	return nil
}

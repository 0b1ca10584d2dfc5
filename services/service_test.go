package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"altairis/models"
	"altairis/utils"
)

// setupTestDB mở một SQLite in-memory riêng cho mỗi test. Giới hạn một
// connection để các transaction xếp hàng thay vì lỗi database locked.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.Hotel{},
		&models.RoomType{},
		&models.Inventory{},
		&models.Booking{},
		&models.BookingDetail{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	return db
}

func date(s string) time.Time {
	d, err := utils.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func newStay(from, to string) utils.DateRange {
	return utils.NewDateRange(date(from), date(to))
}

// seedHotel tạo khách sạn và một loại phòng để test
func seedHotel(t *testing.T, db *gorm.DB, basePriceCents int64) (models.Hotel, models.RoomType) {
	t.Helper()

	hotel := models.Hotel{
		Name:       "Grand Altairis Madrid",
		City:       "Madrid",
		Country:    "Spain",
		StarRating: 5,
		IsActive:   true,
	}
	if err := db.Create(&hotel).Error; err != nil {
		t.Fatalf("failed to seed hotel: %v", err)
	}

	roomType := models.RoomType{
		Name:           "Doble Standard",
		HotelID:        hotel.ID,
		Capacity:       2,
		BasePriceCents: basePriceCents,
		IsActive:       true,
	}
	if err := db.Create(&roomType).Error; err != nil {
		t.Fatalf("failed to seed room type: %v", err)
	}
	return hotel, roomType
}

// seedInventory tạo các dòng tồn kho [from, to) với cùng giá trị
func seedInventory(t *testing.T, db *gorm.DB, roomTypeID uint, from, to string, totalRooms int, priceCents int64) {
	t.Helper()

	rng := utils.NewDateRange(date(from), date(to))
	for _, d := range rng.Dates() {
		inv := models.Inventory{
			RoomTypeID:  roomTypeID,
			Date:        d,
			TotalRooms:  totalRooms,
			PriceCents:  priceCents,
			IsAvailable: true,
		}
		if err := db.Create(&inv).Error; err != nil {
			t.Fatalf("failed to seed inventory for %s: %v", d, err)
		}
	}
}

func getInventoryRow(t *testing.T, db *gorm.DB, roomTypeID uint, day string) models.Inventory {
	t.Helper()

	var inv models.Inventory
	err := db.Where("room_type_id = ? AND date = ?", roomTypeID, date(day)).First(&inv).Error
	if err != nil {
		t.Fatalf("inventory row for %s not found: %v", day, err)
	}
	return inv
}

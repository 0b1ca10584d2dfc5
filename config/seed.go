package config

import (
	"fmt"
	"math/rand"
	"time"

	"gorm.io/gorm"

	"altairis/models"
)

// SeedData tạo dữ liệu mẫu khi database còn trống. Chạy lại không tạo trùng.
func SeedData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Hotel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hotels := []models.Hotel{
		{
			Name:       "Grand Altairis Madrid",
			ChainCode:  "ALT",
			Address:    "Gran Vía 123",
			City:       "Madrid",
			Country:    "Spain",
			PostalCode: "28013",
			Phone:      "+34 91 123 4567",
			Email:      "madrid@altairis.com",
			StarRating: 5,
			IsActive:   true,
			RoomTypes: []models.RoomType{
				{
					Name:           "Doble Standard",
					Description:    "Habitación doble con vistas a la ciudad",
					Capacity:       2,
					BasePriceCents: 15000,
					IsActive:       true,
					Inventories:    generateInventory(10, 12000, 20000),
				},
				{
					Name:           "Suite Ejecutiva",
					Description:    "Suite de lujo con sala de estar",
					Capacity:       2,
					BasePriceCents: 35000,
					IsActive:       true,
					Inventories:    generateInventory(5, 30000, 50000),
				},
				{
					Name:           "Familiar",
					Description:    "Habitación familiar con 2 camas dobles",
					Capacity:       4,
					BasePriceCents: 28000,
					IsActive:       true,
					Inventories:    generateInventory(8, 22000, 35000),
				},
			},
		},
		{
			Name:       "Altairis Barcelona Beach",
			ChainCode:  "ALT",
			Address:    "Paseo Marítimo 45",
			City:       "Barcelona",
			Country:    "Spain",
			PostalCode: "08003",
			Phone:      "+34 93 987 6543",
			Email:      "barcelona@altairis.com",
			StarRating: 4,
			IsActive:   true,
			RoomTypes: []models.RoomType{
				{
					Name:           "Doble Vista Mar",
					Description:    "Habitación doble con vistas al mar",
					Capacity:       2,
					BasePriceCents: 18000,
					IsActive:       true,
					Inventories:    generateInventory(12, 15000, 22000),
				},
				{
					Name:           "Junior Suite",
					Description:    "Suite junior con terraza privada",
					Capacity:       2,
					BasePriceCents: 32000,
					IsActive:       true,
					Inventories:    generateInventory(6, 28000, 40000),
				},
			},
		},
		{
			Name:       "Altairis Paris Champs-Élysées",
			ChainCode:  "ALT",
			Address:    "Avenue des Champs-Élysées 89",
			City:       "Paris",
			Country:    "France",
			PostalCode: "75008",
			Phone:      "+33 1 40 20 50 60",
			Email:      "paris@altairis.com",
			StarRating: 5,
			IsActive:   true,
			RoomTypes: []models.RoomType{
				{
					Name:           "Doble Superior",
					Description:    "Habitación doble con vistas a los Campos Elíseos",
					Capacity:       2,
					BasePriceCents: 40000,
					IsActive:       true,
					Inventories:    generateInventory(8, 35000, 50000),
				},
				{
					Name:           "Suite Presidencial",
					Description:    "Suite de lujo con jacuzzi",
					Capacity:       2,
					BasePriceCents: 80000,
					IsActive:       true,
					Inventories:    generateInventory(3, 70000, 100000),
				},
			},
		},
		{
			Name:       "Altairis Rome Centro",
			ChainCode:  "ALT",
			Address:    "Via del Corso 156",
			City:       "Rome",
			Country:    "Italy",
			PostalCode: "00186",
			Phone:      "+39 06 678 9012",
			Email:      "rome@altairis.com",
			StarRating: 4,
			IsActive:   true,
			RoomTypes: []models.RoomType{
				{
					Name:           "Doble Clásica",
					Description:    "Habitación doble con estilo clásico italiano",
					Capacity:       2,
					BasePriceCents: 22000,
					IsActive:       true,
					Inventories:    generateInventory(10, 18000, 28000),
				},
				{
					Name:           "Suite Familiar",
					Description:    "Suite familiar para 4 personas",
					Capacity:       4,
					BasePriceCents: 45000,
					IsActive:       true,
					Inventories:    generateInventory(5, 40000, 60000),
				},
			},
		},
	}

	if err := db.Create(&hotels).Error; err != nil {
		return err
	}

	return createDemoBookings(db, hotels)
}

// generateInventory tạo 60 ngày tồn kho demo với giá và lượng giữ ngẫu nhiên
func generateInventory(totalRooms int, minPriceCents, maxPriceCents int64) []models.Inventory {
	inventories := make([]models.Inventory, 0, 61)
	startDate := today()

	for i := 0; i <= 60; i++ {
		price := minPriceCents + rand.Int63n(maxPriceCents-minPriceCents+1)
		reserved := 0
		if totalRooms > 1 {
			reserved = rand.Intn(totalRooms / 2)
		}
		inventories = append(inventories, models.Inventory{
			Date:          startDate.AddDate(0, 0, i),
			TotalRooms:    totalRooms,
			ReservedRooms: reserved,
			PriceCents:    price,
			IsAvailable:   true,
		})
	}
	return inventories
}

func createDemoBookings(db *gorm.DB, hotels []models.Hotel) error {
	bookings := make([]models.Booking, 0, 50)
	now := time.Now().UTC()

	for i := 0; i < 50; i++ {
		hotel := hotels[rand.Intn(len(hotels))]
		checkIn := today().AddDate(0, 0, rand.Intn(90)-30)
		checkOut := checkIn.AddDate(0, 0, 1+rand.Intn(13))

		notes := ""
		if i%5 == 0 {
			notes = "Special request: Late check-in required"
		}

		bookings = append(bookings, models.Booking{
			BookingNumber:    fmt.Sprintf("DEMO%s%03d", now.Format("20060102150405"), i),
			HotelID:          hotel.ID,
			CustomerName:     fmt.Sprintf("Customer %d", i+1),
			CustomerEmail:    fmt.Sprintf("customer%d@example.com", i+1),
			CustomerPhone:    fmt.Sprintf("+34 600 %06d", 100000+rand.Intn(900000)),
			CheckInDate:      checkIn,
			CheckOutDate:     checkOut,
			NumberOfGuests:   1 + rand.Intn(3),
			TotalAmountCents: int64(500+rand.Intn(4500)) * 100,
			Status:           randomStatus(),
			Notes:            notes,
			CreatedAt:        now.AddDate(0, 0, -rand.Intn(90)),
		})
	}

	return db.Create(&bookings).Error
}

func randomStatus() string {
	statuses := []string{
		models.BookingStatusConfirmed,
		models.BookingStatusConfirmed,
		models.BookingStatusConfirmed,
		models.BookingStatusPending,
		models.BookingStatusCancelled,
		models.BookingStatusCheckedIn,
		models.BookingStatusCheckedOut,
	}
	return statuses[rand.Intn(len(statuses))]
}

func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

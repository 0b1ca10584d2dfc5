package models

import (
	"fmt"
	"time"
)

type Hotel struct {
	ID         uint       `json:"id" gorm:"primaryKey"` // ID cho hotel
	Name       string     `json:"name" gorm:"size:200"` // Tên khách sạn (name)
	ChainCode  string     `json:"chainCode" gorm:"size:50"`
	Address    string     `json:"address" gorm:"size:300"` // Địa chỉ khách sạn
	City       string     `json:"city" gorm:"size:100"`
	Country    string     `json:"country" gorm:"size:100"`
	PostalCode string     `json:"postalCode" gorm:"size:20"`
	Phone      string     `json:"phone" gorm:"size:20"`
	Email      string     `json:"email" gorm:"size:100"`
	StarRating int        `json:"starRating" gorm:"default:3"`
	IsActive   bool       `json:"isActive" gorm:"default:true"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
	RoomTypes  []RoomType `json:"roomTypes" gorm:"foreignKey:HotelID"` // Danh sách loại phòng
	Bookings   []Booking  `json:"-" gorm:"foreignKey:HotelID"`
}

func (h *Hotel) ValidateStarRating() error {
	if h.StarRating < 1 || h.StarRating > 5 {
		return fmt.Errorf("invalid star rating: %d, must be between 1 and 5", h.StarRating)
	}
	return nil
}

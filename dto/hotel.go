package dto

import "altairis/models"

// HotelResponse là DTO cho danh sách khách sạn
type HotelResponse struct {
	ID                  uint   `json:"id"`
	Name                string `json:"name"`
	City                string `json:"city"`
	Country             string `json:"country"`
	StarRating          int    `json:"starRating"`
	IsActive            bool   `json:"isActive"`
	RoomTypesCount      int    `json:"roomTypesCount"`
	ActiveBookingsCount int    `json:"activeBookingsCount"`
}

type HotelDetailResponse struct {
	HotelResponse
	ChainCode  string             `json:"chainCode"`
	Address    string             `json:"address"`
	PostalCode string             `json:"postalCode"`
	Phone      string             `json:"phone"`
	Email      string             `json:"email"`
	CreatedAt  string             `json:"createdAt"`
	UpdatedAt  string             `json:"updatedAt"`
	RoomTypes  []RoomTypeResponse `json:"roomTypes"`
}

type CreateHotelRequest struct {
	Name       string `json:"name" binding:"required,max=200"`
	ChainCode  string `json:"chainCode" binding:"max=50"`
	Address    string `json:"address" binding:"max=300"`
	City       string `json:"city" binding:"required,max=100"`
	Country    string `json:"country" binding:"required,max=100"`
	PostalCode string `json:"postalCode" binding:"max=20"`
	Phone      string `json:"phone" binding:"max=20"`
	Email      string `json:"email" binding:"omitempty,email,max=100"`
	StarRating int    `json:"starRating" binding:"omitempty,min=1,max=5"`
}

type UpdateHotelRequest struct {
	CreateHotelRequest
	IsActive *bool `json:"isActive"`
}

// ScoredHotel gắn điểm phù hợp cho kết quả tìm kiếm gần đúng
type ScoredHotel struct {
	Hotel models.Hotel `json:"hotel"`
	Score int          `json:"score"`
}

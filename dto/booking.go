package dto

import "time"

// BookingResponse là DTO cho danh sách booking
type BookingResponse struct {
	ID               uint      `json:"id"`
	BookingNumber    string    `json:"bookingNumber"`
	HotelID          uint      `json:"hotelId"`
	HotelName        string    `json:"hotelName"`
	CustomerName     string    `json:"customerName"`
	CheckInDate      string    `json:"checkInDate"`
	CheckOutDate     string    `json:"checkOutDate"`
	Nights           int       `json:"nights"`
	NumberOfGuests   int       `json:"numberOfGuests"`
	TotalAmountCents int64     `json:"totalAmountCents"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
}

// BookingDetailResponse là DTO cho chi tiết booking kèm các dòng phòng
type BookingDetailResponse struct {
	BookingResponse
	CustomerEmail string                `json:"customerEmail"`
	CustomerPhone string                `json:"customerPhone"`
	Notes         string                `json:"notes"`
	UpdatedAt     time.Time             `json:"updatedAt"`
	Items         []BookingItemResponse `json:"items"`
}

type BookingItemResponse struct {
	RoomTypeID        uint   `json:"roomTypeId"`
	RoomTypeName      string `json:"roomTypeName"`
	NumberOfRooms     int    `json:"numberOfRooms"`
	PricePerRoomCents int64  `json:"pricePerRoomCents"`
	SubtotalCents     int64  `json:"subtotalCents"`
}

type BookingRoomRequest struct {
	RoomTypeID    uint `json:"roomTypeId" binding:"required"`
	NumberOfRooms int  `json:"numberOfRooms" binding:"required,min=1,max=100"`
}

type CreateBookingRequest struct {
	HotelID        uint                 `json:"hotelId" binding:"required"`
	CustomerName   string               `json:"customerName" binding:"required,max=200"`
	CustomerEmail  string               `json:"customerEmail" binding:"omitempty,email,max=100"`
	CustomerPhone  string               `json:"customerPhone" binding:"max=20"`
	CheckInDate    string               `json:"checkInDate" binding:"required,datetime=2006-01-02"`
	CheckOutDate   string               `json:"checkOutDate" binding:"required,datetime=2006-01-02"`
	NumberOfGuests int                  `json:"numberOfGuests" binding:"omitempty,min=1,max=100"`
	Notes          string               `json:"notes" binding:"max=1000"`
	Rooms          []BookingRoomRequest `json:"rooms" binding:"required,min=1,dive"`
}

// UpdateBookingStatusRequest dùng custom validation bookingstatus
// đăng ký trong package validator.
type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required,bookingstatus"`
}

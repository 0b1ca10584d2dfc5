package dto

// RoomTypeResponse là DTO cho loại phòng
type RoomTypeResponse struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	HotelID        uint   `json:"hotelId"`
	HotelName      string `json:"hotelName"`
	Capacity       int    `json:"capacity"`
	BasePriceCents int64  `json:"basePriceCents"`
	IsActive       bool   `json:"isActive"`
	AvailableRooms int    `json:"availableRooms"` // Số phòng trống hôm nay
}

type CreateRoomTypeRequest struct {
	Name           string `json:"name" binding:"required,max=100"`
	Description    string `json:"description" binding:"max=500"`
	HotelID        uint   `json:"hotelId" binding:"required"`
	Capacity       int    `json:"capacity" binding:"omitempty,min=1,max=10"`
	BasePriceCents int64  `json:"basePriceCents" binding:"omitempty,min=0"`
}

type UpdateRoomTypeRequest struct {
	Name           string `json:"name" binding:"required,max=100"`
	Description    string `json:"description" binding:"max=500"`
	Capacity       int    `json:"capacity" binding:"omitempty,min=1,max=10"`
	BasePriceCents int64  `json:"basePriceCents" binding:"omitempty,min=0"`
	IsActive       *bool  `json:"isActive"`
}

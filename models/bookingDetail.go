package models

// BookingDetail là một dòng phòng trong booking, bất biến sau khi tạo.
// PricePerRoomCents chụp giá đêm đầu tiên tại thời điểm đặt; hủy booking
// không ghi lại dòng, chỉ đổi status và trả tồn kho.
type BookingDetail struct {
	ID                uint     `json:"id" gorm:"primaryKey"`
	BookingID         uint     `json:"bookingId" gorm:"index"`
	RoomTypeID        uint     `json:"roomTypeId"`
	RoomType          RoomType `json:"roomType" gorm:"foreignKey:RoomTypeID"`
	NumberOfRooms     int      `json:"numberOfRooms" gorm:"default:1"`
	PricePerRoomCents int64    `json:"pricePerRoomCents"`
	SubtotalCents     int64    `json:"subtotalCents"` // rooms × nights × pricePerRoom
}

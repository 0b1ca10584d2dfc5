package models

import "time"

// RoomType là loại phòng của một khách sạn. Xóa loại phòng chỉ hạ cờ
// IsActive (soft delete) vì booking và inventory cũ còn tham chiếu đến nó.
type RoomType struct {
	ID             uint        `json:"id" gorm:"primaryKey"`
	Name           string      `json:"name" gorm:"size:100"`
	Description    string      `json:"description" gorm:"size:500"`
	HotelID        uint        `json:"hotelId" gorm:"index"`
	Hotel          Hotel       `json:"-" gorm:"foreignKey:HotelID"`
	Capacity       int         `json:"capacity" gorm:"default:2"` // Số khách tối đa mỗi phòng
	BasePriceCents int64       `json:"basePriceCents"`
	IsActive       bool        `json:"isActive" gorm:"default:true"`
	CreatedAt      time.Time   `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time   `gorm:"autoUpdateTime" json:"updatedAt"`
	Inventories    []Inventory `json:"-" gorm:"foreignKey:RoomTypeID"`
}

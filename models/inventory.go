package models

import "time"

// Inventory là một dòng sổ tồn kho cho một (loại phòng, ngày). Mỗi cặp
// (room_type_id, date) chỉ có tối đa một dòng. Bất biến trung tâm:
// 0 <= reserved_rooms <= total_rooms tại mọi thời điểm.
type Inventory struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	RoomTypeID    uint      `json:"roomTypeId" gorm:"uniqueIndex:idx_inventory_room_type_date"`
	Date          time.Time `json:"date" gorm:"type:date;uniqueIndex:idx_inventory_room_type_date"`
	TotalRooms    int       `json:"totalRooms"`
	ReservedRooms int       `json:"reservedRooms" gorm:"default:0;check:chk_inventory_reserved,reserved_rooms >= 0 AND reserved_rooms <= total_rooms"`
	PriceCents    int64     `json:"priceCents"`
	IsAvailable   bool      `json:"isAvailable" gorm:"default:true"` // Khóa bán tay, độc lập với sức chứa
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	RoomType      RoomType  `json:"-" gorm:"foreignKey:RoomTypeID"`
}

func (i *Inventory) AvailableRooms() int {
	return i.TotalRooms - i.ReservedRooms
}

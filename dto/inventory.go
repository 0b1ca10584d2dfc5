package dto

// InventoryResponse là DTO cho một dòng tồn kho
type InventoryResponse struct {
	ID                  uint    `json:"id"`
	RoomTypeID          uint    `json:"roomTypeId"`
	RoomTypeName        string  `json:"roomTypeName"`
	Date                string  `json:"date"`
	TotalRooms          int     `json:"totalRooms"`
	ReservedRooms       int     `json:"reservedRooms"`
	AvailableRooms      int     `json:"availableRooms"`
	PriceCents          int64   `json:"priceCents"`
	IsAvailable         bool    `json:"isAvailable"`
	OccupancyPercentage float64 `json:"occupancyPercentage"`
}

type UpdateInventoryRequest struct {
	TotalRooms  int   `json:"totalRooms" binding:"min=0,max=1000"`
	PriceCents  int64 `json:"priceCents" binding:"min=0"`
	IsAvailable *bool `json:"isAvailable" binding:"required"`
}

type BulkInventoryUpdateRequest struct {
	RoomTypeID    uint                   `json:"roomTypeId" binding:"required"`
	StartDate     string                 `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate       string                 `json:"endDate" binding:"required,datetime=2006-01-02"`
	InventoryData UpdateInventoryRequest `json:"inventoryData" binding:"required"`
}

// OccupancyPoint là một điểm trong chuỗi occupancy theo ngày
type OccupancyPoint struct {
	TotalRooms    int     `json:"totalRooms"`
	ReservedRooms int     `json:"reservedRooms"`
	OccupancyRate float64 `json:"occupancyRate"` // phần trăm, làm tròn 2 chữ số
}

package dto

// DashboardStatsResponse là DTO cho số liệu dashboard
type DashboardStatsResponse struct {
	TotalHotels       int                `json:"totalHotels"`
	ActiveBookings    int                `json:"activeBookings"` // Đang lưu trú hôm nay
	BookingsToday     int                `json:"bookingsToday"`
	RevenueTodayCents int64              `json:"revenueTodayCents"`
	OccupancyRate     float64            `json:"occupancyRate"`
	TopHotels         []TopHotelResponse `json:"topHotels"`
}

type TopHotelResponse struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	City         string `json:"city"`
	BookingCount int    `json:"bookingCount"`
	RevenueCents int64  `json:"revenueCents"`
}

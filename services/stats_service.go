package services

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"altairis/config"
	"altairis/dto"
	"altairis/errors"
	"altairis/models"
	"altairis/services/logger"
	"altairis/utils"
)

const (
	// DashboardCacheKey là key Redis cho số liệu dashboard
	DashboardCacheKey = "stats:dashboard"
	dashboardCacheTTL = 60 * time.Second
	topHotelsWindow   = 30 // ngày
	topHotelsLimit    = 5
)

type StatsServiceOptions struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Logger logger.Logger
	Clock  Clock
}

// StatsService tổng hợp số liệu vận hành cho dashboard
type StatsService struct {
	db    *gorm.DB
	rdb   *redis.Client
	log   logger.Logger
	clock Clock
}

func NewStatsService(opts StatsServiceOptions) *StatsService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	c := opts.Clock
	if c == nil {
		c = NewRealClock()
	}
	return &StatsService{db: opts.DB, rdb: opts.Redis, log: l, clock: c}
}

// dashboardCache bọc payload để phân biệt cache miss với dashboard rỗng
type dashboardCache struct {
	Stats    dto.DashboardStatsResponse `json:"stats"`
	CachedAt time.Time                  `json:"cachedAt"`
}

// GetDashboardStats trả về số liệu dashboard, cache Redis 60 giây.
// Redis lỗi thì tính trực tiếp từ DB, không chặn request.
func (s *StatsService) GetDashboardStats() (*dto.DashboardStatsResponse, error) {
	if s.rdb != nil {
		var cached dashboardCache
		if err := GetFromRedis(config.Ctx, s.rdb, DashboardCacheKey, &cached); err != nil {
			s.log.Warn("Redis read failed for dashboard stats: %v", err)
		} else if !cached.CachedAt.IsZero() {
			return &cached.Stats, nil
		}
	}

	stats, err := s.computeDashboardStats()
	if err != nil {
		return nil, err
	}

	if s.rdb != nil {
		payload := dashboardCache{Stats: *stats, CachedAt: s.clock.Now().UTC()}
		if err := SetToRedis(config.Ctx, s.rdb, DashboardCacheKey, payload, dashboardCacheTTL); err != nil {
			s.log.Warn("Redis write failed for dashboard stats: %v", err)
		}
	}
	return stats, nil
}

// InvalidateDashboard xóa cache dashboard, gọi sau khi tạo hoặc hủy booking
func (s *StatsService) InvalidateDashboard() {
	if s.rdb == nil {
		return
	}
	if err := DeleteFromRedis(config.Ctx, s.rdb, DashboardCacheKey); err != nil {
		s.log.Warn("Redis delete failed for dashboard stats: %v", err)
	}
}

func (s *StatsService) computeDashboardStats() (*dto.DashboardStatsResponse, error) {
	today := utils.DateOf(s.clock.Now())
	tomorrow := today.AddDate(0, 0, 1)

	var totalHotels int64
	if err := s.db.Model(&models.Hotel{}).Where("is_active = ?", true).Count(&totalHotels).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi đếm khách sạn", err)
	}

	var bookingsToday int64
	err := s.db.Model(&models.Booking{}).
		Where("created_at >= ? AND created_at < ?", today, tomorrow).
		Count(&bookingsToday).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi đếm booking", err)
	}

	// Khách đang lưu trú: booking Confirmed phủ qua hôm nay
	var activeBookings int64
	err = s.db.Model(&models.Booking{}).
		Where("status = ? AND check_in_date <= ? AND check_out_date >= ?",
			models.BookingStatusConfirmed, today, today).
		Count(&activeBookings).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi đếm booking", err)
	}

	var revenueTodayCents int64
	err = s.db.Model(&models.Booking{}).
		Where("created_at >= ? AND created_at < ? AND status <> ?", today, tomorrow, models.BookingStatusCancelled).
		Select("COALESCE(SUM(total_amount_cents), 0)").
		Scan(&revenueTodayCents).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi tính doanh thu", err)
	}

	type occupancyRow struct {
		TotalRooms    int64
		ReservedRooms int64
	}
	var occ occupancyRow
	err = s.db.Model(&models.Inventory{}).
		Where("date = ?", today).
		Select("COALESCE(SUM(total_rooms), 0) AS total_rooms, COALESCE(SUM(reserved_rooms), 0) AS reserved_rooms").
		Scan(&occ).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi tính occupancy", err)
	}
	occupancyRate := 0.0
	if occ.TotalRooms > 0 {
		occupancyRate = Round2(float64(occ.ReservedRooms) * 100 / float64(occ.TotalRooms))
	}

	topHotels, err := s.topHotels(today)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardStatsResponse{
		TotalHotels:       int(totalHotels),
		ActiveBookings:    int(activeBookings),
		BookingsToday:     int(bookingsToday),
		RevenueTodayCents: revenueTodayCents,
		OccupancyRate:     occupancyRate,
		TopHotels:         topHotels,
	}, nil
}

// topHotels xếp hạng khách sạn đang hoạt động theo doanh thu booking
// không hủy trong 30 ngày gần nhất. LEFT JOIN để khách sạn chưa có
// booking vẫn xuất hiện với doanh thu 0.
func (s *StatsService) topHotels(today time.Time) ([]dto.TopHotelResponse, error) {
	since := today.AddDate(0, 0, -topHotelsWindow)

	var tops []dto.TopHotelResponse
	err := s.db.Table("hotels").
		Select("hotels.id AS id, hotels.name AS name, hotels.city AS city, "+
			"COUNT(bookings.id) AS booking_count, COALESCE(SUM(bookings.total_amount_cents), 0) AS revenue_cents").
		Joins("LEFT JOIN bookings ON bookings.hotel_id = hotels.id AND bookings.status <> ? AND bookings.created_at >= ?",
			models.BookingStatusCancelled, since).
		Where("hotels.is_active = ?", true).
		Group("hotels.id, hotels.name, hotels.city").
		Order("revenue_cents DESC").
		Limit(topHotelsLimit).
		Scan(&tops).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi xếp hạng khách sạn", err)
	}
	return tops, nil
}

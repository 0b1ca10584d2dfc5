package services

import (
	stderrors "errors"
	"math"
	"time"

	"gorm.io/gorm"

	"altairis/dto"
	"altairis/errors"
	"altairis/models"
	"altairis/services/logger"
	"altairis/utils"
)

const (
	// InventoryHorizonDays là số ngày tồn kho được mở bán trước
	InventoryHorizonDays = 365
	DefaultTotalRooms    = 10
	DefaultPriceCents    = 10000 // 100.00 mỗi đêm
)

type InventoryServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
	Clock  Clock
}

// InventoryService quản lý sổ tồn kho theo (loại phòng, ngày)
type InventoryService struct {
	db    *gorm.DB
	log   logger.Logger
	clock Clock
}

func NewInventoryService(opts InventoryServiceOptions) *InventoryService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	c := opts.Clock
	if c == nil {
		c = NewRealClock()
	}
	return &InventoryService{db: opts.DB, log: l, clock: c}
}

// Availability là kết quả kiểm tra phòng trống cho một loại phòng.
// ShortfallDates liệt kê các ngày thiếu để báo lỗi chỉ đích danh.
type Availability struct {
	OK             bool
	ShortfallDates []time.Time
}

// GetInventory lấy tồn kho của một loại phòng trong khoảng ngày (end tính)
func (s *InventoryService) GetInventory(roomTypeID uint, start, end time.Time) ([]models.Inventory, error) {
	var invs []models.Inventory
	err := s.db.Preload("RoomType").
		Where("room_type_id = ? AND date >= ? AND date <= ?", roomTypeID, utils.DateOf(start), utils.DateOf(end)).
		Order("date ASC").
		Find(&invs).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi lấy tồn kho", err)
	}
	return invs, nil
}

// GetHotelInventory lấy tồn kho của mọi loại phòng trong khách sạn cho một ngày
func (s *InventoryService) GetHotelInventory(hotelID uint, date time.Time) ([]models.Inventory, error) {
	var hotel models.Hotel
	if err := s.db.First(&hotel, hotelID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrHotelNotFound
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi server", err)
	}

	var invs []models.Inventory
	err := s.db.Preload("RoomType").
		Joins("JOIN room_types ON room_types.id = inventories.room_type_id").
		Where("room_types.hotel_id = ? AND inventories.date = ?", hotelID, utils.DateOf(date)).
		Order("room_types.name ASC").
		Find(&invs).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi lấy tồn kho", err)
	}
	return invs, nil
}

// UpdateInventory cập nhật một dòng tồn kho. TotalRooms mới không được
// thấp hơn số phòng đang giữ, kiểm tra bằng UPDATE có điều kiện để không
// đua với allocation đang chạy song song.
func (s *InventoryService) UpdateInventory(id uint, req dto.UpdateInventoryRequest) (*models.Inventory, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var inv models.Inventory
		if err := tx.First(&inv, id).Error; err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.ErrInventoryNotFound
			}
			return err
		}

		res := tx.Model(&models.Inventory{}).
			Where("id = ? AND reserved_rooms <= ?", id, req.TotalRooms).
			Updates(map[string]interface{}{
				"total_rooms":  req.TotalRooms,
				"price_cents":  req.PriceCents,
				"is_available": *req.IsAvailable,
				"updated_at":   s.clock.Now().UTC(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Đọc lại để báo đúng số phòng đang giữ
			if err := tx.First(&inv, id).Error; err != nil {
				return err
			}
			return &errors.CapacityViolationError{
				RoomTypeID:    inv.RoomTypeID,
				Date:          inv.Date,
				ReservedRooms: inv.ReservedRooms,
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var inv models.Inventory
	if err := s.db.Preload("RoomType").First(&inv, id).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi server", err)
	}
	return &inv, nil
}

// BulkUpdateInventory áp cùng một bộ giá trị cho mọi ngày trong khoảng
// [start, end] (end tính, theo hành vi của endpoint bulk). Tạo dòng mới
// cho ngày chưa có. Một ngày vi phạm sức chứa thì rollback toàn bộ.
func (s *InventoryService) BulkUpdateInventory(roomTypeID uint, start, end time.Time, data dto.UpdateInventoryRequest) (int, error) {
	var rt models.RoomType
	if err := s.db.First(&rt, roomTypeID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return 0, errors.ErrRoomTypeNotFound
		}
		return 0, errors.NewAppError(errors.ErrCodeDBError, "Lỗi server", err)
	}

	start = utils.DateOf(start)
	end = utils.DateOf(end)
	if end.Before(start) {
		return 0, errors.NewAppError(errors.ErrCodeInvalidDate, "Ngày kết thúc phải từ ngày bắt đầu trở đi", nil)
	}

	// end tính nên khoảng nửa mở kết thúc ở end+1
	rng := utils.NewDateRange(start, end.AddDate(0, 0, 1))
	updated := 0

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing []models.Inventory
		if err := tx.Where("room_type_id = ? AND date >= ? AND date < ?", roomTypeID, rng.From, rng.To).
			Find(&existing).Error; err != nil {
			return err
		}
		byDate := make(map[string]models.Inventory, len(existing))
		for _, inv := range existing {
			byDate[utils.FormatDate(inv.Date)] = inv
		}

		// Đi theo ngày tăng dần, cùng thứ tự khóa với allocation
		for _, d := range rng.Dates() {
			inv, ok := byDate[utils.FormatDate(d)]
			if !ok {
				row := models.Inventory{
					RoomTypeID:    roomTypeID,
					Date:          d,
					TotalRooms:    data.TotalRooms,
					ReservedRooms: 0,
					PriceCents:    data.PriceCents,
					IsAvailable:   *data.IsAvailable,
				}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
				updated++
				continue
			}

			res := tx.Model(&models.Inventory{}).
				Where("id = ? AND reserved_rooms <= ?", inv.ID, data.TotalRooms).
				Updates(map[string]interface{}{
					"total_rooms":  data.TotalRooms,
					"price_cents":  data.PriceCents,
					"is_available": *data.IsAvailable,
					"updated_at":   s.clock.Now().UTC(),
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return &errors.CapacityViolationError{
					RoomTypeID:    roomTypeID,
					Date:          d,
					ReservedRooms: inv.ReservedRooms,
				}
			}
			updated++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return updated, nil
}

// InitializeInventory mở bán một loại phòng mới: tạo dòng tồn kho cho
// InventoryHorizonDays ngày kể từ hôm nay với giá trị mặc định. Ngày đã
// có dòng thì giữ nguyên.
func (s *InventoryService) InitializeInventory(roomTypeID uint) (int, error) {
	var rt models.RoomType
	if err := s.db.First(&rt, roomTypeID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return 0, errors.ErrRoomTypeNotFound
		}
		return 0, errors.NewAppError(errors.ErrCodeDBError, "Lỗi server", err)
	}

	today := utils.DateOf(s.clock.Now())
	priceCents := rt.BasePriceCents
	if priceCents <= 0 {
		priceCents = DefaultPriceCents
	}
	return s.fillRange(roomTypeID, utils.NewDateRange(today, today.AddDate(0, 0, InventoryHorizonDays)), priceCents)
}

// ExtendInventoryHorizon kéo dài sổ tồn kho của mọi loại phòng đang hoạt
// động đến hôm nay + InventoryHorizonDays. Chạy bởi cron mỗi ngày.
func (s *InventoryService) ExtendInventoryHorizon() error {
	var roomTypes []models.RoomType
	if err := s.db.Where("is_active = ?", true).Find(&roomTypes).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi lấy danh sách loại phòng", err)
	}

	today := utils.DateOf(s.clock.Now())
	horizon := today.AddDate(0, 0, InventoryHorizonDays)
	total := 0
	for _, rt := range roomTypes {
		var last models.Inventory
		err := s.db.Where("room_type_id = ?", rt.ID).Order("date DESC").First(&last).Error
		if err != nil && !stderrors.Is(err, gorm.ErrRecordNotFound) {
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi đọc tồn kho", err)
		}

		start := today
		if err == nil && !utils.DateOf(last.Date).Before(today) {
			start = utils.DateOf(last.Date).AddDate(0, 0, 1)
		}
		if !start.Before(horizon) {
			continue
		}

		priceCents := rt.BasePriceCents
		if priceCents <= 0 {
			priceCents = DefaultPriceCents
		}
		n, err := s.fillRange(rt.ID, utils.NewDateRange(start, horizon), priceCents)
		if err != nil {
			return err
		}
		total += n
	}
	if total > 0 {
		s.log.Info("Extended inventory horizon: %d rows created", total)
	}
	return nil
}

// fillRange tạo dòng tồn kho mặc định cho các ngày chưa có trong khoảng
func (s *InventoryService) fillRange(roomTypeID uint, rng utils.DateRange, priceCents int64) (int, error) {
	var existing []time.Time
	err := s.db.Model(&models.Inventory{}).
		Where("room_type_id = ? AND date >= ? AND date < ?", roomTypeID, rng.From, rng.To).
		Pluck("date", &existing).Error
	if err != nil {
		return 0, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi đọc tồn kho", err)
	}
	seen := make(map[string]bool, len(existing))
	for _, d := range existing {
		seen[utils.FormatDate(d)] = true
	}

	rows := make([]models.Inventory, 0, rng.Nights())
	for _, d := range rng.Dates() {
		if seen[utils.FormatDate(d)] {
			continue
		}
		rows = append(rows, models.Inventory{
			RoomTypeID:    roomTypeID,
			Date:          d,
			TotalRooms:    DefaultTotalRooms,
			ReservedRooms: 0,
			PriceCents:    priceCents,
			IsAvailable:   true,
		})
	}
	if len(rows) == 0 {
		return 0, nil
	}
	if err := s.db.CreateInBatches(rows, 200).Error; err != nil {
		return 0, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi tạo tồn kho", err)
	}
	return len(rows), nil
}

// CheckAvailability kiểm tra đủ rooms phòng cho mọi đêm trong khoảng.
// Ngày không có dòng tồn kho hoặc đang khóa bán tính là thiếu (fail closed).
func (s *InventoryService) CheckAvailability(roomTypeID uint, stay utils.DateRange, rooms int) (*Availability, error) {
	var invs []models.Inventory
	err := s.db.Where("room_type_id = ? AND date >= ? AND date < ?", roomTypeID, stay.From, stay.To).
		Find(&invs).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi kiểm tra phòng trống", err)
	}

	byDate := make(map[string]models.Inventory, len(invs))
	for _, inv := range invs {
		byDate[utils.FormatDate(inv.Date)] = inv
	}

	result := &Availability{OK: true}
	for _, d := range stay.Dates() {
		inv, ok := byDate[utils.FormatDate(d)]
		if !ok || !inv.IsAvailable || inv.AvailableRooms() < rooms {
			result.OK = false
			result.ShortfallDates = append(result.ShortfallDates, d)
		}
	}
	return result, nil
}

// GetOccupancyStats tính occupancy theo ngày cho một khách sạn,
// key là ngày dạng 2006-01-02, rate làm tròn 2 chữ số.
func (s *InventoryService) GetOccupancyStats(hotelID uint, start, end time.Time) (map[string]dto.OccupancyPoint, error) {
	var hotel models.Hotel
	if err := s.db.First(&hotel, hotelID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrHotelNotFound
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi server", err)
	}

	type occupancyRow struct {
		Date          time.Time
		TotalRooms    int
		ReservedRooms int
	}
	var rows []occupancyRow
	err := s.db.Model(&models.Inventory{}).
		Select("inventories.date AS date, SUM(inventories.total_rooms) AS total_rooms, SUM(inventories.reserved_rooms) AS reserved_rooms").
		Joins("JOIN room_types ON room_types.id = inventories.room_type_id").
		Where("room_types.hotel_id = ? AND inventories.date >= ? AND inventories.date <= ?",
			hotelID, utils.DateOf(start), utils.DateOf(end)).
		Group("inventories.date").
		Order("inventories.date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi tính occupancy", err)
	}

	stats := make(map[string]dto.OccupancyPoint, len(rows))
	for _, r := range rows {
		rate := 0.0
		if r.TotalRooms > 0 {
			rate = Round2(float64(r.ReservedRooms) * 100 / float64(r.TotalRooms))
		}
		stats[utils.FormatDate(r.Date)] = dto.OccupancyPoint{
			TotalRooms:    r.TotalRooms,
			ReservedRooms: r.ReservedRooms,
			OccupancyRate: rate,
		}
	}
	return stats, nil
}

// Round2 làm tròn về 2 chữ số thập phân
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

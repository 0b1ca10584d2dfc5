package services

import (
	stderrors "errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"gorm.io/gorm"

	"altairis/dto"
	"altairis/errors"
	"altairis/models"
	"altairis/services/logger"
	"altairis/utils"
)

// maxCommitRetries giới hạn số lần thử lại khi thua cuộc đua cập nhật
// tồn kho hoặc trùng booking number.
const maxCommitRetries = 3

type BookingServiceOptions struct {
	DB        *gorm.DB
	Logger    logger.Logger
	Clock     Clock
	Inventory *InventoryService
}

// BookingService xử lý vòng đời booking: tạo, đổi trạng thái, tra cứu
type BookingService struct {
	db        *gorm.DB
	log       logger.Logger
	clock     Clock
	inventory *InventoryService
}

func NewBookingService(opts BookingServiceOptions) *BookingService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	c := opts.Clock
	if c == nil {
		c = NewRealClock()
	}
	inv := opts.Inventory
	if inv == nil {
		inv = NewInventoryService(InventoryServiceOptions{DB: opts.DB, Logger: l, Clock: c})
	}
	return &BookingService{db: opts.DB, log: l, clock: c, inventory: inv}
}

// allocationCell là một ô (loại phòng, đêm) cần cộng vào reserved_rooms
type allocationCell struct {
	roomTypeID uint
	date       time.Time
	rooms      int
}

// sortCells cố định thứ tự khóa (date tăng, roomTypeID tăng) để hai giao
// dịch chồng ngày không deadlock nhau.
func sortCells(cells []allocationCell) {
	sort.Slice(cells, func(i, j int) bool {
		if !cells[i].date.Equal(cells[j].date) {
			return cells[i].date.Before(cells[j].date)
		}
		return cells[i].roomTypeID < cells[j].roomTypeID
	})
}

// CreateBooking tạo booking mới. Kiểm tra phòng trống trước chỉ để báo
// lỗi sớm; quyết định cuối cùng nằm ở các UPDATE có điều kiện trong một
// transaction: đủ chỗ thì cộng, không thì 0 rows và rollback toàn bộ.
func (s *BookingService) CreateBooking(req dto.CreateBookingRequest) (*models.Booking, error) {
	checkIn, err := utils.ParseDate(req.CheckInDate)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidDate, "Ngày nhận phòng không hợp lệ", err)
	}
	checkOut, err := utils.ParseDate(req.CheckOutDate)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidDate, "Ngày trả phòng không hợp lệ", err)
	}
	if !checkIn.Before(checkOut) {
		return nil, errors.NewAppError(errors.ErrCodeInvalidDate, "Ngày trả phòng phải sau ngày nhận phòng", errors.ErrInvalidDates)
	}
	stay := utils.NewDateRange(checkIn, checkOut)

	var hotel models.Hotel
	if err := s.db.First(&hotel, req.HotelID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrHotelNotFound
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi server", err)
	}

	// Loại phòng phải thuộc đúng khách sạn và còn hoạt động
	roomTypes := make(map[uint]models.RoomType, len(req.Rooms))
	for _, line := range req.Rooms {
		var rt models.RoomType
		err := s.db.Where("id = ? AND hotel_id = ?", line.RoomTypeID, req.HotelID).First(&rt).Error
		if err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errors.ErrRoomTypeNotFound
			}
			return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi server", err)
		}
		if !rt.IsActive {
			return nil, errors.NewAppError(errors.ErrCodeValidation,
				fmt.Sprintf("Loại phòng %s đã ngừng hoạt động", rt.Name), nil)
		}
		roomTypes[line.RoomTypeID] = rt
	}

	numberOfGuests := req.NumberOfGuests
	if numberOfGuests <= 0 {
		numberOfGuests = 1
	}
	nights := stay.Nights()

	for attempt := 0; attempt < maxCommitRetries; attempt++ {
		// Kiểm tra sớm để trả lỗi thiếu phòng kèm ngày cụ thể
		for _, line := range req.Rooms {
			rt := roomTypes[line.RoomTypeID]
			avail, err := s.inventory.CheckAvailability(rt.ID, stay, line.NumberOfRooms)
			if err != nil {
				return nil, err
			}
			if !avail.OK {
				return nil, &errors.InsufficientInventoryError{
					RoomTypeID:   rt.ID,
					RoomTypeName: rt.Name,
					Dates:        avail.ShortfallDates,
				}
			}
		}

		details := make([]models.BookingDetail, 0, len(req.Rooms))
		cells := make([]allocationCell, 0, len(req.Rooms)*nights)
		var totalAmountCents int64
		for _, line := range req.Rooms {
			rt := roomTypes[line.RoomTypeID]
			price, err := s.nightlyPriceCents(rt, stay.From)
			if err != nil {
				return nil, err
			}
			subtotal := int64(line.NumberOfRooms) * int64(nights) * price
			totalAmountCents += subtotal
			details = append(details, models.BookingDetail{
				RoomTypeID:        rt.ID,
				NumberOfRooms:     line.NumberOfRooms,
				PricePerRoomCents: price,
				SubtotalCents:     subtotal,
			})
			for _, d := range stay.Dates() {
				cells = append(cells, allocationCell{roomTypeID: rt.ID, date: d, rooms: line.NumberOfRooms})
			}
		}
		sortCells(cells)

		booking := models.Booking{
			BookingNumber:    s.generateBookingNumber(),
			HotelID:          req.HotelID,
			CustomerName:     req.CustomerName,
			CustomerEmail:    req.CustomerEmail,
			CustomerPhone:    req.CustomerPhone,
			CheckInDate:      stay.From,
			CheckOutDate:     stay.To,
			NumberOfGuests:   numberOfGuests,
			TotalAmountCents: totalAmountCents,
			Status:           models.BookingStatusConfirmed,
			Notes:            req.Notes,
			Details:          details,
		}

		txErr := s.db.Transaction(func(tx *gorm.DB) error {
			for _, cell := range cells {
				res := tx.Model(&models.Inventory{}).
					Where("room_type_id = ? AND date = ? AND is_available = ? AND reserved_rooms + ? <= total_rooms",
						cell.roomTypeID, cell.date, true, cell.rooms).
					Updates(map[string]interface{}{
						"reserved_rooms": gorm.Expr("reserved_rooms + ?", cell.rooms),
						"updated_at":     s.clock.Now().UTC(),
					})
				if res.Error != nil {
					return res.Error
				}
				if res.RowsAffected == 0 {
					return errors.ErrConcurrentConflict
				}
			}
			return tx.Create(&booking).Error
		})
		if txErr == nil {
			s.log.Info("Booking %s created for hotel %d (%d nights)", booking.BookingNumber, booking.HotelID, nights)
			return s.GetBooking(booking.ID)
		}
		if stderrors.Is(txErr, errors.ErrConcurrentConflict) {
			s.log.Warn("Allocation conflict for hotel %d, retrying (%d/%d)", req.HotelID, attempt+1, maxCommitRetries)
			continue
		}
		if stderrors.Is(txErr, gorm.ErrDuplicatedKey) {
			// Trùng booking number, sinh số mới và thử lại cả giao dịch
			s.log.Warn("Duplicate booking number %s, regenerating", booking.BookingNumber)
			continue
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi tạo booking", txErr)
	}
	return nil, errors.ErrConcurrentConflict
}

// nightlyPriceCents trả về giá một đêm: giá đêm đầu tiên trong sổ tồn kho
// nếu dương, không thì giá gốc của loại phòng. Giá này áp cho cả kỳ lưu trú.
func (s *BookingService) nightlyPriceCents(rt models.RoomType, firstNight time.Time) (int64, error) {
	var inv models.Inventory
	err := s.db.Where("room_type_id = ? AND date = ?", rt.ID, firstNight).First(&inv).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return rt.BasePriceCents, nil
		}
		return 0, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi đọc giá", err)
	}
	if inv.PriceCents > 0 {
		return inv.PriceCents, nil
	}
	return rt.BasePriceCents, nil
}

// generateBookingNumber sinh mã dạng ALT + timestamp + 4 số ngẫu nhiên.
// Không đảm bảo duy nhất tuyệt đối; unique index trên cột chịu trách
// nhiệm cuối cùng, trùng thì CreateBooking sinh lại.
func (s *BookingService) generateBookingNumber() string {
	return fmt.Sprintf("ALT%s%d", s.clock.Now().UTC().Format("20060102150405"), 1000+rand.Intn(9000))
}

// UpdateBookingStatus đổi trạng thái booking. Chuyển sang Cancelled trả
// tồn kho đúng một lần: cờ status đổi bằng UPDATE có điều kiện nên hai
// lần hủy song song chỉ một lần trả phòng, lần còn lại thành no-op.
func (s *BookingService) UpdateBookingStatus(id uint, status string) (*models.Booking, error) {
	if !models.IsValidBookingStatus(status) {
		return nil, errors.NewAppError(errors.ErrCodeInvalidStatus,
			fmt.Sprintf("Trạng thái không hợp lệ: %s", status), nil)
	}

	var booking models.Booking
	if err := s.db.Preload("Details").First(&booking, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrBookingNotFound
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi server", err)
	}

	if status == models.BookingStatusCancelled {
		if err := s.cancelBooking(&booking); err != nil {
			return nil, err
		}
		return s.GetBooking(id)
	}

	res := s.db.Model(&models.Booking{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": s.clock.Now().UTC(),
		})
	if res.Error != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi cập nhật trạng thái", res.Error)
	}
	return s.GetBooking(id)
}

// cancelBooking đổi trạng thái và trả tồn kho trong cùng một transaction.
// Trả phòng bằng decrement có điều kiện reserved_rooms >= n; 0 rows nghĩa
// là sổ tồn kho đã hỏng, rollback và báo IntegrityError thay vì ép về 0.
func (s *BookingService) cancelBooking(booking *models.Booking) error {
	stay := utils.NewDateRange(booking.CheckInDate, booking.CheckOutDate)
	cells := make([]allocationCell, 0, len(booking.Details)*stay.Nights())
	for _, d := range booking.Details {
		for _, date := range stay.Dates() {
			cells = append(cells, allocationCell{roomTypeID: d.RoomTypeID, date: date, rooms: d.NumberOfRooms})
		}
	}
	sortCells(cells)

	return s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Booking{}).
			Where("id = ? AND status <> ?", booking.ID, models.BookingStatusCancelled).
			Updates(map[string]interface{}{
				"status":     models.BookingStatusCancelled,
				"updated_at": s.clock.Now().UTC(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Đã hủy trước đó, không trả phòng lần nữa
			return nil
		}

		for _, cell := range cells {
			r := tx.Model(&models.Inventory{}).
				Where("room_type_id = ? AND date = ? AND reserved_rooms >= ?",
					cell.roomTypeID, cell.date, cell.rooms).
				Updates(map[string]interface{}{
					"reserved_rooms": gorm.Expr("reserved_rooms - ?", cell.rooms),
					"updated_at":     s.clock.Now().UTC(),
				})
			if r.Error != nil {
				return r.Error
			}
			if r.RowsAffected == 0 {
				return &errors.IntegrityError{
					RoomTypeID: cell.roomTypeID,
					Date:       cell.date,
					Reason:     fmt.Sprintf("cannot release %d rooms", cell.rooms),
				}
			}
		}
		s.log.Info("Booking %s cancelled, inventory released", booking.BookingNumber)
		return nil
	})
}

// BookingFilter là bộ lọc cho danh sách booking
type BookingFilter struct {
	HotelID  uint
	Status   string
	FromDate *time.Time
	ToDate   *time.Time
}

// GetBookings trả về danh sách booking mới nhất trước, có phân trang
func (s *BookingService) GetBookings(page, limit int, filter BookingFilter) ([]models.Booking, int64, error) {
	query := s.db.Model(&models.Booking{})
	if filter.HotelID != 0 {
		query = query.Where("hotel_id = ?", filter.HotelID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.FromDate != nil {
		query = query.Where("check_in_date >= ?", utils.DateOf(*filter.FromDate))
	}
	if filter.ToDate != nil {
		query = query.Where("check_in_date <= ?", utils.DateOf(*filter.ToDate))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi đếm booking", err)
	}

	var bookings []models.Booking
	err := query.Preload("Hotel").
		Order("created_at DESC").
		Offset(page * limit).
		Limit(limit).
		Find(&bookings).Error
	if err != nil {
		return nil, 0, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi lấy danh sách booking", err)
	}
	return bookings, total, nil
}

// GetBooking trả về booking kèm khách sạn và các dòng phòng
func (s *BookingService) GetBooking(id uint) (*models.Booking, error) {
	var booking models.Booking
	err := s.db.Preload("Hotel").Preload("Details.RoomType").First(&booking, id).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrBookingNotFound
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi server", err)
	}
	return &booking, nil
}

// GetBookingByNumber tra cứu theo mã booking
func (s *BookingService) GetBookingByNumber(number string) (*models.Booking, error) {
	var booking models.Booking
	err := s.db.Preload("Hotel").Preload("Details.RoomType").
		Where("booking_number = ?", number).First(&booking).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrBookingNotFound
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi server", err)
	}
	return &booking, nil
}

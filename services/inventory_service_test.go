package services

import (
	stderrors "errors"
	"testing"

	"altairis/dto"
	"altairis/errors"
	"altairis/models"
)

func newTestInventoryService(t *testing.T) (*InventoryService, FixedClock) {
	t.Helper()
	clock := FixedClock{T: date("2026-03-01")}
	db := setupTestDB(t)
	return NewInventoryService(InventoryServiceOptions{DB: db, Clock: clock}), clock
}

func boolPtr(b bool) *bool { return &b }

func TestInitializeInventory_CreatesFullHorizon(t *testing.T) {
	svc, _ := newTestInventoryService(t)
	_, roomType := seedHotel(t, svc.db, 20000)

	created, err := svc.InitializeInventory(roomType.ID)
	if err != nil {
		t.Fatalf("InitializeInventory failed: %v", err)
	}
	if created != InventoryHorizonDays {
		t.Errorf("expected %d rows created, got %d", InventoryHorizonDays, created)
	}

	first := getInventoryRow(t, svc.db, roomType.ID, "2026-03-01")
	if first.TotalRooms != DefaultTotalRooms {
		t.Errorf("expected %d total rooms, got %d", DefaultTotalRooms, first.TotalRooms)
	}
	if first.PriceCents != 20000 {
		t.Errorf("expected price from base price 20000, got %d", first.PriceCents)
	}
	if !first.IsAvailable {
		t.Error("expected new inventory to be available")
	}

	// Chạy lại không tạo trùng
	created, err = svc.InitializeInventory(roomType.ID)
	if err != nil {
		t.Fatalf("second InitializeInventory failed: %v", err)
	}
	if created != 0 {
		t.Errorf("expected 0 rows on second run, got %d", created)
	}
}

func TestInitializeInventory_DefaultPriceWhenNoBasePrice(t *testing.T) {
	svc, _ := newTestInventoryService(t)
	_, roomType := seedHotel(t, svc.db, 0)

	if _, err := svc.InitializeInventory(roomType.ID); err != nil {
		t.Fatalf("InitializeInventory failed: %v", err)
	}

	inv := getInventoryRow(t, svc.db, roomType.ID, "2026-03-01")
	if inv.PriceCents != DefaultPriceCents {
		t.Errorf("expected default price %d, got %d", DefaultPriceCents, inv.PriceCents)
	}
}

func TestInitializeInventory_RoomTypeNotFound(t *testing.T) {
	svc, _ := newTestInventoryService(t)

	_, err := svc.InitializeInventory(999)
	if !stderrors.Is(err, errors.ErrRoomTypeNotFound) {
		t.Errorf("expected ErrRoomTypeNotFound, got %v", err)
	}
}

func TestUpdateInventory_CapacityViolation(t *testing.T) {
	svc, _ := newTestInventoryService(t)
	_, roomType := seedHotel(t, svc.db, 20000)
	seedInventory(t, svc.db, roomType.ID, "2026-03-10", "2026-03-11", 10, 15000)

	inv := getInventoryRow(t, svc.db, roomType.ID, "2026-03-10")
	svc.db.Model(&models.Inventory{}).Where("id = ?", inv.ID).Update("reserved_rooms", 3)

	_, err := svc.UpdateInventory(inv.ID, dto.UpdateInventoryRequest{
		TotalRooms:  2,
		PriceCents:  15000,
		IsAvailable: boolPtr(true),
	})

	var capErr *errors.CapacityViolationError
	if !stderrors.As(err, &capErr) {
		t.Fatalf("expected CapacityViolationError, got %v", err)
	}
	if capErr.ReservedRooms != 3 {
		t.Errorf("expected reserved 3 in error, got %d", capErr.ReservedRooms)
	}

	// Dòng tồn kho không bị thay đổi
	after := getInventoryRow(t, svc.db, roomType.ID, "2026-03-10")
	if after.TotalRooms != 10 {
		t.Errorf("expected total rooms unchanged at 10, got %d", after.TotalRooms)
	}
}

func TestUpdateInventory_Success(t *testing.T) {
	svc, _ := newTestInventoryService(t)
	_, roomType := seedHotel(t, svc.db, 20000)
	seedInventory(t, svc.db, roomType.ID, "2026-03-10", "2026-03-11", 10, 15000)

	inv := getInventoryRow(t, svc.db, roomType.ID, "2026-03-10")
	updated, err := svc.UpdateInventory(inv.ID, dto.UpdateInventoryRequest{
		TotalRooms:  20,
		PriceCents:  18000,
		IsAvailable: boolPtr(false),
	})
	if err != nil {
		t.Fatalf("UpdateInventory failed: %v", err)
	}
	if updated.TotalRooms != 20 || updated.PriceCents != 18000 || updated.IsAvailable {
		t.Errorf("unexpected row after update: %+v", updated)
	}
}

func TestUpdateInventory_NotFound(t *testing.T) {
	svc, _ := newTestInventoryService(t)

	_, err := svc.UpdateInventory(999, dto.UpdateInventoryRequest{IsAvailable: boolPtr(true)})
	if !stderrors.Is(err, errors.ErrInventoryNotFound) {
		t.Errorf("expected ErrInventoryNotFound, got %v", err)
	}
}

func TestBulkUpdateInventory_AllOrNothing(t *testing.T) {
	svc, _ := newTestInventoryService(t)
	_, roomType := seedHotel(t, svc.db, 20000)
	seedInventory(t, svc.db, roomType.ID, "2026-03-10", "2026-03-13", 10, 15000)

	// Ngày giữa có 5 phòng đang giữ, hạ total xuống 2 phải thất bại toàn bộ
	mid := getInventoryRow(t, svc.db, roomType.ID, "2026-03-11")
	svc.db.Model(&models.Inventory{}).Where("id = ?", mid.ID).Update("reserved_rooms", 5)

	_, err := svc.BulkUpdateInventory(roomType.ID, date("2026-03-10"), date("2026-03-12"), dto.UpdateInventoryRequest{
		TotalRooms:  2,
		PriceCents:  9000,
		IsAvailable: boolPtr(true),
	})

	var capErr *errors.CapacityViolationError
	if !stderrors.As(err, &capErr) {
		t.Fatalf("expected CapacityViolationError, got %v", err)
	}

	// Ngày đầu tiên đã qua guard trước đó cũng phải được rollback
	first := getInventoryRow(t, svc.db, roomType.ID, "2026-03-10")
	if first.TotalRooms != 10 || first.PriceCents != 15000 {
		t.Errorf("expected first day rolled back, got total=%d price=%d", first.TotalRooms, first.PriceCents)
	}
}

func TestBulkUpdateInventory_CreatesMissingDays(t *testing.T) {
	svc, _ := newTestInventoryService(t)
	_, roomType := seedHotel(t, svc.db, 20000)
	seedInventory(t, svc.db, roomType.ID, "2026-03-10", "2026-03-11", 10, 15000)

	// Khoảng 3 ngày, chỉ ngày đầu có dòng sẵn
	updated, err := svc.BulkUpdateInventory(roomType.ID, date("2026-03-10"), date("2026-03-12"), dto.UpdateInventoryRequest{
		TotalRooms:  7,
		PriceCents:  12000,
		IsAvailable: boolPtr(true),
	})
	if err != nil {
		t.Fatalf("BulkUpdateInventory failed: %v", err)
	}
	if updated != 3 {
		t.Errorf("expected 3 rows touched, got %d", updated)
	}

	created := getInventoryRow(t, svc.db, roomType.ID, "2026-03-12")
	if created.TotalRooms != 7 || created.ReservedRooms != 0 || created.PriceCents != 12000 {
		t.Errorf("unexpected created row: %+v", created)
	}
}

func TestBulkUpdateInventory_EndBeforeStart(t *testing.T) {
	svc, _ := newTestInventoryService(t)
	_, roomType := seedHotel(t, svc.db, 20000)

	_, err := svc.BulkUpdateInventory(roomType.ID, date("2026-03-12"), date("2026-03-10"), dto.UpdateInventoryRequest{
		IsAvailable: boolPtr(true),
	})
	appErr := errors.GetAppError(err)
	if appErr == nil || appErr.Code != errors.ErrCodeInvalidDate {
		t.Errorf("expected invalid date error, got %v", err)
	}
}

func TestCheckAvailability_FailsClosedOnMissingDay(t *testing.T) {
	svc, _ := newTestInventoryService(t)
	_, roomType := seedHotel(t, svc.db, 20000)
	// Thiếu dòng cho 2026-03-11
	seedInventory(t, svc.db, roomType.ID, "2026-03-10", "2026-03-11", 10, 15000)
	seedInventory(t, svc.db, roomType.ID, "2026-03-12", "2026-03-13", 10, 15000)

	avail, err := svc.CheckAvailability(roomType.ID, newStay("2026-03-10", "2026-03-13"), 1)
	if err != nil {
		t.Fatalf("CheckAvailability failed: %v", err)
	}
	if avail.OK {
		t.Fatal("expected unavailable when a night has no inventory row")
	}
	if len(avail.ShortfallDates) != 1 || !avail.ShortfallDates[0].Equal(date("2026-03-11")) {
		t.Errorf("expected shortfall on 2026-03-11, got %v", avail.ShortfallDates)
	}
}

func TestCheckAvailability_FailsClosedOnClosedDay(t *testing.T) {
	svc, _ := newTestInventoryService(t)
	_, roomType := seedHotel(t, svc.db, 20000)
	seedInventory(t, svc.db, roomType.ID, "2026-03-10", "2026-03-12", 10, 15000)

	svc.db.Model(&models.Inventory{}).
		Where("room_type_id = ? AND date = ?", roomType.ID, date("2026-03-11")).
		Update("is_available", false)

	avail, err := svc.CheckAvailability(roomType.ID, newStay("2026-03-10", "2026-03-12"), 1)
	if err != nil {
		t.Fatalf("CheckAvailability failed: %v", err)
	}
	if avail.OK {
		t.Fatal("expected unavailable when a night is closed for sale")
	}
}

func TestCheckAvailability_ExcludesCheckOutDate(t *testing.T) {
	svc, _ := newTestInventoryService(t)
	_, roomType := seedHotel(t, svc.db, 20000)
	// Không có dòng cho ngày trả phòng, vẫn phải OK
	seedInventory(t, svc.db, roomType.ID, "2026-03-10", "2026-03-12", 10, 15000)

	avail, err := svc.CheckAvailability(roomType.ID, newStay("2026-03-10", "2026-03-12"), 1)
	if err != nil {
		t.Fatalf("CheckAvailability failed: %v", err)
	}
	if !avail.OK {
		t.Errorf("expected available, shortfall: %v", avail.ShortfallDates)
	}
}

func TestGetOccupancyStats_RoundsToTwoDecimals(t *testing.T) {
	svc, _ := newTestInventoryService(t)
	hotel, roomType := seedHotel(t, svc.db, 20000)
	seedInventory(t, svc.db, roomType.ID, "2026-03-10", "2026-03-11", 3, 15000)

	svc.db.Model(&models.Inventory{}).
		Where("room_type_id = ? AND date = ?", roomType.ID, date("2026-03-10")).
		Update("reserved_rooms", 1)

	stats, err := svc.GetOccupancyStats(hotel.ID, date("2026-03-10"), date("2026-03-10"))
	if err != nil {
		t.Fatalf("GetOccupancyStats failed: %v", err)
	}

	point, ok := stats["2026-03-10"]
	if !ok {
		t.Fatalf("expected stats keyed by date, got %v", stats)
	}
	if point.OccupancyRate != 33.33 {
		t.Errorf("expected occupancy 33.33, got %v", point.OccupancyRate)
	}
	if point.TotalRooms != 3 || point.ReservedRooms != 1 {
		t.Errorf("unexpected point: %+v", point)
	}
}

func TestGetOccupancyStats_AggregatesRoomTypes(t *testing.T) {
	svc, _ := newTestInventoryService(t)
	hotel, roomType := seedHotel(t, svc.db, 20000)
	second := models.RoomType{Name: "Suite", HotelID: hotel.ID, Capacity: 2, BasePriceCents: 40000, IsActive: true}
	if err := svc.db.Create(&second).Error; err != nil {
		t.Fatalf("failed to create second room type: %v", err)
	}

	seedInventory(t, svc.db, roomType.ID, "2026-03-10", "2026-03-11", 10, 15000)
	seedInventory(t, svc.db, second.ID, "2026-03-10", "2026-03-11", 10, 40000)
	svc.db.Model(&models.Inventory{}).
		Where("date = ?", date("2026-03-10")).
		Update("reserved_rooms", 5)

	stats, err := svc.GetOccupancyStats(hotel.ID, date("2026-03-10"), date("2026-03-10"))
	if err != nil {
		t.Fatalf("GetOccupancyStats failed: %v", err)
	}
	point := stats["2026-03-10"]
	if point.TotalRooms != 20 || point.ReservedRooms != 10 || point.OccupancyRate != 50 {
		t.Errorf("unexpected aggregated point: %+v", point)
	}
}

func TestExtendInventoryHorizon_FillsToHorizon(t *testing.T) {
	svc, _ := newTestInventoryService(t)
	_, roomType := seedHotel(t, svc.db, 20000)
	// Sổ chỉ còn 2 ngày kể từ hôm nay (2026-03-01)
	seedInventory(t, svc.db, roomType.ID, "2026-03-01", "2026-03-03", 10, 15000)

	if err := svc.ExtendInventoryHorizon(); err != nil {
		t.Fatalf("ExtendInventoryHorizon failed: %v", err)
	}

	var count int64
	svc.db.Model(&models.Inventory{}).Where("room_type_id = ?", roomType.ID).Count(&count)
	if count != InventoryHorizonDays {
		t.Errorf("expected %d rows after extend, got %d", InventoryHorizonDays, count)
	}

	// Dòng mới dùng giá gốc, dòng cũ giữ nguyên
	old := getInventoryRow(t, svc.db, roomType.ID, "2026-03-02")
	if old.PriceCents != 15000 {
		t.Errorf("expected existing row untouched, got price %d", old.PriceCents)
	}
	extended := getInventoryRow(t, svc.db, roomType.ID, "2026-03-03")
	if extended.PriceCents != 20000 || extended.TotalRooms != DefaultTotalRooms {
		t.Errorf("unexpected extended row: %+v", extended)
	}
}

func TestExtendInventoryHorizon_SkipsInactiveRoomTypes(t *testing.T) {
	svc, _ := newTestInventoryService(t)
	_, roomType := seedHotel(t, svc.db, 20000)
	svc.db.Model(&models.RoomType{}).Where("id = ?", roomType.ID).Update("is_active", false)

	if err := svc.ExtendInventoryHorizon(); err != nil {
		t.Fatalf("ExtendInventoryHorizon failed: %v", err)
	}

	var count int64
	svc.db.Model(&models.Inventory{}).Where("room_type_id = ?", roomType.ID).Count(&count)
	if count != 0 {
		t.Errorf("expected no rows for inactive room type, got %d", count)
	}
}

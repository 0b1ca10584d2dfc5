package controllers

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"altairis/errors"
	"altairis/response"
	"altairis/services"
	"altairis/services/logger"
	"altairis/utils"
)

var (
	inventoryService *services.InventoryService
	bookingService   *services.BookingService
	statsService     *services.StatsService
)

// InitControllers nối các service vào handler. Gọi một lần từ routes.
func InitControllers(db *gorm.DB, rdb *redis.Client) {
	log := logger.NewDefaultLogger(logger.InfoLevel)
	clock := services.NewRealClock()
	inventoryService = services.NewInventoryService(services.InventoryServiceOptions{DB: db, Logger: log, Clock: clock})
	bookingService = services.NewBookingService(services.BookingServiceOptions{DB: db, Logger: log, Clock: clock, Inventory: inventoryService})
	statsService = services.NewStatsService(services.StatsServiceOptions{DB: db, Redis: rdb, Logger: log, Clock: clock})
}

// handleServiceError dịch lỗi service sang response HTTP
func handleServiceError(c *gin.Context, err error) {
	switch {
	case stderrors.Is(err, errors.ErrHotelNotFound),
		stderrors.Is(err, errors.ErrRoomTypeNotFound),
		stderrors.Is(err, errors.ErrBookingNotFound),
		stderrors.Is(err, errors.ErrInventoryNotFound):
		response.NotFound(c)
		return
	case stderrors.Is(err, errors.ErrConcurrentConflict):
		response.Conflict(c, "Hệ thống đang bận, vui lòng thử lại")
		return
	}

	var insufficient *errors.InsufficientInventoryError
	if stderrors.As(err, &insufficient) {
		dates := make([]string, 0, len(insufficient.Dates))
		for _, d := range insufficient.Dates {
			dates = append(dates, utils.FormatDate(d))
		}
		response.BadRequest(c, fmt.Sprintf("Không đủ phòng trống cho loại phòng %s vào các ngày: %s",
			insufficient.RoomTypeName, strings.Join(dates, ", ")))
		return
	}

	var capacity *errors.CapacityViolationError
	if stderrors.As(err, &capacity) {
		response.Conflict(c, fmt.Sprintf("Không thể giảm tổng số phòng xuống dưới %d phòng đang giữ (ngày %s)",
			capacity.ReservedRooms, utils.FormatDate(capacity.Date)))
		return
	}

	var integrity *errors.IntegrityError
	if stderrors.As(err, &integrity) {
		response.ServerError(c)
		return
	}

	if appErr := errors.GetAppError(err); appErr != nil {
		switch appErr.Code {
		case errors.ErrCodeDBError:
			response.ServerError(c)
		case errors.ErrCodeDBNotFound:
			response.NotFound(c)
		case errors.ErrCodeDBDuplicate:
			response.Conflict(c, appErr.Message)
		default:
			response.ValidationError(c, appErr.Message)
		}
		return
	}

	response.ServerError(c)
}

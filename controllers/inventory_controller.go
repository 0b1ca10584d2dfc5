package controllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"altairis/dto"
	"altairis/models"
	"altairis/response"
	"altairis/utils"
)

// GetRoomTypeInventory lấy tồn kho của một loại phòng theo khoảng ngày
func GetRoomTypeInventory(c *gin.Context) {
	roomTypeID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID loại phòng không hợp lệ")
		return
	}

	start, end, err := parseDateRangeQuery(c)
	if err != nil {
		response.BadRequest(c, "Định dạng ngày không hợp lệ, dùng 2006-01-02")
		return
	}

	invs, svcErr := inventoryService.GetInventory(uint(roomTypeID), start, end)
	if svcErr != nil {
		handleServiceError(c, svcErr)
		return
	}

	response.Success(c, toInventoryResponses(invs))
}

// GetHotelInventory lấy tồn kho mọi loại phòng trong khách sạn cho một ngày
func GetHotelInventory(c *gin.Context) {
	hotelID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID khách sạn không hợp lệ")
		return
	}

	date := utils.DateOf(time.Now())
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := utils.ParseDate(dateStr)
		if err != nil {
			response.BadRequest(c, "Định dạng ngày không hợp lệ, dùng 2006-01-02")
			return
		}
		date = parsed
	}

	invs, svcErr := inventoryService.GetHotelInventory(uint(hotelID), date)
	if svcErr != nil {
		handleServiceError(c, svcErr)
		return
	}

	response.Success(c, toInventoryResponses(invs))
}

func toInventoryResponses(invs []models.Inventory) []dto.InventoryResponse {
	result := make([]dto.InventoryResponse, 0, len(invs))
	for _, inv := range invs {
		occupancy := 0.0
		if inv.TotalRooms > 0 {
			occupancy = float64(inv.ReservedRooms) * 100 / float64(inv.TotalRooms)
		}
		result = append(result, dto.InventoryResponse{
			ID:                  inv.ID,
			RoomTypeID:          inv.RoomTypeID,
			RoomTypeName:        inv.RoomType.Name,
			Date:                utils.FormatDate(inv.Date),
			TotalRooms:          inv.TotalRooms,
			ReservedRooms:       inv.ReservedRooms,
			AvailableRooms:      inv.AvailableRooms(),
			PriceCents:          inv.PriceCents,
			IsAvailable:         inv.IsAvailable,
			OccupancyPercentage: occupancy,
		})
	}
	return result
}

// UpdateInventory cập nhật một dòng tồn kho
func UpdateInventory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID tồn kho không hợp lệ")
		return
	}

	var request dto.UpdateInventoryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	inv, svcErr := inventoryService.UpdateInventory(uint(id), request)
	if svcErr != nil {
		handleServiceError(c, svcErr)
		return
	}

	response.Success(c, toInventoryResponses([]models.Inventory{*inv})[0])
}

// BulkUpdateInventory áp một bộ giá trị cho cả khoảng ngày của một loại phòng
func BulkUpdateInventory(c *gin.Context) {
	var request dto.BulkInventoryUpdateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	start, err := utils.ParseDate(request.StartDate)
	if err != nil {
		response.BadRequest(c, "Định dạng ngày bắt đầu không hợp lệ")
		return
	}
	end, err := utils.ParseDate(request.EndDate)
	if err != nil {
		response.BadRequest(c, "Định dạng ngày kết thúc không hợp lệ")
		return
	}

	updated, svcErr := inventoryService.BulkUpdateInventory(request.RoomTypeID, start, end, request.InventoryData)
	if svcErr != nil {
		handleServiceError(c, svcErr)
		return
	}

	response.Success(c, gin.H{"updatedCount": updated})
}

// InitializeInventory mở bán tồn kho mặc định cho một loại phòng
func InitializeInventory(c *gin.Context) {
	roomTypeID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID loại phòng không hợp lệ")
		return
	}

	created, svcErr := inventoryService.InitializeInventory(uint(roomTypeID))
	if svcErr != nil {
		handleServiceError(c, svcErr)
		return
	}

	response.Success(c, gin.H{"createdCount": created})
}

// GetOccupancyStats trả về occupancy theo ngày cho một khách sạn
func GetOccupancyStats(c *gin.Context) {
	hotelID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID khách sạn không hợp lệ")
		return
	}

	start, end, err := parseDateRangeQuery(c)
	if err != nil {
		response.BadRequest(c, "Định dạng ngày không hợp lệ, dùng 2006-01-02")
		return
	}

	stats, svcErr := inventoryService.GetOccupancyStats(uint(hotelID), start, end)
	if svcErr != nil {
		handleServiceError(c, svcErr)
		return
	}

	response.Success(c, stats)
}

// parseDateRangeQuery đọc startDate/endDate từ query, mặc định 30 ngày tới
func parseDateRangeQuery(c *gin.Context) (time.Time, time.Time, error) {
	start := utils.DateOf(time.Now())
	end := start.AddDate(0, 0, 30)

	if startStr := c.Query("startDate"); startStr != "" {
		parsed, err := utils.ParseDate(startStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		start = parsed
		end = start.AddDate(0, 0, 30)
	}
	if endStr := c.Query("endDate"); endStr != "" {
		parsed, err := utils.ParseDate(endStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		end = parsed
	}
	return start, end, nil
}

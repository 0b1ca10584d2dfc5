package controllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"altairis/config"
	"altairis/dto"
	"altairis/models"
	"altairis/response"
	"altairis/utils"
	"altairis/validator"
)

// GetRoomTypes lấy danh sách loại phòng của một khách sạn
func GetRoomTypes(c *gin.Context) {
	hotelIDStr := c.Query("hotelId")
	if hotelIDStr == "" {
		response.BadRequest(c, "Thiếu hotelId")
		return
	}
	hotelID, err := strconv.ParseUint(hotelIDStr, 10, 32)
	if err != nil {
		response.BadRequest(c, "hotelId không hợp lệ")
		return
	}

	var hotel models.Hotel
	if err := config.DB.First(&hotel, hotelID).Error; err != nil {
		response.NotFound(c)
		return
	}

	var roomTypes []models.RoomType
	if err := config.DB.Where("hotel_id = ?", hotelID).Order("name asc").Find(&roomTypes).Error; err != nil {
		response.ServerError(c)
		return
	}

	today := utils.DateOf(time.Now())
	roomTypeResponses := make([]dto.RoomTypeResponse, 0, len(roomTypes))
	for _, rt := range roomTypes {
		roomTypeResponses = append(roomTypeResponses, toRoomTypeResponse(rt, hotel.Name, today))
	}

	response.Success(c, roomTypeResponses)
}

// toRoomTypeResponse đổi model sang DTO, kèm số phòng trống hôm nay
func toRoomTypeResponse(rt models.RoomType, hotelName string, today time.Time) dto.RoomTypeResponse {
	availableRooms := 0
	var inv models.Inventory
	err := config.DB.Where("room_type_id = ? AND date = ?", rt.ID, today).First(&inv).Error
	if err == nil && inv.IsAvailable {
		availableRooms = inv.AvailableRooms()
	}

	return dto.RoomTypeResponse{
		ID:             rt.ID,
		Name:           rt.Name,
		Description:    rt.Description,
		HotelID:        rt.HotelID,
		HotelName:      hotelName,
		Capacity:       rt.Capacity,
		BasePriceCents: rt.BasePriceCents,
		IsActive:       rt.IsActive,
		AvailableRooms: availableRooms,
	}
}

// CreateRoomType tạo loại phòng mới và mở bán tồn kho mặc định
func CreateRoomType(c *gin.Context) {
	var request dto.CreateRoomTypeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateRoomType(&request); err != nil {
		handleServiceError(c, err)
		return
	}

	var hotel models.Hotel
	if err := config.DB.First(&hotel, request.HotelID).Error; err != nil {
		response.NotFound(c)
		return
	}

	capacity := request.Capacity
	if capacity == 0 {
		capacity = 2
	}

	roomType := models.RoomType{
		Name:           request.Name,
		Description:    request.Description,
		HotelID:        request.HotelID,
		Capacity:       capacity,
		BasePriceCents: request.BasePriceCents,
		IsActive:       true,
	}

	if err := config.DB.Create(&roomType).Error; err != nil {
		response.ServerError(c)
		return
	}

	// Mở bán 365 ngày tồn kho mặc định cho loại phòng mới
	if _, err := inventoryService.InitializeInventory(roomType.ID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.Created(c, roomType)
}

// GetDetailRoomType lấy chi tiết loại phòng
func GetDetailRoomType(c *gin.Context) {
	var roomType models.RoomType
	if err := config.DB.Preload("Hotel").First(&roomType, c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, toRoomTypeResponse(roomType, roomType.Hotel.Name, utils.DateOf(time.Now())))
}

// UpdateRoomType cập nhật loại phòng
func UpdateRoomType(c *gin.Context) {
	var roomType models.RoomType
	var request dto.UpdateRoomTypeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := config.DB.First(&roomType, c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}

	roomType.Name = request.Name
	roomType.Description = request.Description
	if request.Capacity != 0 {
		roomType.Capacity = request.Capacity
	}
	roomType.BasePriceCents = request.BasePriceCents
	if request.IsActive != nil {
		roomType.IsActive = *request.IsActive
	}

	if err := config.DB.Save(&roomType).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, roomType)
}

// DeleteRoomType hạ cờ hoạt động của loại phòng (soft delete)
func DeleteRoomType(c *gin.Context) {
	var roomType models.RoomType
	if err := config.DB.First(&roomType, c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}

	roomType.IsActive = false
	if err := config.DB.Save(&roomType).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}

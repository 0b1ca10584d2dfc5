package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"altairis/dto"
	"altairis/models"
	"altairis/response"
	"altairis/services"
	"altairis/utils"
	"altairis/validator"
)

// GetBookings lấy danh sách booking mới nhất trước, có phân trang và lọc
func GetBookings(c *gin.Context) {
	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	page := 0
	limit := 10

	if pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}

	if limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	filter := services.BookingFilter{
		Status: c.Query("status"),
	}
	if hotelIDStr := c.Query("hotelId"); hotelIDStr != "" {
		if hotelID, err := strconv.ParseUint(hotelIDStr, 10, 32); err == nil {
			filter.HotelID = uint(hotelID)
		}
	}
	if fromStr := c.Query("fromDate"); fromStr != "" {
		from, err := utils.ParseDate(fromStr)
		if err != nil {
			response.BadRequest(c, "Sai định dạng fromDate")
			return
		}
		filter.FromDate = &from
	}
	if toStr := c.Query("toDate"); toStr != "" {
		to, err := utils.ParseDate(toStr)
		if err != nil {
			response.BadRequest(c, "Sai định dạng toDate")
			return
		}
		filter.ToDate = &to
	}

	bookings, total, err := bookingService.GetBookings(page, limit, filter)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	bookingResponses := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		bookingResponses = append(bookingResponses, toBookingResponse(b))
	}

	response.SuccessWithPagination(c, bookingResponses, page, limit, int(total))
}

func toBookingResponse(b models.Booking) dto.BookingResponse {
	return dto.BookingResponse{
		ID:               b.ID,
		BookingNumber:    b.BookingNumber,
		HotelID:          b.HotelID,
		HotelName:        b.Hotel.Name,
		CustomerName:     b.CustomerName,
		CheckInDate:      utils.FormatDate(b.CheckInDate),
		CheckOutDate:     utils.FormatDate(b.CheckOutDate),
		Nights:           b.Nights(),
		NumberOfGuests:   b.NumberOfGuests,
		TotalAmountCents: b.TotalAmountCents,
		Status:           b.Status,
		CreatedAt:        b.CreatedAt,
	}
}

func toBookingDetailResponse(b *models.Booking) dto.BookingDetailResponse {
	items := make([]dto.BookingItemResponse, 0, len(b.Details))
	for _, d := range b.Details {
		items = append(items, dto.BookingItemResponse{
			RoomTypeID:        d.RoomTypeID,
			RoomTypeName:      d.RoomType.Name,
			NumberOfRooms:     d.NumberOfRooms,
			PricePerRoomCents: d.PricePerRoomCents,
			SubtotalCents:     d.SubtotalCents,
		})
	}

	return dto.BookingDetailResponse{
		BookingResponse: toBookingResponse(*b),
		CustomerEmail:   b.CustomerEmail,
		CustomerPhone:   b.CustomerPhone,
		Notes:           b.Notes,
		UpdatedAt:       b.UpdatedAt,
		Items:           items,
	}
}

// CreateBooking tạo booking mới và giữ phòng
func CreateBooking(c *gin.Context) {
	var request dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateBookingRequest(&request); err != nil {
		handleServiceError(c, err)
		return
	}

	booking, err := bookingService.CreateBooking(request)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	// Số liệu dashboard đã cũ
	statsService.InvalidateDashboard()

	response.Created(c, toBookingDetailResponse(booking))
}

// GetDetailBooking lấy chi tiết booking theo ID
func GetDetailBooking(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID booking không hợp lệ")
		return
	}

	booking, svcErr := bookingService.GetBooking(uint(id))
	if svcErr != nil {
		handleServiceError(c, svcErr)
		return
	}

	response.Success(c, toBookingDetailResponse(booking))
}

// GetBookingByNumber tra cứu booking theo mã
func GetBookingByNumber(c *gin.Context) {
	booking, err := bookingService.GetBookingByNumber(c.Param("number"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, toBookingDetailResponse(booking))
}

// UpdateBookingStatus đổi trạng thái booking, hủy thì trả tồn kho
func UpdateBookingStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID booking không hợp lệ")
		return
	}

	var request dto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Trạng thái không hợp lệ")
		return
	}

	booking, svcErr := bookingService.UpdateBookingStatus(uint(id), request.Status)
	if svcErr != nil {
		handleServiceError(c, svcErr)
		return
	}

	statsService.InvalidateDashboard()

	response.Success(c, toBookingDetailResponse(booking))
}

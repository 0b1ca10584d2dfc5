package validator

import (
	"regexp"
	"time"

	"github.com/gin-gonic/gin/binding"
	validatorv10 "github.com/go-playground/validator/v10"

	"altairis/dto"
	"altairis/errors"
	"altairis/models"
)

// RegisterCustomValidators đăng ký các tag validation riêng lên engine
// binding của gin. Gọi một lần lúc khởi động.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validatorv10.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("bookingstatus", func(fl validatorv10.FieldLevel) bool {
		return models.IsValidBookingStatus(fl.Field().String())
	})
}

// ValidateHotel validate thông tin khách sạn
func ValidateHotel(req *dto.CreateHotelRequest) error {
	if req.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên khách sạn không được để trống", nil)
	}

	if req.City == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Thành phố không được để trống", nil)
	}

	if req.Country == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Quốc gia không được để trống", nil)
	}

	if req.StarRating != 0 && (req.StarRating < 1 || req.StarRating > 5) {
		return errors.NewAppError(errors.ErrCodeValidation, "Số sao phải từ 1 đến 5", nil)
	}

	if req.Email != "" && !isValidEmail(req.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}

	return nil
}

// ValidateRoomType validate thông tin loại phòng
func ValidateRoomType(req *dto.CreateRoomTypeRequest) error {
	if req.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên loại phòng không được để trống", nil)
	}

	if req.Capacity < 1 {
		return errors.NewAppError(errors.ErrCodeValidation, "Sức chứa phải ít nhất 1 khách", nil)
	}

	if req.BasePriceCents < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Giá gốc không được âm", nil)
	}

	return nil
}

// ValidateBookingRequest validate dữ liệu tạo booking trước khi vào service
func ValidateBookingRequest(req *dto.CreateBookingRequest) error {
	if req.HotelID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID khách sạn không được để trống", nil)
	}

	if req.CustomerName == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên khách không được để trống", nil)
	}

	if req.CustomerEmail != "" && !isValidEmail(req.CustomerEmail) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email khách không hợp lệ", nil)
	}

	checkIn, err := time.Parse("2006-01-02", req.CheckInDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày nhận phòng không hợp lệ", err)
	}

	checkOut, err := time.Parse("2006-01-02", req.CheckOutDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày trả phòng không hợp lệ", err)
	}

	if !checkOut.After(checkIn) {
		return errors.NewAppError(errors.ErrCodeInvalidDate, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}

	if len(req.Rooms) == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Danh sách phòng không được để trống", nil)
	}

	for _, room := range req.Rooms {
		if room.RoomTypeID == 0 {
			return errors.NewAppError(errors.ErrCodeRequiredField, "ID loại phòng không được để trống", nil)
		}
		if room.NumberOfRooms < 1 {
			return errors.NewAppError(errors.ErrCodeValidation, "Số phòng phải ít nhất 1", nil)
		}
	}

	return nil
}

// ValidateBookingStatus kiểm tra trạng thái booking hợp lệ
func ValidateBookingStatus(status string) error {
	if !models.IsValidBookingStatus(status) {
		return errors.NewAppError(errors.ErrCodeInvalidStatus, "Trạng thái không hợp lệ: "+status, nil)
	}
	return nil
}

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

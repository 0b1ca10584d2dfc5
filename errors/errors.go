package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorCode định nghĩa mã lỗi
type ErrorCode string

const (
	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	ErrCodeInvalidEmail  ErrorCode = "INVALID_EMAIL"
	ErrCodeInvalidStatus ErrorCode = "INVALID_STATUS"
	ErrCodeInvalidDate   ErrorCode = "INVALID_DATE"

	// Database errors
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound  ErrorCode = "DB_NOT_FOUND"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"

	// Business errors
	ErrCodeInsufficientInventory ErrorCode = "INSUFFICIENT_INVENTORY"
	ErrCodeCapacityViolation     ErrorCode = "CAPACITY_VIOLATION"
	ErrCodeAllocationConflict    ErrorCode = "ALLOCATION_CONFLICT"
	ErrCodeIntegrity             ErrorCode = "INTEGRITY_ERROR"
	ErrCodeInvalidOperation      ErrorCode = "INVALID_OPERATION"
)

// AppError định nghĩa lỗi của ứng dụng
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError tạo một AppError mới
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// GetAppError lấy AppError từ error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

var (
	// Lookup errors
	ErrHotelNotFound     = errors.New("hotel not found")
	ErrRoomTypeNotFound  = errors.New("room type not found")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrInventoryNotFound = errors.New("inventory not found")

	// ErrConcurrentConflict báo một giao dịch thua cuộc đua cập nhật tồn kho
	// lúc commit. Caller được phép retry một số lần giới hạn.
	ErrConcurrentConflict = errors.New("concurrent allocation conflict")

	// Validation errors
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidDates    = errors.New("check-out date must be after check-in date")
	ErrMissingRequired = errors.New("missing required field")
)

// InsufficientInventoryError báo thiếu phòng trống, kèm loại phòng và
// các ngày thiếu để caller chỉ được cho người dùng chỗ cần sửa.
type InsufficientInventoryError struct {
	RoomTypeID   uint
	RoomTypeName string
	Dates        []time.Time
}

func (e *InsufficientInventoryError) Error() string {
	if len(e.Dates) == 0 {
		return fmt.Sprintf("no availability for room type %d", e.RoomTypeID)
	}
	return fmt.Sprintf("no availability for room type %d (%s) on %s",
		e.RoomTypeID, e.RoomTypeName, e.Dates[0].Format("2006-01-02"))
}

// CapacityViolationError báo bulk update định hạ totalRooms xuống dưới
// số phòng đang được giữ.
type CapacityViolationError struct {
	RoomTypeID    uint
	Date          time.Time
	ReservedRooms int
}

func (e *CapacityViolationError) Error() string {
	return fmt.Sprintf("cannot reduce total rooms below reserved rooms (%d) for date %s",
		e.ReservedRooms, e.Date.Format("2006-01-02"))
}

// IntegrityError báo sổ tồn kho ở trạng thái không thể xảy ra (ví dụ
// reservedRooms sắp âm). Đây là bug, không được nuốt lỗi.
type IntegrityError struct {
	RoomTypeID uint
	Date       time.Time
	Reason     string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("inventory integrity error for room type %d on %s: %s",
		e.RoomTypeID, e.Date.Format("2006-01-02"), e.Reason)
}

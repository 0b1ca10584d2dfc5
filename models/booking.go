package models

import (
	"fmt"
	"time"
)

// Booking status constants
const (
	BookingStatusPending    = "Pending"
	BookingStatusConfirmed  = "Confirmed"
	BookingStatusCancelled  = "Cancelled"
	BookingStatusCheckedIn  = "CheckedIn"
	BookingStatusCheckedOut = "CheckedOut"
)

var bookingStatuses = map[string]bool{
	BookingStatusPending:    true,
	BookingStatusConfirmed:  true,
	BookingStatusCancelled:  true,
	BookingStatusCheckedIn:  true,
	BookingStatusCheckedOut: true,
}

// Booking chiếm khoảng ngày nửa mở [CheckInDate, CheckOutDate).
// Booking sở hữu các dòng Details; inventory chỉ bị điều chỉnh bộ đếm,
// không thuộc về booking.
type Booking struct {
	ID               uint            `json:"id" gorm:"primaryKey"`
	BookingNumber    string          `json:"bookingNumber" gorm:"size:50;uniqueIndex"`
	HotelID          uint            `json:"hotelId" gorm:"index"`
	Hotel            Hotel           `json:"hotel" gorm:"foreignKey:HotelID"`
	CustomerName     string          `json:"customerName" gorm:"size:200"`
	CustomerEmail    string          `json:"customerEmail" gorm:"size:100"`
	CustomerPhone    string          `json:"customerPhone" gorm:"size:20"`
	CheckInDate      time.Time       `json:"checkInDate" gorm:"type:date"`
	CheckOutDate     time.Time       `json:"checkOutDate" gorm:"type:date"`
	NumberOfGuests   int             `json:"numberOfGuests" gorm:"default:1"`
	TotalAmountCents int64           `json:"totalAmountCents"`
	Status           string          `json:"status" gorm:"size:20;default:Pending"`
	Notes            string          `json:"notes" gorm:"size:1000"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
	Details          []BookingDetail `json:"details" gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE"`
}

func (b *Booking) ValidateStatus() error {
	if !bookingStatuses[b.Status] {
		return fmt.Errorf("invalid status: %s", b.Status)
	}
	return nil
}

func IsValidBookingStatus(status string) bool {
	return bookingStatuses[status]
}

// Nights trả về số đêm lưu trú
func (b *Booking) Nights() int {
	return int(b.CheckOutDate.Sub(b.CheckInDate).Hours() / 24)
}

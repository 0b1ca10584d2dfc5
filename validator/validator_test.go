package validator

import (
	"testing"

	"altairis/dto"
	"altairis/errors"
)

func validBookingRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		HotelID:      1,
		CustomerName: "Nguyen Van A",
		CheckInDate:  "2026-03-10",
		CheckOutDate: "2026-03-12",
		Rooms: []dto.BookingRoomRequest{
			{RoomTypeID: 1, NumberOfRooms: 1},
		},
	}
}

func expectCode(t *testing.T, err error, code errors.ErrorCode) {
	t.Helper()
	appErr := errors.GetAppError(err)
	if appErr == nil {
		t.Fatalf("expected AppError with code %s, got %v", code, err)
	}
	if appErr.Code != code {
		t.Errorf("expected code %s, got %s", code, appErr.Code)
	}
}

func TestValidateBookingRequest_Valid(t *testing.T) {
	req := validBookingRequest()
	if err := ValidateBookingRequest(&req); err != nil {
		t.Errorf("expected valid request, got %v", err)
	}
}

func TestValidateBookingRequest_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*dto.CreateBookingRequest)
		code   errors.ErrorCode
	}{
		{"missing hotel", func(r *dto.CreateBookingRequest) { r.HotelID = 0 }, errors.ErrCodeRequiredField},
		{"missing customer name", func(r *dto.CreateBookingRequest) { r.CustomerName = "" }, errors.ErrCodeRequiredField},
		{"bad email", func(r *dto.CreateBookingRequest) { r.CustomerEmail = "not-an-email" }, errors.ErrCodeInvalidEmail},
		{"bad check-in format", func(r *dto.CreateBookingRequest) { r.CheckInDate = "10/03/2026" }, errors.ErrCodeInvalidFormat},
		{"check-out equals check-in", func(r *dto.CreateBookingRequest) { r.CheckOutDate = r.CheckInDate }, errors.ErrCodeInvalidDate},
		{"check-out before check-in", func(r *dto.CreateBookingRequest) { r.CheckOutDate = "2026-03-09" }, errors.ErrCodeInvalidDate},
		{"no rooms", func(r *dto.CreateBookingRequest) { r.Rooms = nil }, errors.ErrCodeRequiredField},
		{"zero rooms on a line", func(r *dto.CreateBookingRequest) { r.Rooms[0].NumberOfRooms = 0 }, errors.ErrCodeValidation},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := validBookingRequest()
			tc.mutate(&req)
			expectCode(t, ValidateBookingRequest(&req), tc.code)
		})
	}
}

func TestValidateBookingStatus(t *testing.T) {
	for _, s := range []string{"Pending", "Confirmed", "Cancelled", "CheckedIn", "CheckedOut"} {
		if err := ValidateBookingStatus(s); err != nil {
			t.Errorf("expected %s valid, got %v", s, err)
		}
	}
	expectCode(t, ValidateBookingStatus("Archived"), errors.ErrCodeInvalidStatus)
	expectCode(t, ValidateBookingStatus("confirmed"), errors.ErrCodeInvalidStatus)
}

func TestValidateHotel(t *testing.T) {
	req := dto.CreateHotelRequest{Name: "Grand Altairis Madrid", City: "Madrid", Country: "Spain", StarRating: 5}
	if err := ValidateHotel(&req); err != nil {
		t.Errorf("expected valid hotel, got %v", err)
	}

	bad := req
	bad.StarRating = 6
	expectCode(t, ValidateHotel(&bad), errors.ErrCodeValidation)

	bad = req
	bad.Name = ""
	expectCode(t, ValidateHotel(&bad), errors.ErrCodeRequiredField)

	bad = req
	bad.Email = "not-an-email"
	expectCode(t, ValidateHotel(&bad), errors.ErrCodeInvalidEmail)
}

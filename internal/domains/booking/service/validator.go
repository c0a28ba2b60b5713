package service

import (
	"errors"
	"net/http"
	"time"

	"hotelier/internal/domains/booking/model"
	"hotelier/shared/constant"
	"hotelier/shared/failure"

	"github.com/lib/pq"
)

// validateStay enforces the strict date order of a stay: check-out must
// come after check-in. Equal dates are rejected, a zero-night stay holds
// no room.
func validateStay(checkIn, checkOut time.Time) error {
	if !checkIn.Before(checkOut) {
		return failure.Wrap(http.StatusBadRequest, &model.DateOrderError{ // nolint:wrapcheck
			CheckIn:  checkIn,
			CheckOut: checkOut,
		})
	}

	return nil
}

// conflictFailure names the room by its number and reports the dates of
// the booking already holding it.
func conflictFailure(roomNumber string, conflict model.Booking) error {
	return failure.Wrap(http.StatusConflict, &model.RoomConflictError{ // nolint:wrapcheck
		RoomNumber: roomNumber,
		CheckIn:    conflict.CheckIn,
		CheckOut:   conflict.CheckOut,
	})
}

// asBookingFailure maps database constraint violations on bookings to
// client errors. The exclusion constraint on (room_id, stay range) is the
// database-level backstop of the overlap check, so racing writers that
// slip past the row lock still surface as a conflict rather than a 500.
// In that race the winner's dates are unknown, the requested stay stands
// in for the conflicting range.
func asBookingFailure(err error, roomNumber string, booking model.Booking) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch string(pqErr.Code) {
	case constant.PqErrorCodeExclusionViolation:
		return conflictFailure(roomNumber, booking)
	case constant.PqErrorCodeFkViolation:
		return failure.BadRequestFromString("room or customer does not exist") // nolint:wrapcheck
	}

	return err
}

package model

import (
	"fmt"
	"time"

	"hotelier/shared/constant"
)

// DateOrderError reports a stay whose check-out does not come strictly
// after its check-in.
type DateOrderError struct {
	CheckIn  time.Time
	CheckOut time.Time
}

func (e *DateOrderError) Error() string {
	return fmt.Sprintf("check-out date (%s) must be after check-in date (%s)",
		e.CheckOut.Format(constant.DayFormat), e.CheckIn.Format(constant.DayFormat))
}

// RoomConflictError reports a stay that overlaps an existing booking of
// the same room. It names the room by its number and carries the dates of
// the booking already holding the room.
type RoomConflictError struct {
	RoomNumber string
	CheckIn    time.Time
	CheckOut   time.Time
}

func (e *RoomConflictError) Error() string {
	return fmt.Sprintf("Room %s is already booked between %s and %s",
		e.RoomNumber, e.CheckIn.Format(constant.DayFormat), e.CheckOut.Format(constant.DayFormat))
}

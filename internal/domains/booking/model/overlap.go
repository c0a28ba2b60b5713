package model

import (
	"time"

	"hotelier/shared/constant"
)

// ConflictsWith reports whether the half-open stay [checkIn, checkOut) on
// roomID collides with this booking. Stays on different rooms never
// collide. Touching stays do not collide either: one guest may check in
// the day another checks out. A non-empty excludeID skips that booking so
// an update never conflicts with itself.
//
// The repository's overlap query and the bookings_no_overlap exclusion
// constraint encode this same rule in SQL.
func (b *Booking) ConflictsWith(roomID string, checkIn, checkOut time.Time, excludeID string) bool {
	if excludeID != constant.Empty && b.ID == excludeID {
		return false
	}

	return b.RoomID == roomID &&
		b.CheckIn.Before(checkOut) &&
		checkIn.Before(b.CheckOut)
}

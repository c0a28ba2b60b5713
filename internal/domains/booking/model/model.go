package model

import (
	"time"

	"hotelier/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID         = "id"
	FieldRoomID     = "room_id"
	FieldCustomerID = "customer_id"
	FieldCheckIn    = "check_in"
	FieldCheckOut   = "check_out"
)

// Booking occupies a room for the half-open date range [CheckIn, CheckOut).
// The check-out day is free for the next guest to check in.
type Booking struct {
	ID         string    `db:"id"`
	RoomID     string    `db:"room_id"`
	CustomerID string    `db:"customer_id"`
	CheckIn    time.Time `db:"check_in"`
	CheckOut   time.Time `db:"check_out"`
	model.Metadata
}

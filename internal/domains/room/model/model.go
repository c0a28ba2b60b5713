package model

import "hotelier/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID            = "id"
	FieldNumber        = "number"
	FieldRoomType      = "room_type"
	FieldCapacity      = "capacity"
	FieldPricePerNight = "price_per_night"
)

const (
	RoomTypeSingle = "SINGLE"
	RoomTypeDouble = "DOUBLE"
	RoomTypeSuite  = "SUITE"
)

type Room struct {
	ID            string  `db:"id"`
	Number        string  `db:"number"`
	RoomType      string  `db:"room_type"`
	Capacity      int     `db:"capacity"`
	PricePerNight float64 `db:"price_per_night"`
	model.Metadata
}

package dto

import (
	"hotelier/internal/domains/room/model"
	"hotelier/shared"
	gDto "hotelier/shared/dto"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	Number        string  `json:"number"          validate:"required,max=10"`
	RoomType      string  `json:"room_type"       validate:"required,oneof=SINGLE DOUBLE SUITE"`
	Capacity      int     `json:"capacity"        validate:"required,min=1"`
	PricePerNight float64 `json:"price_per_night" validate:"required,min=0"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	return model.Room{
		ID:            uuid.NewString(),
		Number:        c.Number,
		RoomType:      c.RoomType,
		Capacity:      c.Capacity,
		PricePerNight: c.PricePerNight,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	Number        string   `db:"number"          json:"number"          validate:"omitempty,max=10"`
	RoomType      string   `db:"room_type"       json:"room_type"       validate:"omitempty,oneof=SINGLE DOUBLE SUITE"`
	Capacity      *int     `db:"capacity"        json:"capacity"        validate:"omitempty,min=1"`
	PricePerNight *float64 `db:"price_per_night" json:"price_per_night" validate:"omitempty,min=0"`
}

type RoomResponse struct {
	ID            string  `json:"id"`
	Number        string  `json:"number"`
	RoomType      string  `json:"room_type"`
	Capacity      int     `json:"capacity"`
	PricePerNight float64 `json:"price_per_night"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Number = model.Number
	r.RoomType = model.RoomType
	r.Capacity = model.Capacity
	r.PricePerNight = model.PricePerNight
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

package dto

import (
	"time"

	"hotelier/internal/domains/booking/model"
	"hotelier/shared"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	Customer string `json:"customer"  validate:"required,uuid"`
	Room     string `json:"room"      validate:"required,uuid"`
	CheckIn  string `json:"check_in"  validate:"required,date"`
	CheckOut string `json:"check_out" validate:"required,date"`
}

func (c *CreateBookingRequest) ToModel(user string) (model.Booking, error) {
	checkIn, err := time.Parse(constant.DayFormat, c.CheckIn)
	if err != nil {
		return model.Booking{}, err
	}

	checkOut, err := time.Parse(constant.DayFormat, c.CheckOut)
	if err != nil {
		return model.Booking{}, err
	}

	return model.Booking{
		ID:         uuid.NewString(),
		RoomID:     c.Room,
		CustomerID: c.Customer,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

// CreateBookingResponse is the wire contract for booking creation.
type CreateBookingResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	BookingID string `json:"booking_id"`
}

type UpdateBookingRequest struct {
	Customer string `db:"customer_id" json:"customer"  validate:"omitempty,uuid"`
	Room     string `db:"room_id"     json:"room"      validate:"omitempty,uuid"`
	CheckIn  string `json:"check_in"  validate:"omitempty,date"`
	CheckOut string `json:"check_out" validate:"omitempty,date"`
}

type BookingResponse struct {
	ID       string `json:"id"`
	Room     string `json:"room"`
	Customer string `json:"customer"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.Room = model.RoomID
	r.Customer = model.CustomerID
	r.CheckIn = model.CheckIn.Format(constant.DayFormat)
	r.CheckOut = model.CheckOut.Format(constant.DayFormat)
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// StayRange is a booked date range reported back to the caller.
type StayRange struct {
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
}

type AvailabilityResponse struct {
	RoomID    string     `json:"room_id"`
	CheckIn   string     `json:"check_in"`
	CheckOut  string     `json:"check_out"`
	Available bool       `json:"available"`
	Conflict  *StayRange `json:"conflict,omitempty"`
}

// NewStayRange formats the stay already holding the room.
func NewStayRange(booking model.Booking) *StayRange {
	return &StayRange{
		CheckIn:  booking.CheckIn.Format(constant.DayFormat),
		CheckOut: booking.CheckOut.Format(constant.DayFormat),
	}
}

// BookingEvent is published to the booking topic on state changes.
type BookingEvent struct {
	Event      string `json:"event"`
	BookingID  string `json:"booking_id"`
	RoomID     string `json:"room_id"`
	CustomerID string `json:"customer_id"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	OccurredAt string `json:"occurred_at"`
}

const (
	BookingEventCreated   = "booking.created"
	BookingEventUpdated   = "booking.updated"
	BookingEventCancelled = "booking.cancelled"
)

func NewBookingEvent(event string, booking model.Booking) BookingEvent {
	return BookingEvent{
		Event:      event,
		BookingID:  booking.ID,
		RoomID:     booking.RoomID,
		CustomerID: booking.CustomerID,
		CheckIn:    booking.CheckIn.Format(constant.DayFormat),
		CheckOut:   booking.CheckOut.Format(constant.DayFormat),
		OccurredAt: timezone.Now().Format(constant.DateFormat),
	}
}

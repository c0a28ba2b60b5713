package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"hotelier/internal/domains/booking/model"
	"hotelier/internal/domains/booking/model/dto"
	"hotelier/shared/constant"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestCreateBookingRequest_ToModel(t *testing.T) {
	req := dto.CreateBookingRequest{
		Customer: "a1b2c3d4-0000-0000-0000-000000000002",
		Room:     "a1b2c3d4-0000-0000-0000-000000000001",
		CheckIn:  "2026-09-10",
		CheckOut: "2026-09-12",
	}

	userID := "test-user-id"
	booking, err := req.ToModel(userID)

	assert.NoError(t, err)
	assert.NotEmpty(t, booking.ID, "expected ID to be generated")
	assert.Equal(t, req.Room, booking.RoomID)
	assert.Equal(t, req.Customer, booking.CustomerID)
	assert.Equal(t, time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC), booking.CheckIn)
	assert.Equal(t, time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC), booking.CheckOut)
	assert.Equal(t, userID, booking.CreatedBy)
	assert.Equal(t, userID, booking.ModifiedBy)
	assert.False(t, booking.CreatedAt.IsZero(), "expected CreatedAt to be set")
}

func TestCreateBookingRequest_ToModelBadDate(t *testing.T) {
	req := dto.CreateBookingRequest{
		Customer: "a1b2c3d4-0000-0000-0000-000000000002",
		Room:     "a1b2c3d4-0000-0000-0000-000000000001",
		CheckIn:  "10/09/2026",
		CheckOut: "2026-09-12",
	}

	_, err := req.ToModel("test-user-id")
	assert.Error(t, err)
}

func TestBookingResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	bookingModel := model.Booking{
		ID:         "test-id",
		RoomID:     "room-id",
		CustomerID: "customer-id",
		CheckIn:    time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}

	var response dto.BookingResponse
	response.FromModel(bookingModel)

	assert.Equal(t, bookingModel.ID, response.ID)
	assert.Equal(t, bookingModel.RoomID, response.Room)
	assert.Equal(t, bookingModel.CustomerID, response.Customer)
	assert.Equal(t, "2026-09-10", response.CheckIn)
	assert.Equal(t, "2026-09-12", response.CheckOut)
	assert.Equal(t, bookingModel.CreatedBy, response.CreatedBy)
}

func TestCreateBookingResponse_Contract(t *testing.T) {
	res := dto.CreateBookingResponse{
		Status:    constant.ResponseStatusSuccess,
		Message:   "Booking created successfully",
		BookingID: "test-id",
	}

	payload, err := json.Marshal(res)
	assert.NoError(t, err)

	var decoded map[string]any
	assert.NoError(t, json.Unmarshal(payload, &decoded))

	assert.Equal(t, "success", decoded["status"])
	assert.Equal(t, "Booking created successfully", decoded["message"])
	assert.Equal(t, "test-id", decoded["booking_id"])
}

func TestNewBookingEvent(t *testing.T) {
	booking := model.Booking{
		ID:         "test-id",
		RoomID:     "room-id",
		CustomerID: "customer-id",
		CheckIn:    time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
	}

	event := dto.NewBookingEvent(dto.BookingEventCreated, booking)

	assert.Equal(t, dto.BookingEventCreated, event.Event)
	assert.Equal(t, booking.ID, event.BookingID)
	assert.Equal(t, booking.RoomID, event.RoomID)
	assert.Equal(t, booking.CustomerID, event.CustomerID)
	assert.Equal(t, "2026-09-10", event.CheckIn)
	assert.Equal(t, "2026-09-12", event.CheckOut)
	assert.NotEmpty(t, event.OccurredAt)
}

func TestGetBookingsResponse_FromModels(t *testing.T) {
	now := timezone.Now()
	bookings := []model.Booking{
		{
			ID:         "test-id-1",
			RoomID:     "room-1",
			CustomerID: "customer-1",
			CheckIn:    time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
			CheckOut:   time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
			Metadata: gModel.Metadata{
				CreatedAt:  now,
				ModifiedAt: now,
				CreatedBy:  "test-user",
				ModifiedBy: "test-user",
			},
		},
		{
			ID:         "test-id-2",
			RoomID:     "room-2",
			CustomerID: "customer-2",
			CheckIn:    time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
			CheckOut:   time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
			Metadata: gModel.Metadata{
				CreatedAt:  now,
				ModifiedAt: now,
				CreatedBy:  "test-user",
				ModifiedBy: "test-user",
			},
		},
	}

	totalData := 15
	limit := 10

	var response dto.GetBookingsResponse
	response.FromModels(bookings, totalData, limit)

	assert.Equal(t, totalData, response.TotalData)
	assert.Equal(t, 2, response.TotalPage) // 15 items with limit 10 should give 2 pages
	assert.Len(t, response.Bookings, len(bookings))

	for i, booking := range response.Bookings {
		assert.Equal(t, bookings[i].ID, booking.ID)
	}
}

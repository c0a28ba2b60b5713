package model_test

import (
	"testing"
	"time"

	"hotelier/internal/domains/booking/model"
	"hotelier/shared/constant"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	d, err := time.Parse(constant.DayFormat, s)
	if err != nil {
		panic(err)
	}

	return d
}

func TestBooking_ConflictsWith(t *testing.T) {
	// Room 101 holds a booked stay over [2026-09-10, 2026-09-12).
	existing := model.Booking{
		ID:         "b0000000-0000-0000-0000-000000000001",
		RoomID:     "room-101",
		CustomerID: "customer-1",
		CheckIn:    day("2026-09-10"),
		CheckOut:   day("2026-09-12"),
	}

	tests := []struct {
		name         string
		roomID       string
		checkIn      string
		checkOut     string
		excludeID    string
		wantConflict bool
	}{
		{
			name:         "identical stay conflicts",
			roomID:       "room-101",
			checkIn:      "2026-09-10",
			checkOut:     "2026-09-12",
			wantConflict: true,
		},
		{
			name:         "request starting inside the stay conflicts",
			roomID:       "room-101",
			checkIn:      "2026-09-11",
			checkOut:     "2026-09-13",
			wantConflict: true,
		},
		{
			name:         "request ending inside the stay conflicts",
			roomID:       "room-101",
			checkIn:      "2026-09-08",
			checkOut:     "2026-09-11",
			wantConflict: true,
		},
		{
			name:         "request containing the stay conflicts",
			roomID:       "room-101",
			checkIn:      "2026-09-08",
			checkOut:     "2026-09-14",
			wantConflict: true,
		},
		{
			name:         "request contained in the stay conflicts",
			roomID:       "room-101",
			checkIn:      "2026-09-10",
			checkOut:     "2026-09-11",
			wantConflict: true,
		},
		{
			name:         "single night overlapping the last night conflicts",
			roomID:       "room-101",
			checkIn:      "2026-09-11",
			checkOut:     "2026-09-12",
			wantConflict: true,
		},
		{
			name:         "check-in on the existing check-out day does not conflict",
			roomID:       "room-101",
			checkIn:      "2026-09-12",
			checkOut:     "2026-09-14",
			wantConflict: false,
		},
		{
			name:         "check-out on the existing check-in day does not conflict",
			roomID:       "room-101",
			checkIn:      "2026-09-08",
			checkOut:     "2026-09-10",
			wantConflict: false,
		},
		{
			name:         "later disjoint stay does not conflict",
			roomID:       "room-101",
			checkIn:      "2026-09-20",
			checkOut:     "2026-09-22",
			wantConflict: false,
		},
		{
			name:         "earlier disjoint stay does not conflict",
			roomID:       "room-101",
			checkIn:      "2026-09-01",
			checkOut:     "2026-09-05",
			wantConflict: false,
		},
		{
			name:         "same dates on another room do not conflict",
			roomID:       "room-102",
			checkIn:      "2026-09-10",
			checkOut:     "2026-09-12",
			wantConflict: false,
		},
		{
			name:         "excluding the booking itself never conflicts",
			roomID:       "room-101",
			checkIn:      "2026-09-10",
			checkOut:     "2026-09-12",
			excludeID:    existing.ID,
			wantConflict: false,
		},
		{
			name:         "excluding a different booking still conflicts",
			roomID:       "room-101",
			checkIn:      "2026-09-10",
			checkOut:     "2026-09-12",
			excludeID:    "b0000000-0000-0000-0000-000000000099",
			wantConflict: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := existing.ConflictsWith(tt.roomID, day(tt.checkIn), day(tt.checkOut), tt.excludeID)

			assert.Equal(t, tt.wantConflict, got)
		})
	}
}

func TestRoomConflictError_Message(t *testing.T) {
	err := &model.RoomConflictError{
		RoomNumber: "101",
		CheckIn:    day("2026-09-10"),
		CheckOut:   day("2026-09-12"),
	}

	assert.Equal(t, "Room 101 is already booked between 2026-09-10 and 2026-09-12", err.Error())
}

func TestDateOrderError_Message(t *testing.T) {
	err := &model.DateOrderError{
		CheckIn:  day("2026-09-12"),
		CheckOut: day("2026-09-10"),
	}

	assert.Equal(t, "check-out date (2026-09-10) must be after check-in date (2026-09-12)", err.Error())
}

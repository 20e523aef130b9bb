package domain

import "time"

type Hotel struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	Rooms     []Room    `json:"Rooms,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Room struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	HotelID   uint      `json:"hotelId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsFull compares the number of active bookings with the room capacity. Equality is the
// rejection condition: the capacity check runs before every insert, so the count can only
// reach capacity, never pass it.
func (r Room) IsFull(activeBookings int) bool {
	return activeBookings == r.Capacity
}

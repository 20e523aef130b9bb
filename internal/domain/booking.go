package domain

import "time"

type Booking struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"userId"`
	RoomID    uint      `json:"roomId"`
	Room      *Room     `json:"Room,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

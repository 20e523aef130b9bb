package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type BookingRequest struct {
	RoomID uint `json:"roomId"`
}

func (req *BookingRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.RoomID, validation.Required),
	)
}

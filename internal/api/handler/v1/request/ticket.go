package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type PurchaseTicketRequest struct {
	TicketTypeID uint `json:"ticketTypeId"`
}

func (req *PurchaseTicketRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.TicketTypeID, validation.Required),
	)
}

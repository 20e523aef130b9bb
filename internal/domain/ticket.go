package domain

import "time"

type TicketStatus string

const (
	TicketStatusReserved TicketStatus = "RESERVED"
	TicketStatusPaid     TicketStatus = "PAID"
)

type TicketType struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Price         int       `json:"price"`
	IsRemote      bool      `json:"isRemote"`
	IncludesHotel bool      `json:"includesHotel"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type Ticket struct {
	ID           uint         `json:"id"`
	TicketTypeID uint         `json:"ticketTypeId"`
	EnrollmentID uint         `json:"enrollmentId"`
	Status       TicketStatus `json:"status"`
	TicketType   *TicketType  `json:"TicketType,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

func (t *Ticket) IsPaid() bool {
	return t.Status == TicketStatusPaid
}

// MarkPaid moves a reserved ticket to PAID. A paid ticket stays paid.
func (t *Ticket) MarkPaid() {
	t.Status = TicketStatusPaid
}

// HotelQualification reports why the ticket does not give access to hotels, or nil when
// it does: the ticket must be paid and its type must include a hotel and not be remote.
func (t *Ticket) HotelQualification(tt TicketType) error {
	if !t.IsPaid() {
		return ErrTicketNotPaid
	}
	if tt.IsRemote {
		return ErrTicketRemote
	}
	if !tt.IncludesHotel {
		return ErrHotelNotIncluded
	}

	return nil
}

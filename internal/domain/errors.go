package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Handlers map each kind to one HTTP status.
var (
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("forbidden")
	ErrPaymentRequired = errors.New("payment required")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrConflict        = errors.New("conflict")
)

var (
	ErrEnrollmentNotFound = fmt.Errorf("enrollment %w", ErrNotFound)
	ErrTicketNotFound     = fmt.Errorf("ticket %w", ErrNotFound)
	ErrTicketTypeNotFound = fmt.Errorf("ticket type %w", ErrNotFound)
	ErrHotelNotFound      = fmt.Errorf("hotel %w", ErrNotFound)
	ErrRoomNotFound       = fmt.Errorf("room %w", ErrNotFound)
	ErrBookingNotFound    = fmt.Errorf("booking %w", ErrNotFound)
	ErrPaymentNotFound    = fmt.Errorf("payment %w", ErrNotFound)

	ErrRoomFull          = fmt.Errorf("room is full: %w", ErrForbidden)
	ErrAlreadyBooked     = fmt.Errorf("user already has a booking: %w", ErrForbidden)
	ErrNoBookingToUpdate = fmt.Errorf("user has no booking to update: %w", ErrForbidden)
	ErrBookingNotOwned   = fmt.Errorf("booking belongs to another user: %w", ErrForbidden)

	ErrTicketNotOwned = fmt.Errorf("ticket belongs to another enrollment: %w", ErrUnauthorized)

	ErrUserEmailExists     = fmt.Errorf("user email already exists: %w", ErrConflict)
	ErrTicketAlreadyExists = fmt.Errorf("enrollment already has a ticket: %w", ErrConflict)
)

// Qualification failures carry no kind: hotel browsing reports them as
// ErrPaymentRequired, booking as ErrForbidden.
var (
	ErrTicketNotPaid    = errors.New("ticket is not paid")
	ErrTicketRemote     = errors.New("ticket type is remote")
	ErrHotelNotIncluded = errors.New("ticket type does not include hotel")
)

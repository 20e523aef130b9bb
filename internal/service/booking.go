package service

import (
	"context"
	"fmt"

	"github.com/vietanh2810/drivent-api/internal/domain"
)

type BookingRepository interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	FindByUserID(ctx context.Context, userID uint) (*domain.Booking, error)
	LockRoom(ctx context.Context, id uint) (*domain.Room, error)
	CountByRoomID(ctx context.Context, roomID uint) (int, error)
	Create(ctx context.Context, userID, roomID uint) (domain.Booking, error)
	UpdateRoom(ctx context.Context, bookingID, userID, roomID uint) (*domain.Booking, error)
}

type BookingService struct {
	bookings BookingRepository
	resolver ticketResolver
}

func NewBookingService(enrollments EnrollmentRepository, tickets TicketRepository, bookings BookingRepository) *BookingService {
	return &BookingService{
		bookings: bookings,
		resolver: ticketResolver{enrollments: enrollments, tickets: tickets},
	}
}

// qualify checks the user's ticket allows booking. A failing rule is reported as
// ErrForbidden.
func (s *BookingService) qualify(ctx context.Context, userID uint) error {
	chain, err := s.resolver.resolve(ctx, userID)
	if err != nil {
		return err
	}

	if err = chain.ticket.HotelQualification(chain.ticketType); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrForbidden, err)
	}

	return nil
}

// reserveSeat locks the room row and checks it still has a free seat. It must run
// inside a transaction so the lock is held until the booking write commits.
func (s *BookingService) reserveSeat(ctx context.Context, roomID uint) error {
	room, err := s.bookings.LockRoom(ctx, roomID)
	if err != nil {
		return fmt.Errorf("s.bookings.LockRoom -> %w", err)
	}
	if room == nil {
		return domain.ErrRoomNotFound
	}

	count, err := s.bookings.CountByRoomID(ctx, roomID)
	if err != nil {
		return fmt.Errorf("s.bookings.CountByRoomID -> %w", err)
	}
	if room.IsFull(count) {
		return domain.ErrRoomFull
	}

	return nil
}

func (s *BookingService) Create(ctx context.Context, userID, roomID uint) (uint, error) {
	var bookingID uint

	err := runSteps(ctx,
		step{"qualify", func(ctx context.Context) error {
			return s.qualify(ctx, userID)
		}},
		step{"existing booking", func(ctx context.Context) error {
			current, err := s.bookings.FindByUserID(ctx, userID)
			if err != nil {
				return fmt.Errorf("s.bookings.FindByUserID -> %w", err)
			}
			if current != nil {
				return domain.ErrAlreadyBooked
			}
			return nil
		}},
		step{"book", func(ctx context.Context) error {
			return s.bookings.WithTx(ctx, func(ctx context.Context) error {
				if err := s.reserveSeat(ctx, roomID); err != nil {
					return err
				}

				created, err := s.bookings.Create(ctx, userID, roomID)
				if err != nil {
					return fmt.Errorf("s.bookings.Create -> %w", err)
				}
				bookingID = created.ID

				return nil
			})
		}},
	)
	if err != nil {
		return 0, err
	}

	return bookingID, nil
}

func (s *BookingService) FindForUser(ctx context.Context, userID uint) (domain.Booking, error) {
	booking, err := s.bookings.FindByUserID(ctx, userID)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("s.bookings.FindByUserID -> %w", err)
	}
	if booking == nil {
		return domain.Booking{}, domain.ErrBookingNotFound
	}

	return *booking, nil
}

func (s *BookingService) Update(ctx context.Context, userID, roomID, bookingID uint) (uint, error) {
	err := runSteps(ctx,
		step{"current booking", func(ctx context.Context) error {
			current, err := s.bookings.FindByUserID(ctx, userID)
			if err != nil {
				return fmt.Errorf("s.bookings.FindByUserID -> %w", err)
			}
			if current == nil {
				return domain.ErrNoBookingToUpdate
			}
			if current.ID != bookingID {
				return domain.ErrBookingNotOwned
			}
			return nil
		}},
		step{"rebook", func(ctx context.Context) error {
			return s.bookings.WithTx(ctx, func(ctx context.Context) error {
				if err := s.reserveSeat(ctx, roomID); err != nil {
					return err
				}

				updated, err := s.bookings.UpdateRoom(ctx, bookingID, userID, roomID)
				if err != nil {
					return fmt.Errorf("s.bookings.UpdateRoom -> %w", err)
				}
				if updated == nil {
					return domain.ErrNoBookingToUpdate
				}

				return nil
			})
		}},
	)
	if err != nil {
		return 0, err
	}

	return bookingID, nil
}

package service

import (
	"context"
	"fmt"

	"github.com/vietanh2810/drivent-api/internal/domain"
)

type HotelRepository interface {
	FindAll(ctx context.Context) ([]domain.Hotel, error)
	FindWithRooms(ctx context.Context, id uint) (*domain.Hotel, error)
}

type HotelService struct {
	hotels   HotelRepository
	resolver ticketResolver
}

func NewHotelService(enrollments EnrollmentRepository, tickets TicketRepository, hotels HotelRepository) *HotelService {
	return &HotelService{
		hotels:   hotels,
		resolver: ticketResolver{enrollments: enrollments, tickets: tickets},
	}
}

// qualify checks the user's ticket allows hotel browsing. A failing rule is reported
// as ErrPaymentRequired.
func (s *HotelService) qualify(ctx context.Context, userID uint) error {
	chain, err := s.resolver.resolve(ctx, userID)
	if err != nil {
		return err
	}

	if err = chain.ticket.HotelQualification(chain.ticketType); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrPaymentRequired, err)
	}

	return nil
}

func (s *HotelService) ListHotels(ctx context.Context, userID uint) ([]domain.Hotel, error) {
	var hotels []domain.Hotel

	err := runSteps(ctx,
		step{"qualify", func(ctx context.Context) error {
			return s.qualify(ctx, userID)
		}},
		step{"hotels", func(ctx context.Context) error {
			var err error
			hotels, err = s.hotels.FindAll(ctx)
			if err != nil {
				return fmt.Errorf("s.hotels.FindAll -> %w", err)
			}
			if len(hotels) == 0 {
				return domain.ErrHotelNotFound
			}
			return nil
		}},
	)
	if err != nil {
		return nil, err
	}

	return hotels, nil
}

func (s *HotelService) GetHotelRooms(ctx context.Context, hotelID, userID uint) (domain.Hotel, error) {
	var hotel domain.Hotel

	err := runSteps(ctx,
		step{"qualify", func(ctx context.Context) error {
			return s.qualify(ctx, userID)
		}},
		step{"hotel", func(ctx context.Context) error {
			found, err := s.hotels.FindWithRooms(ctx, hotelID)
			if err != nil {
				return fmt.Errorf("s.hotels.FindWithRooms -> %w", err)
			}
			if found == nil {
				return domain.ErrHotelNotFound
			}
			hotel = *found
			return nil
		}},
	)
	if err != nil {
		return domain.Hotel{}, err
	}

	return hotel, nil
}

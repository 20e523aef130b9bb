package service

import (
	"context"
	"fmt"

	"github.com/vietanh2810/drivent-api/internal/domain"
)

type PaymentRepository interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	FindByTicketID(ctx context.Context, ticketID uint) (*domain.Payment, error)
	Create(ctx context.Context, payment domain.Payment) (domain.Payment, error)
}

type PaymentService struct {
	payments PaymentRepository
	tickets  TicketRepository
	resolver ticketResolver
}

func NewPaymentService(enrollments EnrollmentRepository, tickets TicketRepository, payments PaymentRepository) *PaymentService {
	return &PaymentService{
		payments: payments,
		tickets:  tickets,
		resolver: ticketResolver{enrollments: enrollments, tickets: tickets},
	}
}

// ownedTicket loads the ticket and checks it belongs to the user's enrollment.
func (s *PaymentService) ownedTicket(ctx context.Context, ticketID, userID uint) (domain.Ticket, error) {
	ticket, err := s.tickets.FindByID(ctx, ticketID)
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("s.tickets.FindByID -> %w", err)
	}
	if ticket == nil {
		return domain.Ticket{}, domain.ErrTicketNotFound
	}

	enrollment, err := s.resolver.enrollments.FindByUserID(ctx, userID)
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("s.enrollments.FindByUserID -> %w", err)
	}
	if enrollment == nil || enrollment.ID != ticket.EnrollmentID {
		return domain.Ticket{}, domain.ErrTicketNotOwned
	}

	return *ticket, nil
}

func (s *PaymentService) GetPaymentForTicket(ctx context.Context, ticketID, userID uint) (domain.Payment, error) {
	var payment domain.Payment

	err := runSteps(ctx,
		step{"ownership", func(ctx context.Context) error {
			_, err := s.ownedTicket(ctx, ticketID, userID)
			return err
		}},
		step{"payment", func(ctx context.Context) error {
			found, err := s.payments.FindByTicketID(ctx, ticketID)
			if err != nil {
				return fmt.Errorf("s.payments.FindByTicketID -> %w", err)
			}
			if found == nil {
				return domain.ErrPaymentNotFound
			}
			payment = *found
			return nil
		}},
	)
	if err != nil {
		return domain.Payment{}, err
	}

	return payment, nil
}

// CreatePayment records a card payment for the user's ticket. The price comes from
// the ticket type, never from the caller.
func (s *PaymentService) CreatePayment(ctx context.Context, userID, ticketID uint, card domain.CardData) (domain.Payment, error) {
	var (
		ticket  domain.Ticket
		price   int
		payment domain.Payment
	)

	err := runSteps(ctx,
		step{"ownership", func(ctx context.Context) error {
			var err error
			ticket, err = s.ownedTicket(ctx, ticketID, userID)
			return err
		}},
		step{"price", func(ctx context.Context) error {
			tt, err := s.tickets.FindTypeByID(ctx, ticket.TicketTypeID)
			if err != nil {
				return fmt.Errorf("s.tickets.FindTypeByID -> %w", err)
			}
			if tt == nil {
				return domain.ErrTicketTypeNotFound
			}
			price = tt.Price
			return nil
		}},
		step{"pay", func(ctx context.Context) error {
			return s.payments.WithTx(ctx, func(ctx context.Context) error {
				if err := s.tickets.UpdateStatus(ctx, ticket.ID, domain.TicketStatusPaid); err != nil {
					return fmt.Errorf("s.tickets.UpdateStatus -> %w", err)
				}

				var err error
				payment, err = s.payments.Create(ctx, domain.Payment{
					TicketID:       ticket.ID,
					Value:          price,
					CardIssuer:     card.Issuer,
					CardLastDigits: card.LastDigits(),
				})
				if err != nil {
					return fmt.Errorf("s.payments.Create -> %w", err)
				}

				return nil
			})
		}},
	)
	if err != nil {
		return domain.Payment{}, err
	}

	return payment, nil
}

package service

import (
	"context"
	"fmt"

	"github.com/vietanh2810/drivent-api/internal/domain"
)

type TicketRepository interface {
	ListTypes(ctx context.Context) ([]domain.TicketType, error)
	FindTypeByID(ctx context.Context, id uint) (*domain.TicketType, error)
	FindByID(ctx context.Context, id uint) (*domain.Ticket, error)
	FindByEnrollmentID(ctx context.Context, enrollmentID uint) (*domain.Ticket, error)
	Create(ctx context.Context, ticket domain.Ticket) (domain.Ticket, error)
	UpdateStatus(ctx context.Context, id uint, status domain.TicketStatus) error
}

// ticketChain is the resolved enrollment -> ticket -> ticket type chain of a user.
type ticketChain struct {
	enrollment domain.Enrollment
	ticket     domain.Ticket
	ticketType domain.TicketType
}

// ticketResolver walks a user's enrollment, ticket and ticket type, failing with the
// not-found error of the first missing link.
type ticketResolver struct {
	enrollments EnrollmentRepository
	tickets     TicketRepository
}

func (r ticketResolver) enrollment(ctx context.Context, userID uint) (domain.Enrollment, error) {
	enrollment, err := r.enrollments.FindByUserID(ctx, userID)
	if err != nil {
		return domain.Enrollment{}, fmt.Errorf("r.enrollments.FindByUserID -> %w", err)
	}
	if enrollment == nil {
		return domain.Enrollment{}, domain.ErrEnrollmentNotFound
	}

	return *enrollment, nil
}

func (r ticketResolver) resolve(ctx context.Context, userID uint) (ticketChain, error) {
	var chain ticketChain

	err := runSteps(ctx,
		step{"enrollment", func(ctx context.Context) error {
			enrollment, err := r.enrollment(ctx, userID)
			chain.enrollment = enrollment
			return err
		}},
		step{"ticket", func(ctx context.Context) error {
			ticket, err := r.tickets.FindByEnrollmentID(ctx, chain.enrollment.ID)
			if err != nil {
				return fmt.Errorf("r.tickets.FindByEnrollmentID -> %w", err)
			}
			if ticket == nil {
				return domain.ErrTicketNotFound
			}
			chain.ticket = *ticket
			return nil
		}},
		step{"ticket type", func(ctx context.Context) error {
			if chain.ticket.TicketType != nil {
				chain.ticketType = *chain.ticket.TicketType
				return nil
			}
			tt, err := r.tickets.FindTypeByID(ctx, chain.ticket.TicketTypeID)
			if err != nil {
				return fmt.Errorf("r.tickets.FindTypeByID -> %w", err)
			}
			if tt == nil {
				return domain.ErrTicketTypeNotFound
			}
			chain.ticketType = *tt
			return nil
		}},
	)

	return chain, err
}

type TicketService struct {
	tickets  TicketRepository
	resolver ticketResolver
}

func NewTicketService(enrollments EnrollmentRepository, tickets TicketRepository) *TicketService {
	return &TicketService{
		tickets:  tickets,
		resolver: ticketResolver{enrollments: enrollments, tickets: tickets},
	}
}

func (s *TicketService) ListTicketTypes(ctx context.Context) ([]domain.TicketType, error) {
	types, err := s.tickets.ListTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.tickets.ListTypes -> %w", err)
	}

	return types, nil
}

func (s *TicketService) GetTicketForUser(ctx context.Context, userID uint) (domain.Ticket, error) {
	chain, err := s.resolver.resolve(ctx, userID)
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("s.resolver.resolve -> %w", err)
	}

	ticket := chain.ticket
	ticket.TicketType = &chain.ticketType

	return ticket, nil
}

func (s *TicketService) PurchaseTicket(ctx context.Context, userID, ticketTypeID uint) (domain.Ticket, error) {
	var (
		enrollment domain.Enrollment
		created    domain.Ticket
	)

	err := runSteps(ctx,
		step{"enrollment", func(ctx context.Context) error {
			var err error
			enrollment, err = s.resolver.enrollment(ctx, userID)
			return err
		}},
		step{"ticket type", func(ctx context.Context) error {
			tt, err := s.tickets.FindTypeByID(ctx, ticketTypeID)
			if err != nil {
				return fmt.Errorf("s.tickets.FindTypeByID -> %w", err)
			}
			if tt == nil {
				return domain.ErrTicketTypeNotFound
			}
			return nil
		}},
		step{"create", func(ctx context.Context) error {
			var err error
			created, err = s.tickets.Create(ctx, domain.Ticket{
				TicketTypeID: ticketTypeID,
				EnrollmentID: enrollment.ID,
				Status:       domain.TicketStatusReserved,
			})
			if err != nil {
				return fmt.Errorf("s.tickets.Create -> %w", err)
			}
			return nil
		}},
	)
	if err != nil {
		return domain.Ticket{}, err
	}

	return created, nil
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/vietanh2810/drivent-api/internal/domain"
	"github.com/vietanh2810/drivent-api/internal/repository/dao"
)

type TicketDAO interface {
	FindTypes(ctx context.Context) ([]dao.TicketType, error)
	FindTypeByID(ctx context.Context, id uint) (*dao.TicketType, error)
	FindByID(ctx context.Context, id uint) (*dao.Ticket, error)
	FindByEnrollmentID(ctx context.Context, enrollmentID uint) (*dao.Ticket, error)
	Insert(ctx context.Context, ticket dao.Ticket) (dao.Ticket, error)
	UpdateStatus(ctx context.Context, id uint, status dao.TicketStatus) error
}

type TicketRepository struct {
	dao TicketDAO
}

func NewTicketRepository(dao TicketDAO) *TicketRepository {
	return &TicketRepository{
		dao: dao,
	}
}

func (r *TicketRepository) ListTypes(ctx context.Context) ([]domain.TicketType, error) {
	found, err := r.dao.FindTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindTypes -> %w", err)
	}

	types := make([]domain.TicketType, len(found))
	for i, tt := range found {
		types[i] = r.typeDaoToDomain(tt)
	}

	return types, nil
}

func (r *TicketRepository) FindTypeByID(ctx context.Context, id uint) (*domain.TicketType, error) {
	found, err := r.dao.FindTypeByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindTypeByID -> %w", err)
	}
	if found == nil {
		return nil, nil
	}

	tt := r.typeDaoToDomain(*found)
	return &tt, nil
}

func (r *TicketRepository) FindByID(ctx context.Context, id uint) (*domain.Ticket, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByID -> %w", err)
	}
	if found == nil {
		return nil, nil
	}

	ticket := r.daoToDomain(*found)
	return &ticket, nil
}

func (r *TicketRepository) FindByEnrollmentID(ctx context.Context, enrollmentID uint) (*domain.Ticket, error) {
	found, err := r.dao.FindByEnrollmentID(ctx, enrollmentID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByEnrollmentID -> %w", err)
	}
	if found == nil {
		return nil, nil
	}

	ticket := r.daoToDomain(*found)
	return &ticket, nil
}

func (r *TicketRepository) Create(ctx context.Context, ticket domain.Ticket) (domain.Ticket, error) {
	created, err := r.dao.Insert(ctx, dao.Ticket{
		TicketTypeID: ticket.TicketTypeID,
		EnrollmentID: ticket.EnrollmentID,
		Status:       dao.TicketStatus(ticket.Status),
	})
	if err != nil {
		if errors.Is(err, dao.ErrTicketExists) {
			return domain.Ticket{}, domain.ErrTicketAlreadyExists
		}

		return domain.Ticket{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *TicketRepository) UpdateStatus(ctx context.Context, id uint, status domain.TicketStatus) error {
	if err := r.dao.UpdateStatus(ctx, id, dao.TicketStatus(status)); err != nil {
		return fmt.Errorf("r.dao.UpdateStatus -> %w", err)
	}

	return nil
}

func (r *TicketRepository) daoToDomain(t dao.Ticket) domain.Ticket {
	ticket := domain.Ticket{
		ID:           t.ID,
		TicketTypeID: t.TicketTypeID,
		EnrollmentID: t.EnrollmentID,
		Status:       domain.TicketStatus(t.Status),
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}

	if t.TicketType.ID != 0 {
		tt := r.typeDaoToDomain(t.TicketType)
		ticket.TicketType = &tt
	}

	return ticket
}

func (r *TicketRepository) typeDaoToDomain(tt dao.TicketType) domain.TicketType {
	return domain.TicketType{
		ID:            tt.ID,
		Name:          tt.Name,
		Price:         tt.Price,
		IsRemote:      tt.IsRemote,
		IncludesHotel: tt.IncludesHotel,
		CreatedAt:     tt.CreatedAt,
		UpdatedAt:     tt.UpdatedAt,
	}
}

package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/drivent-api/internal/domain"
	"github.com/vietanh2810/drivent-api/internal/repository/dao"
)

type PaymentDAO interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	FindByTicketID(ctx context.Context, ticketID uint) (*dao.Payment, error)
	Insert(ctx context.Context, payment dao.Payment) (dao.Payment, error)
}

type PaymentRepository struct {
	dao PaymentDAO
}

func NewPaymentRepository(dao PaymentDAO) *PaymentRepository {
	return &PaymentRepository{
		dao: dao,
	}
}

func (r *PaymentRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.dao.WithTx(ctx, fn)
}

func (r *PaymentRepository) FindByTicketID(ctx context.Context, ticketID uint) (*domain.Payment, error) {
	found, err := r.dao.FindByTicketID(ctx, ticketID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByTicketID -> %w", err)
	}
	if found == nil {
		return nil, nil
	}

	payment := r.daoToDomain(*found)
	return &payment, nil
}

// Create persists the payment. The caller passes only the last card digits; the full
// card number never reaches this layer.
func (r *PaymentRepository) Create(ctx context.Context, payment domain.Payment) (domain.Payment, error) {
	created, err := r.dao.Insert(ctx, dao.Payment{
		TicketID:       payment.TicketID,
		Value:          payment.Value,
		CardIssuer:     payment.CardIssuer,
		CardLastDigits: payment.CardLastDigits,
	})
	if err != nil {
		return domain.Payment{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *PaymentRepository) daoToDomain(p dao.Payment) domain.Payment {
	return domain.Payment{
		ID:             p.ID,
		TicketID:       p.TicketID,
		Value:          p.Value,
		CardIssuer:     p.CardIssuer,
		CardLastDigits: p.CardLastDigits,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

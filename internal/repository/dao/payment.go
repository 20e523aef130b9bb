package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type Payment struct {
	ID             uint   `gorm:"primaryKey"`
	TicketID       uint   `gorm:"not null;index"`
	Ticket         Ticket `gorm:"foreignKey:TicketID"`
	Value          int    `gorm:"not null"`
	CardIssuer     string `gorm:"not null"`
	CardLastDigits string `gorm:"type:varchar(4);not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type PaymentDAO struct {
	db *gorm.DB
}

func NewPaymentDAO(db *gorm.DB) *PaymentDAO {
	return &PaymentDAO{
		db: db,
	}
}

func (d *PaymentDAO) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return WithTx(ctx, d.db, fn)
}

func (d *PaymentDAO) FindByTicketID(ctx context.Context, ticketID uint) (*Payment, error) {
	var payment Payment

	result := conn(ctx, d.db).
		Where("ticket_id = ?", ticketID).
		Order("id").
		First(&payment)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, result.Error
	}

	return &payment, nil
}

func (d *PaymentDAO) Insert(ctx context.Context, payment Payment) (Payment, error) {
	result := conn(ctx, d.db).Omit("Ticket").Create(&payment)
	if result.Error != nil {
		return Payment{}, result.Error
	}

	return payment, nil
}

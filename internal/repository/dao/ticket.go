package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrTicketExists = errors.New("ticket already exists for enrollment")

type TicketStatus string

const (
	TicketReserved TicketStatus = "RESERVED"
	TicketPaid     TicketStatus = "PAID"
)

type TicketType struct {
	ID            uint   `gorm:"primaryKey"`
	Name          string `gorm:"not null"`
	Price         int    `gorm:"not null"`
	IsRemote      bool   `gorm:"not null"`
	IncludesHotel bool   `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Ticket struct {
	ID           uint         `gorm:"primaryKey"`
	TicketTypeID uint         `gorm:"not null;index"`
	TicketType   TicketType   `gorm:"foreignKey:TicketTypeID"`
	EnrollmentID uint         `gorm:"not null;uniqueIndex"`
	Enrollment   Enrollment   `gorm:"foreignKey:EnrollmentID"`
	Status       TicketStatus `gorm:"type:varchar(16);not null;default:'RESERVED'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type TicketDAO struct {
	db *gorm.DB
}

func NewTicketDAO(db *gorm.DB) *TicketDAO {
	return &TicketDAO{
		db: db,
	}
}

func (d *TicketDAO) FindTypes(ctx context.Context) ([]TicketType, error) {
	var types []TicketType

	result := conn(ctx, d.db).Order("id").Find(&types)
	if result.Error != nil {
		return nil, result.Error
	}

	return types, nil
}

func (d *TicketDAO) FindTypeByID(ctx context.Context, id uint) (*TicketType, error) {
	var ticketType TicketType

	result := conn(ctx, d.db).First(&ticketType, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, result.Error
	}

	return &ticketType, nil
}

func (d *TicketDAO) FindByID(ctx context.Context, id uint) (*Ticket, error) {
	var ticket Ticket

	result := conn(ctx, d.db).First(&ticket, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, result.Error
	}

	return &ticket, nil
}

// FindByEnrollmentID returns the enrollment's ticket with its TicketType preloaded.
func (d *TicketDAO) FindByEnrollmentID(ctx context.Context, enrollmentID uint) (*Ticket, error) {
	var ticket Ticket

	result := conn(ctx, d.db).
		Preload("TicketType").
		Where("enrollment_id = ?", enrollmentID).
		First(&ticket)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, result.Error
	}

	return &ticket, nil
}

func (d *TicketDAO) Insert(ctx context.Context, ticket Ticket) (Ticket, error) {
	result := conn(ctx, d.db).Omit("TicketType", "Enrollment").Create(&ticket)
	if result.Error != nil {
		if isUniqueViolation(result.Error, "idx_tickets_enrollment_id") {
			return Ticket{}, ErrTicketExists
		}

		return Ticket{}, result.Error
	}

	found, err := d.FindByEnrollmentID(ctx, ticket.EnrollmentID)
	if err != nil {
		return Ticket{}, err
	}
	if found == nil {
		return Ticket{}, gorm.ErrRecordNotFound
	}

	return *found, nil
}

func (d *TicketDAO) UpdateStatus(ctx context.Context, id uint, status TicketStatus) error {
	result := conn(ctx, d.db).
		Model(&Ticket{}).
		Where("id = ?", id).
		Update("status", status)

	return result.Error
}

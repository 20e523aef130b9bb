package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/vietanh2810/drivent-api/internal/domain"
	"github.com/vietanh2810/drivent-api/internal/repository/dao"
)

type BookingDAO interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	FindByUserID(ctx context.Context, userID uint) (*dao.Booking, error)
	LockRoom(ctx context.Context, id uint) (*dao.Room, error)
	CountByRoomID(ctx context.Context, roomID uint) (int64, error)
	Insert(ctx context.Context, booking dao.Booking) (dao.Booking, error)
	UpdateRoom(ctx context.Context, bookingID, userID, roomID uint) (*dao.Booking, error)
}

type BookingRepository struct {
	dao BookingDAO
}

func NewBookingRepository(dao BookingDAO) *BookingRepository {
	return &BookingRepository{
		dao: dao,
	}
}

func (r *BookingRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.dao.WithTx(ctx, fn)
}

func (r *BookingRepository) FindByUserID(ctx context.Context, userID uint) (*domain.Booking, error) {
	found, err := r.dao.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByUserID -> %w", err)
	}
	if found == nil {
		return nil, nil
	}

	booking := r.daoToDomain(*found)
	return &booking, nil
}

func (r *BookingRepository) LockRoom(ctx context.Context, id uint) (*domain.Room, error) {
	found, err := r.dao.LockRoom(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("r.dao.LockRoom -> %w", err)
	}
	if found == nil {
		return nil, nil
	}

	room := roomDaoToDomain(*found)
	return &room, nil
}

func (r *BookingRepository) CountByRoomID(ctx context.Context, roomID uint) (int, error) {
	count, err := r.dao.CountByRoomID(ctx, roomID)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountByRoomID -> %w", err)
	}

	return int(count), nil
}

func (r *BookingRepository) Create(ctx context.Context, userID, roomID uint) (domain.Booking, error) {
	created, err := r.dao.Insert(ctx, dao.Booking{
		UserID: userID,
		RoomID: roomID,
	})
	if err != nil {
		if errors.Is(err, dao.ErrBookingExists) {
			return domain.Booking{}, domain.ErrAlreadyBooked
		}

		return domain.Booking{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *BookingRepository) UpdateRoom(ctx context.Context, bookingID, userID, roomID uint) (*domain.Booking, error) {
	updated, err := r.dao.UpdateRoom(ctx, bookingID, userID, roomID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.UpdateRoom -> %w", err)
	}
	if updated == nil {
		return nil, nil
	}

	booking := r.daoToDomain(*updated)
	return &booking, nil
}

func (r *BookingRepository) daoToDomain(b dao.Booking) domain.Booking {
	booking := domain.Booking{
		ID:        b.ID,
		UserID:    b.UserID,
		RoomID:    b.RoomID,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}

	if b.Room.ID != 0 {
		room := roomDaoToDomain(b.Room)
		booking.Room = &room
	}

	return booking
}

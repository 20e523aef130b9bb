package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrBookingExists = errors.New("booking already exists for user")

type Booking struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"not null;uniqueIndex"`
	User      User `gorm:"foreignKey:UserID"`
	RoomID    uint `gorm:"not null;index"`
	Room      Room `gorm:"foreignKey:RoomID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type BookingDAO struct {
	db *gorm.DB
}

func NewBookingDAO(db *gorm.DB) *BookingDAO {
	return &BookingDAO{
		db: db,
	}
}

func (d *BookingDAO) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return WithTx(ctx, d.db, fn)
}

func (d *BookingDAO) FindByUserID(ctx context.Context, userID uint) (*Booking, error) {
	var booking Booking

	result := conn(ctx, d.db).
		Preload("Room").
		Where("user_id = ?", userID).
		First(&booking)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, result.Error
	}

	return &booking, nil
}

// LockRoom reads the room with SELECT ... FOR UPDATE. Inside a transaction this serializes
// every booking write that targets the same room until commit.
func (d *BookingDAO) LockRoom(ctx context.Context, id uint) (*Room, error) {
	var room Room

	result := conn(ctx, d.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&room, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, result.Error
	}

	return &room, nil
}

func (d *BookingDAO) CountByRoomID(ctx context.Context, roomID uint) (int64, error) {
	var count int64

	result := conn(ctx, d.db).
		Model(&Booking{}).
		Where("room_id = ?", roomID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

func (d *BookingDAO) Insert(ctx context.Context, booking Booking) (Booking, error) {
	result := conn(ctx, d.db).Omit("User", "Room").Create(&booking)
	if result.Error != nil {
		if isUniqueViolation(result.Error, "idx_bookings_user_id") {
			return Booking{}, ErrBookingExists
		}

		return Booking{}, result.Error
	}

	return booking, nil
}

// UpdateRoom points the booking at another room. It returns nil when no booking with
// that id belongs to userID.
func (d *BookingDAO) UpdateRoom(ctx context.Context, bookingID, userID, roomID uint) (*Booking, error) {
	result := conn(ctx, d.db).
		Model(&Booking{}).
		Where("id = ? AND user_id = ?", bookingID, userID).
		Update("room_id", roomID)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	var booking Booking
	if err := conn(ctx, d.db).First(&booking, bookingID).Error; err != nil {
		return nil, err
	}

	return &booking, nil
}

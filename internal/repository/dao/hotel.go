package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type Hotel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Image     string `gorm:"not null"`
	Rooms     []Room `gorm:"foreignKey:HotelID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Room struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Capacity  int    `gorm:"not null;check:capacity > 0"`
	HotelID   uint   `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type HotelDAO struct {
	db *gorm.DB
}

func NewHotelDAO(db *gorm.DB) *HotelDAO {
	return &HotelDAO{
		db: db,
	}
}

func (d *HotelDAO) FindAll(ctx context.Context) ([]Hotel, error) {
	var hotels []Hotel

	result := conn(ctx, d.db).Order("id").Find(&hotels)
	if result.Error != nil {
		return nil, result.Error
	}

	return hotels, nil
}

// FindWithRooms returns the hotel and its rooms ordered by id.
func (d *HotelDAO) FindWithRooms(ctx context.Context, id uint) (*Hotel, error) {
	var hotel Hotel

	result := conn(ctx, d.db).
		Preload("Rooms", func(db *gorm.DB) *gorm.DB {
			return db.Order("rooms.id")
		}).
		First(&hotel, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, result.Error
	}

	return &hotel, nil
}

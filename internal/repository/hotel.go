package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/drivent-api/internal/domain"
	"github.com/vietanh2810/drivent-api/internal/repository/dao"
)

type HotelDAO interface {
	FindAll(ctx context.Context) ([]dao.Hotel, error)
	FindWithRooms(ctx context.Context, id uint) (*dao.Hotel, error)
}

type HotelRepository struct {
	dao HotelDAO
}

func NewHotelRepository(dao HotelDAO) *HotelRepository {
	return &HotelRepository{
		dao: dao,
	}
}

func (r *HotelRepository) FindAll(ctx context.Context) ([]domain.Hotel, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	hotels := make([]domain.Hotel, len(found))
	for i, h := range found {
		hotels[i] = r.daoToDomain(h)
	}

	return hotels, nil
}

func (r *HotelRepository) FindWithRooms(ctx context.Context, id uint) (*domain.Hotel, error) {
	found, err := r.dao.FindWithRooms(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindWithRooms -> %w", err)
	}
	if found == nil {
		return nil, nil
	}

	hotel := r.daoToDomain(*found)
	if hotel.Rooms == nil {
		hotel.Rooms = []domain.Room{}
	}

	return &hotel, nil
}

func (r *HotelRepository) daoToDomain(h dao.Hotel) domain.Hotel {
	hotel := domain.Hotel{
		ID:        h.ID,
		Name:      h.Name,
		Image:     h.Image,
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}

	if len(h.Rooms) > 0 {
		hotel.Rooms = make([]domain.Room, len(h.Rooms))
		for i, room := range h.Rooms {
			hotel.Rooms[i] = roomDaoToDomain(room)
		}
	}

	return hotel
}

func roomDaoToDomain(r dao.Room) domain.Room {
	return domain.Room{
		ID:        r.ID,
		Name:      r.Name,
		Capacity:  r.Capacity,
		HotelID:   r.HotelID,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/drivent-api/internal/domain"
	"github.com/vietanh2810/drivent-api/internal/repository/dao"
)

type stubTicketDAO struct {
	TicketDAO
	insertErr error
	found     *dao.Ticket
}

func (s stubTicketDAO) Insert(_ context.Context, t dao.Ticket) (dao.Ticket, error) {
	if s.insertErr != nil {
		return dao.Ticket{}, s.insertErr
	}
	t.ID = 1
	t.TicketType = dao.TicketType{ID: t.TicketTypeID, Name: "Online", IsRemote: true}
	return t, nil
}

func (s stubTicketDAO) FindByEnrollmentID(context.Context, uint) (*dao.Ticket, error) {
	return s.found, nil
}

func TestTicketRepository_Create(t *testing.T) {
	t.Run("maps the enrollment unique violation", func(t *testing.T) {
		repo := NewTicketRepository(stubTicketDAO{insertErr: dao.ErrTicketExists})

		_, err := repo.Create(context.Background(), domain.Ticket{TicketTypeID: 1, EnrollmentID: 10})
		assert.ErrorIs(t, err, domain.ErrTicketAlreadyExists)
	})

	t.Run("wraps other errors", func(t *testing.T) {
		boom := errors.New("boom")
		repo := NewTicketRepository(stubTicketDAO{insertErr: boom})

		_, err := repo.Create(context.Background(), domain.Ticket{TicketTypeID: 1, EnrollmentID: 10})
		assert.ErrorIs(t, err, boom)
		assert.EqualError(t, err, "r.dao.Insert -> boom")
	})

	t.Run("returns the ticket with its type", func(t *testing.T) {
		repo := NewTicketRepository(stubTicketDAO{})

		ticket, err := repo.Create(context.Background(), domain.Ticket{TicketTypeID: 3, EnrollmentID: 10, Status: domain.TicketStatusReserved})
		require.NoError(t, err)

		require.NotNil(t, ticket.TicketType)
		assert.True(t, ticket.TicketType.IsRemote)
		assert.Equal(t, domain.TicketStatusReserved, ticket.Status)
	})
}

func TestTicketRepository_FindByEnrollmentID_Absent(t *testing.T) {
	repo := NewTicketRepository(stubTicketDAO{})

	ticket, err := repo.FindByEnrollmentID(context.Background(), 10)
	require.NoError(t, err)
	assert.Nil(t, ticket)
}

type stubUserDAO struct {
	UserDAO
	insertErr error
}

func (s stubUserDAO) Insert(_ context.Context, u dao.User) (dao.User, error) {
	if s.insertErr != nil {
		return dao.User{}, s.insertErr
	}
	u.ID = 1
	return u, nil
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	repo := NewUserRepository(stubUserDAO{insertErr: dao.ErrUserEmailExists})

	_, err := repo.Create(context.Background(), domain.User{Email: "ana@driven.com", Password: "hash"})
	assert.ErrorIs(t, err, domain.ErrUserEmailExists)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

type stubHotelDAO struct {
	hotel *dao.Hotel
}

func (s stubHotelDAO) FindAll(context.Context) ([]dao.Hotel, error) {
	return nil, nil
}

func (s stubHotelDAO) FindWithRooms(context.Context, uint) (*dao.Hotel, error) {
	return s.hotel, nil
}

func TestHotelRepository_FindWithRooms(t *testing.T) {
	t.Run("hotel without rooms has an empty list", func(t *testing.T) {
		repo := NewHotelRepository(stubHotelDAO{hotel: &dao.Hotel{ID: 1, Name: "Driven Resort"}})

		hotel, err := repo.FindWithRooms(context.Background(), 1)
		require.NoError(t, err)
		require.NotNil(t, hotel)
		assert.NotNil(t, hotel.Rooms)
		assert.Empty(t, hotel.Rooms)
	})

	t.Run("rooms keep their order", func(t *testing.T) {
		repo := NewHotelRepository(stubHotelDAO{hotel: &dao.Hotel{ID: 1, Rooms: []dao.Room{
			{ID: 1, Name: "101", Capacity: 1, HotelID: 1},
			{ID: 2, Name: "102", Capacity: 3, HotelID: 1},
		}}})

		hotel, err := repo.FindWithRooms(context.Background(), 1)
		require.NoError(t, err)
		require.Len(t, hotel.Rooms, 2)
		assert.Equal(t, "101", hotel.Rooms[0].Name)
		assert.Equal(t, 3, hotel.Rooms[1].Capacity)
	})

	t.Run("absent hotel is nil", func(t *testing.T) {
		repo := NewHotelRepository(stubHotelDAO{})

		hotel, err := repo.FindWithRooms(context.Background(), 9)
		require.NoError(t, err)
		assert.Nil(t, hotel)
	})
}

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/drivent-api/internal/domain"
)

func TestHotelService(t *testing.T) {
	t.Parallel()

	hotels := []domain.Hotel{
		{ID: 1, Name: "Driven Resort", Rooms: []domain.Room{{ID: 1, Name: "101", Capacity: 2, HotelID: 1}}},
		{ID: 2, Name: "Driven Palace", Rooms: []domain.Room{}},
	}

	makeSvc := func(ticket domain.Ticket, hotels []domain.Hotel) *HotelService {
		return NewHotelService(
			newFakeEnrollmentRepo(enrollment),
			newFakeTicketRepo(allTypes, ticket),
			&fakeHotelRepo{hotels: hotels},
		)
	}

	t.Run("lists hotels for a qualifying ticket", func(t *testing.T) {
		svc := makeSvc(paidTicket(hotelType.ID), hotels)

		got, err := svc.ListHotels(context.Background(), userID)
		require.NoError(t, err)

		require.Len(t, got, 2)
		assert.Equal(t, "Driven Resort", got[0].Name)
	})

	t.Run("empty catalog is not found", func(t *testing.T) {
		svc := makeSvc(paidTicket(hotelType.ID), nil)

		_, err := svc.ListHotels(context.Background(), userID)
		assert.ErrorIs(t, err, domain.ErrHotelNotFound)
	})

	t.Run("returns hotel with rooms", func(t *testing.T) {
		svc := makeSvc(paidTicket(hotelType.ID), hotels)

		got, err := svc.GetHotelRooms(context.Background(), 1, userID)
		require.NoError(t, err)

		require.Len(t, got.Rooms, 1)
		assert.Equal(t, "101", got.Rooms[0].Name)
	})

	t.Run("unknown hotel is not found", func(t *testing.T) {
		svc := makeSvc(paidTicket(hotelType.ID), hotels)

		_, err := svc.GetHotelRooms(context.Background(), 9, userID)
		assert.ErrorIs(t, err, domain.ErrHotelNotFound)
	})

	t.Run("qualification failures require payment", func(t *testing.T) {
		reserved := paidTicket(hotelType.ID)
		reserved.Status = domain.TicketStatusReserved

		for name, ticket := range map[string]domain.Ticket{
			"unpaid":   reserved,
			"remote":   paidTicket(remoteType.ID),
			"no hotel": paidTicket(plainType.ID),
		} {
			t.Run(name, func(t *testing.T) {
				svc := makeSvc(ticket, hotels)

				_, err := svc.ListHotels(context.Background(), userID)
				assert.ErrorIs(t, err, domain.ErrPaymentRequired)

				// Fails before the hotel lookup, so an unknown id gives the same answer.
				_, err = svc.GetHotelRooms(context.Background(), 9, userID)
				assert.ErrorIs(t, err, domain.ErrPaymentRequired)
				assert.NotErrorIs(t, err, domain.ErrNotFound)
			})
		}
	})

	t.Run("missing enrollment is not found", func(t *testing.T) {
		svc := makeSvc(paidTicket(hotelType.ID), hotels)

		_, err := svc.ListHotels(context.Background(), otherUserID)
		assert.ErrorIs(t, err, domain.ErrEnrollmentNotFound)
	})
}

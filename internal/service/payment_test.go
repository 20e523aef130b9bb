package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/drivent-api/internal/domain"
)

func TestPaymentService_GetPaymentForTicket(t *testing.T) {
	t.Parallel()

	ticket := paidTicket(hotelType.ID)
	payments := &fakePaymentRepo{payments: []domain.Payment{{ID: 1, TicketID: ticket.ID, Value: 600, CardLastDigits: "1111"}}}
	svc := NewPaymentService(newFakeEnrollmentRepo(enrollment, enrollment2), newFakeTicketRepo(allTypes, ticket), payments)

	t.Run("returns payment of owned ticket", func(t *testing.T) {
		payment, err := svc.GetPaymentForTicket(context.Background(), ticket.ID, userID)
		require.NoError(t, err)

		assert.Equal(t, 600, payment.Value)
	})

	t.Run("unknown ticket is not found", func(t *testing.T) {
		_, err := svc.GetPaymentForTicket(context.Background(), 999, userID)
		assert.ErrorIs(t, err, domain.ErrTicketNotFound)
	})

	t.Run("other user's ticket is unauthorized", func(t *testing.T) {
		_, err := svc.GetPaymentForTicket(context.Background(), ticket.ID, otherUserID)
		assert.ErrorIs(t, err, domain.ErrTicketNotOwned)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("requester without enrollment is unauthorized", func(t *testing.T) {
		_, err := svc.GetPaymentForTicket(context.Background(), ticket.ID, 42)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("ticket without payment is not found", func(t *testing.T) {
		empty := NewPaymentService(newFakeEnrollmentRepo(enrollment), newFakeTicketRepo(allTypes, ticket), &fakePaymentRepo{})

		_, err := empty.GetPaymentForTicket(context.Background(), ticket.ID, userID)
		assert.ErrorIs(t, err, domain.ErrPaymentNotFound)
	})
}

func TestPaymentService_CreatePayment(t *testing.T) {
	t.Parallel()

	card := domain.CardData{
		Issuer:         "VISA",
		Number:         "4111111111111111",
		Name:           "ANA SILVA",
		ExpirationDate: "12/30",
		CVV:            "123",
	}

	reserved := domain.Ticket{ID: 50, EnrollmentID: enrollmentID, TicketTypeID: hotelType.ID, Status: domain.TicketStatusReserved}

	t.Run("marks ticket paid and stores last digits", func(t *testing.T) {
		tickets := newFakeTicketRepo(allTypes, reserved)
		payments := &fakePaymentRepo{}
		svc := NewPaymentService(newFakeEnrollmentRepo(enrollment), tickets, payments)

		payment, err := svc.CreatePayment(context.Background(), userID, reserved.ID, card)
		require.NoError(t, err)

		assert.Equal(t, hotelType.Price, payment.Value)
		assert.Equal(t, "VISA", payment.CardIssuer)
		assert.Equal(t, "1111", payment.CardLastDigits)
		assert.Equal(t, domain.TicketStatusPaid, tickets.tickets[reserved.ID].Status)
		assert.Equal(t, 1, payments.txCalls)
	})

	t.Run("other user's ticket is unauthorized", func(t *testing.T) {
		tickets := newFakeTicketRepo(allTypes, reserved)
		payments := &fakePaymentRepo{}
		svc := NewPaymentService(newFakeEnrollmentRepo(enrollment, enrollment2), tickets, payments)

		_, err := svc.CreatePayment(context.Background(), otherUserID, reserved.ID, card)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
		assert.Empty(t, payments.payments)
		assert.Equal(t, domain.TicketStatusReserved, tickets.tickets[reserved.ID].Status)
	})

	t.Run("unknown ticket is not found", func(t *testing.T) {
		svc := NewPaymentService(newFakeEnrollmentRepo(enrollment), newFakeTicketRepo(allTypes), &fakePaymentRepo{})

		_, err := svc.CreatePayment(context.Background(), userID, 999, card)
		assert.ErrorIs(t, err, domain.ErrTicketNotFound)
	})

	t.Run("storage failure is returned", func(t *testing.T) {
		boom := errors.New("boom")
		svc := NewPaymentService(newFakeEnrollmentRepo(enrollment), newFakeTicketRepo(allTypes, reserved), &fakePaymentRepo{err: boom})

		_, err := svc.CreatePayment(context.Background(), userID, reserved.ID, card)
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "pay -> s.payments.Create")
	})
}

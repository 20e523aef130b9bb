package service

import (
	"context"
	"sort"
	"sync"

	"github.com/vietanh2810/drivent-api/internal/domain"
)

type fakeEnrollmentRepo struct {
	byUser map[uint]domain.Enrollment
	nextID uint
	err    error
}

func newFakeEnrollmentRepo(enrollments ...domain.Enrollment) *fakeEnrollmentRepo {
	repo := &fakeEnrollmentRepo{byUser: map[uint]domain.Enrollment{}, nextID: 100}
	for _, e := range enrollments {
		repo.byUser[e.UserID] = e
	}
	return repo
}

func (r *fakeEnrollmentRepo) FindByUserID(_ context.Context, userID uint) (*domain.Enrollment, error) {
	if r.err != nil {
		return nil, r.err
	}
	e, ok := r.byUser[userID]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (r *fakeEnrollmentRepo) Upsert(_ context.Context, enrollment domain.Enrollment) (domain.Enrollment, error) {
	if r.err != nil {
		return domain.Enrollment{}, r.err
	}
	if existing, ok := r.byUser[enrollment.UserID]; ok {
		enrollment.ID = existing.ID
	} else {
		r.nextID++
		enrollment.ID = r.nextID
	}
	r.byUser[enrollment.UserID] = enrollment
	return enrollment, nil
}

type fakeTicketRepo struct {
	types   map[uint]domain.TicketType
	tickets map[uint]domain.Ticket
	nextID  uint
}

func newFakeTicketRepo(types []domain.TicketType, tickets ...domain.Ticket) *fakeTicketRepo {
	repo := &fakeTicketRepo{
		types:   map[uint]domain.TicketType{},
		tickets: map[uint]domain.Ticket{},
		nextID:  100,
	}
	for _, tt := range types {
		repo.types[tt.ID] = tt
	}
	for _, t := range tickets {
		repo.tickets[t.ID] = t
	}
	return repo
}

func (r *fakeTicketRepo) withType(t domain.Ticket) domain.Ticket {
	if tt, ok := r.types[t.TicketTypeID]; ok {
		t.TicketType = &tt
	}
	return t
}

func (r *fakeTicketRepo) ListTypes(context.Context) ([]domain.TicketType, error) {
	types := make([]domain.TicketType, 0, len(r.types))
	for _, tt := range r.types {
		types = append(types, tt)
	}
	sort.Slice(types, func(i, j int) bool { return types[i].ID < types[j].ID })
	return types, nil
}

func (r *fakeTicketRepo) FindTypeByID(_ context.Context, id uint) (*domain.TicketType, error) {
	tt, ok := r.types[id]
	if !ok {
		return nil, nil
	}
	return &tt, nil
}

func (r *fakeTicketRepo) FindByID(_ context.Context, id uint) (*domain.Ticket, error) {
	t, ok := r.tickets[id]
	if !ok {
		return nil, nil
	}
	t = r.withType(t)
	return &t, nil
}

func (r *fakeTicketRepo) FindByEnrollmentID(_ context.Context, enrollmentID uint) (*domain.Ticket, error) {
	for _, t := range r.tickets {
		if t.EnrollmentID == enrollmentID {
			t = r.withType(t)
			return &t, nil
		}
	}
	return nil, nil
}

func (r *fakeTicketRepo) Create(_ context.Context, ticket domain.Ticket) (domain.Ticket, error) {
	for _, t := range r.tickets {
		if t.EnrollmentID == ticket.EnrollmentID {
			return domain.Ticket{}, domain.ErrTicketAlreadyExists
		}
	}
	r.nextID++
	ticket.ID = r.nextID
	r.tickets[ticket.ID] = ticket
	return r.withType(ticket), nil
}

func (r *fakeTicketRepo) UpdateStatus(_ context.Context, id uint, status domain.TicketStatus) error {
	t := r.tickets[id]
	t.Status = status
	r.tickets[id] = t
	return nil
}

type fakeHotelRepo struct {
	hotels []domain.Hotel
}

func (r *fakeHotelRepo) FindAll(context.Context) ([]domain.Hotel, error) {
	hotels := make([]domain.Hotel, len(r.hotels))
	for i, h := range r.hotels {
		h.Rooms = nil
		hotels[i] = h
	}
	return hotels, nil
}

func (r *fakeHotelRepo) FindWithRooms(_ context.Context, id uint) (*domain.Hotel, error) {
	for _, h := range r.hotels {
		if h.ID == id {
			return &h, nil
		}
	}
	return nil, nil
}

type fakeBookingRepo struct {
	mu       sync.Mutex
	rooms    map[uint]domain.Room
	bookings map[uint]domain.Booking
	nextID   uint
	txCalls  int
	created  int
}

func newFakeBookingRepo(rooms []domain.Room, bookings ...domain.Booking) *fakeBookingRepo {
	repo := &fakeBookingRepo{
		rooms:    map[uint]domain.Room{},
		bookings: map[uint]domain.Booking{},
		nextID:   100,
	}
	for _, room := range rooms {
		repo.rooms[room.ID] = room
	}
	for _, b := range bookings {
		repo.bookings[b.ID] = b
	}
	return repo
}

// WithTx serializes fn, standing in for the room row lock.
func (r *fakeBookingRepo) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.txCalls++
	return fn(ctx)
}

func (r *fakeBookingRepo) FindByUserID(_ context.Context, userID uint) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.UserID == userID {
			if room, ok := r.rooms[b.RoomID]; ok {
				b.Room = &room
			}
			return &b, nil
		}
	}
	return nil, nil
}

func (r *fakeBookingRepo) LockRoom(_ context.Context, id uint) (*domain.Room, error) {
	room, ok := r.rooms[id]
	if !ok {
		return nil, nil
	}
	return &room, nil
}

func (r *fakeBookingRepo) CountByRoomID(_ context.Context, roomID uint) (int, error) {
	count := 0
	for _, b := range r.bookings {
		if b.RoomID == roomID {
			count++
		}
	}
	return count, nil
}

func (r *fakeBookingRepo) Create(_ context.Context, userID, roomID uint) (domain.Booking, error) {
	for _, b := range r.bookings {
		if b.UserID == userID {
			return domain.Booking{}, domain.ErrAlreadyBooked
		}
	}
	r.nextID++
	b := domain.Booking{ID: r.nextID, UserID: userID, RoomID: roomID}
	r.bookings[b.ID] = b
	r.created++
	return b, nil
}

func (r *fakeBookingRepo) UpdateRoom(_ context.Context, bookingID, userID, roomID uint) (*domain.Booking, error) {
	b, ok := r.bookings[bookingID]
	if !ok || b.UserID != userID {
		return nil, nil
	}
	b.RoomID = roomID
	r.bookings[bookingID] = b
	return &b, nil
}

type fakePaymentRepo struct {
	payments []domain.Payment
	txCalls  int
	err      error
}

func (r *fakePaymentRepo) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	r.txCalls++
	return fn(ctx)
}

func (r *fakePaymentRepo) FindByTicketID(_ context.Context, ticketID uint) (*domain.Payment, error) {
	for _, p := range r.payments {
		if p.TicketID == ticketID {
			return &p, nil
		}
	}
	return nil, nil
}

func (r *fakePaymentRepo) Create(_ context.Context, payment domain.Payment) (domain.Payment, error) {
	if r.err != nil {
		return domain.Payment{}, r.err
	}
	payment.ID = uint(len(r.payments) + 1)
	r.payments = append(r.payments, payment)
	return payment, nil
}

type fakeUserRepo struct {
	users    map[string]domain.User
	sessions map[string]domain.Session
	nextID   uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:    map[string]domain.User{},
		sessions: map[string]domain.Session{},
	}
}

func (r *fakeUserRepo) Create(_ context.Context, user domain.User) (domain.User, error) {
	if _, ok := r.users[user.Email]; ok {
		return domain.User{}, domain.ErrUserEmailExists
	}
	r.nextID++
	user.ID = r.nextID
	r.users[user.Email] = user
	return user, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *fakeUserRepo) CreateSession(_ context.Context, userID uint, token string) (domain.Session, error) {
	s := domain.Session{ID: uint(len(r.sessions) + 1), UserID: userID, Token: token}
	r.sessions[token] = s
	return s, nil
}

func (r *fakeUserRepo) FindSessionByToken(_ context.Context, token string) (*domain.Session, error) {
	s, ok := r.sessions[token]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

// Fixture ids shared across service tests.
const (
	userID            uint = 1
	otherUserID       uint = 2
	enrollmentID      uint = 10
	otherEnrollmentID uint = 20
)

var (
	hotelType   = domain.TicketType{ID: 1, Name: "Presencial + Hotel", Price: 600, IncludesHotel: true}
	plainType   = domain.TicketType{ID: 2, Name: "Presencial", Price: 250}
	remoteType  = domain.TicketType{ID: 3, Name: "Online", Price: 100, IsRemote: true}
	allTypes    = []domain.TicketType{hotelType, plainType, remoteType}
	enrollment  = domain.Enrollment{ID: enrollmentID, UserID: userID, Name: "Ana"}
	enrollment2 = domain.Enrollment{ID: otherEnrollmentID, UserID: otherUserID, Name: "Bia"}
)

func paidTicket(typeID uint) domain.Ticket {
	return domain.Ticket{ID: 50, EnrollmentID: enrollmentID, TicketTypeID: typeID, Status: domain.TicketStatusPaid}
}

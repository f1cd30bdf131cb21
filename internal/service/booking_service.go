package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"github.com/Semicolon3407/movie-booking/internal/model"
	"github.com/Semicolon3407/movie-booking/internal/repository"
)

// One loyalty point accrues per 100 currency units spent, floor
// division.  Prices are stored in cents.
const loyaltyDivisorCents = 100 * 100

// BookingStore owns booking persistence and is the only component
// that flips seat status.  Reserve must be atomic: the conditional
// seat flip and the booking insert either both commit or neither
// does, and a lost race surfaces as repository.ErrSeatConflict.
type BookingStore interface {
	SeatsByShowtime(ctx context.Context, showtimeID uint64) ([]model.Seat, error)
	Reserve(ctx context.Context, b *model.Booking) error
	GetByID(ctx context.Context, id uint64) (*model.Booking, error)
	MarkCancelled(ctx context.Context, id uint64) error
	ReleaseSeats(ctx context.Context, showtimeID uint64, seatNumbers []string) (int64, error)
}

// MenuStore snapshots concession prices into bookings.
type MenuStore interface {
	PricesByIDs(ctx context.Context, ids []uint64) (map[uint64]uint32, error)
}

// LoyaltyStore accrues points after payment confirmation.
type LoyaltyStore interface {
	AddLoyaltyPoints(ctx context.Context, userID uint64, points uint32) error
}

// Notifier receives the booking side effects (admin notification,
// event publication).  Implementations must be best-effort: a failed
// side effect is logged by the coordinator and never propagates.
type Notifier interface {
	BookingConfirmed(ctx context.Context, b *model.Booking, movieTitle string)
}

// MenuOrder is one requested concession line.
type MenuOrder struct {
	MenuID   uint64 `json:"menu_id"`
	Quantity uint32 `json:"quantity"`
}

// ReserveRequest carries everything Reserve needs.  Seats are seat
// numbers from the showtime's grid; duplicates are collapsed so each
// seat is claimed exactly once.
type ReserveRequest struct {
	UserID        uint64
	RoomID        uint64
	ShowtimeID    uint64
	Seats         []string
	MenuItems     []MenuOrder
	PaymentMethod model.PaymentMethod
}

// BookingService is the booking engine.  A per-showtime lock is held
// across the availability check and the write so two concurrent
// reservations of the same seat can never both observe it available.
type BookingService struct {
	movies        MovieStore
	showtimes     ShowtimeStore
	bookings      BookingStore
	menu          MenuStore
	loyalty       LoyaltyStore
	notifier      Notifier
	showtimeLocks *keyedMutex
}

// NewBookingService wires a BookingService.  notifier and loyalty may
// be nil; both are best-effort side channels.
func NewBookingService(movies MovieStore, showtimes ShowtimeStore, bookings BookingStore, menu MenuStore, loyalty LoyaltyStore, notifier Notifier) *BookingService {
	return &BookingService{
		movies:        movies,
		showtimes:     showtimes,
		bookings:      bookings,
		menu:          menu,
		loyalty:       loyalty,
		notifier:      notifier,
		showtimeLocks: newKeyedMutex(),
	}
}

// Reserve books the requested seats all-or-nothing and persists a
// CONFIRMED booking.  Any requested seat that is already booked (or
// unknown to the grid) fails the whole request with
// *SeatsUnavailableError listing the offenders.  On success the
// side-effects coordinator fires and, because card/cash bookings are
// paid on the spot, loyalty points accrue immediately.
func (s *BookingService) Reserve(ctx context.Context, req ReserveRequest) (*model.Booking, error) {
	booking, movie, err := s.reserve(ctx, req, nil, nil)
	if err != nil {
		return nil, err
	}
	s.fireSideEffects(ctx, booking, movie.Title)
	s.accrueLoyalty(ctx, booking)
	return booking, nil
}

// ConfirmAfterPayment is the entry point for gateway redirect flows:
// the same reserve semantics with the gateway reference attached and
// the payment method forced to ESEWA.  Loyalty accrues here because
// payment is confirmed by the time the gateway calls back.
func (s *BookingService) ConfirmAfterPayment(ctx context.Context, req ReserveRequest, gatewayRef, esewaToken string) (*model.Booking, error) {
	req.PaymentMethod = model.PayEsewa
	if gatewayRef == "" {
		gatewayRef = uuid.NewString()
	}
	booking, movie, err := s.reserve(ctx, req, &gatewayRef, &esewaToken)
	if err != nil {
		return nil, err
	}
	s.fireSideEffects(ctx, booking, movie.Title)
	s.accrueLoyalty(ctx, booking)
	return booking, nil
}

// reserve runs the locked check-then-write sequence and returns the
// persisted booking plus the movie used for pricing.
func (s *BookingService) reserve(ctx context.Context, req ReserveRequest, transactionID, esewaToken *string) (*model.Booking, *model.Movie, error) {
	seatNumbers := dedupe(req.Seats)
	if len(seatNumbers) == 0 {
		return nil, nil, &SeatsUnavailableError{}
	}

	unlock := s.showtimeLocks.Lock(req.ShowtimeID)
	defer unlock()

	st, err := s.showtimes.GetByID(ctx, req.ShowtimeID)
	if err != nil {
		return nil, nil, err
	}
	if req.RoomID != 0 && st.RoomID != req.RoomID {
		return nil, nil, repository.ErrShowtimeNotFound
	}
	movie, err := s.movies.GetByID(ctx, st.MovieID)
	if err != nil {
		return nil, nil, err
	}

	seats, err := s.bookings.SeatsByShowtime(ctx, st.ID)
	if err != nil {
		return nil, nil, err
	}
	byNumber := make(map[string]model.SeatStatus, len(seats))
	for _, seat := range seats {
		byNumber[seat.SeatNumber] = seat.Status
	}
	var unavailable []string
	for _, sn := range seatNumbers {
		status, ok := byNumber[sn]
		if !ok || status != model.SeatAvailable {
			unavailable = append(unavailable, sn)
		}
	}
	if len(unavailable) > 0 {
		return nil, nil, &SeatsUnavailableError{Seats: unavailable}
	}

	snapshot, subtotal, err := s.menuSnapshot(ctx, req.MenuItems)
	if err != nil {
		return nil, nil, err
	}
	total := movie.TicketPriceCents*uint32(len(seatNumbers)) + subtotal

	booking := &model.Booking{
		UserID:          req.UserID,
		MovieID:         st.MovieID,
		RoomID:          st.RoomID,
		ShowtimeID:      st.ID,
		Date:            st.Date,
		Seats:           seatNumbers,
		MenuItems:       snapshot,
		TotalPriceCents: total,
		PaymentMethod:   req.PaymentMethod,
		Status:          model.BookingConfirmed,
		TransactionID:   transactionID,
		EsewaToken:      esewaToken,
	}
	if err := s.bookings.Reserve(ctx, booking); err != nil {
		if errors.Is(err, repository.ErrSeatConflict) {
			// Lost the storage-level race despite the lock (possible
			// with multiple server instances); report which seats went.
			return nil, nil, &SeatsUnavailableError{Seats: s.takenSeats(ctx, st.ID, seatNumbers)}
		}
		return nil, nil, err
	}
	return booking, movie, nil
}

// Cancel transitions a booking CONFIRMED -> CANCELLED and releases
// its seats.  Cancelling an already-cancelled booking is a no-op
// success.  Seat release is best-effort: a missing showtime or a seat
// already freed is logged and skipped; the booking's own status
// change is the authoritative outcome.
func (s *BookingService) Cancel(ctx context.Context, bookingID uint64) error {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if b.Cancelled() {
		return nil
	}
	if err := s.bookings.MarkCancelled(ctx, bookingID); err != nil {
		return err
	}
	released, err := s.bookings.ReleaseSeats(ctx, b.ShowtimeID, b.Seats)
	if err != nil {
		log.Printf("booking %d cancelled but seat release failed for showtime %d: %v", bookingID, b.ShowtimeID, err)
		return nil
	}
	if released != int64(len(b.Seats)) {
		log.Printf("booking %d cancelled: released %d of %d seats (rest already free or showtime gone)", bookingID, released, len(b.Seats))
	}
	return nil
}

func (s *BookingService) menuSnapshot(ctx context.Context, orders []MenuOrder) ([]model.BookingMenuItem, uint32, error) {
	if len(orders) == 0 {
		return nil, 0, nil
	}
	ids := make([]uint64, 0, len(orders))
	for _, o := range orders {
		if o.Quantity == 0 {
			continue
		}
		ids = append(ids, o.MenuID)
	}
	prices, err := s.menu.PricesByIDs(ctx, ids)
	if err != nil {
		return nil, 0, err
	}
	var snapshot []model.BookingMenuItem
	var subtotal uint32
	for _, o := range orders {
		if o.Quantity == 0 {
			continue
		}
		price := prices[o.MenuID]
		snapshot = append(snapshot, model.BookingMenuItem{
			MenuID:     o.MenuID,
			Quantity:   o.Quantity,
			PriceCents: price,
		})
		subtotal += price * o.Quantity
	}
	return snapshot, subtotal, nil
}

// takenSeats re-reads the grid after a lost race to report exactly
// which of the requested seats are gone.
func (s *BookingService) takenSeats(ctx context.Context, showtimeID uint64, requested []string) []string {
	seats, err := s.bookings.SeatsByShowtime(ctx, showtimeID)
	if err != nil {
		return requested
	}
	status := make(map[string]model.SeatStatus, len(seats))
	for _, seat := range seats {
		status[seat.SeatNumber] = seat.Status
	}
	var taken []string
	for _, sn := range requested {
		if st, ok := status[sn]; !ok || st != model.SeatAvailable {
			taken = append(taken, sn)
		}
	}
	if len(taken) == 0 {
		return requested
	}
	return taken
}

func (s *BookingService) fireSideEffects(ctx context.Context, b *model.Booking, movieTitle string) {
	if s.notifier == nil {
		return
	}
	s.notifier.BookingConfirmed(ctx, b, movieTitle)
}

func (s *BookingService) accrueLoyalty(ctx context.Context, b *model.Booking) {
	if s.loyalty == nil {
		return
	}
	points := b.TotalPriceCents / loyaltyDivisorCents
	if points == 0 {
		return
	}
	if err := s.loyalty.AddLoyaltyPoints(ctx, b.UserID, points); err != nil {
		log.Printf("loyalty accrual failed for booking %d user %d: %v", b.ID, b.UserID, err)
	}
}

// dedupe collapses duplicate seat numbers preserving first-seen order.
func dedupe(seats []string) []string {
	seen := make(map[string]struct{}, len(seats))
	out := make([]string, 0, len(seats))
	for _, sn := range seats {
		if sn == "" {
			continue
		}
		if _, ok := seen[sn]; ok {
			continue
		}
		seen[sn] = struct{}{}
		out = append(out, sn)
	}
	return out
}

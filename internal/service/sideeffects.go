package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Semicolon3407/movie-booking/internal/model"
	"github.com/Semicolon3407/movie-booking/internal/queue"
)

// NotificationStore writes admin-facing notification records.
type NotificationStore interface {
	Create(ctx context.Context, n *model.Notification) error
}

// EventPublisher pushes domain events to the message broker.
type EventPublisher interface {
	PublishBookingConfirmed(ctx context.Context, ev queue.BookingConfirmedEvent) error
}

// SideEffects coordinates what happens after a booking commits: an
// admin notification row and a booking.confirmed event.  Both are
// strictly best-effort — the booking is already durable, so failures
// here are logged and swallowed, never rolled back into the booking.
type SideEffects struct {
	notifications NotificationStore
	publisher     EventPublisher
}

// NewSideEffects builds the coordinator.  Either dependency may be
// nil, disabling that channel.
func NewSideEffects(notifications NotificationStore, publisher EventPublisher) *SideEffects {
	return &SideEffects{notifications: notifications, publisher: publisher}
}

// BookingConfirmed implements Notifier.
func (s *SideEffects) BookingConfirmed(ctx context.Context, b *model.Booking, movieTitle string) {
	if s.notifications != nil {
		n := &model.Notification{
			BookingID:   b.ID,
			Message:     fmt.Sprintf("New booking for %q: %d seat(s), total %d", movieTitle, len(b.Seats), b.TotalPriceCents),
			AmountCents: b.TotalPriceCents,
		}
		if err := s.notifications.Create(ctx, n); err != nil {
			log.Printf("notification for booking %d failed: %v", b.ID, err)
		}
	}
	if s.publisher != nil {
		ev := queue.BookingConfirmedEvent{
			BookingID:       b.ID,
			UserID:          b.UserID,
			MovieID:         b.MovieID,
			MovieTitle:      movieTitle,
			RoomID:          b.RoomID,
			ShowtimeID:      b.ShowtimeID,
			Date:            b.Date.Format("2006-01-02"),
			Seats:           b.Seats,
			TotalPriceCents: b.TotalPriceCents,
			PaymentMethod:   string(b.PaymentMethod),
			ConfirmedAt:     time.Now().UTC().Format(time.RFC3339),
		}
		if err := s.publisher.PublishBookingConfirmed(ctx, ev); err != nil {
			log.Printf("publish booking.confirmed for booking %d failed: %v", b.ID, err)
		}
	}
}

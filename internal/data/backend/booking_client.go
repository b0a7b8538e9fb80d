package backend

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"rentoverse-web/internal/data/entity"
)

type BookingClient struct {
	c *Client
}

func (b *BookingClient) listByRenter(ctx context.Context, path, renterEmail string) ([]*entity.Booking, error) {
	query := url.Values{}
	query.Set("renterEmail", renterEmail)
	var bookings []*entity.Booking
	if err := b.c.getJSON(ctx, path, query, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// AllByRenter returns every booking the renter has requested.
func (b *BookingClient) AllByRenter(ctx context.Context, renterEmail string) ([]*entity.Booking, error) {
	return b.listByRenter(ctx, "/api/bookings/all_by_renter", renterEmail)
}

// Awaiting returns bookings in AWAITING_PAYMENT, the ones with a live
// payment-deadline countdown.
func (b *BookingClient) Awaiting(ctx context.Context, renterEmail string) ([]*entity.Booking, error) {
	return b.listByRenter(ctx, "/api/bookings/awaiting", renterEmail)
}

// Visit returns bookings whose visit window is open (PAID_CONFIRMED).
func (b *BookingClient) Visit(ctx context.Context, renterEmail string) ([]*entity.Booking, error) {
	return b.listByRenter(ctx, "/api/bookings/visit", renterEmail)
}

func (b *BookingClient) ByID(ctx context.Context, id int64) (*entity.Booking, error) {
	query := url.Values{}
	query.Set("id", strconv.FormatInt(id, 10))
	var booking entity.Booking
	if err := b.c.getJSON(ctx, "/api/bookings/by-id", query, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// Request asks for a room on behalf of the renter.
func (b *BookingClient) Request(ctx context.Context, roomID int64, renterEmail string) error {
	_, err := b.c.postJSON(ctx, "/api/bookings/request", nil, map[string]string{
		"roomId":      strconv.FormatInt(roomID, 10),
		"renterEmail": renterEmail,
	})
	return err
}

// Cancel withdraws a PENDING_REQUEST booking.
func (b *BookingClient) Cancel(ctx context.Context, id int64) error {
	_, err := b.c.delete(ctx, fmt.Sprintf("/api/bookings/cancel/%d", id))
	return err
}

// RequestList returns the bookings on a provider's rooms.
func (b *BookingClient) RequestList(ctx context.Context, providerEmail string) ([]*entity.Booking, error) {
	query := url.Values{}
	query.Set("email", providerEmail)
	var bookings []*entity.Booking
	if err := b.c.getJSON(ctx, "/api/bookings/request_list", query, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// Respond records a provider's APPROVE or DECLINE on a pending request.
func (b *BookingClient) Respond(ctx context.Context, bookingID int64, action string) error {
	query := url.Values{}
	query.Set("bookingId", strconv.FormatInt(bookingID, 10))
	query.Set("action", action)
	_, err := b.c.postJSON(ctx, "/api/bookings/respond", query, nil)
	return err
}

// Decision submits the renter's post-visit choice. A single
// idempotent-intent request; never retried, and the authoritative state is
// re-fetched afterwards instead of trusting the local guess.
func (b *BookingClient) Decision(ctx context.Context, id int64, action, note string) error {
	query := url.Values{}
	query.Set("action", action)
	if note != "" {
		query.Set("note", note)
	}
	_, err := b.c.postJSON(ctx, fmt.Sprintf("/api/bookings/%d/decision", id), query, nil)
	return err
}

// PayEscrow submits the 25% deposit record, form-encoded as the backend
// expects.
func (b *BookingClient) PayEscrow(ctx context.Context, id int64, form url.Values) error {
	_, err := b.c.postForm(ctx, fmt.Sprintf("/api/bookings/%d/pay-escrow", id), form)
	return err
}

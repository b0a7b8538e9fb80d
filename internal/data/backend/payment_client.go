package backend

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"rentoverse-web/internal/data/entity"
)

type PaymentClient struct {
	c *Client
}

// PaymentFilter narrows the admin payments listing. Zero values mean "any".
type PaymentFilter struct {
	Status      string
	BookingID   int64
	RenterEmail string
}

func (p *PaymentClient) List(ctx context.Context, filter PaymentFilter) ([]*entity.Payment, error) {
	query := url.Values{}
	if filter.Status != "" {
		query.Set("status", filter.Status)
	}
	if filter.BookingID != 0 {
		query.Set("bookingId", strconv.FormatInt(filter.BookingID, 10))
	}
	if filter.RenterEmail != "" {
		query.Set("renterEmail", filter.RenterEmail)
	}
	var payments []*entity.Payment
	if err := p.c.getJSON(ctx, "/api/payments", query, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// PendingForBooking reports whether the booking already has a PENDING
// escrow payment waiting for admin confirmation.
func (p *PaymentClient) PendingForBooking(ctx context.Context, bookingID int64) (*entity.Payment, error) {
	payments, err := p.List(ctx, PaymentFilter{
		Status:    string(entity.PaymentStatusPending),
		BookingID: bookingID,
	})
	if err != nil {
		return nil, err
	}
	if len(payments) == 0 {
		return nil, nil
	}
	return payments[0], nil
}

// Confirm marks a PENDING payment as received (admin action).
func (p *PaymentClient) Confirm(ctx context.Context, paymentID int64) error {
	_, err := p.c.postJSON(ctx, fmt.Sprintf("/api/payments/%d/confirm", paymentID), nil, nil)
	return err
}

// RefundAndCancel refunds the deposit and cancels the booking.
func (p *PaymentClient) RefundAndCancel(ctx context.Context, paymentID int64) error {
	_, err := p.c.postJSON(ctx, fmt.Sprintf("/api/payments/%d/refund-and-cancel", paymentID), nil, nil)
	return err
}

// CompleteAndRelease completes the booking and releases escrow to the
// provider.
func (p *PaymentClient) CompleteAndRelease(ctx context.Context, paymentID int64) error {
	_, err := p.c.postJSON(ctx, fmt.Sprintf("/api/payments/%d/complete-and-release", paymentID), nil, nil)
	return err
}

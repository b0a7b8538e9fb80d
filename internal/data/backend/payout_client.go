package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"rentoverse-web/internal/data/entity"
)

type PayoutClient struct {
	c *Client
}

// PayoutRequest is a provider's ask to receive escrowed funds.
type PayoutRequest struct {
	BookingID int64
	Method    string
	Account   string
	RoomCode  string
}

func (p *PayoutClient) Request(ctx context.Context, req PayoutRequest) (*entity.Payout, error) {
	data, err := p.c.postJSON(ctx, "/api/provider-payouts/request", nil, map[string]string{
		"bookingId": strconv.FormatInt(req.BookingID, 10),
		"method":    req.Method,
		"account":   req.Account,
		"roomCode":  req.RoomCode,
	})
	if err != nil {
		return nil, err
	}
	var payout entity.Payout
	if err := json.Unmarshal(data, &payout); err != nil {
		return nil, fmt.Errorf("decode payout response: %w", err)
	}
	return &payout, nil
}

// ByBooking returns the payout for a booking, or nil when none was
// requested yet (the backend answers 404 in that case).
func (p *PayoutClient) ByBooking(ctx context.Context, bookingID int64) (*entity.Payout, error) {
	var payout entity.Payout
	err := p.c.getJSON(ctx, fmt.Sprintf("/api/provider-payouts/by-booking/%d", bookingID), nil, &payout)
	if err != nil {
		if apiErr, ok := IsAPIError(err); ok && apiErr.StatusCode == 404 {
			return nil, nil
		}
		return nil, err
	}
	return &payout, nil
}

// MarkPaid settles a payout (admin action).
func (p *PayoutClient) MarkPaid(ctx context.Context, payoutID int64) error {
	_, err := p.c.postJSON(ctx, fmt.Sprintf("/api/provider-payouts/%d/mark-paid", payoutID), nil, nil)
	return err
}

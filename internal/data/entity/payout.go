package entity

import "strings"

type PayoutStatus string

const (
	PayoutStatusRequested PayoutStatus = "REQUESTED"
	PayoutStatusPaid      PayoutStatus = "PAID"
	PayoutStatusRejected  PayoutStatus = "REJECTED"
)

func NormalizePayoutStatus(raw string) PayoutStatus {
	return PayoutStatus(strings.ToUpper(strings.TrimSpace(raw)))
}

// Payout is a provider's request to receive escrowed funds after a booking
// completes.
type Payout struct {
	ID            int64    `json:"id"`
	BookingID     int64    `json:"bookingId"`
	ProviderEmail string   `json:"providerEmail"`
	RoomCode      string   `json:"roomCode"`
	Method        string   `json:"method"`
	Account       string   `json:"account"`
	Status        string   `json:"status"`
	CreatedAt     FlexTime `json:"createdAt"`
	PaidAt        FlexTime `json:"paidAt"`
	UpdatedAt     FlexTime `json:"updatedAt"`
}

func (p *Payout) PayoutStatus() PayoutStatus {
	return NormalizePayoutStatus(p.Status)
}

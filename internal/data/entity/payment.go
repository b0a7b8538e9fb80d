package entity

import (
	"strconv"
	"strings"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusConfirmed PaymentStatus = "CONFIRMED"
	PaymentStatusRefunded  PaymentStatus = "REFUNDED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
)

func NormalizePaymentStatus(raw string) PaymentStatus {
	return PaymentStatus(strings.ToUpper(strings.TrimSpace(raw)))
}

// Payment is the flat admin view of an escrow payment. The backend
// denormalizes booking fields into it so the payments table renders without
// extra round trips.
type Payment struct {
	ID                   int64    `json:"id"`
	BookingID            int64    `json:"bookingId"`
	BookingStatus        string   `json:"bookingStatus"`
	RenterEmail          string   `json:"renterEmail"`
	RoomCode             string   `json:"roomCode"`
	RoomID               int64    `json:"roomId"`
	Amount               *float64 `json:"amount"`
	Method               string   `json:"method"`
	Reference            string   `json:"reference"`
	PayerName            string   `json:"payerName"`
	PayerPhone           string   `json:"payerPhone"`
	TxnID                string   `json:"txnId"`
	Note                 string   `json:"note"`
	Status               string   `json:"status"`
	CreatedAt            FlexTime `json:"createdAt"`
	ConfirmedAt          FlexTime `json:"confirmedAt"`
	UpdatedAt            FlexTime `json:"updatedAt"`
	PaymentDeadline      FlexTime `json:"paymentDeadline"`
	ViewingDeadline      FlexTime `json:"viewingDeadline"`
	DecisionStatus       string   `json:"decisionStatus"`
	DecisionNote         string   `json:"decisionNote"`
	ProviderPayoutStatus string   `json:"providerPayoutStatus"`
}

func (p *Payment) PaymentStatus() PaymentStatus {
	return NormalizePaymentStatus(p.Status)
}

func (p *Payment) Decision() DecisionStatus {
	return NormalizeDecision(p.DecisionStatus)
}

// ResolveNote prefers the renter's decision note over the payer note.
func (p *Payment) ResolveNote() string {
	if n := strings.TrimSpace(p.DecisionNote); n != "" {
		return n
	}
	return strings.TrimSpace(p.Note)
}

// ResolveRoomCode falls back through roomCode, roomId and the ROOM: token
// embedded in the free-form reference.
func (p *Payment) ResolveRoomCode() string {
	if c := strings.TrimSpace(p.RoomCode); c != "" {
		return c
	}
	if p.RoomID != 0 {
		return strconv.FormatInt(p.RoomID, 10)
	}
	if i := strings.Index(p.Reference, "ROOM:"); i >= 0 {
		rest := p.Reference[i+len("ROOM:"):]
		if j := strings.IndexAny(rest, "| "); j >= 0 {
			rest = rest[:j]
		}
		if rest != "" {
			return rest
		}
	}
	return "-"
}

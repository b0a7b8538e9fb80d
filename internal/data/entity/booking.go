package entity

import "strings"

type BookingStatus string

const (
	// request phase
	BookingStatusPendingRequest BookingStatus = "PENDING_REQUEST"
	BookingStatusDeclined       BookingStatus = "DECLINED"

	// escrow & visit phase
	BookingStatusAwaitingPayment BookingStatus = "AWAITING_PAYMENT"
	BookingStatusConfirmed       BookingStatus = "CONFIRMED" // legacy alias of PAID_CONFIRMED
	BookingStatusPaidConfirmed   BookingStatus = "PAID_CONFIRMED"

	// terminal positive
	BookingStatusCompleted BookingStatus = "COMPLETED"

	// terminal negative
	BookingStatusCancelledAfterViewing BookingStatus = "CANCELLED_AFTER_VIEWING"
	BookingStatusExpiredUnpaid         BookingStatus = "EXPIRED_UNPAID"
	BookingStatusExpiredNoVisit        BookingStatus = "EXPIRED_NO_VISIT"
)

// NormalizeBookingStatus uppercases a raw status and falls back to
// PENDING_REQUEST when the field is absent.
func NormalizeBookingStatus(raw string) BookingStatus {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return BookingStatusPendingRequest
	}
	return BookingStatus(s)
}

// IsTerminal reports whether the booking can no longer move forward. No
// actions are ever offered for terminal bookings.
func (s BookingStatus) IsTerminal() bool {
	switch s {
	case BookingStatusCompleted,
		BookingStatusCancelledAfterViewing,
		BookingStatusExpiredUnpaid,
		BookingStatusExpiredNoVisit:
		return true
	}
	return false
}

type DecisionStatus string

const (
	DecisionNone              DecisionStatus = "NONE"
	DecisionRefundRequested   DecisionStatus = "REFUND_REQUESTED"
	DecisionCompleteRequested DecisionStatus = "COMPLETE_REQUESTED"
)

func NormalizeDecision(raw string) DecisionStatus {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return DecisionNone
	}
	// both spellings seen in backend payloads
	if s == "COMPLETION_REQUESTED" {
		return DecisionCompleteRequested
	}
	return DecisionStatus(s)
}

type Booking struct {
	ID                 int64    `json:"id"`
	Room               *Room    `json:"room,omitempty"`
	Renter             *User    `json:"renter,omitempty"`
	Status             string   `json:"status"`
	CreatedAt          FlexTime `json:"createdAt"`
	ApprovedAt         FlexTime `json:"approvedAt"`
	PaymentDeadline    FlexTime `json:"paymentDeadline"`
	PaymentConfirmedAt FlexTime `json:"paymentConfirmedAt"`
	ViewingDeadline    FlexTime `json:"viewingDeadline"`
	DecisionStatus     string   `json:"decisionStatus"`
	DecisionNote       string   `json:"decisionNote"`
	DepositAmount      *float64 `json:"depositAmount,omitempty"`
}

func (b *Booking) BookingStatus() BookingStatus {
	return NormalizeBookingStatus(b.Status)
}

func (b *Booking) Decision() DecisionStatus {
	return NormalizeDecision(b.DecisionStatus)
}

// Deposit is the upfront escrow amount: 25% of the monthly rent, rounded to
// the nearest whole unit. The backend may send an explicit value; that wins.
func (b *Booking) Deposit() int {
	if b.DepositAmount != nil {
		return int(*b.DepositAmount + 0.5)
	}
	if b.Room == nil {
		return 0
	}
	return int(b.Room.Rent*0.25 + 0.5)
}

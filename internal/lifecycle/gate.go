package lifecycle

import "rentoverse-web/internal/data/entity"

// ActionSet says what a booking card may offer the renter after the visit
// window opens.
type ActionSet int

const (
	// ActionsNone: terminal booking, show a neutral placeholder only.
	ActionsNone ActionSet = iota
	// ActionsChip: a decision was already recorded; show a read-only chip.
	// Decisions are final from the client's perspective.
	ActionsChip
	// ActionsDecide: offer both decision actions (refund / complete).
	ActionsDecide
)

// Gate resolves the decision-state gate for a booking. Terminal status wins
// over everything; an existing decision permanently hides the actions.
func Gate(status entity.BookingStatus, decision entity.DecisionStatus) ActionSet {
	if status.IsTerminal() {
		return ActionsNone
	}
	if decision != entity.DecisionNone {
		return ActionsChip
	}
	return ActionsDecide
}

// PaymentAction names a transition button on the admin payments table.
type PaymentAction string

const (
	PaymentActionConfirm         PaymentAction = "confirm"
	PaymentActionRefundCancel    PaymentAction = "refund-and-cancel"
	PaymentActionCompleteRelease PaymentAction = "complete-and-release"
)

// PaymentActions lists the admin actions presentable for a payment row.
// Terminal bookings get none; PENDING payments can be confirmed; CONFIRMED
// payments can be refunded-and-cancelled or completed-and-released.
func PaymentActions(p *entity.Payment) []PaymentAction {
	if p == nil {
		return nil
	}
	if entity.NormalizeBookingStatus(p.BookingStatus).IsTerminal() {
		return nil
	}
	switch p.PaymentStatus() {
	case entity.PaymentStatusPending:
		return []PaymentAction{PaymentActionConfirm}
	case entity.PaymentStatusConfirmed:
		return []PaymentAction{PaymentActionRefundCancel, PaymentActionCompleteRelease}
	}
	return nil
}

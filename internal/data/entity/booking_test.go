package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeBookingStatus(t *testing.T) {
	assert.Equal(t, BookingStatusPaidConfirmed, NormalizeBookingStatus("paid_confirmed"))
	assert.Equal(t, BookingStatusPendingRequest, NormalizeBookingStatus(""))
	assert.Equal(t, BookingStatusPendingRequest, NormalizeBookingStatus("  "))
	assert.Equal(t, BookingStatus("SOMETHING_NEW"), NormalizeBookingStatus("something_new"))
}

func TestIsTerminal(t *testing.T) {
	terminal := []BookingStatus{
		BookingStatusCompleted,
		BookingStatusCancelledAfterViewing,
		BookingStatusExpiredUnpaid,
		BookingStatusExpiredNoVisit,
	}
	for _, s := range terminal {
		assert.True(t, s.IsTerminal(), string(s))
	}

	open := []BookingStatus{
		BookingStatusPendingRequest,
		BookingStatusAwaitingPayment,
		BookingStatusPaidConfirmed,
		BookingStatusConfirmed,
		BookingStatusDeclined,
	}
	for _, s := range open {
		assert.False(t, s.IsTerminal(), string(s))
	}
}

func TestNormalizeDecision(t *testing.T) {
	assert.Equal(t, DecisionNone, NormalizeDecision(""))
	assert.Equal(t, DecisionRefundRequested, NormalizeDecision("refund_requested"))
	assert.Equal(t, DecisionCompleteRequested, NormalizeDecision("COMPLETE_REQUESTED"))
	// the backend emits both spellings
	assert.Equal(t, DecisionCompleteRequested, NormalizeDecision("COMPLETION_REQUESTED"))
}

func TestDeposit(t *testing.T) {
	b := &Booking{Room: &Room{Rent: 10000}}
	assert.Equal(t, 2500, b.Deposit())

	// rounds to nearest whole unit
	b = &Booking{Room: &Room{Rent: 999}}
	assert.Equal(t, 250, b.Deposit())

	// explicit backend value wins over the derived one
	explicit := 3000.0
	b = &Booking{Room: &Room{Rent: 10000}, DepositAmount: &explicit}
	assert.Equal(t, 3000, b.Deposit())

	b = &Booking{}
	assert.Equal(t, 0, b.Deposit())
}

func TestRoomCode(t *testing.T) {
	assert.Equal(t, "RENTO:WXY", (&Room{ID: 5, PublicCode: "RENTO:WXY"}).Code())
	assert.Equal(t, "RENTO:105", (&Room{ID: 5}).Code())
	assert.Equal(t, "ID#-", (&Room{}).Code())
	var nilRoom *Room
	assert.Equal(t, "ID#-", nilRoom.Code())
}

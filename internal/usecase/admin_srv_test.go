package usecase

import (
	"context"
	"net/http"
	"testing"
	"time"

	"rentoverse-web/internal/data/backend"
	"rentoverse-web/internal/lifecycle"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newAdminService(t *testing.T, mux *http.ServeMux, now time.Time) AdminService {
	t.Helper()
	svc := NewAdminService(stubBackend(t, mux), zap.NewNop()).(*adminService)
	svc.now = func() time.Time { return now }
	return svc
}

func TestPaymentsOrdersAndDecorates(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	mux := http.NewServeMux()
	mux.HandleFunc("/api/payments", jsonHandler(`[
		{"id":1,"bookingId":10,"bookingStatus":"CANCELLED_AFTER_VIEWING","status":"REFUNDED","amount":2000},
		{"id":2,"bookingId":11,"bookingStatus":"AWAITING_PAYMENT","status":"PENDING","amount":2500,
		 "paymentDeadline":"2026-03-01T10:00:00Z","decisionStatus":"NONE"},
		{"id":3,"bookingId":12,"bookingStatus":"PAID_CONFIRMED","status":"CONFIRMED","amount":1500,
		 "viewingDeadline":"2026-03-05T10:00:00Z","decisionStatus":"REFUND_REQUESTED","decisionNote":"too noisy","providerPayoutStatus":"REQUESTED"}
	]`))

	svc := newAdminService(t, mux, now)
	page, err := svc.Payments(context.Background(), backend.PaymentFilter{}, false)
	assert.NoError(t, err)
	assert.Len(t, page.Rows, 3)

	// PENDING first, CONFIRMED second, REFUNDED last
	assert.Equal(t, int64(2), page.Rows[0].Payment.ID)
	assert.Equal(t, int64(3), page.Rows[1].Payment.ID)
	assert.Equal(t, int64(1), page.Rows[2].Payment.ID)

	// row 2 is past its payment deadline
	assert.True(t, page.Rows[0].Overdue)
	assert.Equal(t, []lifecycle.PaymentAction{lifecycle.PaymentActionConfirm}, page.Rows[0].Actions)

	// row 3 carries the decision chip, note and payout badge
	confirmed := page.Rows[1]
	assert.False(t, confirmed.Overdue)
	assert.Equal(t, "Refund requested", confirmed.Decision)
	assert.Equal(t, "too noisy", confirmed.NoteFull)
	assert.True(t, confirmed.ShowPayout)
	assert.Equal(t, lifecycle.BadgeInfo, confirmed.PayoutTok)
	assert.Equal(t, []lifecycle.PaymentAction{
		lifecycle.PaymentActionRefundCancel,
		lifecycle.PaymentActionCompleteRelease,
	}, confirmed.Actions)

	// terminal booking gets no actions
	assert.Nil(t, page.Rows[2].Actions)
}

func TestPaymentsOverdueOnly(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	mux := http.NewServeMux()
	mux.HandleFunc("/api/payments", jsonHandler(`[
		{"id":1,"bookingStatus":"AWAITING_PAYMENT","status":"PENDING","paymentDeadline":"2026-03-01T10:00:00Z"},
		{"id":2,"bookingStatus":"AWAITING_PAYMENT","status":"PENDING","paymentDeadline":"2026-03-01T14:00:00Z"}
	]`))

	svc := newAdminService(t, mux, now)
	page, err := svc.Payments(context.Background(), backend.PaymentFilter{}, true)
	assert.NoError(t, err)
	assert.Len(t, page.Rows, 1)
	assert.Equal(t, int64(1), page.Rows[0].Payment.ID)
}

func TestDashboardSplitsUsersByRole(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/admin/users", jsonHandler(`[
		{"id":1,"name":"Ana","email":"ana@example.com","role":"RENTER"},
		{"id":2,"name":"Pat","email":"pat@example.com","role":"PROVIDER"},
		{"id":3,"name":"Root","email":"root@example.com","role":"ADMIN"}
	]`))
	mux.HandleFunc("/api/admin/rooms", jsonHandler(`[]`))
	mux.HandleFunc("/api/admin/bookings", jsonHandler(`[
		{"id":5,"status":"AWAITING_PAYMENT","room":{"id":1,"title":"R","rent":4000}}
	]`))

	svc := newAdminService(t, mux, time.Now())
	dash, err := svc.Dashboard(context.Background())
	assert.NoError(t, err)

	assert.Len(t, dash.Renters, 1)
	assert.Len(t, dash.Providers, 1)
	assert.Len(t, dash.Bookings, 1)
	assert.True(t, dash.Bookings[0].ShowPayLink)
	assert.Equal(t, 1000, dash.Bookings[0].Deposit)
}

func TestPayoutForBooking(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/provider-payouts/by-booking/7", jsonHandler(
		`{"id":3,"bookingId":7,"providerEmail":"pat@example.com","method":"BKASH","account":"017","status":"REQUESTED"}`))
	mux.HandleFunc("/api/provider-payouts/by-booking/8", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})

	svc := newAdminService(t, mux, time.Now())

	modal, err := svc.PayoutForBooking(context.Background(), 7)
	assert.NoError(t, err)
	assert.NotNil(t, modal)
	assert.True(t, modal.CanMarkPaid)
	assert.Equal(t, lifecycle.BadgeInfo, modal.Badge)

	modal, err = svc.PayoutForBooking(context.Background(), 8)
	assert.NoError(t, err)
	assert.Nil(t, modal)
}

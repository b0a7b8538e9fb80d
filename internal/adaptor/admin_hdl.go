package adaptor

import (
	"context"
	"net/http"
	"strconv"

	"rentoverse-web/internal/data/backend"
	"rentoverse-web/internal/dto/view"
	"rentoverse-web/internal/lifecycle"
	"rentoverse-web/internal/usecase"
	"rentoverse-web/internal/web"
	"rentoverse-web/pkg/utils"

	"go.uber.org/zap"
)

type AdminHandler struct {
	service  usecase.AdminService
	renderer *web.Renderer
	log      *zap.Logger
}

func NewAdminHandler(service usecase.AdminService, renderer *web.Renderer, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		service:  service,
		renderer: renderer,
		log:      log.With(zap.String("handler", "admin")),
	}
}

// Dashboard handles GET /admin.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dash, err := h.service.Dashboard(r.Context())
	if err != nil {
		page := basePage(r, "Admin")
		page.Error = backend.UserMessage(err)
		h.renderer.Render(w, http.StatusBadGateway, "admin_dashboard", &view.AdminDashboard{Page: page})
		return
	}
	dash.Page = basePage(r, "Admin")
	h.renderer.Render(w, http.StatusOK, "admin_dashboard", dash)
}

// Payments handles GET /admin/payments with the filter bar in the query
// string. ?payoutBooking=N also opens the payout detail for that booking.
func (h *AdminHandler) Payments(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := backend.PaymentFilter{
		Status:      query.Get("status"),
		RenterEmail: query.Get("renterEmail"),
	}
	if id, ok := utils.ParseID(query.Get("bookingId")); ok {
		filter.BookingID = id
	}
	overdueOnly := query.Get("overdue") == "1"

	page, err := h.service.Payments(r.Context(), filter, overdueOnly)
	if err != nil {
		p := basePage(r, "Payments")
		p.Error = backend.UserMessage(err)
		h.renderer.Render(w, http.StatusBadGateway, "admin_payments", &view.PaymentsPage{Page: p})
		return
	}

	if bookingID, ok := utils.ParseID(query.Get("payoutBooking")); ok {
		modal, err := h.service.PayoutForBooking(r.Context(), bookingID)
		if err == nil {
			page.Payout = modal
		}
	}

	page.Page = basePage(r, "Payments")
	page.FilterState = view.FilterEcho{
		Status:      filter.Status,
		RenterEmail: filter.RenterEmail,
		OverdueOnly: overdueOnly,
	}
	if filter.BookingID != 0 {
		page.FilterState.BookingID = strconv.FormatInt(filter.BookingID, 10)
	}
	h.renderer.Render(w, http.StatusOK, "admin_payments", page)
}

// PaymentAction handles POST /admin/payments/action: confirm,
// refund-and-cancel or complete-and-release on one payment.
func (h *AdminHandler) PaymentAction(w http.ResponseWriter, r *http.Request) {
	paymentID, ok := utils.ParseID(r.PostFormValue("paymentId"))
	if !ok {
		http.Error(w, "invalid payment id", http.StatusBadRequest)
		return
	}

	var err error
	var msg string
	switch lifecycle.PaymentAction(r.PostFormValue("action")) {
	case lifecycle.PaymentActionConfirm:
		err = h.service.ConfirmPayment(r.Context(), paymentID)
		msg = "Payment confirmed. Visit window opened."
	case lifecycle.PaymentActionRefundCancel:
		err = h.service.RefundAndCancel(r.Context(), paymentID)
		msg = "Deposit refunded, booking cancelled."
	case lifecycle.PaymentActionCompleteRelease:
		err = h.service.CompleteAndRelease(r.Context(), paymentID)
		msg = "Booking completed, escrow released."
	default:
		http.Error(w, "unknown action", http.StatusBadRequest)
		return
	}

	if err != nil {
		h.paymentsWithError(w, r, err)
		return
	}
	redirectOK(w, r, "/admin/payments", msg)
}

// MarkPayoutPaid handles POST /admin/payouts/mark-paid.
func (h *AdminHandler) MarkPayoutPaid(w http.ResponseWriter, r *http.Request) {
	payoutID, ok := utils.ParseID(r.PostFormValue("payoutId"))
	if !ok {
		http.Error(w, "invalid payout id", http.StatusBadRequest)
		return
	}
	if err := h.service.MarkPayoutPaid(r.Context(), payoutID); err != nil {
		h.paymentsWithError(w, r, err)
		return
	}
	redirectOK(w, r, "/admin/payments", "Payout marked paid.")
}

// DeleteUser handles POST /admin/users/delete.
func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	h.deleteEntity(w, r, h.service.DeleteUser, "User deleted.")
}

// DeleteRoom handles POST /admin/rooms/delete.
func (h *AdminHandler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	h.deleteEntity(w, r, h.service.DeleteRoom, "Room deleted.")
}

// DeleteBooking handles POST /admin/bookings/delete.
func (h *AdminHandler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	h.deleteEntity(w, r, h.service.DeleteBooking, "Booking deleted.")
}

func (h *AdminHandler) deleteEntity(w http.ResponseWriter, r *http.Request, del func(ctx context.Context, id int64) error, msg string) {
	id, ok := utils.ParseID(r.PostFormValue("id"))
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	if err := del(r.Context(), id); err != nil {
		dash, loadErr := h.service.Dashboard(r.Context())
		if loadErr != nil {
			dash = &view.AdminDashboard{}
		}
		dash.Page = basePage(r, "Admin")
		dash.Page.Error = backend.UserMessage(err)
		h.renderer.Render(w, http.StatusBadRequest, "admin_dashboard", dash)
		return
	}
	redirectOK(w, r, "/admin", msg)
}

// paymentsWithError re-renders the payments table with the failure banner.
func (h *AdminHandler) paymentsWithError(w http.ResponseWriter, r *http.Request, actionErr error) {
	page, err := h.service.Payments(r.Context(), backend.PaymentFilter{}, false)
	if err != nil {
		page = &view.PaymentsPage{}
	}
	page.Page = basePage(r, "Payments")
	page.Page.Error = backend.UserMessage(actionErr)
	h.renderer.Render(w, http.StatusBadRequest, "admin_payments", page)
}

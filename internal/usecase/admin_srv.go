package usecase

import (
	"context"
	"fmt"
	"time"

	"rentoverse-web/internal/data/backend"
	"rentoverse-web/internal/data/entity"
	"rentoverse-web/internal/dto/view"
	"rentoverse-web/internal/lifecycle"

	"go.uber.org/zap"
)

type AdminService interface {
	Dashboard(ctx context.Context) (*view.AdminDashboard, error)
	Payments(ctx context.Context, filter backend.PaymentFilter, overdueOnly bool) (*view.PaymentsPage, error)
	PayoutForBooking(ctx context.Context, bookingID int64) (*view.PayoutModal, error)
	ConfirmPayment(ctx context.Context, paymentID int64) error
	RefundAndCancel(ctx context.Context, paymentID int64) error
	CompleteAndRelease(ctx context.Context, paymentID int64) error
	MarkPayoutPaid(ctx context.Context, payoutID int64) error
	DeleteUser(ctx context.Context, userID int64) error
	DeleteRoom(ctx context.Context, roomID int64) error
	DeleteBooking(ctx context.Context, bookingID int64) error
}

type adminService struct {
	be  *backend.Backend
	log *zap.Logger
	now func() time.Time
}

func NewAdminService(be *backend.Backend, log *zap.Logger) AdminService {
	return &adminService{
		be:  be,
		log: log.With(zap.String("service", "admin")),
		now: time.Now,
	}
}

// Dashboard loads every admin listing. All three are primary; the page is
// useless with any of them missing.
func (s *adminService) Dashboard(ctx context.Context) (*view.AdminDashboard, error) {
	users, err := s.be.Admin.Users(ctx)
	if err != nil {
		s.log.Error("Failed to load users", zap.Error(err))
		return nil, fmt.Errorf("load users: %w", err)
	}
	rooms, err := s.be.Admin.Rooms(ctx)
	if err != nil {
		s.log.Error("Failed to load rooms", zap.Error(err))
		return nil, fmt.Errorf("load rooms: %w", err)
	}
	bookings, err := s.be.Admin.Bookings(ctx)
	if err != nil {
		s.log.Error("Failed to load bookings", zap.Error(err))
		return nil, fmt.Errorf("load bookings: %w", err)
	}
	lifecycle.SortBookingsNewest(bookings)

	dash := &view.AdminDashboard{Rooms: roomCards(rooms)}
	for _, u := range users {
		switch u.UserRole() {
		case entity.RoleProvider:
			dash.Providers = append(dash.Providers, u)
		case entity.RoleAdmin:
			// admins are not listed
		default:
			dash.Renters = append(dash.Renters, u)
		}
	}
	for _, b := range bookings {
		status := b.BookingStatus()
		dash.Bookings = append(dash.Bookings, view.AdminBookingCard{
			Booking:     b,
			Badge:       lifecycle.BadgeClass(b.Status),
			StatusLabel: statusLabel(status),
			Code:        b.Room.Code(),
			RequestedOn: formatDate(b.CreatedAt),
			Deposit:     b.Deposit(),
			ShowPayLink: status == entity.BookingStatusAwaitingPayment,
		})
	}

	s.log.Info("Admin dashboard assembled",
		zap.Int("renters", len(dash.Renters)),
		zap.Int("providers", len(dash.Providers)),
		zap.Int("rooms", len(dash.Rooms)),
		zap.Int("bookings", len(dash.Bookings)),
	)
	return dash, nil
}

// Payments builds the admin payments table: filtered by the backend, then
// ordered actionable-first and newest-first, optionally narrowed to overdue
// rows.
func (s *adminService) Payments(ctx context.Context, filter backend.PaymentFilter, overdueOnly bool) (*view.PaymentsPage, error) {
	payments, err := s.be.Payment.List(ctx, filter)
	if err != nil {
		s.log.Error("Failed to load payments", zap.Error(err))
		return nil, fmt.Errorf("load payments: %w", err)
	}
	lifecycle.SortPayments(payments)

	now := s.now()
	page := &view.PaymentsPage{}
	for _, p := range payments {
		overdue := lifecycle.IsOverdue(p, now)
		if overdueOnly && !overdue {
			continue
		}
		row := view.PaymentRow{
			Payment:  p,
			Badge:    lifecycle.BadgeClass(p.Status),
			Overdue:  overdue,
			Window:   lifecycle.WindowText(p),
			Amount:   view.FormatTaka(p.Amount),
			RoomCode: p.ResolveRoomCode(),
			NoteFull: p.ResolveNote(),
			Actions:  lifecycle.PaymentActions(p),
		}
		row.Note = view.Truncate(row.NoteFull, 40)
		switch p.Decision() {
		case entity.DecisionRefundRequested:
			row.Decision, row.DecisionTok = "Refund requested", lifecycle.BadgeWarning
		case entity.DecisionCompleteRequested:
			row.Decision, row.DecisionTok = "Completion requested", lifecycle.BadgeInfo
		}
		if p.ProviderPayoutStatus != "" {
			row.ShowPayout = true
			row.PayoutTok = lifecycle.PayoutBadge(p.ProviderPayoutStatus)
		}
		page.Rows = append(page.Rows, row)
	}

	s.log.Info("Payments listed",
		zap.Int("rows", len(page.Rows)),
		zap.String("status", filter.Status),
		zap.Bool("overdue_only", overdueOnly),
	)
	return page, nil
}

// PayoutForBooking loads the payout detail opened from a payment row. Nil
// modal means no payout was requested yet.
func (s *adminService) PayoutForBooking(ctx context.Context, bookingID int64) (*view.PayoutModal, error) {
	payout, err := s.be.Payout.ByBooking(ctx, bookingID)
	if err != nil {
		s.log.Warn("Failed to load payout", zap.Int64("booking_id", bookingID), zap.Error(err))
		return nil, fmt.Errorf("load payout: %w", err)
	}
	if payout == nil {
		return nil, nil
	}
	return &view.PayoutModal{
		Payout:      payout,
		Badge:       lifecycle.PayoutBadge(payout.Status),
		RequestedOn: formatDateTime(payout.CreatedAt),
		CanMarkPaid: payout.PayoutStatus() == entity.PayoutStatusRequested,
	}, nil
}

func (s *adminService) ConfirmPayment(ctx context.Context, paymentID int64) error {
	if err := s.be.Payment.Confirm(ctx, paymentID); err != nil {
		s.log.Warn("Confirm rejected", zap.Int64("payment_id", paymentID), zap.Error(err))
		return fmt.Errorf("confirm payment: %w", err)
	}
	s.log.Info("Payment confirmed", zap.Int64("payment_id", paymentID))
	return nil
}

func (s *adminService) RefundAndCancel(ctx context.Context, paymentID int64) error {
	if err := s.be.Payment.RefundAndCancel(ctx, paymentID); err != nil {
		s.log.Warn("Refund rejected", zap.Int64("payment_id", paymentID), zap.Error(err))
		return fmt.Errorf("refund and cancel: %w", err)
	}
	s.log.Info("Payment refunded, booking cancelled", zap.Int64("payment_id", paymentID))
	return nil
}

func (s *adminService) CompleteAndRelease(ctx context.Context, paymentID int64) error {
	if err := s.be.Payment.CompleteAndRelease(ctx, paymentID); err != nil {
		s.log.Warn("Complete rejected", zap.Int64("payment_id", paymentID), zap.Error(err))
		return fmt.Errorf("complete and release: %w", err)
	}
	s.log.Info("Booking completed, escrow released", zap.Int64("payment_id", paymentID))
	return nil
}

func (s *adminService) MarkPayoutPaid(ctx context.Context, payoutID int64) error {
	if err := s.be.Payout.MarkPaid(ctx, payoutID); err != nil {
		s.log.Warn("Mark-paid rejected", zap.Int64("payout_id", payoutID), zap.Error(err))
		return fmt.Errorf("mark payout paid: %w", err)
	}
	s.log.Info("Payout marked paid", zap.Int64("payout_id", payoutID))
	return nil
}

func (s *adminService) DeleteUser(ctx context.Context, userID int64) error {
	if err := s.be.Admin.DeleteUser(ctx, userID); err != nil {
		s.log.Warn("User delete rejected", zap.Int64("user_id", userID), zap.Error(err))
		return fmt.Errorf("delete user: %w", err)
	}
	s.log.Info("User deleted", zap.Int64("user_id", userID))
	return nil
}

func (s *adminService) DeleteRoom(ctx context.Context, roomID int64) error {
	if err := s.be.Admin.DeleteRoom(ctx, roomID); err != nil {
		s.log.Warn("Room delete rejected", zap.Int64("room_id", roomID), zap.Error(err))
		return fmt.Errorf("delete room: %w", err)
	}
	s.log.Info("Room deleted", zap.Int64("room_id", roomID))
	return nil
}

func (s *adminService) DeleteBooking(ctx context.Context, bookingID int64) error {
	if err := s.be.Admin.DeleteBooking(ctx, bookingID); err != nil {
		s.log.Warn("Booking delete rejected", zap.Int64("booking_id", bookingID), zap.Error(err))
		return fmt.Errorf("delete booking: %w", err)
	}
	s.log.Info("Booking deleted", zap.Int64("booking_id", bookingID))
	return nil
}

package usecase

import (
	"context"
	"fmt"
	"time"

	"rentoverse-web/internal/data/backend"
	"rentoverse-web/internal/data/entity"
	"rentoverse-web/internal/data/session"
	"rentoverse-web/internal/dto/request"
	"rentoverse-web/internal/dto/view"
	"rentoverse-web/internal/lifecycle"

	"go.uber.org/zap"
)

type RenterService interface {
	Dashboard(ctx context.Context, sess session.Session, search request.SearchForm) (*view.RenterDashboard, error)
	RequestRoom(ctx context.Context, renterEmail string, roomID int64) error
	CancelRequest(ctx context.Context, bookingID int64) error
	SubmitDecision(ctx context.Context, req *request.DecisionForm) error
}

type renterService struct {
	be  *backend.Backend
	log *zap.Logger
	now func() time.Time
}

func NewRenterService(be *backend.Backend, log *zap.Logger) RenterService {
	return &renterService{
		be:  be,
		log: log.With(zap.String("service", "renter")),
		now: time.Now,
	}
}

// Dashboard assembles the renter home page. The room list is the primary
// section and fails the page; the booking and updates sections degrade to
// empty lists with a warning so one slow endpoint does not blank the page.
func (s *renterService) Dashboard(ctx context.Context, sess session.Session, search request.SearchForm) (*view.RenterDashboard, error) {
	rooms, err := s.searchRooms(ctx, search)
	if err != nil {
		s.log.Error("Failed to load rooms", zap.Error(err))
		return nil, fmt.Errorf("load rooms: %w", err)
	}

	dash := &view.RenterDashboard{
		Search: view.SearchEcho{
			Location: search.Location,
			Type:     search.Type,
			MaxRent:  formatRent(search.MaxRent),
		},
		Rooms: roomCards(rooms),
	}

	dash.Pending = s.loadRequests(ctx, sess.Email)
	dash.Awaiting = s.loadAwaiting(ctx, sess.Email)
	dash.Visit = s.loadVisit(ctx, sess.Email)
	dash.Updates = s.loadUpdates(ctx, sess.Email)

	s.log.Info("Renter dashboard assembled",
		zap.String("email", sess.Email),
		zap.Int("rooms", len(dash.Rooms)),
		zap.Int("requests", len(dash.Pending)),
		zap.Int("awaiting", len(dash.Awaiting)),
		zap.Int("visit", len(dash.Visit)),
	)
	return dash, nil
}

func (s *renterService) searchRooms(ctx context.Context, search request.SearchForm) ([]*entity.Room, error) {
	var (
		rooms []*entity.Room
		err   error
	)
	if search.Location == "" && search.Type == "" {
		rooms, err = s.be.Room.Available(ctx)
	} else {
		rooms, err = s.be.Room.Filter(ctx, search.Location, search.Type)
	}
	if err != nil {
		return nil, err
	}

	if search.MaxRent <= 0 {
		return rooms, nil
	}
	filtered := rooms[:0]
	for _, r := range rooms {
		if r.Rent <= search.MaxRent {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

func (s *renterService) loadRequests(ctx context.Context, email string) []view.BookingCard {
	bookings, err := s.be.Booking.AllByRenter(ctx, email)
	if err != nil {
		s.log.Warn("Failed to load booking requests", zap.String("email", email), zap.Error(err))
		return nil
	}
	lifecycle.SortBookingsNewest(bookings)

	cards := make([]view.BookingCard, 0, len(bookings))
	for _, b := range bookings {
		status := b.BookingStatus()
		cards = append(cards, view.BookingCard{
			Booking:     b,
			Badge:       lifecycle.BadgeClass(b.Status),
			StatusLabel: statusLabel(status),
			Code:        b.Room.Code(),
			RequestedOn: formatDate(b.CreatedAt),
			CanCancel:   status == entity.BookingStatusPendingRequest,
		})
	}
	return cards
}

func (s *renterService) loadAwaiting(ctx context.Context, email string) []view.AwaitingCard {
	bookings, err := s.be.Booking.Awaiting(ctx, email)
	if err != nil {
		s.log.Warn("Failed to load awaiting bookings", zap.String("email", email), zap.Error(err))
		return nil
	}

	cards := make([]view.AwaitingCard, 0, len(bookings))
	for _, b := range bookings {
		card := view.AwaitingCard{
			Booking: b,
			Code:    b.Room.Code(),
			Deposit: b.Deposit(),
			PayURL:  fmt.Sprintf("/pay?bookingId=%d", b.ID),
		}
		if !b.PaymentDeadline.IsZero() {
			card.CountdownID = fmt.Sprintf("pay-deadline-%d", b.ID)
			card.DeadlineMs = b.PaymentDeadline.UnixMilli()
		}

		// An already-submitted payment replaces the countdown with a
		// waiting chip.
		pending, err := s.be.Payment.PendingForBooking(ctx, b.ID)
		if err != nil {
			s.log.Warn("Failed to check pending payment",
				zap.Int64("booking_id", b.ID),
				zap.Error(err),
			)
		} else {
			card.Pending = pending
		}
		cards = append(cards, card)
	}
	return cards
}

func (s *renterService) loadVisit(ctx context.Context, email string) []view.VisitCard {
	bookings, err := s.be.Booking.Visit(ctx, email)
	if err != nil {
		s.log.Warn("Failed to load visit bookings", zap.String("email", email), zap.Error(err))
		return nil
	}

	cards := make([]view.VisitCard, 0, len(bookings))
	for _, b := range bookings {
		card := view.VisitCard{
			Booking: b,
			Code:    b.Room.Code(),
			Actions: lifecycle.Gate(b.BookingStatus(), b.Decision()),
		}
		switch b.Decision() {
		case entity.DecisionRefundRequested:
			card.ChipLabel, card.ChipToken = "Refund requested", lifecycle.BadgeWarning
		case entity.DecisionCompleteRequested:
			card.ChipLabel, card.ChipToken = "Completion requested", lifecycle.BadgeInfo
		}
		if !b.ViewingDeadline.IsZero() {
			card.CountdownID = fmt.Sprintf("visit-deadline-%d", b.ID)
			card.DeadlineMs = b.ViewingDeadline.UnixMilli()
		}
		cards = append(cards, card)
	}
	return cards
}

func (s *renterService) loadUpdates(ctx context.Context, email string) []view.UpdateItem {
	updates, err := s.be.Update.Renter(ctx, email)
	if err != nil {
		s.log.Warn("Failed to load updates", zap.String("email", email), zap.Error(err))
		return nil
	}

	now := s.now()
	items := make([]view.UpdateItem, 0, len(updates))
	for _, u := range updates {
		items = append(items, view.NewUpdateItem(u, now))
	}
	return items
}

func (s *renterService) RequestRoom(ctx context.Context, renterEmail string, roomID int64) error {
	if err := s.be.Booking.Request(ctx, roomID, renterEmail); err != nil {
		s.log.Warn("Room request rejected",
			zap.Int64("room_id", roomID),
			zap.String("email", renterEmail),
			zap.Error(err),
		)
		return fmt.Errorf("request room: %w", err)
	}

	s.log.Info("Room requested",
		zap.Int64("room_id", roomID),
		zap.String("email", renterEmail),
	)
	return nil
}

func (s *renterService) CancelRequest(ctx context.Context, bookingID int64) error {
	if err := s.be.Booking.Cancel(ctx, bookingID); err != nil {
		s.log.Warn("Cancel rejected", zap.Int64("booking_id", bookingID), zap.Error(err))
		return fmt.Errorf("cancel booking: %w", err)
	}

	s.log.Info("Booking request cancelled", zap.Int64("booking_id", bookingID))
	return nil
}

// SubmitDecision sends the post-visit choice once and never retries; the
// dashboard re-fetch afterwards shows whatever state the backend settled on.
func (s *renterService) SubmitDecision(ctx context.Context, req *request.DecisionForm) error {
	note := ""
	if req.Action == "REFUND" {
		note = req.Note
	}
	if err := s.be.Booking.Decision(ctx, req.BookingID, req.Action, note); err != nil {
		s.log.Warn("Decision rejected",
			zap.Int64("booking_id", req.BookingID),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return fmt.Errorf("submit decision: %w", err)
	}

	s.log.Info("Decision submitted",
		zap.Int64("booking_id", req.BookingID),
		zap.String("action", req.Action),
	)
	return nil
}

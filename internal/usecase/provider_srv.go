package usecase

import (
	"context"
	"fmt"
	"io"

	"rentoverse-web/internal/data/backend"
	"rentoverse-web/internal/data/entity"
	"rentoverse-web/internal/dto/request"
	"rentoverse-web/internal/dto/view"
	"rentoverse-web/internal/lifecycle"

	"go.uber.org/zap"
)

type ProviderService interface {
	Dashboard(ctx context.Context, providerEmail string) (*view.ProviderDashboard, error)
	Respond(ctx context.Context, req *request.RespondForm) error
	RequestPayout(ctx context.Context, providerEmail string, req *request.PayoutRequestForm) (*entity.Payout, error)
	PostRoom(ctx context.Context, contentType string, body io.Reader) error
	DeleteRoom(ctx context.Context, roomID int64) error
}

type providerService struct {
	be  *backend.Backend
	log *zap.Logger
}

func NewProviderService(be *backend.Backend, log *zap.Logger) ProviderService {
	return &providerService{
		be:  be,
		log: log.With(zap.String("service", "provider")),
	}
}

// Dashboard assembles the provider home page: own rooms plus the booking
// requests against them. Rooms are primary; requests degrade to empty.
func (s *providerService) Dashboard(ctx context.Context, providerEmail string) (*view.ProviderDashboard, error) {
	rooms, err := s.be.Room.ByProvider(ctx, providerEmail)
	if err != nil {
		s.log.Error("Failed to load provider rooms",
			zap.String("email", providerEmail),
			zap.Error(err),
		)
		return nil, fmt.Errorf("load rooms: %w", err)
	}

	dash := &view.ProviderDashboard{Rooms: roomCards(rooms)}
	dash.Requests = s.loadRequests(ctx, providerEmail)

	s.log.Info("Provider dashboard assembled",
		zap.String("email", providerEmail),
		zap.Int("rooms", len(dash.Rooms)),
		zap.Int("requests", len(dash.Requests)),
	)
	return dash, nil
}

func (s *providerService) loadRequests(ctx context.Context, providerEmail string) []view.ProviderRequestCard {
	bookings, err := s.be.Booking.RequestList(ctx, providerEmail)
	if err != nil {
		s.log.Warn("Failed to load booking requests",
			zap.String("email", providerEmail),
			zap.Error(err),
		)
		return nil
	}
	lifecycle.SortBookingsNewest(bookings)

	cards := make([]view.ProviderRequestCard, 0, len(bookings))
	for _, b := range bookings {
		status := b.BookingStatus()
		card := view.ProviderRequestCard{
			Booking:     b,
			Badge:       lifecycle.BadgeClass(b.Status),
			StatusLabel: statusLabel(status),
			Code:        b.Room.Code(),
			RequestedOn: formatDate(b.CreatedAt),
			Deposit:     b.Deposit(),
			ShowRespond: status == entity.BookingStatusPendingRequest,
		}
		switch status {
		case entity.BookingStatusAwaitingPayment:
			if !b.PaymentDeadline.IsZero() {
				card.DeadlineLine = "Renter must pay by " + formatDateTime(b.PaymentDeadline)
			}
		case entity.BookingStatusPaidConfirmed, entity.BookingStatusConfirmed:
			if !b.ViewingDeadline.IsZero() {
				card.DeadlineLine = "Visit window ends " + formatDateTime(b.ViewingDeadline)
			}
		case entity.BookingStatusCompleted:
			card.Payout = s.payoutArea(ctx, b.ID)
		}
		cards = append(cards, card)
	}
	return cards
}

// payoutArea resolves the payout widget for a completed booking: request
// button when nothing was asked yet, a waiting chip while REQUESTED, the
// paid stamp once settled.
func (s *providerService) payoutArea(ctx context.Context, bookingID int64) *view.PayoutArea {
	payout, err := s.be.Payout.ByBooking(ctx, bookingID)
	if err != nil {
		s.log.Warn("Failed to load payout",
			zap.Int64("booking_id", bookingID),
			zap.Error(err),
		)
		return nil
	}
	if payout == nil {
		return &view.PayoutArea{State: view.PayoutAreaButton}
	}
	if payout.PayoutStatus() == entity.PayoutStatusPaid {
		return &view.PayoutArea{
			State:  view.PayoutAreaPaid,
			PaidAt: formatDateTime(payout.PaidAt),
		}
	}
	return &view.PayoutArea{State: view.PayoutAreaWaiting}
}

func (s *providerService) Respond(ctx context.Context, req *request.RespondForm) error {
	if err := s.be.Booking.Respond(ctx, req.BookingID, req.Action); err != nil {
		s.log.Warn("Respond rejected",
			zap.Int64("booking_id", req.BookingID),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return fmt.Errorf("respond to booking: %w", err)
	}

	s.log.Info("Booking request answered",
		zap.Int64("booking_id", req.BookingID),
		zap.String("action", req.Action),
	)
	return nil
}

func (s *providerService) RequestPayout(ctx context.Context, providerEmail string, req *request.PayoutRequestForm) (*entity.Payout, error) {
	payout, err := s.be.Payout.Request(ctx, backend.PayoutRequest{
		BookingID: req.BookingID,
		Method:    req.Method,
		Account:   req.Account,
		RoomCode:  req.RoomCode,
	})
	if err != nil {
		s.log.Warn("Payout request rejected",
			zap.Int64("booking_id", req.BookingID),
			zap.String("email", providerEmail),
			zap.Error(err),
		)
		return nil, fmt.Errorf("request payout: %w", err)
	}

	s.log.Info("Payout requested",
		zap.Int64("booking_id", req.BookingID),
		zap.Int64("payout_id", payout.ID),
		zap.String("method", req.Method),
	)
	return payout, nil
}

// PostRoom streams the multipart submission (fields plus image) through to
// the backend unchanged.
func (s *providerService) PostRoom(ctx context.Context, contentType string, body io.Reader) error {
	if err := s.be.Room.Add(ctx, contentType, body); err != nil {
		s.log.Warn("Room posting rejected", zap.Error(err))
		return fmt.Errorf("post room: %w", err)
	}

	s.log.Info("Room posted")
	return nil
}

func (s *providerService) DeleteRoom(ctx context.Context, roomID int64) error {
	if err := s.be.Room.Delete(ctx, roomID); err != nil {
		s.log.Warn("Room delete rejected", zap.Int64("room_id", roomID), zap.Error(err))
		return fmt.Errorf("delete room: %w", err)
	}

	s.log.Info("Room deleted", zap.Int64("room_id", roomID))
	return nil
}

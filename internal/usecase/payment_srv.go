package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"rentoverse-web/internal/data/backend"
	"rentoverse-web/internal/data/entity"
	"rentoverse-web/internal/dto/request"
	"rentoverse-web/internal/dto/view"

	"go.uber.org/zap"
)

type PaymentService interface {
	PayPage(ctx context.Context, bookingID int64) (*view.PaymentForm, error)
	SubmitEscrow(ctx context.Context, req *request.PayEscrowForm, roomCode string) error
}

type paymentService struct {
	be  *backend.Backend
	log *zap.Logger
}

func NewPaymentService(be *backend.Backend, log *zap.Logger) PaymentService {
	return &paymentService{
		be:  be,
		log: log.With(zap.String("service", "payment")),
	}
}

// escrowAccounts are the receiving accounts printed next to the method
// selector.
var escrowAccounts = []view.MethodHelp{
	{Method: "BKASH", Account: "01700-000000"},
	{Method: "NAGAD", Account: "01800-000000"},
	{Method: "ROCKET", Account: "01900-0000000"},
}

// PayPage loads the booking behind an escrow payment form. Only a booking
// still in AWAITING_PAYMENT may be paid.
func (s *paymentService) PayPage(ctx context.Context, bookingID int64) (*view.PaymentForm, error) {
	booking, err := s.be.Booking.ByID(ctx, bookingID)
	if err != nil {
		s.log.Warn("Failed to load booking for payment",
			zap.Int64("booking_id", bookingID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("load booking: %w", err)
	}
	if booking.BookingStatus() != entity.BookingStatusAwaitingPayment {
		return nil, &backend.APIError{
			StatusCode: 409,
			Body:       "This booking is not awaiting payment.",
		}
	}

	deposit := booking.Deposit()
	return &view.PaymentForm{
		BookingID: booking.ID,
		Booking:   booking,
		Code:      booking.Room.Code(),
		Deposit:   deposit,
		Amount:    deposit,
		Methods:   escrowAccounts,
	}, nil
}

// SubmitEscrow records the deposit payment. The reference line encodes the
// transaction, room code and booking id so admins can reconcile rows that
// lost their joins.
func (s *paymentService) SubmitEscrow(ctx context.Context, req *request.PayEscrowForm, roomCode string) error {
	form := url.Values{}
	form.Set("amount", strconv.Itoa(req.Amount))
	form.Set("method", req.Method)
	form.Set("payerName", req.PayerName)
	form.Set("payerPhone", req.PayerPhone)
	form.Set("txnId", req.TxnID)
	form.Set("note", req.Note)
	form.Set("reference", fmt.Sprintf("TXN:%s|ROOM:%s|BK:%d", req.TxnID, roomCode, req.BookingID))

	if err := s.be.Booking.PayEscrow(ctx, req.BookingID, form); err != nil {
		s.log.Warn("Escrow payment rejected",
			zap.Int64("booking_id", req.BookingID),
			zap.String("method", req.Method),
			zap.Error(err),
		)
		return fmt.Errorf("pay escrow: %w", err)
	}

	s.log.Info("Escrow payment submitted",
		zap.Int64("booking_id", req.BookingID),
		zap.Int("amount", req.Amount),
		zap.String("method", req.Method),
	)
	return nil
}

// Package view holds the models handed to templates. Services assemble
// them; templates only read. All gating and badge decisions are made here
// or in lifecycle, never in template logic.
package view

import (
	"fmt"
	"html/template"
	"time"

	"rentoverse-web/internal/data/entity"
	"rentoverse-web/internal/lifecycle"
)

// Page is the shared chrome every rendered page gets.
type Page struct {
	Title     string
	UserName  string
	UserEmail string
	UserRole  string
	LoggedIn  bool
	CSRFField template.HTML
	Error     string
	Success   string
}

type RoomCard struct {
	Room *entity.Room
	Code string
}

func NewRoomCard(r *entity.Room) RoomCard {
	return RoomCard{Room: r, Code: r.Code()}
}

// BookingCard is a renter's pending-request row.
type BookingCard struct {
	Booking     *entity.Booking
	Badge       lifecycle.BadgeToken
	StatusLabel string
	Code        string
	RequestedOn string
	CanCancel   bool
}

// AwaitingCard is an AWAITING_PAYMENT booking: either a waiting chip (a
// PENDING payment exists) or a countdown plus pay link.
type AwaitingCard struct {
	Booking     *entity.Booking
	Code        string
	Deposit     int
	Pending     *entity.Payment
	CountdownID string
	DeadlineMs  int64
	PayURL      string
}

// VisitCard is a PAID_CONFIRMED booking inside its visit window.
type VisitCard struct {
	Booking     *entity.Booking
	Code        string
	Actions     lifecycle.ActionSet
	ChipLabel   string
	ChipToken   lifecycle.BadgeToken
	CountdownID string
	DeadlineMs  int64
}

func (c VisitCard) Decided() bool { return c.Actions == lifecycle.ActionsChip }
func (c VisitCard) Offer() bool   { return c.Actions == lifecycle.ActionsDecide }

type UpdateItem struct {
	Icon      string
	Tone      string
	Title     string
	Message   string
	RoomTitle string
	RoomCode  string
	When      string
}

type RenterDashboard struct {
	Page
	Search   SearchEcho
	Rooms    []RoomCard
	Pending  []BookingCard
	Awaiting []AwaitingCard
	Visit    []VisitCard
	Updates  []UpdateItem
}

type SearchEcho struct {
	Location string
	Type     string
	MaxRent  string
}

// PayoutAreaState drives the payout widget on a COMPLETED provider booking.
type PayoutAreaState string

const (
	PayoutAreaButton  PayoutAreaState = "button"
	PayoutAreaWaiting PayoutAreaState = "waiting"
	PayoutAreaPaid    PayoutAreaState = "paid"
)

type PayoutArea struct {
	State  PayoutAreaState
	PaidAt string
}

// ProviderRequestCard is one booking on a provider's rooms.
type ProviderRequestCard struct {
	Booking      *entity.Booking
	Badge        lifecycle.BadgeToken
	StatusLabel  string
	Code         string
	RequestedOn  string
	Deposit      int
	DeadlineLine string
	ShowRespond  bool
	Payout       *PayoutArea
}

type ProviderDashboard struct {
	Page
	Rooms    []RoomCard
	Requests []ProviderRequestCard
}

// PaymentRow is one line of the admin payments table.
type PaymentRow struct {
	Payment     *entity.Payment
	Badge       lifecycle.BadgeToken
	Overdue     bool
	Window      string
	Amount      string
	RoomCode    string
	Note        string
	NoteFull    string
	Decision    string
	DecisionTok lifecycle.BadgeToken
	PayoutTok   lifecycle.BadgeToken
	ShowPayout  bool
	Actions     []lifecycle.PaymentAction
}

type PaymentsPage struct {
	Page
	Rows        []PaymentRow
	FilterState FilterEcho
	Payout      *PayoutModal
}

type FilterEcho struct {
	Status      string
	BookingID   string
	RenterEmail string
	OverdueOnly bool
}

// PayoutModal is the admin payout detail opened from a payment row.
type PayoutModal struct {
	Payout      *entity.Payout
	Badge       lifecycle.BadgeToken
	RequestedOn string
	CanMarkPaid bool
}

type AdminBookingCard struct {
	Booking     *entity.Booking
	Badge       lifecycle.BadgeToken
	StatusLabel string
	Code        string
	RequestedOn string
	Deposit     int
	ShowPayLink bool
}

type AdminDashboard struct {
	Page
	Renters   []*entity.User
	Providers []*entity.User
	Rooms     []RoomCard
	Bookings  []AdminBookingCard
}

// PaymentForm is the renter's escrow payment page.
type PaymentForm struct {
	Page
	BookingID int64
	Amount    int
	Booking   *entity.Booking
	Code      string
	Deposit   int
	CaptchaQ  string
	Methods   []MethodHelp
	Form      EchoedPayForm
}

type MethodHelp struct {
	Method  string
	Account string
}

// EchoedPayForm re-fills the payment form after a validation failure.
type EchoedPayForm struct {
	Method     string
	PayerName  string
	PayerPhone string
	TxnID      string
	Note       string
}

// PostRoomPage is the provider's room-posting form.
type PostRoomPage struct {
	Page
	CaptchaQ string
	Form     EchoedRoomForm
}

type EchoedRoomForm struct {
	Title         string
	Location      string
	Rent          string
	AvailableFrom string
	Type          string
	Description   string
}

// FormatTaka renders a taka amount with no decimals, or "-" when unset.
func FormatTaka(amount *float64) string {
	if amount == nil {
		return "-"
	}
	return fmt.Sprintf("৳%.0f", *amount)
}

// TimeAgo renders a relative stamp for the updates feed.
func TimeAgo(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	diff := now.Sub(t)
	if diff < 0 {
		diff = 0
	}
	switch {
	case diff < time.Minute:
		return fmt.Sprintf("%ds ago", int(diff.Seconds()))
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	}
}

// Truncate shortens note text for table cells.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "…"
}

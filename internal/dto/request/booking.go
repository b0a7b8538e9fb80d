package request

type RespondForm struct {
	BookingID int64  `form:"bookingId" validate:"required,gt=0"`
	Action    string `form:"action" validate:"required,oneof=APPROVE DECLINE"`
}

// DecisionForm is the renter's post-visit choice. The note only travels
// with refund requests.
type DecisionForm struct {
	BookingID int64  `form:"bookingId" validate:"required,gt=0"`
	Action    string `form:"action" validate:"required,oneof=REFUND COMPLETE"`
	Note      string `form:"note" validate:"max=500"`
}

package request

// PayEscrowForm is the 25% deposit submission. Captcha is checked against
// the session before anything is sent to the backend.
type PayEscrowForm struct {
	BookingID     int64  `form:"bookingId" validate:"required,gt=0"`
	Amount        int    `form:"amount" validate:"required,gt=0"`
	Method        string `form:"method" validate:"required,oneof=BKASH NAGAD ROCKET"`
	PayerName     string `form:"payerName" validate:"required,max=120"`
	PayerPhone    string `form:"payerPhone" validate:"required,max=32"`
	TxnID         string `form:"txnId" validate:"required,max=128"`
	Note          string `form:"note" validate:"max=512"`
	CaptchaAnswer string `form:"captcha" validate:"required"`
}

type PayoutRequestForm struct {
	BookingID int64  `form:"bookingId" validate:"required,gt=0"`
	Method    string `form:"method" validate:"required,oneof=BKASH NAGAD ROCKET"`
	Account   string `form:"account" validate:"required,max=64"`
	RoomCode  string `form:"roomCode" validate:"max=64"`
}

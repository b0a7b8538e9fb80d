package utils

import (
	"math/rand"

	"rentoverse-web/internal/data/session"
)

// NewCaptcha generates a single-digit addition challenge, matching the
// check the payment form performs before any network call.
func NewCaptcha() session.Captcha {
	return session.Captcha{
		X: rand.Intn(9) + 1,
		Y: rand.Intn(9) + 1,
	}
}

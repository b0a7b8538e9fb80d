package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreCreateAndGet(t *testing.T) {
	s := NewStore()
	token := s.Create(Session{Name: "Ana", Email: "ana@example.com", Role: "RENTER"})
	assert.NotEmpty(t, token)

	sess, ok := s.Get(token)
	assert.True(t, ok)
	assert.Equal(t, "ana@example.com", sess.Email)
	assert.True(t, sess.LoggedIn())
}

func TestStoreTokensAreUnique(t *testing.T) {
	s := NewStore()
	t1 := s.Create(Session{Email: "a@example.com"})
	t2 := s.Create(Session{Email: "b@example.com"})
	assert.NotEqual(t, t1, t2)
	assert.Equal(t, 2, s.Len())
}

func TestStorePutUpdatesExistingOnly(t *testing.T) {
	s := NewStore()
	token := s.Create(Session{Email: "a@example.com"})

	sess, _ := s.Get(token)
	captcha := Captcha{X: 3, Y: 4}
	sess.PayCaptcha = &captcha
	s.Put(token, sess)

	got, _ := s.Get(token)
	assert.NotNil(t, got.PayCaptcha)
	assert.Equal(t, 7, got.PayCaptcha.Answer())

	// an unknown token never becomes a session
	s.Put("forged-token", Session{Email: "evil@example.com"})
	_, ok := s.Get("forged-token")
	assert.False(t, ok)
	assert.Equal(t, 1, s.Len())
}

func TestStoreDelete(t *testing.T) {
	s := NewStore()
	token := s.Create(Session{Email: "a@example.com"})
	s.Delete(token)

	_, ok := s.Get(token)
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}

func TestAnonymousSessionNotLoggedIn(t *testing.T) {
	assert.False(t, Session{PendingEmail: "new@example.com"}.LoggedIn())
}

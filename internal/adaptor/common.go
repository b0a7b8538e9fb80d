package adaptor

import (
	"net/http"
	"net/url"

	"rentoverse-web/internal/dto/view"
	"rentoverse-web/pkg/utils"

	"github.com/gorilla/csrf"
)

// cookieWriter sets and clears the session cookie.
type cookieWriter struct {
	name   string
	secure bool
}

func newCookieWriter(config *utils.Config) *cookieWriter {
	return &cookieWriter{
		name:   config.Session.CookieName,
		secure: config.Session.Secure,
	}
}

func (c *cookieWriter) set(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.name,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (c *cookieWriter) clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// basePage builds the shared page chrome: identity from the session
// context, the CSRF field, and the one-shot flash carried in the query
// string across a redirect.
func basePage(r *http.Request, title string) view.Page {
	page := view.Page{
		Title:     title,
		CSRFField: csrf.TemplateField(r),
		Success:   r.URL.Query().Get("ok"),
	}
	if sess, ok := utils.GetSessionFromContext(r.Context()); ok && sess.LoggedIn() {
		page.LoggedIn = true
		page.UserName = sess.Name
		page.UserEmail = sess.Email
		page.UserRole = sess.Role
	}
	return page
}

// redirectOK sends a 303 with a flash message in the query string.
func redirectOK(w http.ResponseWriter, r *http.Request, target, msg string) {
	if msg != "" {
		sep := "?"
		if u, err := url.Parse(target); err == nil && u.RawQuery != "" {
			sep = "&"
		}
		target += sep + "ok=" + url.QueryEscape(msg)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

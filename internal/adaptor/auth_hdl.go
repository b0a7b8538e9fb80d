package adaptor

import (
	"net/http"

	"rentoverse-web/internal/data/backend"
	"rentoverse-web/internal/data/entity"
	"rentoverse-web/internal/data/session"
	"rentoverse-web/internal/dto/request"
	"rentoverse-web/internal/dto/view"
	"rentoverse-web/internal/usecase"
	"rentoverse-web/internal/web"
	"rentoverse-web/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service  usecase.AuthService
	renderer *web.Renderer
	store    *session.Store
	cookies  *cookieWriter
	log      *zap.Logger
}

func NewAuthHandler(
	service usecase.AuthService,
	renderer *web.Renderer,
	store *session.Store,
	cookies *cookieWriter,
	log *zap.Logger,
) *AuthHandler {
	return &AuthHandler{
		service:  service,
		renderer: renderer,
		store:    store,
		cookies:  cookies,
		log:      log.With(zap.String("handler", "auth")),
	}
}

func (h *AuthHandler) ShowLogin(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, "login", &view.AuthPage{Page: basePage(r, "Login")})
}

// Login authenticates and routes the user to their role's dashboard.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	req := &request.LoginForm{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}
	page := &view.AuthPage{Page: basePage(r, "Login"), Email: req.Email}
	if err := utils.ValidateStruct(req); err != nil {
		page.Error = utils.FormatValidationErrors(err)
		h.renderer.Render(w, http.StatusBadRequest, "login", page)
		return
	}

	sess, err := h.service.Login(r.Context(), req)
	if err != nil {
		page.Error = backend.UserMessage(err)
		h.renderer.Render(w, http.StatusUnauthorized, "login", page)
		return
	}

	h.cookies.set(w, h.store.Create(sess))
	http.Redirect(w, r, HomeFor(sess.Role), http.StatusSeeOther)
}

func (h *AuthHandler) ShowAdminLogin(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, "admin_login", &view.AuthPage{Page: basePage(r, "Admin Login")})
}

func (h *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	req := &request.LoginForm{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}
	page := &view.AuthPage{Page: basePage(r, "Admin Login"), Email: req.Email}
	if err := utils.ValidateStruct(req); err != nil {
		page.Error = utils.FormatValidationErrors(err)
		h.renderer.Render(w, http.StatusBadRequest, "admin_login", page)
		return
	}

	sess, err := h.service.AdminLogin(r.Context(), req)
	if err != nil {
		page.Error = backend.UserMessage(err)
		h.renderer.Render(w, http.StatusUnauthorized, "admin_login", page)
		return
	}

	h.cookies.set(w, h.store.Create(sess))
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (h *AuthHandler) ShowRegister(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, "register", &view.AuthPage{Page: basePage(r, "Register")})
}

// Register creates the account and parks the email in an anonymous session
// so the verify page knows who is verifying.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	req := &request.RegisterForm{
		Name:     r.PostFormValue("name"),
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
		Role:     r.PostFormValue("role"),
	}
	page := &view.AuthPage{
		Page:  basePage(r, "Register"),
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	}
	if err := utils.ValidateStruct(req); err != nil {
		page.Error = utils.FormatValidationErrors(err)
		h.renderer.Render(w, http.StatusBadRequest, "register", page)
		return
	}

	if err := h.service.Register(r.Context(), req); err != nil {
		page.Error = backend.UserMessage(err)
		h.renderer.Render(w, http.StatusBadRequest, "register", page)
		return
	}

	h.cookies.set(w, h.store.Create(session.Session{PendingEmail: req.Email}))
	http.Redirect(w, r, "/verify", http.StatusSeeOther)
}

func (h *AuthHandler) ShowVerify(w http.ResponseWriter, r *http.Request) {
	sess, _ := utils.GetSessionFromContext(r.Context())
	if sess.PendingEmail == "" {
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}
	h.renderer.Render(w, http.StatusOK, "verify", &view.AuthPage{
		Page:        basePage(r, "Verify Email"),
		VerifyEmail: sess.PendingEmail,
	})
}

func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	sess, _ := utils.GetSessionFromContext(r.Context())
	if sess.PendingEmail == "" {
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}

	req := &request.VerifyForm{Code: r.PostFormValue("code")}
	page := &view.AuthPage{
		Page:        basePage(r, "Verify Email"),
		VerifyEmail: sess.PendingEmail,
	}
	if err := utils.ValidateStruct(req); err != nil {
		page.Error = utils.FormatValidationErrors(err)
		h.renderer.Render(w, http.StatusBadRequest, "verify", page)
		return
	}

	if err := h.service.VerifyCode(r.Context(), sess.PendingEmail, req.Code); err != nil {
		page.Error = backend.UserMessage(err)
		h.renderer.Render(w, http.StatusBadRequest, "verify", page)
		return
	}

	redirectOK(w, r, "/login", "Email verified. You can log in now.")
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if token, ok := utils.GetTokenFromContext(r.Context()); ok {
		h.store.Delete(token)
	}
	h.cookies.clear(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// HomeFor maps a role to its dashboard path.
func HomeFor(role string) string {
	switch entity.NormalizeRole(role) {
	case entity.RoleProvider:
		return "/provider"
	case entity.RoleAdmin:
		return "/admin"
	default:
		return "/renter"
	}
}

package adaptor

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"rentoverse-web/internal/data/backend"
	"rentoverse-web/internal/data/session"
	"rentoverse-web/internal/dto/request"
	"rentoverse-web/internal/dto/view"
	"rentoverse-web/internal/usecase"
	"rentoverse-web/internal/web"
	"rentoverse-web/pkg/utils"

	"go.uber.org/zap"
)

const maxRoomUpload = 10 << 20

type ProviderHandler struct {
	service  usecase.ProviderService
	renderer *web.Renderer
	store    *session.Store
	log      *zap.Logger
}

func NewProviderHandler(
	service usecase.ProviderService,
	renderer *web.Renderer,
	store *session.Store,
	log *zap.Logger,
) *ProviderHandler {
	return &ProviderHandler{
		service:  service,
		renderer: renderer,
		store:    store,
		log:      log.With(zap.String("handler", "provider")),
	}
}

// Dashboard handles GET /provider.
func (h *ProviderHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	sess, _ := utils.GetSessionFromContext(r.Context())
	dash, err := h.service.Dashboard(r.Context(), sess.Email)
	if err != nil {
		page := basePage(r, "My Rooms")
		page.Error = backend.UserMessage(err)
		h.renderer.Render(w, http.StatusBadGateway, "provider_dashboard", &view.ProviderDashboard{Page: page})
		return
	}
	dash.Page = basePage(r, "My Rooms")
	h.renderer.Render(w, http.StatusOK, "provider_dashboard", dash)
}

// Respond handles POST /provider/respond (approve or decline a request).
func (h *ProviderHandler) Respond(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := utils.ParseID(r.PostFormValue("bookingId"))
	if !ok {
		http.Error(w, "invalid booking id", http.StatusBadRequest)
		return
	}
	req := &request.RespondForm{
		BookingID: bookingID,
		Action:    r.PostFormValue("action"),
	}
	if err := utils.ValidateStruct(req); err != nil {
		h.dashboardWithError(w, r, utils.FormatValidationErrors(err))
		return
	}

	if err := h.service.Respond(r.Context(), req); err != nil {
		h.dashboardWithError(w, r, backend.UserMessage(err))
		return
	}

	msg := "Request approved. The renter has 24 hours to pay the deposit."
	if req.Action == "DECLINE" {
		msg = "Request declined."
	}
	redirectOK(w, r, "/provider", msg)
}

// Payout handles POST /provider/payout.
func (h *ProviderHandler) Payout(w http.ResponseWriter, r *http.Request) {
	sess, _ := utils.GetSessionFromContext(r.Context())
	bookingID, ok := utils.ParseID(r.PostFormValue("bookingId"))
	if !ok {
		http.Error(w, "invalid booking id", http.StatusBadRequest)
		return
	}
	req := &request.PayoutRequestForm{
		BookingID: bookingID,
		Method:    r.PostFormValue("method"),
		Account:   strings.TrimSpace(r.PostFormValue("account")),
		RoomCode:  r.PostFormValue("roomCode"),
	}
	if err := utils.ValidateStruct(req); err != nil {
		h.dashboardWithError(w, r, utils.FormatValidationErrors(err))
		return
	}

	if _, err := h.service.RequestPayout(r.Context(), sess.Email, req); err != nil {
		h.dashboardWithError(w, r, backend.UserMessage(err))
		return
	}
	redirectOK(w, r, "/provider", "Payout requested. An admin will settle it.")
}

// DeleteRoom handles POST /provider/rooms/delete.
func (h *ProviderHandler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	roomID, ok := utils.ParseID(r.PostFormValue("roomId"))
	if !ok {
		http.Error(w, "invalid room id", http.StatusBadRequest)
		return
	}
	if err := h.service.DeleteRoom(r.Context(), roomID); err != nil {
		h.dashboardWithError(w, r, backend.UserMessage(err))
		return
	}
	redirectOK(w, r, "/provider", "Room deleted.")
}

// ShowPostRoom handles GET /rooms/new.
func (h *ProviderHandler) ShowPostRoom(w http.ResponseWriter, r *http.Request) {
	page := &view.PostRoomPage{Page: basePage(r, "Post a Room")}
	page.CaptchaQ = h.mintCaptcha(r)
	h.renderer.Render(w, http.StatusOK, "room_new", page)
}

// PostRoom handles POST /rooms/new. The multipart submission is validated
// here, then rebuilt field for field (plus the provider email from the
// session) and streamed to the backend.
func (h *ProviderHandler) PostRoom(w http.ResponseWriter, r *http.Request) {
	sess, _ := utils.GetSessionFromContext(r.Context())
	if err := r.ParseMultipartForm(maxRoomUpload); err != nil {
		h.rerenderPostRoom(w, r, nil, "Could not read the form. Is the image too large?")
		return
	}

	rent, _ := strconv.ParseFloat(r.PostFormValue("rent"), 64)
	req := &request.PostRoomForm{
		Title:         strings.TrimSpace(r.PostFormValue("title")),
		Location:      strings.TrimSpace(r.PostFormValue("location")),
		Rent:          rent,
		AvailableFrom: r.PostFormValue("availableFrom"),
		Type:          r.PostFormValue("type"),
		Description:   strings.TrimSpace(r.PostFormValue("description")),
		CaptchaAnswer: strings.TrimSpace(r.PostFormValue("captcha")),
	}
	if err := utils.ValidateStruct(req); err != nil {
		h.rerenderPostRoom(w, r, req, utils.FormatValidationErrors(err))
		return
	}
	if !h.checkCaptcha(r, req.CaptchaAnswer) {
		h.rerenderPostRoom(w, r, req, "Captcha answer is incorrect. Try the new one.")
		return
	}

	contentType, body, err := h.buildUpload(r, sess, req)
	if err != nil {
		h.log.Error("Failed to rebuild room upload", zap.Error(err))
		h.rerenderPostRoom(w, r, req, "Could not process the upload.")
		return
	}

	if err := h.service.PostRoom(r.Context(), contentType, body); err != nil {
		h.rerenderPostRoom(w, r, req, backend.UserMessage(err))
		return
	}

	h.clearCaptcha(r)
	redirectOK(w, r, "/provider", "Room published.")
}

func (h *ProviderHandler) buildUpload(r *http.Request, sess session.Session, req *request.PostRoomForm) (string, io.Reader, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fields := map[string]string{
		"title":         req.Title,
		"location":      req.Location,
		"rent":          strconv.FormatFloat(req.Rent, 'f', -1, 64),
		"availableFrom": req.AvailableFrom,
		"type":          req.Type,
		"description":   req.Description,
		"email":         sess.Email,
	}
	for name, value := range fields {
		if err := mw.WriteField(name, value); err != nil {
			return "", nil, fmt.Errorf("write field %s: %w", name, err)
		}
	}

	if file, header, err := r.FormFile("image"); err == nil {
		defer file.Close()
		part, err := mw.CreateFormFile("image", header.Filename)
		if err != nil {
			return "", nil, fmt.Errorf("create image part: %w", err)
		}
		if _, err := io.Copy(part, file); err != nil {
			return "", nil, fmt.Errorf("copy image: %w", err)
		}
	}

	if err := mw.Close(); err != nil {
		return "", nil, fmt.Errorf("close multipart: %w", err)
	}
	return mw.FormDataContentType(), &buf, nil
}

func (h *ProviderHandler) rerenderPostRoom(w http.ResponseWriter, r *http.Request, req *request.PostRoomForm, msg string) {
	page := &view.PostRoomPage{Page: basePage(r, "Post a Room")}
	page.Error = msg
	page.CaptchaQ = h.mintCaptcha(r)
	if req != nil {
		page.Form = view.EchoedRoomForm{
			Title:         req.Title,
			Location:      req.Location,
			Rent:          formatRentEcho(req.Rent),
			AvailableFrom: req.AvailableFrom,
			Type:          req.Type,
			Description:   req.Description,
		}
	}
	h.renderer.Render(w, http.StatusBadRequest, "room_new", page)
}

func (h *ProviderHandler) dashboardWithError(w http.ResponseWriter, r *http.Request, msg string) {
	sess, _ := utils.GetSessionFromContext(r.Context())
	dash, err := h.service.Dashboard(r.Context(), sess.Email)
	if err != nil {
		dash = &view.ProviderDashboard{}
	}
	dash.Page = basePage(r, "My Rooms")
	dash.Page.Error = msg
	h.renderer.Render(w, http.StatusBadRequest, "provider_dashboard", dash)
}

func (h *ProviderHandler) mintCaptcha(r *http.Request) string {
	captcha := utils.NewCaptcha()
	token, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		return ""
	}
	sess, ok := h.store.Get(token)
	if !ok {
		return ""
	}
	sess.RoomCaptcha = &captcha
	h.store.Put(token, sess)
	return fmt.Sprintf("How much is %d + %d?", captcha.X, captcha.Y)
}

func (h *ProviderHandler) checkCaptcha(r *http.Request, answer string) bool {
	token, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		return false
	}
	sess, ok := h.store.Get(token)
	if !ok || sess.RoomCaptcha == nil {
		return false
	}
	n, err := strconv.Atoi(answer)
	return err == nil && n == sess.RoomCaptcha.Answer()
}

func (h *ProviderHandler) clearCaptcha(r *http.Request) {
	token, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		return
	}
	if sess, ok := h.store.Get(token); ok {
		sess.RoomCaptcha = nil
		h.store.Put(token, sess)
	}
}

func formatRentEcho(rent float64) string {
	if rent <= 0 {
		return ""
	}
	return strconv.FormatFloat(rent, 'f', -1, 64)
}

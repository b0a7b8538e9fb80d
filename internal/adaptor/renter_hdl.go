package adaptor

import (
	"net/http"
	"strconv"

	"rentoverse-web/internal/data/backend"
	"rentoverse-web/internal/data/session"
	"rentoverse-web/internal/dto/request"
	"rentoverse-web/internal/dto/view"
	"rentoverse-web/internal/usecase"
	"rentoverse-web/internal/web"
	"rentoverse-web/pkg/utils"

	"go.uber.org/zap"
)

type RenterHandler struct {
	service  usecase.RenterService
	renderer *web.Renderer
	log      *zap.Logger
}

func NewRenterHandler(service usecase.RenterService, renderer *web.Renderer, log *zap.Logger) *RenterHandler {
	return &RenterHandler{
		service:  service,
		renderer: renderer,
		log:      log.With(zap.String("handler", "renter")),
	}
}

// Dashboard handles GET /renter. Search parameters ride in the query
// string so results are bookmarkable.
func (h *RenterHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	sess, _ := utils.GetSessionFromContext(r.Context())
	query := r.URL.Query()
	search := request.SearchForm{
		Location: query.Get("location"),
		Type:     query.Get("type"),
	}
	if raw := query.Get("maxRent"); raw != "" {
		if rent, err := strconv.ParseFloat(raw, 64); err == nil && rent > 0 {
			search.MaxRent = rent
		}
	}

	dash, err := h.service.Dashboard(r.Context(), sess, search)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	dash.Page = basePage(r, "Find a Room")
	h.renderer.Render(w, http.StatusOK, "renter_dashboard", dash)
}

// RequestRoom handles POST /renter/request.
func (h *RenterHandler) RequestRoom(w http.ResponseWriter, r *http.Request) {
	sess, _ := utils.GetSessionFromContext(r.Context())
	roomID, ok := utils.ParseID(r.PostFormValue("roomId"))
	if !ok {
		http.Error(w, "invalid room id", http.StatusBadRequest)
		return
	}

	if err := h.service.RequestRoom(r.Context(), sess.Email, roomID); err != nil {
		h.renderWithError(w, r, sess, err)
		return
	}
	redirectOK(w, r, "/renter", "Request sent. The provider will respond shortly.")
}

// Cancel handles POST /renter/cancel.
func (h *RenterHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	sess, _ := utils.GetSessionFromContext(r.Context())
	bookingID, ok := utils.ParseID(r.PostFormValue("bookingId"))
	if !ok {
		http.Error(w, "invalid booking id", http.StatusBadRequest)
		return
	}

	if err := h.service.CancelRequest(r.Context(), bookingID); err != nil {
		h.renderWithError(w, r, sess, err)
		return
	}
	redirectOK(w, r, "/renter", "Request cancelled.")
}

// Decision handles POST /renter/decision. On rejection the dashboard is
// re-rendered from fresh backend state, so the action buttons stay exactly
// as the server says they should be.
func (h *RenterHandler) Decision(w http.ResponseWriter, r *http.Request) {
	sess, _ := utils.GetSessionFromContext(r.Context())
	bookingID, ok := utils.ParseID(r.PostFormValue("bookingId"))
	if !ok {
		http.Error(w, "invalid booking id", http.StatusBadRequest)
		return
	}

	req := &request.DecisionForm{
		BookingID: bookingID,
		Action:    r.PostFormValue("action"),
		Note:      r.PostFormValue("note"),
	}
	if err := utils.ValidateStruct(req); err != nil {
		h.renderValidationError(w, r, sess, utils.FormatValidationErrors(err))
		return
	}

	if err := h.service.SubmitDecision(r.Context(), req); err != nil {
		h.renderWithError(w, r, sess, err)
		return
	}

	msg := "Completion requested. An admin will release the deposit."
	if req.Action == "REFUND" {
		msg = "Refund requested. An admin will review it."
	}
	redirectOK(w, r, "/renter", msg)
}

func (h *RenterHandler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	page := basePage(r, "Find a Room")
	page.Error = backend.UserMessage(err)
	h.renderer.Render(w, http.StatusBadGateway, "renter_dashboard", &view.RenterDashboard{Page: page})
}

// renderWithError re-renders the full dashboard with the failure banner on
// top.
func (h *RenterHandler) renderWithError(w http.ResponseWriter, r *http.Request, sess session.Session, err error) {
	dash, loadErr := h.service.Dashboard(r.Context(), sess, request.SearchForm{})
	if loadErr != nil {
		h.renderError(w, r, err)
		return
	}
	dash.Page = basePage(r, "Find a Room")
	dash.Page.Error = backend.UserMessage(err)
	h.renderer.Render(w, http.StatusOK, "renter_dashboard", dash)
}

func (h *RenterHandler) renderValidationError(w http.ResponseWriter, r *http.Request, sess session.Session, msg string) {
	dash, loadErr := h.service.Dashboard(r.Context(), sess, request.SearchForm{})
	if loadErr != nil {
		page := basePage(r, "Find a Room")
		page.Error = msg
		h.renderer.Render(w, http.StatusBadRequest, "renter_dashboard", &view.RenterDashboard{Page: page})
		return
	}
	dash.Page = basePage(r, "Find a Room")
	dash.Page.Error = msg
	h.renderer.Render(w, http.StatusBadRequest, "renter_dashboard", dash)
}

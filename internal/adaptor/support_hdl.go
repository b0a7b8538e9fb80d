package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"rentoverse-web/internal/data/backend"
	"rentoverse-web/internal/dto/request"
	"rentoverse-web/internal/dto/view"
	"rentoverse-web/internal/usecase"
	"rentoverse-web/internal/web"
	"rentoverse-web/pkg/utils"

	"go.uber.org/zap"
)

type SupportHandler struct {
	service  usecase.SupportService
	renderer *web.Renderer
	log      *zap.Logger
}

func NewSupportHandler(service usecase.SupportService, renderer *web.Renderer, log *zap.Logger) *SupportHandler {
	return &SupportHandler{
		service:  service,
		renderer: renderer,
		log:      log.With(zap.String("handler", "support")),
	}
}

// ShowSupport handles GET /support. Name and email are prefilled from the
// session when present.
func (h *SupportHandler) ShowSupport(w http.ResponseWriter, r *http.Request) {
	page := &view.SupportPage{Page: basePage(r, "Support")}
	if sess, ok := utils.GetSessionFromContext(r.Context()); ok && sess.LoggedIn() {
		page.Form.Name = sess.Name
		page.Form.Email = sess.Email
	}
	h.renderer.Render(w, http.StatusOK, "support", page)
}

// Submit handles POST /support.
func (h *SupportHandler) Submit(w http.ResponseWriter, r *http.Request) {
	req := &request.SupportForm{
		Name:    strings.TrimSpace(r.PostFormValue("name")),
		Email:   strings.TrimSpace(r.PostFormValue("email")),
		Subject: strings.TrimSpace(r.PostFormValue("subject")),
		Message: strings.TrimSpace(r.PostFormValue("message")),
	}
	page := &view.SupportPage{
		Page: basePage(r, "Support"),
		Form: view.EchoedSupportForm{
			Name:    req.Name,
			Email:   req.Email,
			Subject: req.Subject,
			Message: req.Message,
		},
	}
	if err := utils.ValidateStruct(req); err != nil {
		page.Error = utils.FormatValidationErrors(err)
		h.renderer.Render(w, http.StatusBadRequest, "support", page)
		return
	}

	if err := h.service.CreateTicket(r.Context(), req); err != nil {
		page.Error = backend.UserMessage(err)
		h.renderer.Render(w, http.StatusBadRequest, "support", page)
		return
	}
	redirectOK(w, r, "/support", "Ticket filed. We will reply by email.")
}

// Ask handles POST /chatbot/ask, the one JSON endpoint of this app; the
// support page's bot widget calls it.
func (h *SupportHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req request.ChatbotAsk
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "invalid request body")
		return
	}
	if errs := utils.ValidateStruct(&req); errs != nil {
		utils.ResponseBadRequest(w, utils.FormatValidationErrors(errs))
		return
	}

	answer, err := h.service.Ask(r.Context(), req.Message)
	if err != nil {
		utils.ResponseBadGateway(w, backend.UserMessage(err))
		return
	}
	utils.ResponseSuccess(w, "success", map[string]string{"answer": answer})
}

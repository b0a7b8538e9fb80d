package adaptor

import (
	"fmt"
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

type PaymentHandler struct {
	service  usecase.PaymentService
	renderer *web.Renderer
	store    *session.Store
	log      *zap.Logger
}

func NewPaymentHandler(
	service usecase.PaymentService,
	renderer *web.Renderer,
	store *session.Store,
	log *zap.Logger,
) *PaymentHandler {
	return &PaymentHandler{
		service:  service,
		renderer: renderer,
		store:    store,
		log:      log.With(zap.String("handler", "payment")),
	}
}

// ShowPay handles GET /pay?bookingId=N. A fresh captcha is minted into the
// session on every view.
func (h *PaymentHandler) ShowPay(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := utils.ParseID(r.URL.Query().Get("bookingId"))
	if !ok {
		http.Redirect(w, r, "/renter", http.StatusSeeOther)
		return
	}

	form, err := h.service.PayPage(r.Context(), bookingID)
	if err != nil {
		page := basePage(r, "Pay Deposit")
		page.Error = backend.UserMessage(err)
		h.renderer.Render(w, http.StatusBadRequest, "renter_dashboard", &view.RenterDashboard{Page: page})
		return
	}

	form.Page = basePage(r, "Pay Deposit")
	form.CaptchaQ = h.mintCaptcha(r)
	h.renderer.Render(w, http.StatusOK, "pay", form)
}

// Pay handles POST /pay. The captcha is checked against the session before
// anything touches the network; a wrong answer never costs a backend call.
func (h *PaymentHandler) Pay(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := utils.ParseID(r.PostFormValue("bookingId"))
	if !ok {
		http.Error(w, "invalid booking id", http.StatusBadRequest)
		return
	}

	req := &request.PayEscrowForm{
		BookingID:     bookingID,
		Amount:        utils.ParseInt(r.PostFormValue("amount"), 0),
		Method:        r.PostFormValue("method"),
		PayerName:     strings.TrimSpace(r.PostFormValue("payerName")),
		PayerPhone:    strings.TrimSpace(r.PostFormValue("payerPhone")),
		TxnID:         strings.TrimSpace(r.PostFormValue("txnId")),
		Note:          strings.TrimSpace(r.PostFormValue("note")),
		CaptchaAnswer: strings.TrimSpace(r.PostFormValue("captcha")),
	}

	if err := utils.ValidateStruct(req); err != nil {
		h.rerender(w, r, bookingID, req, utils.FormatValidationErrors(err))
		return
	}
	if !h.checkCaptcha(r, req.CaptchaAnswer) {
		h.rerender(w, r, bookingID, req, "Captcha answer is incorrect. Try the new one.")
		return
	}

	form, err := h.service.PayPage(r.Context(), bookingID)
	if err != nil {
		h.rerender(w, r, bookingID, req, backend.UserMessage(err))
		return
	}

	if err := h.service.SubmitEscrow(r.Context(), req, form.Code); err != nil {
		h.rerender(w, r, bookingID, req, backend.UserMessage(err))
		return
	}

	h.clearCaptcha(r)
	redirectOK(w, r, "/renter", "Payment submitted. An admin will confirm it shortly.")
}

// rerender reloads the pay page with the failure banner, echoed input and a
// fresh captcha.
func (h *PaymentHandler) rerender(w http.ResponseWriter, r *http.Request, bookingID int64, req *request.PayEscrowForm, msg string) {
	form, err := h.service.PayPage(r.Context(), bookingID)
	if err != nil {
		page := basePage(r, "Pay Deposit")
		page.Error = msg
		h.renderer.Render(w, http.StatusBadRequest, "renter_dashboard", &view.RenterDashboard{Page: page})
		return
	}

	form.Page = basePage(r, "Pay Deposit")
	form.Page.Error = msg
	form.CaptchaQ = h.mintCaptcha(r)
	form.Form = view.EchoedPayForm{
		Method:     req.Method,
		PayerName:  req.PayerName,
		PayerPhone: req.PayerPhone,
		TxnID:      req.TxnID,
		Note:       req.Note,
	}
	h.renderer.Render(w, http.StatusBadRequest, "pay", form)
}

func (h *PaymentHandler) mintCaptcha(r *http.Request) string {
	captcha := utils.NewCaptcha()
	token, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		return ""
	}
	sess, ok := h.store.Get(token)
	if !ok {
		return ""
	}
	sess.PayCaptcha = &captcha
	h.store.Put(token, sess)
	return fmt.Sprintf("How much is %d + %d?", captcha.X, captcha.Y)
}

func (h *PaymentHandler) checkCaptcha(r *http.Request, answer string) bool {
	token, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		return false
	}
	sess, ok := h.store.Get(token)
	if !ok || sess.PayCaptcha == nil {
		return false
	}
	n, err := strconv.Atoi(answer)
	return err == nil && n == sess.PayCaptcha.Answer()
}

func (h *PaymentHandler) clearCaptcha(r *http.Request) {
	token, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		return
	}
	if sess, ok := h.store.Get(token); ok {
		sess.PayCaptcha = nil
		h.store.Put(token, sess)
	}
}

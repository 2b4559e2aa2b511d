package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/akinalp/vitrin/models"
	"github.com/akinalp/vitrin/pkg"
	"github.com/akinalp/vitrin/pkg/ratelimit"
	"github.com/akinalp/vitrin/services"
)

// ContactHandler, public iletişim formu ve admin gelen kutusu endpoint'leri.
type ContactHandler struct {
	contactService services.ContactService
	limiter        *ratelimit.IPRateLimiter
}

// NewContactHandler, constructor.
// limiter: form spam koruması. nil ise rate limiting devre dışı kalır.
func NewContactHandler(contactService services.ContactService, limiter *ratelimit.IPRateLimiter) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		limiter:        limiter,
	}
}

// Submit godoc
// POST /api/contact
// Body: { "name": "...", "email": "...", "subject": "...", "message": "..." }
//
// Validation hataları 400 + mesajla döner; geçersiz girdide e-posta
// sağlayıcısı hiç çağrılmaz.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	ip := ratelimit.ExtractIP(r)
	if h.limiter != nil && !h.limiter.Allow(ip) {
		retryAfter := h.limiter.RetryAfterSeconds(ip)
		w.Header().Set("Retry-After", fmt.Sprintf("%d", retryAfter))
		pkg.ErrorWithMessage(w, http.StatusTooManyRequests,
			fmt.Sprintf("too many messages, please try again in %s",
				ratelimit.FormatRetryMessage(retryAfter)))
		return
	}

	var req models.ContactRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// Validation burada yapılır ki hata mesajı sentinel prefix'i olmadan,
	// frontend'in beklediği haliyle dönsün ("Invalid email format" gibi).
	if err := req.Validate(); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.contactService.Submit(r.Context(), &req); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{"message": "Message sent successfully"})
}

// ListMessages godoc
// GET /api/admin/messages — gelen kutusu, en yeni üstte.
func (h *ContactHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.contactService.ListMessages(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, messages)
}

// DeleteMessage godoc
// DELETE /api/admin/messages/{id}
func (h *ContactHandler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	if err := h.contactService.DeleteMessage(r.Context(), r.PathValue("id")); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{"message": "message deleted"})
}

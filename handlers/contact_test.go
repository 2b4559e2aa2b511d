package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/akinalp/vitrin/models"
	"github.com/akinalp/vitrin/pkg"
	"github.com/akinalp/vitrin/pkg/ratelimit"
)

type stubContactService struct {
	submitErr error
	submitted []models.ContactRequest
	messages  []models.ContactMessage
}

func (s *stubContactService) Submit(ctx context.Context, req *models.ContactRequest) error {
	if s.submitErr != nil {
		return s.submitErr
	}
	s.submitted = append(s.submitted, *req)
	return nil
}

func (s *stubContactService) ListMessages(ctx context.Context) ([]models.ContactMessage, error) {
	return s.messages, nil
}

func (s *stubContactService) DeleteMessage(ctx context.Context, id string) error {
	return nil
}

func postContact(t *testing.T, h *ContactHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.RemoteAddr = "10.0.0.1:1234"
	rec := httptest.NewRecorder()
	h.Submit(rec, req)
	return rec
}

func TestSubmitSuccess(t *testing.T) {
	svc := &stubContactService{}
	h := NewContactHandler(svc, nil)

	rec := postContact(t, h, `{"name":"Ada","email":"ada@example.com","message":"merhaba"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp pkg.APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success {
		t.Fatal("success should be true")
	}
	data, _ := resp.Data.(map[string]any)
	if data["message"] != "Message sent successfully" {
		t.Fatalf("data = %v", resp.Data)
	}
	if len(svc.submitted) != 1 {
		t.Fatalf("service called %d times", len(svc.submitted))
	}
}

// 400 hata mesajları frontend'de aynen gösterilir — prefix'siz birebir kontrol.
func TestSubmitValidationErrorBody(t *testing.T) {
	svc := &stubContactService{}
	h := NewContactHandler(svc, nil)

	rec := postContact(t, h, `{"name":"Ada","email":"bozuk","message":"merhaba"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp pkg.APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Error != "Invalid email format" {
		t.Fatalf("error = %q, want %q", resp.Error, "Invalid email format")
	}
	if len(svc.submitted) != 0 {
		t.Fatal("invalid request should not reach the service")
	}
}

func TestSubmitMalformedJSON(t *testing.T) {
	h := NewContactHandler(&stubContactService{}, nil)

	rec := postContact(t, h, `{not json`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestSubmitRateLimited(t *testing.T) {
	limiter := ratelimit.New(2, time.Minute)
	defer limiter.Close()
	h := NewContactHandler(&stubContactService{}, limiter)

	body := `{"name":"Ada","email":"ada@example.com","message":"m"}`
	for i := 0; i < 2; i++ {
		if rec := postContact(t, h, body); rec.Code != http.StatusOK {
			t.Fatalf("request %d status = %d", i+1, rec.Code)
		}
	}

	rec := postContact(t, h, body)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Fatal("Retry-After header missing")
	}
}

func TestSubmitDeliveryFailure(t *testing.T) {
	svc := &stubContactService{submitErr: pkg.ErrInternal}
	h := NewContactHandler(svc, nil)

	rec := postContact(t, h, `{"name":"Ada","email":"ada@example.com","message":"m"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}

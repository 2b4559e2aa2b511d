package models

import "testing"

// Hata mesajları frontend'de aynen gösterilir — birebir kontrol ediyoruz.
func TestContactRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     ContactRequest
		wantErr string
	}{
		{
			name:    "empty name",
			req:     ContactRequest{Email: "a@b.co", Message: "hi"},
			wantErr: "Name is required",
		},
		{
			name:    "whitespace name",
			req:     ContactRequest{Name: "   ", Email: "a@b.co", Message: "hi"},
			wantErr: "Name is required",
		},
		{
			name:    "empty email",
			req:     ContactRequest{Name: "Ada", Message: "hi"},
			wantErr: "Email is required",
		},
		{
			name:    "malformed email",
			req:     ContactRequest{Name: "Ada", Email: "not-an-email", Message: "hi"},
			wantErr: "Invalid email format",
		},
		{
			name:    "email without tld",
			req:     ContactRequest{Name: "Ada", Email: "a@b", Message: "hi"},
			wantErr: "Invalid email format",
		},
		{
			name:    "empty message",
			req:     ContactRequest{Name: "Ada", Email: "a@b.co"},
			wantErr: "Message is required",
		},
		{
			name: "valid",
			req:  ContactRequest{Name: "Ada", Email: "ada@example.com", Message: "hello"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("expected no error, got %q", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error %q, got nil", tt.wantErr)
			}
			if err.Error() != tt.wantErr {
				t.Fatalf("expected error %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}

func TestContactRequestValidateTrimsFields(t *testing.T) {
	req := ContactRequest{Name: "  Ada ", Email: " ada@example.com ", Message: " hello "}
	if err := req.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Name != "Ada" || req.Email != "ada@example.com" || req.Message != "hello" {
		t.Fatalf("fields not trimmed: %+v", req)
	}
}

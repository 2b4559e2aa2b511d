package models

import "testing"

func TestReorderRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		items   []OrderUpdate
		wantErr bool
	}{
		{"empty", nil, true},
		{"missing id", []OrderUpdate{{ID: "", OrderIndex: 0}}, true},
		{"duplicate id", []OrderUpdate{{ID: "a", OrderIndex: 0}, {ID: "a", OrderIndex: 1}}, true},
		{"valid", []OrderUpdate{{ID: "a", OrderIndex: 1}, {ID: "b", OrderIndex: 0}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := ReorderRequest{Items: tt.items}
			err := req.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

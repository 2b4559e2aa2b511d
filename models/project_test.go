package models

import (
	"encoding/json"
	"reflect"
	"testing"
)

// Admin formu technologies'i bazen dizi, bazen virgüllü string gönderir —
// iki biçim de aynı sonucu vermeli.
func TestTechnologiesListUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"array", `["Go","React","SQLite"]`, []string{"Go", "React", "SQLite"}},
		{"comma string", `"Go, React, SQLite"`, []string{"Go", "React", "SQLite"}},
		{"string with empty segments", `"Go,, React ,"`, []string{"Go", "React"}},
		{"array with whitespace", `[" Go ","", "React"]`, []string{"Go", "React"}},
		{"null", `null`, nil},
		{"empty array", `[]`, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got TechnologiesList
			if err := json.Unmarshal([]byte(tt.input), &got); err != nil {
				t.Fatalf("unmarshal %s: %v", tt.input, err)
			}
			if !reflect.DeepEqual([]string(got), tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTechnologiesListInsideRequest(t *testing.T) {
	body := `{"title":"Vitrin","technologies":"Go, React","featured":true}`
	var req CreateProjectRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual([]string(req.Technologies), []string{"Go", "React"}) {
		t.Fatalf("technologies = %v", req.Technologies)
	}
	if !req.Featured {
		t.Fatal("featured should be true")
	}
}

func TestCreateProjectRequestValidate(t *testing.T) {
	req := CreateProjectRequest{Title: "  "}
	if err := req.Validate(); err == nil {
		t.Fatal("expected error for blank title")
	}

	req = CreateProjectRequest{Title: " Vitrin "}
	if err := req.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Title != "Vitrin" {
		t.Fatalf("title not trimmed: %q", req.Title)
	}
}

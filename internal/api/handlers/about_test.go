package handlers

import (
	"delivery-time-service/internal/api/dto"
	"net/http"
	"os"
	"path/filepath"
	"testing"
)

func TestAboutHandler(t *testing.T) {
	h := &AboutHandler{Introduction: NewIntroduction(dto.ModelInfo{Source: "stub"})}

	if rec := serve(h.About, http.MethodGet, "/about"); rec.Code != http.StatusNotFound {
		t.Fatalf("no profile: status = %d, want 404", rec.Code)
	}

	path := filepath.Join(t.TempDir(), "profile.json")
	if err := os.WriteFile(path, []byte(`{"name": "Jordan Doe", "headline": "Data Analyst"}`), 0o600); err != nil {
		t.Fatalf("write profile: %v", err)
	}
	p, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}
	h.Profile = p

	rec := serve(h.About, http.MethodGet, "/about")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := decode[dto.Profile](t, rec); got.Name != "Jordan Doe" {
		t.Fatalf("profile = %+v", got)
	}

	intro := decode[dto.IntroductionResponse](t, serve(h.Intro, http.MethodGet, "/introduction"))
	if len(intro.Features) != 7 || intro.Model.Source != "stub" {
		t.Fatalf("introduction = %+v", intro)
	}
}

func TestLoadProfileRequiresName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	if err := os.WriteFile(path, []byte(`{"headline": "x"}`), 0o600); err != nil {
		t.Fatalf("write profile: %v", err)
	}
	if _, err := LoadProfile(path); err == nil {
		t.Fatalf("accepted profile without name")
	}
}

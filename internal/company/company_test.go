package company

import "testing"

func TestInferName(t *testing.T) {
	tests := []struct {
		website string
		want    string
	}{
		{"https://www.acme-labs.com/about", "Acme Labs"},
		{"https://acme.com", "Acme"},
		{"acme.com", "Acme"},
		{"http://www.globex.io", "Globex"},
		{"https://stark_industries.dev", "Stark Industries"},
		{"WWW.ACME.COM", "Acme"},
		{"https://acme.co.uk", "Acme"},
	}

	for _, tt := range tests {
		if got := InferName(tt.website); got != tt.want {
			t.Errorf("InferName(%q) = %q, want %q", tt.website, got, tt.want)
		}
	}
}

func TestInferName_Unparseable(t *testing.T) {
	// Unparseable input falls back to the raw string
	if got := InferName(""); got != "" {
		t.Errorf("InferName(\"\") = %q, want empty", got)
	}
}

func TestInferDescription(t *testing.T) {
	got := InferDescription("https://www.acme.com", "Acme")
	want := "Acme, the company behind acme.com"
	if got != want {
		t.Errorf("InferDescription = %q, want %q", got, want)
	}
}

func TestDerive(t *testing.T) {
	p := Derive("acme.com")

	if p.Website != "acme.com" {
		t.Errorf("Expected raw website preserved, got %q", p.Website)
	}
	if p.Name != "Acme" {
		t.Errorf("Expected name Acme, got %q", p.Name)
	}
	if p.Description != "Acme, the company behind acme.com" {
		t.Errorf("Unexpected description: %q", p.Description)
	}
}

func TestDerive_SameInputSameProfile(t *testing.T) {
	// Derivation is pure: identical input must produce an identical triple
	if Derive("acme.com") != Derive("acme.com") {
		t.Error("Expected Derive to be deterministic")
	}
}

package engine

import (
	"errors"
	"strings"
	"testing"
)

func testPitchRequest() PitchRequest {
	return PitchRequest{
		DisplayName:           "Maya Chen",
		Platform:              "instagram",
		Niche:                 "fitness",
		Followers:             50000,
		EngagementRatePercent: 3.5,
		Rates:                 RateEstimate{MinRate: 460, MaxRate: 748},
	}
}

func TestPitchComposer_Compose(t *testing.T) {
	composer, err := NewPitchComposer()
	if err != nil {
		t.Fatalf("NewPitchComposer() error: %v", err)
	}

	out, err := composer.Compose(testPitchRequest())
	if err != nil {
		t.Fatalf("Compose() error: %v", err)
	}

	for _, want := range []string{
		"Hi there,",
		"I'm Maya Chen",
		"Fitness creator on Instagram",
		"50.0K followers",
		"3.5%",
		"$460-$748",
		"Best,\nMaya Chen",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Compose() output missing %q\n---\n%s", want, out)
		}
	}
	if strings.Contains(out, "rate card") {
		t.Errorf("rate card line should be absent without a URL\n---\n%s", out)
	}
}

func TestPitchComposer_BrandNameAndRateCard(t *testing.T) {
	composer, err := NewPitchComposer()
	if err != nil {
		t.Fatalf("NewPitchComposer() error: %v", err)
	}

	req := testPitchRequest()
	req.BrandName = "Acme Outdoor"
	req.RateCardURL = "https://creatorhub.example.com/r/maya"

	out, err := composer.Compose(req)
	if err != nil {
		t.Fatalf("Compose() error: %v", err)
	}
	if !strings.Contains(out, "Hi Acme Outdoor,") {
		t.Errorf("expected brand greeting, got:\n%s", out)
	}
	if !strings.Contains(out, "rate card here: https://creatorhub.example.com/r/maya") {
		t.Errorf("expected rate card line, got:\n%s", out)
	}
}

func TestPitchComposer_MissingFields(t *testing.T) {
	composer, err := NewPitchComposer()
	if err != nil {
		t.Fatalf("NewPitchComposer() error: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*PitchRequest)
	}{
		{"no display name", func(r *PitchRequest) { r.DisplayName = "" }},
		{"no platform", func(r *PitchRequest) { r.Platform = "" }},
		{"no niche", func(r *PitchRequest) { r.Niche = "" }},
		{"no followers", func(r *PitchRequest) { r.Followers = 0 }},
		{"negative engagement", func(r *PitchRequest) { r.EngagementRatePercent = -1 }},
		{"no rates", func(r *PitchRequest) { r.Rates = RateEstimate{} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testPitchRequest()
			tt.mutate(&req)
			_, err := composer.Compose(req)
			if !errors.Is(err, ErrMissingTemplateField) {
				t.Errorf("Compose() error = %v, want ErrMissingTemplateField", err)
			}
		})
	}
}

func TestFormatFollowerCount(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{1500000, "1.5M"},
		{1000000, "1.0M"},
		{50000, "50.0K"},
		{1000, "1.0K"},
		{999, "999"},
		{0, "0"},
		{2750000, "2.8M"},
	}
	for _, tt := range tests {
		if got := FormatFollowerCount(tt.n); got != tt.want {
			t.Errorf("FormatFollowerCount(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "$0"},
		{460, "$460"},
		{6084, "$6,084"},
		{1234567, "$1,234,567"},
	}
	for _, tt := range tests {
		if got := FormatMoney(tt.n); got != tt.want {
			t.Errorf("FormatMoney(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

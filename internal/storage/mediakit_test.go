package storage

import (
	"bytes"
	"image"
	"image/jpeg"
	"strings"
	"testing"
)

func TestResize(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 600, 400))

	data, err := resize(src, 300)
	if err != nil {
		t.Fatalf("resize() error = %v", err)
	}

	got, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode thumbnail: %v", err)
	}
	bounds := got.Bounds()
	if bounds.Dx() != 300 || bounds.Dy() != 200 {
		t.Errorf("thumbnail = %dx%d, want 300x200", bounds.Dx(), bounds.Dy())
	}
}

func TestResize_SmallImageKeptAsIs(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 100, 80))

	data, err := resize(src, 300)
	if err != nil {
		t.Fatalf("resize() error = %v", err)
	}
	got, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Bounds().Dx() != 100 {
		t.Errorf("width = %d, want 100 (no upscaling)", got.Bounds().Dx())
	}
}

func TestBuildKey(t *testing.T) {
	key := buildKey("user-1", "My Rate Card (v2).pdf", ".pdf")

	if !strings.HasPrefix(key, "mediakits/user-1/my-rate-card-") {
		t.Errorf("key = %q", key)
	}
	if !strings.HasSuffix(key, ".pdf") {
		t.Errorf("key = %q, want .pdf suffix", key)
	}

	other := buildKey("user-1", "My Rate Card (v2).pdf", ".pdf")
	if key == other {
		t.Error("keys should be unique per upload")
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Media Kit 2026", "media-kit-2026"},
		{"rate_card-final", "rate_card-final"},
		{"!!!", ""},
	}
	for _, tt := range tests {
		if got := sanitize(tt.in); got != tt.want {
			t.Errorf("sanitize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

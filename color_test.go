package rectfit

import (
	"image/color"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Color
		wantErr bool
	}{
		{"six digits", "#ff8000", Color{255, 128, 0, 255}, false},
		{"no hash", "00ff00", Color{0, 255, 0, 255}, false},
		{"three digits", "#fff", White, false},
		{"padded", "  #000000 ", Black, false},
		{"garbage", "#zzzzzz", Color{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestColorHex(t *testing.T) {
	c := Color{R: 0x12, G: 0xab, B: 0x00, A: 7}
	if got := c.Hex(); got != "#12ab00" {
		t.Errorf("Hex() = %q, want %q", got, "#12ab00")
	}
}

func TestColorFromStd(t *testing.T) {
	got := colorFromStd(color.RGBA{R: 128, G: 0, B: 0, A: 128})
	if got.A != 128 || got.R != 255 {
		t.Errorf("colorFromStd(premultiplied half red) = %v, want R=255 A=128", got)
	}
}

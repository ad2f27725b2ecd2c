package blend

import "testing"

// TestDiv255Exact checks div255 against rounded integer division for every
// product of two bytes.
func TestDiv255Exact(t *testing.T) {
	for x := uint32(0); x <= 255*255; x++ {
		want := (x + 127) / 255
		if got := div255(x); got != want {
			t.Fatalf("div255(%d) = %d, want %d", x, got, want)
		}
	}
}

func TestClamp255(t *testing.T) {
	tests := []struct {
		in   uint32
		want byte
	}{
		{0, 0},
		{128, 128},
		{255, 255},
		{256, 255},
		{1 << 20, 255},
	}
	for _, tt := range tests {
		if got := clamp255(tt.in); got != tt.want {
			t.Errorf("clamp255(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

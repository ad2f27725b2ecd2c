package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/rectfit"
	"github.com/gogpu/rectfit/internal/imageio"
)

func TestParseFlags(t *testing.T) {
	o, err := parseFlags([]string{"-in", "x.png", "-steps", "7", "-climb", "0", "-background", "#000000", "-svg"})
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}
	if o.cfg.Steps != 7 || o.cfg.ClimbSteps != 0 || !o.svg {
		t.Errorf("parseFlags() = %+v", o)
	}
	if o.cfg.Background != rectfit.Black {
		t.Errorf("background = %v, want black", o.cfg.Background)
	}
}

func TestParseFlagsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing input", []string{"-steps", "3"}},
		{"bad background", []string{"-in", "x.png", "-background", "nope"}},
		{"alpha range", []string{"-in", "x.png", "-alpha-min", "200", "-alpha-max", "100"}},
		{"negative climb", []string{"-in", "x.png", "-climb", "-1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseFlags(tt.args); err == nil {
				t.Errorf("parseFlags(%v) should fail", tt.args)
			}
		})
	}
}

func TestParseFlagsRangeErrorIsConfigError(t *testing.T) {
	_, err := parseFlags([]string{"-in", "x.png", "-alpha-max", "300"})
	if !errors.Is(err, rectfit.ErrInvalidConfig) {
		t.Errorf("parseFlags() error = %v, want ErrInvalidConfig", err)
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "target.png")
	target := rectfit.NewPixmapFilled(24, 16, rectfit.Color{R: 20, G: 140, B: 60, A: 255})
	if err := imageio.Save(target, in); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "out")
	o, err := parseFlags([]string{"-in", in, "-out", out, "-steps", "5", "-climb", "20", "-svg", "-plot", "-caption"})
	if err != nil {
		t.Fatal(err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if err := run(context.Background(), o, logger); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	for _, name := range []string{"final.png", "shapes.svg", "history.png", "frame-00000.png"} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("missing output %s: %v", name, err)
		}
	}
}

// Command rectfit approximates an image with translucent rectangles.
//
// Usage:
//
//	rectfit -in photo.jpg -out frames -steps 2000 -size 200 -svg -plot
//
// Every accepted step is written as a numbered PNG into the output
// directory, next to final.png. Interrupting the command stops the search
// after the current step and still writes the final outputs.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/gogpu/rectfit"
	"github.com/gogpu/rectfit/internal/export"
	"github.com/gogpu/rectfit/internal/imageio"
	"github.com/gogpu/rectfit/internal/report"
)

type options struct {
	in         string
	out        string
	size       int
	background string
	workers    int
	svg        bool
	plot       bool
	caption    bool
	verbose    bool
	cfg        rectfit.Config
}

func parseFlags(args []string) (*options, error) {
	def := rectfit.DefaultConfig()
	o := &options{}

	fs := flag.NewFlagSet("rectfit", flag.ContinueOnError)
	fs.StringVar(&o.in, "in", "", "target image (png, jpeg, gif, bmp, tiff, webp)")
	fs.StringVar(&o.out, "out", "out", "output directory")
	fs.IntVar(&o.size, "size", 256, "downscale the target so its longer side is at most this (0 keeps it)")
	fs.StringVar(&o.background, "background", def.Background.Hex(), "initial canvas color")
	fs.IntVar(&o.workers, "workers", 1, "goroutines used to sum distances")
	fs.BoolVar(&o.svg, "svg", false, "also write shapes.svg")
	fs.BoolVar(&o.plot, "plot", false, "also write history.png")
	fs.BoolVar(&o.caption, "caption", false, "draw the step number on snapshots")
	fs.BoolVar(&o.verbose, "v", false, "debug logging")

	fs.IntVar(&o.cfg.Steps, "steps", def.Steps, "outer steps")
	fs.IntVar(&o.cfg.ClimbSteps, "climb", def.ClimbSteps, "hill-climbing trials per phase")
	fs.IntVar(&o.cfg.ColorMaxChange, "color-change", def.ColorMaxChange, "max color delta per mutation")
	fs.IntVar(&o.cfg.PositionMaxChange, "position-change", def.PositionMaxChange, "max coordinate delta per mutation")
	fs.IntVar(&o.cfg.AlphaMin, "alpha-min", def.AlphaMin, "minimum shape alpha")
	fs.IntVar(&o.cfg.AlphaMax, "alpha-max", def.AlphaMax, "maximum shape alpha")
	fs.Uint64Var(&o.cfg.Seed, "seed", def.Seed, "random seed")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if o.in == "" {
		return nil, errors.New("missing -in")
	}

	bg, err := rectfit.ParseHex(o.background)
	if err != nil {
		return nil, err
	}
	o.cfg.Background = bg

	return o, o.cfg.Validate()
}

func main() {
	o, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "rectfit:", err)
		os.Exit(2)
	}

	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	rectfit.SetLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, o, logger); err != nil {
		logger.Error("rectfit failed", "err", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, o *options, logger *slog.Logger) error {
	src, err := imageio.Load(o.in)
	if err != nil {
		return err
	}
	target, err := imageio.Fit(src, o.size)
	if err != nil {
		return err
	}
	logger.Info("target loaded",
		"path", o.in,
		"source", fmt.Sprintf("%dx%d", src.Width(), src.Height()),
		"working", fmt.Sprintf("%dx%d", target.Width(), target.Height()))

	frames, err := imageio.NewSnapshotWriter(o.out, imageio.WithCaption(o.caption))
	if err != nil {
		return err
	}

	initial, err := rectfit.SquaredError(rectfit.NewPixmapFilled(target.Width(), target.Height(), o.cfg.Background), target)
	if err != nil {
		return err
	}
	history := report.NewHistory(initial)
	logs := report.NewLogReporter(logger, target.Width()*target.Height())

	s, err := rectfit.NewSearch(target, o.cfg,
		rectfit.WithSnapshotWriter(frames),
		rectfit.WithReporter(report.Multi{logs, history}),
		rectfit.WithRendererOptions(rectfit.WithWorkers(o.workers)),
	)
	if err != nil {
		return err
	}
	defer s.Close()

	res, err := s.Run(ctx)
	switch {
	case errors.Is(err, context.Canceled):
		logger.Warn("search interrupted, writing partial result", "steps", res.Steps)
	case err != nil:
		return err
	}

	return writeOutputs(o, res, history, logger)
}

func writeOutputs(o *options, res *rectfit.Result, history *report.History, logger *slog.Logger) error {
	final := filepath.Join(o.out, "final.png")
	if err := imageio.Save(res.Image, final); err != nil {
		return err
	}

	if o.svg {
		path := filepath.Join(o.out, "shapes.svg")
		if err := export.SaveSVG(path, res.Image.Width(), res.Image.Height(), o.cfg.Background, res.Shapes); err != nil {
			return err
		}
	}

	if o.plot {
		path := filepath.Join(o.out, "history.png")
		if err := history.Plot(filepath.Base(o.in), path); err != nil {
			logger.Warn("history plot failed", "err", err)
		}
	}

	logger.Info("done",
		"steps", res.Steps,
		"accepted", res.Accepted,
		"initial", uint64(res.InitialDistance),
		"final", uint64(res.Distance),
		"snapshot_errors", res.SnapshotErrors,
		"output", final)
	return nil
}

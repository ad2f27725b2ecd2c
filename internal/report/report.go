// Package report turns search steps into progress logs and charts.
package report

import (
	"log/slog"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/rectfit"
)

// LogReporter writes one log record per step. Accepted steps are logged
// at Info, rejected steps at Debug.
type LogReporter struct {
	log     *slog.Logger
	printer *message.Printer
	pixels  int
}

// NewLogReporter returns a reporter logging to l (rectfit.Logger() when
// nil). pixels is the canvas pixel count used for the RMSE attribute.
func NewLogReporter(l *slog.Logger, pixels int) *LogReporter {
	if l == nil {
		l = rectfit.Logger()
	}
	return &LogReporter{
		log:     l,
		printer: message.NewPrinter(language.English),
		pixels:  pixels,
	}
}

// Report implements rectfit.Reporter.
func (r *LogReporter) Report(s rectfit.StepReport) {
	if !s.Accepted {
		r.log.Debug("step rejected",
			"step", s.Step,
			"distance", r.Format(s.Before))
		return
	}
	r.log.Info("step accepted",
		"step", s.Step,
		"before", r.Format(s.Before),
		"delta", r.Format(s.Delta),
		"after", r.Format(s.After),
		"rmse", r.printer.Sprintf("%.2f", s.After.RMSE(r.pixels)))
}

// Format renders d with English digit grouping, e.g. "1,234,567".
func (r *LogReporter) Format(d rectfit.Distance) string {
	return r.printer.Sprintf("%d", uint64(d))
}

// Multi fans a step out to several reporters in order.
type Multi []rectfit.Reporter

// Report implements rectfit.Reporter.
func (m Multi) Report(s rectfit.StepReport) {
	for _, r := range m {
		if r != nil {
			r.Report(s)
		}
	}
}

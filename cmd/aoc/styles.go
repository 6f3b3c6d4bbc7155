package main

import (
	"github.com/fatih/color"
)

// styles holds the color formatters of the answer output.
type styles struct {
	puzzle *color.Color
	answer *color.Color
	sample *color.Color
	failed *color.Color
	dim    *color.Color
}

// newStyles creates the formatters; enabled=false for --no-color.
func newStyles(enabled bool) *styles {
	s := &styles{
		puzzle: color.New(color.Bold),
		answer: color.New(color.Bold, color.FgHiGreen),
		sample: color.New(color.FgYellow),
		failed: color.New(color.Bold, color.FgRed),
		dim:    color.New(color.FgHiBlack),
	}
	if !enabled {
		s.puzzle.DisableColor()
		s.answer.DisableColor()
		s.sample.DisableColor()
		s.failed.DisableColor()
		s.dim.DisableColor()
	}
	return s
}

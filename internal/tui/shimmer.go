package tui

import (
	"fmt"
	"math"
	"os"
	"strings"
)

// Shimmer sweeps a highlight across a line of text, one step per animation
// tick, pausing between sweeps.
type Shimmer struct {
	center     float64
	widthRatio float64
	step       float64
	pauseTicks int
	paused     int
	trueColor  bool
}

// NewShimmer returns a shimmer that crosses its text in about cycleTicks
// ticks and rests pauseTicks ticks between sweeps.
func NewShimmer(cycleTicks, pauseTicks int) *Shimmer {
	if cycleTicks < 1 {
		cycleTicks = 1
	}
	return &Shimmer{
		widthRatio: 0.25,
		step:       1 / float64(cycleTicks),
		pauseTicks: pauseTicks,
		trueColor:  os.Getenv("COLORTERM") == "truecolor" || os.Getenv("COLORTERM") == "24bit",
	}
}

// Advance moves the highlight one tick.
func (s *Shimmer) Advance() {
	if s.paused > 0 {
		s.paused--
		if s.paused == 0 {
			s.center = 0
		}
		return
	}
	s.center += s.step
	if s.center >= 1 {
		s.paused = max(1, s.pauseTicks)
	}
}

// Render returns text with the highlight at its current position. center
// runs over [0,1] of the sweep, which starts before and ends after the text.
func (s *Shimmer) Render(text string) string {
	runes := []rune(text)
	n := len(runes)
	if n == 0 {
		return ""
	}
	margin := float64(n) * s.widthRatio
	pos := -margin + s.center*(float64(n)+2*margin)
	if s.paused > 0 {
		pos = math.Inf(1)
	}
	sigma := math.Max(1, s.widthRatio*float64(n)/2)

	var b strings.Builder
	for i, r := range runes {
		dx := float64(i) - pos
		w := math.Exp(-(dx * dx) / (2 * sigma * sigma))
		if s.trueColor {
			// #B1B8C7 blended toward #EAE6FF
			red := int(177 + (234-177)*w)
			green := int(184 + (230-184)*w)
			blue := int(199 + (255-199)*w)
			fmt.Fprintf(&b, "\033[38;2;%d;%d;%dm%c", red, green, blue, r)
			continue
		}
		color := 250
		if w > 0.5 {
			color = 147
		}
		fmt.Fprintf(&b, "\033[38;5;%dm%c", color, r)
	}
	b.WriteString("\033[0m")
	return b.String()
}

package handler

import (
	"math"

	"sastarapido/internal/pricing"
)

// chartBar is one horizontal waterfall bar. Left and Width are percentages
// of the chart width.
type chartBar struct {
	Label string
	Text  string
	Class string
	Left  float64
	Width float64
}

type span struct{ start, end float64 }

// chartBars positions waterfall steps on a shared horizontal scale.
func chartBars(steps []pricing.Step, symbol string) []chartBar {
	spans := make([]span, len(steps))
	lo, hi := 0.0, 0.0
	running := 0.0
	for i, s := range steps {
		var sp span
		switch s.Kind {
		case pricing.StepRelative:
			sp = span{start: running, end: running + s.Amount}
			running = sp.end
		default:
			sp = span{start: 0, end: s.Amount}
			running = s.Amount
		}
		spans[i] = sp
		lo = math.Min(lo, math.Min(sp.start, sp.end))
		hi = math.Max(hi, math.Max(sp.start, sp.end))
	}

	scale := hi - lo
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		scale = 1
	}

	bars := make([]chartBar, len(steps))
	for i, s := range steps {
		sp := spans[i]
		bars[i] = chartBar{
			Label: s.Label,
			Text:  stepText(s, symbol),
			Class: stepClass(s),
			Left:  (math.Min(sp.start, sp.end) - lo) / scale * 100,
			Width: math.Abs(sp.end-sp.start) / scale * 100,
		}
	}
	return bars
}

func stepClass(s pricing.Step) string {
	switch {
	case s.Kind == pricing.StepTotal:
		return "total"
	case s.Amount < 0:
		return "decrease"
	default:
		return "increase"
	}
}

func stepText(s pricing.Step, symbol string) string {
	if s.Kind != pricing.StepRelative {
		return symbol + money(s.Amount)
	}
	if s.Amount < 0 {
		return "-" + symbol + money(-s.Amount)
	}
	return "+" + symbol + money(s.Amount)
}

package tween

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/tanema/gween/ease"
)

// DefaultEase is used when no curve is given or a curve name is unknown.
var DefaultEase ease.TweenFunc = ease.OutQuad

const defaultOvershoot = 1.70158

type easeFamily struct {
	in, out, inOut ease.TweenFunc
}

// Curve families keyed by their common names. powerN follows the usual
// convention of power1 = quad through power4 = quint.
var families = map[string]easeFamily{
	"power0": {ease.Linear, ease.Linear, ease.Linear},
	"power1": {ease.InQuad, ease.OutQuad, ease.InOutQuad},
	"power2": {ease.InCubic, ease.OutCubic, ease.InOutCubic},
	"power3": {ease.InQuart, ease.OutQuart, ease.InOutQuart},
	"power4": {ease.InQuint, ease.OutQuint, ease.InOutQuint},
	"quad":   {ease.InQuad, ease.OutQuad, ease.InOutQuad},
	"cubic":  {ease.InCubic, ease.OutCubic, ease.InOutCubic},
	"sine":   {ease.InSine, ease.OutSine, ease.InOutSine},
	"expo":   {ease.InExpo, ease.OutExpo, ease.InOutExpo},
	"circ":   {ease.InCirc, ease.OutCirc, ease.InOutCirc},
	"bounce": {ease.InBounce, ease.OutBounce, ease.InOutBounce},
}

// ParseEase resolves a curve name such as "power1.out", "sine.inOut",
// "back.out(0.7)" or "none". A family without a variant means ".out".
func ParseEase(name string) (ease.TweenFunc, error) {
	curve := strings.TrimSpace(name)
	if curve == "" {
		return DefaultEase, nil
	}

	var param string
	hasParam := false
	if open := strings.IndexByte(curve, '('); open >= 0 {
		if !strings.HasSuffix(curve, ")") {
			return nil, fmt.Errorf("ease %q: unterminated parameter", name)
		}
		param = curve[open+1 : len(curve)-1]
		curve = curve[:open]
		hasParam = true
	}

	family, variant, found := strings.Cut(curve, ".")
	if !found {
		variant = "out"
	}

	if family == "none" || family == "linear" {
		return ease.Linear, nil
	}

	if family == "back" {
		overshoot := defaultOvershoot
		if hasParam {
			v, err := strconv.ParseFloat(strings.TrimSpace(param), 64)
			if err != nil {
				return nil, fmt.Errorf("ease %q: bad overshoot: %w", name, err)
			}
			overshoot = v
		}
		switch variant {
		case "in":
			return BackIn(overshoot), nil
		case "out":
			return BackOut(overshoot), nil
		case "inOut":
			return BackInOut(overshoot), nil
		}
		return nil, fmt.Errorf("ease %q: unknown variant %q", name, variant)
	}

	if hasParam {
		return nil, fmt.Errorf("ease %q: %s takes no parameter", name, family)
	}

	f, ok := families[family]
	if !ok {
		return nil, fmt.Errorf("ease %q: unknown curve %q", name, family)
	}
	switch variant {
	case "in":
		return f.in, nil
	case "out":
		return f.out, nil
	case "inOut":
		return f.inOut, nil
	}
	return nil, fmt.Errorf("ease %q: unknown variant %q", name, variant)
}

// ResolveEase is ParseEase that logs and falls back to DefaultEase.
func ResolveEase(name string) ease.TweenFunc {
	fn, err := ParseEase(name)
	if err != nil {
		log.Printf("[tween] %v, using default curve", err)
		return DefaultEase
	}
	return fn
}

// BackIn pulls back by the overshoot amount before moving toward the target.
func BackIn(s float64) ease.TweenFunc {
	s32 := float32(s)
	return func(t, b, c, d float32) float32 {
		t /= d
		return c*t*t*((s32+1)*t-s32) + b
	}
}

// BackOut passes the target by the overshoot amount and settles back.
func BackOut(s float64) ease.TweenFunc {
	s32 := float32(s)
	return func(t, b, c, d float32) float32 {
		t = t/d - 1
		return c*(t*t*((s32+1)*t+s32)+1) + b
	}
}

// BackInOut combines BackIn and BackOut around the midpoint.
func BackInOut(s float64) ease.TweenFunc {
	s32 := float32(s) * 1.525
	return func(t, b, c, d float32) float32 {
		t /= d / 2
		if t < 1 {
			return c/2*(t*t*((s32+1)*t-s32)) + b
		}
		t -= 2
		return c/2*(t*t*((s32+1)*t+s32)+2) + b
	}
}

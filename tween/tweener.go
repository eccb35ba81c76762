// Package tween animates the visual properties of a single element.
//
// A Tweener owns the current value of each Prop and at most one track per
// Prop. Starting a new tween on a property replaces whatever track was
// running or waiting on it, so the most recent request always wins.
package tween

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Prop identifies an animatable property
type Prop int

const (
	X Prop = iota
	Y
	Rotation // degrees
	Scale
	Opacity
	PropCount // Must be last - used for array sizing
)

func (p Prop) String() string {
	switch p {
	case X:
		return "x"
	case Y:
		return "y"
	case Rotation:
		return "rotation"
	case Scale:
		return "scale"
	case Opacity:
		return "opacity"
	default:
		return "unknown"
	}
}

// Props maps properties to target values
type Props map[Prop]float64

// Values is a snapshot of every property
type Values [PropCount]float64

// Options describes how To animates its properties
type Options struct {
	Duration   float64 // seconds
	Delay      float64 // seconds before the tween starts
	Ease       ease.TweenFunc
	OnComplete func()
}

// group ties the tracks created by one To call to its completion callback.
type group struct {
	pending     int
	interrupted bool
	onComplete  func()
}

type track struct {
	target   float32
	duration float32
	delay    float32
	easing   ease.TweenFunc
	tw       *gween.Tween
	group    *group
}

// Tweener holds the animated state of one element
type Tweener struct {
	values Values
	tracks [PropCount]*track
}

// NewTweener returns a Tweener at the given starting values
func NewTweener(initial Values) *Tweener {
	return &Tweener{values: initial}
}

// Get returns the current value of p
func (t *Tweener) Get(p Prop) float64 {
	return t.values[p]
}

// Values returns a copy of all current values
func (t *Tweener) Values() Values {
	return t.values
}

// Active reports whether any track is running or waiting on its delay
func (t *Tweener) Active() bool {
	for _, tr := range t.tracks {
		if tr != nil {
			return true
		}
	}
	return false
}

// Set assigns props immediately, cancelling any tracks on them.
func (t *Tweener) Set(props Props) {
	for p, v := range props {
		if !valid(p) {
			continue
		}
		t.cancel(p)
		t.values[p] = v
	}
}

// To animates props toward their targets. Each property starts from its
// value at the moment the delay elapses.
func (t *Tweener) To(props Props, opts Options) {
	fn := opts.Ease
	if fn == nil {
		fn = DefaultEase
	}
	g := &group{onComplete: opts.OnComplete}
	for p, v := range props {
		if !valid(p) {
			continue
		}
		t.cancel(p)
		t.tracks[p] = &track{
			target:   float32(v),
			duration: float32(opts.Duration),
			delay:    float32(opts.Delay),
			easing:   fn,
			group:    g,
		}
		g.pending++
	}
}

// Update advances every track by dt seconds.
func (t *Tweener) Update(dt float32) {
	for p := range t.tracks {
		tr := t.tracks[p]
		if tr == nil {
			continue
		}

		step := dt
		if tr.tw == nil {
			tr.delay -= dt
			if tr.delay > 0 {
				continue
			}
			// Carry the part of dt that overran the delay into the tween.
			step = -tr.delay
			if tr.duration <= 0 {
				t.values[p] = float64(tr.target)
				t.finish(Prop(p))
				continue
			}
			tr.tw = gween.New(float32(t.values[p]), tr.target, tr.duration, tr.easing)
		}

		v, done := tr.tw.Update(step)
		t.values[p] = float64(v)
		if done {
			t.values[p] = float64(tr.target)
			t.finish(Prop(p))
		}
	}
}

func (t *Tweener) finish(p Prop) {
	tr := t.tracks[p]
	t.tracks[p] = nil
	tr.group.pending--
	if tr.group.pending == 0 && !tr.group.interrupted && tr.group.onComplete != nil {
		tr.group.onComplete()
	}
}

func (t *Tweener) cancel(p Prop) {
	tr := t.tracks[p]
	if tr == nil {
		return
	}
	t.tracks[p] = nil
	tr.group.pending--
	tr.group.interrupted = true
}

func valid(p Prop) bool {
	return p >= 0 && p < PropCount
}

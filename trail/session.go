// Package trail drives a stack of images that follows the pointer, reshuffles
// its stacking order while the pointer moves, falls off the bottom of the
// viewport when the pointer goes idle and comes back on the next movement.
//
// A Session is not safe for concurrent use. The pointer handler and the frame
// tick are expected to run on the same goroutine, as they do in an ebiten
// Update.
package trail

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/automoto/trailstack/tween"
	"github.com/tanema/gween/ease"
)

// State is the drop/recall state of the trail
type State int

const (
	Active  State = iota // Images follow the pointer
	Dropped              // Images fell offscreen and are invisible
)

func (s State) String() string {
	switch s {
	case Active:
		return "active"
	case Dropped:
		return "dropped"
	default:
		return "unknown"
	}
}

// Animator is the animation engine the session drives. Images are addressed
// by their ordinal index in [0, Count()).
type Animator interface {
	Count() int
	SetZIndex(index, z int)
	Set(index int, props tween.Props)
	To(index int, props tween.Props, opts tween.Options)
}

// Stats counts transitions over the session lifetime
type Stats struct {
	Moves      int
	Reshuffles int
	Drops      int
	Recalls    int
}

// Session is the state of one trail animation
type Session struct {
	cfg  Config
	anim Animator
	rng  *rand.Rand

	followEase ease.TweenFunc
	dropEase   ease.TweenFunc
	recallEase ease.TweenFunc

	viewportW, viewportH float64

	pointerX, pointerY float64
	lastMove           time.Time
	state              State
	lastOrderChange    time.Time
	shouldReshuffle    bool
	dropTimer          Debouncer
	history            *History
	stats              Stats
}

// NewSession builds a session over anim. Unknown ease names in cfg fall back
// to the default curve.
func NewSession(cfg Config, anim Animator, rng *rand.Rand) *Session {
	return &Session{
		cfg:        cfg,
		anim:       anim,
		rng:        rng,
		followEase: tween.ResolveEase(cfg.Follow.Ease),
		dropEase:   tween.ResolveEase(cfg.Drop.Ease),
		recallEase: tween.ResolveEase(cfg.Recall.Ease),
		history:    NewHistory(cfg.HistoryLength),
	}
}

// Init parks every image offscreen with a slight random tilt. The first
// image is stacked on top.
func (s *Session) Init() {
	n := s.anim.Count()
	for i := 0; i < n; i++ {
		s.anim.SetZIndex(i, n-i)
		s.anim.Set(i, tween.Props{
			tween.X:        s.cfg.Initial.X,
			tween.Y:        s.cfg.Initial.Y,
			tween.Rotation: s.spread(s.cfg.Initial.RotationRange),
			tween.Scale:    s.cfg.Initial.Scale,
			tween.Opacity:  1,
		})
	}
}

// SetViewport records the current viewport size used for the drop target.
func (s *Session) SetViewport(w, h float64) {
	s.viewportW, s.viewportH = w, h
}

// SetWave toggles the trailing wave at runtime.
func (s *Session) SetWave(enabled bool) {
	s.cfg.Wave.Enabled = enabled
}

// PointerMoved handles one pointer movement event.
func (s *Session) PointerMoved(now time.Time, x, y float64) {
	s.pointerX, s.pointerY = x, y
	s.lastMove = now
	s.stats.Moves++

	if now.Sub(s.lastOrderChange) >= s.cfg.ReshuffleInterval {
		s.shouldReshuffle = true
		s.lastOrderChange = now
	}

	s.history.Push(Sample{X: x, Y: y, Time: now})

	if s.state == Dropped {
		s.recall(now)
	}

	s.dropTimer.Reset(now, s.cfg.DropDelay)
}

// Tick runs one frame: it fires the drop timer when due, then reshuffles and
// moves every image toward its point in the history while active.
func (s *Session) Tick(now time.Time) {
	if s.dropTimer.Fire(now) {
		s.drop()
	}

	if s.state == Dropped {
		return
	}

	if s.shouldReshuffle {
		s.reshuffle()
		s.shouldReshuffle = false
	}

	if s.history.Len() == 0 {
		return
	}

	n := s.anim.Count()
	for i := 0; i < n; i++ {
		target := s.history.At(s.sampleIndex(i, n))
		offset := s.waveOffset(now, target)
		s.anim.To(i, tween.Props{
			tween.X:        target.X + offset,
			tween.Y:        target.Y + offset*0.5,
			tween.Rotation: offset * 0.5,
			tween.Scale:    s.cfg.Follow.Scale,
		}, tween.Options{
			Duration: s.cfg.Follow.Duration,
			Ease:     s.followEase,
		})
	}
}

// sampleIndex spreads n images evenly over the configured history length,
// clamped to the samples recorded so far.
func (s *Session) sampleIndex(i, n int) int {
	idx := i * s.cfg.HistoryLength / n
	if last := s.history.Len() - 1; idx > last {
		idx = last
	}
	return idx
}

func (s *Session) waveOffset(now time.Time, target Sample) float64 {
	if !s.cfg.Wave.Enabled {
		return 0
	}
	age := float64(now.Sub(target.Time)) / float64(time.Millisecond)
	return math.Sin(age*s.cfg.Wave.Frequency) * s.cfg.Wave.Amplitude
}

// reshuffle assigns a uniformly random permutation of 1..N as z-indices.
func (s *Session) reshuffle() {
	n := s.anim.Count()
	for i, z := range s.rng.Perm(n) {
		s.anim.SetZIndex(i, z+1)
	}
	s.stats.Reshuffles++
}

func (s *Session) drop() {
	if s.state == Dropped {
		return
	}
	s.state = Dropped
	s.stats.Drops++

	n := s.anim.Count()
	for i := 0; i < n; i++ {
		s.anim.To(i, tween.Props{
			tween.Y:        s.viewportH + s.cfg.Drop.Overshoot,
			tween.Rotation: s.spread(s.cfg.Drop.RotationRange),
			tween.Scale:    s.cfg.Drop.Scale,
			tween.Opacity:  0,
		}, tween.Options{
			Duration: s.cfg.Drop.Duration + s.rng.Float64()*s.cfg.Drop.DurationJitter,
			Delay:    float64(i) * s.cfg.Drop.Stagger,
			Ease:     s.dropEase,
		})
	}
}

func (s *Session) recall(now time.Time) {
	s.state = Active
	s.stats.Recalls++

	s.history.Reset(Sample{X: s.pointerX, Y: s.pointerY, Time: now})
	s.shouldReshuffle = true
	s.lastOrderChange = now

	n := s.anim.Count()
	for i := 0; i < n; i++ {
		s.anim.To(i, tween.Props{
			tween.X:        s.pointerX,
			tween.Y:        s.pointerY,
			tween.Rotation: 0,
			tween.Scale:    s.cfg.Recall.Scale,
			tween.Opacity:  1,
		}, tween.Options{
			Duration: s.cfg.Recall.Duration,
			Ease:     s.recallEase,
		})
	}
}

// spread returns a uniform value in [-r/2, r/2).
func (s *Session) spread(r float64) float64 {
	return s.rng.Float64()*r - r/2
}

func (s *Session) State() State { return s.state }
func (s *Session) Pointer() (float64, float64) { return s.pointerX, s.pointerY }

// LastMove is the time of the most recent pointer sample.
func (s *Session) LastMove() time.Time { return s.lastMove }

func (s *Session) ShouldReshuffle() bool { return s.shouldReshuffle }
func (s *Session) History() *History { return s.history }
func (s *Session) Stats() Stats { return s.stats }
func (s *Session) DropPending() bool { return s.dropTimer.Armed() }

// Viewport returns the size last given to SetViewport.
func (s *Session) Viewport() (float64, float64) { return s.viewportW, s.viewportH }

func (s *Session) Config() Config { return s.cfg }

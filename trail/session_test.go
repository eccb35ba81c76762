package trail

import (
	"math/rand/v2"
	"sort"
	"testing"
	"time"

	"github.com/automoto/trailstack/tween"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanema/gween/ease"
)

type animCall struct {
	index int
	props tween.Props
	opts  tween.Options
}

// recordingAnimator captures every request the session makes.
type recordingAnimator struct {
	n    int
	z    []int
	sets []animCall
	tos  []animCall
}

func newRecordingAnimator(n int) *recordingAnimator {
	return &recordingAnimator{n: n, z: make([]int, n)}
}

func (r *recordingAnimator) Count() int { return r.n }
func (r *recordingAnimator) SetZIndex(index, z int) { r.z[index] = z }

func (r *recordingAnimator) Set(index int, props tween.Props) {
	r.sets = append(r.sets, animCall{index: index, props: props})
}

func (r *recordingAnimator) To(index int, props tween.Props, opts tween.Options) {
	r.tos = append(r.tos, animCall{index: index, props: props, opts: opts})
}

// lastTos returns the most recent To call per image.
func (r *recordingAnimator) lastTos() map[int]animCall {
	out := make(map[int]animCall, r.n)
	for _, c := range r.tos {
		out[c.index] = c
	}
	return out
}

func (r *recordingAnimator) reset() {
	r.sets = nil
	r.tos = nil
}

const (
	viewportW = 800.0
	viewportH = 600.0
)

var epoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func at(ms int) time.Time {
	return epoch.Add(time.Duration(ms) * time.Millisecond)
}

func newTestSession(t *testing.T, n int) (*Session, *recordingAnimator) {
	t.Helper()
	anim := newRecordingAnimator(n)
	s := NewSession(DefaultConfig(), anim, rand.New(rand.NewPCG(1, 2)))
	s.SetViewport(viewportW, viewportH)
	s.Init()
	return s, anim
}

// assertCurve compares two ease curves by sampling them, since funcs have no
// equality.
func assertCurve(t *testing.T, want, got ease.TweenFunc, msgAndArgs ...interface{}) {
	t.Helper()
	require.NotNil(t, got, msgAndArgs...)
	for _, p := range []float32{0.1, 0.25, 0.5, 0.8, 0.9} {
		assert.InDelta(t, want(p, 0, 1, 1), got(p, 0, 1, 1), 1e-6, msgAndArgs...)
	}
}

func assertPermutation(t *testing.T, z []int) {
	t.Helper()
	got := append([]int(nil), z...)
	sort.Ints(got)
	for i, v := range got {
		require.Equal(t, i+1, v, "z-indices %v are not a permutation of 1..%d", z, len(z))
	}
}

func TestInitParksImagesOffscreen(t *testing.T) {
	s, anim := newTestSession(t, 5)

	assert.Equal(t, []int{5, 4, 3, 2, 1}, anim.z)
	require.Len(t, anim.sets, 5)
	for _, c := range anim.sets {
		assert.Equal(t, -1000.0, c.props[tween.X])
		assert.Equal(t, -1000.0, c.props[tween.Y])
		assert.Equal(t, 1.0, c.props[tween.Scale])
		assert.GreaterOrEqual(t, c.props[tween.Rotation], -10.0)
		assert.Less(t, c.props[tween.Rotation], 10.0)
	}
	assert.Equal(t, Active, s.State())
	assert.False(t, s.DropPending())
}

func TestReshuffleAssignsPermutation(t *testing.T) {
	s, anim := newTestSession(t, 7)

	for i := 0; i < 50; i++ {
		now := at(i * 400)
		s.PointerMoved(now, float64(i), float64(i))
		require.True(t, s.ShouldReshuffle())
		s.Tick(now)
		assert.False(t, s.ShouldReshuffle())
		assertPermutation(t, anim.z)
	}
	assert.Equal(t, 50, s.Stats().Reshuffles)
}

func TestReshuffleRateLimited(t *testing.T) {
	s, _ := newTestSession(t, 4)

	// 100 events over 50ms
	for i := 0; i < 100; i++ {
		now := epoch.Add(time.Duration(i) * 500 * time.Microsecond)
		s.PointerMoved(now, float64(i), 0)
		s.Tick(now)
	}
	assert.Equal(t, 1, s.Stats().Reshuffles)

	s.PointerMoved(at(299), 1, 1)
	s.Tick(at(299))
	assert.Equal(t, 1, s.Stats().Reshuffles)

	s.PointerMoved(at(300), 1, 1)
	s.Tick(at(300))
	assert.Equal(t, 2, s.Stats().Reshuffles)
}

func TestHistoryNeverExceedsLimit(t *testing.T) {
	s, _ := newTestSession(t, 3)
	for i := 0; i < 100; i++ {
		s.PointerMoved(at(i), float64(i), float64(i))
		assert.LessOrEqual(t, s.History().Len(), 20)
	}
	assert.Equal(t, 20, s.History().Len())
}

func TestFollowTargetsSpreadOverHistory(t *testing.T) {
	s, anim := newTestSession(t, 4)
	for i := 0; i < 20; i++ {
		s.PointerMoved(at(i), float64(i), float64(100+i))
	}
	anim.reset()
	s.Tick(at(20))

	last := anim.lastTos()
	require.Len(t, last, 4)
	for i := 0; i < 4; i++ {
		// Image i follows history[i*20/4]; history[0] is the newest sample (19).
		want := s.History().At(i * 5)
		c := last[i]
		assert.Equal(t, want.X, c.props[tween.X], "image %d", i)
		assert.Equal(t, want.Y, c.props[tween.Y], "image %d", i)
		assert.Equal(t, 0.0, c.props[tween.Rotation])
		assert.Equal(t, 1.5, c.props[tween.Scale])
		assert.Equal(t, 0.3, c.opts.Duration)
		assertCurve(t, tween.ResolveEase(DefaultConfig().Follow.Ease), c.opts.Ease, "image %d", i)
		_, touchesOpacity := c.props[tween.Opacity]
		assert.False(t, touchesOpacity)
	}
}

func TestFollowClampsToShortHistory(t *testing.T) {
	s, anim := newTestSession(t, 4)
	s.PointerMoved(at(0), 10, 10)
	s.PointerMoved(at(1), 20, 20)
	anim.reset()
	s.Tick(at(2))

	last := anim.lastTos()
	assert.Equal(t, 20.0, last[0].props[tween.X])
	for i := 1; i < 4; i++ {
		assert.Equal(t, 10.0, last[i].props[tween.X], "image %d uses the oldest sample", i)
	}
}

func TestNoFollowBeforeFirstMove(t *testing.T) {
	s, anim := newTestSession(t, 3)
	anim.reset()
	for i := 0; i < 10; i++ {
		s.Tick(at(i * 100))
	}
	assert.Empty(t, anim.tos)
	assert.Equal(t, Active, s.State())
}

func TestWaveOffsetDisabledByDefault(t *testing.T) {
	s, anim := newTestSession(t, 2)
	s.PointerMoved(at(0), 50, 50)
	anim.reset()
	s.Tick(at(250))

	for _, c := range anim.tos {
		assert.Equal(t, 50.0, c.props[tween.X])
		assert.Equal(t, 0.0, c.props[tween.Rotation])
	}
}

func TestWaveOffsetWhenEnabled(t *testing.T) {
	s, anim := newTestSession(t, 1)
	s.SetWave(true)
	s.PointerMoved(at(0), 50, 50)
	anim.reset()
	s.Tick(at(100))

	// sin(100ms * 0.005) * 15
	offset := 7.191383079
	c := anim.lastTos()[0]
	assert.InDelta(t, 50+offset, c.props[tween.X], 1e-6)
	assert.InDelta(t, 50+offset*0.5, c.props[tween.Y], 1e-6)
	assert.InDelta(t, offset*0.5, c.props[tween.Rotation], 1e-6)
}

func TestDropAfterIdle(t *testing.T) {
	s, anim := newTestSession(t, 5)
	s.PointerMoved(at(0), 100, 100)
	s.Tick(at(16))

	s.Tick(at(499))
	require.Equal(t, Active, s.State())

	anim.reset()
	s.Tick(at(600))
	require.Equal(t, Dropped, s.State())

	last := anim.lastTos()
	require.Len(t, last, 5)
	for i := 0; i < 5; i++ {
		c := last[i]
		assert.Greater(t, c.props[tween.Y], viewportH)
		assert.Equal(t, 0.0, c.props[tween.Opacity])
		assert.Equal(t, 1.5, c.props[tween.Scale])
		assert.InDelta(t, float64(i)*0.1, c.opts.Delay, 1e-9)
		assert.GreaterOrEqual(t, c.opts.Duration, 1.0)
		assert.Less(t, c.opts.Duration, 1.5)
		assert.GreaterOrEqual(t, c.props[tween.Rotation], -30.0)
		assert.Less(t, c.props[tween.Rotation], 30.0)
		assertCurve(t, tween.ResolveEase(DefaultConfig().Drop.Ease), c.opts.Ease, "image %d", i)
		_, movesX := c.props[tween.X]
		assert.False(t, movesX)
	}
	assert.Len(t, anim.tos, 5, "dropped tick issues no follow tweens")
}

func TestDropIsIdempotent(t *testing.T) {
	s, anim := newTestSession(t, 3)
	s.PointerMoved(at(0), 100, 100)
	s.Tick(at(600))
	require.Equal(t, Dropped, s.State())

	anim.reset()
	for ms := 700; ms < 5000; ms += 100 {
		s.Tick(at(ms))
	}
	assert.Empty(t, anim.tos)
	assert.Equal(t, 1, s.Stats().Drops)
}

func TestMovementPostponesDrop(t *testing.T) {
	s, _ := newTestSession(t, 2)
	for ms := 0; ms <= 2000; ms += 200 {
		s.PointerMoved(at(ms), float64(ms), 0)
		s.Tick(at(ms))
	}
	assert.Equal(t, Active, s.State())

	s.Tick(at(2499))
	assert.Equal(t, Active, s.State())
	s.Tick(at(2500))
	assert.Equal(t, Dropped, s.State())
}

func TestRecallOnMoveWhileDropped(t *testing.T) {
	s, anim := newTestSession(t, 4)
	s.PointerMoved(at(0), 100, 100)
	s.PointerMoved(at(10), 120, 110)
	s.Tick(at(20))
	s.Tick(at(600))
	require.Equal(t, Dropped, s.State())

	anim.reset()
	s.PointerMoved(at(1000), 300, 200)

	assert.Equal(t, Active, s.State())
	assert.Equal(t, at(1000), s.LastMove())
	require.Equal(t, 1, s.History().Len())
	assert.Equal(t, Sample{X: 300, Y: 200, Time: at(1000)}, s.History().At(0))
	assert.True(t, s.ShouldReshuffle())
	assert.True(t, s.DropPending())
	assert.Equal(t, 1, s.Stats().Recalls)

	last := anim.lastTos()
	require.Len(t, last, 4)
	for i := 0; i < 4; i++ {
		c := last[i]
		assert.Equal(t, 300.0, c.props[tween.X])
		assert.Equal(t, 200.0, c.props[tween.Y])
		assert.Equal(t, 1.0, c.props[tween.Opacity])
		assert.Equal(t, 0.0, c.props[tween.Rotation])
		assert.Equal(t, 1.5, c.props[tween.Scale])
		assert.Equal(t, 0.8, c.opts.Duration)
		assert.Zero(t, c.opts.Delay)
		assertCurve(t, tween.ResolveEase(DefaultConfig().Recall.Ease), c.opts.Ease, "image %d", i)
		// back.out passes the target before settling.
		assert.Greater(t, c.opts.Ease(0.8, 0, 1, 1), float32(1), "image %d", i)
	}

	s.Tick(at(1016))
	assertPermutation(t, anim.z)
	assert.False(t, s.ShouldReshuffle())
}

func TestRecallResetsReshuffleCooldown(t *testing.T) {
	s, _ := newTestSession(t, 3)
	s.PointerMoved(at(0), 1, 1)
	s.Tick(at(0))
	s.Tick(at(600))
	require.Equal(t, Dropped, s.State())

	s.PointerMoved(at(700), 2, 2)
	s.Tick(at(700))
	reshuffles := s.Stats().Reshuffles

	// Within 300ms of the recall no new reshuffle is raised.
	s.PointerMoved(at(900), 3, 3)
	s.Tick(at(900))
	assert.Equal(t, reshuffles, s.Stats().Reshuffles)
}

func TestDropTargetTracksViewport(t *testing.T) {
	s, anim := newTestSession(t, 1)
	s.SetViewport(1920, 1080)
	w, h := s.Viewport()
	assert.Equal(t, 1920.0, w)
	assert.Equal(t, 1080.0, h)
	s.PointerMoved(at(0), 5, 5)
	anim.reset()
	s.Tick(at(500))

	assert.Equal(t, 1180.0, anim.lastTos()[0].props[tween.Y])
}

// tweenAnimator runs the session against real tweeners.
type tweenAnimator struct {
	tws []*tween.Tweener
	z   []int
}

func newTweenAnimator(n int) *tweenAnimator {
	a := &tweenAnimator{tws: make([]*tween.Tweener, n), z: make([]int, n)}
	for i := range a.tws {
		a.tws[i] = tween.NewTweener(tween.Values{})
	}
	return a
}

func (a *tweenAnimator) Count() int { return len(a.tws) }
func (a *tweenAnimator) SetZIndex(index, z int) { a.z[index] = z }

func (a *tweenAnimator) Set(index int, props tween.Props) {
	a.tws[index].Set(props)
}

func (a *tweenAnimator) To(index int, props tween.Props, opts tween.Options) {
	a.tws[index].To(props, opts)
}

func (a *tweenAnimator) update(dt float32) {
	for _, tw := range a.tws {
		tw.Update(dt)
	}
}

func TestDropAndRecallOverTweeners(t *testing.T) {
	const frameMs = 16
	anim := newTweenAnimator(4)
	s := NewSession(DefaultConfig(), anim, rand.New(rand.NewPCG(3, 4)))
	s.SetViewport(viewportW, viewportH)
	s.Init()

	frame := func(ms int) {
		s.Tick(at(ms))
		anim.update(frameMs / 1000.0)
	}

	s.PointerMoved(at(0), 100, 100)
	for ms := 0; ms <= 3000; ms += frameMs {
		frame(ms)
	}
	require.Equal(t, Dropped, s.State())
	for i, tw := range anim.tws {
		assert.False(t, tw.Active(), "image %d still animating", i)
		assert.InDelta(t, viewportH+100, tw.Get(tween.Y), 1e-3, "image %d", i)
		assert.Equal(t, 0.0, tw.Get(tween.Opacity), "image %d", i)
	}

	// Keep moving in place so the idle timer never fires.
	peak := 0.0
	for ms := 3008; ms <= 5008; ms += frameMs {
		if (ms-3008)%208 == 0 {
			s.PointerMoved(at(ms), 300, 200)
		}
		frame(ms)
		for _, tw := range anim.tws {
			peak = max(peak, tw.Get(tween.Opacity))
		}
	}
	require.Equal(t, Active, s.State())
	assert.Equal(t, 1, s.Stats().Recalls)
	assert.Greater(t, peak, 1.0, "recall fade overshoots on its way back")
	for i, tw := range anim.tws {
		assert.InDelta(t, 300.0, tw.Get(tween.X), 0.01, "image %d", i)
		assert.InDelta(t, 200.0, tw.Get(tween.Y), 0.01, "image %d", i)
		assert.InDelta(t, 1.5, tw.Get(tween.Scale), 1e-3, "image %d", i)
		assert.Equal(t, 1.0, tw.Get(tween.Opacity), "image %d", i)
	}
	assertPermutation(t, anim.z)
}

func TestEmptyCollectionIsNoop(t *testing.T) {
	s, anim := newTestSession(t, 0)
	s.PointerMoved(at(0), 10, 10)
	s.Tick(at(10))
	s.Tick(at(600))
	s.PointerMoved(at(700), 20, 20)
	s.Tick(at(710))

	assert.Empty(t, anim.tos)
	assert.Empty(t, anim.sets)
	assert.Equal(t, Active, s.State())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "active", Active.String())
	assert.Equal(t, "dropped", Dropped.String())
	assert.Equal(t, "unknown", State(9).String())
}

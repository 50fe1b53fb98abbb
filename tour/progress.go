package tour

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/BrianJOC/tourguide/logging"
)

// progressSync keeps the visual progress indicators consistent with the
// actual elapsed time of the active autoplay step. It reads timer state but
// never mutates navigation state. Fill percentages are recorded per step
// index so re-entering a step continues from the last value instead of
// snapping back to zero.
type progressSync struct {
	c      *Controller
	logger zerolog.Logger

	fills      map[int]float64
	active     int
	stepSize   float64
	cancelWait func()
	// stop is non-nil while a tick goroutine runs; closing it stops the
	// goroutine. Compared by identity in tick to discard superseded loops.
	stop chan struct{}
}

func newProgressSync(c *Controller) *progressSync {
	return &progressSync{
		c:      c,
		logger: logging.Component("progress"),
		fills:  make(map[int]float64),
		active: -1,
	}
}

// begin claims step i as the animating indicator, pins the surrounding
// steps, derives the fill rate from the step's remaining duration, and
// starts ticking once the indicator element exists in the visual tree.
// Called without the controller lock, after the settle delay.
func (p *progressSync) begin(i int, remaining time.Duration) {
	c := p.c
	c.mu.Lock()
	if c.state != Active || c.seq.cursor != i || !c.autoplay.enabled {
		c.mu.Unlock()
		return
	}
	if p.cancelWait != nil {
		p.cancelWait()
		p.cancelWait = nil
	}
	p.active = i
	p.pinAroundLocked(i)

	effective := remaining - c.cfg.SettleDelay
	tick := c.cfg.TickInterval
	if effective <= 0 {
		p.stepSize = 100
	} else {
		p.stepSize = 100 / (float64(effective) / float64(tick))
	}
	c.mu.Unlock()

	cancel := c.watcher.WaitUntil(
		func() bool { return c.renderer.HasIndicator(i) },
		func() { p.startTicking(i) },
	)
	c.mu.Lock()
	p.cancelWait = cancel
	c.mu.Unlock()
}

// startTicking is the watcher callback: the indicator for step i is now
// mounted. It may run long after the tour moved on, so it re-checks that i
// is still the active step before doing anything.
func (p *progressSync) startTicking(i int) {
	c := p.c
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Active || c.seq.cursor != i || !c.autoplay.enabled || p.active != i {
		return
	}
	p.startTickingLocked(i)
}

func (p *progressSync) startTickingLocked(i int) {
	if p.stop != nil {
		return
	}
	if p.fills[i] >= 100 {
		return
	}
	stop := make(chan struct{})
	p.stop = stop
	go p.tickLoop(i, stop)
}

func (p *progressSync) tickLoop(i int, stop chan struct{}) {
	ticker := time.NewTicker(p.c.cfg.TickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if !p.tick(i, stop) {
				return
			}
		}
	}
}

// tick advances the fill by one stepSize, clamped to 100. Returns false when
// the loop must exit: fill complete, the loop was superseded, or step i is
// no longer the one being animated.
func (p *progressSync) tick(i int, stop chan struct{}) bool {
	c := p.c
	c.mu.Lock()
	defer c.mu.Unlock()

	if p.stop != stop {
		return false
	}
	if c.state != Active || c.seq.cursor != i || p.active != i {
		return false
	}

	fill := p.fills[i] + p.stepSize
	if fill >= 100 {
		fill = 100
	}
	p.fills[i] = fill
	c.renderer.SetFill(i, fill)
	if fill >= 100 {
		p.stopTickingLocked()
		return false
	}
	return true
}

// pinAroundLocked pins every indicator other than step i: steps before it
// are done (100), steps after it have not begun (0). Step i's own fill is
// left alone so a resumed step keeps its recorded progress.
func (p *progressSync) pinAroundLocked(i int) {
	for j := 0; j < p.c.seq.len(); j++ {
		switch {
		case j < i:
			p.fills[j] = 100
			p.c.renderer.SetFill(j, 100)
		case j > i:
			p.fills[j] = 0
			p.c.renderer.SetFill(j, 0)
		}
	}
}

func (p *progressSync) pauseTickingLocked() {
	p.stopTickingLocked()
}

func (p *progressSync) resumeTickingLocked() {
	i := p.c.seq.cursor
	if p.active != i {
		return
	}
	p.startTickingLocked(i)
}

func (p *progressSync) stopTickingLocked() {
	if p.stop != nil {
		close(p.stop)
		p.stop = nil
	}
}

// resetLocked releases the shared progress record: the tick loop, any
// pending indicator wait, and all recorded fills.
func (p *progressSync) resetLocked() {
	p.stopTickingLocked()
	if p.cancelWait != nil {
		p.cancelWait()
		p.cancelWait = nil
	}
	p.fills = make(map[int]float64)
	p.active = -1
	p.stepSize = 0
}

func (p *progressSync) fillLocked(i int) float64 {
	return p.fills[i]
}

package tour

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/BrianJOC/tourguide/logging"
	"github.com/BrianJOC/tourguide/utils/pausetimer"
)

// coordinator drives automatic advancement. It is the exclusive owner of
// every live per-step timer and of the pending settle delays; nothing else
// may create or clear them. Methods with the Locked suffix require the
// controller lock to be held.
type coordinator struct {
	c       *Controller
	logger  zerolog.Logger
	enabled bool

	// timers holds at most one timer per step index. A timer present here
	// is either armed or paused partway through its duration.
	timers map[int]*pausetimer.Timer
	// settles holds the pending settle delays, keyed by step index, so a
	// toggle or reset can cancel them before media ever starts.
	settles map[int]*time.Timer
}

func newCoordinator(c *Controller) *coordinator {
	return &coordinator{
		c:       c,
		logger:  logging.Component("autoplay"),
		enabled: c.cfg.Autoplay,
		timers:  make(map[int]*pausetimer.Timer),
		settles: make(map[int]*time.Timer),
	}
}

// enterLocked runs the arm sequence for a newly entered step. Steps without
// a duration are manual: prior progress is marked complete and no timer is
// armed, so autoplay halts there until the user navigates on.
func (a *coordinator) enterLocked(i int) {
	if !a.enabled {
		return
	}
	a.c.renderer.SetAutoplayActive(true)
	step, ok := a.c.seq.stepAt(i)
	if !ok {
		return
	}
	if !step.HasDuration() {
		a.c.progress.pinAroundLocked(i)
		a.logger.Debug().Int("step", i).Msg("manual step, no timer armed")
		return
	}
	if _, pending := a.settles[i]; pending {
		return
	}
	a.settles[i] = time.AfterFunc(a.c.cfg.SettleDelay, func() { a.settleFired(i) })
}

// settleFired runs after the settle delay: start the step's media, arm (or
// resume) its timer, and hand the remaining duration to the progress sync.
// Fires against a stale step are silently dropped.
func (a *coordinator) settleFired(i int) {
	c := a.c
	c.mu.Lock()
	delete(a.settles, i)
	if c.state != Active || c.seq.cursor != i || !a.enabled {
		c.mu.Unlock()
		return
	}
	step, ok := c.seq.stepAt(i)
	if !ok {
		c.mu.Unlock()
		return
	}
	c.media.Play(i)
	timer, exists := a.timers[i]
	if exists {
		// Re-entering a partly elapsed step: keep the accumulated
		// progress instead of restarting the countdown.
		timer.Resume()
	} else {
		timer = pausetimer.New(func() { c.autoAdvance(i) }, step.duration)
		a.timers[i] = timer
	}
	remaining := timer.Remaining()
	c.mu.Unlock()

	c.progress.begin(i, remaining)
}

// leaveLocked suspends step i's countdown when navigation moves away from
// it: the settle is canceled, the timer paused, and its media stopped.
func (a *coordinator) leaveLocked(i int) {
	if settle, ok := a.settles[i]; ok {
		settle.Stop()
		delete(a.settles, i)
	}
	if timer, ok := a.timers[i]; ok {
		timer.Pause()
	}
	a.c.media.Stop(i)
	a.c.progress.stopTickingLocked()
}

// setEnabledLocked toggles autoplay. Off pauses the active step's timer,
// media, and progress ticking. On resumes a paused timer when one exists,
// preserving elapsed progress; otherwise it performs the full arm sequence.
func (a *coordinator) setEnabledLocked(on bool) {
	if a.enabled == on {
		return
	}
	a.enabled = on
	c := a.c
	c.renderer.SetAutoplayActive(on)
	if c.state != Active {
		return
	}
	i := c.seq.cursor

	if !on {
		if settle, ok := a.settles[i]; ok {
			settle.Stop()
			delete(a.settles, i)
		}
		if timer, ok := a.timers[i]; ok {
			timer.Pause()
		}
		c.media.Pause(i)
		c.progress.pauseTickingLocked()
		a.logger.Debug().Int("step", i).Msg("autoplay off")
		return
	}

	if timer, ok := a.timers[i]; ok && !timer.Running() {
		timer.Resume()
		c.media.Play(i)
		c.progress.resumeTickingLocked()
		a.logger.Debug().Int("step", i).Msg("autoplay resumed")
		return
	}
	a.enterLocked(i)
}

// timerFiredLocked retires the timer whose fire is being handled.
func (a *coordinator) timerFiredLocked(i int) {
	if timer, ok := a.timers[i]; ok {
		timer.Clear()
		delete(a.timers, i)
	}
}

// clearLocked cancels every settle delay and clears every timer. A timer
// left alive after this point could fire against stale state.
func (a *coordinator) clearLocked() {
	for i, settle := range a.settles {
		settle.Stop()
		delete(a.settles, i)
	}
	for i, timer := range a.timers {
		timer.Clear()
		delete(a.timers, i)
	}
}

// liveTimersLocked reports how many timers are still owned.
func (a *coordinator) liveTimersLocked() int {
	return len(a.timers) + len(a.settles)
}

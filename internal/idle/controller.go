// Package idle implements the dashboard's idle/active state machine and
// its frame-rate-independent transition progress.
package idle

import "math"

// Metrics is the subset of a metrics snapshot the idle decision needs.
// Kept independent of the metrics package to avoid an import cycle
// between metrics and render/idle consumers.
type Metrics struct {
	CPUPct  float64
	TempC   float64
	Net1    float64
	Net2    float64
}

const (
	idleThresholdSeconds = 30.0
	transitionTau         = 0.3 // seconds; chosen for a smoother, frame-rate-independent response
)

// Controller tracks whether the system currently looks idle and a
// smoothly-converging transition_progress in [0,1] driven off it.
type Controller struct {
	isIdle             bool
	idleTimerRunning   bool
	idleElapsed        float64
	transitionProgress float64
}

// New returns a Controller starting in the active state.
func New() *Controller {
	return &Controller{}
}

// Update advances the state machine by dt seconds given the latest
// metrics.
func (c *Controller) Update(m Metrics, dt float64) {
	systemIsIdle := m.CPUPct < 10 && m.TempC < 50 && m.Net1 < 10 && m.Net2 < 10

	if systemIsIdle {
		if !c.idleTimerRunning {
			c.idleTimerRunning = true
			c.idleElapsed = 0
		} else {
			c.idleElapsed += dt
		}
		if c.idleElapsed > idleThresholdSeconds {
			c.isIdle = true
		}
	} else {
		c.idleTimerRunning = false
		c.idleElapsed = 0
		c.isIdle = false
	}

	target := 0.0
	if c.isIdle {
		target = 1.0
	}
	alpha := 1 - math.Exp(-dt/transitionTau)
	c.transitionProgress += (target - c.transitionProgress) * alpha
	if c.transitionProgress < 0 {
		c.transitionProgress = 0
	} else if c.transitionProgress > 1 {
		c.transitionProgress = 1
	}
}

// IsIdle reports the latched idle/active state.
func (c *Controller) IsIdle() bool { return c.isIdle }

// TransitionProgress returns the current smoothed idle transition in
// [0,1], 0 = fully active, 1 = fully idle.
func (c *Controller) TransitionProgress() float64 { return c.transitionProgress }

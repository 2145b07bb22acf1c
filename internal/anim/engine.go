// Package anim implements the named scalar interpolators used to smooth
// metric values and visual gamma transitions frame to frame.
package anim

// animatedValue tracks a single interpolated scalar.
type animatedValue struct {
	current, target float64
}

// Engine holds one animatedValue per key, keyed for the process
// lifetime. Construct it with New: the zero value has no map and a
// speed of zero.
type Engine struct {
	values map[string]*animatedValue
	speed  float64
}

// New returns an Engine with the reference interpolation speed
// (k ≈ 0.3).
func New() *Engine {
	return &Engine{values: make(map[string]*animatedValue), speed: 0.3}
}

// SetTarget creates the interpolator on first use with current = target
// = value; subsequent calls update the target only.
func (e *Engine) SetTarget(key string, value float64) {
	if v, ok := e.values[key]; ok {
		v.target = value
		return
	}
	e.values[key] = &animatedValue{current: value, target: value}
}

// Step advances every entry by dt seconds using a dt-proportional,
// per-step-saturating approach toward its target:
//
//	current' = current + (target-current) * min(1, k*dt*10)
//
// This is an approximately-exponential approach, not a strictly
// frame-rate-independent exponential one
// keeps this as documented behavior rather than replacing it.
func (e *Engine) Step(dt float64) {
	for _, v := range e.values {
		factor := e.speed * dt * 10.0
		if factor > 1.0 {
			factor = 1.0
		}
		next := v.current + (v.target-v.current)*factor
		if v.target >= 0 && next < 0 {
			next = 0
		}
		v.current = next
	}
}

// Get returns the current smoothed value for key, or def if the key has
// never had a target set.
func (e *Engine) Get(key string, def float64) float64 {
	if v, ok := e.values[key]; ok {
		return v.current
	}
	return def
}

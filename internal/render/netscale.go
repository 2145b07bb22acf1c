package render

import "sort"

// NetAutoscale tracks the EMA-smoothed ceiling for one network history
// channel, derived from a running percentile of recent samples.
type NetAutoscale struct {
	Percentile float64
	Min, Max   float64
	EMAAlpha   float64

	smoothedMax float64
	initialized bool
}

// Update computes the P-th percentile of history, clamps it to
// [Min, Max], EMA-folds it into the running ceiling, and returns the
// new ceiling. Auto-scale never drops below Min nor above Max.
func (n *NetAutoscale) Update(history []float64) float64 {
	if len(history) == 0 {
		if !n.initialized {
			n.smoothedMax = n.Min
			n.initialized = true
		}
		return n.smoothedMax
	}
	scratch := append([]float64(nil), history...)
	sort.Float64s(scratch)

	idx := int(n.Percentile / 100.0 * float64(len(scratch)-1))
	idx = clampInt(idx, 0, len(scratch)-1)
	pct := clampFloat(scratch[idx], n.Min, n.Max)

	if !n.initialized {
		n.smoothedMax = pct
		n.initialized = true
	} else {
		n.smoothedMax = n.EMAAlpha*pct + (1-n.EMAAlpha)*n.smoothedMax
	}
	n.smoothedMax = clampFloat(n.smoothedMax, n.Min, n.Max)
	return n.smoothedMax
}

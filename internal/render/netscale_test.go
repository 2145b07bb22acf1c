package render

import "testing"

func TestNetAutoscaleNeverExceedsBounds(t *testing.T) {
	n := &NetAutoscale{Percentile: 95, Min: 5, Max: 2500, EMAAlpha: 0.15}
	history := []float64{1, 2, 5000, 4900, 3000, 10}
	for i := 0; i < 20; i++ {
		v := n.Update(history)
		if v < n.Min || v > n.Max {
			t.Fatalf("autoscale ceiling %v out of bounds [%v,%v]", v, n.Min, n.Max)
		}
	}
}

func TestNetAutoscaleLowTrafficStaysAboveMin(t *testing.T) {
	n := &NetAutoscale{Percentile: 95, Min: 5, Max: 2500, EMAAlpha: 0.15}
	history := []float64{0, 0.1, 0.2, 0.05}
	v := n.Update(history)
	if v < n.Min {
		t.Fatalf("ceiling %v below minimum %v", v, n.Min)
	}
}

package history

import "testing"

func TestRingCapacityAndOrder(t *testing.T) {
	r := NewRing(3)
	for i := 1; i <= 5; i++ {
		r.Push(float64(i))
	}
	if r.Len() != 3 {
		t.Fatalf("len = %d, want 3", r.Len())
	}
	got := r.Values()
	want := []float64{3, 4, 5}
	for i, w := range want {
		if got[i] != w {
			t.Fatalf("values = %v, want %v", got, want)
		}
	}
}

func TestRingLengthAfterKPushes(t *testing.T) {
	r := NewRing(5)
	for k := 1; k <= 8; k++ {
		r.Push(float64(k))
		want := k
		if want > 5 {
			want = 5
		}
		if r.Len() != want {
			t.Fatalf("after %d pushes, len = %d, want %d", k, r.Len(), want)
		}
	}
	last, ok := r.Last()
	if !ok || last != 8 {
		t.Fatalf("Last() = %v, %v; want 8, true", last, ok)
	}
}

func TestCapacityForWidth(t *testing.T) {
	if got := CapacityForWidth(480); got != 120 {
		t.Fatalf("CapacityForWidth(480) = %d, want 120", got)
	}
	if got := CapacityForWidth(320); got != 60 {
		t.Fatalf("CapacityForWidth(320) = %d, want 60", got)
	}
}

func TestEMASeedsFromFirstObservation(t *testing.T) {
	e := NewEMA(0.3)
	if got := e.Update(10); got != 10 {
		t.Fatalf("first EMA update = %v, want seed value 10", got)
	}
	got := e.Update(20)
	want := 0.3*20 + 0.7*10
	if got != want {
		t.Fatalf("EMA update = %v, want %v", got, want)
	}
}

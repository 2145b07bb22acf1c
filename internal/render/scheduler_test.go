package render

import "testing"

func TestPrintEligibilityGraceWindow(t *testing.T) {
	if !PrintEligible(false, 59) {
		t.Fatalf("expected eligible with 59s since last active")
	}
	if PrintEligible(false, 61) {
		t.Fatalf("expected ineligible with 61s since last active")
	}
	if !PrintEligible(true, 999) {
		t.Fatalf("an actively printing job is always eligible")
	}
}

func TestSchedulerTogglesOnFixedDurations(t *testing.T) {
	s := NewViewScheduler()
	// t=0: rising edge into eligibility starts in Main.
	if mode := s.Update(true, 0); mode != ViewMain {
		t.Fatalf("expected Main at t=0, got %v", mode)
	}
	// advance to just before 180s
	var mode ViewMode
	for total := 0.0; total < 179; total += 1 {
		mode = s.Update(true, 1)
	}
	if mode != ViewMain {
		t.Fatalf("expected still Main just before 180s, got %v", mode)
	}
	mode = s.Update(true, 2) // crosses 180s
	if mode != ViewPrint {
		t.Fatalf("expected Print at t=180s, got %v", mode)
	}
	for total := 0.0; total < 29; total += 1 {
		mode = s.Update(true, 1)
	}
	if mode != ViewPrint {
		t.Fatalf("expected still Print just before 30s elapsed in Print, got %v", mode)
	}
	mode = s.Update(true, 2)
	if mode != ViewMain {
		t.Fatalf("expected back to Main after 30s in Print, got %v", mode)
	}
}

func TestSchedulerForcesMainWhenIneligible(t *testing.T) {
	s := NewViewScheduler()
	s.Update(true, 0)
	s.Update(true, 200) // now in Print
	if mode := s.Update(false, 1); mode != ViewMain {
		t.Fatalf("expected forced Main when ineligible, got %v", mode)
	}
}

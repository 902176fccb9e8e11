package model

import "testing"

func TestFeasibilityReasonHard(t *testing.T) {
	hard := []FeasibilityReason{ReasonCollision, ReasonKinematicLimit, ReasonNoSolution}
	for _, r := range hard {
		if !r.Hard() {
			t.Errorf("%s.Hard() = false, want true", r)
		}
	}
	if ReasonTimeout.Hard() {
		t.Error("timeout must be a soft refusal")
	}
	if ReasonUnspecified.Hard() {
		t.Error("unspecified must be a soft refusal")
	}
}

func TestFeasibilityReasonString(t *testing.T) {
	cases := map[FeasibilityReason]string{
		ReasonUnspecified:    "unspecified",
		ReasonCollision:      "collision",
		ReasonKinematicLimit: "kinematic_limit",
		ReasonNoSolution:     "no_solution_found",
		ReasonTimeout:        "timeout",
	}
	for r, want := range cases {
		if got := r.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", r, got, want)
		}
	}
}

func TestPlacementStatusString(t *testing.T) {
	if got := StatusPending.String(); got != "pending" {
		t.Errorf("StatusPending = %q", got)
	}
	if got := StatusPlaced.String(); got != "placed" {
		t.Errorf("StatusPlaced = %q", got)
	}
	if got := PlacementStatus(99).String(); got != "unknown" {
		t.Errorf("out-of-range status = %q", got)
	}
}

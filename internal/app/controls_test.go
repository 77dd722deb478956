package app

import (
	"testing"

	"wolfram-ca/internal/sims/wolfram"
)

func TestAdjustIntControlFollowsBounds(t *testing.T) {
	sim := wolfram.New(wolfram.Config{Rule: 0, Generations: 3})

	// The rule control is bounded to [0, 255], so stepping below the
	// minimum wraps to the maximum.
	if !adjustIntControl(sim, "rule", -1) {
		t.Fatal("adjusting the rule control was rejected")
	}
	if sim.Rule() != 255 {
		t.Fatalf("rule after wrap-down = %d, want 255", sim.Rule())
	}

	if !adjustIntControl(sim, "rule", 1) {
		t.Fatal("adjusting the rule control was rejected")
	}
	if sim.Rule() != 0 {
		t.Fatalf("rule after wrap-up = %d, want 0", sim.Rule())
	}

	if !adjustIntControl(sim, "rule", 30) {
		t.Fatal("adjusting the rule control was rejected")
	}
	if sim.Rule() != 30 {
		t.Fatalf("rule after +30 = %d, want 30", sim.Rule())
	}
}

func TestAdjustIntControlUsesDeclaredStep(t *testing.T) {
	sim := wolfram.New(wolfram.Config{Rule: 10, Generations: 3})

	controls := sim.ParameterControls()
	if len(controls) == 0 {
		t.Fatal("sim must expose at least one control")
	}
	step := int(controls[0].Step)
	if step <= 0 {
		step = 1
	}

	if !adjustIntControl(sim, "rule", 2) {
		t.Fatal("adjusting the rule control was rejected")
	}
	if got := int(sim.Rule()); got != 10+2*step {
		t.Fatalf("rule after two steps = %d, want %d", got, 10+2*step)
	}
}

func TestAdjustIntControlRejectsUnknownKey(t *testing.T) {
	sim := wolfram.New(wolfram.Config{Rule: 30, Generations: 3})
	if adjustIntControl(sim, "speed", 1) {
		t.Fatal("unknown control key must be rejected")
	}
	if sim.Rule() != 30 {
		t.Fatalf("rule changed to %d by a rejected adjustment", sim.Rule())
	}
}

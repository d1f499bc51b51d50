package pricing

import "testing"

func TestWaterfall_Layout(t *testing.T) {
	b := Estimate(10, Parameters{BaseFee: 20, PerKmRate: 10, SurgeMultiplier: 1.5, DiscountPercent: 20, MinTotal: 30})
	steps := Waterfall(b, false)

	wantLabels := []string{"Base Fee", "Distance", "Surge", "Discount", "Final Total"}
	if len(steps) != len(wantLabels) {
		t.Fatalf("expected %d steps, got %d", len(wantLabels), len(steps))
	}
	for i, label := range wantLabels {
		if steps[i].Label != label {
			t.Errorf("step %d label = %q, want %q", i, steps[i].Label, label)
		}
	}
	if steps[0].Kind != StepAbsolute || steps[4].Kind != StepTotal {
		t.Errorf("unexpected kinds: %+v", steps)
	}
	if steps[3].Amount != -36 {
		t.Errorf("discount step = %v, want -36", steps[3].Amount)
	}

	sum := 0.0
	for _, s := range steps[:4] {
		sum += s.Amount
	}
	if sum != steps[4].Amount {
		t.Errorf("steps sum to %v, total is %v", sum, steps[4].Amount)
	}
}

func TestWaterfall_ReconciledAddsFloorStep(t *testing.T) {
	b := Estimate(1, Parameters{BaseFee: 20, PerKmRate: 10, SurgeMultiplier: 1, DiscountPercent: 50, MinTotal: 30})

	plain := Waterfall(b, false)
	if len(plain) != 5 {
		t.Fatalf("expected 5 steps without reconciliation, got %d", len(plain))
	}

	steps := Waterfall(b, true)
	if len(steps) != 6 {
		t.Fatalf("expected 6 steps, got %d", len(steps))
	}
	if steps[4].Label != "Minimum Fare" || steps[4].Amount != 15 {
		t.Errorf("unexpected floor step: %+v", steps[4])
	}

	sum := 0.0
	for _, s := range steps[:5] {
		sum += s.Amount
	}
	if sum != b.FinalTotal {
		t.Errorf("reconciled steps sum to %v, want %v", sum, b.FinalTotal)
	}
}

func TestWaterfall_ReconciledWithoutFloor(t *testing.T) {
	b := Estimate(10, DefaultParameters())
	if got := len(Waterfall(b, true)); got != 5 {
		t.Errorf("expected no floor step when floor is inactive, got %d steps", got)
	}
}

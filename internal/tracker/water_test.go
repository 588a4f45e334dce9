package tracker

import "testing"

func TestWaterIncrementSaturates(t *testing.T) {
	t.Parallel()
	tr, _ := newTestTracker(t)

	for i := 0; i < MaxWaterGlasses+5; i++ {
		got := tr.AddGlass()
		if got < 0 || got > MaxWaterGlasses {
			t.Fatalf("glasses out of bounds: %d", got)
		}
	}
	if tr.Glasses() != MaxWaterGlasses {
		t.Fatalf("expected saturation at %d, got %d", MaxWaterGlasses, tr.Glasses())
	}
}

func TestWaterSetAndReset(t *testing.T) {
	t.Parallel()
	tr, _ := newTestTracker(t)

	if err := tr.SetGlasses(5); err != nil {
		t.Fatalf("set glasses: %v", err)
	}
	if tr.Glasses() != 5 {
		t.Fatalf("expected 5 glasses, got %d", tr.Glasses())
	}
	if err := tr.SetGlasses(-1); err == nil {
		t.Fatalf("expected error for negative glasses")
	}
	if err := tr.SetGlasses(MaxWaterGlasses + 1); err == nil {
		t.Fatalf("expected error above upper bound")
	}
	if tr.Glasses() != 5 {
		t.Fatalf("rejected set must not change state, got %d", tr.Glasses())
	}
	tr.ResetWater()
	if tr.Glasses() != 0 {
		t.Fatalf("expected 0 after reset, got %d", tr.Glasses())
	}
}

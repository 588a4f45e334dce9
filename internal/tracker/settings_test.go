package tracker

import "testing"

func TestSetSettingValidatesWeightUnit(t *testing.T) {
	t.Parallel()
	tr, _ := newTestTracker(t)

	if err := tr.SetSetting(SettingWeightUnit, "stone"); err == nil {
		t.Fatalf("expected error for unknown weight unit")
	}
	if _, ok := tr.Setting(SettingWeightUnit); ok {
		t.Fatalf("rejected value must not be stored")
	}

	if err := tr.SetSetting(SettingWeightUnit, " LB "); err != nil {
		t.Fatalf("set weight unit: %v", err)
	}
	if unit, _ := tr.Setting(SettingWeightUnit); unit != "lb" {
		t.Fatalf("expected normalized unit lb, got %q", unit)
	}
}

func TestSetSettingRequiresKey(t *testing.T) {
	t.Parallel()
	tr, _ := newTestTracker(t)

	if err := tr.SetSetting("  ", "x"); err == nil {
		t.Fatalf("expected error for empty key")
	}
	if err := tr.SetSetting(SettingReportDir, "/tmp/reports"); err != nil {
		t.Fatalf("set report dir: %v", err)
	}
	if dir, _ := tr.Setting(SettingReportDir); dir != "/tmp/reports" {
		t.Fatalf("report dir not stored: %q", dir)
	}
}

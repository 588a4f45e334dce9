package tests

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestDayInTheLifeFlow(t *testing.T) {
	binPath := buildFittronixBinary(t)
	storePath := filepath.Join(t.TempDir(), "fittronix.db")
	initStore(t, binPath, storePath)

	_, stderr, exit := runFittronix(t, binPath, storePath,
		"profile", "set",
		"--gender", "male",
		"--age", "30",
		"--height", "175",
		"--weight", "70",
		"--activity", "sedentary",
		"--goal", "maintain",
		"--meals", "3",
	)
	if exit != 0 {
		t.Fatalf("profile set failed: exit=%d stderr=%s", exit, stderr)
	}

	stdout, stderr, exit := runFittronix(t, binPath, storePath, "metrics")
	if exit != 0 {
		t.Fatalf("metrics failed: exit=%d stderr=%s", exit, stderr)
	}
	if !strings.Contains(stdout, "Normal weight") {
		t.Fatalf("metrics output: %s", stdout)
	}

	_, stderr, exit = runFittronix(t, binPath, storePath,
		"food", "add",
		"--name", "Breakfast bowl",
		"--calories", "500",
		"--protein", "30",
		"--carbs", "45",
		"--fats", "18",
		"--meal", "breakfast",
	)
	if exit != 0 {
		t.Fatalf("food add failed: exit=%d stderr=%s", exit, stderr)
	}

	_, stderr, exit = runFittronix(t, binPath, storePath, "water", "set", "3")
	if exit != 0 {
		t.Fatalf("water set failed: exit=%d stderr=%s", exit, stderr)
	}

	stdout, stderr, exit = runFittronix(t, binPath, storePath, "progress")
	if exit != 0 {
		t.Fatalf("progress failed: exit=%d stderr=%s", exit, stderr)
	}
	if !strings.Contains(stdout, "Intake: 500 kcal") {
		t.Fatalf("progress output: %s", stdout)
	}
	if !strings.Contains(stdout, "Water: 3/8 glasses (38%)") {
		t.Fatalf("progress output: %s", stdout)
	}

	stdout, stderr, exit = runFittronix(t, binPath, storePath, "report", "daily")
	if exit != 0 {
		t.Fatalf("report daily failed: exit=%d stderr=%s", exit, stderr)
	}
	for _, want := range []string{`"type": "daily"`, "Personal Information", "Today's Food Intake", "Daily Progress"} {
		if !strings.Contains(stdout, want) {
			t.Fatalf("daily report missing %q: %s", want, stdout)
		}
	}

	stdout, _, exit = runFittronix(t, binPath, storePath, "report", "weekly")
	if exit != 0 {
		t.Fatalf("report weekly failed: exit=%d", exit)
	}
	if strings.Contains(stdout, "Daily Progress") {
		t.Fatalf("weekly report must not carry progress: %s", stdout)
	}

	exportPath := filepath.Join(t.TempDir(), "archive.json")
	_, stderr, exit = runFittronix(t, binPath, storePath, "export", "--out", exportPath)
	if exit != 0 {
		t.Fatalf("export failed: exit=%d stderr=%s", exit, stderr)
	}

	freshStore := filepath.Join(t.TempDir(), "fresh.db")
	initStore(t, binPath, freshStore)
	stdout, stderr, exit = runFittronix(t, binPath, freshStore, "import", "--in", exportPath, "--replace")
	if exit != 0 {
		t.Fatalf("import failed: exit=%d stderr=%s", exit, stderr)
	}
	if !strings.Contains(stdout, "Imported entries: 1") {
		t.Fatalf("import output: %s", stdout)
	}

	_, stderr, exit = runFittronix(t, binPath, freshStore, "doctor")
	if exit != 0 {
		t.Fatalf("doctor failed on healthy store: exit=%d stderr=%s", exit, stderr)
	}
}

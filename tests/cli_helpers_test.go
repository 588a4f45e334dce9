package tests

import (
	"bytes"
	"os/exec"
	"path/filepath"
	"testing"
)

func buildFittronixBinary(t *testing.T) string {
	t.Helper()
	repoRoot, err := filepath.Abs("..")
	if err != nil {
		t.Fatalf("resolve repo root: %v", err)
	}
	binPath := filepath.Join(t.TempDir(), "fittronix")
	cmd := exec.Command("go", "build", "-o", binPath, ".")
	cmd.Dir = repoRoot
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("build fittronix binary: %v\n%s", err, string(out))
	}
	return binPath
}

func runFittronix(t *testing.T, binPath, storePath string, args ...string) (string, string, int) {
	t.Helper()
	allArgs := append([]string{"--store", storePath}, args...)
	cmd := exec.Command(binPath, allArgs...)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	if err == nil {
		return stdout.String(), stderr.String(), 0
	}
	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("run fittronix command: %v", err)
	}
	return stdout.String(), stderr.String(), exitErr.ExitCode()
}

func initStore(t *testing.T, binPath, storePath string) {
	t.Helper()
	_, stderr, exit := runFittronix(t, binPath, storePath, "init")
	if exit != 0 {
		t.Fatalf("init store failed: exit=%d stderr=%s", exit, stderr)
	}
}

package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Bharu-A/fittronix-cli/internal/store"
)

func TestBackupCreateAndVerify(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	src := filepath.Join(dir, "fittronix.db")
	if err := os.WriteFile(src, []byte("store bytes"), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}

	out := filepath.Join(dir, "backups", "fittronix.bak")
	info, err := store.CreateBackup(src, out)
	if err != nil {
		t.Fatalf("create backup: %v", err)
	}
	if info.Checksum == "" || info.SizeBytes == 0 {
		t.Fatalf("incomplete backup info: %+v", info)
	}
	if err := store.VerifyBackup(out); err != nil {
		t.Fatalf("verify backup: %v", err)
	}

	// Tampering must fail verification.
	if err := os.WriteFile(out, []byte("tampered"), 0o644); err != nil {
		t.Fatalf("tamper: %v", err)
	}
	if err := store.VerifyBackup(out); err == nil {
		t.Fatalf("expected checksum mismatch")
	}
}

func TestBackupRequiresPaths(t *testing.T) {
	t.Parallel()
	if _, err := store.CreateBackup("", "out"); err == nil {
		t.Fatalf("expected error for empty store path")
	}
	if _, err := store.CreateBackup("in", ""); err == nil {
		t.Fatalf("expected error for empty output path")
	}
}

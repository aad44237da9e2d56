package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"rankcore/pkg/domain"
	"rankcore/pkg/rankxml"
)

func TestRunRegeneratesWithBackupsAndSession(t *testing.T) {
	t.Setenv("RANKCORE_STORAGE_DRIVER", "memory")
	t.Setenv("RANKCORE_BLOB_DRIVER", "")

	dir := t.TempDir()
	in := filepath.Join(dir, "ranks.xml")
	h := domain.NewHierarchy(
		domain.NewRank("Rookie", 0, 1000),
		domain.NewRank("Officer", 100, 2000),
	)
	data, err := rankxml.Serialize(h)
	if err != nil {
		t.Fatalf("serialize fixture: %v", err)
	}
	if err := os.WriteFile(in, data, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	out := filepath.Join(dir, "out.xml")
	backupDir := filepath.Join(dir, "backups")
	logger := zapLogger{s: zap.NewNop().Sugar()}
	if code := run(context.Background(), logger, in, out, "", backupDir, false, 2, true); code != 0 {
		t.Fatalf("run exited %d", code)
	}

	rendered, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(rendered) != string(data) {
		t.Fatalf("canonical fixture not regenerated byte-identically")
	}
	entries, err := os.ReadDir(filepath.Join(backupDir, "backups"))
	if err != nil || len(entries) == 0 {
		t.Fatalf("no backup written: entries=%d err=%v", len(entries), err)
	}
}

func TestRunValidateOnlyExitCodeOnErrors(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "ranks.xml")
	h := domain.NewHierarchy(domain.NewRank("Rookie", -1, 1000))
	data, err := rankxml.Serialize(h)
	if err != nil {
		t.Fatalf("serialize fixture: %v", err)
	}
	if err := os.WriteFile(in, data, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	logger := zapLogger{s: zap.NewNop().Sugar()}
	if code := run(context.Background(), logger, in, "", "", "", true, 2, false); code != 1 {
		t.Fatalf("validate-only with errors exited %d, want 1", code)
	}
}

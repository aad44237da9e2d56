package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"rankcore/pkg/domain"
)

func newTempStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "session.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSnapshotRoundTrip(t *testing.T) {
	store := newTempStore(t)
	ctx := context.Background()

	rookie := domain.NewRank("Rookie", 0, 1000)
	rookie.Stations = []domain.StationAssignment{{StationName: "Mission Row", Zones: []string{"Downtown"}}}
	snapshot := domain.Snapshot{
		Ranks:      []*domain.Rank{rookie},
		Dismissals: []string{"key-1", "key-2"},
		Settings:   map[string]string{domain.SettingBackupRetention: "7"},
	}
	if err := store.SaveSnapshot(ctx, snapshot); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, found, err := store.LoadSnapshot(ctx)
	if err != nil || !found {
		t.Fatalf("load: found=%v err=%v", found, err)
	}
	if len(loaded.Ranks) != 1 || loaded.Ranks[0].Stations[0].StationName != "Mission Row" {
		t.Fatalf("ranks = %v", loaded.Ranks)
	}
	if len(loaded.Dismissals) != 2 {
		t.Fatalf("dismissals = %v", loaded.Dismissals)
	}
	if loaded.Settings[domain.SettingBackupRetention] != "7" {
		t.Fatalf("settings = %v", loaded.Settings)
	}
}

func TestSaveReplacesPreviousSnapshot(t *testing.T) {
	store := newTempStore(t)
	ctx := context.Background()

	first := domain.Snapshot{Ranks: []*domain.Rank{domain.NewRank("Rookie", 0, 1000)}}
	if err := store.SaveSnapshot(ctx, first); err != nil {
		t.Fatalf("save: %v", err)
	}
	second := domain.Snapshot{Ranks: []*domain.Rank{
		domain.NewRank("Rookie", 0, 1000),
		domain.NewRank("Officer", 100, 2000),
	}}
	if err := store.SaveSnapshot(ctx, second); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, found, err := store.LoadSnapshot(ctx)
	if err != nil || !found {
		t.Fatalf("load: found=%v err=%v", found, err)
	}
	if len(loaded.Ranks) != 2 {
		t.Fatalf("ranks = %d, want the replacing snapshot", len(loaded.Ranks))
	}
}

func TestLoadSnapshotEmptyDatabase(t *testing.T) {
	store := newTempStore(t)
	_, found, err := store.LoadSnapshot(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if found {
		t.Fatalf("fresh database reported a snapshot")
	}
}

func TestPathDefault(t *testing.T) {
	store := newTempStore(t)
	if store.Path() == "" {
		t.Fatalf("path should be recorded")
	}
}

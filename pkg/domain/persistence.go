package domain

import "context"

// Snapshot captures a point-in-time copy of an editing session: the rank
// tree, dismissed advisory keys, and operator settings. Buckets are
// independently serialized by the persistence backends.
type Snapshot struct {
	Ranks      []*Rank           `json:"ranks"`
	Dismissals []string          `json:"dismissals"`
	Settings   map[string]string `json:"settings"`
}

// Setting keys consumed by the core.
const (
	// SettingBackupRetention is the number of XML backups kept after a
	// generation pass (decimal string, default applied by the service).
	SettingBackupRetention = "backup_retention"
)

// SessionStore is a minimal abstraction over durable session backends. It
// persists whole snapshots; transactional granularity lives in the command
// engine, not the store.
type SessionStore interface {
	SaveSnapshot(ctx context.Context, snapshot Snapshot) error
	// LoadSnapshot returns the stored snapshot and whether one existed.
	LoadSnapshot(ctx context.Context) (Snapshot, bool, error)
	Close() error
}

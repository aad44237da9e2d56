package core

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"time"

	blobcore "rankcore/internal/blob/core"
)

// DefaultBackupRetention is the number of generated-file backups kept when
// the setting is absent or unparseable.
const DefaultBackupRetention = 10

// Archiver writes timestamped copies of the generated XML file to a blob
// store and prunes the oldest copies past the retention count. Keys embed an
// UTC timestamp so lexical order equals chronological order.
type Archiver struct {
	store     blobcore.Store
	prefix    string
	retention int
	now       func() time.Time
}

// NewArchiver builds an archiver over the given store. Retention values
// below one fall back to DefaultBackupRetention.
func NewArchiver(store blobcore.Store, prefix string, retention int) *Archiver {
	if retention < 1 {
		retention = DefaultBackupRetention
	}
	if prefix == "" {
		prefix = "backups"
	}
	return &Archiver{store: store, prefix: prefix, retention: retention, now: time.Now}
}

// SetRetention adjusts how many backups survive pruning.
func (a *Archiver) SetRetention(n int) {
	if n >= 1 {
		a.retention = n
	}
}

// Write stores one backup and prunes past retention, returning the key.
func (a *Archiver) Write(ctx context.Context, data []byte) (string, error) {
	key := fmt.Sprintf("%s/ranks-%s.xml", a.prefix, a.now().UTC().Format("20060102T150405.000"))
	if _, err := a.store.Put(ctx, key, bytes.NewReader(data), blobcore.PutOptions{ContentType: "application/xml"}); err != nil {
		return "", fmt.Errorf("write backup: %w", err)
	}
	if err := a.prune(ctx); err != nil {
		return key, err
	}
	return key, nil
}

func (a *Archiver) prune(ctx context.Context) error {
	infos, err := a.store.List(ctx, a.prefix+"/")
	if err != nil {
		return fmt.Errorf("list backups: %w", err)
	}
	if len(infos) <= a.retention {
		return nil
	}
	keys := make([]string, len(infos))
	for i, info := range infos {
		keys[i] = info.Key
	}
	sort.Strings(keys)
	for _, key := range keys[:len(keys)-a.retention] {
		if _, err := a.store.Delete(ctx, key); err != nil {
			return fmt.Errorf("prune backup %s: %w", key, err)
		}
	}
	return nil
}

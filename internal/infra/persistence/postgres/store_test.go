package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"rankcore/pkg/domain"
)

// stubConn implements just enough of database/sql/driver to back the bucket
// scheme: table creation, upserts, and full-table selects.
type stubConn struct {
	execs   []string
	buckets map[string][]byte
}

func newStubDB() (*sql.DB, *stubConn) {
	conn := &stubConn{buckets: make(map[string][]byte)}
	name := fmt.Sprintf("stubpg%d", time.Now().UnixNano())
	sql.Register(name, &stubDriver{conn: conn})
	db, err := sql.Open(name, "stub")
	if err != nil {
		panic(err)
	}
	return db, conn
}

type stubDriver struct {
	conn *stubConn
}

func (d *stubDriver) Open(string) (driver.Conn, error) { return d.conn, nil }

func (c *stubConn) Prepare(string) (driver.Stmt, error) { return nil, fmt.Errorf("not implemented") }
func (c *stubConn) Close() error                        { return nil }
func (c *stubConn) Begin() (driver.Tx, error)           { return stubTx{}, nil }
func (c *stubConn) Ping(context.Context) error          { return nil }

func (c *stubConn) BeginTx(context.Context, driver.TxOptions) (driver.Tx, error) {
	return stubTx{}, nil
}

func (c *stubConn) ExecContext(_ context.Context, query string, args []driver.NamedValue) (driver.Result, error) {
	c.execs = append(c.execs, query)
	if strings.HasPrefix(strings.ToUpper(strings.TrimSpace(query)), "INSERT INTO STATE") {
		if len(args) != 2 {
			return nil, fmt.Errorf("upsert wants 2 args, got %d", len(args))
		}
		bucket, _ := args[0].Value.(string)
		payload, _ := args[1].Value.([]byte)
		c.buckets[bucket] = append([]byte(nil), payload...)
	}
	return driver.RowsAffected(1), nil
}

func (c *stubConn) QueryContext(_ context.Context, query string, _ []driver.NamedValue) (driver.Rows, error) {
	if !strings.Contains(strings.ToUpper(query), "FROM STATE") {
		return nil, fmt.Errorf("unexpected query %q", query)
	}
	rows := &stubRows{cols: []string{"bucket", "payload"}}
	for bucket, payload := range c.buckets {
		rows.rows = append(rows.rows, []driver.Value{bucket, append([]byte(nil), payload...)})
	}
	return rows, nil
}

type stubTx struct{}

func (stubTx) Commit() error   { return nil }
func (stubTx) Rollback() error { return nil }

type stubRows struct {
	cols []string
	rows [][]driver.Value
	idx  int
}

func (r *stubRows) Columns() []string { return r.cols }
func (r *stubRows) Close() error      { return nil }

func (r *stubRows) Next(dest []driver.Value) error {
	if r.idx >= len(r.rows) {
		return io.EOF
	}
	copy(dest, r.rows[r.idx])
	r.idx++
	return nil
}

func withStubDB(t *testing.T) (*Store, *stubConn) {
	t.Helper()
	db, conn := newStubDB()
	openMu.Lock()
	prev := sqlOpen
	sqlOpen = func(string, string) (*sql.DB, error) { return db, nil }
	openMu.Unlock()
	t.Cleanup(func() {
		openMu.Lock()
		sqlOpen = prev
		openMu.Unlock()
	})
	store, err := NewStore("")
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return store, conn
}

func TestNewStoreEnsuresStateTable(t *testing.T) {
	_, conn := withStubDB(t)
	var sawDDL bool
	for _, stmt := range conn.execs {
		if strings.Contains(strings.ToUpper(stmt), "CREATE TABLE") {
			sawDDL = true
			break
		}
	}
	if !sawDDL {
		t.Fatalf("state table DDL not applied, execs: %v", conn.execs)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	store, _ := withStubDB(t)
	ctx := context.Background()

	snapshot := domain.Snapshot{
		Ranks:      []*domain.Rank{domain.NewRank("Rookie", 0, 1000)},
		Dismissals: []string{"key-1"},
		Settings:   map[string]string{domain.SettingBackupRetention: "5"},
	}
	if err := store.SaveSnapshot(ctx, snapshot); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, found, err := store.LoadSnapshot(ctx)
	if err != nil || !found {
		t.Fatalf("load: found=%v err=%v", found, err)
	}
	if len(loaded.Ranks) != 1 || loaded.Ranks[0].Name != "Rookie" {
		t.Fatalf("ranks = %v", loaded.Ranks)
	}
	if len(loaded.Dismissals) != 1 || loaded.Dismissals[0] != "key-1" {
		t.Fatalf("dismissals = %v", loaded.Dismissals)
	}
	if loaded.Settings[domain.SettingBackupRetention] != "5" {
		t.Fatalf("settings = %v", loaded.Settings)
	}
}

func TestLoadSnapshotEmptyStore(t *testing.T) {
	store, _ := withStubDB(t)
	_, found, err := store.LoadSnapshot(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if found {
		t.Fatalf("empty store reported a snapshot")
	}
}

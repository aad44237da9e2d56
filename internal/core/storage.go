package core

import (
	"context"
	"fmt"
	"os"

	blobcore "rankcore/internal/blob/core"
	blobfs "rankcore/internal/infra/blob/fs"
	blobmem "rankcore/internal/infra/blob/memory"
	blobs3 "rankcore/internal/infra/blob/s3"
	"rankcore/internal/infra/persistence/memory"
	"rankcore/internal/infra/persistence/postgres"
	"rankcore/internal/infra/persistence/sqlite"
	"rankcore/pkg/domain"
)

// StorageDriver identifies a concrete session store implementation.
type StorageDriver string

const (
	StorageMemory   StorageDriver = "memory"   // in-memory only (tests / ephemeral)
	StorageSQLite   StorageDriver = "sqlite"   // embedded sqlite file
	StoragePostgres StorageDriver = "postgres" // PostgreSQL server
)

// OpenSessionStore selects a session store backend using environment
// variables. Defaults to sqlite when unset.
//
//	RANKCORE_STORAGE_DRIVER: memory|sqlite|postgres (default sqlite)
//	RANKCORE_SQLITE_PATH: path to sqlite file (default ./rankcore.db)
//	RANKCORE_POSTGRES_DSN: postgres DSN when driver=postgres
func OpenSessionStore() (domain.SessionStore, error) {
	driver := os.Getenv("RANKCORE_STORAGE_DRIVER")
	if driver == "" {
		driver = string(StorageSQLite)
	}
	switch StorageDriver(driver) {
	case StorageMemory:
		return memory.NewStore(), nil
	case StorageSQLite:
		return sqlite.NewStore(os.Getenv("RANKCORE_SQLITE_PATH"))
	case StoragePostgres:
		return postgres.NewStore(os.Getenv("RANKCORE_POSTGRES_DSN"))
	default:
		return nil, fmt.Errorf("unknown storage driver %s", driver)
	}
}

// OpenBackupStore selects a blob store backend for generated-file backups
// using environment variables. A non-empty fsRoot overrides the filesystem
// root from the environment (CLI flag precedence).
//
//	RANKCORE_BLOB_DRIVER: fs|s3|memory (default fs)
//	RANKCORE_BLOB_FS_ROOT: directory root when driver=fs (default ./backupdata)
//	(S3 specific variables documented in the s3 package)
func OpenBackupStore(ctx context.Context, fsRoot string) (blobcore.Store, error) {
	driver := os.Getenv("RANKCORE_BLOB_DRIVER")
	if driver == "" {
		driver = string(blobcore.DriverFilesystem)
	}
	switch blobcore.Driver(driver) {
	case blobcore.DriverFilesystem:
		if fsRoot == "" {
			fsRoot = os.Getenv("RANKCORE_BLOB_FS_ROOT")
		}
		return blobfs.New(fsRoot)
	case blobcore.DriverS3:
		return blobs3.OpenFromEnv(ctx)
	case blobcore.DriverMemory:
		return blobmem.New(), nil
	default:
		return nil, fmt.Errorf("unknown blob driver %s", driver)
	}
}

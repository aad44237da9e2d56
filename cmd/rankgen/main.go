// Command rankgen validates a rank hierarchy file against the reference
// catalogs and regenerates it in canonical form, archiving a timestamped
// backup of the previous output.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"rankcore/internal/catalog"
	"rankcore/internal/core"
	"rankcore/pkg/rankxml"
)

var exitFunc = os.Exit

// zapLogger adapts a sugared zap logger to the service logging contract.
type zapLogger struct {
	s *zap.SugaredLogger
}

func (l zapLogger) Debug(msg string, kv ...any) { l.s.Debugw(msg, kv...) }
func (l zapLogger) Info(msg string, kv ...any)  { l.s.Infow(msg, kv...) }
func (l zapLogger) Warn(msg string, kv ...any)  { l.s.Warnw(msg, kv...) }
func (l zapLogger) Error(msg string, kv ...any) { l.s.Errorw(msg, kv...) }

func main() {
	in := flag.String("in", "ranks.xml", "rank hierarchy XML file to load")
	out := flag.String("out", "", "output path (defaults to the input path)")
	catalogDir := flag.String("catalogs", "", "directory holding stations.yaml, vehicles.yaml, outfits.yaml")
	validateOnly := flag.Bool("validate-only", false, "report issues without writing output")
	backupDir := flag.String("backup-dir", "", "filesystem root for timestamped backups (RANKCORE_BLOB_DRIVER selects other backends)")
	retention := flag.Int("retention", core.DefaultBackupRetention, "number of backups to keep")
	session := flag.Bool("session", false, "persist the session through the configured storage driver")
	flag.Parse()

	zl, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "init logger:", err)
		exitFunc(1)
		return
	}
	defer func() { _ = zl.Sync() }()
	logger := zapLogger{s: zl.Sugar()}

	exitFunc(run(context.Background(), logger, *in, *out, *catalogDir, *backupDir, *validateOnly, *retention, *session))
}

func run(ctx context.Context, logger core.Logger, in, out, catalogDir, backupDir string, validateOnly bool, retention int, session bool) int {
	data, err := os.ReadFile(in)
	if err != nil {
		logger.Error("read input", "path", in, "error", err)
		return 1
	}
	hierarchy, err := rankxml.Deserialize(data)
	if err != nil {
		logger.Error("parse input", "path", in, "error", err)
		return 1
	}

	stations := catalog.NewStations()
	vehicles := catalog.NewVehicles()
	outfits := catalog.NewOutfits()
	if catalogDir != "" {
		stations, vehicles, outfits, err = catalog.LoadDir(catalogDir)
		if err != nil {
			logger.Error("load catalogs", "dir", catalogDir, "error", err)
			return 1
		}
	}

	opts := []core.ServiceOption{core.WithLogger(logger), core.WithMetrics(core.NewExpvarMetricsRecorder("rankgen"))}
	if backupDir != "" || os.Getenv("RANKCORE_BLOB_DRIVER") != "" {
		store, err := core.OpenBackupStore(ctx, backupDir)
		if err != nil {
			logger.Error("open backup store", "dir", backupDir, "error", err)
			return 1
		}
		opts = append(opts, core.WithBackups(core.NewArchiver(store, "backups", retention)))
	}
	if session {
		store, err := core.OpenSessionStore()
		if err != nil {
			logger.Error("open session store", "error", err)
			return 1
		}
		defer func() { _ = store.Close() }()
		opts = append(opts, core.WithStore(store))
	}
	svc := core.NewService(hierarchy, core.NewDefaultRulesEngine(), stations, vehicles, outfits, opts...)

	result, err := svc.Validate(ctx)
	if err != nil {
		logger.Error("validate", "error", err)
		return 1
	}
	for _, issue := range result.Issues {
		fmt.Fprintf(os.Stderr, "%s: %s: %s\n", issue.Severity, issue.Rule, issue.Message)
	}
	if validateOnly {
		if result.HasErrors() {
			return 1
		}
		return 0
	}

	rendered, _, err := svc.GenerateXML(ctx)
	if err != nil {
		logger.Error("generate", "error", err)
		return 1
	}
	if out == "" {
		out = in
	}
	if err := os.WriteFile(out, rendered, 0o644); err != nil {
		logger.Error("write output", "path", out, "error", err)
		return 1
	}
	if session {
		if err := svc.SaveSession(ctx); err != nil {
			logger.Error("save session", "error", err)
			return 1
		}
	}
	logger.Info("hierarchy written", "path", out, "ranks", hierarchy.Len(), "issues", len(result.Issues))
	return 0
}

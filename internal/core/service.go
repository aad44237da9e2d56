package core

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"rankcore/pkg/domain"
	"rankcore/pkg/rankxml"
)

// Logger is the minimal structured logging contract the service emits
// through. Key-value pairs follow the message, sugared style.
type Logger interface {
	Debug(msg string, kv ...any)
	Info(msg string, kv ...any)
	Warn(msg string, kv ...any)
	Error(msg string, kv ...any)
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// Service orchestrates one editing session: it owns the hierarchy, routes
// every mutation through the command history, re-runs validation to
// completion before a caller observes the new state, and gates file
// generation on the outcome. All methods are single-threaded by contract.
type Service struct {
	hierarchy *Hierarchy
	history   *History
	engine    *RulesEngine
	stations  StationCatalog
	vehicles  VehicleCatalog
	outfits   OutfitCatalog

	dismissed map[string]struct{}
	settings  map[string]string
	store     domain.SessionStore
	archiver  *Archiver
	logger    Logger
	metrics   MetricsRecorder
	now       func() time.Time
}

// ServiceOption customizes service construction.
type ServiceOption func(*Service)

// WithLogger attaches a structured logger.
func WithLogger(l Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics attaches an operation metrics recorder.
func WithMetrics(m MetricsRecorder) ServiceOption {
	return func(s *Service) { s.metrics = m }
}

// WithStore attaches a durable session store.
func WithStore(store domain.SessionStore) ServiceOption {
	return func(s *Service) { s.store = store }
}

// WithBackups attaches a backup archiver for generated files.
func WithBackups(a *Archiver) ServiceOption {
	return func(s *Service) { s.archiver = a }
}

// WithHistoryCapacity overrides the undo/redo stack bound.
func WithHistoryCapacity(n int) ServiceOption {
	return func(s *Service) { s.history = NewHistory(n) }
}

// WithClock overrides the time source (tests).
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService wires a session over the given hierarchy, rules engine, and
// read-only catalogs.
func NewService(h *Hierarchy, engine *RulesEngine, stations StationCatalog, vehicles VehicleCatalog, outfits OutfitCatalog, opts ...ServiceOption) *Service {
	s := &Service{
		hierarchy: h,
		history:   NewHistory(DefaultHistoryCapacity),
		engine:    engine,
		stations:  stations,
		vehicles:  vehicles,
		outfits:   outfits,
		dismissed: make(map[string]struct{}),
		settings:  make(map[string]string),
		logger:    noopLogger{},
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Hierarchy returns the live hierarchy being edited.
func (s *Service) Hierarchy() *Hierarchy { return s.hierarchy }

// History exposes the undo/redo stacks for UI state (button enablement,
// stack labels).
func (s *Service) History() *History { return s.history }

// Setting returns an operator setting value and whether it was present.
func (s *Service) Setting(key string) (string, bool) {
	v, ok := s.settings[key]
	return v, ok
}

// PutSetting stores an operator setting.
func (s *Service) PutSetting(key, value string) { s.settings[key] = value }

// Apply executes the command through the history and revalidates before
// returning, so the caller never observes a stale issue list.
func (s *Service) Apply(ctx context.Context, cmd Command) (Result, error) {
	start := s.now()
	err := s.history.Apply(cmd)
	if err != nil {
		s.observe(ctx, "apply", false, start)
		return Result{}, err
	}
	res, err := s.Validate(ctx)
	s.observe(ctx, "apply", err == nil, start)
	if err != nil {
		return Result{}, err
	}
	s.logger.Debug("command applied", "description", cmd.Description(), "issues", len(res.Issues))
	return res, nil
}

// Undo reverses the most recent command and revalidates. The boolean
// reports whether there was anything to undo.
func (s *Service) Undo(ctx context.Context) (Result, bool, error) {
	start := s.now()
	ok, err := s.history.Undo()
	if err != nil || !ok {
		s.observe(ctx, "undo", err == nil, start)
		return Result{}, ok, err
	}
	res, err := s.Validate(ctx)
	s.observe(ctx, "undo", err == nil, start)
	return res, true, err
}

// Redo re-applies the most recently undone command and revalidates.
func (s *Service) Redo(ctx context.Context) (Result, bool, error) {
	start := s.now()
	ok, err := s.history.Redo()
	if err != nil || !ok {
		s.observe(ctx, "redo", err == nil, start)
		return Result{}, ok, err
	}
	res, err := s.Validate(ctx)
	s.observe(ctx, "redo", err == nil, start)
	return res, true, err
}

// Validate evaluates the full rule set against the current hierarchy and
// filters out dismissed advisories.
func (s *Service) Validate(ctx context.Context) (Result, error) {
	raw, err := s.engine.Evaluate(ctx, s.view())
	if err != nil {
		return Result{}, fmt.Errorf("evaluate rules: %w", err)
	}
	res := Result{}
	for _, issue := range raw.Issues {
		if issue.Severity == SeverityAdvisory {
			if _, dismissed := s.dismissed[issue.DismissKey()]; dismissed {
				continue
			}
		}
		res.Issues = append(res.Issues, issue)
	}
	return res, nil
}

// DismissAdvisory records an advisory's dismissal so re-validation does not
// resurface it. Non-advisory issues cannot be dismissed.
func (s *Service) DismissAdvisory(issue Issue) bool {
	if issue.Severity != SeverityAdvisory {
		return false
	}
	s.dismissed[issue.DismissKey()] = struct{}{}
	return true
}

// GenerateXML validates, renders the canonical file, and archives a backup.
// Error-severity issues block generation with a BlockedError; warnings pass
// through in the returned result for the caller to confirm.
func (s *Service) GenerateXML(ctx context.Context) ([]byte, Result, error) {
	start := s.now()
	res, err := s.Validate(ctx)
	if err != nil {
		s.observe(ctx, "generate", false, start)
		return nil, Result{}, err
	}
	if res.HasErrors() {
		s.observe(ctx, "generate", false, start)
		return nil, res, domain.BlockedError{Result: res}
	}
	data, err := rankxml.Serialize(s.hierarchy)
	if err != nil {
		s.observe(ctx, "generate", false, start)
		return nil, res, err
	}
	if s.archiver != nil {
		s.archiver.SetRetention(s.backupRetention())
		key, err := s.archiver.Write(ctx, data)
		if err != nil {
			s.observe(ctx, "generate", false, start)
			return nil, res, err
		}
		s.logger.Info("backup written", "key", key)
	}
	s.observe(ctx, "generate", true, start)
	return data, res, nil
}

// SaveSession snapshots the hierarchy, dismissed advisories, and settings
// through the session store.
func (s *Service) SaveSession(ctx context.Context) error {
	if s.store == nil {
		return nil
	}
	snapshot := domain.Snapshot{
		Ranks:    s.hierarchy.Clone().Ranks(),
		Settings: make(map[string]string, len(s.settings)),
	}
	for key := range s.dismissed {
		snapshot.Dismissals = append(snapshot.Dismissals, key)
	}
	for k, v := range s.settings {
		snapshot.Settings[k] = v
	}
	if err := s.store.SaveSnapshot(ctx, snapshot); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// LoadSession restores a stored snapshot, rebuilding arena links, and
// reports whether one existed. The undo history does not survive a restore.
func (s *Service) LoadSession(ctx context.Context) (bool, error) {
	if s.store == nil {
		return false, nil
	}
	snapshot, ok, err := s.store.LoadSnapshot(ctx)
	if err != nil {
		return false, fmt.Errorf("load session: %w", err)
	}
	if !ok {
		return false, nil
	}
	s.hierarchy = domain.NewHierarchy(snapshot.Ranks...)
	s.history = NewHistory(s.history.capacity)
	s.dismissed = make(map[string]struct{}, len(snapshot.Dismissals))
	for _, key := range snapshot.Dismissals {
		s.dismissed[key] = struct{}{}
	}
	if snapshot.Settings != nil {
		s.settings = snapshot.Settings
	}
	s.logger.Info("session restored", "ranks", s.hierarchy.Len())
	return true, nil
}

func (s *Service) view() RuleView {
	return hierarchyView{h: s.hierarchy, stations: s.stations, vehicles: s.vehicles, outfits: s.outfits}
}

func (s *Service) backupRetention() int {
	raw, ok := s.settings[domain.SettingBackupRetention]
	if !ok {
		return DefaultBackupRetention
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return DefaultBackupRetention
	}
	return n
}

func (s *Service) observe(ctx context.Context, op string, success bool, start time.Time) {
	if s.metrics == nil {
		return
	}
	s.metrics.Observe(ctx, op, success, s.now().Sub(start))
}

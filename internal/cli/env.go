package cli

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/x-color/kelvin/internal/config"
	"github.com/x-color/kelvin/internal/logger"
	"github.com/x-color/kelvin/internal/store"
	"github.com/x-color/kelvin/internal/task"
)

// commandEnv bundles everything a single command invocation needs: the
// loaded configuration, the store bound to the task file, and today's date.
// No state survives between invocations; the file is the source of truth.
type commandEnv struct {
	cfg   *config.Config
	store *store.Store
	log   *zap.Logger
	today task.Date
}

func newCommandEnv() (*commandEnv, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	path, err := cfg.DataFilePath()
	if err != nil {
		return nil, err
	}

	log := logger.New(verbose)
	if cfgPath, err := config.Path(); err == nil {
		log.Debug("using config file", zap.String("path", cfgPath))
	}
	log.Debug("using task file", zap.String("path", path))

	return &commandEnv{
		cfg:   cfg,
		store: store.New(path),
		log:   log,
		today: task.Today(),
	}, nil
}

// loadSwept loads the collection and runs the auto-thaw sweep over it, so
// every state a command sees is current as of today. Returns the tasks and
// the number the sweep changed; callers that would not otherwise write must
// persist when that count is non-zero.
func (e *commandEnv) loadSwept() ([]task.Task, int, error) {
	tasks, err := e.store.Load()
	if err != nil {
		return nil, 0, err
	}

	changed := task.Sweep(tasks, e.today)
	if changed > 0 {
		e.log.Debug("sweep promoted frozen tasks", zap.Int("count", changed))
	}

	return tasks, changed, nil
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid task id %q", arg)
	}
	return id, nil
}

// Package scorer runs the external title scoring program.
package scorer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/fx"
	"golang.org/x/sync/semaphore"

	"titlecheck/config"
	deliverycontext "titlecheck/internal/delivery/context"
	domainerrors "titlecheck/internal/domain/errors"
	"titlecheck/internal/domain/service"
	"titlecheck/internal/errors"
)

// waitDelay bounds how long output pipes are drained after the process is killed.
const waitDelay = 2 * time.Second

// ErrCommandRequired is returned when no scorer command is configured.
var ErrCommandRequired = errors.New("scorer command must be provided")

type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// processScorer spawns one scorer process per call and talks to it over stdin/stdout.
type processScorer struct {
	command string
	args    []string
	dir     string
	timeout time.Duration
	slots   *semaphore.Weighted // nil when unbounded
	logger  *slog.Logger
}

// New creates the scorer described by the scorer config section.
func New(params Params) (service.TitleScorer, error) {
	cfg := params.Config.Scorer
	if cfg == nil || strings.TrimSpace(cfg.Command) == "" {
		return nil, errors.WithStack(ErrCommandRequired)
	}

	scorer := &processScorer{
		command: cfg.Command,
		args:    append([]string(nil), cfg.Args...),
		dir:     cfg.Dir,
		timeout: cfg.Timeout,
		logger:  params.Logger,
	}
	if cfg.MaxConcurrent > 0 {
		scorer.slots = semaphore.NewWeighted(int64(cfg.MaxConcurrent))
	}

	return scorer, nil
}

// Score writes the title followed by a newline to the process and parses its stdout as one JSON value.
func (s *processScorer) Score(ctx context.Context, title string) (json.RawMessage, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	if s.slots != nil {
		if err := s.slots.Acquire(ctx, 1); err != nil {
			return nil, domainerrors.ErrScorerExecution.WrapMessage(fmt.Sprintf("wait for scorer slot: %v", err))
		}
		defer s.slots.Release(1)
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, s.command, s.args...)
	cmd.Dir = s.dir
	cmd.Stdin = strings.NewReader(title + "\n")
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay

	start := time.Now()
	runErr := cmd.Run()

	if stderr.Len() > 0 {
		logger.WarnContext(ctx, "scorer wrote to stderr",
			slog.String("stderr", strings.TrimSpace(stderr.String())))
	}

	if runErr != nil {
		logger.ErrorContext(ctx, "scorer execution failed",
			slog.String("command", s.command),
			slog.Duration("elapsed", time.Since(start)),
			slog.Any("error", runErr))

		return nil, domainerrors.ErrScorerExecution.WrapMessage(fmt.Sprintf("run %s: %v", s.command, runErr))
	}

	output := bytes.TrimSpace(stdout.Bytes())
	if !json.Valid(output) {
		logger.ErrorContext(ctx, "scorer output is not valid JSON",
			slog.Int("output_bytes", len(output)))

		return nil, domainerrors.ErrScorerOutput.WrapMessage("parse scorer output")
	}

	logger.DebugContext(ctx, "scorer finished", slog.Duration("elapsed", time.Since(start)))

	return json.RawMessage(output), nil
}

package scorer

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"titlecheck/config"
	domainerrors "titlecheck/internal/domain/errors"
	"titlecheck/internal/domain/service"
	"titlecheck/internal/errors"
)

func newShellScorer(t *testing.T, script string, modify ...func(*config.ScorerConfig)) service.TitleScorer {
	t.Helper()

	scorerCfg := &config.ScorerConfig{
		Command: "sh",
		Args:    []string{"-c", script},
	}
	for _, m := range modify {
		m(scorerCfg)
	}

	s, err := New(Params{
		Config: &config.Config{Scorer: scorerCfg},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	return s
}

func TestNew_RequiresCommand(t *testing.T) {
	_, err := New(Params{Config: &config.Config{Scorer: &config.ScorerConfig{}}, Logger: slog.Default()})
	assert.True(t, errors.Is(err, ErrCommandRequired))

	_, err = New(Params{Config: &config.Config{}, Logger: slog.Default()})
	assert.True(t, errors.Is(err, ErrCommandRequired))
}

func TestScore_EchoesJSON(t *testing.T) {
	s := newShellScorer(t, `read line; printf '{"title":"%s","score":0.8}\n' "$line"`)

	out, err := s.Score(context.Background(), "Attention Is All You Need")
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"Attention Is All You Need","score":0.8}`, string(out))
}

func TestScore_AcceptsAnyJSONValue(t *testing.T) {
	s := newShellScorer(t, `cat >/dev/null; echo '  [1, 2, 3]  '`)

	out, err := s.Score(context.Background(), "t")
	require.NoError(t, err)
	assert.Equal(t, "[1, 2, 3]", string(out))
}

func TestScore_StderrIgnored(t *testing.T) {
	s := newShellScorer(t, `cat >/dev/null; echo 'warning: model cold' >&2; echo '{"ok":true}'`)

	out, err := s.Score(context.Background(), "t")
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(out))
}

func TestScore_NonZeroExit(t *testing.T) {
	s := newShellScorer(t, `cat >/dev/null; echo '{"ok":true}'; exit 3`)

	_, err := s.Score(context.Background(), "t")
	assert.True(t, errors.Is(err, domainerrors.ErrScorerExecution))
}

func TestScore_MissingExecutable(t *testing.T) {
	s, err := New(Params{
		Config: &config.Config{Scorer: &config.ScorerConfig{Command: "/nonexistent/scorer-binary"}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	_, err = s.Score(context.Background(), "t")
	assert.True(t, errors.Is(err, domainerrors.ErrScorerExecution))
}

func TestScore_InvalidJSON(t *testing.T) {
	tests := []struct {
		name   string
		script string
	}{
		{name: "plain text", script: `cat >/dev/null; echo 'not json'`},
		{name: "empty output", script: `cat >/dev/null`},
		{name: "two values", script: `cat >/dev/null; echo '{"a":1}{"b":2}'`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newShellScorer(t, tt.script)

			_, err := s.Score(context.Background(), "t")
			assert.True(t, errors.Is(err, domainerrors.ErrScorerOutput))
		})
	}
}

func TestScore_Timeout(t *testing.T) {
	s := newShellScorer(t, `exec sleep 5`, func(c *config.ScorerConfig) {
		c.Timeout = 100 * time.Millisecond
	})

	start := time.Now()
	_, err := s.Score(context.Background(), "t")
	assert.True(t, errors.Is(err, domainerrors.ErrScorerExecution))
	assert.Less(t, time.Since(start), 4*time.Second)
}

func TestScore_ContextCanceledWhileWaitingForSlot(t *testing.T) {
	s := newShellScorer(t, `cat >/dev/null; echo '{}'`, func(c *config.ScorerConfig) {
		c.MaxConcurrent = 1
	})

	// Occupy the only slot.
	ps := s.(*processScorer)
	require.NoError(t, ps.slots.Acquire(context.Background(), 1))
	defer ps.slots.Release(1)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := s.Score(ctx, "t")
	assert.True(t, errors.Is(err, domainerrors.ErrScorerExecution))
}

func TestScore_SerializedWithSingleSlot(t *testing.T) {
	s := newShellScorer(t, `cat >/dev/null; sleep 0.2; echo '{}'`, func(c *config.ScorerConfig) {
		c.MaxConcurrent = 1
	})

	start := time.Now()

	var wg sync.WaitGroup
	for range 3 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Score(context.Background(), "t")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.GreaterOrEqual(t, time.Since(start), 600*time.Millisecond)
}

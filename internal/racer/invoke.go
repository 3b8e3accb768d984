package racer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/kballard/go-shellquote"
	"go.uber.org/zap"

	"github.com/ferret-dev/ferret/internal/config"
)

// Command selects which racer subcommand to invoke.
type Command string

const (
	CommandComplete Command = "complete-with-snippet"
	CommandDefine   Command = "find-definition"
)

// substituteFile tells racer to read file content from stdin instead of the
// context path.
const substituteFile = "-"

// RunResult carries the captured streams and exit status of one invocation.
type RunResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// CommandRunner executes the engine process. Injected in tests so nothing
// is actually spawned.
type CommandRunner func(ctx context.Context, env []string, stdin string, name string, args ...string) (RunResult, error)

// Client invokes racer once per request. Settings are snapshotted from the
// store at the start of each call, so a concurrent Replace never produces a
// half-updated invocation.
type Client struct {
	store  *config.Store
	logger *zap.SugaredLogger
	runner CommandRunner
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the diagnostic sink. Defaults to a nop logger.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithRunner replaces the process runner.
func WithRunner(runner CommandRunner) Option {
	return func(c *Client) {
		if runner != nil {
			c.runner = runner
		}
	}
}

// NewClient creates a racer client reading settings from store.
func NewClient(store *config.Store, opts ...Option) *Client {
	c := &Client{
		store:  store,
		logger: zap.NewNop().Sugar(),
		runner: defaultRunner,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run invokes racer with the buffer piped to stdin and returns the parsed
// matches in engine output order.
//
// A nonzero exit is absorbed: the command line, exit code, and captured
// streams go to the diagnostic log and the call yields zero matches. Only
// ErrEngineNotFound and ErrTimeout reach the caller as distinct conditions.
func (c *Client) Run(ctx context.Context, command Command, row, col int, buffer string, activePath string, openPaths []string) ([]Match, error) {
	settings := c.store.Snapshot()

	contextPath := ResolveContextPath(activePath, openPaths)
	args := []string{string(command), strconv.Itoa(row), strconv.Itoa(col), contextPath, substituteFile}
	env := BuildEnv(os.Environ(), settings.SearchPaths)

	ctx, cancel := context.WithTimeout(ctx, settings.Timeout())
	defer cancel()

	result, err := c.runner(ctx, env, buffer, settings.Racer, args...)
	if err != nil {
		cmdline := shellquote.Join(append([]string{settings.Racer}, args...)...)
		switch {
		case errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded):
			c.logger.Errorw("racer timed out", "cmd", cmdline, "timeout", settings.Timeout())
			return nil, fmt.Errorf("%w after %s", ErrTimeout, settings.Timeout())
		case errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist):
			c.logger.Errorw("racer executable missing", "racer", settings.Racer)
			return nil, fmt.Errorf("%w: %q", ErrEngineNotFound, settings.Racer)
		default:
			return nil, fmt.Errorf("run racer: %w", err)
		}
	}

	if result.ExitCode != 0 {
		cmdline := shellquote.Join(append([]string{settings.Racer}, args...)...)
		c.logger.Errorw("racer failed",
			"cmd", cmdline,
			"exit_code", result.ExitCode,
			"stdout", strings.TrimSpace(result.Stdout),
			"stderr", strings.TrimSpace(result.Stderr),
		)
		return nil, nil
	}

	matches, malformed := ParseOutput(command, result.Stdout)
	for _, line := range malformed {
		c.logger.Warnw("skipping malformed racer output line", "line", line)
	}
	return matches, nil
}

// defaultRunner spawns the process with all three streams piped, writes the
// buffer to stdin, and waits for exit. A nonzero exit is reported through
// RunResult, not as an error.
func defaultRunner(ctx context.Context, env []string, stdin string, name string, args ...string) (RunResult, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = env
	cmd.Stdin = strings.NewReader(stdin)
	cmd.SysProcAttr = sysProcAttr()

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := RunResult{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && ctx.Err() == nil {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, err
	}
	return result, nil
}

// Package ferret is the collaborator-facing API for editor integrations.
// The host editor hands over buffer text, a cursor position, and the paths
// of its open Rust documents; ferret shells out to racer and hands back
// formatted completion rows or a navigation target.
package ferret

import (
	"context"
	"errors"
	"runtime"

	"go.uber.org/zap"

	"github.com/ferret-dev/ferret/internal/config"
	"github.com/ferret-dev/ferret/internal/nav"
	"github.com/ferret-dev/ferret/internal/present"
	"github.com/ferret-dev/ferret/internal/racer"
)

var (
	// ErrNoResults means racer produced zero completion matches. Callers
	// should fall back to their default word completion.
	ErrNoResults = errors.New("no completion results")

	// ErrNoTarget means a definition lookup produced zero or ambiguous
	// results; no navigation should happen.
	ErrNoTarget = errors.New("no definition target")

	// ErrEngineNotFound is surfaced when the configured racer binary cannot
	// be executed; worth notifying the user about their settings.
	ErrEngineNotFound = racer.ErrEngineNotFound

	// ErrTimeout is surfaced when racer exceeds the invocation deadline.
	ErrTimeout = racer.ErrTimeout
)

// Settings configures the client. Zero values fall back to defaults
// ("racer" resolved via PATH, 10s timeout).
type Settings struct {
	// Racer is the path or name of the racer binary.
	Racer string

	// SearchPaths are prepended to RUST_SRC_PATH for the child process.
	// Entries may start with "~".
	SearchPaths []string

	// TimeoutSeconds bounds one racer invocation.
	TimeoutSeconds int
}

// Completion is one popup row plus the snippet inserted on selection.
type Completion struct {
	Display string `json:"display"`
	Snippet string `json:"snippet"`
}

// CompletionList is an ordered set of completions for one request.
type CompletionList struct {
	Entries []Completion `json:"entries"`

	// SuppressWordCompletions is set whenever Entries is non-empty; the
	// host must then inhibit its default word-based suggestions.
	SuppressWordCompletions bool `json:"suppress_word_completions"`
}

// Target re-exports the navigation destination shape.
type Target = nav.Target

// Client is the completion and navigation entry point. Safe for use from a
// single editor event stream; settings snapshots also make concurrent
// requests read consistent configuration.
type Client struct {
	store  *config.Store
	engine *racer.Client
	logger *zap.SugaredLogger
	goos   string
}

// Option configures a Client.
type Option func(*Client)

// WithLogger routes diagnostics (engine failures, malformed output lines)
// to the given logger instead of discarding them.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a client with the given initial settings.
func New(settings Settings, opts ...Option) *Client {
	return NewFromStore(config.NewStore(toInternal(settings)), opts...)
}

// NewFromStore creates a client over an existing settings store, for hosts
// that wire their own config reload (see internal/config.Watcher).
func NewFromStore(store *config.Store, opts ...Option) *Client {
	client := &Client{
		store: store,
		goos:  runtime.GOOS,
	}
	for _, opt := range opts {
		opt(client)
	}
	client.engine = racer.NewClient(store, racer.WithLogger(client.logger))
	return client
}

// UpdateSettings hot-swaps the settings snapshot. In-flight requests keep
// the snapshot they started with.
func (c *Client) UpdateSettings(settings Settings) {
	c.store.Replace(toInternal(settings))
}

// GetCompletions runs complete-with-snippet at the 1-based cursor position
// and returns ranked, aligned popup rows. ErrNoResults is returned for an
// empty match set; engine failures with nonzero exit also land here after
// being logged.
func (c *Client) GetCompletions(ctx context.Context, buffer string, row, col int, activePath string, openPaths []string) (CompletionList, error) {
	matches, err := c.engine.Run(ctx, racer.CommandComplete, row, col, buffer, activePath, openPaths)
	if err != nil {
		return CompletionList{}, err
	}

	entries := present.Format(matches)
	if len(entries) == 0 {
		return CompletionList{}, ErrNoResults
	}

	list := CompletionList{
		Entries:                 make([]Completion, len(entries)),
		SuppressWordCompletions: true,
	}
	for i, entry := range entries {
		list.Entries[i] = Completion{Display: entry.Display, Snippet: entry.Snippet}
	}
	return list, nil
}

// GetDefinition runs find-definition at the 1-based cursor position and
// returns the single unambiguous target, with platform path normalization
// applied. Zero or multiple candidates yield ErrNoTarget.
func (c *Client) GetDefinition(ctx context.Context, buffer string, row, col int, activePath string, openPaths []string) (Target, error) {
	matches, err := c.engine.Run(ctx, racer.CommandDefine, row, col, buffer, activePath, openPaths)
	if err != nil {
		return Target{}, err
	}

	target, ok := nav.ResolveTarget(matches, c.goos)
	if !ok {
		return Target{}, ErrNoTarget
	}
	return target, nil
}

func toInternal(settings Settings) config.Settings {
	internal := config.Settings{
		Racer:          settings.Racer,
		SearchPaths:    settings.SearchPaths,
		TimeoutSeconds: settings.TimeoutSeconds,
	}
	if internal.Racer == "" {
		internal.Racer = config.DefaultRacer
	}
	return internal
}

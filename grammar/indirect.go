package grammar

import (
	"errors"

	"github.com/gofrs/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/wrenfold/parsec/presult"
	"github.com/wrenfold/parsec/stream"
)

// DefaultMaxDepth is the default recursion-depth limit applied by
// Indirect when no WithMaxDepth option is given.
const DefaultMaxDepth = 500

// ErrMaxDepthExceeded is returned when an Indirect grammar recurses
// past its configured depth limit, guarding against runaway recursion
// in a grammar that references itself without consuming input.
var ErrMaxDepthExceeded = errors.New("grammar: maximum recursion depth exceeded")

// IndirectOption configures an Indirect grammar.
type IndirectOption func(*indirectConfig)

type indirectConfig struct {
	maxDepth    int
	logger      *zerolog.Logger
	sharedDepth *int
}

// WithMaxDepth overrides Indirect's recursion-depth limit.
func WithMaxDepth(depth int) IndirectOption {
	return func(c *indirectConfig) { c.maxDepth = depth }
}

// WithLogger overrides the logger Indirect reports depth-limit trips
// to. Defaults to the global zerolog logger.
func WithLogger(logger *zerolog.Logger) IndirectOption {
	return func(c *indirectConfig) { c.logger = logger }
}

// WithDepthCounter shares counter across every Indirect built with
// this option, instead of each counting its own re-entrancy alone.
// A grammar whose recursive production passes through more than one
// Indirect instance per level -- e.g. a fresh Indirect constructed on
// every nested paren or unary-minus -- never re-enters any single
// instance deeply enough to trip a per-instance limit; sharing one
// counter across that family bounds the recursion the limit is
// actually meant to guard.
func WithDepthCounter(counter *int) IndirectOption {
	return func(c *indirectConfig) { c.sharedDepth = counter }
}

// indirect breaks a recursive grammar's static self-reference: gen is
// called lazily on every Test rather than once at construction, since
// Go evaluates composite literals eagerly and a grammar that embeds
// itself by value would never terminate construction.
//
// Each indirect instance is tagged with a uuid at construction purely
// for diagnostics: a depth-limit trip logs which Indirect instance
// tripped it, which matters once a grammar has more than one
// self-referential production.
type indirect[T, V any] struct {
	gen      func() Grammar[T, V]
	id       uuid.UUID
	maxDepth int
	logger   *zerolog.Logger
	depth    int
	shared   *int
}

// Indirect wraps gen so it can be referenced before it is fully built,
// the standard way to express a recursive grammar: a production that
// refers to itself (or a mutually-recursive sibling) inside its own
// definition.
func Indirect[T, V any](gen func() Grammar[T, V], opts ...IndirectOption) Grammar[T, V] {
	cfg := indirectConfig{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&cfg)
	}
	id, err := uuid.NewV4()
	if err != nil {
		id = uuid.Nil
	}
	return &indirect[T, V]{
		gen:      gen,
		id:       id,
		maxDepth: cfg.maxDepth,
		logger:   cfg.logger,
		shared:   cfg.sharedDepth,
	}
}

func (g *indirect[T, V]) Test(s stream.Stream[T]) presult.Result[V] {
	counter := &g.depth
	if g.shared != nil {
		counter = g.shared
	}
	*counter++
	defer func() { *counter-- }()

	if *counter > g.maxDepth {
		logger := g.logger
		if logger == nil {
			logger = &log.Logger
		}
		logger.Warn().
			Str("indirect_id", g.id.String()).
			Int("depth", *counter).
			Int("max_depth", g.maxDepth).
			Msg("grammar: recursion depth limit exceeded")
		return presult.Err[V](ErrMaxDepthExceeded)
	}

	return g.gen().Test(s)
}

// Package graphcfg provides functional-option configuration for a Graph:
// unexported state, WithX constructors, documented defaults gathered by
// a single constructor.
package graphcfg

import "github.com/rs/zerolog"

// Defaults for Config fields not overridden by an Option.
const (
	// DefaultBlockCap mirrors blockpool.DefaultBlockCap; duplicated here
	// (rather than imported) to keep graphcfg free of a blockpool
	// dependency — graphcore wires the two together.
	DefaultBlockCap = 1024

	// DefaultPoolStep is the fixed growth step for the label and relation
	// matrix pools.
	DefaultPoolStep = 4
)

// Config holds graph construction parameters. Fields are unexported;
// callers build one via New and a list of Option values.
type Config struct {
	blockCap int
	poolStep int
	logger   zerolog.Logger
}

// BlockCap returns NODEBLOCK_CAP for the graph being constructed.
func (c Config) BlockCap() int { return c.blockCap }

// PoolStep returns the label/relation pool growth step.
func (c Config) PoolStep() int { return c.poolStep }

// Logger returns the configured structured logger (zerolog.Nop() by
// default, so diagnostics are silent until a caller opts in).
func (c Config) Logger() zerolog.Logger { return c.logger }

// Option configures a Config before Graph construction.
type Option func(*Config)

// WithBlockCap overrides NODEBLOCK_CAP. Mainly useful in tests that want
// to exercise block-boundary crossings without allocating thousands of
// nodes.
func WithBlockCap(n int) Option {
	return func(c *Config) { c.blockCap = n }
}

// WithPoolStep overrides the label/relation pool's growth step (default
// 4).
func WithPoolStep(n int) Option {
	return func(c *Config) { c.poolStep = n }
}

// WithLogger injects a structured logger used for grow/resize/compact
// diagnostics. Logging is best-effort and never affects control flow.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Config) { c.logger = l }
}

// New builds a Config with defaults applied, then each Option in order.
func New(opts ...Option) Config {
	c := Config{
		blockCap: DefaultBlockCap,
		poolStep: DefaultPoolStep,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

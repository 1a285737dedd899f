// SPDX-License-Identifier: MIT
//
// options.go: functional options and resolved configuration for Build.
//
// Contract:
//   • Options are functional (type Option func(*buildConfig)).
//   • Option constructors panic on meaningless inputs (nil logger);
//     Build itself never panics.
//   • Later options override earlier ones.

package builder

import (
	"fmt"

	"go.uber.org/zap"
)

// UnresolvedPolicy decides what happens to a connection whose endpoint has no coordinate.
type UnresolvedPolicy int

const (
	// DropUnresolved drops the record and reports ErrUnresolvedStation.
	DropUnresolved UnresolvedPolicy = iota

	// DefaultToOrigin admits the record; missing stations are created without a
	// coordinate and report the origin from network.Position.
	DefaultToOrigin
)

// String returns the policy name as used in configuration files.
func (p UnresolvedPolicy) String() string {
	switch p {
	case DropUnresolved:
		return "drop"
	case DefaultToOrigin:
		return "origin"
	default:
		return fmt.Sprintf("UnresolvedPolicy(%d)", int(p))
	}
}

// ParseUnresolvedPolicy maps "drop" / "origin" (or "") to a policy.
func ParseUnresolvedPolicy(s string) (UnresolvedPolicy, error) {
	switch s {
	case "", "drop":
		return DropUnresolved, nil
	case "origin":
		return DefaultToOrigin, nil
	default:
		return DropUnresolved, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// Option customizes Build.
type Option func(*buildConfig)

// buildConfig is the resolved option set. Defaults: drop policy, no isolated
// stations, no-op logger.
type buildConfig struct {
	policy   UnresolvedPolicy
	isolated bool
	logger   *zap.Logger
}

func newBuildConfig(opts ...Option) buildConfig {
	cfg := buildConfig{
		policy: DropUnresolved,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithUnresolvedPolicy selects the missing-coordinate policy.
func WithUnresolvedPolicy(p UnresolvedPolicy) Option {
	return func(c *buildConfig) { c.policy = p }
}

// WithIsolatedStations adds every station of the coordinate mapping, including
// stations that no admitted connection touches.
func WithIsolatedStations() Option {
	return func(c *buildConfig) { c.isolated = true }
}

// WithLogger sets the logger used for admission diagnostics. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *buildConfig) { c.logger = l }
}

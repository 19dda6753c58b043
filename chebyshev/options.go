// SPDX-License-Identifier: MIT

package chebyshev

import "fmt"

// Base selects the zeroth Chebyshev term T₀(X).
type Base int

const (
	// BaseOnes makes T₀(X) the all-ones matrix shaped like X (default).
	BaseOnes Base = iota
	// BaseIdentity makes T₀(X) the identity matrix (classical definition).
	BaseIdentity
)

// String implements fmt.Stringer.
func (b Base) String() string {
	switch b {
	case BaseOnes:
		return "ones"
	case BaseIdentity:
		return "identity"
	default:
		return fmt.Sprintf("Base(%d)", int(b))
	}
}

// ParseBase maps "ones" / "identity" to a Base.
func ParseBase(s string) (Base, error) {
	switch s {
	case "ones", "":
		return BaseOnes, nil
	case "identity":
		return BaseIdentity, nil
	default:
		return BaseOnes, fmt.Errorf("ParseBase(%q): %w", s, ErrValue)
	}
}

// Option customizes evaluation.
type Option func(*config)

type config struct {
	base Base
}

func newConfig(opts ...Option) config {
	cfg := config{base: BaseOnes}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithBase selects the T₀ convention. Panics on an unknown Base value,
// since that is a programmer error rather than bad data.
func WithBase(b Base) Option {
	if b != BaseOnes && b != BaseIdentity {
		panic("chebyshev: WithBase(unknown)")
	}
	return func(c *config) { c.base = b }
}

// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// builderConfig is resolved once per BuildGraph call.
type builderConfig struct {
	idFn      IDFn       // index → vertex ID
	rng       *rand.Rand // nil means no randomness
	weightFn  WeightFn   // edge weight generator
	weightSet bool       // weightFn came from WithWeightFn
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws the next edge weight.
func (c builderConfig) weight() float64 { return c.weightFn(c.rng) }

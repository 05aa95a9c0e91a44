package builder

import (
	"math/rand"
	"strconv"
)

// builderConfig is the resolved option set passed to every Constructor.
type builderConfig struct {
	// idFn maps a node index to its ID.
	idFn func(int) string

	// rng drives stochastic constructors; nil unless WithSeed/WithRand.
	rng *rand.Rand

	// weightFn yields the weight of each emitted edge.
	weightFn WeightFn
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     decimalID,
		rng:      nil,
		weightFn: DefaultWeightFn,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func decimalID(i int) string {
	return strconv.Itoa(i)
}

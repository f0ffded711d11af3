package ports

import (
	"golang.org/x/exp/rand"
)

// ConvergenceSampler draws one external-convergence value per call from a
// fitted line-of-sight distribution.
//
// Samplers are stateless apart from the pseudo-random stream handed in, so a
// single sampler instance can serve concurrent evaluations each holding its
// own stream.
type ConvergenceSampler interface {
	DrawOne(rng *rand.Rand) float64
}

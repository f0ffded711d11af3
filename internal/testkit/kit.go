package testkit

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
)

// EuclideanCosmology is the simplest distance model: comoving distance grows
// linearly with redshift, D_C(z) = D_H * z. It admits closed-form expected
// values for every distance combination, which makes it the fixture of
// choice for exact checks.
type EuclideanCosmology struct {
	DH float64 // Hubble distance in Mpc
}

// AngularDiameterDistance returns D_H * z / (1 + z).
func (e EuclideanCosmology) AngularDiameterDistance(z float64) (float64, error) {
	if z < 0 {
		return 0, fmt.Errorf("negative redshift %g", z)
	}
	return e.DH * z / (1 + z), nil
}

// AngularDiameterDistanceZ1Z2 returns D_H * (z2 - z1) / (1 + z2).
func (e EuclideanCosmology) AngularDiameterDistanceZ1Z2(z1, z2 float64) (float64, error) {
	if z1 < 0 || z2 < z1 {
		return 0, fmt.Errorf("bad redshift pair z1=%g z2=%g", z1, z2)
	}
	return e.DH * (z2 - z1) / (1 + z2), nil
}

// FailingCosmology returns an error from every distance call, for testing
// error propagation.
type FailingCosmology struct{}

func (FailingCosmology) AngularDiameterDistance(z float64) (float64, error) {
	return 0, fmt.Errorf("cosmology unavailable")
}

func (FailingCosmology) AngularDiameterDistanceZ1Z2(z1, z2 float64) (float64, error) {
	return 0, fmt.Errorf("cosmology unavailable")
}

// ZeroCrossCosmology yields a zero cross distance, the division-by-zero
// configuration the distance transform must reject.
type ZeroCrossCosmology struct {
	DH float64
}

func (z ZeroCrossCosmology) AngularDiameterDistance(zz float64) (float64, error) {
	return z.DH, nil
}

func (ZeroCrossCosmology) AngularDiameterDistanceZ1Z2(z1, z2 float64) (float64, error) {
	return 0, nil
}

// ConstKernel returns a fixed log-likelihood for every draw.
type ConstKernel struct {
	LogL float64
}

func (c ConstKernel) LogLikelihood(ddt, dd, anisoScaling, sigmaVSys float64) float64 {
	return c.LogL
}

// NegInfKernel rejects every draw with zero probability.
type NegInfKernel struct{}

func (NegInfKernel) LogLikelihood(ddt, dd, anisoScaling, sigmaVSys float64) float64 {
	return math.Inf(-1)
}

// CountingKernel alternates between a finite log-likelihood and -Inf, to
// exercise the divide-by-full-draw-count estimator. Not safe for concurrent
// draws; serial tests only.
type CountingKernel struct {
	LogL  float64
	calls int
}

func (c *CountingKernel) LogLikelihood(ddt, dd, anisoScaling, sigmaVSys float64) float64 {
	c.calls++
	if c.calls%2 == 0 {
		return math.Inf(-1)
	}
	return c.LogL
}

// Calls returns how many draws the kernel has scored.
func (c *CountingKernel) Calls() int {
	return c.calls
}

// Stream returns a seeded random stream for tests.
func Stream(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

package kernel

import (
	"math"
)

// DdtLogNormal scores the time-delay distance against a posterior that is
// Gaussian in ln(ddt). Useful for skewed time-delay posteriors where a
// Gaussian in ddt misrepresents the tails.
type DdtLogNormal struct {
	mu    float64 // mean of ln(ddt)
	sigma float64 // spread of ln(ddt)
}

// NewDdtLogNormal creates a log-normal kernel from the posterior of ln(ddt).
func NewDdtLogNormal(mu, sigma float64) *DdtLogNormal {
	return &DdtLogNormal{mu: mu, sigma: sigma}
}

// LogLikelihood returns -Inf for non-positive ddt, where the log-normal model
// assigns zero probability. Such values occur under extreme bias draws and
// are absorbed by the marginalization engine's finite/positive filter.
func (k *DdtLogNormal) LogLikelihood(ddt, dd, anisoScaling, sigmaVSys float64) float64 {
	if ddt <= 0 {
		return math.Inf(-1)
	}
	r := (math.Log(ddt) - k.mu) / k.sigma
	return -0.5*r*r - math.Log(ddt)
}

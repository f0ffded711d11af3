package app

import (
	"math"

	"golens/domain/core"
	"golens/domain/lens"
	"golens/domain/marginal"
	"golens/ports"
)

// SampleService combines independent lens systems into one joint likelihood:
// the sum of per-lens marginal log-likelihoods under shared hyperparameters.
// This is the quantity an outer inference loop evaluates per cosmology
// sample.
type SampleService struct {
	engines []*marginal.Engine
}

// NewSampleService creates a sample-level likelihood over the given engines.
func NewSampleService(engines ...*marginal.Engine) *SampleService {
	return &SampleService{engines: engines}
}

// NumLenses returns the number of lens systems in the sample.
func (s *SampleService) NumLenses() int {
	return len(s.engines)
}

// LogLikelihood evaluates every lens against the cosmology and sums the
// results. A -Inf from any lens short-circuits: the joint likelihood is
// already zero and further evaluation cannot recover it. Cosmology errors
// propagate immediately.
func (s *SampleService) LogLikelihood(cosmo ports.Cosmology, p *lens.Params, k *lens.KinParams) (float64, error) {
	total := 0.0
	for _, e := range s.engines {
		logL, err := e.LogLikelihood(cosmo, p, k)
		if err != nil {
			return 0, err
		}
		total += logL
		if math.IsInf(total, -1) {
			return total, nil
		}
	}
	return total, nil
}

// RunManifest captures the identity and determinism metadata of one
// sample-likelihood run.
type RunManifest struct {
	RunID     core.RunID      `json:"run_id"`
	Seed      uint64          `json:"seed"`
	Lenses    []core.LensName `json:"lenses"`
	NumDraws  []int           `json:"num_draws"`
	CreatedAt core.Timestamp  `json:"created_at"`
}

// NewRunManifest records the sample composition under a fresh run ID.
func (s *SampleService) NewRunManifest(seed uint64) RunManifest {
	names := make([]core.LensName, len(s.engines))
	draws := make([]int, len(s.engines))
	for i, e := range s.engines {
		sys := e.System()
		names[i] = sys.Name
		draws[i] = sys.Config.NumDraws
	}
	return RunManifest{
		RunID:     core.RunID(core.NewID()),
		Seed:      seed,
		Lenses:    names,
		NumDraws:  draws,
		CreatedAt: core.Now(),
	}
}

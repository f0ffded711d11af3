package app

import (
	"fmt"

	"github.com/montanaflynn/stats"
	"golang.org/x/exp/rand"

	"golens/adapters/kernel"
	"golens/domain/lens"
	"golens/domain/marginal"
	"golens/ports"
)

// SigmaVSummary compares one aperture's measured velocity dispersion with the
// Monte Carlo distribution of model predictions under the current
// hyperparameters. All values in km/s.
type SigmaVSummary struct {
	Aperture      int     `json:"aperture"`
	Measured      float64 `json:"measured"`
	MeasuredError float64 `json:"measured_error"`
	PredictedMean float64 `json:"predicted_mean"`
	PredictedP16  float64 `json:"predicted_p16"`
	PredictedP84  float64 `json:"predicted_p84"`
}

// SigmaVMeasuredVsPredicted realizes numDraws displaced predictions from the
// engine and summarizes the per-aperture predicted velocity dispersions
// against the kinematic kernel's measurements. Diagnostic only: it never
// feeds back into the likelihood.
func SigmaVMeasuredVsPredicted(e *marginal.Engine, kin *kernel.DdtDdKinGaussian, cosmo ports.Cosmology,
	p *lens.Params, k *lens.KinParams, numDraws int, rng *rand.Rand) ([]SigmaVSummary, error) {

	if numDraws <= 0 {
		return nil, fmt.Errorf("numDraws must be positive, got %d", numDraws)
	}
	sys := e.System()
	pair, err := lens.AngularDiameterDistances(cosmo, sys.ZLens, sys.ZSource)
	if err != nil {
		return nil, err
	}

	draws := e.SampleDisplacements(rng, pair.Ddt, pair.Dd, p, k, numDraws)
	perAperture := make([][]float64, kin.Apertures())
	for i := range perAperture {
		perAperture[i] = make([]float64, 0, numDraws)
	}
	for _, d := range draws {
		pred := kin.PredictSigmaV(d.Pair.Ddt, d.Pair.Dd, d.Scaling)
		for i, v := range pred {
			perAperture[i] = append(perAperture[i], v)
		}
	}

	measured := kin.SigmaVMeasured()
	measuredErr := kin.SigmaVError()
	summaries := make([]SigmaVSummary, kin.Apertures())
	for i, samples := range perAperture {
		mean, err := stats.Mean(samples)
		if err != nil {
			return nil, fmt.Errorf("summarize aperture %d: %w", i, err)
		}
		p16, err := stats.Percentile(samples, 16)
		if err != nil {
			return nil, fmt.Errorf("summarize aperture %d: %w", i, err)
		}
		p84, err := stats.Percentile(samples, 84)
		if err != nil {
			return nil, fmt.Errorf("summarize aperture %d: %w", i, err)
		}
		summaries[i] = SigmaVSummary{
			Aperture:      i,
			Measured:      measured[i],
			MeasuredError: measuredErr[i],
			PredictedMean: mean,
			PredictedP16:  p16,
			PredictedP84:  p84,
		}
	}
	return summaries, nil
}

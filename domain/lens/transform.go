package lens

import (
	"fmt"
	"math"

	"golens/domain/core"
	"golens/ports"
)

// AngularDiameterDistances converts a cosmological model into the unperturbed
// distance pair of the system:
//
//	ddt = (1 + z_lens) * D(z_lens) * D(z_source) / D(z_lens, z_source)
//	dd  = D(z_lens)
//
// A cosmology yielding a non-finite or zero cross distance is a caller
// misconfiguration and the error is propagated, not absorbed.
func AngularDiameterDistances(cosmo ports.Cosmology, zLens, zSource float64) (DistancePair, error) {
	dd, err := cosmo.AngularDiameterDistance(zLens)
	if err != nil {
		return DistancePair{}, fmt.Errorf("%w: D(z_lens): %v", core.ErrCosmologyFailure, err)
	}
	ds, err := cosmo.AngularDiameterDistance(zSource)
	if err != nil {
		return DistancePair{}, fmt.Errorf("%w: D(z_source): %v", core.ErrCosmologyFailure, err)
	}
	dds, err := cosmo.AngularDiameterDistanceZ1Z2(zLens, zSource)
	if err != nil {
		return DistancePair{}, fmt.Errorf("%w: D(z_lens, z_source): %v", core.ErrCosmologyFailure, err)
	}
	if dds == 0 || math.IsNaN(dds) || math.IsInf(dds, 0) {
		return DistancePair{}, core.NewDistanceError("dds", dds)
	}
	pair := DistancePair{
		Ddt: (1 + zLens) * dd * ds / dds,
		Dd:  dd,
	}
	if !pair.Valid() {
		return DistancePair{}, core.NewDistanceError("ddt", pair.Ddt)
	}
	return pair, nil
}

// DisplacePrediction applies the mass-sheet transform, external convergence
// and post-Newtonian correction to a raw distance prediction:
//
//	ddt' = ddt * lambda_mst * (1 - kappa_ext)
//	dd'  = dd * lambda_mst * 2 / (1 + gamma_ppn)
//
// The mass-sheet factor rescales both the time-delay distance and the
// kinematically inferred deflector distance; the external convergence enters
// the time delays only; gamma_ppn = 1 (general relativity) leaves dd
// unchanged. Pure function of its five inputs: safe to call independently
// from every Monte Carlo draw.
func DisplacePrediction(ddt, dd, gammaPPN, lambdaMST, kappaExt float64) DistancePair {
	return DistancePair{
		Ddt: ddt * lambdaMST * (1 - kappaExt),
		Dd:  dd * lambdaMST * 2 / (1 + gammaPPN),
	}
}

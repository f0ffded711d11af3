package marginal

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"golens/domain/lens"
	"golens/ports"
)

// drawNormal draws from N(mean, sigma), degenerating to the mean exactly when
// sigma is zero. The exact degeneration (rather than relying on floating
// point) keeps the sharp-distribution fast path bit-identical to a one-point
// Monte Carlo evaluation, and means delta-function configurations consume no
// randomness at all.
func drawNormal(rng *rand.Rand, mean, sigma float64) float64 {
	if sigma == 0 {
		return mean
	}
	n := distuv.Normal{Mu: mean, Sigma: sigma, Src: rng}
	return n.Rand()
}

// DrawLens produces one stochastic realization of the lens-side nuisance
// parameters, respecting the configuration flags of the system:
//
//   - mst_ifu redirects the mass-sheet draw to the IFU parameterization,
//     ignoring LambdaMST/LambdaMSTSigma entirely;
//   - a configured convergence sampler takes precedence over the Gaussian
//     kappa_ext parameters, which in turn require the kappa_ext_bias flag;
//     with neither, the convergence draw is identically zero;
//   - gamma_ppn passes through unchanged, it is not stochastic at this layer.
func DrawLens(rng *rand.Rand, p lens.Params, cfg lens.Config, kappa ports.ConvergenceSampler) (lambdaMST, kappaExt, gammaPPN float64) {
	if cfg.MSTIFU {
		lambdaMST = drawNormal(rng, p.LambdaIFU, p.LambdaIFUSigma)
	} else {
		lambdaMST = drawNormal(rng, p.LambdaMST, p.LambdaMSTSigma)
	}
	switch {
	case kappa != nil:
		kappaExt = kappa.DrawOne(rng)
	case cfg.KappaExtBias:
		kappaExt = drawNormal(rng, p.KappaExt, p.KappaExtSigma)
	default:
		kappaExt = 0
	}
	return lambdaMST, kappaExt, p.GammaPPN
}

// DrawAnisotropy produces one realization of the kinematic anisotropy
// parameters.
func DrawAnisotropy(rng *rand.Rand, k lens.KinParams) ports.AnisotropyDraw {
	return ports.AnisotropyDraw{
		AAni:    drawNormal(rng, k.AAni, k.AAniSigma),
		BetaInf: drawNormal(rng, k.BetaInf, k.BetaInfSigma),
	}
}

// IsSharp reports whether every hyperparameter distribution collapses to a
// delta function: all four spreads exactly zero and no convergence PDF
// configured (a binned PDF is never a delta function). Only then is a single
// direct evaluation statistically exact.
func IsSharp(p lens.Params, k lens.KinParams, hasKappaPDF bool) bool {
	if hasKappaPDF {
		return false
	}
	return p.LambdaMSTSigma == 0 && p.KappaExtSigma == 0 &&
		k.AAniSigma == 0 && k.BetaInfSigma == 0
}

package lens

import (
	"math"

	"golens/domain/core"
)

// System identifies a single strong-lens system and the configuration that is
// fixed at construction. Instances are immutable and reused across many
// likelihood evaluations (e.g. one per sample of an outer inference loop).
type System struct {
	Name    core.LensName
	ZLens   float64
	ZSource float64
	Config  Config
}

// Config holds the evaluation flags fixed at construction time.
type Config struct {
	// NumDraws is the number of Monte Carlo draws averaged over when any
	// hyperparameter distribution has nonzero spread.
	NumDraws int

	// KappaExtBias incorporates the global external-convergence selection
	// function into the likelihood. When false and no convergence PDF is
	// supplied, the convergence draw is identically zero.
	KappaExtBias bool

	// MSTIFU redirects the mass-sheet-transform nuisance to the IFU-specific
	// (LambdaIFU, LambdaIFUSigma) parameterization for this lens.
	MSTIFU bool
}

// NewSystem validates redshifts and returns an immutable lens system.
func NewSystem(name string, zLens, zSource float64, cfg Config) (System, error) {
	if zLens < 0 || zSource < zLens || math.IsNaN(zLens) || math.IsNaN(zSource) {
		return System{}, core.NewRedshiftError(zLens, zSource)
	}
	if cfg.NumDraws < 0 {
		return System{}, core.ErrNoDraws
	}
	return System{
		Name:    core.LensName(name),
		ZLens:   zLens,
		ZSource: zSource,
		Config:  cfg,
	}, nil
}

// Params are the lens-side hyperparameters of one likelihood evaluation.
// The zero spread fields describe delta functions at the mean.
type Params struct {
	LambdaMST      float64 // mass-sheet-transform factor mean
	LambdaMSTSigma float64 // spread of the MST distribution
	KappaExt       float64 // external convergence mean
	KappaExtSigma  float64 // spread of the convergence distribution
	GammaPPN       float64 // post-Newtonian parameter (not stochastic)
	LambdaIFU      float64 // IFU-specific MST mean
	LambdaIFUSigma float64 // spread of the IFU-specific MST distribution
}

// DefaultParams returns the no-bias parameter set: unit MST, zero convergence,
// general relativity.
func DefaultParams() Params {
	return Params{LambdaMST: 1, GammaPPN: 1, LambdaIFU: 1}
}

// WithDefaults returns the parameter set with unset mean fields replaced by
// the delta defaults, so the zero value of Params evaluates identically to
// DefaultParams(). Zero acts as the "unset" sentinel for the three means;
// none of them has zero as a physically meaningful setting (a zero mass-sheet
// factor collapses both displaced distances).
func (p Params) WithDefaults() Params {
	if p.LambdaMST == 0 {
		p.LambdaMST = 1
	}
	if p.GammaPPN == 0 {
		p.GammaPPN = 1
	}
	if p.LambdaIFU == 0 {
		p.LambdaIFU = 1
	}
	return p
}

// KinParams are the kinematic-side hyperparameters of one evaluation.
type KinParams struct {
	AAni         float64 // anisotropy parameter mean
	AAniSigma    float64 // spread of the anisotropy distribution
	BetaInf      float64 // asymptotic anisotropy mean (alternate parameterization)
	BetaInfSigma float64 // spread of the asymptotic anisotropy distribution
	// SigmaVSysError optionally overrides the systematic velocity-dispersion
	// error for this call only. It is consumed once per evaluation before any
	// stochastic draw and is not part of the draw itself.
	SigmaVSysError *float64
}

// ExtractSigmaVSys returns the systematic velocity-dispersion override and a
// copy of the parameter set with the override removed. The receiver is left
// untouched: callers sharing a KinParams value across evaluations never see
// it mutated.
func (k KinParams) ExtractSigmaVSys() (sigmaVSys float64, ok bool, rest KinParams) {
	rest = k
	rest.SigmaVSysError = nil
	if k.SigmaVSysError == nil {
		return 0, false, rest
	}
	return *k.SigmaVSysError, true, rest
}

// DistancePair bundles the two physical distances the likelihood consumes,
// in Mpc. Values are strictly positive for physically valid cosmologies;
// extreme or negative values can occur under bias displacement and are
// tolerated downstream rather than rejected here.
type DistancePair struct {
	Ddt float64 // time-delay distance
	Dd  float64 // angular diameter distance to the deflector
}

// Valid reports whether both distances are finite and strictly positive.
func (d DistancePair) Valid() bool {
	return d.Ddt > 0 && d.Dd > 0 &&
		!math.IsInf(d.Ddt, 0) && !math.IsInf(d.Dd, 0) &&
		!math.IsNaN(d.Ddt) && !math.IsNaN(d.Dd)
}

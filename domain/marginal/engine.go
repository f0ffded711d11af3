package marginal

import (
	"fmt"
	"math"
	"sync"

	"golang.org/x/exp/rand"

	"golens/domain/lens"
	"golens/ports"
)

// Engine computes the per-lens log-likelihood of a cosmological prediction,
// marginalized over the nuisance hyperparameter distributions.
//
// The engine composes the three collaborator capabilities (likelihood kernel,
// anisotropy scaler, optional convergence sampler) with one lens system. It
// holds no per-call mutable state: every evaluation is an independent unit of
// work, and the only guarded member is the instance random stream, so one
// engine can serve concurrent callers.
type Engine struct {
	system  lens.System
	kernel  ports.LikelihoodKernel
	scaler  ports.AnisotropyScaler
	kappa   ports.ConvergenceSampler // nil when no convergence PDF is configured
	rngPort ports.RNG
	seed    uint64

	mu  sync.Mutex
	rng *rand.Rand
}

// NewEngine wires a lens system to its collaborators. The convergence
// sampler may be nil; kernel and scaler are required.
func NewEngine(system lens.System, kernel ports.LikelihoodKernel, scaler ports.AnisotropyScaler, kappa ports.ConvergenceSampler, rngPort ports.RNG, seed uint64) (*Engine, error) {
	if kernel == nil {
		return nil, fmt.Errorf("likelihood kernel is required")
	}
	if scaler == nil {
		return nil, fmt.Errorf("anisotropy scaler is required")
	}
	if rngPort == nil {
		return nil, fmt.Errorf("rng port is required")
	}
	return &Engine{
		system:  system,
		kernel:  kernel,
		scaler:  scaler,
		kappa:   kappa,
		rngPort: rngPort,
		seed:    seed,
		rng:     rngPort.SeededStream(system.Name.String(), seed),
	}, nil
}

// System returns the lens system this engine evaluates.
func (e *Engine) System() lens.System {
	return e.system
}

// HasConvergencePDF reports whether a convergence sampler is configured.
func (e *Engine) HasConvergencePDF() bool {
	return e.kappa != nil
}

// LogLikelihood computes the marginal log-likelihood of the lens data given a
// cosmological model. Errors from the cosmology (non-finite distances)
// propagate; a log-likelihood of -Inf is a legitimate outcome, not an error.
func (e *Engine) LogLikelihood(cosmo ports.Cosmology, p *lens.Params, k *lens.KinParams) (float64, error) {
	pair, err := lens.AngularDiameterDistances(cosmo, e.system.ZLens, e.system.ZSource)
	if err != nil {
		return 0, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.LogLikelihoodDistances(e.rng, pair.Ddt, pair.Dd, p, k), nil
}

// LogLikelihoodDistances is the lower-level entry point for callers that
// cache the distance computation across repeated hyperparameter evaluations.
// The caller supplies the random stream, which makes the call reproducible
// and safe under concurrency without any shared state.
//
// Nil parameter sets evaluate at the delta-function defaults, and unset mean
// fields of a non-nil set are filled in the same way.
func (e *Engine) LogLikelihoodDistances(rng *rand.Rand, ddt, dd float64, p *lens.Params, k *lens.KinParams) float64 {
	params := lens.DefaultParams()
	if p != nil {
		params = p.WithDefaults()
	}
	var kin lens.KinParams
	if k != nil {
		kin = *k
	}
	// The systematic velocity-dispersion override is consumed exactly once
	// per call, before any stochastic handling.
	sigmaVSys, _, kin := kin.ExtractSigmaVSys()

	if IsSharp(params, kin, e.kappa != nil) {
		// Degenerate draw: deterministic under the zero-sigma rule, so this
		// equals the Monte Carlo path evaluated at a single point.
		return e.evaluateDraw(rng, ddt, dd, params, kin, sigmaVSys)
	}

	n := e.system.Config.NumDraws
	sum := 0.0
	for i := 0; i < n; i++ {
		expL := math.Exp(e.evaluateDraw(rng, ddt, dd, params, kin, sigmaVSys))
		// A single pathological draw (overflow, NaN) must not poison the
		// estimate; it contributes zero mass instead.
		if expL > 0 && !math.IsInf(expL, 1) {
			sum += expL
		}
	}
	if sum <= 0 {
		return math.Inf(-1)
	}
	// Divide by the full draw count, not the accepted count: rejected draws
	// carry zero probability mass but still belong in the average.
	return math.Log(sum / float64(n))
}

// evaluateDraw runs one Monte Carlo iteration: draw the nuisance parameters,
// displace the predicted distances, scale the kinematic variance and hand the
// result to the likelihood kernel.
func (e *Engine) evaluateDraw(rng *rand.Rand, ddt, dd float64, params lens.Params, kin lens.KinParams, sigmaVSys float64) float64 {
	lambdaMST, kappaExt, gammaPPN := DrawLens(rng, params, e.system.Config, e.kappa)
	anisoDraw := DrawAnisotropy(rng, kin)
	scaling := e.scaler.Scale(anisoDraw)
	d := lens.DisplacePrediction(ddt, dd, gammaPPN, lambdaMST, kappaExt)
	return e.kernel.LogLikelihood(d.Ddt, d.Dd, scaling, sigmaVSys)
}

package marginal

import (
	"math"

	"golang.org/x/sync/errgroup"

	"golens/domain/lens"
)

// LogLikelihoodDistancesParallel evaluates the Monte Carlo marginalization
// across worker goroutines. Draws have no cross-iteration dependency and the
// accumulation of exponentiated likelihoods is commutative and associative,
// so the draw count is split into contiguous chunks, each chunk accumulates
// into its own partial sum on a worker-owned random stream, and the partials
// are combined in worker order. Given the same seed the result is
// reproducible regardless of scheduling.
//
// The sharp-distribution path never needs parallelism: it is a single
// deterministic evaluation and is delegated directly.
func (e *Engine) LogLikelihoodDistancesParallel(ddt, dd float64, p *lens.Params, k *lens.KinParams, workers int) float64 {
	params := lens.DefaultParams()
	if p != nil {
		params = p.WithDefaults()
	}
	var kin lens.KinParams
	if k != nil {
		kin = *k
	}
	sigmaVSys, _, kin := kin.ExtractSigmaVSys()

	if IsSharp(params, kin, e.kappa != nil) {
		rng := e.rngPort.WorkerStream(e.system.Name.String(), e.seed, 0)
		return e.evaluateDraw(rng, ddt, dd, params, kin, sigmaVSys)
	}

	n := e.system.Config.NumDraws
	if n <= 0 {
		return math.Inf(-1)
	}
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}

	partials := make([]float64, workers)
	chunk := n / workers
	extra := n % workers

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		size := chunk
		if w < extra {
			size++
		}
		w, size := w, size
		g.Go(func() error {
			rng := e.rngPort.WorkerStream(e.system.Name.String(), e.seed, w)
			sum := 0.0
			for i := 0; i < size; i++ {
				expL := math.Exp(e.evaluateDraw(rng, ddt, dd, params, kin, sigmaVSys))
				if expL > 0 && !math.IsInf(expL, 1) {
					sum += expL
				}
			}
			partials[w] = sum
			return nil
		})
	}
	// Workers only write their own slot and never fail.
	_ = g.Wait()

	sum := 0.0
	for _, partial := range partials {
		sum += partial
	}
	if sum <= 0 {
		return math.Inf(-1)
	}
	return math.Log(sum / float64(n))
}

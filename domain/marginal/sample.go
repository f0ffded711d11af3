package marginal

import (
	"golang.org/x/exp/rand"

	"golens/domain/lens"
)

// DisplacedDraw is one realized displacement of the distance prediction
// together with the anisotropy scaling of the same draw. The coupling matters:
// a draw's scaling must be applied to that draw's distances, never mixed
// across draws.
type DisplacedDraw struct {
	Pair    lens.DistancePair
	Scaling float64
}

// SampleDisplacements realizes n hyperparameter draws and returns the
// displaced distance pairs with their anisotropy scalings. Used by
// diagnostics that compare predicted observables against measurements draw
// by draw; the likelihood kernel is not consulted.
func (e *Engine) SampleDisplacements(rng *rand.Rand, ddt, dd float64, p *lens.Params, k *lens.KinParams, n int) []DisplacedDraw {
	params := lens.DefaultParams()
	if p != nil {
		params = p.WithDefaults()
	}
	var kin lens.KinParams
	if k != nil {
		kin = *k
	}
	_, _, kin = kin.ExtractSigmaVSys()

	draws := make([]DisplacedDraw, n)
	for i := range draws {
		lambdaMST, kappaExt, gammaPPN := DrawLens(rng, params, e.system.Config, e.kappa)
		anisoDraw := DrawAnisotropy(rng, kin)
		draws[i] = DisplacedDraw{
			Pair:    lens.DisplacePrediction(ddt, dd, gammaPPN, lambdaMST, kappaExt),
			Scaling: e.scaler.Scale(anisoDraw),
		}
	}
	return draws
}

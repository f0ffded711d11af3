package ports

// AnisotropyScaler maps an anisotropy parameter draw to a multiplicative
// scaling of the predicted velocity-dispersion variance.
//
// Scale is a deterministic lookup/interpolation: the same draw always yields
// the same factor. Draws outside the tabulated range clamp to the table ends
// rather than extrapolate.
type AnisotropyScaler interface {
	Scale(draw AnisotropyDraw) float64
}

// AnisotropyDraw is one stochastic realization of the kinematic anisotropy
// parameters.
type AnisotropyDraw struct {
	AAni    float64 // anisotropy radius parameter
	BetaInf float64 // asymptotic anisotropy (alternate parameterization)
}

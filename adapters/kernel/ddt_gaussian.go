package kernel

// DdtGaussian scores the time-delay distance alone against a Gaussian
// posterior, for lenses without a kinematic deflector-distance measurement.
type DdtGaussian struct {
	ddtMean  float64
	ddtSigma float64
}

// NewDdtGaussian creates a single-distance Gaussian kernel.
func NewDdtGaussian(ddtMean, ddtSigma float64) *DdtGaussian {
	return &DdtGaussian{ddtMean: ddtMean, ddtSigma: ddtSigma}
}

// LogLikelihood ignores dd, the anisotropy scaling and the systematic
// velocity-dispersion error.
func (k *DdtGaussian) LogLikelihood(ddt, dd, anisoScaling, sigmaVSys float64) float64 {
	r := (ddt - k.ddtMean) / k.ddtSigma
	return -0.5 * r * r
}

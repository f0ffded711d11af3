package kernel

// DdtDdGaussian scores a displaced distance prediction against independent
// Gaussian posteriors on the time-delay distance and the deflector distance.
// Log-likelihoods are reported up to an additive constant: the normalization
// does not depend on the prediction and cancels in any likelihood ratio.
type DdtDdGaussian struct {
	ddtMean  float64
	ddtSigma float64
	ddMean   float64
	ddSigma  float64
}

// NewDdtDdGaussian creates a two-distance Gaussian kernel from the measured
// posterior means and spreads (Mpc).
func NewDdtDdGaussian(ddtMean, ddtSigma, ddMean, ddSigma float64) *DdtDdGaussian {
	return &DdtDdGaussian{ddtMean: ddtMean, ddtSigma: ddtSigma, ddMean: ddMean, ddSigma: ddSigma}
}

// LogLikelihood is a pure function of the displaced distances. The anisotropy
// scaling and systematic velocity-dispersion error do not enter this kernel;
// it carries no kinematic sector.
func (k *DdtDdGaussian) LogLikelihood(ddt, dd, anisoScaling, sigmaVSys float64) float64 {
	rDdt := (ddt - k.ddtMean) / k.ddtSigma
	rDd := (dd - k.ddMean) / k.ddSigma
	return -0.5 * (rDdt*rDdt + rDd*rDd)
}

package ports

// LikelihoodKernel evaluates the log-likelihood of the observed data of a
// single lens against one displaced distance prediction.
//
// Implementations are pure functions of their inputs: no shared state with
// the marginalization engine beyond the observed data they were constructed
// with, so a kernel can be called from any number of Monte Carlo draws
// concurrently.
type LikelihoodKernel interface {
	// LogLikelihood returns ln L(data | ddt, dd) for one draw.
	// anisoScaling multiplies the predicted kinematic variance;
	// sigmaVSys is an optional systematic velocity-dispersion error
	// (fraction of the measurement, 0 means none).
	// Returns -Inf where the model assigns zero probability.
	LogLikelihood(ddt, dd, anisoScaling, sigmaVSys float64) float64
}

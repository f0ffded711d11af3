package kernel

import (
	"fmt"
	"math"
)

// speedOfLightKmS is the speed of light in km/s.
const speedOfLightKmS = 299792.458

// DdtDdKinGaussian scores the time-delay distance against a Gaussian
// posterior and the deflector distance against a set of measured velocity
// dispersions. The kinematic prediction for aperture i is
//
//	sigma_v_i^2 = c^2 * J_i * scaling * ddt / (dd * (1 + z_lens))
//
// where J_i is the dimensionless kinematic factor of the aperture and
// scaling is the anisotropy correction supplied per draw. This is the kernel
// that makes the anisotropy scaling and the sigma_v systematic override
// load-bearing.
type DdtDdKinGaussian struct {
	ddtMean  float64
	ddtSigma float64
	zLens    float64

	sigmaVMeasured []float64 // measured velocity dispersions, km/s
	sigmaVError    []float64 // 1-sigma measurement errors, km/s
	jPred          []float64 // dimensionless kinematic factor per aperture
}

// NewDdtDdKinGaussian creates a joint time-delay + kinematics kernel. The
// three kinematic slices must have equal length.
func NewDdtDdKinGaussian(ddtMean, ddtSigma, zLens float64, sigmaVMeasured, sigmaVError, jPred []float64) (*DdtDdKinGaussian, error) {
	if len(sigmaVMeasured) != len(sigmaVError) || len(sigmaVMeasured) != len(jPred) {
		return nil, fmt.Errorf("kinematic slices must have equal length, got %d/%d/%d",
			len(sigmaVMeasured), len(sigmaVError), len(jPred))
	}
	return &DdtDdKinGaussian{
		ddtMean:        ddtMean,
		ddtSigma:       ddtSigma,
		zLens:          zLens,
		sigmaVMeasured: sigmaVMeasured,
		sigmaVError:    sigmaVError,
		jPred:          jPred,
	}, nil
}

// LogLikelihood combines the ddt term with one Gaussian term per measured
// aperture. sigmaVSys is a fractional systematic added in quadrature to each
// aperture's error budget (0 disables it). Unphysical displaced distances
// yield -Inf; the engine's draw filter absorbs them.
func (k *DdtDdKinGaussian) LogLikelihood(ddt, dd, anisoScaling, sigmaVSys float64) float64 {
	if ddt <= 0 || dd <= 0 {
		return math.Inf(-1)
	}
	r := (ddt - k.ddtMean) / k.ddtSigma
	logL := -0.5 * r * r

	pred := k.PredictSigmaV(ddt, dd, anisoScaling)
	for i, p := range pred {
		sys := sigmaVSys * k.sigmaVMeasured[i]
		err2 := k.sigmaVError[i]*k.sigmaVError[i] + sys*sys
		if err2 <= 0 {
			return math.Inf(-1)
		}
		d := k.sigmaVMeasured[i] - p
		logL -= 0.5 * d * d / err2
	}
	return logL
}

// PredictSigmaV returns the model velocity dispersion per aperture in km/s
// for one displaced distance pair and anisotropy scaling.
func (k *DdtDdKinGaussian) PredictSigmaV(ddt, dd, anisoScaling float64) []float64 {
	pred := make([]float64, len(k.jPred))
	base := ddt / (dd * (1 + k.zLens)) * anisoScaling
	for i, j := range k.jPred {
		v2 := speedOfLightKmS * speedOfLightKmS * j * base
		if v2 > 0 {
			pred[i] = math.Sqrt(v2)
		} else {
			pred[i] = math.NaN()
		}
	}
	return pred
}

// Apertures returns the number of measured velocity dispersions.
func (k *DdtDdKinGaussian) Apertures() int {
	return len(k.sigmaVMeasured)
}

// SigmaVMeasured returns the measured velocity dispersions.
func (k *DdtDdKinGaussian) SigmaVMeasured() []float64 {
	return k.sigmaVMeasured
}

// SigmaVError returns the per-aperture measurement errors.
func (k *DdtDdKinGaussian) SigmaVError() []float64 {
	return k.sigmaVError
}

package cosmology

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// SpeedOfLightKmS is the speed of light in km/s.
const SpeedOfLightKmS = 299792.458

// quadNodes is the number of Legendre nodes for the comoving-distance
// integral. 64 nodes keep the quadrature error far below the Mpc level over
// any redshift interval of interest.
const quadNodes = 64

// FlatLambdaCDM is a flat Lambda-CDM cosmological model parameterized by the
// Hubble constant (km/s/Mpc) and the matter density today. Dark energy fills
// the rest; radiation is neglected at the redshifts of galaxy-scale lenses.
type FlatLambdaCDM struct {
	H0     float64
	OmegaM float64
}

// NewFlatLambdaCDM validates the parameters and returns the model.
func NewFlatLambdaCDM(h0, omegaM float64) (*FlatLambdaCDM, error) {
	if h0 <= 0 || math.IsNaN(h0) {
		return nil, fmt.Errorf("H0 must be positive, got %g", h0)
	}
	if omegaM < 0 || omegaM > 1 || math.IsNaN(omegaM) {
		return nil, fmt.Errorf("Omega_m must be in [0, 1], got %g", omegaM)
	}
	return &FlatLambdaCDM{H0: h0, OmegaM: omegaM}, nil
}

// HubbleDistance returns c/H0 in Mpc.
func (f *FlatLambdaCDM) HubbleDistance() float64 {
	return SpeedOfLightKmS / f.H0
}

// efunc is the dimensionless Hubble parameter E(z) = H(z)/H0.
func (f *FlatLambdaCDM) efunc(z float64) float64 {
	zp := 1 + z
	return math.Sqrt(f.OmegaM*zp*zp*zp + (1 - f.OmegaM))
}

// comovingDistance integrates D_H * dz/E(z) over [z1, z2] with fixed
// Gauss-Legendre quadrature.
func (f *FlatLambdaCDM) comovingDistance(z1, z2 float64) float64 {
	integral := quad.Fixed(func(z float64) float64 {
		return 1 / f.efunc(z)
	}, z1, z2, quadNodes, quad.Legendre{}, 0)
	return f.HubbleDistance() * integral
}

// AngularDiameterDistance returns D_A(z) = D_C(z)/(1+z) in Mpc.
func (f *FlatLambdaCDM) AngularDiameterDistance(z float64) (float64, error) {
	if z < 0 || math.IsNaN(z) {
		return 0, fmt.Errorf("redshift must be non-negative, got %g", z)
	}
	return f.comovingDistance(0, z) / (1 + z), nil
}

// AngularDiameterDistanceZ1Z2 returns the angular diameter distance between
// two redshifts, D_A(z1, z2) = (D_C(z2) - D_C(z1))/(1+z2) for a flat
// universe.
func (f *FlatLambdaCDM) AngularDiameterDistanceZ1Z2(z1, z2 float64) (float64, error) {
	if z1 < 0 || z2 < z1 || math.IsNaN(z1) || math.IsNaN(z2) {
		return 0, fmt.Errorf("need 0 <= z1 <= z2, got z1=%g z2=%g", z1, z2)
	}
	return f.comovingDistance(z1, z2) / (1 + z2), nil
}

package ports

// Cosmology exposes the angular diameter distances required to predict
// time-delay and kinematic observables of a strong lens.
//
// Distances are in physical units of Mpc. Implementations must return a
// positive value for any pair of non-negative redshifts with z2 >= z1, and an
// error when the model cannot produce a finite distance.
type Cosmology interface {
	// AngularDiameterDistance returns D_A(z) in Mpc.
	AngularDiameterDistance(z float64) (float64, error)

	// AngularDiameterDistanceZ1Z2 returns the angular diameter distance
	// between two redshifts D_A(z1, z2) in Mpc.
	AngularDiameterDistanceZ1Z2(z1, z2 float64) (float64, error)
}

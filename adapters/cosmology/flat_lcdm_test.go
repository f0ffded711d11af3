package cosmology

import (
	"math"
	"testing"
)

func TestNewFlatLambdaCDMValidation(t *testing.T) {
	if _, err := NewFlatLambdaCDM(0, 0.3); err == nil {
		t.Fatal("expected error for H0=0")
	}
	if _, err := NewFlatLambdaCDM(70, -0.1); err == nil {
		t.Fatal("expected error for negative Omega_m")
	}
	if _, err := NewFlatLambdaCDM(70, 1.2); err == nil {
		t.Fatal("expected error for Omega_m > 1")
	}
}

func TestAngularDiameterDistanceDarkEnergyOnly(t *testing.T) {
	// Omega_m = 0 gives E(z) = 1, so D_C(z) = D_H * z exactly and the
	// quadrature can be checked against the closed form.
	f, err := NewFlatLambdaCDM(70, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dh := f.HubbleDistance()
	for _, z := range []float64{0.1, 0.5, 1.0, 2.0, 5.0} {
		got, err := f.AngularDiameterDistance(z)
		if err != nil {
			t.Fatalf("z=%g: %v", z, err)
		}
		want := dh * z / (1 + z)
		if math.Abs(got-want) > 1e-6*want {
			t.Fatalf("z=%g: D_A = %g, want %g", z, got, want)
		}
	}
}

func TestAngularDiameterDistanceEinsteinDeSitter(t *testing.T) {
	// Omega_m = 1: D_C(z) = 2 D_H (1 - 1/sqrt(1+z)).
	f, err := NewFlatLambdaCDM(70, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dh := f.HubbleDistance()
	for _, z := range []float64{0.3, 1.0, 3.0} {
		got, err := f.AngularDiameterDistance(z)
		if err != nil {
			t.Fatalf("z=%g: %v", z, err)
		}
		want := 2 * dh * (1 - 1/math.Sqrt(1+z)) / (1 + z)
		if math.Abs(got-want) > 1e-6*want {
			t.Fatalf("z=%g: D_A = %g, want %g", z, got, want)
		}
	}
}

func TestAngularDiameterDistanceAtZero(t *testing.T) {
	f, _ := NewFlatLambdaCDM(70, 0.3)
	got, err := f.AngularDiameterDistance(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0 {
		t.Fatalf("D_A(0) = %g, want 0", got)
	}
}

func TestAngularDiameterDistanceZ1Z2Consistency(t *testing.T) {
	// In a flat universe comoving distances are additive:
	// (1+z2) * D_A(z1,z2) == (1+z2) * D_A(z2) - (1+z1) * D_A(z1).
	f, _ := NewFlatLambdaCDM(67.4, 0.315)
	z1, z2 := 0.295, 0.654

	da1, _ := f.AngularDiameterDistance(z1)
	da2, _ := f.AngularDiameterDistance(z2)
	da12, err := f.AngularDiameterDistanceZ1Z2(z1, z2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lhs := (1 + z2) * da12
	rhs := (1+z2)*da2 - (1+z1)*da1
	if math.Abs(lhs-rhs) > 1e-6 {
		t.Fatalf("comoving additivity violated: %g vs %g", lhs, rhs)
	}
}

func TestAngularDiameterDistanceZ1Z2Validation(t *testing.T) {
	f, _ := NewFlatLambdaCDM(70, 0.3)
	if _, err := f.AngularDiameterDistanceZ1Z2(1.5, 0.5); err == nil {
		t.Fatal("expected error for z2 < z1")
	}
	if _, err := f.AngularDiameterDistance(-0.1); err == nil {
		t.Fatal("expected error for negative redshift")
	}
}

func TestFiducialDistancesArePositiveAndOrdered(t *testing.T) {
	f, _ := NewFlatLambdaCDM(70, 0.3)
	dLens, _ := f.AngularDiameterDistance(0.5)
	dSource, _ := f.AngularDiameterDistance(1.5)
	dCross, _ := f.AngularDiameterDistanceZ1Z2(0.5, 1.5)
	if dLens <= 0 || dSource <= 0 || dCross <= 0 {
		t.Fatalf("non-positive distances: %g %g %g", dLens, dSource, dCross)
	}
	if dCross >= dSource {
		t.Fatalf("cross distance %g should be below source distance %g", dCross, dSource)
	}
}

package lens

import (
	"math"
	"testing"

	"golens/domain/core"
)

func TestNewSystemValidation(t *testing.T) {
	if _, err := NewSystem("lens", -0.1, 1.5, Config{NumDraws: 50}); err == nil {
		t.Fatal("expected error for negative lens redshift")
	}
	if _, err := NewSystem("lens", 0.5, 0.3, Config{NumDraws: 50}); err == nil {
		t.Fatal("expected error for source in front of lens")
	}
	if _, err := NewSystem("lens", 0.5, 1.5, Config{NumDraws: -1}); err == nil {
		t.Fatal("expected error for negative draw count")
	}

	sys, err := NewSystem("RXJ1131", 0.295, 0.654, Config{NumDraws: 50, KappaExtBias: true})
	if err != nil {
		t.Fatalf("valid system rejected: %v", err)
	}
	if sys.Name != core.LensName("RXJ1131") {
		t.Fatalf("name not retained: %q", sys.Name)
	}
	if !sys.Config.KappaExtBias || sys.Config.MSTIFU {
		t.Fatalf("config flags not retained: %+v", sys.Config)
	}
}

func TestExtractSigmaVSysAbsent(t *testing.T) {
	k := KinParams{AAni: 1, AAniSigma: 0.1}
	v, ok, rest := k.ExtractSigmaVSys()
	if ok || v != 0 {
		t.Fatalf("expected no override, got %v (ok=%v)", v, ok)
	}
	if rest.AAni != 1 || rest.AAniSigma != 0.1 {
		t.Fatalf("remaining params altered: %+v", rest)
	}
}

func TestExtractSigmaVSysPresent(t *testing.T) {
	sys := 0.05
	k := KinParams{AAni: 1, SigmaVSysError: &sys}

	v, ok, rest := k.ExtractSigmaVSys()
	if !ok || v != 0.05 {
		t.Fatalf("expected override 0.05, got %v (ok=%v)", v, ok)
	}
	if rest.SigmaVSysError != nil {
		t.Fatal("override not removed from remaining set")
	}
	// The caller's set is untouched: extraction is a copy, not a mutation.
	if k.SigmaVSysError == nil || *k.SigmaVSysError != 0.05 {
		t.Fatal("caller-supplied parameter set was mutated")
	}
}

func TestDistancePairValid(t *testing.T) {
	cases := []struct {
		pair DistancePair
		want bool
	}{
		{DistancePair{Ddt: 5000, Dd: 1200}, true},
		{DistancePair{Ddt: -5000, Dd: 1200}, false},
		{DistancePair{Ddt: 5000, Dd: 0}, false},
		{DistancePair{Ddt: math.Inf(1), Dd: 1200}, false},
		{DistancePair{Ddt: math.NaN(), Dd: 1200}, false},
	}
	for _, c := range cases {
		if got := c.pair.Valid(); got != c.want {
			t.Fatalf("Valid(%+v) = %v, want %v", c.pair, got, c.want)
		}
	}
}

func TestParamsWithDefaults(t *testing.T) {
	if got := (Params{}).WithDefaults(); got != DefaultParams() {
		t.Fatalf("zero value must normalize to the defaults: %+v", got)
	}

	explicit := Params{LambdaMST: 1.1, LambdaMSTSigma: 0.05, GammaPPN: 0.9, LambdaIFU: 1.2}
	if got := explicit.WithDefaults(); got != explicit {
		t.Fatalf("explicit means must pass through unchanged: %+v", got)
	}

	partial := (Params{KappaExtSigma: 0.02}).WithDefaults()
	if partial.LambdaMST != 1 || partial.GammaPPN != 1 || partial.LambdaIFU != 1 {
		t.Fatalf("unset means not filled: %+v", partial)
	}
	if partial.KappaExtSigma != 0.02 {
		t.Fatalf("set spread lost in normalization: %+v", partial)
	}
}

func TestDefaultParams(t *testing.T) {
	p := DefaultParams()
	if p.LambdaMST != 1 || p.GammaPPN != 1 || p.LambdaIFU != 1 {
		t.Fatalf("defaults must be the no-bias point: %+v", p)
	}
	if p.LambdaMSTSigma != 0 || p.KappaExtSigma != 0 {
		t.Fatalf("default spreads must be delta functions: %+v", p)
	}
}

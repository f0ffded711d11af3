package app

import (
	"encoding/json"
	"math"
	"testing"

	"golens/adapters/rng"
	"golens/adapters/scaling"
	"golens/domain/lens"
	"golens/domain/marginal"
	"golens/internal/testkit"
)

func constEngine(t *testing.T, name string, logL float64) *marginal.Engine {
	t.Helper()
	sys, err := lens.NewSystem(name, 0.5, 1.5, lens.Config{NumDraws: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e, err := marginal.NewEngine(sys, testkit.ConstKernel{LogL: logL}, scaling.NewConst(1), nil, rng.NewHashedStreams(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return e
}

func TestSampleLogLikelihoodSums(t *testing.T) {
	s := NewSampleService(
		constEngine(t, "lens-a", -1.5),
		constEngine(t, "lens-b", -2.5),
	)
	cosmo := testkit.EuclideanCosmology{DH: 4000}

	got, err := s.LogLikelihood(cosmo, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-(-4.0)) > 1e-12 {
		t.Fatalf("joint log-likelihood = %g, want -4", got)
	}
}

func TestSampleLogLikelihoodNegInfShortCircuits(t *testing.T) {
	s := NewSampleService(
		constEngine(t, "lens-a", -1.5),
		negInfEngine(t, "lens-reject"),
		constEngine(t, "lens-b", -2.5),
	)
	cosmo := testkit.EuclideanCosmology{DH: 4000}

	got, err := s.LogLikelihood(cosmo, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsInf(got, -1) {
		t.Fatalf("rejected lens must sink the joint likelihood, got %g", got)
	}
}

func negInfEngine(t *testing.T, name string) *marginal.Engine {
	t.Helper()
	sys, err := lens.NewSystem(name, 0.5, 1.5, lens.Config{NumDraws: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e, err := marginal.NewEngine(sys, testkit.NegInfKernel{}, scaling.NewConst(1), nil, rng.NewHashedStreams(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return e
}

func TestSampleLogLikelihoodPropagatesErrors(t *testing.T) {
	s := NewSampleService(constEngine(t, "lens-a", -1.5))
	if _, err := s.LogLikelihood(testkit.FailingCosmology{}, nil, nil); err == nil {
		t.Fatal("expected cosmology error to propagate")
	}
}

func TestEmptySampleIsNeutral(t *testing.T) {
	s := NewSampleService()
	got, err := s.LogLikelihood(testkit.EuclideanCosmology{DH: 4000}, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0 {
		t.Fatalf("empty sample log-likelihood = %g, want 0", got)
	}
}

func TestNewRunManifest(t *testing.T) {
	s := NewSampleService(
		constEngine(t, "lens-a", -1),
		constEngine(t, "lens-b", -1),
	)
	m := s.NewRunManifest(42)

	if m.RunID == "" {
		t.Fatal("manifest run ID must be set")
	}
	if m.Seed != 42 {
		t.Fatalf("seed = %d, want 42", m.Seed)
	}
	if len(m.Lenses) != 2 || len(m.NumDraws) != 2 {
		t.Fatalf("manifest covers %d/%d lenses, want 2/2", len(m.Lenses), len(m.NumDraws))
	}
	if m.NumDraws[0] != 10 {
		t.Fatalf("manifest draw count = %d, want 10", m.NumDraws[0])
	}

	other := s.NewRunManifest(42)
	if m.RunID == other.RunID {
		t.Fatal("each manifest must carry a fresh run ID")
	}
}

func TestRunManifestJSONRoundTrip(t *testing.T) {
	s := NewSampleService(constEngine(t, "lens-a", -1))
	m := s.NewRunManifest(9)

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal manifest: %v", err)
	}

	var decoded RunManifest
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal manifest: %v", err)
	}
	if decoded.RunID != m.RunID || decoded.Seed != m.Seed {
		t.Fatalf("identity lost in round trip: %+v vs %+v", decoded, m)
	}
	if len(decoded.Lenses) != 1 || decoded.Lenses[0] != "lens-a" || decoded.NumDraws[0] != 10 {
		t.Fatalf("sample composition lost in round trip: %+v", decoded)
	}
	if !decoded.CreatedAt.Time().Equal(m.CreatedAt.Time()) {
		t.Fatalf("timestamp lost in round trip: %v vs %v", decoded.CreatedAt.Time(), m.CreatedAt.Time())
	}
}

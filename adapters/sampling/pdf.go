package sampling

import (
	"fmt"
	"sort"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"

	"golens/domain/core"
)

// PDF draws external-convergence values from a binned probability density by
// inverse-CDF sampling: pick a bin proportional to its mass, then place the
// draw uniformly within the bin.
//
// Construction validates the bin geometry and total mass; a malformed PDF is
// a fatal configuration error caught once, not on every draw. A constructed
// PDF is immutable, so one instance can serve any number of concurrent
// streams.
type PDF struct {
	binEdges []float64
	cdf      []float64 // normalized cumulative mass, cdf[len-1] == 1
}

// NewPDF builds the sampler from bin edges and per-bin densities.
// len(binEdges) must equal len(pdf)+1.
func NewPDF(binEdges, pdf []float64) (*PDF, error) {
	if len(binEdges) != len(pdf)+1 {
		return nil, core.NewMalformedPDFError(len(binEdges), len(pdf))
	}
	if len(pdf) == 0 {
		return nil, core.NewMalformedPDFError(len(binEdges), 0)
	}

	mass := make([]float64, len(pdf))
	for i, density := range pdf {
		width := binEdges[i+1] - binEdges[i]
		if width < 0 {
			return nil, fmt.Errorf("%w: bin edges not increasing at index %d", core.ErrMalformedPDF, i)
		}
		if density < 0 {
			return nil, fmt.Errorf("%w: negative density at index %d", core.ErrMalformedPDF, i)
		}
		mass[i] = density * width
	}

	cdf := make([]float64, len(mass))
	floats.CumSum(cdf, mass)
	total := cdf[len(cdf)-1]
	if total <= 0 {
		return nil, fmt.Errorf("%w: zero total probability mass", core.ErrMalformedPDF)
	}
	floats.Scale(1/total, cdf)

	edges := make([]float64, len(binEdges))
	copy(edges, binEdges)
	return &PDF{binEdges: edges, cdf: cdf}, nil
}

// DrawOne returns one convergence value from the fitted distribution using
// the supplied stream.
func (p *PDF) DrawOne(rng *rand.Rand) float64 {
	u := rng.Float64()
	idx := sort.SearchFloat64s(p.cdf, u)
	if idx >= len(p.cdf) {
		idx = len(p.cdf) - 1
	}
	lo, hi := p.binEdges[idx], p.binEdges[idx+1]

	prev := 0.0
	if idx > 0 {
		prev = p.cdf[idx-1]
	}
	span := p.cdf[idx] - prev
	if span <= 0 {
		// Zero-mass bin selected at a CDF plateau boundary; any point of the
		// bin is equivalent.
		return lo
	}
	frac := (u - prev) / span
	return lo + frac*(hi-lo)
}

// Bins returns the number of bins in the fitted distribution.
func (p *PDF) Bins() int {
	return len(p.cdf)
}

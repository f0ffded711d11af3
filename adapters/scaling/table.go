package scaling

import (
	"fmt"

	"gonum.org/v1/gonum/interp"

	"golens/domain/core"
	"golens/ports"
)

// Table scales the predicted kinematic variance by piecewise-linear
// interpolation over a precomputed (a_ani -> J scaling) grid. Draws outside
// the tabulated range clamp to the nearest table end; a deterministic lookup
// must stay deterministic, so no redrawing and no extrapolation.
type Table struct {
	pl   interp.PiecewiseLinear
	aMin float64
	aMax float64
}

// NewTable fits the interpolant. The parameter grid must be strictly
// increasing with at least two nodes.
func NewTable(aAniGrid, scalingGrid []float64) (*Table, error) {
	if len(aAniGrid) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 nodes, got %d", core.ErrEmptyScalingGrid, len(aAniGrid))
	}
	if len(aAniGrid) != len(scalingGrid) {
		return nil, fmt.Errorf("%w: %d parameter values for %d scalings", core.ErrEmptyScalingGrid, len(aAniGrid), len(scalingGrid))
	}
	t := &Table{aMin: aAniGrid[0], aMax: aAniGrid[len(aAniGrid)-1]}
	if err := t.pl.Fit(aAniGrid, scalingGrid); err != nil {
		return nil, fmt.Errorf("fit anisotropy scaling table: %w", err)
	}
	return t, nil
}

// Scale interpolates the variance scaling for one anisotropy draw.
func (t *Table) Scale(draw ports.AnisotropyDraw) float64 {
	a := draw.AAni
	if a < t.aMin {
		a = t.aMin
	}
	if a > t.aMax {
		a = t.aMax
	}
	return t.pl.Predict(a)
}

// Const is the scaler for models without anisotropy dependence: every draw
// maps to the same factor.
type Const struct {
	value float64
}

// NewConst creates a constant scaler. NewConst(1) is the identity.
func NewConst(value float64) *Const {
	return &Const{value: value}
}

// Scale ignores the draw.
func (c *Const) Scale(draw ports.AnisotropyDraw) float64 {
	return c.value
}

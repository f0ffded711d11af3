package scaling

import (
	"errors"
	"math"
	"testing"

	"golens/domain/core"
	"golens/ports"
)

func TestNewTableValidation(t *testing.T) {
	_, err := NewTable([]float64{1}, []float64{0.9})
	if !errors.Is(err, core.ErrEmptyScalingGrid) {
		t.Fatalf("single node should fail with grid error, got %v", err)
	}
	_, err = NewTable([]float64{1, 2, 3}, []float64{0.9, 1.0})
	if !errors.Is(err, core.ErrEmptyScalingGrid) {
		t.Fatalf("length mismatch should fail with grid error, got %v", err)
	}
	_, err = NewTable([]float64{1, 1, 2}, []float64{0.9, 1.0, 1.1})
	if err == nil {
		t.Fatal("non-increasing grid must not fit")
	}
}

func TestTableInterpolation(t *testing.T) {
	tbl, err := NewTable([]float64{0, 1, 2}, []float64{1.0, 1.2, 1.6})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		aAni float64
		want float64
	}{
		{0, 1.0},
		{0.5, 1.1},
		{1, 1.2},
		{1.5, 1.4},
		{2, 1.6},
	}
	for _, c := range cases {
		got := tbl.Scale(ports.AnisotropyDraw{AAni: c.aAni})
		if math.Abs(got-c.want) > 1e-12 {
			t.Fatalf("a_ani=%g: got %g, want %g", c.aAni, got, c.want)
		}
	}
}

func TestTableClampsOutOfRangeDraws(t *testing.T) {
	tbl, err := NewTable([]float64{0.5, 5}, []float64{0.8, 1.3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := tbl.Scale(ports.AnisotropyDraw{AAni: -10}); got != 0.8 {
		t.Fatalf("draw below the grid should clamp to the first node, got %g", got)
	}
	if got := tbl.Scale(ports.AnisotropyDraw{AAni: 100}); got != 1.3 {
		t.Fatalf("draw above the grid should clamp to the last node, got %g", got)
	}
}

func TestConstIgnoresDraw(t *testing.T) {
	c := NewConst(1.07)
	a := c.Scale(ports.AnisotropyDraw{AAni: -3, BetaInf: 9})
	b := c.Scale(ports.AnisotropyDraw{AAni: 42})
	if a != 1.07 || b != 1.07 {
		t.Fatalf("constant scaler moved: %g %g", a, b)
	}
}

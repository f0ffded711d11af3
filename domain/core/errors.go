package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Construction errors
	ErrMalformedPDF     = errors.New("malformed convergence PDF")
	ErrInvalidRedshift  = errors.New("invalid redshift configuration")
	ErrEmptyScalingGrid = errors.New("empty anisotropy scaling grid")

	// Evaluation errors
	ErrInvalidDistance  = errors.New("non-finite or non-positive distance")
	ErrCosmologyFailure = errors.New("cosmological distance computation failed")
	ErrNoDraws          = errors.New("draw count must be non-negative")
)

// Error constructors with context

func NewMalformedPDFError(nEdges, nBins int) error {
	return fmt.Errorf("%w: %d bin edges for %d bins, want %d", ErrMalformedPDF, nEdges, nBins, nBins+1)
}

func NewRedshiftError(zLens, zSource float64) error {
	return fmt.Errorf("%w: z_lens=%g z_source=%g", ErrInvalidRedshift, zLens, zSource)
}

func NewDistanceError(name string, value float64) error {
	return fmt.Errorf("%w: %s=%g", ErrInvalidDistance, name, value)
}

// Error checking helpers

func IsConstructionError(err error) bool {
	return errors.Is(err, ErrMalformedPDF) ||
		errors.Is(err, ErrInvalidRedshift) ||
		errors.Is(err, ErrEmptyScalingGrid)
}

func IsEvaluationError(err error) bool {
	return errors.Is(err, ErrInvalidDistance) ||
		errors.Is(err, ErrCosmologyFailure) ||
		errors.Is(err, ErrNoDraws)
}

package kmedoids

import "errors"

var (
	// ErrConfiguration is returned when construction inputs are inconsistent:
	// a label count that differs from K, duplicate or nil points, mixed
	// dimensionality, or a malformed explicit medoid list. Mixed
	// dimensionality is rejected here, before any distance is measured,
	// rather than left to the metric; a panic raised by the metric itself
	// still propagates unchanged.
	ErrConfiguration = errors.New("kmedoids: invalid configuration")

	// ErrInsufficientPoints is returned when K is non-positive or exceeds the
	// number of points.
	ErrInsufficientPoints = errors.New("kmedoids: insufficient points")

	// ErrInvalidSwap is returned when a swap names an old medoid that is not
	// in the current medoid set, or a replacement that already is.
	ErrInvalidSwap = errors.New("kmedoids: invalid swap")

	// ErrUnknownPoint is returned when an id does not belong to any point.
	ErrUnknownPoint = errors.New("kmedoids: unknown point")

	// ErrNotAssigned is returned when an operation needs assignment state
	// that has not been computed yet. Call ReassignAll first.
	ErrNotAssigned = errors.New("kmedoids: point not assigned")
)

package kmedoids

import (
	"fmt"
	"math"
)

// AssignmentState distinguishes the three situations a point can be in.
type AssignmentState uint8

const (
	// Unassigned means no assignment pass has reached the point yet.
	Unassigned AssignmentState = iota
	// Medoid means the point is itself a current medoid. Its nearest medoid
	// is itself and the distance fields carry no meaning.
	Medoid
	// Assigned means Nearest (and SecondNearest when HasSecond) hold the
	// closest medoids found by the last assignment pass.
	Assigned
)

func (s AssignmentState) String() string {
	switch s {
	case Unassigned:
		return "unassigned"
	case Medoid:
		return "medoid"
	case Assigned:
		return "assigned"
	default:
		return fmt.Sprintf("AssignmentState(%d)", uint8(s))
	}
}

// Assignment is a point's nearest and second-nearest medoid.
type Assignment struct {
	State AssignmentState

	Nearest         int
	NearestDistance float64

	// HasSecond is false for medoids, unassigned points and whenever only
	// one medoid exists.
	HasSecond             bool
	SecondNearest         int
	SecondNearestDistance float64
}

// secondDistance returns the second-nearest distance, or +Inf when there is
// no second medoid to fall back to.
func (a Assignment) secondDistance() float64 {
	if !a.HasSecond {
		return math.Inf(1)
	}
	return a.SecondNearestDistance
}

// Point is a single observation. Its id and coordinates never change; only
// the assignment is rewritten by Assign.
type Point struct {
	id          int
	coordinates []float64
	assignment  Assignment
}

// NewPoint creates a point. The coordinates are copied.
func NewPoint(id int, coordinates []float64) *Point {
	c := make([]float64, len(coordinates))
	copy(c, coordinates)
	return &Point{id: id, coordinates: c}
}

// ID returns the point's identifier.
func (p *Point) ID() int { return p.id }

// Coordinates returns the point's coordinate vector. Callers must not
// modify it.
func (p *Point) Coordinates() []float64 { return p.coordinates }

// Dims returns the dimensionality of the point.
func (p *Point) Dims() int { return len(p.coordinates) }

// Assignment returns a copy of the point's current assignment.
func (p *Point) Assignment() Assignment { return p.assignment }

// Assign recomputes the nearest and second-nearest medoid of p against
// medoids in a single scan. A point that is itself a medoid is marked as
// such without measuring any distance. Distance ties keep the medoid seen
// first in scan order.
func (p *Point) Assign(medoids MedoidSet, metric DistanceMetric) {
	if medoids.Contains(p.id) {
		p.assignment = Assignment{State: Medoid, Nearest: p.id}
		return
	}

	a := Assignment{State: Unassigned}
	for _, m := range medoids.points {
		d := metric.Distance(p.coordinates, m.coordinates)
		switch {
		case a.State == Unassigned || d < a.NearestDistance:
			if a.State == Assigned {
				a.HasSecond = true
				a.SecondNearest = a.Nearest
				a.SecondNearestDistance = a.NearestDistance
			}
			a.State = Assigned
			a.Nearest = m.id
			a.NearestDistance = d
		case !a.HasSecond || d < a.SecondNearestDistance:
			a.HasSecond = true
			a.SecondNearest = m.id
			a.SecondNearestDistance = d
		}
	}
	p.assignment = a
}

// SwapCost returns the change in p's contribution to the total clustering
// cost if oldMedoid were replaced by newMedoid. Negative values are
// improvements. The assignment of p is read, never written.
//
// Medoids in the current set contribute 0. A point whose nearest medoid is
// being removed falls back to the closer of its second-nearest medoid and
// newMedoid; any other point moves to newMedoid only if it is strictly
// closer than its current nearest.
func (p *Point) SwapCost(oldMedoid, newMedoid *Point, medoids MedoidSet, metric DistanceMetric) (float64, error) {
	if medoids.Contains(p.id) {
		return 0, nil
	}
	a := p.assignment
	if a.State != Assigned {
		return 0, fmt.Errorf("kmedoids: point %d: %w", p.id, ErrNotAssigned)
	}

	dNew := metric.Distance(p.coordinates, newMedoid.coordinates)

	if a.Nearest == oldMedoid.id {
		second := a.secondDistance()
		if dNew >= second {
			return second - a.NearestDistance, nil
		}
		return dNew - a.NearestDistance, nil
	}

	if dNew >= a.NearestDistance {
		return 0, nil
	}
	return dNew - a.NearestDistance, nil
}

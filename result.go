package kmedoids

import (
	"fmt"
	"slices"
	"strconv"
)

// Result is the assignment of one point, with its cluster label resolved.
type Result struct {
	ID    int
	State AssignmentState

	// Nearest is the point's own id when State is Medoid.
	Nearest         int
	NearestDistance float64

	HasSecond             bool
	SecondNearest         int
	SecondNearestDistance float64

	Coordinates []float64

	// Cluster is the label of Nearest.
	Cluster Label
}

// Results is one Result per point, in point order.
type Results struct {
	Points          []Result
	CoordinateNames []string
}

// Results projects the current assignment of every point. It fails with
// ErrNotAssigned if any point has not been assigned against the current
// medoids, for example after a Swap without a following ReassignAll.
func (km *KMedoids) Results() (Results, error) {
	out := Results{
		Points:          make([]Result, len(km.points)),
		CoordinateNames: slices.Clone(km.coordinateNames),
	}
	for i, p := range km.points {
		a := p.assignment
		if a.State == Unassigned {
			return Results{}, fmt.Errorf("kmedoids: point %d: %w", p.id, ErrNotAssigned)
		}
		label, ok := km.LabelFor(a.Nearest)
		if !ok {
			return Results{}, fmt.Errorf("kmedoids: point %d: nearest medoid %d is stale: %w", p.id, a.Nearest, ErrNotAssigned)
		}
		out.Points[i] = Result{
			ID:                    p.id,
			State:                 a.State,
			Nearest:               a.Nearest,
			NearestDistance:       a.NearestDistance,
			HasSecond:             a.HasSecond,
			SecondNearest:         a.SecondNearest,
			SecondNearestDistance: a.SecondNearestDistance,
			Coordinates:           slices.Clone(p.coordinates),
			Cluster:               label,
		}
	}
	return out, nil
}

// Columns returns the column names of Rows.
func (r Results) Columns() []string {
	cols := []string{
		"id",
		"nearest_medoid",
		"nearest_medoid_distance",
		"second_nearest_medoid",
		"second_nearest_medoid_distance",
	}
	cols = append(cols, r.CoordinateNames...)
	return append(cols, "cluster")
}

// Rows renders every Result as string cells matching Columns. Distances of
// medoids and missing second-nearest medoids render as empty cells.
func (r Results) Rows() [][]string {
	rows := make([][]string, len(r.Points))
	for i, res := range r.Points {
		row := make([]string, 0, 6+len(res.Coordinates))
		row = append(row, strconv.Itoa(res.ID), strconv.Itoa(res.Nearest))
		if res.State == Assigned {
			row = append(row, formatFloat(res.NearestDistance))
		} else {
			row = append(row, "")
		}
		if res.HasSecond {
			row = append(row, strconv.Itoa(res.SecondNearest), formatFloat(res.SecondNearestDistance))
		} else {
			row = append(row, "", "")
		}
		for _, c := range res.Coordinates {
			row = append(row, formatFloat(c))
		}
		rows[i] = append(row, res.Cluster.String())
	}
	return rows
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

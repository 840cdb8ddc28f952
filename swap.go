package kmedoids

import (
	"fmt"
	"slices"
)

// Candidate is a possible replacement of medoid Old by point New.
type Candidate struct {
	Old int
	New int

	// Cost is the summed per-point swap cost, as returned by SwapCost. It
	// charges nothing for Old itself.
	Cost float64

	// Delta is the change in TotalCost the swap would cause: Cost plus the
	// distance from Old to its nearest medoid once the swap is applied.
	Delta float64
}

// resolveSwap checks that oldID is a medoid and newID a non-medoid point,
// and returns both points.
func (km *KMedoids) resolveSwap(oldID, newID int) (*Point, *Point, error) {
	if !km.IsMedoid(oldID) {
		return nil, nil, fmt.Errorf("kmedoids: %d is not a medoid: %w", oldID, ErrInvalidSwap)
	}
	newPoint, ok := km.Point(newID)
	if !ok {
		return nil, nil, fmt.Errorf("kmedoids: replacement %d: %w", newID, ErrUnknownPoint)
	}
	if km.IsMedoid(newID) {
		return nil, nil, fmt.Errorf("kmedoids: %d is already a medoid: %w", newID, ErrInvalidSwap)
	}
	oldPoint, _ := km.Point(oldID)
	return oldPoint, newPoint, nil
}

// Swap removes oldID from the medoid ids and appends newID. It fails with
// ErrInvalidSwap when oldID is not a medoid or when newID already is one,
// so the medoid ids stay distinct, and with ErrUnknownPoint when newID is
// not a point. On error the medoid ids are unchanged. Swap does not
// reassign points; call ReassignAll before the next cost evaluation.
func (km *KMedoids) Swap(oldID, newID int) error {
	if _, _, err := km.resolveSwap(oldID, newID); err != nil {
		km.log.logSwap(oldID, newID, err)
		return err
	}

	next := make([]int, 0, km.k)
	for _, id := range km.medoidIDs {
		if id != oldID {
			next = append(next, id)
		}
	}
	km.medoidIDs = append(next, newID)

	km.log.logSwap(oldID, newID, nil)
	return nil
}

// SwapCost returns the change in total cost if medoid oldID were replaced
// by point newID, summed over every point. Nothing is mutated. The result
// reflects the assignment of the last ReassignAll.
func (km *KMedoids) SwapCost(oldID, newID int) (float64, error) {
	oldPoint, newPoint, err := km.resolveSwap(oldID, newID)
	if err != nil {
		return 0, err
	}
	return sumSwapCosts(km.points, oldPoint, newPoint, km.CurrentMedoids(), km.metric, km.workers)
}

// BestSwap evaluates every (medoid, non-medoid) pair and returns the one
// with the lowest Delta. Medoids are tried in MedoidIDs order and
// replacements in point order; ties keep the first pair. The swap is not
// applied. Accepting candidates only while Delta < 0 strictly lowers
// TotalCost at every step, so such a loop terminates.
func (km *KMedoids) BestSwap() (Candidate, error) {
	medoids := km.CurrentMedoids()
	medoidIDs := slices.Clone(km.medoidIDs)

	best := Candidate{}
	found := false
	for _, oldID := range medoidIDs {
		oldPoint, _ := km.Point(oldID)
		for _, newPoint := range km.points {
			if medoids.Contains(newPoint.id) {
				continue
			}
			cost, err := sumSwapCosts(km.points, oldPoint, newPoint, medoids, km.metric, km.workers)
			if err != nil {
				return Candidate{}, err
			}
			delta := cost + km.removedMedoidCost(oldPoint, newPoint, medoids)
			if !found || delta < best.Delta {
				best = Candidate{Old: oldID, New: newPoint.id, Cost: cost, Delta: delta}
				found = true
			}
		}
	}
	if !found {
		return Candidate{}, fmt.Errorf("kmedoids: every point is a medoid: %w", ErrInvalidSwap)
	}
	return best, nil
}

// removedMedoidCost is the distance from oldMedoid to its nearest medoid
// after it is replaced by newMedoid.
func (km *KMedoids) removedMedoidCost(oldMedoid, newMedoid *Point, medoids MedoidSet) float64 {
	d := km.metric.Distance(oldMedoid.coordinates, newMedoid.coordinates)
	for _, m := range medoids.points {
		if m.id == oldMedoid.id {
			continue
		}
		d = min(d, km.metric.Distance(oldMedoid.coordinates, m.coordinates))
	}
	return d
}

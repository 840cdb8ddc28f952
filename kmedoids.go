package kmedoids

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/stat/sampleuv"
)

// KMedoids holds a fixed set of points and the current K medoids chosen
// from them. It is not safe for concurrent use: a Swap followed by
// ReassignAll must not interleave with cost evaluation.
type KMedoids struct {
	points    []*Point
	byID      map[int]int
	k         int
	labels    []string
	medoidIDs []int

	metric          DistanceMetric
	workers         int
	coordinateNames []string
	log             logger
}

// New validates points and cfg, then samples cfg.K distinct medoids
// uniformly at random without replacement. Points are left unassigned;
// call ReassignAll before evaluating costs.
func New(points []*Point, cfg Config) (*KMedoids, error) {
	applyDefaults(&cfg)
	km, err := newKMedoids(points, cfg)
	if err != nil {
		return nil, err
	}

	idxs := make([]int, cfg.K)
	sampleuv.WithoutReplacement(idxs, len(points), cfg.Source)
	for i, idx := range idxs {
		km.medoidIDs[i] = points[idx].id
	}

	km.log.logInit(km.MedoidIDs(), false)
	return km, nil
}

// NewWithMedoids is like New but starts from the given medoid ids instead
// of sampling. medoidIDs must hold exactly cfg.K distinct ids of points.
func NewWithMedoids(points []*Point, medoidIDs []int, cfg Config) (*KMedoids, error) {
	applyDefaults(&cfg)
	km, err := newKMedoids(points, cfg)
	if err != nil {
		return nil, err
	}

	if len(medoidIDs) != cfg.K {
		return nil, fmt.Errorf("kmedoids: %d medoid ids for K = %d: %w", len(medoidIDs), cfg.K, ErrConfiguration)
	}
	seen := make(map[int]struct{}, len(medoidIDs))
	for _, id := range medoidIDs {
		if _, ok := km.byID[id]; !ok {
			return nil, fmt.Errorf("kmedoids: medoid id %d: %w", id, ErrUnknownPoint)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("kmedoids: duplicate medoid id %d: %w", id, ErrConfiguration)
		}
		seen[id] = struct{}{}
	}
	copy(km.medoidIDs, medoidIDs)

	km.log.logInit(km.MedoidIDs(), true)
	return km, nil
}

// newKMedoids validates and builds everything except the medoid ids.
func newKMedoids(points []*Point, cfg Config) (*KMedoids, error) {
	if err := validateConfig(&cfg, points); err != nil {
		return nil, err
	}

	byID := make(map[int]int, len(points))
	for i, p := range points {
		byID[p.id] = i
	}

	names := slices.Clone(cfg.CoordinateNames)
	if len(names) == 0 {
		names = make([]string, points[0].Dims())
		for i := range names {
			names[i] = fmt.Sprintf("x%d", i)
		}
	}

	return &KMedoids{
		points:          slices.Clone(points),
		byID:            byID,
		k:               cfg.K,
		labels:          slices.Clone(cfg.Labels),
		medoidIDs:       make([]int, cfg.K),
		metric:          cfg.Metric,
		workers:         cfg.Workers,
		coordinateNames: names,
		log:             newLogger(cfg.Logger, len(points), cfg.K),
	}, nil
}

// K returns the number of medoids.
func (km *KMedoids) K() int { return km.k }

// Points returns the points in the order they were supplied. The slice is
// a copy; the points are shared.
func (km *KMedoids) Points() []*Point { return slices.Clone(km.points) }

// Point returns the point with the given id.
func (km *KMedoids) Point(id int) (*Point, bool) {
	i, ok := km.byID[id]
	if !ok {
		return nil, false
	}
	return km.points[i], true
}

// MedoidIDs returns a copy of the current medoid ids in medoid order.
func (km *KMedoids) MedoidIDs() []int { return slices.Clone(km.medoidIDs) }

// IsMedoid reports whether id is a current medoid.
func (km *KMedoids) IsMedoid(id int) bool { return slices.Contains(km.medoidIDs, id) }

// CurrentMedoids returns a snapshot of the medoid points in the order the
// points were originally supplied, not the order of MedoidIDs.
func (km *KMedoids) CurrentMedoids() MedoidSet {
	medoids := make([]*Point, 0, km.k)
	for _, p := range km.points {
		if km.IsMedoid(p.id) {
			medoids = append(medoids, p)
		}
	}
	return NewMedoidSet(medoids)
}

// ReassignAll recomputes the nearest and second-nearest medoid of every
// point against the current medoids. Calling it twice without a Swap in
// between leaves the state unchanged.
func (km *KMedoids) ReassignAll() {
	assignAll(km.points, km.CurrentMedoids(), km.metric, km.workers)
	km.log.logReassign(km.workers)
}

// TotalCost returns the sum over non-medoid points of the distance to their
// nearest medoid, as of the last ReassignAll.
func (km *KMedoids) TotalCost() (float64, error) {
	var total float64
	for _, p := range km.points {
		switch p.assignment.State {
		case Assigned:
			total += p.assignment.NearestDistance
		case Unassigned:
			return 0, fmt.Errorf("kmedoids: point %d: %w", p.id, ErrNotAssigned)
		}
	}
	return total, nil
}

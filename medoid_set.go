package kmedoids

// MedoidSet is an immutable snapshot of the current medoids. It is built
// once per pass and shared read-only by every point, so assignment and
// cost evaluation may fan out across goroutines without locking.
type MedoidSet struct {
	points  []*Point
	members map[int]struct{}
}

// NewMedoidSet builds a snapshot over the given medoid points. Scan order
// during assignment follows the order of medoids.
func NewMedoidSet(medoids []*Point) MedoidSet {
	pts := make([]*Point, len(medoids))
	copy(pts, medoids)
	members := make(map[int]struct{}, len(medoids))
	for _, m := range medoids {
		members[m.id] = struct{}{}
	}
	return MedoidSet{points: pts, members: members}
}

// Len returns the number of medoids in the snapshot.
func (s MedoidSet) Len() int { return len(s.points) }

// Contains reports whether id is one of the snapshot's medoids.
func (s MedoidSet) Contains(id int) bool {
	_, ok := s.members[id]
	return ok
}

// Points returns the medoid points in scan order. The returned slice is a
// copy; the points themselves are shared.
func (s MedoidSet) Points() []*Point {
	out := make([]*Point, len(s.points))
	copy(out, s.points)
	return out
}

// IDs returns the medoid ids in scan order.
func (s MedoidSet) IDs() []int {
	ids := make([]int, len(s.points))
	for i, p := range s.points {
		ids[i] = p.id
	}
	return ids
}

package kmedoids

import (
	"slices"
	"strconv"
)

// Label is the user-facing name of a cluster. Index is the position of the
// cluster's medoid in MedoidIDs; Name is the configured label at that
// position, if labels were configured.
type Label struct {
	Index int
	Name  string
	named bool
}

// String returns Name when labels were configured, otherwise Index in
// decimal.
func (l Label) String() string {
	if l.named {
		return l.Name
	}
	return strconv.Itoa(l.Index)
}

// LabelFor resolves the label of medoidID. ok is false when medoidID is
// not a current medoid.
func (km *KMedoids) LabelFor(medoidID int) (label Label, ok bool) {
	i := slices.Index(km.medoidIDs, medoidID)
	if i < 0 {
		return Label{}, false
	}
	return km.labelAt(i), true
}

// LabelMapping returns the label of every current medoid keyed by id.
func (km *KMedoids) LabelMapping() map[int]Label {
	m := make(map[int]Label, len(km.medoidIDs))
	for i, id := range km.medoidIDs {
		m[id] = km.labelAt(i)
	}
	return m
}

func (km *KMedoids) labelAt(i int) Label {
	if len(km.labels) == 0 {
		return Label{Index: i}
	}
	return Label{Index: i, Name: km.labels[i], named: true}
}

package model

// PCSequence is an ordered, rotation-specific realization of a cyclic pitch
// class structure. Repeated pitch classes are allowed.
type PCSequence = []int

// ClassInfo is the derived metadata for one necklace class.
//
// IntervalVector is a fingerprint, not a key: distinct necklaces can share a
// vector (the Z-relation), so classes are always keyed on CanonicalForm.
type ClassInfo struct {
	ID             string     `json:"id"`
	CanonicalForm  PCSequence `json:"canonical_form"`
	Cardinality    int        `json:"cardinality"`
	IntervalVector []int      `json:"interval_vector"`

	// Structure is the circular interval pattern of the distinct pitch
	// class set, e.g. [4,3,5] for a major triad mod 12. Prime is its
	// shortest repeating subsequence.
	Structure []int `json:"structure"`
	Prime     []int `json:"prime"`

	NumModes          int `json:"num_modes"`
	NumTranspositions int `json:"num_transpositions"`

	Label string `json:"label,omitempty"`
}

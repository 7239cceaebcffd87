package internal

// Snapshot is the ordered tuple of comparison tokens a caller supplies to
// describe the inputs of a debounced computation. Tokens are opaque but must
// be comparable.
type Snapshot []any

// Equal reports whether two snapshots are shallowly equal: same arity and
// each slot equal under the same rule signals use for change detection.
// The backing arrays' identities are irrelevant.
func (s Snapshot) Equal(other Snapshot) bool {
	if len(s) != len(other) {
		return false
	}

	for i := range s {
		if !isEqual(s[i], other[i]) {
			return false
		}
	}

	return true
}

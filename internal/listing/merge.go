package listing

// Merge reconciles a previously stored collection with a freshly fetched
// batch and returns the next authoritative collection plus the number of
// truly-new listings added.
//
// Incoming items whose natural key already exists in previous are dropped,
// regardless of the stored record's status. In particular a listing the
// user already viewed (OLD) does not resurrect as NEW when the upstream
// re-serves it. Stored records are never altered by a merge pass.
//
// Merge is a pure function of its inputs: no I/O, no hidden state, and the
// result does not depend on the internal ordering of previous. The
// returned slice is freshly allocated; neither input is mutated.
func Merge(previous, incoming []Listing) ([]Listing, int) {
	existing := make(map[string]struct{}, len(previous))
	for _, l := range previous {
		existing[l.Key()] = struct{}{}
	}

	merged := make([]Listing, 0, len(previous)+len(incoming))
	merged = append(merged, previous...)

	added := 0
	for _, l := range incoming {
		key := l.Key()
		if _, ok := existing[key]; ok {
			continue
		}
		// Guard against duplicates within the incoming batch itself.
		existing[key] = struct{}{}
		merged = append(merged, l)
		added++
	}

	return merged, added
}

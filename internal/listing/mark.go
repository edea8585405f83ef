package listing

// MarkViewed returns a copy of the collection where every listing whose
// natural key appears in keys and is currently NEW moves to OLD. All other
// records are unchanged. Marking an already-OLD key again is a no-op, so
// the operation is idempotent. The second return value is the number of
// records that actually transitioned.
func MarkViewed(collection []Listing, keys []string) ([]Listing, int) {
	want := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		want[k] = struct{}{}
	}

	updated := make([]Listing, len(collection))
	copy(updated, collection)

	changed := 0
	for i := range updated {
		if _, ok := want[updated[i].Key()]; !ok {
			continue
		}
		if updated[i].Status != StatusNew {
			continue
		}
		updated[i].Status = StatusOld
		changed++
	}

	return updated, changed
}

// MarkAllViewed transitions every NEW listing in the collection to OLD.
func MarkAllViewed(collection []Listing) ([]Listing, int) {
	updated := make([]Listing, len(collection))
	copy(updated, collection)

	changed := 0
	for i := range updated {
		if updated[i].Status == StatusNew {
			updated[i].Status = StatusOld
			changed++
		}
	}

	return updated, changed
}

package draglist

import "slices"

// Move applies a drop notification to a backing slice: the element at source
// is removed and reinserted at the given drop location, an insertion index in
// [0, len(items)] as reported by [Column.SetDroppedFunc].
//
// A location equal to source or source+1 means "drop in the original place"
// and leaves the slice unchanged, as do out-of-range arguments.
func Move[S ~[]E, E any](items S, source, location int) S {
	if source < 0 || source >= len(items) {
		return items
	}
	if location < 0 || location > len(items) {
		return items
	}
	if location == source || location == source+1 {
		return items
	}
	if location > source {
		// Removal shifts everything after source down by one.
		location--
	}
	moved := items[source]
	items = slices.Delete(items, source, source+1)
	return slices.Insert(items, location, moved)
}

package event

// AppendCombine appends src's events onto dst and returns the new slice.
// It is the entire combine-time contribution of the event layer (§4.2
// rule 1 and rule 3): no sorting, no per-element work beyond the copy,
// and Go's append already grows dst geometrically, so an N-way left
// fold of combine calls costs O(N) total copies rather than O(N^2).
//
// Callers own dst; AppendCombine never mutates src.
func AppendCombine(dst, src []Event) []Event {
	if len(src) == 0 {
		return dst
	}
	return append(dst, src...)
}

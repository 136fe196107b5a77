package scheduler

// Overlaps reports whether two half-open minute intervals
// [startA, startA+durA) and [startB, startB+durB) overlap. It is the single
// conflict predicate for both the advisory availability projection and the
// authoritative re-check at booking time; the two must never diverge.
func Overlaps(startA, durA, startB, durB int) bool {
	endA := startA + durA
	endB := startB + durB

	// A starts inside B, A ends inside B, or A contains B.
	return (startA >= startB && startA < endB) ||
		(endA > startB && endA <= endB) ||
		(startA <= startB && endA >= endB)
}

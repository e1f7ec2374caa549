package voltorb

// lineBounds computes the interval of final sums a line can still reach
// once some of its cells are fixed. partialSum and partialBombs are the
// contributions of the fixed cells, cellsLeft the number of cells still
// open. ok is false when the bomb quota is already blown or can no
// longer be filled; otherwise every remaining non-bomb cell is worth
// between 1 and 3, which gives the [lo, hi] window for the final sum.
func lineBounds(target LineConstraint, partialSum, partialBombs, cellsLeft int) (lo, hi int, ok bool) {
	bombsLeft := target.Bombs - partialBombs
	if bombsLeft < 0 || bombsLeft > cellsLeft {
		return 0, 0, false
	}
	nonBombLeft := cellsLeft - bombsLeft
	return partialSum + nonBombLeft*1, partialSum + nonBombLeft*3, true
}

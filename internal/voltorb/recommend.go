package voltorb

// Recommend picks the unrevealed square with the smallest bomb chance.
// Ties go to the higher expected value, then to row-major order, so the
// same posteriors always produce the same recommendation. ok is false
// when there is nothing left to recommend.
func Recommend(post map[Coord]Posterior) (Coord, Posterior, bool) {
	var (
		best  Coord
		bestP Posterior
		found bool
	)
	// Scanning coordinates in row-major order makes the final tie-break
	// implicit: a later square must be strictly better to win.
	for r := range Size {
		for c := range Size {
			p, ok := post[Coord{r, c}]
			if !ok {
				continue
			}
			if !found ||
				p.BombChance() < bestP.BombChance() ||
				(p.BombChance() == bestP.BombChance() && p.EV > bestP.EV) {
				best, bestP, found = Coord{r, c}, p, true
			}
		}
	}
	return best, bestP, found
}

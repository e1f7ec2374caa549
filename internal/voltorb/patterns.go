package voltorb

// Pattern is one candidate content for a full row.
type Pattern [Size]Cell

// rowPatterns enumerates every pattern for row r that satisfies the
// row's own constraint and agrees with the already-revealed cells.
// Column constraints are not consulted here; that is the assembler's
// job. An empty result means the row alone is unsatisfiable.
func rowPatterns(r int, clue LineConstraint, revealed Grid) []Pattern {
	var fixed Pattern
	remSum, remBombs := clue.Sum, clue.Bombs
	for c := range Size {
		v := revealed.At(r, c)
		fixed[c] = v
		// Revealed cells are netted out of the quotas up front; the
		// walk below passes over them without spending anything.
		switch {
		case v == Bomb:
			remBombs--
		case v > Bomb:
			remSum -= int(v)
		}
	}

	var (
		patterns []Pattern
		acc      Pattern
		walk     func(c, remSum, remBombs int)
	)
	walk = func(c, remSum, remBombs int) {
		openLeft := 0
		for i := c; i < Size; i++ {
			if fixed[i] == Unknown {
				openLeft++
			}
		}
		if remBombs < 0 || remBombs > openLeft {
			return
		}
		nonBomb := openLeft - remBombs
		if remSum < nonBomb*1 || remSum > nonBomb*3 {
			return
		}
		if c == Size {
			if remSum == 0 && remBombs == 0 {
				patterns = append(patterns, acc)
			}
			return
		}
		if v := fixed[c]; v != Unknown {
			acc[c] = v
			walk(c+1, remSum, remBombs)
			return
		}
		if remBombs > 0 {
			acc[c] = Bomb
			walk(c+1, remSum, remBombs-1)
		}
		for v := One; v <= Three; v++ {
			acc[c] = v
			walk(c+1, remSum-int(v), remBombs)
		}
	}
	walk(0, remSum, remBombs)
	return patterns
}

package voltorb

// Posterior is the exact value distribution of one unrevealed square
// across every surviving board. P is indexed by Cell value, so P[Bomb]
// is the chance of losing on that square. EV weighs the non-bomb values
// by their probability; bombs contribute nothing.
type Posterior struct {
	Total int        `json:"total"`
	P     [4]float64 `json:"p"`
	EV    float64    `json:"ev"`
}

// BombChance is P(the square holds a Voltorb).
func (p Posterior) BombChance() float64 {
	return p.P[Bomb]
}

// Posteriors tallies, for every unrevealed square, how often each value
// occurs across boards, and turns the tallies into probabilities. An
// empty board set yields an empty map and a zero count.
func Posteriors(boards []Board, revealed Grid) (map[Coord]Posterior, int) {
	post := make(map[Coord]Posterior)
	if len(boards) == 0 {
		return post, 0
	}
	total := float64(len(boards))
	for r := range Size {
		for c := range Size {
			if revealed.At(r, c) != Unknown {
				continue
			}
			var counts [4]int
			for _, b := range boards {
				counts[b.At(r, c)]++
			}
			p := Posterior{Total: len(boards)}
			for v, n := range counts {
				p.P[v] = float64(n) / total
			}
			for v := One; v <= Three; v++ {
				p.EV += float64(v.Points()) * p.P[v]
			}
			post[Coord{r, c}] = p
		}
	}
	return post, len(boards)
}

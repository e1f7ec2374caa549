package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katkov/voltorb-server/internal/voltorb"
)

var (
	log   = logrus.New()
	debug bool
)

func init() {
	flag.BoolVar(&debug, "debug", false, "log solver details and top safe cells")
}

type prompter struct {
	scanner *bufio.Scanner
}

func (p prompter) line(prompt string) (string, bool) {
	fmt.Print(prompt)
	if !p.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(p.scanner.Text()), true
}

// constraints reads one clue line: five whitespace-separated integers.
func (p prompter) constraints(prompt string) ([voltorb.Size]int, bool) {
	var values [voltorb.Size]int
	for {
		text, ok := p.line(prompt)
		if !ok {
			return values, false
		}
		fields := strings.Fields(text)
		if len(fields) != voltorb.Size {
			fmt.Printf("want %d numbers\n", voltorb.Size)
			continue
		}
		ok = true
		for i, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil {
				fmt.Printf("%q is not a number\n", f)
				ok = false
				break
			}
			values[i] = n
		}
		if ok {
			return values, true
		}
	}
}

func readClues(p prompter) (voltorb.Clues, bool) {
	var clues voltorb.Clues
	rowSums, ok := p.constraints("row sums: ")
	if !ok {
		return clues, false
	}
	rowBombs, ok := p.constraints("row bombs: ")
	if !ok {
		return clues, false
	}
	colSums, ok := p.constraints("col sums: ")
	if !ok {
		return clues, false
	}
	colBombs, ok := p.constraints("col bombs: ")
	if !ok {
		return clues, false
	}
	for i := range voltorb.Size {
		clues.Rows[i] = voltorb.LineConstraint{Sum: rowSums[i], Bombs: rowBombs[i]}
		clues.Cols[i] = voltorb.LineConstraint{Sum: colSums[i], Bombs: colBombs[i]}
	}
	return clues, true
}

func logTopSafe(sol voltorb.Solution) {
	type entry struct {
		rc voltorb.Coord
		p  voltorb.Posterior
	}
	entries := make([]entry, 0, len(sol.Posteriors))
	for rc, p := range sol.Posteriors {
		entries = append(entries, entry{rc, p})
	}
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.p.BombChance() != b.p.BombChance() {
			return a.p.BombChance() < b.p.BombChance()
		}
		if a.p.EV != b.p.EV {
			return a.p.EV > b.p.EV
		}
		return a.rc.Before(b.rc)
	})
	if len(entries) > 5 {
		entries = entries[:5]
	}
	for _, e := range entries {
		log.WithFields(logrus.Fields{
			"cell":   fmt.Sprintf("(%d, %d)", e.rc.R, e.rc.C),
			"p_bomb": fmt.Sprintf("%.3f", e.p.BombChance()),
			"ev":     fmt.Sprintf("%.3f", e.p.EV),
		}).Debug("safe cell")
	}
}

func main() {
	flag.Parse()

	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	if debug {
		log.SetLevel(logrus.DebugLevel)
	}

	p := prompter{scanner: bufio.NewScanner(os.Stdin)}

	fmt.Println("voltorb flip assistant")
	fmt.Println("enter the printed row/column sums and bomb counts")

	clues, ok := readClues(p)
	if !ok {
		return
	}

	game, err := voltorb.NewGame(clues)
	if err != nil {
		log.Fatal("bad clues: ", err)
	}

	for step := 1; ; step++ {
		fmt.Println("\nboard:")
		fmt.Println(game.Revealed.String())

		sol := game.Solve()
		if sol.Boards == 0 {
			fmt.Println("the entered values contradict the clues; no board fits")
			return
		}
		fmt.Printf("consistent boards: %d\n", sol.Boards)
		if debug {
			logTopSafe(sol)
		}

		rc, post, ok := sol.Recommend()
		if !ok {
			fmt.Println("every cell is revealed")
			return
		}
		fmt.Printf(
			"[step %d] flip (%d, %d): bomb %.0f%%, expected value %.2f\n",
			step, rc.R, rc.C, post.BombChance()*100, post.EV,
		)

		text, ok := p.line("actual value (0-3), q to quit: ")
		if !ok || text == "q" {
			return
		}
		v, err := strconv.Atoi(text)
		if err != nil || !voltorb.Cell(v).Valid() {
			fmt.Println("want a value between 0 and 3")
			step--
			continue
		}

		if _, err := game.Reveal(rc.R, rc.C, voltorb.Cell(v)); err != nil {
			log.Error("reveal failed: ", err)
			continue
		}

		if game.Dead {
			fmt.Println("\nboard:")
			fmt.Println(game.Revealed.String())
			fmt.Println("voltorb! game over")
			return
		}
		if game.Won {
			fmt.Println("\nboard:")
			fmt.Println(game.Revealed.String())
			fmt.Printf("board cleared in %d flips\n", game.Reveals)
			return
		}
	}
}

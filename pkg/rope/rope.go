// Package rope simulates a rope of knots dragged around a grid.
package rope

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/mattsolo1/grove-advent/pkg/puzzle"
)

// ErrUnknownMove is returned for a line that is not "<U|D|L|R> <steps>".
var ErrUnknownMove = errors.New("unknown movement")

var movePattern = regexp.MustCompile(`^([UDLR]) (\d+)$`)

// Point is a grid position.
type Point struct {
	X, Y int
}

// Add returns p shifted by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Touching reports whether p and q are the same or adjacent, diagonals
// included.
func (p Point) Touching(q Point) bool {
	return abs(p.X-q.X) <= 1 && abs(p.Y-q.Y) <= 1
}

// Follow returns the position of a knot at p after its leader moved to
// leader. A knot that is still touching stays put; otherwise it steps one
// place toward the leader on each axis.
func (p Point) Follow(leader Point) Point {
	if p.Touching(leader) {
		return p
	}
	return Point{X: p.X + sign(leader.X-p.X), Y: p.Y + sign(leader.Y-p.Y)}
}

var directions = map[string]Point{
	"U": {X: 0, Y: 1},
	"D": {X: 0, Y: -1},
	"L": {X: -1, Y: 0},
	"R": {X: 1, Y: 0},
}

// Move drags the head Steps times in Direction.
type Move struct {
	Direction Point
	Steps     int
}

// Parse reads one movement per line.
func Parse(input string) ([]Move, error) {
	var moves []Move
	for i, line := range puzzle.Lines(input) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m := movePattern.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("line %d %q: %w", i+1, line, ErrUnknownMove)
		}
		steps, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		moves = append(moves, Move{Direction: directions[m[1]], Steps: steps})
	}
	return moves, nil
}

// Rope is a chain of knots, head first.
type Rope struct {
	Knots []Point
}

// New returns a rope of n knots stacked at the origin.
func New(n int) *Rope {
	return &Rope{Knots: make([]Point, n)}
}

// Tail returns the last knot.
func (r *Rope) Tail() Point {
	return r.Knots[len(r.Knots)-1]
}

// Step moves the head one place along d and lets every other knot follow.
func (r *Rope) Step(d Point) {
	r.Knots[0] = r.Knots[0].Add(d)
	for i := 1; i < len(r.Knots); i++ {
		r.Knots[i] = r.Knots[i].Follow(r.Knots[i-1])
	}
}

// TailVisits runs every move on a rope of n knots and returns the number of
// distinct positions the tail occupied, the start included.
func TailVisits(moves []Move, n int) (int, error) {
	if n < 1 {
		return 0, fmt.Errorf("rope of %d knots: need at least one", n)
	}
	rope := New(n)
	visited := map[Point]struct{}{rope.Tail(): {}}
	for _, m := range moves {
		for s := 0; s < m.Steps; s++ {
			rope.Step(m.Direction)
			visited[rope.Tail()] = struct{}{}
		}
	}
	return len(visited), nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}

// Solver answers day 9.
type Solver struct {
	Knots int
}

func (s *Solver) Day() int     { return 9 }
func (s *Solver) Slug() string { return "rope-bridge" }

func (s *Solver) Solve(input string) (puzzle.Answers, error) {
	moves, err := Parse(input)
	if err != nil {
		return puzzle.Answers{}, err
	}
	short, err := TailVisits(moves, 2)
	if err != nil {
		return puzzle.Answers{}, err
	}
	long, err := TailVisits(moves, s.Knots)
	if err != nil {
		return puzzle.Answers{}, err
	}
	return puzzle.Ints(short, long), nil
}

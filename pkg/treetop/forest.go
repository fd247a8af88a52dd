// Package treetop surveys a grid of tree heights.
package treetop

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattsolo1/grove-advent/pkg/puzzle"
)

// ErrBadGrid is returned for ragged rows or non-digit heights.
var ErrBadGrid = errors.New("invalid height map")

// Direction is one of the four sight lines.
type Direction struct {
	DRow, DCol int
}

var (
	North = Direction{-1, 0}
	South = Direction{1, 0}
	East  = Direction{0, 1}
	West  = Direction{0, -1}

	Directions = []Direction{North, South, East, West}
)

// Forest is a rectangular grid of heights 0-9.
type Forest struct {
	heights [][]int
}

// Parse reads one row of digits per line.
func Parse(input string) (*Forest, error) {
	f := &Forest{}
	for i, line := range puzzle.Lines(input) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row := make([]int, len(line))
		for j := 0; j < len(line); j++ {
			if line[j] < '0' || line[j] > '9' {
				return nil, fmt.Errorf("line %d col %d: %w", i+1, j+1, ErrBadGrid)
			}
			row[j] = int(line[j] - '0')
		}
		if len(f.heights) > 0 && len(row) != len(f.heights[0]) {
			return nil, fmt.Errorf("line %d: width %d, want %d: %w", i+1, len(row), len(f.heights[0]), ErrBadGrid)
		}
		f.heights = append(f.heights, row)
	}
	return f, nil
}

// Rows returns the grid height.
func (f *Forest) Rows() int { return len(f.heights) }

// Cols returns the grid width.
func (f *Forest) Cols() int {
	if len(f.heights) == 0 {
		return 0
	}
	return len(f.heights[0])
}

// Height returns the height of the tree at row r, column c.
func (f *Forest) Height(r, c int) int { return f.heights[r][c] }

func (f *Forest) inside(r, c int) bool {
	return r >= 0 && r < f.Rows() && c >= 0 && c < f.Cols()
}

// VisibleFrom reports whether every tree between (r, c) and the edge in
// direction d is shorter than it.
func (f *Forest) VisibleFrom(r, c int, d Direction) bool {
	h := f.heights[r][c]
	for r, c = r+d.DRow, c+d.DCol; f.inside(r, c); r, c = r+d.DRow, c+d.DCol {
		if f.heights[r][c] >= h {
			return false
		}
	}
	return true
}

// Visible reports whether the tree can be seen from any edge.
func (f *Forest) Visible(r, c int) bool {
	for _, d := range Directions {
		if f.VisibleFrom(r, c, d) {
			return true
		}
	}
	return false
}

// SightDistance counts the trees seen from (r, c) looking along d. The view
// stops at the edge or at the first tree at least as tall.
func (f *Forest) SightDistance(r, c int, d Direction) int {
	h := f.heights[r][c]
	distance := 0
	for r, c = r+d.DRow, c+d.DCol; f.inside(r, c); r, c = r+d.DRow, c+d.DCol {
		distance++
		if f.heights[r][c] >= h {
			break
		}
	}
	return distance
}

// ScenicScore multiplies the sight distances in all four directions.
func (f *Forest) ScenicScore(r, c int) int {
	score := 1
	for _, d := range Directions {
		score *= f.SightDistance(r, c, d)
	}
	return score
}

// CountVisible counts trees visible from outside the grid.
func (f *Forest) CountVisible() int {
	n := 0
	for r := 0; r < f.Rows(); r++ {
		for c := 0; c < f.Cols(); c++ {
			if f.Visible(r, c) {
				n++
			}
		}
	}
	return n
}

// BestScenicScore returns the highest scenic score in the grid.
func (f *Forest) BestScenicScore() int {
	best := 0
	for r := 0; r < f.Rows(); r++ {
		for c := 0; c < f.Cols(); c++ {
			if s := f.ScenicScore(r, c); s > best {
				best = s
			}
		}
	}
	return best
}

// Solver answers day 8.
type Solver struct{}

func (Solver) Day() int     { return 8 }
func (Solver) Slug() string { return "treetop-tree-house" }

func (Solver) Solve(input string) (puzzle.Answers, error) {
	forest, err := Parse(input)
	if err != nil {
		return puzzle.Answers{}, err
	}
	return puzzle.Ints(forest.CountVisible(), forest.BestScenicScore()), nil
}

// Package cleanup compares pairs of section assignments.
package cleanup

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mattsolo1/grove-advent/pkg/puzzle"
)

// ErrBadRange is returned for a range that is malformed or runs backwards.
var ErrBadRange = errors.New("invalid section range")

// Range is an inclusive span of section IDs.
type Range struct {
	First int
	Last  int
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.First, r.Last)
}

// Contains reports whether other lies entirely within r.
func (r Range) Contains(other Range) bool {
	return r.First <= other.First && other.Last <= r.Last
}

// Overlaps reports whether r and other share at least one section.
func (r Range) Overlaps(other Range) bool {
	return r.First <= other.Last && other.First <= r.Last
}

// Pair is one line of assignments.
type Pair struct {
	A Range
	B Range
}

// FullyContained reports whether either range contains the other.
func (p Pair) FullyContained() bool {
	return p.A.Contains(p.B) || p.B.Contains(p.A)
}

func parseRange(s string) (Range, error) {
	first, last, ok := strings.Cut(s, "-")
	if !ok {
		return Range{}, fmt.Errorf("%q: %w", s, ErrBadRange)
	}
	a, err := strconv.Atoi(first)
	if err != nil {
		return Range{}, fmt.Errorf("%q: %w", s, err)
	}
	b, err := strconv.Atoi(last)
	if err != nil {
		return Range{}, fmt.Errorf("%q: %w", s, err)
	}
	if b < a {
		return Range{}, fmt.Errorf("%q: %w", s, ErrBadRange)
	}
	return Range{First: a, Last: b}, nil
}

// Parse reads one pair per line.
func Parse(input string) ([]Pair, error) {
	var pairs []Pair
	for i, line := range puzzle.Lines(input) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		left, right, ok := strings.Cut(line, ",")
		if !ok {
			return nil, fmt.Errorf("line %d: assignments must come in pairs", i+1)
		}
		a, err := parseRange(left)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		b, err := parseRange(right)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		pairs = append(pairs, Pair{A: a, B: b})
	}
	return pairs, nil
}

// Count returns the number of pairs satisfying match.
func Count(pairs []Pair, match func(Pair) bool) int {
	n := 0
	for _, p := range pairs {
		if match(p) {
			n++
		}
	}
	return n
}

// Solver answers day 4.
type Solver struct{}

func (Solver) Day() int     { return 4 }
func (Solver) Slug() string { return "camp-cleanup" }

func (Solver) Solve(input string) (puzzle.Answers, error) {
	pairs, err := Parse(input)
	if err != nil {
		return puzzle.Answers{}, err
	}
	overlapping := Count(pairs, func(p Pair) bool { return p.A.Overlaps(p.B) })
	return puzzle.Ints(Count(pairs, Pair.FullyContained), overlapping), nil
}

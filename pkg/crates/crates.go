// Package crates simulates the cargo crane rearranging supply stacks.
package crates

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/mattsolo1/grove-advent/pkg/puzzle"
)

var (
	// ErrBadDrawing is returned when the stack drawing cannot be read.
	ErrBadDrawing = errors.New("invalid stack drawing")

	// ErrUnknownStack is returned by a procedure naming a missing stack.
	ErrUnknownStack = errors.New("unknown stack")

	// ErrNotEnoughCrates is returned when a procedure empties a stack too far.
	ErrNotEnoughCrates = errors.New("not enough crates")
)

var procedurePattern = regexp.MustCompile(`^move (\d+) from (\d+) to (\d+)$`)

// Procedure moves N crates from one stack to another.
type Procedure struct {
	N    int
	From int
	To   int
}

func (p Procedure) String() string {
	return fmt.Sprintf("move %d from %d to %d", p.N, p.From, p.To)
}

// Stacks holds every stack keyed by label. Crates are stored bottom first.
type Stacks struct {
	labels []int
	crates map[int][]byte
}

// Labels returns the stack labels in drawing order.
func (s *Stacks) Labels() []int {
	return append([]int(nil), s.labels...)
}

// Stack returns the crates of one stack, bottom first.
func (s *Stacks) Stack(label int) []byte {
	return append([]byte(nil), s.crates[label]...)
}

// Clone returns an independent copy.
func (s *Stacks) Clone() *Stacks {
	c := &Stacks{labels: s.Labels(), crates: make(map[int][]byte, len(s.crates))}
	for label, crates := range s.crates {
		c.crates[label] = append([]byte(nil), crates...)
	}
	return c
}

// Tops returns the top crate of every stack in label order, using a space
// for an empty stack.
func (s *Stacks) Tops() string {
	var sb strings.Builder
	for _, label := range s.labels {
		stack := s.crates[label]
		if len(stack) == 0 {
			sb.WriteByte(' ')
			continue
		}
		sb.WriteByte(stack[len(stack)-1])
	}
	return sb.String()
}

// Apply runs one procedure. With enBloc set the moved crates keep their
// order, otherwise they move one at a time.
func (s *Stacks) Apply(p Procedure, enBloc bool) error {
	from, ok := s.crates[p.From]
	if !ok {
		return fmt.Errorf("%s: stack %d: %w", p, p.From, ErrUnknownStack)
	}
	to, ok := s.crates[p.To]
	if !ok {
		return fmt.Errorf("%s: stack %d: %w", p, p.To, ErrUnknownStack)
	}
	if p.N > len(from) {
		return fmt.Errorf("%s: stack %d holds %d: %w", p, p.From, len(from), ErrNotEnoughCrates)
	}

	moved := append([]byte(nil), from[len(from)-p.N:]...)
	if !enBloc {
		for i, j := 0, len(moved)-1; i < j; i, j = i+1, j-1 {
			moved[i], moved[j] = moved[j], moved[i]
		}
	}

	s.crates[p.From] = from[:len(from)-p.N]
	if p.From == p.To {
		to = s.crates[p.To]
	}
	s.crates[p.To] = append(to, moved...)
	return nil
}

// Parse splits the input into the initial stacks and the procedures.
func Parse(input string) (*Stacks, []Procedure, error) {
	lines := puzzle.Lines(input)

	split := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			split = i
			break
		}
	}
	if split < 1 {
		return nil, nil, fmt.Errorf("no blank line after drawing: %w", ErrBadDrawing)
	}

	stacks, err := parseDrawing(lines[:split])
	if err != nil {
		return nil, nil, err
	}

	var procedures []Procedure
	for i, line := range lines[split+1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m := procedurePattern.FindStringSubmatch(line)
		if m == nil {
			return nil, nil, fmt.Errorf("line %d: unknown procedure %q", split+i+2, line)
		}
		var nums [3]int
		for k := range nums {
			if nums[k], err = strconv.Atoi(m[k+1]); err != nil {
				return nil, nil, fmt.Errorf("line %d: %w", split+i+2, err)
			}
		}
		procedures = append(procedures, Procedure{N: nums[0], From: nums[1], To: nums[2]})
	}

	return stacks, procedures, nil
}

func parseDrawing(rows []string) (*Stacks, error) {
	labelRow := rows[len(rows)-1]
	stacks := &Stacks{crates: make(map[int][]byte)}
	var columns []int

	for i := 0; i < len(labelRow); {
		c := labelRow[i]
		switch {
		case c == ' ':
			i++
		case c >= '0' && c <= '9':
			j := i
			for j < len(labelRow) && labelRow[j] >= '0' && labelRow[j] <= '9' {
				j++
			}
			label, err := strconv.Atoi(labelRow[i:j])
			if err != nil {
				return nil, fmt.Errorf("label %q: %w", labelRow[i:j], err)
			}
			if _, dup := stacks.crates[label]; dup {
				return nil, fmt.Errorf("duplicate label %d: %w", label, ErrBadDrawing)
			}
			stacks.labels = append(stacks.labels, label)
			stacks.crates[label] = nil
			columns = append(columns, i)
			i = j
		default:
			return nil, fmt.Errorf("label row %q: %w", labelRow, ErrBadDrawing)
		}
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("no stack labels: %w", ErrBadDrawing)
	}

	for r := len(rows) - 2; r >= 0; r-- {
		row := rows[r]
		for k, col := range columns {
			if col >= len(row) {
				continue
			}
			if c := row[col]; (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') {
				label := stacks.labels[k]
				stacks.crates[label] = append(stacks.crates[label], c)
			}
		}
	}

	return stacks, nil
}

// Run applies every procedure to a copy of the initial stacks.
func Run(initial *Stacks, procedures []Procedure, enBloc bool) (*Stacks, error) {
	stacks := initial.Clone()
	for _, p := range procedures {
		if err := stacks.Apply(p, enBloc); err != nil {
			return nil, err
		}
	}
	return stacks, nil
}

// Solver answers day 5.
type Solver struct{}

func (Solver) Day() int     { return 5 }
func (Solver) Slug() string { return "supply-stacks" }

func (Solver) Solve(input string) (puzzle.Answers, error) {
	stacks, procedures, err := Parse(input)
	if err != nil {
		return puzzle.Answers{}, err
	}

	single, err := Run(stacks, procedures, false)
	if err != nil {
		return puzzle.Answers{}, fmt.Errorf("crate mover 9000: %w", err)
	}
	bloc, err := Run(stacks, procedures, true)
	if err != nil {
		return puzzle.Answers{}, fmt.Errorf("crate mover 9001: %w", err)
	}

	return puzzle.Answers{PartOne: single.Tops(), PartTwo: bloc.Tops()}, nil
}

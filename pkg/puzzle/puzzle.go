package puzzle

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrUnknownDay is returned when no solver is registered for a day.
var ErrUnknownDay = errors.New("unknown day")

// Answers holds the two answers of a puzzle day.
type Answers struct {
	PartOne string `json:"part_one"`
	PartTwo string `json:"part_two"`
}

// Solver solves a single puzzle day.
type Solver interface {
	Day() int
	Slug() string
	Solve(input string) (Answers, error)
}

// Ints builds Answers from two integer results.
func Ints(partOne, partTwo int) Answers {
	return Answers{PartOne: fmt.Sprint(partOne), PartTwo: fmt.Sprint(partTwo)}
}

// Registry maps days to their solvers.
type Registry struct {
	solvers map[int]Solver
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{solvers: make(map[int]Solver)}
}

// Register adds a solver. Registering a day twice is an error.
func (r *Registry) Register(s Solver) error {
	if s.Day() < 1 || s.Day() > 25 {
		return fmt.Errorf("register %s: day %d out of range", s.Slug(), s.Day())
	}
	if existing, ok := r.solvers[s.Day()]; ok {
		return fmt.Errorf("register %s: day %d already taken by %s", s.Slug(), s.Day(), existing.Slug())
	}
	r.solvers[s.Day()] = s
	return nil
}

// Get returns the solver for a day
func (r *Registry) Get(day int) (Solver, error) {
	s, ok := r.solvers[day]
	if !ok {
		return nil, fmt.Errorf("day %d: %w", day, ErrUnknownDay)
	}
	return s, nil
}

// All returns every registered solver ordered by day.
func (r *Registry) All() []Solver {
	all := make([]Solver, 0, len(r.solvers))
	for _, s := range r.solvers {
		all = append(all, s)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].Day() < all[j].Day()
	})
	return all
}

// Title turns a slug such as "rope-bridge" into a display title.
// Short joining words stay lower case unless they lead the title.
func Title(slug string) string {
	slug = strings.ReplaceAll(slug, "-", " ")
	slug = strings.ReplaceAll(slug, "_", " ")

	words := strings.Fields(slug)
	for i, word := range words {
		if i == 0 || len(word) > 2 {
			words[i] = cases.Title(language.English).String(strings.ToLower(word))
		} else {
			words[i] = strings.ToLower(word)
		}
	}

	return strings.Join(words, " ")
}

// Lines splits raw input into lines, dropping trailing blank lines and
// carriage returns.
func Lines(input string) []string {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	input = strings.TrimRight(input, "\n")
	if input == "" {
		return nil
	}
	return strings.Split(input, "\n")
}

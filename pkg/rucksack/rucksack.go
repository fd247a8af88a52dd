// Package rucksack finds misplaced items in elves' rucksacks.
package rucksack

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattsolo1/grove-advent/pkg/puzzle"
)

var (
	// ErrOddLength is returned for a rucksack that cannot be split in half.
	ErrOddLength = errors.New("odd number of items")

	// ErrBadItem is returned for an item that is not an ASCII letter.
	ErrBadItem = errors.New("item is not a letter")

	// ErrPartialGroup is returned when the rucksacks do not divide into groups.
	ErrPartialGroup = errors.New("incomplete group")
)

// GroupSize is the number of elves sharing a badge.
const GroupSize = 3

// Item is a single letter.
type Item byte

// Priority maps a-z to 1-26 and A-Z to 27-52.
func (i Item) Priority() int {
	if i >= 'a' && i <= 'z' {
		return int(i-'a') + 1
	}
	return int(i-'A') + 27
}

type itemSet map[Item]struct{}

func newItemSet(items string) itemSet {
	set := make(itemSet, len(items))
	for i := 0; i < len(items); i++ {
		set[Item(items[i])] = struct{}{}
	}
	return set
}

func (s itemSet) intersect(other itemSet) itemSet {
	out := make(itemSet)
	for item := range s {
		if _, ok := other[item]; ok {
			out[item] = struct{}{}
		}
	}
	return out
}

func (s itemSet) priority() int {
	sum := 0
	for item := range s {
		sum += item.Priority()
	}
	return sum
}

// Rucksack holds the two compartments of one line.
type Rucksack struct {
	First  string
	Second string
}

// Items returns the contents of both compartments.
func (r Rucksack) Items() string {
	return r.First + r.Second
}

// Common returns the items found in both compartments.
func (r Rucksack) Common() []Item {
	set := newItemSet(r.First).intersect(newItemSet(r.Second))
	return sortedItems(set)
}

func sortedItems(set itemSet) []Item {
	items := make([]Item, 0, len(set))
	for c := Item('A'); c <= 'z'; c++ {
		if _, ok := set[c]; ok {
			items = append(items, c)
		}
	}
	return items
}

// Parse reads one rucksack per line.
func Parse(input string) ([]Rucksack, error) {
	var rucksacks []Rucksack
	for i, line := range puzzle.Lines(input) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(line)%2 != 0 {
			return nil, fmt.Errorf("line %d: %w", i+1, ErrOddLength)
		}
		for j := 0; j < len(line); j++ {
			c := line[j]
			if !(c >= 'a' && c <= 'z') && !(c >= 'A' && c <= 'Z') {
				return nil, fmt.Errorf("line %d: %q: %w", i+1, c, ErrBadItem)
			}
		}
		half := len(line) / 2
		rucksacks = append(rucksacks, Rucksack{First: line[:half], Second: line[half:]})
	}
	return rucksacks, nil
}

// PartOne sums the priorities of items common to both compartments.
func PartOne(rucksacks []Rucksack) int {
	sum := 0
	for _, r := range rucksacks {
		sum += newItemSet(r.First).intersect(newItemSet(r.Second)).priority()
	}
	return sum
}

// Badges returns, per group of GroupSize rucksacks, the items all of them carry.
func Badges(rucksacks []Rucksack) ([][]Item, error) {
	if len(rucksacks)%GroupSize != 0 {
		return nil, fmt.Errorf("%d rucksacks: %w", len(rucksacks), ErrPartialGroup)
	}

	var badges [][]Item
	for start := 0; start < len(rucksacks); start += GroupSize {
		common := newItemSet(rucksacks[start].Items())
		for _, r := range rucksacks[start+1 : start+GroupSize] {
			common = common.intersect(newItemSet(r.Items()))
		}
		badges = append(badges, sortedItems(common))
	}
	return badges, nil
}

// PartTwo sums the priorities of every group badge.
func PartTwo(rucksacks []Rucksack) (int, error) {
	badges, err := Badges(rucksacks)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, group := range badges {
		for _, item := range group {
			sum += item.Priority()
		}
	}
	return sum, nil
}

// Solver answers day 3.
type Solver struct{}

func (Solver) Day() int     { return 3 }
func (Solver) Slug() string { return "rucksack-reorganization" }

func (Solver) Solve(input string) (puzzle.Answers, error) {
	rucksacks, err := Parse(input)
	if err != nil {
		return puzzle.Answers{}, err
	}
	partTwo, err := PartTwo(rucksacks)
	if err != nil {
		return puzzle.Answers{}, err
	}
	return puzzle.Ints(PartOne(rucksacks), partTwo), nil
}

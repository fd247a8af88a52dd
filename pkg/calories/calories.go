// Package calories counts the food carried by each elf.
package calories

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/mattsolo1/grove-advent/pkg/puzzle"
)

// Inventory is the list of calorie counts carried by one elf.
type Inventory []int

// Total sums the inventory.
func (inv Inventory) Total() int {
	total := 0
	for _, c := range inv {
		total += c
	}
	return total
}

// Parse reads blank-line separated groups of calorie counts.
func Parse(input string) ([]Inventory, error) {
	var inventories []Inventory
	var current Inventory

	for i, line := range puzzle.Lines(input) {
		line = strings.TrimSpace(line)
		if line == "" {
			if current != nil {
				inventories = append(inventories, current)
				current = nil
			}
			continue
		}
		calories, err := strconv.Atoi(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		current = append(current, calories)
	}
	if current != nil {
		inventories = append(inventories, current)
	}

	return inventories, nil
}

// PartOne returns the largest inventory total.
func PartOne(inventories []Inventory) int {
	return TopTotal(inventories, 1)
}

// TopTotal sums the n largest inventory totals.
func TopTotal(inventories []Inventory, n int) int {
	totals := make([]int, len(inventories))
	for i, inv := range inventories {
		totals[i] = inv.Total()
	}
	sort.Sort(sort.Reverse(sort.IntSlice(totals)))

	if n > len(totals) {
		n = len(totals)
	}
	sum := 0
	for _, t := range totals[:n] {
		sum += t
	}
	return sum
}

// Solver answers day 1.
type Solver struct {
	TopN int
}

func (s *Solver) Day() int     { return 1 }
func (s *Solver) Slug() string { return "calorie-counting" }

func (s *Solver) Solve(input string) (puzzle.Answers, error) {
	inventories, err := Parse(input)
	if err != nil {
		return puzzle.Answers{}, err
	}
	return puzzle.Ints(PartOne(inventories), TopTotal(inventories, s.TopN)), nil
}

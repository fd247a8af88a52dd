// Package tuning locates start markers in a device datastream.
package tuning

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattsolo1/grove-advent/pkg/puzzle"
)

// ErrNoMarker is returned when no window of distinct characters exists.
var ErrNoMarker = errors.New("no marker found")

// Default marker lengths.
const (
	PacketWindow  = 4
	MessageWindow = 14
)

// FindMarker returns the index just after the first run of n distinct
// consecutive characters.
func FindMarker(stream string, n int) (int, error) {
	if n < 1 {
		return 0, fmt.Errorf("window %d: must be positive", n)
	}

	var counts [256]int
	distinct := 0
	for i := 0; i < len(stream); i++ {
		if counts[stream[i]] == 0 {
			distinct++
		}
		counts[stream[i]]++

		if i >= n {
			out := stream[i-n]
			counts[out]--
			if counts[out] == 0 {
				distinct--
			}
		}
		if distinct == n {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("window %d: %w", n, ErrNoMarker)
}

// Solver answers day 6.
type Solver struct {
	PacketWindow  int
	MessageWindow int
}

func (s *Solver) Day() int     { return 6 }
func (s *Solver) Slug() string { return "tuning-trouble" }

func (s *Solver) Solve(input string) (puzzle.Answers, error) {
	stream := strings.TrimSpace(input)

	packet, err := FindMarker(stream, s.PacketWindow)
	if err != nil {
		return puzzle.Answers{}, fmt.Errorf("packet marker: %w", err)
	}
	message, err := FindMarker(stream, s.MessageWindow)
	if err != nil {
		return puzzle.Answers{}, fmt.Errorf("message marker: %w", err)
	}
	return puzzle.Ints(packet, message), nil
}

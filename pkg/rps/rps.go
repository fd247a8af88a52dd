// Package rps scores a rock paper scissors strategy guide.
package rps

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattsolo1/grove-advent/pkg/puzzle"
)

// ErrUnknownCode is returned for a move or outcome code outside A-C / X-Z.
var ErrUnknownCode = errors.New("unknown code")

// Move is a hand shape. Its value is the shape score.
type Move int

const (
	Rock     Move = 1
	Paper    Move = 2
	Scissors Move = 3
)

// Beats returns the move this one defeats.
func (m Move) Beats() Move {
	return Move((int(m)+1)%3 + 1)
}

// LosesTo returns the move that defeats this one.
func (m Move) LosesTo() Move {
	return Move(int(m)%3 + 1)
}

// Outcome is a round result. Its value is the outcome score.
type Outcome int

const (
	Loss Outcome = 0
	Draw Outcome = 3
	Win  Outcome = 6
)

func parseMove(code string) (Move, error) {
	switch code {
	case "A", "X":
		return Rock, nil
	case "B", "Y":
		return Paper, nil
	case "C", "Z":
		return Scissors, nil
	}
	return 0, fmt.Errorf("move %q: %w", code, ErrUnknownCode)
}

func parseOpponent(code string) (Move, error) {
	switch code {
	case "A", "B", "C":
		return parseMove(code)
	}
	return 0, fmt.Errorf("opponent move %q: %w", code, ErrUnknownCode)
}

func parseOutcome(code string) (Outcome, error) {
	switch code {
	case "X":
		return Loss, nil
	case "Y":
		return Draw, nil
	case "Z":
		return Win, nil
	}
	return 0, fmt.Errorf("outcome %q: %w", code, ErrUnknownCode)
}

// Round is one line of the guide.
type Round struct {
	Opponent Move
	Move     Move
}

// Outcome is the result of the round for the player.
func (r Round) Outcome() Outcome {
	switch r.Move {
	case r.Opponent:
		return Draw
	case r.Opponent.LosesTo():
		return Win
	}
	return Loss
}

// Score is the shape score plus the outcome score.
func (r Round) Score() int {
	return int(r.Move) + int(r.Outcome())
}

// Parse reads the guide. When secondIsOutcome is set the second column names
// the desired outcome and the player's move is chosen to produce it.
func Parse(input string, secondIsOutcome bool) ([]Round, error) {
	var rounds []Round
	for i, line := range puzzle.Lines(input) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: expected 2 codes, got %d", i+1, len(fields))
		}

		opponent, err := parseOpponent(fields[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}

		round := Round{Opponent: opponent}
		if secondIsOutcome {
			outcome, err := parseOutcome(fields[1])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			switch outcome {
			case Draw:
				round.Move = opponent
			case Loss:
				round.Move = opponent.Beats()
			case Win:
				round.Move = opponent.LosesTo()
			}
		} else {
			move, err := parseMove(fields[1])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			round.Move = move
		}
		rounds = append(rounds, round)
	}
	return rounds, nil
}

// TotalScore sums the score of every round.
func TotalScore(rounds []Round) int {
	total := 0
	for _, r := range rounds {
		total += r.Score()
	}
	return total
}

// Solver answers day 2.
type Solver struct{}

func (Solver) Day() int     { return 2 }
func (Solver) Slug() string { return "rock-paper-scissors" }

func (Solver) Solve(input string) (puzzle.Answers, error) {
	asMoves, err := Parse(input, false)
	if err != nil {
		return puzzle.Answers{}, err
	}
	asOutcomes, err := Parse(input, true)
	if err != nil {
		return puzzle.Answers{}, err
	}
	return puzzle.Ints(TotalScore(asMoves), TotalScore(asOutcomes)), nil
}

package nospace

import (
	"github.com/sirupsen/logrus"

	"github.com/mattsolo1/grove-advent/pkg/puzzle"
)

// Solver answers day 7.
type Solver struct {
	Capacity     int
	RequiredFree int
	SmallLimit   int
	Logger       *logrus.Entry
}

func (s *Solver) Day() int     { return 7 }
func (s *Solver) Slug() string { return "no-space-left-on-device" }

func (s *Solver) Solve(input string) (puzzle.Answers, error) {
	fs, err := Parse(input, WithCapacity(s.Capacity), WithLogger(s.Logger))
	if err != nil {
		return puzzle.Answers{}, err
	}

	partTwo, err := PartTwo(fs, s.RequiredFree)
	if err != nil {
		return puzzle.Answers{}, err
	}

	return puzzle.Ints(PartOne(fs, s.SmallLimit), partTwo), nil
}

// PartOne sums the sizes of directories strictly smaller than limit.
func PartOne(fs *FileSystem, limit int) int {
	return fs.SumSizes(func(size int) bool {
		return size < limit
	})
}

// PartTwo finds the smallest directory to delete to reach required free space.
func PartTwo(fs *FileSystem, required int) (int, error) {
	return fs.SmallestToFree(required)
}

// Package runner ties the solver registry to input loading and the result
// history.
package runner

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mattsolo1/grove-advent/pkg/calories"
	"github.com/mattsolo1/grove-advent/pkg/cleanup"
	"github.com/mattsolo1/grove-advent/pkg/crates"
	"github.com/mattsolo1/grove-advent/pkg/frontmatter"
	"github.com/mattsolo1/grove-advent/pkg/history"
	"github.com/mattsolo1/grove-advent/pkg/input"
	"github.com/mattsolo1/grove-advent/pkg/models"
	"github.com/mattsolo1/grove-advent/pkg/nospace"
	"github.com/mattsolo1/grove-advent/pkg/puzzle"
	"github.com/mattsolo1/grove-advent/pkg/rope"
	"github.com/mattsolo1/grove-advent/pkg/rps"
	"github.com/mattsolo1/grove-advent/pkg/rucksack"
	"github.com/mattsolo1/grove-advent/pkg/treetop"
	"github.com/mattsolo1/grove-advent/pkg/tuning"
)

// DefaultRegistry registers every day configured from settings.
func DefaultRegistry(settings models.Settings, logger *logrus.Entry) (*puzzle.Registry, error) {
	if logger == nil {
		logger = discardLogger()
	}
	solvers := []puzzle.Solver{
		&calories.Solver{TopN: settings.Calories.TopN},
		rps.Solver{},
		rucksack.Solver{},
		cleanup.Solver{},
		crates.Solver{},
		&tuning.Solver{
			PacketWindow:  settings.Tuning.PacketWindow,
			MessageWindow: settings.Tuning.MessageWindow,
		},
		&nospace.Solver{
			Capacity:     settings.NoSpace.Capacity,
			RequiredFree: settings.NoSpace.RequiredFree,
			SmallLimit:   settings.NoSpace.SmallLimit,
			Logger:       logger.WithField("day", 7),
		},
		treetop.Solver{},
		&rope.Solver{Knots: settings.Rope.Knots},
	}

	reg := puzzle.NewRegistry()
	for _, s := range solvers {
		if err := reg.Register(s); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// Verification compares a day's answers with the answers pinned in its input.
type Verification struct {
	Result   *models.Result
	Expected puzzle.Answers
	Checked  bool
}

// OK reports whether every pinned answer matched.
func (v *Verification) OK() bool {
	if !v.Checked {
		return true
	}
	return (v.Expected.PartOne == "" || v.Expected.PartOne == v.Result.PartOne) &&
		(v.Expected.PartTwo == "" || v.Expected.PartTwo == v.Result.PartTwo)
}

// Runner solves days.
type Runner struct {
	Registry *puzzle.Registry
	Loader   *input.Loader
	Settings models.Settings

	store  *history.Store
	logger *logrus.Entry
}

// New creates a runner. store may be nil, in which case nothing is recorded.
func New(settings models.Settings, loader *input.Loader, store *history.Store, logger *logrus.Entry) (*Runner, error) {
	if logger == nil {
		logger = discardLogger()
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	reg, err := DefaultRegistry(settings, logger)
	if err != nil {
		return nil, err
	}

	return &Runner{
		Registry: reg,
		Loader:   loader,
		Settings: settings,
		store:    store,
		logger:   logger.WithField("component", "runner"),
	}, nil
}

// History returns the attached store, or nil.
func (r *Runner) History() *history.Store {
	return r.store
}

// Logger returns the runner's log entry.
func (r *Runner) Logger() *logrus.Entry {
	return r.logger
}

// Solve loads the day's input and solves it.
func (r *Runner) Solve(ctx context.Context, day int) (*models.Result, error) {
	in, err := r.Loader.Load(day)
	if err != nil {
		return nil, err
	}
	return r.SolveInput(ctx, day, in)
}

// SolveInput solves an already loaded input.
func (r *Runner) SolveInput(ctx context.Context, day int, in *input.Input) (*models.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	solver, err := r.Registry.Get(day)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	answers, err := solver.Solve(in.Body)
	if err != nil {
		return nil, fmt.Errorf("day %d (%s): %w", day, in.Name, err)
	}

	result := &models.Result{
		Day:      day,
		Title:    puzzle.Title(solver.Slug()),
		Input:    in.Name,
		PartOne:  answers.PartOne,
		PartTwo:  answers.PartTwo,
		Duration: time.Since(start),
		SolvedAt: time.Now(),
	}

	r.logger.WithFields(logrus.Fields{
		"day":      day,
		"input":    in.Name,
		"duration": result.Duration,
	}).Debug("solved")

	if r.store != nil && r.Settings.Record {
		if err := r.store.Record(ctx, result); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// Verify solves a day and compares the answers with the input header.
func (r *Runner) Verify(ctx context.Context, day int) (*Verification, error) {
	in, err := r.Loader.Load(day)
	if err != nil {
		return nil, err
	}

	result, err := r.SolveInput(ctx, day, in)
	if err != nil {
		return nil, err
	}

	v := &Verification{Result: result}
	if in.Header.HasExpectations() {
		v.Checked = true
		v.Expected = puzzle.Answers{PartOne: in.Header.PartOne, PartTwo: in.Header.PartTwo}
	}
	if !v.OK() {
		r.logger.WithFields(logrus.Fields{
			"day":      day,
			"expected": v.Expected,
			"got":      puzzle.Answers{PartOne: result.PartOne, PartTwo: result.PartTwo},
		}).Warn("answers differ from pinned values")
	}
	return v, nil
}

// Pin solves a day and writes its input, headed by the answers, into the
// loader's override directory so later runs can be verified against it.
func (r *Runner) Pin(ctx context.Context, day int) (string, *models.Result, error) {
	in, err := r.Loader.Load(day)
	if err != nil {
		return "", nil, err
	}

	result, err := r.SolveInput(ctx, day, in)
	if err != nil {
		return "", nil, err
	}

	h := &frontmatter.Header{
		Day:     day,
		Title:   result.Title,
		PartOne: result.PartOne,
		PartTwo: result.PartTwo,
	}
	path, err := r.Loader.Save(day, h, in.Body)
	if err != nil {
		return "", nil, err
	}
	return path, result, nil
}

// Days returns the registered days in order.
func (r *Runner) Days() []int {
	var days []int
	for _, s := range r.Registry.All() {
		days = append(days, s.Day())
	}
	return days
}

func discardLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}

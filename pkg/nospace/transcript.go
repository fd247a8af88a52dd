package nospace

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/mattsolo1/grove-advent/pkg/puzzle"
)

var (
	// ErrUnknownLine is returned for a line matching none of the transcript shapes.
	ErrUnknownLine = errors.New("unknown terminal output")

	// ErrUnknownDirectory is returned by cd into a directory that was never listed.
	ErrUnknownDirectory = errors.New("no such directory")

	// ErrAboveRoot is returned by cd .. from the root.
	ErrAboveRoot = errors.New("cannot leave the root directory")

	// ErrNoWorkingDirectory is returned when a line needs a current directory
	// before any cd has set one.
	ErrNoWorkingDirectory = errors.New("no working directory")
)

var (
	cdPattern   = regexp.MustCompile(`^(?:\$ )?cd ([a-zA-Z./]+)$`)
	lsPattern   = regexp.MustCompile(`^(?:\$ )?ls$`)
	dirPattern  = regexp.MustCompile(`^dir ([a-zA-Z]+)$`)
	filePattern = regexp.MustCompile(`^(\d+) ([a-zA-Z.]+)$`)
)

// LineError reports the transcript line that stopped a build.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

type buildOptions struct {
	capacity int
	logger   *logrus.Entry
}

// Option configures Build.
type Option func(*buildOptions)

// WithCapacity sets the disk capacity of the built tree.
func WithCapacity(capacity int) Option {
	return func(o *buildOptions) {
		o.capacity = capacity
	}
}

// WithLogger logs directory changes at debug level.
func WithLogger(logger *logrus.Entry) Option {
	return func(o *buildOptions) {
		o.logger = logger
	}
}

// Parse builds a tree from a raw transcript.
func Parse(transcript string, opts ...Option) (*FileSystem, error) {
	return Build(puzzle.Lines(transcript), opts...)
}

// Build replays transcript lines in order and returns the reconstructed tree.
// The first bad line aborts the build and no tree is returned.
func Build(lines []string, opts ...Option) (*FileSystem, error) {
	o := &buildOptions{capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		o.logger = logrus.NewEntry(discard)
	}

	fs := newFileSystem(o.capacity)
	cwd := None

	for i, line := range lines {
		next, err := fs.apply(line, cwd)
		if err != nil {
			return nil, &LineError{Line: i + 1, Text: line, Err: err}
		}
		if next != cwd {
			o.logger.WithFields(logrus.Fields{
				"line": i + 1,
				"dir":  fs.Path(next),
			}).Debug("changed directory")
		}
		cwd = next
	}

	return fs, nil
}

// apply interprets one line against the working directory cwd and returns the
// working directory that follows it.
func (fs *FileSystem) apply(line string, cwd DirID) (DirID, error) {
	if strings.TrimSpace(line) == "" || lsPattern.MatchString(line) {
		return cwd, nil
	}

	if m := cdPattern.FindStringSubmatch(line); m != nil {
		return fs.changeDirectory(cwd, m[1])
	}

	if m := dirPattern.FindStringSubmatch(line); m != nil {
		if cwd == None {
			return cwd, ErrNoWorkingDirectory
		}
		fs.addDir(cwd, m[1])
		return cwd, nil
	}

	if m := filePattern.FindStringSubmatch(line); m != nil {
		if cwd == None {
			return cwd, ErrNoWorkingDirectory
		}
		size, err := strconv.Atoi(m[1])
		if err != nil {
			return cwd, fmt.Errorf("file size: %w", err)
		}
		fs.addFile(cwd, m[2], size)
		return cwd, nil
	}

	return cwd, ErrUnknownLine
}

func (fs *FileSystem) changeDirectory(cwd DirID, name string) (DirID, error) {
	if name == "/" {
		return Root, nil
	}
	if cwd == None {
		return cwd, ErrNoWorkingDirectory
	}
	if name == ".." {
		parent := fs.dirs[cwd].Parent
		if parent == None {
			return cwd, ErrAboveRoot
		}
		return parent, nil
	}

	id, ok := fs.child(cwd, name)
	if !ok {
		return cwd, fmt.Errorf("cd %s in %s: %w", name, fs.Path(cwd), ErrUnknownDirectory)
	}
	return id, nil
}

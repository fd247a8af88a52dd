// Package input loads puzzle inputs, either bundled into the binary or from
// an override directory on disk.
package input

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/mattsolo1/grove-advent/pkg/frontmatter"
)

//go:embed data/*.txt
var bundled embed.FS

// ErrNotFound is returned when no input exists for a day or path.
var ErrNotFound = errors.New("input not found")

// Input is a loaded puzzle input with its header stripped.
type Input struct {
	Name   string
	Header *frontmatter.Header
	Body   string
}

// FileName is the conventional file name of a day's input.
func FileName(day int) string {
	return fmt.Sprintf("day%02d.txt", day)
}

// Loader resolves inputs. Files in Dir take precedence over bundled ones.
type Loader struct {
	Dir     string
	bundled fs.FS
}

// NewLoader creates a loader with an optional override directory
func NewLoader(dir string) *Loader {
	return &Loader{Dir: dir, bundled: bundled}
}

// Load returns the input for a day.
func (l *Loader) Load(day int) (*Input, error) {
	if l.Dir != "" {
		in, err := l.LoadFile(filepath.Join(l.Dir, FileName(day)))
		if err == nil || !errors.Is(err, ErrNotFound) {
			return in, err
		}
	}
	return l.Bundled(day)
}

// Bundled returns the input shipped with the binary.
func (l *Loader) Bundled(day int) (*Input, error) {
	name := path.Join("data", FileName(day))
	data, err := fs.ReadFile(l.bundled, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("day %d: %w", day, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read bundled %s: %w", name, err)
	}
	return Parse("bundled:"+FileName(day), string(data))
}

// LoadFile reads an explicit input file.
func (l *Loader) LoadFile(p string) (*Input, error) {
	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", p, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", p, err)
	}
	return Parse(p, string(data))
}

// Save writes a day's input with its header into Dir and returns the path.
func (l *Loader) Save(day int, h *frontmatter.Header, body string) (string, error) {
	if l.Dir == "" {
		return "", fmt.Errorf("no inputs directory configured")
	}
	if err := os.MkdirAll(l.Dir, 0755); err != nil {
		return "", fmt.Errorf("create inputs dir: %w", err)
	}

	p := filepath.Join(l.Dir, FileName(day))
	if err := os.WriteFile(p, []byte(frontmatter.BuildContent(h, body)), 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", p, err)
	}
	return p, nil
}

// Parse splits raw file content into header and body.
func Parse(name, content string) (*Input, error) {
	h, body, err := frontmatter.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &Input{Name: name, Header: h, Body: body}, nil
}

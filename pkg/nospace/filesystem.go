// Package nospace reconstructs a directory tree from a terminal transcript and
// answers aggregate size queries over it.
package nospace

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// DirID addresses a directory inside a FileSystem.
type DirID int

// FileID addresses a file inside a FileSystem.
type FileID int

const (
	// Root is the ID of the "/" directory.
	Root DirID = 0

	// None marks a missing directory: the root's parent, or an unset cursor.
	None DirID = -1
)

// DefaultCapacity is the disk size assumed when no capacity is configured.
const DefaultCapacity = 70_000_000

// ErrNoMatch is returned when a size query matches no directory.
var ErrNoMatch = errors.New("no directory matches")

// File is a leaf of the tree. Files never change once created.
type File struct {
	Name   string
	Size   int
	Parent DirID
}

// Directory is an inner node of the tree. Its size is not stored.
type Directory struct {
	Name   string
	Parent DirID
	Files  []FileID
	Dirs   []DirID
}

// IsRoot reports whether the directory has no parent.
func (d Directory) IsRoot() bool {
	return d.Parent == None
}

// FileSystem is an arena of directories and files. The slices double as the
// registries: directories and files appear in creation order, root first.
type FileSystem struct {
	capacity int
	dirs     []Directory
	files    []File
}

func newFileSystem(capacity int) *FileSystem {
	return &FileSystem{
		capacity: capacity,
		dirs:     []Directory{{Name: "/", Parent: None}},
	}
}

func (fs *FileSystem) addDir(parent DirID, name string) DirID {
	if id, ok := fs.child(parent, name); ok {
		return id
	}
	id := DirID(len(fs.dirs))
	fs.dirs = append(fs.dirs, Directory{Name: name, Parent: parent})
	fs.dirs[parent].Dirs = append(fs.dirs[parent].Dirs, id)
	return id
}

func (fs *FileSystem) addFile(parent DirID, name string, size int) FileID {
	id := FileID(len(fs.files))
	fs.files = append(fs.files, File{Name: name, Size: size, Parent: parent})
	fs.dirs[parent].Files = append(fs.dirs[parent].Files, id)
	return id
}

func (fs *FileSystem) child(parent DirID, name string) (DirID, bool) {
	for _, id := range fs.dirs[parent].Dirs {
		if fs.dirs[id].Name == name {
			return id, true
		}
	}
	return None, false
}

// Directory returns the directory with the given ID.
func (fs *FileSystem) Directory(id DirID) Directory {
	return fs.dirs[id]
}

// File returns the file with the given ID.
func (fs *FileSystem) File(id FileID) File {
	return fs.files[id]
}

// Directories returns the IDs of every directory in registry order.
func (fs *FileSystem) Directories() []DirID {
	ids := make([]DirID, len(fs.dirs))
	for i := range fs.dirs {
		ids[i] = DirID(i)
	}
	return ids
}

// Files returns every file in registry order.
func (fs *FileSystem) Files() []File {
	files := make([]File, len(fs.files))
	copy(files, fs.files)
	return files
}

// Lookup resolves an absolute path such as "/a/e".
func (fs *FileSystem) Lookup(path string) (DirID, bool) {
	id := Root
	for _, name := range strings.Split(strings.Trim(path, "/"), "/") {
		if name == "" {
			continue
		}
		next, ok := fs.child(id, name)
		if !ok {
			return None, false
		}
		id = next
	}
	return id, true
}

// Path returns the absolute path of a directory.
func (fs *FileSystem) Path(id DirID) string {
	if id == Root {
		return "/"
	}
	var parts []string
	for ; id != Root; id = fs.dirs[id].Parent {
		parts = append(parts, fs.dirs[id].Name)
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return "/" + strings.Join(parts, "/")
}

// TotalSize sums the sizes of every file below a directory. It is recomputed
// on every call.
func (fs *FileSystem) TotalSize(id DirID) int {
	dir := fs.dirs[id]

	size := 0
	for _, f := range dir.Files {
		size += fs.files[f].Size
	}
	for _, d := range dir.Dirs {
		size += fs.TotalSize(d)
	}
	return size
}

// SumSizes adds up the total size of every directory whose size satisfies
// match.
func (fs *FileSystem) SumSizes(match func(size int) bool) int {
	sum := 0
	for _, id := range fs.Directories() {
		if size := fs.TotalSize(id); match(size) {
			sum += size
		}
	}
	return sum
}

// SmallestSize returns the smallest directory size satisfying match.
func (fs *FileSystem) SmallestSize(match func(size int) bool) (int, error) {
	smallest, found := 0, false
	for _, id := range fs.Directories() {
		size := fs.TotalSize(id)
		if !match(size) {
			continue
		}
		if !found || size < smallest {
			smallest, found = size, true
		}
	}
	if !found {
		return 0, ErrNoMatch
	}
	return smallest, nil
}

// Capacity is the total disk size.
func (fs *FileSystem) Capacity() int {
	return fs.capacity
}

// UsedSpace is the total size of the root directory.
func (fs *FileSystem) UsedSpace() int {
	return fs.TotalSize(Root)
}

// FreeSpace is the capacity left over after UsedSpace.
func (fs *FileSystem) FreeSpace() int {
	return fs.capacity - fs.UsedSpace()
}

// SmallestToFree returns the size of the smallest directory whose deletion
// leaves at least required bytes free.
func (fs *FileSystem) SmallestToFree(required int) (int, error) {
	need := required - fs.FreeSpace()
	size, err := fs.SmallestSize(func(size int) bool {
		return size >= need
	})
	if err != nil {
		return 0, fmt.Errorf("free %d bytes: %w", need, err)
	}
	return size, nil
}

// Render writes the tree in listing form, directories before files:
//
//	- / (dir)
//	  - a (dir)
//	    - f (file, size=29116)
func (fs *FileSystem) Render(w io.Writer) error {
	return fs.render(w, Root, 0)
}

func (fs *FileSystem) render(w io.Writer, id DirID, depth int) error {
	dir := fs.dirs[id]
	indent := strings.Repeat("  ", depth)

	if _, err := fmt.Fprintf(w, "%s- %s (dir)\n", indent, dir.Name); err != nil {
		return err
	}
	for _, d := range dir.Dirs {
		if err := fs.render(w, d, depth+1); err != nil {
			return err
		}
	}
	for _, f := range dir.Files {
		file := fs.files[f]
		if _, err := fmt.Fprintf(w, "%s  - %s (file, size=%d)\n", indent, file.Name, file.Size); err != nil {
			return err
		}
	}
	return nil
}

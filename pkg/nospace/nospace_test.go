package nospace

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `$ cd /
$ ls
dir a
14848514 b.txt
8504156 c.dat
dir d
$ cd a
$ ls
dir e
29116 f
2557 g
62596 h.lst
$ cd e
$ ls
584 i
$ cd ..
$ cd ..
$ cd d
$ ls
4060174 j
8033020 d.log
5626152 d.ext
7214296 k
`

func TestBuildExample(t *testing.T) {
	fs, err := Parse(example)
	require.NoError(t, err)

	sizes := map[string]int{
		"/":    48381165,
		"/a":   94853,
		"/a/e": 584,
		"/d":   24933642,
	}
	for path, want := range sizes {
		id, ok := fs.Lookup(path)
		require.True(t, ok, path)
		assert.Equal(t, want, fs.TotalSize(id), path)
		assert.Equal(t, path, fs.Path(id))
	}

	assert.Len(t, fs.Directories(), 4)
	assert.Len(t, fs.Files(), 10)
	assert.Equal(t, 95437, PartOne(fs, 100_000))

	partTwo, err := PartTwo(fs, 30_000_000)
	require.NoError(t, err)
	assert.Equal(t, 24933642, partTwo)
}

func TestRegistryOrder(t *testing.T) {
	fs, err := Parse(example)
	require.NoError(t, err)

	var names []string
	for _, id := range fs.Directories() {
		names = append(names, fs.Directory(id).Name)
	}
	assert.Equal(t, []string{"/", "a", "d", "e"}, names)
	assert.True(t, fs.Directory(Root).IsRoot())
	assert.False(t, fs.Directory(1).IsRoot())
}

func TestTotalSizeEqualsSumOfFiles(t *testing.T) {
	transcripts := []string{
		example,
		"cd /\nls\ndir a\n14848514 b.txt\ncd a\nls\n29116 f\n",
		"$ cd /\n$ ls\n1 x\n2 y\ndir q\n$ cd q\n$ ls\ndir r\n3 z\n$ cd r\n$ ls\n4 w\n",
	}

	for i, transcript := range transcripts {
		fs, err := Parse(transcript)
		require.NoError(t, err, "transcript %d", i)

		sum := 0
		for _, f := range fs.Files() {
			sum += f.Size
		}
		assert.Equal(t, sum, fs.TotalSize(Root), "transcript %d", i)
		assert.Equal(t, sum, fs.UsedSpace(), "transcript %d", i)
	}
}

func TestSmallTranscript(t *testing.T) {
	fs, err := Build([]string{"cd /", "ls", "dir a", "14848514 b.txt", "cd a", "ls", "29116 f"})
	require.NoError(t, err)
	assert.Equal(t, 14848514+29116, fs.TotalSize(Root))
}

func TestBuildIsDeterministic(t *testing.T) {
	first, err := Parse(example)
	require.NoError(t, err)
	second, err := Parse(example)
	require.NoError(t, err)

	require.Equal(t, len(first.Directories()), len(second.Directories()))
	for _, id := range first.Directories() {
		assert.Equal(t, first.TotalSize(id), second.TotalSize(id))
	}
}

func TestChangeDirectoryRoundTrip(t *testing.T) {
	fs, err := Parse(example)
	require.NoError(t, err)

	for _, start := range fs.Directories() {
		if start == Root {
			continue
		}
		name := fs.Directory(start).Name

		up, err := fs.apply("$ cd ..", start)
		require.NoError(t, err)
		back, err := fs.apply("$ cd "+name, up)
		require.NoError(t, err)
		assert.Equal(t, start, back, fs.Path(start))
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name    string
		lines   []string
		wantErr error
		line    int
	}{
		{
			name:    "file before any cd",
			lines:   []string{"$ ls", "100 a.txt"},
			wantErr: ErrNoWorkingDirectory,
			line:    2,
		},
		{
			name:    "dir before any cd",
			lines:   []string{"dir a"},
			wantErr: ErrNoWorkingDirectory,
			line:    1,
		},
		{
			name:    "cd into unlisted directory",
			lines:   []string{"$ cd /", "$ cd a"},
			wantErr: ErrUnknownDirectory,
			line:    2,
		},
		{
			name:    "cd above root",
			lines:   []string{"$ cd /", "$ cd .."},
			wantErr: ErrAboveRoot,
			line:    2,
		},
		{
			name:    "relative cd before any cd",
			lines:   []string{"$ cd a"},
			wantErr: ErrNoWorkingDirectory,
			line:    1,
		},
		{
			name:    "unknown line",
			lines:   []string{"$ cd /", "$ rm -rf a"},
			wantErr: ErrUnknownLine,
			line:    2,
		},
		{
			name:    "directory name with digits",
			lines:   []string{"$ cd /", "dir a1"},
			wantErr: ErrUnknownLine,
			line:    2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs, err := Build(tt.lines)
			assert.Nil(t, fs)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

			var lineErr *LineError
			require.True(t, errors.As(err, &lineErr))
			assert.Equal(t, tt.line, lineErr.Line)
			assert.Equal(t, tt.lines[tt.line-1], lineErr.Text)
		})
	}
}

func TestOversizedFileIsParseError(t *testing.T) {
	_, err := Build([]string{"$ cd /", "99999999999999999999999 big"})
	require.Error(t, err)
	var lineErr *LineError
	require.True(t, errors.As(err, &lineErr))
	assert.Equal(t, 2, lineErr.Line)
}

func TestBlankLinesAndRepeatedDirs(t *testing.T) {
	fs, err := Build([]string{"", "$ cd /", "   ", "dir a", "dir a", "$ ls", "dir a"})
	require.NoError(t, err)
	assert.Len(t, fs.Directories(), 2)
	assert.Len(t, fs.Directory(Root).Dirs, 1)
}

func TestSumSizes(t *testing.T) {
	fs, err := Parse(strings.Join([]string{
		"$ cd /", "$ ls", "dir a", "dir b",
		"$ cd a", "$ ls", "584 x",
		"$ cd ..", "$ cd b", "$ ls", "24933642 y",
	}, "\n"))
	require.NoError(t, err)

	got := fs.SumSizes(func(size int) bool { return size < 100_000 })
	assert.Equal(t, 584, got)
}

func TestSmallestSize(t *testing.T) {
	fs, err := Parse(example, WithCapacity(70_000_000))
	require.NoError(t, err)

	assert.Equal(t, 70_000_000, fs.Capacity())
	assert.Equal(t, 48381165, fs.UsedSpace())
	assert.Equal(t, 70_000_000-48381165, fs.FreeSpace())

	need := 30_000_000 - (70_000_000 - 48381165)
	size, err := fs.SmallestSize(func(size int) bool { return size >= need })
	require.NoError(t, err)
	assert.Equal(t, 24933642, size)

	_, err = fs.SmallestSize(func(size int) bool { return size > 100_000_000 })
	assert.True(t, errors.Is(err, ErrNoMatch))

	_, err = fs.SmallestToFree(200_000_000)
	assert.True(t, errors.Is(err, ErrNoMatch))
}

func TestRender(t *testing.T) {
	fs, err := Parse(example)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, fs.Render(&buf))

	want := `- / (dir)
  - a (dir)
    - e (dir)
      - i (file, size=584)
    - f (file, size=29116)
    - g (file, size=2557)
    - h.lst (file, size=62596)
  - d (dir)
    - j (file, size=4060174)
    - d.log (file, size=8033020)
    - d.ext (file, size=5626152)
    - k (file, size=7214296)
  - b.txt (file, size=14848514)
  - c.dat (file, size=8504156)
`
	assert.Equal(t, want, buf.String())
}

func TestSolver(t *testing.T) {
	s := &Solver{Capacity: 70_000_000, RequiredFree: 30_000_000, SmallLimit: 100_000}
	answers, err := s.Solve(example)
	require.NoError(t, err)
	assert.Equal(t, "95437", answers.PartOne)
	assert.Equal(t, "24933642", answers.PartTwo)

	_, err = s.Solve("100 a.txt")
	assert.True(t, errors.Is(err, ErrNoWorkingDirectory))
}

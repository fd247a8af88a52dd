package puzzle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSolver struct {
	day  int
	slug string
}

func (s stubSolver) Day() int     { return s.day }
func (s stubSolver) Slug() string { return s.slug }
func (s stubSolver) Solve(string) (Answers, error) {
	return Ints(s.day, s.day*2), nil
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(stubSolver{day: 7, slug: "no-space-left-on-device"}))
	require.NoError(t, reg.Register(stubSolver{day: 1, slug: "calorie-counting"}))

	err := reg.Register(stubSolver{day: 7, slug: "duplicate"})
	assert.Error(t, err)

	err = reg.Register(stubSolver{day: 0, slug: "zero"})
	assert.Error(t, err)

	s, err := reg.Get(7)
	require.NoError(t, err)
	assert.Equal(t, "no-space-left-on-device", s.Slug())

	_, err = reg.Get(3)
	assert.True(t, errors.Is(err, ErrUnknownDay))

	all := reg.All()
	require.Len(t, all, 2)
	assert.Equal(t, 1, all[0].Day())
	assert.Equal(t, 7, all[1].Day())
}

func TestTitle(t *testing.T) {
	tests := []struct {
		slug string
		want string
	}{
		{"calorie-counting", "Calorie Counting"},
		{"no-space-left-on-device", "No Space Left on Device"},
		{"treetop_tree_house", "Treetop Tree House"},
		{"ROPE-BRIDGE", "Rope Bridge"},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			assert.Equal(t, tt.want, Title(tt.slug))
		})
	}
}

func TestLines(t *testing.T) {
	assert.Nil(t, Lines(""))
	assert.Nil(t, Lines("\n\n"))
	assert.Equal(t, []string{"a", "", "b"}, Lines("a\r\n\r\nb\n\n"))
}

func TestInts(t *testing.T) {
	assert.Equal(t, Answers{PartOne: "95437", PartTwo: "24933642"}, Ints(95437, 24933642))
}

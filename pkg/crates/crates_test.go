package crates

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `    [D]    
[N] [C]    
[Z] [M] [P]
 1   2   3 

move 1 from 2 to 1
move 3 from 1 to 3
move 2 from 2 to 1
move 1 from 1 to 2
`

func TestParse(t *testing.T) {
	stacks, procedures, err := Parse(example)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3}, stacks.Labels())
	assert.Equal(t, []byte("ZN"), stacks.Stack(1))
	assert.Equal(t, []byte("MCD"), stacks.Stack(2))
	assert.Equal(t, []byte("P"), stacks.Stack(3))
	assert.Equal(t, "NDP", stacks.Tops())

	want := []Procedure{
		{N: 1, From: 2, To: 1},
		{N: 3, From: 1, To: 3},
		{N: 2, From: 2, To: 1},
		{N: 1, From: 1, To: 2},
	}
	if diff := cmp.Diff(want, procedures); diff != "" {
		t.Errorf("procedures mismatch (-want +got):\n%s", diff)
	}
}

func TestRun(t *testing.T) {
	stacks, procedures, err := Parse(example)
	require.NoError(t, err)

	single, err := Run(stacks, procedures, false)
	require.NoError(t, err)
	assert.Equal(t, "CMZ", single.Tops())

	bloc, err := Run(stacks, procedures, true)
	require.NoError(t, err)
	assert.Equal(t, "MCD", bloc.Tops())

	// the parsed state is left untouched
	assert.Equal(t, "NDP", stacks.Tops())
}

func TestEmptyStackTop(t *testing.T) {
	stacks, _, err := Parse(example)
	require.NoError(t, err)

	require.NoError(t, stacks.Apply(Procedure{N: 1, From: 3, To: 1}, false))
	assert.Equal(t, "PD ", stacks.Tops())
}

func TestSameStackMove(t *testing.T) {
	stacks, _, err := Parse(example)
	require.NoError(t, err)

	require.NoError(t, stacks.Apply(Procedure{N: 2, From: 2, To: 2}, false))
	assert.Equal(t, []byte("MDC"), stacks.Stack(2))
}

func TestApplyErrors(t *testing.T) {
	stacks, _, err := Parse(example)
	require.NoError(t, err)

	err = stacks.Apply(Procedure{N: 1, From: 4, To: 1}, false)
	assert.True(t, errors.Is(err, ErrUnknownStack))

	err = stacks.Apply(Procedure{N: 1, From: 1, To: 9}, false)
	assert.True(t, errors.Is(err, ErrUnknownStack))

	err = stacks.Apply(Procedure{N: 5, From: 3, To: 1}, true)
	assert.True(t, errors.Is(err, ErrNotEnoughCrates))
}

func TestParseErrors(t *testing.T) {
	tests := map[string]string{
		"no separator":  "[A]\n 1 \n",
		"bad label row": "[A]\n x \n\nmove 1 from 1 to 1\n",
		"bad procedure": "[A]\n 1 \n\nshift 1 from 1 to 1\n",
		"no labels":     "[A]\n   \n\n",
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, err := Parse(input)
			assert.Error(t, err)
		})
	}
}

func TestSolver(t *testing.T) {
	answers, err := Solver{}.Solve(example)
	require.NoError(t, err)
	assert.Equal(t, "CMZ", answers.PartOne)
	assert.Equal(t, "MCD", answers.PartTwo)
}

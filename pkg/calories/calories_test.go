package calories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `1000
2000
3000

4000

5000
6000

7000
8000
9000

10000
`

func TestParse(t *testing.T) {
	inventories, err := Parse(example)
	require.NoError(t, err)
	require.Len(t, inventories, 5)
	assert.Equal(t, Inventory{1000, 2000, 3000}, inventories[0])
	assert.Equal(t, 24000, inventories[3].Total())
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse("1000\nlots\n")
	assert.ErrorContains(t, err, "line 2")
}

func TestParts(t *testing.T) {
	inventories, err := Parse(example)
	require.NoError(t, err)

	assert.Equal(t, 24000, PartOne(inventories))
	assert.Equal(t, 45000, TopTotal(inventories, 3))
	assert.Equal(t, 55000, TopTotal(inventories, 10))
	assert.Equal(t, 0, PartOne(nil))
}

func TestSolver(t *testing.T) {
	answers, err := (&Solver{TopN: 3}).Solve(example)
	require.NoError(t, err)
	assert.Equal(t, "24000", answers.PartOne)
	assert.Equal(t, "45000", answers.PartTwo)
}

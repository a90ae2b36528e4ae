package rcpsp

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleInstance = `3 2 1
4 3 5
2 2 1 1 0 2 2 3
3 1 2 0 2 1 3
1 1 1 2 0 0
`

func TestParseSample(t *testing.T) {
	inst, err := Parse(strings.NewReader(sampleInstance))
	require.NoError(t, err)

	assert.Equal(t, 3, inst.Tasks)
	assert.Equal(t, 2, inst.Resources)
	assert.Equal(t, 1, inst.Inventories)
	assert.Equal(t, []int{4, 3}, inst.Capacity)
	assert.Equal(t, []int{5}, inst.InitLevel)

	assert.Equal(t, []int{2, 3, 1}, inst.Duration)
	assert.Equal(t, [][]int{{2, 1}, {1, 2}, {1, 1}}, inst.Weight)

	// Consumption and production are interleaved per inventory resource in
	// the file: cons then prod for each resource in turn.
	assert.Equal(t, [][]int{{1}, {0}, {2}}, inst.StartCons)
	assert.Equal(t, [][]int{{0}, {2}, {0}}, inst.EndProd)

	// Successor IDs are 1-indexed in the file.
	assert.Equal(t, [][]int{{1, 2}, {2}, {}}, inst.Successors)

	assert.Equal(t, 6, inst.Horizon)
	require.NoError(t, inst.Validate())
	require.NoError(t, inst.ValidateAcyclic())
}

func TestLoadFile(t *testing.T) {
	inst, err := Load(filepath.Join("testdata", "sample.txt"))
	require.NoError(t, err)
	assert.Equal(t, 3, inst.Tasks)
	assert.Equal(t, 6, inst.Horizon)
}

func TestParseTruncatedFile(t *testing.T) {
	_, err := Parse(strings.NewReader("3 2 1\n4 3 5\n2 2 1 1 0 2 2 3\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrParse))
}

func TestParseShortTaskLine(t *testing.T) {
	// Task line 3 is cut off after the renewable usage tokens.
	_, err := Parse(strings.NewReader("1 2 1\n4 3 5\n2 2 1\n"))
	require.Error(t, err)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 3, perr.Line)
}

func TestParseNonInteger(t *testing.T) {
	_, err := Parse(strings.NewReader("1 0 0\n\nx 0\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrParse))
	assert.Contains(t, err.Error(), `"x"`)
}

func TestParseEmpty(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrParse))
}

func TestParseZeroTasks(t *testing.T) {
	inst, err := Parse(strings.NewReader("0 1 0\n7\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, inst.Tasks)
	assert.Equal(t, []int{7}, inst.Capacity)
	assert.Equal(t, 0, inst.Horizon)
	require.NoError(t, inst.Validate())
}

func TestValidateSuccessorOutOfRange(t *testing.T) {
	// Task 1 names successor 5 in a 2-task instance; parsing stays
	// permissive, Validate rejects.
	inst, err := Parse(strings.NewReader("2 0 0\n\n1 1 5\n1 0\n"))
	require.NoError(t, err)
	require.Error(t, inst.Validate())
}

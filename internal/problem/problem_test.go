package problem

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rcpspInv/internal/rcpsp"
)

const sampleInstance = `3 2 1
4 3 5
2 2 1 1 0 2 2 3
3 1 2 0 2 1 3
1 1 1 2 0 0
`

const cyclicInstance = `2 0 0

1 1 2
1 1 1
`

func writeInstance(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestLoadRelativePath(t *testing.T) {
	dir := t.TempDir()
	writeInstance(t, dir, "inst.txt", sampleInstance)

	prob, err := Load("inst.txt", Options{BaseDir: dir, Rng: rand.New(rand.NewSource(1))})
	require.NoError(t, err)
	assert.Equal(t, 3, prob.TaskCount())
}

func TestLoadAbsolutePath(t *testing.T) {
	dir := t.TempDir()
	path := writeInstance(t, dir, "inst.txt", sampleInstance)
	require.True(t, filepath.IsAbs(path))

	// BaseDir must be ignored for absolute paths.
	prob, err := Load(path, Options{BaseDir: "/nonexistent", Rng: rand.New(rand.NewSource(1))})
	require.NoError(t, err)
	assert.Equal(t, 3, prob.TaskCount())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("no-such-instance.txt", Options{BaseDir: t.TempDir(), Rng: rand.New(rand.NewSource(1))})
	require.Error(t, err)
}

func TestLoadNilRng(t *testing.T) {
	_, err := Load("inst.txt", Options{})
	require.Error(t, err)
}

func TestLoadRejectsCycle(t *testing.T) {
	dir := t.TempDir()
	path := writeInstance(t, dir, "cyclic.txt", cyclicInstance)

	_, err := Load(path, Options{Rng: rand.New(rand.NewSource(1))})
	require.Error(t, err)
	assert.True(t, errors.Is(err, rcpsp.ErrCyclic))
}

func TestEvaluateSolution(t *testing.T) {
	dir := t.TempDir()
	path := writeInstance(t, dir, "inst.txt", sampleInstance)

	prob, err := Load(path, Options{Rng: rand.New(rand.NewSource(1))})
	require.NoError(t, err)

	// Feasible serial schedule: the scalar is exactly the makespan.
	v, err := prob.EvaluateSolution([]int{0, 2, 5})
	require.NoError(t, err)
	assert.Equal(t, 6.0, v)

	// Constraint violations surface through cost magnitude, not errors.
	v, err = prob.EvaluateSolution([]int{0, 0, 0})
	require.NoError(t, err)
	assert.Greater(t, v, float64(rcpsp.PenaltyMultiplier))
}

func TestEvaluateSolutionShape(t *testing.T) {
	dir := t.TempDir()
	path := writeInstance(t, dir, "inst.txt", sampleInstance)

	prob, err := Load(path, Options{Rng: rand.New(rand.NewSource(1))})
	require.NoError(t, err)

	_, err = prob.EvaluateSolution([]int{0, 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, rcpsp.ErrShape))
}

func TestRandomSolution(t *testing.T) {
	dir := t.TempDir()
	path := writeInstance(t, dir, "inst.txt", sampleInstance)

	prob, err := Load(path, Options{Rng: rand.New(rand.NewSource(9))})
	require.NoError(t, err)

	horizon := prob.Instance().Horizon
	for i := 0; i < 50; i++ {
		s := prob.RandomSolution()
		require.Len(t, s, prob.TaskCount())
		for _, v := range s {
			assert.GreaterOrEqual(t, v, 0)
			assert.LessOrEqual(t, v, horizon)
		}

		// Every sampled schedule must be evaluable.
		_, err := prob.EvaluateSolution(s)
		require.NoError(t, err)
	}
}

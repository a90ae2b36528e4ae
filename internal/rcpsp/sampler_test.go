package rcpsp

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomScheduleRange(t *testing.T) {
	inst, err := Load("testdata/sample.txt")
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		s := RandomSchedule(inst, rng)
		require.Len(t, s, inst.Tasks)
		require.NoError(t, ValidateSchedule(s, inst.Tasks))
		for _, v := range s {
			assert.GreaterOrEqual(t, v, 0)
			assert.LessOrEqual(t, v, inst.Horizon)
		}
	}
}

func TestRandomScheduleSeeded(t *testing.T) {
	inst, err := Load("testdata/sample.txt")
	require.NoError(t, err)

	a := RandomSchedule(inst, rand.New(rand.NewSource(7)))
	b := RandomSchedule(inst, rand.New(rand.NewSource(7)))
	assert.Equal(t, a, b)
}

func TestRandomScheduleZeroHorizon(t *testing.T) {
	inst := singleTask(0)
	s := RandomSchedule(inst, rand.New(rand.NewSource(1)))
	assert.Equal(t, []int{0}, s)
}

func TestRandomScheduleNilRng(t *testing.T) {
	assert.Panics(t, func() {
		RandomSchedule(singleTask(1), nil)
	})
}

func TestValidateSchedule(t *testing.T) {
	require.NoError(t, ValidateSchedule([]int{0, 3}, 2))

	err := ValidateSchedule([]int{0}, 2)
	require.Error(t, err)

	err = ValidateSchedule([]int{0, -1}, 2)
	require.Error(t, err)
}

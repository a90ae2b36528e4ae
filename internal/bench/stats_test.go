package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalc(t *testing.T) {
	s := Calc([]float64{3, 1, 2})
	assert.Equal(t, 3, s.N)
	assert.Equal(t, 1.0, s.Best)
	assert.InDelta(t, 2.0, s.Mean, 1e-9)
	assert.InDelta(t, 1.0, s.Std, 1e-9)
}

func TestCalcSingle(t *testing.T) {
	s := Calc([]float64{4})
	assert.Equal(t, 1, s.N)
	assert.Equal(t, 4.0, s.Best)
	assert.Equal(t, 4.0, s.Mean)
	assert.Equal(t, 0.0, s.Std)
}

func TestCalcEmpty(t *testing.T) {
	s := Calc(nil)
	assert.Equal(t, Stats{}, s)
}

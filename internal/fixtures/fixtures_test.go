package fixtures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLongPricesShape(t *testing.T) {
	p := LongPrices()
	require.Len(t, p, 30)
	assert.Equal(t, 2000.0, p[0].V)
	assert.Equal(t, 900.0, p[29].V)
	assert.Equal(t, Now, p[29].T)
	for i := 1; i < len(p); i++ {
		assert.Less(t, p[i-1].T.Millis(), p[i].T.Millis())
	}
}

func TestRandomWalkDeterministic(t *testing.T) {
	a := RandomWalk(50, 100, 42)
	b := RandomWalk(50, 100, 42)
	require.Len(t, a, 50)
	assert.Equal(t, a, b)
	assert.Equal(t, Now, a[49].Time)

	for _, c := range a {
		assert.GreaterOrEqual(t, c.High, c.Open)
		assert.GreaterOrEqual(t, c.High, c.Close)
		assert.LessOrEqual(t, c.Low, c.Open)
		assert.LessOrEqual(t, c.Low, c.Close)
		assert.NotZero(t, c.Volume)
	}
}

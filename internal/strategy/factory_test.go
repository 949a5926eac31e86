package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactory(t *testing.T) {
	g, err := New(ModelRandom, 0, 0)
	require.NoError(t, err)
	assert.IsType(t, &Random{}, g)

	g, err = New(ModelCrossover, 3, 5)
	require.NoError(t, err)
	assert.IsType(t, &Crossover{}, g)

	// Empty model falls back to the crossover default.
	g, err = New("", 3, 5)
	require.NoError(t, err)
	assert.IsType(t, &Crossover{}, g)

	_, err = New("sentiment", 3, 5)
	assert.Error(t, err)

	// Window validation surfaces through the factory.
	_, err = New(ModelCrossover, 5, 3)
	assert.Error(t, err)
}

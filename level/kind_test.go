package level

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageKind(t *testing.T) {
	assert.Equal(t, "LightDirection", LightDirection.String())
	assert.Equal(t, "ImageKind(9)", ImageKind(9).String())
	assert.Equal(t, "hall_Depth.mfi", Depth.FileName("hall", "mfi"))
	assert.False(t, Environment.MatchesViewResolution())
	assert.True(t, Color.MatchesViewResolution())

	k, err := ParseImageKind("environment")
	require.NoError(t, err)
	assert.Equal(t, Environment, k)
	_, err = ParseImageKind("Normal")
	assert.Error(t, err)
}

func TestKindMask(t *testing.T) {
	m := maskOf([]ImageKind{LightDirection, Color, Color, ImageKind(20)})
	assert.Equal(t, []ImageKind{Color, LightDirection}, m.kinds())
	assert.True(t, m.has(Color))
	assert.False(t, m.has(Depth))
	assert.Empty(t, maskOf(nil).kinds())
}

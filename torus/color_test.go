package torus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHexColor(t *testing.T) {
	rgb, err := ParseHexColor("eeeeec")
	require.NoError(t, err)
	assert.Equal(t, [3]float32{238.0 / 255, 238.0 / 255, 236.0 / 255}, rgb)

	rgb, err = ParseHexColor("#ff0080")
	require.NoError(t, err)
	assert.Equal(t, [3]float32{1, 0, 128.0 / 255}, rgb)

	for _, bad := range []string{"", "#fff", "eeeeeeee", "gg0000"} {
		_, err := ParseHexColor(bad)
		assert.Error(t, err, bad)
	}
}

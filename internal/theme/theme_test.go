package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_KnownThemes(t *testing.T) {
	for _, name := range Available() {
		th, err := Get(name)
		require.NoError(t, err)
		assert.NotNil(t, th)
	}
}

func TestGet_Unknown(t *testing.T) {
	_, err := Get("neon")
	assert.Error(t, err)
}

func TestLoadAndCurrent(t *testing.T) {
	require.NoError(t, Load("dark"))
	assert.Equal(t, darkTheme, Current())

	// Restore for other tests.
	require.NoError(t, Load("default"))
}

func TestAvailable_Sorted(t *testing.T) {
	names := Available()
	assert.Equal(t, []string{"dark", "default", "light"}, names)
}

package resources

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppIconIsEmbedded(t *testing.T) {
	icon, err := AppIcon()
	require.NoError(t, err)
	assert.Equal(t, "logo/stopwatch.svg", icon.Name())
	assert.Contains(t, string(icon.Content()), "<svg")

	again, err := AppIcon()
	require.NoError(t, err)
	assert.Same(t, icon, again)
}

func TestMissingLogo(t *testing.T) {
	_, err := Logo("missing.svg")
	assert.Error(t, err)
}

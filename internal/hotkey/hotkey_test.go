package hotkey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCombo(t *testing.T) {
	mods, key, err := ParseCombo("ctrl+shift+p")
	require.NoError(t, err)
	assert.Len(t, mods, 2)
	assert.Equal(t, keyNames["p"], key)
}

func TestParseCombo_CaseAndSpacing(t *testing.T) {
	mods, key, err := ParseCombo(" Ctrl + P ")
	require.NoError(t, err)
	assert.Len(t, mods, 1)
	assert.Equal(t, keyNames["p"], key)
}

func TestParseCombo_RequiresModifier(t *testing.T) {
	_, _, err := ParseCombo("p")
	assert.Error(t, err)
}

func TestParseCombo_UnknownModifier(t *testing.T) {
	_, _, err := ParseCombo("hyper+p")
	assert.Error(t, err)
}

func TestParseCombo_UnknownKey(t *testing.T) {
	_, _, err := ParseCombo("ctrl+f13")
	assert.Error(t, err)
}

package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Run("US number without country prefix", func(t *testing.T) {
		result, err := Normalize("(212) 555-0123", "US")
		require.NoError(t, err)
		assert.Equal(t, "+12125550123", result)
	})

	t.Run("Defaults to US region", func(t *testing.T) {
		result, err := Normalize("212-555-0123", "")
		require.NoError(t, err)
		assert.Equal(t, "+12125550123", result)
	})

	t.Run("International format kept", func(t *testing.T) {
		result, err := Normalize("+44 20 7946 0958", "US")
		require.NoError(t, err)
		assert.Equal(t, "+442079460958", result)
	})

	t.Run("Error - empty", func(t *testing.T) {
		_, err := Normalize("", "US")
		assert.Error(t, err)
	})

	t.Run("Error - not a number", func(t *testing.T) {
		_, err := Normalize("call me maybe", "US")
		assert.Error(t, err)
	})
}

func TestNormalizeOrKeep(t *testing.T) {
	assert.Equal(t, "+12125550123", NormalizeOrKeep("(212) 555-0123", "US"))
	assert.Equal(t, "ext. 42", NormalizeOrKeep("ext. 42", "US"))
	assert.Equal(t, "", NormalizeOrKeep("", "US"))
}

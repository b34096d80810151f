package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFormat(t *testing.T) {
	for _, format := range []string{FormatText, FormatJSON, FormatYAML} {
		assert.NoError(t, validateFormat(format))
	}

	err := validateFormat("xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format: xml")
}

func TestWriteStructured(t *testing.T) {
	value := generateOutput{Brand: "VISA", Numbers: []string{"4111111111111111"}}

	t.Run("json", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, writeStructured(&out, FormatJSON, value))
		assert.JSONEq(t, `{"brand":"VISA","numbers":["4111111111111111"]}`, out.String())
	})

	t.Run("yaml", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, writeStructured(&out, FormatYAML, value))
		assert.Contains(t, out.String(), "brand: VISA\n")
		assert.Contains(t, out.String(), `"4111111111111111"`)
	})

	t.Run("text-is-not-structured", func(t *testing.T) {
		assert.Error(t, writeStructured(&bytes.Buffer{}, FormatText, value))
	})
}

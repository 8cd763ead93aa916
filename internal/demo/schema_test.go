package demo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateWithSchema_ValidYAML(t *testing.T) {
	result, err := ValidateWithSchema(".timekeep.yml", []byte(`
iterations: 100
csv: true
workloads: [sum, thing]
`))
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestValidateWithSchema_UnknownWorkload(t *testing.T) {
	result, err := ValidateWithSchema(".timekeep.yml", []byte(`
workloads: [sum, fibonacci]
`))
	require.NoError(t, err)
	assert.False(t, result.Valid)
	require.NotEmpty(t, result.Errors)
}

func TestValidateWithSchema_ZeroIterations(t *testing.T) {
	result, err := ValidateWithSchema(".timekeep.yml", []byte("iterations: 0\n"))
	require.NoError(t, err)
	assert.False(t, result.Valid)
}

func TestValidateWithSchema_UnknownKey(t *testing.T) {
	result, err := ValidateWithSchema(".timekeep.yml", []byte("repeat: 10\n"))
	require.NoError(t, err)
	assert.False(t, result.Valid)
}

func TestValidateWithSchema_BadYAMLSyntax(t *testing.T) {
	result, err := ValidateWithSchema(".timekeep.yml", []byte("iterations: [unclosed"))
	require.NoError(t, err)
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "syntax", result.Errors[0].Field)
}

func TestValidateWithSchema_JSON(t *testing.T) {
	result, err := ValidateWithSchema(".timekeep.json", []byte(`{"iterations": 3}`))
	require.NoError(t, err)
	assert.True(t, result.Valid)
}

func TestValidateWithSchema_TOML(t *testing.T) {
	result, err := ValidateWithSchema(".timekeep.toml", []byte("iterations = 3\n"))
	require.NoError(t, err)
	assert.True(t, result.Valid)
}

func TestValidateWithSchema_UnsupportedFormat(t *testing.T) {
	_, err := ValidateWithSchema("config.ini", []byte("iterations=3"))
	assert.Error(t, err)
}

func TestGetSchemaJSON(t *testing.T) {
	assert.Contains(t, GetSchemaJSON(), `"iterations"`)
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Version(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"version"}, &out))
	assert.Equal(t, "layerchain "+version+"\n", out.String())
}

func TestRun_Usage(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(nil, &out))
	assert.Contains(t, out.String(), "Commands:")

	assert.Error(t, run([]string{"serve"}, &out))
}

func TestRun_XORSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xor.txt")

	var out bytes.Buffer
	require.NoError(t, run([]string{"xor", "-epochs", "50", "-every", "0", "-save", path}, &out))
	assert.Contains(t, out.String(), "Epoch    50/50")
	assert.Contains(t, out.String(), "Saved parameters")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	out.Reset()
	require.NoError(t, run([]string{"xor", "-epochs", "0", "-load", path}, &out))
	assert.Contains(t, out.String(), "Loaded parameters")
	assert.Contains(t, out.String(), "Predictions:")
}

func TestRun_XORRulesAndActivations(t *testing.T) {
	for _, args := range [][]string{
		{"-rule", "adamax", "-activation", "softplus"},
		{"-rule", "sgd", "-lr", "0.05", "-activation", "rectifier"},
	} {
		var out bytes.Buffer
		require.NoError(t, run(append([]string{"xor", "-epochs", "10"}, args...), &out), "%v", args)
	}
}

func TestRun_XORBadFlags(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, run([]string{"xor", "-rule", "rmsprop"}, &out))
	assert.Error(t, run([]string{"xor", "-activation", "gelu"}, &out))
	assert.Error(t, run([]string{"xor", "-hidden", "0"}, &out))
	assert.Error(t, run([]string{"xor", "-load", filepath.Join(t.TempDir(), "missing")}, &out))
	assert.Error(t, run([]string{"xor", "-bogus"}, &out))
}

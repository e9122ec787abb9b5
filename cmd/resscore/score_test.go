package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bcblab/resscore/tables"
)

func TestScoreFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.fasta")
	require.NoError(t, os.WriteFile(path, []byte(">s1\nAC\n>s2\nZZ\n"), 0644))

	table, ok := tables.Builtin("uniform")
	require.True(t, ok)

	var out bytes.Buffer
	require.NoError(t, scoreFile(&out, table, path, false))

	// Uniform table and the fallback both score 0.05 per residue.
	assert.Equal(t, "s1\t0.1\t0.05\ns2\t0.1\t0.05\n", out.String())
}

func TestScoreFileEach(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.fasta")
	require.NoError(t, os.WriteFile(path, []byte(">s\nA\n"), 0644))

	table, ok := tables.Builtin("robinson")
	require.True(t, ok)

	var out bytes.Buffer
	require.NoError(t, scoreFile(&out, table, path, true))

	assert.Equal(t, "s\t0.07805\t0.07805\n\tA\t0.07805\n", out.String())
}

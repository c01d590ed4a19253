package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateRootSource(t *testing.T) {
	templatesDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(templatesDir, "machine"), 0o755))

	source := templateRootSource([]string{templatesDir}, "machine")
	assert.Equal(t, filepath.Join(templatesDir, "machine"), source)

	assert.Equal(t, builtinSourceName, templateRootSource([]string{templatesDir}, "project"))
	assert.Equal(t, builtinSourceName, templateRootSource(nil, "common"))
}

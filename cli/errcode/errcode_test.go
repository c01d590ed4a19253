package errcode

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitCodeTable(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		want int
	}{
		{"internal", KindInternal, 1},
		{"project exists", KindProjectExists, 81},
		{"no machines", KindNoMachines, 82},
		{"layout failure", KindLayoutFailure, 83},
		{"repo init failure", KindRepoInitFailure, 84},
		{"template missing", KindTemplateMissing, 85},
		{"render failure", KindRenderFailure, 86},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.ExitCode())
		})
	}
}

func TestClassifyExitCode(t *testing.T) {
	err := New(KindProjectExists, "directory %q already exists", "app1")
	assert.Equal(t, 81, ClassifyExitCode(err))
	assert.Equal(t, `directory "app1" already exists`, err.Error())

	// Kind survives wrapping with fmt.Errorf.
	wrapped := fmt.Errorf("scaffolding failed: %w", err)
	assert.Equal(t, 81, ClassifyExitCode(wrapped))

	// Untagged errors are internal.
	assert.Equal(t, 1, ClassifyExitCode(fmt.Errorf("boom")))
}

func TestWrap(t *testing.T) {
	require.NoError(t, Wrap(KindLayoutFailure, nil))

	inner := fmt.Errorf("mkdir failed")
	err := Wrap(KindLayoutFailure, inner)
	require.Error(t, err)
	assert.Equal(t, 83, ClassifyExitCode(err))
	assert.ErrorIs(t, err, inner)
}

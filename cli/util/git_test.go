package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_isGitInitialBranchSupported(t *testing.T) {
	tests := []struct {
		name      string
		gitOutput string
		want      bool
	}{
		{
			"Less",
			"git version 2.27.0",
			false,
		},
		{
			"Less",
			"git version 1.8",
			false,
		},
		{
			"Equal",
			"git version 2.28",
			true,
		},
		{
			"Equal",
			"git version 2.28.0",
			true,
		},
		{
			"Greater",
			"git version 2.39.5",
			true,
		},
		{
			"Apple suffix",
			"git version 2.39.5 (Apple Git-154)",
			false,
		},
		{
			"Invalid git output",
			"no version",
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := isGitInitialBranchSupported(tt.gitOutput)
			assert.Equal(t, tt.want, got)
		})
	}
}

package util

import (
	"bytes"
	"os/exec"
	"strings"
	"unicode"

	"github.com/hashicorp/go-version"
)

// isGitInitialBranchSupported checks if the init.defaultBranch override option
// (--initial-branch) is supported by the git version passed as gitOutput.
func isGitInitialBranchSupported(gitOutput string) bool {
	versionStr := strings.TrimFunc(gitOutput, func(r rune) bool {
		return !unicode.IsDigit(r)
	})
	gitVersion, err := version.NewVersion(versionStr)
	if err != nil {
		return false
	}
	initialBranchStartGitVersion, err := version.NewVersion("2.28")
	if err != nil {
		return false
	}
	return gitVersion.GreaterThanOrEqual(initialBranchStartGitVersion)
}

// IsGitInitialBranchSupported checks if the --initial-branch init option is
// supported by the current git version.
func IsGitInitialBranchSupported() bool {
	cmd := exec.Command("git", "--version")
	var out bytes.Buffer
	cmd.Stdout = &out
	err := cmd.Run()
	if err != nil {
		return false
	}
	return isGitInitialBranchSupported(out.String())
}

package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersion(t *testing.T) {
	// No build metadata injected.
	assert.Equal(t, "<unknown>", GetVersion(true, false))
	assert.Equal(t, "vlab version <unknown>, "+runtime.GOOS+"/"+runtime.GOARCH+". commit: ",
		GetVersion(false, false))

	gitTag = "v1.2.3"
	gitCommit = "f00dbeef"
	defer func() {
		gitTag = ""
		gitCommit = ""
	}()

	assert.Equal(t, "1.2.3", GetVersion(true, false))
	assert.Equal(t, "1.2.3.f00dbeef", GetVersion(true, true))
	assert.Equal(t, "vlab version 1.2.3, "+runtime.GOOS+"/"+runtime.GOARCH+". commit: f00dbeef",
		GetVersion(false, false))
}

package engines

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// commonTemplateFuncs lists functions available in every template.
var commonTemplateFuncs map[string]interface{}

const (
	hostAddrSubnet = "192.168.56"
	hostAddrBase   = 10
	hostAddrMax    = 254
)

// genHostAddr returns a host-only network address for the machine with the
// given one-based ordinal. The first machine gets 192.168.56.11, the second
// 192.168.56.12 and so on. Ordinal is passed as a string because template
// variables are strings.
func genHostAddr(ordinal string) (string, error) {
	n, err := strconv.Atoi(ordinal)
	if err != nil {
		return "", fmt.Errorf("invalid machine ordinal %q: %s", ordinal, err)
	}
	host := hostAddrBase + n
	if n < 1 || host > hostAddrMax {
		return "", fmt.Errorf("machine ordinal %d is out of range [1, %d]",
			n, hostAddrMax-hostAddrBase)
	}
	return fmt.Sprintf("%s.%d", hostAddrSubnet, host), nil
}

// relativeToCurrentWorkingDir returns a path relative to current working dir.
// In case of error, fullpath is returned.
func relativeToCurrentWorkingDir(fullpath string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return fullpath
	}
	relPath, err := filepath.Rel(cwd, fullpath)
	if err != nil {
		return fullpath
	}
	return relPath
}

func init() {
	commonTemplateFuncs = make(map[string]interface{}, 0)
	commonTemplateFuncs["cwdRelative"] = relativeToCurrentWorkingDir
	commonTemplateFuncs["hostAddr"] = genHostAddr
	commonTemplateFuncs["atoi"] = strconv.Atoi
	commonTemplateFuncs["ToLower"] = strings.ToLower
}

package main

import (
	"log"

	"github.com/vagrantlab/vlab/cli/cmd"
	"github.com/vagrantlab/vlab/cli/util"
	"github.com/vagrantlab/vlab/cli/version"
)

func main() {
	defer func() {
		// Recover regains control of a panicking goroutine. In case the
		// program panics, capture the value given to panic and resume
		// normal execution, reporting the panic below.
		if r := recover(); r != nil {
			log.Fatalf(
				"%s", util.InternalError("Unhandled internal error: %s",
					version.GetVersion, r))
		}
	}()

	cmd.InitRoot()
	cmd.Execute()
}

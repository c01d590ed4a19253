package util

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/apex/log"
	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
)

var (
	spinnerPicture    = spinner.CharSets[9]
	spinnerUpdateTime = 100 * time.Millisecond
)

// startAndWaitCommand executes a command and closes doneChannel before return.
func startAndWaitCommand(cmd *exec.Cmd, doneChannel chan struct{},
	workGroup *sync.WaitGroup, err *error,
) {
	defer workGroup.Done()
	defer close(doneChannel)

	if *err = cmd.Start(); *err != nil {
		return
	}

	*err = cmd.Wait()
}

// startCommandSpinner shows a spinner until doneChannel is closed.
func startCommandSpinner(doneChannel chan struct{}, workGroup *sync.WaitGroup, prefix string) {
	defer workGroup.Done()

	commandSpinner := spinner.New(spinnerPicture, spinnerUpdateTime)
	if prefix != "" {
		commandSpinner.Prefix = fmt.Sprintf("%s ", strings.TrimSpace(prefix))
	}

	commandSpinner.Start()

	// Wait for the command to complete.
	<-doneChannel

	commandSpinner.Stop()
}

// RunCommand runs the command in workingDir and returns an error.
// If showOutput is set, command output goes to stdout/stderr.
// Otherwise the output is collected and shown only if the command fails,
// and a spinner is displayed while the command is running on a terminal.
func RunCommand(cmd *exec.Cmd, workingDir string, showOutput bool) error {
	var err error
	var workGroup sync.WaitGroup
	doneChannel := make(chan struct{})

	var outputBuf *os.File

	cmd.Dir = workingDir
	if showOutput {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	} else {
		if outputBuf, err = os.CreateTemp("", "out"); err != nil {
			log.Warnf("Failed to create tmp file to store command output: %s", err)
		}
		cmd.Stdout = outputBuf
		cmd.Stderr = outputBuf
		defer outputBuf.Close()
		defer os.Remove(outputBuf.Name())

		if isatty.IsTerminal(os.Stdout.Fd()) {
			workGroup.Add(1)
			go startCommandSpinner(doneChannel, &workGroup, "")
		}
	}

	workGroup.Add(1)
	go startAndWaitCommand(cmd, doneChannel, &workGroup, &err)

	workGroup.Wait()

	if err != nil {
		if outputBuf != nil {
			if err := printFromStart(outputBuf); err != nil {
				log.Warnf("Failed to show command output: %s", err)
			}
		}

		return fmt.Errorf("failed to run\n%s\n\n%s", cmd.String(), err)
	}

	return nil
}

// printFromStart prints the file content to stdout from the file beginning.
func printFromStart(file *os.File) error {
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to seek file begin: %s", err)
	}
	if _, err := io.Copy(os.Stdout, file); err != nil {
		log.Warnf("Failed to print file content: %s", err)
	}

	return nil
}

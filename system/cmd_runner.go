package system

import (
	"io"
	"time"
)

type Command struct {
	Name       string
	Args       []string
	Env        map[string]string
	WorkingDir string

	Stdin io.Reader

	// Quiet keeps command output out of the debug logs.
	Quiet bool
}

type Result struct {
	Stdout     string
	Stderr     string
	ExitStatus int
	Error      error
}

type Process interface {
	Wait() <-chan Result
	TerminateNicely(killGracePeriod time.Duration) error
}

type CmdRunner interface {
	RunComplexCommand(cmd Command) (stdout, stderr string, exitStatus int, err error)
	RunComplexCommandAsync(cmd Command) (Process, error)
	RunCommand(cmdName string, args ...string) (stdout, stderr string, exitStatus int, err error)
	RunCommandQuietly(cmdName string, args ...string) (stdout, stderr string, exitStatus int, err error)
	CommandExists(cmdName string) bool
}

package system

import (
	"bytes"
	"os"
	"os/exec"
	"strings"
	"syscall"
	"time"

	gmerr "github.com/masktools/getmask/errors"
	gmlog "github.com/masktools/getmask/logger"
)

const execProcessLogTag = "Cmd Runner"

type ExecProcess struct {
	cmd          *exec.Cmd
	stdoutWriter *bytes.Buffer
	stderrWriter *bytes.Buffer
	pid          int
	quiet        bool
	logger       gmlog.Logger
	waitCh       chan Result
}

func NewExecProcess(cmd *exec.Cmd, quiet bool, logger gmlog.Logger) *ExecProcess {
	return &ExecProcess{
		cmd:          cmd,
		stdoutWriter: &bytes.Buffer{},
		stderrWriter: &bytes.Buffer{},
		quiet:        quiet,
		logger:       logger,
	}
}

func (p *ExecProcess) Start() error {
	if p.cmd.Stdout == nil {
		p.cmd.Stdout = p.stdoutWriter
	}
	if p.cmd.Stderr == nil {
		p.cmd.Stderr = p.stderrWriter
	}

	cmdString := p.commandString()
	p.logger.Debug(execProcessLogTag, "Running command '%s'", cmdString)

	err := p.cmd.Start()
	if err != nil {
		return gmerr.WrapErrorf(err, "Starting command '%s'", cmdString)
	}

	p.pid = p.cmd.Process.Pid

	return nil
}

func (p *ExecProcess) Wait() <-chan Result {
	if p.waitCh != nil {
		panic("Wait() must be called only once")
	}

	p.waitCh = make(chan Result, 1)

	go func() {
		p.waitCh <- p.wait()
	}()

	return p.waitCh
}

func (p *ExecProcess) wait() Result {
	waitErr := p.cmd.Wait()

	stdout := p.stdoutWriter.String()
	stderr := p.stderrWriter.String()

	exitStatus := -1
	if p.cmd.ProcessState != nil {
		exitStatus = p.cmd.ProcessState.ExitCode()
	}

	cmdString := p.commandString()

	if p.quiet {
		p.logger.Debug(execProcessLogTag, "Command '%s' exited with status %d", cmdString, exitStatus)
	} else {
		p.logger.Debug(execProcessLogTag, "Command '%s' exited with status %d, stdout: '%s', stderr: '%s'", cmdString, exitStatus, stdout, stderr)
	}

	var resultErr error
	if waitErr != nil {
		if p.quiet {
			resultErr = gmerr.WrapErrorf(waitErr, "Running command '%s'", cmdString)
		} else {
			resultErr = gmerr.WrapErrorf(waitErr, "Running command '%s', stdout: '%s', stderr: '%s'", cmdString, stdout, stderr)
		}
	}

	return Result{
		Stdout:     stdout,
		Stderr:     stderr,
		ExitStatus: exitStatus,
		Error:      resultErr,
	}
}

// TerminateNicely asks the process to terminate, escalating to a kill
// once the grace period runs out.
func (p *ExecProcess) TerminateNicely(killGracePeriod time.Duration) error {
	if p.cmd.Process == nil {
		return gmerr.Error("Process not running")
	}

	err := p.cmd.Process.Signal(syscall.SIGTERM)
	if err != nil && err != os.ErrProcessDone {
		// SIGTERM is not deliverable everywhere; fall through to kill
		p.logger.Debug(execProcessLogTag, "Sending SIGTERM to pid %d failed: %s", p.pid, err.Error())
	}

	if p.waitCh == nil {
		p.Wait()
	}

	select {
	case result := <-p.waitCh:
		// re-deliver for any other waiter
		p.waitCh <- result
		return nil
	case <-time.After(killGracePeriod):
		err = p.cmd.Process.Kill()
		if err != nil && err != os.ErrProcessDone {
			return gmerr.WrapErrorf(err, "Killing pid %d", p.pid)
		}
	}

	return nil
}

func (p *ExecProcess) commandString() string {
	return strings.Join(p.cmd.Args, " ")
}

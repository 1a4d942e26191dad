package fakes

import (
	"strings"
	"sync"
	"time"

	gmsys "github.com/masktools/getmask/system"
)

type FakeCmdResult struct {
	Stdout     string
	Stderr     string
	ExitStatus int
	Error      error

	// Sticky results are not consumed by a run.
	Sticky bool
}

type FakeProcess struct {
	StartErr error

	WaitCh chan gmsys.Result

	Waited     bool
	WaitResult gmsys.Result

	TerminatedNicely               bool
	TerminateNicelyKillGracePeriod time.Duration
	TerminateNicelyErr             error

	// TerminateNicelyCallBack, when set, is responsible for delivering
	// the wait result; Wait() will not deliver one on its own.
	TerminateNicelyCallBack func(*FakeProcess)
}

func (p *FakeProcess) Wait() <-chan gmsys.Result {
	if p.WaitCh != nil {
		panic("Wait() must be called only once")
	}

	p.Waited = true
	p.WaitCh = make(chan gmsys.Result, 1)

	if p.TerminateNicelyCallBack == nil {
		p.WaitCh <- p.WaitResult
	}

	return p.WaitCh
}

func (p *FakeProcess) TerminateNicely(killGracePeriod time.Duration) error {
	p.TerminateNicelyKillGracePeriod = killGracePeriod
	p.TerminatedNicely = true
	if p.TerminateNicelyCallBack != nil {
		p.TerminateNicelyCallBack(p)
	}
	return p.TerminateNicelyErr
}

type FakeCmdRunner struct {
	commandResults     map[string][]FakeCmdResult
	commandResultsLock sync.Mutex

	processes     map[string][]*FakeProcess
	processesLock sync.Mutex

	RunComplexCommands []gmsys.Command
	RunCommands        [][]string
	RunCommandsQuietly [][]string
	runCommandsLock    sync.Mutex

	CommandExistsValue bool
	AvailableCommands  map[string]bool
}

func NewFakeCmdRunner() *FakeCmdRunner {
	return &FakeCmdRunner{
		commandResults:    map[string][]FakeCmdResult{},
		processes:         map[string][]*FakeProcess{},
		AvailableCommands: map[string]bool{},
	}
}

func (r *FakeCmdRunner) RunComplexCommand(cmd gmsys.Command) (string, string, int, error) {
	r.runCommandsLock.Lock()
	r.RunComplexCommands = append(r.RunComplexCommands, cmd)
	r.runCommandsLock.Unlock()

	return r.getOutputsForCmd(fullCommand(cmd.Name, cmd.Args))
}

func (r *FakeCmdRunner) RunComplexCommandAsync(cmd gmsys.Command) (gmsys.Process, error) {
	r.runCommandsLock.Lock()
	r.RunComplexCommands = append(r.RunComplexCommands, cmd)
	r.runCommandsLock.Unlock()

	r.processesLock.Lock()
	defer r.processesLock.Unlock()

	fullCmd := fullCommand(cmd.Name, cmd.Args)

	results, found := r.processes[fullCmd]
	if !found || len(results) == 0 {
		panic("Failed to find process for " + fullCmd)
	}

	process := results[0]
	if len(results) > 1 {
		r.processes[fullCmd] = results[1:]
	}

	return process, process.StartErr
}

func (r *FakeCmdRunner) RunCommand(cmdName string, args ...string) (string, string, int, error) {
	r.runCommandsLock.Lock()
	r.RunCommands = append(r.RunCommands, append([]string{cmdName}, args...))
	r.runCommandsLock.Unlock()

	return r.getOutputsForCmd(fullCommand(cmdName, args))
}

func (r *FakeCmdRunner) RunCommandQuietly(cmdName string, args ...string) (string, string, int, error) {
	r.runCommandsLock.Lock()
	r.RunCommandsQuietly = append(r.RunCommandsQuietly, append([]string{cmdName}, args...))
	r.runCommandsLock.Unlock()

	return r.getOutputsForCmd(fullCommand(cmdName, args))
}

func (r *FakeCmdRunner) CommandExists(cmdName string) bool {
	if exists, found := r.AvailableCommands[cmdName]; found {
		return exists
	}
	return r.CommandExistsValue
}

func (r *FakeCmdRunner) AddCmdResult(fullCmd string, result FakeCmdResult) {
	r.commandResultsLock.Lock()
	defer r.commandResultsLock.Unlock()

	r.commandResults[fullCmd] = append(r.commandResults[fullCmd], result)
}

func (r *FakeCmdRunner) AddProcess(fullCmd string, process *FakeProcess) {
	r.processesLock.Lock()
	defer r.processesLock.Unlock()

	r.processes[fullCmd] = append(r.processes[fullCmd], process)
}

func (r *FakeCmdRunner) getOutputsForCmd(fullCmd string) (string, string, int, error) {
	r.commandResultsLock.Lock()
	defer r.commandResultsLock.Unlock()

	results, found := r.commandResults[fullCmd]
	if !found || len(results) == 0 {
		return "", "", 0, nil
	}

	result := results[0]
	if !result.Sticky {
		if len(results) == 1 {
			delete(r.commandResults, fullCmd)
		} else {
			r.commandResults[fullCmd] = results[1:]
		}
	}

	return result.Stdout, result.Stderr, result.ExitStatus, result.Error
}

func fullCommand(cmdName string, args []string) string {
	if len(args) == 0 {
		return cmdName
	}
	return cmdName + " " + strings.Join(args, " ")
}

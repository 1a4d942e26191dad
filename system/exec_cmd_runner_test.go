package system_test

import (
	"fmt"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	gmlog "github.com/masktools/getmask/logger"
	. "github.com/masktools/getmask/system"
)

var _ = Describe("execCmdRunner", func() {
	var (
		runner CmdRunner
	)

	BeforeEach(func() {
		if isWindows {
			Skip("unix shell commands")
		}
		runner = NewExecCmdRunner(gmlog.NewLogger(gmlog.LevelNone))
	})

	Describe("RunCommand", func() {
		It("returns stdout of the command", func() {
			stdout, stderr, status, err := runner.RunCommand("echo", "Hello World!")
			Expect(err).ToNot(HaveOccurred())
			Expect(stdout).To(Equal("Hello World!\n"))
			Expect(stderr).To(BeEmpty())
			Expect(status).To(Equal(0))
		})

		It("returns stderr of the command", func() {
			_, stderr, _, err := runner.RunCommand("bash", "-c", "echo error-output >&2")
			Expect(err).ToNot(HaveOccurred())
			Expect(stderr).To(Equal("error-output\n"))
		})

		It("returns an error and the exit status for failing commands", func() {
			_, _, status, err := runner.RunCommand("bash", "-c", "exit 14")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("Running command"))
			Expect(status).To(Equal(14))
		})

		It("returns an error when the command does not exist", func() {
			_, _, status, err := runner.RunCommand("command-that-does-not-exist")
			Expect(err).To(HaveOccurred())
			Expect(status).To(Equal(-1))
		})
	})

	Describe("RunComplexCommand", func() {
		It("runs in the given working directory", func() {
			cmd := Command{
				Name:       "bash",
				Args:       []string{"-c", "echo $PWD"},
				WorkingDir: "/tmp",
			}
			stdout, _, _, err := runner.RunComplexCommand(cmd)
			Expect(err).ToNot(HaveOccurred())
			Expect(stdout).To(ContainSubstring("/tmp"))
		})

		It("merges the given env vars into the environment", func() {
			cmd := Command{
				Name: "bash",
				Args: []string{"-c", "echo $FOO"},
				Env: map[string]string{
					"FOO": "BAR",
				},
			}
			stdout, _, _, err := runner.RunComplexCommand(cmd)
			Expect(err).ToNot(HaveOccurred())
			Expect(stdout).To(Equal("BAR\n"))
		})

		It("feeds stdin to the command", func() {
			cmd := Command{
				Name:  "cat",
				Stdin: strings.NewReader("piped input"),
			}
			stdout, _, _, err := runner.RunComplexCommand(cmd)
			Expect(err).ToNot(HaveOccurred())
			Expect(stdout).To(Equal("piped input"))
		})
	})

	Describe("RunComplexCommandAsync", func() {
		It("populates the result once the process exits", func() {
			process, err := runner.RunComplexCommandAsync(Command{Name: "echo", Args: []string{"async"}})
			Expect(err).ToNot(HaveOccurred())

			result := <-process.Wait()
			Expect(result.Error).ToNot(HaveOccurred())
			Expect(result.Stdout).To(Equal("async\n"))
			Expect(result.ExitStatus).To(Equal(0))
		})

		It("terminates a long running process", func() {
			process, err := runner.RunComplexCommandAsync(Command{Name: "sleep", Args: []string{"60"}})
			Expect(err).ToNot(HaveOccurred())

			waitCh := process.Wait()

			err = process.TerminateNicely(2 * time.Second)
			Expect(err).ToNot(HaveOccurred())

			select {
			case result := <-waitCh:
				Expect(result.ExitStatus).ToNot(Equal(0))
			case <-time.After(5 * time.Second):
				Fail("process did not exit after termination")
			}
		})
	})

	Describe("CommandExists", func() {
		It("returns true for commands on the PATH", func() {
			Expect(runner.CommandExists("echo")).To(BeTrue())
		})

		It("returns false otherwise", func() {
			Expect(runner.CommandExists(fmt.Sprintf("cmd-%d", time.Now().UnixNano()))).To(BeFalse())
		})
	})
})

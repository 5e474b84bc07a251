package pkgmgr

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

// Executor runs an external command in dir.
type Executor interface {
	Run(ctx context.Context, dir, name string, args ...string) (*Output, error)
}

// Output captures the result of a command execution.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// CommandError reports a command that ran but exited non-zero.
type CommandError struct {
	Command  string
	ExitCode int
	Stderr   string
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%s exited with status %d", e.Command, e.ExitCode)
	if last := lastLine(e.Stderr); last != "" {
		msg += ": " + last
	}
	return msg
}

// ShellExecutor runs commands with os/exec, streaming their output.
type ShellExecutor struct {
	// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
	Logger *logrus.Logger
}

// Run executes name with args in dir. A non-zero exit is returned as a
// *CommandError together with the captured output.
func (s *ShellExecutor) Run(ctx context.Context, dir, name string, args ...string) (*Output, error) {
	bin, err := exec.LookPath(name)
	if err != nil {
		return nil, fmt.Errorf("%s not found in PATH: %w", name, err)
	}

	cmdLine := strings.Join(append([]string{name}, args...), " ")
	if s.Logger != nil {
		s.Logger.Debugf("Running %q in %s", cmdLine, dir)
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir

	stdout := s.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := s.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = io.MultiWriter(stdout, &stdoutBuf)
	cmd.Stderr = io.MultiWriter(stderr, &stderrBuf)

	err = cmd.Run()

	output := &Output{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			output.ExitCode = exitErr.ExitCode()
			return output, &CommandError{Command: cmdLine, ExitCode: output.ExitCode, Stderr: output.Stderr}
		}
		return output, fmt.Errorf("executing %s: %w", cmdLine, err)
	}
	return output, nil
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}

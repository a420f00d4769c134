package vswhere

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// RunResult carries the captured output of a finished process. A
// non-zero ExitCode is reported here rather than as an error so callers
// can attach the output to their own diagnostics.
type RunResult struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Runner starts a process and waits for it to finish. Implementations
// other than CmdRunner exist only for tests.
type Runner interface {
	Run(ctx context.Context, command string, args []string) (RunResult, error)
}

// CmdRunner executes commands via os/exec.
type CmdRunner struct{}

func (CmdRunner) Run(ctx context.Context, command string, args []string) (RunResult, error) {
	cmd := exec.CommandContext(ctx, command, args...)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	err := cmd.Run()
	res := RunResult{Stdout: stdoutBuf.Bytes(), Stderr: stderrBuf.Bytes()}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		return res, nil
	}
	return res, err
}

var _ Runner = CmdRunner{}

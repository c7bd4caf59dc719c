package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

const stderrTail = 512

type ExitError struct {
	Args   []string
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("solver %v exited with code %v", e.Args, e.Code)
	}
	return fmt.Sprintf("solver %v exited with code %v: %v", e.Args, e.Code, e.Stderr)
}

type ProcessExecutor struct {
	Path string
}

func (e *ProcessExecutor) Run(ctx context.Context, args []string) (Output, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, e.Path, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	output := Output{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
	if ctx.Err() != nil {
		return output, ctx.Err()
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		tail := strings.TrimSpace(stderr.String())
		if len(tail) > stderrTail {
			tail = tail[len(tail)-stderrTail:]
		}
		return output, &ExitError{Args: args, Code: exitErr.ExitCode(), Stderr: tail}
	} else if err != nil {
		return output, fmt.Errorf("failed to run %v: %w", e.Path, err)
	}
	return output, nil
}

package oscommand

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/AntonioJCosta/valuestats/internal/core/ports"
)

// OSCommandExecutor implements the CommandExecutor interface using the operating system's shell.
type OSCommandExecutor struct{}

// NewOSCommandExecutor creates a new OSCommandExecutor.
func NewOSCommandExecutor() ports.CommandExecutor {
	return &OSCommandExecutor{}
}

// shellPath resolves the shell binary: $SHELL when set, otherwise a default for shellName.
func shellPath(shellName string) string {
	if p := os.Getenv("SHELL"); p != "" {
		return p
	}
	switch shellName {
	case "bash":
		return "/bin/bash"
	case "zsh":
		return "/bin/zsh"
	default:
		return "/bin/sh"
	}
}

// Execute runs pipeline with "<shell> -c" and returns its stdout and stderr.
// The process is killed when ctx is done.
func (e *OSCommandExecutor) Execute(ctx context.Context, shellName, pipeline string) (string, string, error) {
	shellExecPath := shellPath(shellName)

	cmd := exec.CommandContext(ctx, shellExecPath, "-c", pipeline)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()
	stdout := outBuf.String()
	stderr := errBuf.String()

	if err != nil {
		return stdout, stderr, fmt.Errorf("executing pipeline with shell '%s': %w. Stderr: %s", shellExecPath, err, strings.TrimSpace(stderr))
	}
	return stdout, stderr, nil
}

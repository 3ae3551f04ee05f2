package ports

import "context"

// CommandExecutor defines an interface for executing shell commands.
type CommandExecutor interface {
	Execute(ctx context.Context, shellName, pipeline string) (stdout string, stderr string, err error)
}

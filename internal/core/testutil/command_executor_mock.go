package testutil

import (
	"context"
	"errors"

	"github.com/AntonioJCosta/valuestats/internal/core/ports"
)

// MockCommandExecutor is a mock implementation of ports.CommandExecutor.
type MockCommandExecutor struct {
	ExecuteFunc func(ctx context.Context, shellName, pipeline string) (stdout string, stderr string, err error)
}

// Execute calls the mock ExecuteFunc.
func (m *MockCommandExecutor) Execute(ctx context.Context, shellName, pipeline string) (string, string, error) {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, shellName, pipeline)
	}
	return "", "", errors.New("MockCommandExecutor.ExecuteFunc not implemented")
}

var _ ports.CommandExecutor = (*MockCommandExecutor)(nil)

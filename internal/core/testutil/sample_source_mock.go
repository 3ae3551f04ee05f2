package testutil

import (
	"context"

	"github.com/AntonioJCosta/valuestats/internal/core/ports"
)

// MockSampleSource is a mock implementation of the ports.SampleSource interface.
type MockSampleSource struct {
	SamplesFunc          func(ctx context.Context) ([]int, error)
	SourceIdentifierFunc func() string
}

// Samples mocks the Samples method.
func (m *MockSampleSource) Samples(ctx context.Context) ([]int, error) {
	if m.SamplesFunc != nil {
		return m.SamplesFunc(ctx)
	}
	return nil, nil
}

// SourceIdentifier mocks the SourceIdentifier method.
func (m *MockSampleSource) SourceIdentifier() string {
	if m.SourceIdentifierFunc != nil {
		return m.SourceIdentifierFunc()
	}
	return ""
}

var _ ports.SampleSource = (*MockSampleSource)(nil)

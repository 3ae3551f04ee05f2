package statistics

import (
	"context"
	"fmt"

	"github.com/AntonioJCosta/valuestats/internal/core/domain/frequency"
	"github.com/AntonioJCosta/valuestats/internal/core/ports"
)

type service struct {
	tableOptions []frequency.Option
}

// NewService creates a new statistics service.
// tableOptions are applied to every table the service builds.
func NewService(tableOptions ...frequency.Option) ports.StatisticsService {
	return &service{tableOptions: tableOptions}
}

// Collect reads all samples from source and counts them in a new table.
// It panics if source is nil.
func (s *service) Collect(ctx context.Context, source ports.SampleSource) (*frequency.Table, error) {
	if source == nil {
		panic("sample source cannot be nil")
	}

	samples, err := source.Samples(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read samples from %s: %w", source.SourceIdentifier(), err)
	}

	table := frequency.NewTable(s.tableOptions...)
	for _, v := range samples {
		table.AddValue(v)
	}
	return table, nil
}

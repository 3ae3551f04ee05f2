package ports

import (
	"context"

	"github.com/AntonioJCosta/valuestats/internal/core/domain/frequency"
)

// StatisticsService defines the contract for building frequency tables from sample sources.
type StatisticsService interface {
	// Collect reads every sample from source into a fresh table.
	Collect(ctx context.Context, source SampleSource) (*frequency.Table, error)
}

package ports

import "context"

/*
SampleSource defines the contract for anything that can produce integer samples
to be counted. This is a driven port, implemented by file, history and Redis
adapters.
*/
type SampleSource interface {
	// Samples returns every sample the source currently holds, in source order.
	Samples(ctx context.Context) ([]int, error)

	// SourceIdentifier returns a short, user-friendly description of where samples come from.
	SourceIdentifier() string
}

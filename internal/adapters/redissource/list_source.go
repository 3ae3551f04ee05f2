package redissource

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/go-redis/redis"

	"github.com/AntonioJCosta/valuestats/internal/adapters/samples"
)

// DefaultBatchSize is how many list elements are fetched per LRANGE call.
const DefaultBatchSize = 1000

// Options configures the Redis connection used by NewListSource.
type Options struct {
	Addr      string
	Password  string
	DB        int
	BatchSize int64
}

// listRanger is the subset of the redis client ListSource needs.
type listRanger interface {
	LRange(key string, start, stop int64) *redis.StringSliceCmd
}

/*
ListSource reads integer samples stored as the elements of a Redis list.
It implements the ports.SampleSource interface.
*/
type ListSource struct {
	client      listRanger
	closer      func() error
	addr        string
	key         string
	batchSize   int64
	skipInvalid bool
	warnings    io.Writer
}

// NewListSource connects to Redis and checks the connection with PING.
func NewListSource(opts Options, key string, skipInvalid bool) (*ListSource, error) {
	if key == "" {
		return nil, fmt.Errorf("redis list key cannot be empty")
	}
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping().Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connecting to redis at %s: %w", opts.Addr, err)
	}

	src := newListSource(client, opts.Addr, key, opts.BatchSize, skipInvalid)
	src.closer = client.Close
	return src, nil
}

func newListSource(client listRanger, addr, key string, batchSize int64, skipInvalid bool) *ListSource {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &ListSource{
		client:      client,
		addr:        addr,
		key:         key,
		batchSize:   batchSize,
		skipInvalid: skipInvalid,
		warnings:    os.Stderr,
	}
}

// SetWarningOutput redirects skipped-element warnings, which default to os.Stderr.
func (s *ListSource) SetWarningOutput(w io.Writer) {
	s.warnings = w
}

// SourceIdentifier implements the ports.SampleSource interface.
func (s *ListSource) SourceIdentifier() string {
	return fmt.Sprintf("Redis: %s list %q", s.addr, s.key)
}

// Samples implements the ports.SampleSource interface.
func (s *ListSource) Samples(ctx context.Context) ([]int, error) {
	values := []int{}
	for start := int64(0); ; start += s.batchSize {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		elems, err := s.client.LRange(s.key, start, start+s.batchSize-1).Result()
		if err != nil {
			return nil, fmt.Errorf("LRANGE %s %d: %w", s.key, start, err)
		}

		for i, elem := range elems {
			v, err := samples.Parse(elem)
			if err != nil {
				if s.skipInvalid {
					fmt.Fprintf(s.warnings, "Warning: skipping %v at index %d of %s\n", err, start+int64(i), s.key)
					continue
				}
				return nil, fmt.Errorf("index %d: %w", start+int64(i), err)
			}
			values = append(values, v)
		}

		if int64(len(elems)) < s.batchSize {
			return values, nil
		}
	}
}

// Close releases the Redis connection, if this source owns one.
func (s *ListSource) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer()
}

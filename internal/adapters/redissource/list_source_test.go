package redissource

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/go-redis/redis"

	"github.com/AntonioJCosta/valuestats/internal/adapters/samples"
)

// fakeList serves LRANGE from an in-memory slice.
type fakeList struct {
	elems []string
	err   error
	calls int
}

func (f *fakeList) LRange(key string, start, stop int64) *redis.StringSliceCmd {
	f.calls++
	if f.err != nil {
		return redis.NewStringSliceResult(nil, f.err)
	}
	n := int64(len(f.elems))
	if start >= n {
		return redis.NewStringSliceResult([]string{}, nil)
	}
	if stop >= n {
		stop = n - 1
	}
	return redis.NewStringSliceResult(f.elems[start:stop+1], nil)
}

func TestListSource_Samples(t *testing.T) {
	tests := []struct {
		name              string
		list              *fakeList
		batchSize         int64
		skipInvalid       bool
		want              []int
		wantCalls         int
		wantErr           bool
		wantErrorContains string
		wantWarning       string
	}{
		{
			name:      "single batch",
			list:      &fakeList{elems: []string{"3", "3", "7"}},
			batchSize: 10,
			want:      []int{3, 3, 7},
			wantCalls: 1,
		},
		{
			name:      "several batches with exact multiple",
			list:      &fakeList{elems: []string{"1", "2", "3", "4"}},
			batchSize: 2,
			want:      []int{1, 2, 3, 4},
			wantCalls: 3,
		},
		{
			name:      "missing key is an empty list",
			list:      &fakeList{},
			batchSize: 0,
			want:      []int{},
			wantCalls: 1,
		},
		{
			name:              "invalid element",
			list:              &fakeList{elems: []string{"1", "x"}},
			batchSize:         10,
			wantErr:           true,
			wantErrorContains: `index 1: invalid sample "x"`,
		},
		{
			name:        "invalid element skipped",
			list:        &fakeList{elems: []string{"1", "x", "-2"}},
			batchSize:   10,
			skipInvalid: true,
			want:        []int{1, -2},
			wantCalls:   1,
			wantWarning: `Warning: skipping invalid sample "x" at index 1 of samples`,
		},
		{
			name:              "redis error",
			list:              &fakeList{err: errors.New("connection refused")},
			batchSize:         10,
			wantErr:           true,
			wantErrorContains: "LRANGE samples 0: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var warnings bytes.Buffer
			src := newListSource(tt.list, "localhost:6379", "samples", tt.batchSize, tt.skipInvalid)
			src.SetWarningOutput(&warnings)

			got, err := src.Samples(context.Background())
			if (err != nil) != tt.wantErr {
				t.Fatalf("Samples() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !strings.Contains(err.Error(), tt.wantErrorContains) {
					t.Errorf("Samples() error = %q, want error containing %q", err.Error(), tt.wantErrorContains)
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Samples() = %v, want %v", got, tt.want)
			}
			if tt.list.calls != tt.wantCalls {
				t.Errorf("LRANGE calls = %d, want %d", tt.list.calls, tt.wantCalls)
			}
			if tt.wantWarning == "" && warnings.Len() > 0 {
				t.Errorf("warnings = %q, want none", warnings.String())
			}
			if tt.wantWarning != "" && !strings.Contains(warnings.String(), tt.wantWarning) {
				t.Errorf("warnings = %q, want to contain %q", warnings.String(), tt.wantWarning)
			}
		})
	}
}

func TestListSource_InvalidElementIsSentinel(t *testing.T) {
	src := newListSource(&fakeList{elems: []string{"1.5"}}, "", "k", 10, false)
	_, err := src.Samples(context.Background())
	if !errors.Is(err, samples.ErrInvalidSample) {
		t.Errorf("Samples() error = %v, want samples.ErrInvalidSample", err)
	}
}

func TestListSource_SourceIdentifierAndClose(t *testing.T) {
	src := newListSource(&fakeList{}, "cache:6379", "latencies", 0, false)
	if got, want := src.SourceIdentifier(), `Redis: cache:6379 list "latencies"`; got != want {
		t.Errorf("SourceIdentifier() = %q, want %q", got, want)
	}
	if src.batchSize != DefaultBatchSize {
		t.Errorf("batchSize = %d, want %d", src.batchSize, DefaultBatchSize)
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() on source without connection = %v, want nil", err)
	}
}

func TestNewListSource_EmptyKey(t *testing.T) {
	if _, err := NewListSource(Options{Addr: "localhost:6379"}, "", false); err == nil {
		t.Error("NewListSource() with empty key expected error, got nil")
	}
}

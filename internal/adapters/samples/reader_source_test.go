package samples

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		token   string
		want    int
		wantErr bool
	}{
		{"42", 42, false},
		{"-7", -7, false},
		{" 0 ", 0, false},
		{"3.5", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := Parse(tt.token)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.token, err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidSample) {
				t.Errorf("Parse(%q) error = %v, want ErrInvalidSample", tt.token, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %d, want %d", tt.token, got, tt.want)
			}
		})
	}
}

func TestReaderSource_Samples(t *testing.T) {
	tests := []struct {
		name              string
		input             string
		skipInvalid       bool
		want              []int
		wantErr           bool
		wantErrorContains string
		wantWarning       string
	}{
		{
			name:  "one sample per line",
			input: "3\n3\n7\n",
			want:  []int{3, 3, 7},
		},
		{
			name:  "several samples per line and blank lines",
			input: "1 2\t3\n\n  -4  \n",
			want:  []int{1, 2, 3, -4},
		},
		{
			name:  "empty input",
			input: "",
			want:  []int{},
		},
		{
			name:              "invalid token fails with line number",
			input:             "1\n2 x\n",
			wantErr:           true,
			wantErrorContains: `line 2: invalid sample "x"`,
		},
		{
			name:        "invalid token skipped with warning",
			input:       "1\nfoo 2\n",
			skipInvalid: true,
			want:        []int{1, 2},
			wantWarning: `Warning: skipping invalid sample "foo" on line 2 of test`,
		},
		{
			name:              "line numbers count blank and crlf lines",
			input:             "1\r\n\r\n\n 2\n3 bad\n",
			wantErr:           true,
			wantErrorContains: `line 5: invalid sample "bad"`,
		},
		{
			name:  "single line longer than 64 KiB",
			input: strings.Repeat("7 ", 40000) + "\n",
			want:  repeatedSample(7, 40000),
		},
		{
			name:              "invalid token after a long line keeps its line number",
			input:             strings.Repeat("1 ", 40000) + "\n2\nnope",
			wantErr:           true,
			wantErrorContains: `line 3: invalid sample "nope"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var warnings bytes.Buffer
			src := NewReaderSource(strings.NewReader(tt.input), "test", tt.skipInvalid)
			src.SetWarningOutput(&warnings)

			got, err := src.Samples(context.Background())
			if (err != nil) != tt.wantErr {
				t.Fatalf("Samples() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !strings.Contains(err.Error(), tt.wantErrorContains) {
					t.Errorf("Samples() error = %q, want error containing %q", err.Error(), tt.wantErrorContains)
				}
				if !errors.Is(err, ErrInvalidSample) {
					t.Errorf("Samples() error = %v, want ErrInvalidSample in chain", err)
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Samples() = %v, want %v", got, tt.want)
			}
			if tt.wantWarning != "" && !strings.Contains(warnings.String(), tt.wantWarning) {
				t.Errorf("warnings = %q, want to contain %q", warnings.String(), tt.wantWarning)
			}
		})
	}
}

func TestReaderSource_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewReaderSource(strings.NewReader("1\n"), "test", false).Samples(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Samples() error = %v, want context.Canceled", err)
	}
}

func TestNewFileSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "samples.txt")
	if err := os.WriteFile(path, []byte("5\n5\n-1\n"), 0o644); err != nil {
		t.Fatalf("failed to write samples file: %v", err)
	}

	t.Run("empty path", func(t *testing.T) {
		if _, err := NewFileSource("", false); err == nil {
			t.Error("NewFileSource(\"\") expected error, got nil")
		}
	})

	t.Run("stdin", func(t *testing.T) {
		src, err := NewFileSource(StdinName, false)
		if err != nil {
			t.Fatalf("NewFileSource(-) unexpected error = %v", err)
		}
		if got := src.SourceIdentifier(); got != "Stdin" {
			t.Errorf("SourceIdentifier() = %q, want %q", got, "Stdin")
		}
	})

	t.Run("existing file", func(t *testing.T) {
		src, err := NewFileSource(path, false)
		if err != nil {
			t.Fatalf("NewFileSource() unexpected error = %v", err)
		}
		if got, want := src.SourceIdentifier(), "File: "+path; got != want {
			t.Errorf("SourceIdentifier() = %q, want %q", got, want)
		}
		got, err := src.Samples(context.Background())
		if err != nil {
			t.Fatalf("Samples() unexpected error = %v", err)
		}
		if want := []int{5, 5, -1}; !reflect.DeepEqual(got, want) {
			t.Errorf("Samples() = %v, want %v", got, want)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		src, err := NewFileSource(filepath.Join(dir, "nope.txt"), false)
		if err != nil {
			t.Fatalf("NewFileSource() unexpected error = %v", err)
		}
		_, err = src.Samples(context.Background())
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("Samples() error = %v, want os.ErrNotExist", err)
		}
	})
}

func repeatedSample(v, n int) []int {
	values := make([]int, n)
	for i := range values {
		values[i] = v
	}
	return values
}

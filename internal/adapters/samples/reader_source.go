package samples

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/AntonioJCosta/valuestats/internal/core/ports"
)

// ErrInvalidSample is returned when a token cannot be parsed as an integer sample.
var ErrInvalidSample = errors.New("invalid sample")

// StdinName is the file name that selects standard input.
const StdinName = "-"

// Parse converts a single token into a sample.
func Parse(token string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrInvalidSample, token)
	}
	return v, nil
}

/*
ReaderSource reads whitespace-separated integer samples from an io.Reader.
It implements the ports.SampleSource interface.
*/
type ReaderSource struct {
	open        func() (io.ReadCloser, error)
	name        string
	skipInvalid bool
	warnings    io.Writer
}

// NewReaderSource creates a source over r. name is used in messages only.
// With skipInvalid, unparsable tokens are reported as warnings and ignored.
func NewReaderSource(r io.Reader, name string, skipInvalid bool) *ReaderSource {
	return &ReaderSource{
		open:        func() (io.ReadCloser, error) { return io.NopCloser(r), nil },
		name:        name,
		skipInvalid: skipInvalid,
		warnings:    os.Stderr,
	}
}

// NewFileSource creates a source reading the file at path, or stdin when path is "-".
// The file is opened on each call to Samples.
func NewFileSource(path string, skipInvalid bool) (ports.SampleSource, error) {
	if path == "" {
		return nil, fmt.Errorf("sample file path cannot be empty")
	}
	if path == StdinName {
		return NewReaderSource(os.Stdin, "stdin", skipInvalid), nil
	}
	return &ReaderSource{
		open:        func() (io.ReadCloser, error) { return os.Open(path) },
		name:        path,
		skipInvalid: skipInvalid,
		warnings:    os.Stderr,
	}, nil
}

// SetWarningOutput redirects skipped-token warnings, which default to os.Stderr.
func (s *ReaderSource) SetWarningOutput(w io.Writer) {
	s.warnings = w
}

// SourceIdentifier implements the ports.SampleSource interface.
func (s *ReaderSource) SourceIdentifier() string {
	if s.name == "stdin" {
		return "Stdin"
	}
	return fmt.Sprintf("File: %s", s.name)
}

// Samples implements the ports.SampleSource interface.
func (s *ReaderSource) Samples(ctx context.Context) ([]int, error) {
	rc, err := s.open()
	if err != nil {
		return nil, fmt.Errorf("opening samples: %w", err)
	}
	defer rc.Close()

	values := []int{}
	lineNo := 1
	scanner := bufio.NewScanner(rc)
	scanner.Split(scanTokens(&lineNo))
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		v, err := Parse(scanner.Text())
		if err != nil {
			if s.skipInvalid {
				fmt.Fprintf(s.warnings, "Warning: skipping %v on line %d of %s\n", err, lineNo, s.name)
				continue
			}
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		values = append(values, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.name, err)
	}
	return values, nil
}

/*
scanTokens splits input into whitespace-separated tokens like bufio.ScanWords,
so line length is unbounded and only a single token must fit the scanner
buffer. Newlines consumed between tokens are counted into lineNo.
*/
func scanTokens(lineNo *int) bufio.SplitFunc {
	return func(data []byte, atEOF bool) (int, []byte, error) {
		// Leading whitespace is consumed on its own so every newline is counted once.
		skipped := 0
		for skipped < len(data) {
			r, width := utf8.DecodeRune(data[skipped:])
			if !unicode.IsSpace(r) {
				break
			}
			if r == '\n' {
				*lineNo++
			}
			skipped += width
		}
		if skipped > 0 {
			return skipped, nil, nil
		}

		for i := 0; i < len(data); {
			r, width := utf8.DecodeRune(data[i:])
			if unicode.IsSpace(r) {
				return i, data[:i], nil
			}
			i += width
		}
		if atEOF && len(data) > 0 {
			return len(data), data, nil
		}
		return 0, nil, nil
	}
}

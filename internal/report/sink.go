// Package report formats correction and analysis results into the
// human-readable results text and writes it through a sink chosen once at
// startup. The pipelines themselves never decide whether output is enabled;
// callers that do not want a results file pass Discard.
package report

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Sink receives formatted result sections.
type Sink interface {
	WriteSection(lines ...string) error
	Close() error
}

// FileSink writes result sections to a text file.
type FileSink struct {
	f *os.File
	w *bufio.Writer
}

// NewFileSink creates (or truncates) the results file at path.
func NewFileSink(path string) (*FileSink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating results file: %w", err)
	}
	return &FileSink{f: f, w: bufio.NewWriter(f)}, nil
}

// WriteSection writes each line followed by a newline.
func (s *FileSink) WriteSection(lines ...string) error {
	for _, line := range lines {
		if _, err := s.w.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("writing results file: %w", err)
		}
	}
	return nil
}

// Close flushes and closes the underlying file.
func (s *FileSink) Close() error {
	if err := s.w.Flush(); err != nil {
		s.f.Close()
		return fmt.Errorf("flushing results file: %w", err)
	}
	return s.f.Close()
}

// Discard is the disabled sink; every write is a no-op.
type Discard struct{}

func (Discard) WriteSection(...string) error { return nil }
func (Discard) Close() error                 { return nil }

// Buffer collects the results text in memory, for display in the viewer.
type Buffer struct {
	b strings.Builder
}

func (s *Buffer) WriteSection(lines ...string) error {
	for _, line := range lines {
		s.b.WriteString(line)
		s.b.WriteByte('\n')
	}
	return nil
}

func (s *Buffer) Close() error { return nil }

// String returns everything written so far.
func (s *Buffer) String() string { return s.b.String() }

// MultiSink fans every section out to each sink in order.
func MultiSink(sinks ...Sink) Sink { return multiSink(sinks) }

type multiSink []Sink

func (m multiSink) WriteSection(lines ...string) error {
	for _, s := range m {
		if err := s.WriteSection(lines...); err != nil {
			return err
		}
	}
	return nil
}

func (m multiSink) Close() error {
	var first error
	for _, s := range m {
		if err := s.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

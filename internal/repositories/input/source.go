package input

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/AntonioJCosta/wordfreq/internal/core/domain/document"
	"github.com/AntonioJCosta/wordfreq/internal/core/domain/report"
	"github.com/AntonioJCosta/wordfreq/internal/core/ports"
	"github.com/cheggaaa/pb/v3"
)

/*
Source reads input text from a named file or from standard input.
It implements the ports.InputSource interface.
*/
type Source struct {
	stdin      io.Reader
	extractors ports.TextExtractorProvider
	progress   io.Writer // nil disables the progress bar
}

// NewSource creates a new Source. progress, when non-nil, receives a progress bar
// while a file of known size is read.
func NewSource(stdin io.Reader, extractors ports.TextExtractorProvider, progress io.Writer) ports.InputSource {
	if extractors == nil {
		panic("extractors cannot be nil")
	}
	return &Source{
		stdin:      stdin,
		extractors: extractors,
		progress:   progress,
	}
}

// ReadText implements the ports.InputSource interface.
// The whole input is held in memory before it is returned.
func (s *Source) ReadText(path string, kind document.Kind) (string, error) {
	name := displayName(path)
	resolved := kind.Resolve(path)

	extractor, err := s.extractors.ExtractorFor(resolved)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", report.ErrInputAcquisition, name, err)
	}

	r, closeFn, err := s.open(path)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read %s: %w", report.ErrInputAcquisition, name, err)
	}
	defer closeFn()

	text, err := extractor.Extract(r)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read %s as %s: %w", report.ErrInputAcquisition, name, resolved, err)
	}
	if !utf8.ValidString(text) {
		return "", fmt.Errorf("%w: %s is not valid UTF-8", report.ErrInputAcquisition, name)
	}
	return text, nil
}

// open returns a reader for path and a function releasing it.
func (s *Source) open(path string) (io.Reader, func(), error) {
	if isStdin(path) {
		if s.stdin == nil {
			return nil, nil, fmt.Errorf("standard input is not available")
		}
		return s.stdin, func() {}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	if info.IsDir() {
		f.Close()
		return nil, nil, fmt.Errorf("%s is a directory", path)
	}

	if s.progress == nil || info.Size() == 0 {
		return f, func() { f.Close() }, nil
	}

	bar := pb.New64(info.Size()).SetWriter(s.progress)
	bar.Set(pb.Bytes, true)
	bar.Start()
	return bar.NewProxyReader(f), func() {
		bar.Finish()
		f.Close()
	}, nil
}

func isStdin(path string) bool {
	return path == "" || path == "-"
}

func displayName(path string) string {
	if isStdin(path) {
		return "stdin"
	}
	return path
}

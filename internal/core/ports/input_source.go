package ports

import "github.com/AntonioJCosta/wordfreq/internal/core/domain/document"

/*
InputSource acquires the whole input text in memory before counting starts.
This is a driven port, typically implemented by a repository reading files or stdin.
*/
type InputSource interface {
	// ReadText reads path ("" or "-" for stdin) and extracts text according to kind.
	// Failures wrap report.ErrInputAcquisition and name the failing path.
	ReadText(path string, kind document.Kind) (string, error)
}

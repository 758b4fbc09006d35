/*
Package settings defines the persistent configuration loaded from the settings file.
*/
package settings

import (
	"fmt"

	"github.com/AntonioJCosta/wordfreq/internal/core/domain/document"
	"github.com/AntonioJCosta/wordfreq/internal/core/domain/report"
)

// DefaultMaxBodyBytes caps API request bodies when nothing else is configured.
const DefaultMaxBodyBytes int64 = 10 << 20

// Server holds the HTTP API settings.
type Server struct {
	Addr         string `yaml:"addr"`
	MaxBodyBytes int64  `yaml:"max_body_bytes"`
}

/*
Settings is the full set of configurable defaults. Report options are inlined so
the file reads as a flat list of counting options plus a server section.
*/
type Settings struct {
	Report            report.Options `yaml:",inline"`
	InputFormat       document.Kind  `yaml:"input_format"`
	PdftotextFallback bool           `yaml:"pdftotext_fallback"`
	Server            Server         `yaml:"server"`
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		Report:            report.DefaultOptions(),
		InputFormat:       document.KindAuto,
		PdftotextFallback: true,
		Server: Server{
			Addr:         ":8090",
			MaxBodyBytes: DefaultMaxBodyBytes,
		},
	}
}

// Validate checks the settings and returns them normalized.
func (s Settings) Validate() (Settings, error) {
	opts, err := s.Report.Validate()
	if err != nil {
		return s, err
	}
	s.Report = opts

	kind, err := document.ParseKind(string(s.InputFormat))
	if err != nil {
		return s, fmt.Errorf("%w: %v", report.ErrInvalidOption, err)
	}
	s.InputFormat = kind

	if s.Server.Addr == "" {
		return s, fmt.Errorf("%w: server address cannot be empty", report.ErrInvalidOption)
	}
	if s.Server.MaxBodyBytes <= 0 {
		return s, fmt.Errorf("%w: server max body bytes must be positive, got %d", report.ErrInvalidOption, s.Server.MaxBodyBytes)
	}
	return s, nil
}

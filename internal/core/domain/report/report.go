/*
Package report defines the options that control a single counting run and the
errors a run can surface.
*/
package report

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInputAcquisition indicates the input could not be read or is not valid text.
	ErrInputAcquisition = errors.New("input acquisition failed")
	// ErrSerialization indicates an entry could not be encoded in the chosen format.
	ErrSerialization = errors.New("serialization failed")
	// ErrInvalidOption indicates a configuration value is out of range or unknown.
	ErrInvalidOption = errors.New("invalid option")
)

// SortMode selects the total order applied to entries.
type SortMode string

const (
	// SortByCount orders by descending count, ties broken by ascending word.
	SortByCount SortMode = "count"
	// SortAlpha orders by ascending word only.
	SortAlpha SortMode = "alpha"
)

// Format selects the rendered representation of a report.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatCSV   Format = "csv"
	FormatGrid  Format = "grid"
	FormatYAML  Format = "yaml"
)

// Formats lists every output format in display order.
var Formats = []Format{FormatTable, FormatJSON, FormatCSV, FormatGrid, FormatYAML}

/*
Options is the immutable value set for one pipeline run.
A Top of 0 means unlimited.
*/
type Options struct {
	IgnoreCase bool     `yaml:"ignore_case"`
	MinLength  int      `yaml:"min_len"`
	Top        int      `yaml:"top"`
	SortBy     SortMode `yaml:"sort_by"`
	Format     Format   `yaml:"format"`
	Pretty     bool     `yaml:"pretty"`
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		IgnoreCase: true,
		MinLength:  1,
		Top:        0,
		SortBy:     SortByCount,
		Format:     FormatTable,
		Pretty:     false,
	}
}

// ParseSortMode validates a user supplied sort mode name.
func ParseSortMode(s string) (SortMode, error) {
	switch m := SortMode(strings.ToLower(strings.TrimSpace(s))); m {
	case SortByCount, SortAlpha:
		return m, nil
	}
	return "", fmt.Errorf("%w: unknown sort mode %q (want count or alpha)", ErrInvalidOption, s)
}

// ParseFormat validates a user supplied output format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: unknown output format %q", ErrInvalidOption, s)
}

// Validate checks every field and returns the normalized options.
func (o Options) Validate() (Options, error) {
	if o.MinLength < 0 {
		return o, fmt.Errorf("%w: min length must not be negative, got %d", ErrInvalidOption, o.MinLength)
	}
	if o.Top < 0 {
		return o, fmt.Errorf("%w: top must not be negative, got %d", ErrInvalidOption, o.Top)
	}
	mode, err := ParseSortMode(string(o.SortBy))
	if err != nil {
		return o, err
	}
	format, err := ParseFormat(string(o.Format))
	if err != nil {
		return o, err
	}
	o.SortBy = mode
	o.Format = format
	return o, nil
}

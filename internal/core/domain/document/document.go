/*
Package document describes the kinds of input documents text can be extracted from.
*/
package document

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Kind identifies how raw input bytes are turned into text.
type Kind string

const (
	KindAuto     Kind = "auto"
	KindText     Kind = "text"
	KindMarkdown Kind = "markdown"
	KindHTML     Kind = "html"
	KindPDF      Kind = "pdf"
	KindDOCX     Kind = "docx"
)

// Kinds lists every accepted kind in display order.
var Kinds = []Kind{KindAuto, KindText, KindMarkdown, KindHTML, KindPDF, KindDOCX}

var extensionKinds = map[string]Kind{
	".txt":      KindText,
	".text":     KindText,
	".md":       KindMarkdown,
	".markdown": KindMarkdown,
	".html":     KindHTML,
	".htm":      KindHTML,
	".pdf":      KindPDF,
	".docx":     KindDOCX,
}

// ParseKind validates a user supplied kind name. The empty string means auto.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if k == "" {
		return KindAuto, nil
	}
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown input format %q (want one of %s)", s, joinKinds())
}

// Resolve turns KindAuto into a concrete kind using the file extension of path.
// Unknown extensions and stdin ("" or "-") resolve to plain text.
func (k Kind) Resolve(path string) Kind {
	if k != KindAuto && k != "" {
		return k
	}
	if kind, ok := extensionKinds[strings.ToLower(filepath.Ext(path))]; ok {
		return kind
	}
	return KindText
}

func joinKinds() string {
	names := make([]string, len(Kinds))
	for i, k := range Kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

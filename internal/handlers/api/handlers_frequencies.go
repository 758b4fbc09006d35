package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"unicode/utf8"

	"github.com/AntonioJCosta/wordfreq/internal/core/domain/document"
	"github.com/AntonioJCosta/wordfreq/internal/core/domain/report"
)

// mediaKinds maps request Content-Types to document kinds when input_format is auto.
var mediaKinds = map[string]document.Kind{
	"text/plain":      document.KindText,
	"text/markdown":   document.KindMarkdown,
	"text/x-markdown": document.KindMarkdown,
	"text/html":       document.KindHTML,
	"application/pdf": document.KindPDF,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": document.KindDOCX,
}

func (s *Server) handleFrequencies(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.settings.Server.MaxBodyBytes)

	opts, kind, err := s.requestOptions(r.URL.Query())
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if kind == document.KindAuto {
		kind = kindForContentType(r.Header.Get("Content-Type"))
	}

	extractor, err := s.extractors.ExtractorFor(kind)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	text, err := extractor.Extract(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			jsonError(w, fmt.Sprintf("body exceeds max size (%d bytes)", maxErr.Limit), http.StatusRequestEntityTooLarge)
			return
		}
		jsonError(w, fmt.Sprintf("could not read %s input: %v", kind, err), http.StatusBadRequest)
		return
	}
	if !utf8.ValidString(text) {
		jsonError(w, "input is not valid UTF-8", http.StatusBadRequest)
		return
	}

	contentType, err := s.service.ContentType(opts)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	out, err := s.service.Report(text, opts)
	if err != nil {
		s.log.Error("render failed", "format", opts.Format, "error", err)
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Write(out)
}

// requestOptions applies query parameters over the configured defaults.
func (s *Server) requestOptions(q url.Values) (report.Options, document.Kind, error) {
	opts := s.settings.Report
	kind := s.settings.InputFormat

	if v := q.Get("format"); v != "" {
		opts.Format = report.Format(v)
	}
	if v := q.Get("sort_by"); v != "" {
		opts.SortBy = report.SortMode(v)
	}
	if v := q.Get("top"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, kind, fmt.Errorf("%w: top must be an integer, got %q", report.ErrInvalidOption, v)
		}
		opts.Top = n
	}
	if v := q.Get("min_len"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, kind, fmt.Errorf("%w: min_len must be an integer, got %q", report.ErrInvalidOption, v)
		}
		opts.MinLength = n
	}
	for name, dst := range map[string]*bool{"ignore_case": &opts.IgnoreCase, "pretty": &opts.Pretty} {
		if v := q.Get(name); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return opts, kind, fmt.Errorf("%w: %s must be a boolean, got %q", report.ErrInvalidOption, name, v)
			}
			*dst = b
		}
	}
	if v := q.Get("input_format"); v != "" {
		k, err := document.ParseKind(v)
		if err != nil {
			return opts, kind, fmt.Errorf("%w: %v", report.ErrInvalidOption, err)
		}
		kind = k
	}

	validated, err := opts.Validate()
	if err != nil {
		return opts, kind, err
	}
	return validated, kind, nil
}

func kindForContentType(contentType string) document.Kind {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return document.KindText
	}
	if kind, ok := mediaKinds[mediaType]; ok {
		return kind
	}
	return document.KindText
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

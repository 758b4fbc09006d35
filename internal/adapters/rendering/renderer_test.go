package rendering

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/AntonioJCosta/wordfreq/internal/core/domain/frequency"
	"github.com/AntonioJCosta/wordfreq/internal/core/domain/report"
	"github.com/AntonioJCosta/wordfreq/internal/core/ports"
	"gopkg.in/yaml.v3"
)

var sample = []frequency.Entry{
	{Word: "the", Count: 12},
	{Word: "extraordinary", Count: 3},
	{Word: "ñu", Count: 1},
}

func TestRegistry_RendererFor(t *testing.T) {
	reg := NewRegistry()

	tests := []struct {
		format report.Format
		pretty bool
		want   ports.Renderer
	}{
		{report.FormatTable, false, &TableRenderer{}},
		{report.FormatJSON, false, &JSONRenderer{}},
		{report.FormatJSON, true, &JSONRenderer{Pretty: true}},
		{report.FormatCSV, false, &CSVRenderer{}},
		{report.FormatGrid, false, &GridRenderer{}},
		{report.FormatYAML, false, &YAMLRenderer{}},
	}
	for _, tt := range tests {
		got, err := reg.RendererFor(tt.format, tt.pretty)
		if err != nil {
			t.Errorf("RendererFor(%q) unexpected error: %v", tt.format, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("RendererFor(%q, %v) = %#v, want %#v", tt.format, tt.pretty, got, tt.want)
		}
	}

	if _, err := reg.RendererFor("xml", false); !errors.Is(err, report.ErrInvalidOption) {
		t.Errorf("RendererFor(xml) error = %v, want ErrInvalidOption", err)
	}
}

func TestTableRenderer_Render(t *testing.T) {
	tests := []struct {
		name    string
		entries []frequency.Entry
		want    string
	}{
		{
			name:    "empty sequence renders placeholder only",
			entries: nil,
			want:    "No entries found.\n",
		},
		{
			name:    "short words use the header width",
			entries: []frequency.Entry{{Word: "a", Count: 2}, {Word: "be", Count: 1}},
			want: "WORD COUNT\n" +
				"---- -----\n" +
				"a    2\n" +
				"be   1\n",
		},
		{
			name:    "long word widens the column",
			entries: []frequency.Entry{{Word: "hello", Count: 3}},
			want: "WORD  COUNT\n" +
				"----- -----\n" +
				"hello 3\n",
		},
		{
			name:    "accented letters are one cell wide",
			entries: []frequency.Entry{{Word: "ééééé", Count: 1}, {Word: "x", Count: 10}},
			want: "WORD  COUNT\n" +
				"----- -----\n" +
				"ééééé 1\n" +
				"x     10\n",
		},
		{
			name:    "wide characters count as two cells",
			entries: []frequency.Entry{{Word: "日本語", Count: 2}, {Word: "abcde", Count: 1}},
			want: "WORD   COUNT\n" +
				"------ -----\n" +
				"日本語 2\n" +
				"abcde  1\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := (&TableRenderer{}).Render(tt.entries)
			if err != nil {
				t.Fatalf("Render() unexpected error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Render() =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestJSONRenderer_Render(t *testing.T) {
	compact, err := (&JSONRenderer{}).Render(sample)
	if err != nil {
		t.Fatalf("compact Render() unexpected error: %v", err)
	}
	wantCompact := `[{"word":"the","count":12},{"word":"extraordinary","count":3},{"word":"ñu","count":1}]` + "\n"
	if string(compact) != wantCompact {
		t.Errorf("compact Render() = %q, want %q", compact, wantCompact)
	}

	pretty, err := (&JSONRenderer{Pretty: true}).Render(sample)
	if err != nil {
		t.Fatalf("pretty Render() unexpected error: %v", err)
	}
	if !strings.Contains(string(pretty), "\n  {\n    \"word\": \"the\",\n    \"count\": 12\n  },") {
		t.Errorf("pretty Render() is not indented:\n%s", pretty)
	}

	// Both sub-modes round trip to the same ordered entries.
	for name, out := range map[string][]byte{"compact": compact, "pretty": pretty} {
		var back []frequency.Entry
		if err := json.Unmarshal(out, &back); err != nil {
			t.Fatalf("%s output does not parse: %v", name, err)
		}
		if !reflect.DeepEqual(back, sample) {
			t.Errorf("%s round trip = %v, want %v", name, back, sample)
		}
	}
}

func TestJSONRenderer_RenderEmpty(t *testing.T) {
	got, err := (&JSONRenderer{}).Render(nil)
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	if string(got) != "[]\n" {
		t.Errorf("Render(nil) = %q, want %q", got, "[]\n")
	}
}

func TestJSONRenderer_DoesNotEscapeHTML(t *testing.T) {
	got, err := (&JSONRenderer{}).Render([]frequency.Entry{{Word: "<b>&", Count: 1}})
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	if !strings.Contains(string(got), `"<b>&"`) {
		t.Errorf("Render() = %s, want raw <b>&", got)
	}
}

func TestCSVRenderer_Render(t *testing.T) {
	entries := []frequency.Entry{
		{Word: "plain", Count: 4},
		{Word: "with,comma", Count: 2},
		{Word: `say "hi"`, Count: 1},
		{Word: "two\nlines", Count: 1},
	}
	got, err := (&CSVRenderer{}).Render(entries)
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	want := "word,count\n" +
		"plain,4\n" +
		"\"with,comma\",2\n" +
		"\"say \"\"hi\"\"\",1\n" +
		"\"two\nlines\",1\n"
	if string(got) != want {
		t.Errorf("Render() =\n%q\nwant\n%q", got, want)
	}

	records, err := csv.NewReader(strings.NewReader(string(got))).ReadAll()
	if err != nil {
		t.Fatalf("output does not parse as CSV: %v", err)
	}
	if len(records) != len(entries)+1 || records[2][0] != "with,comma" || records[4][0] != "two\nlines" {
		t.Errorf("parsed records = %q", records)
	}
}

func TestCSVRenderer_RenderEmpty(t *testing.T) {
	got, err := (&CSVRenderer{}).Render(nil)
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	if string(got) != "word,count\n" {
		t.Errorf("Render(nil) = %q, want header only", got)
	}
}

func TestGridRenderer_Render(t *testing.T) {
	got, err := (&GridRenderer{}).Render(sample)
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	out := string(got)
	for _, want := range []string{"WORD", "COUNT", "extraordinary", "ñu", "12", "+"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() output missing %q:\n%s", want, out)
		}
	}

	empty, err := (&GridRenderer{}).Render(nil)
	if err != nil || string(empty) != EmptyPlaceholder+"\n" {
		t.Errorf("Render(nil) = %q, %v; want placeholder", empty, err)
	}
}

func TestYAMLRenderer_Render(t *testing.T) {
	got, err := (&YAMLRenderer{}).Render(sample)
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	var back []frequency.Entry
	if err := yaml.Unmarshal(got, &back); err != nil {
		t.Fatalf("output does not parse as YAML: %v", err)
	}
	if !reflect.DeepEqual(back, sample) {
		t.Errorf("round trip = %v, want %v", back, sample)
	}

	empty, err := (&YAMLRenderer{}).Render(nil)
	if err != nil || string(empty) != "[]\n" {
		t.Errorf("Render(nil) = %q, %v; want []", empty, err)
	}
}

func TestRenderers_RejectInvalidUTF8(t *testing.T) {
	bad := []frequency.Entry{{Word: "ok", Count: 2}, {Word: "b\xffd", Count: 1}}
	renderers := map[string]ports.Renderer{
		"table": &TableRenderer{},
		"json":  &JSONRenderer{},
		"csv":   &CSVRenderer{},
		"grid":  &GridRenderer{},
		"yaml":  &YAMLRenderer{},
	}
	for name, r := range renderers {
		got, err := r.Render(bad)
		if !errors.Is(err, report.ErrSerialization) {
			t.Errorf("%s Render() error = %v, want ErrSerialization", name, err)
		}
		if got != nil {
			t.Errorf("%s Render() returned partial output %q", name, got)
		}
	}
}

package document

import "testing"

func TestKind_Resolve(t *testing.T) {
	tests := []struct {
		kind Kind
		path string
		want Kind
	}{
		{KindAuto, "notes.md", KindMarkdown},
		{KindAuto, "Page.HTM", KindHTML},
		{KindAuto, "paper.pdf", KindPDF},
		{KindAuto, "report.docx", KindDOCX},
		{KindAuto, "data.log", KindText},
		{KindAuto, "", KindText},
		{KindAuto, "-", KindText},
		{KindHTML, "notes.md", KindHTML},
		{"", "book.markdown", KindMarkdown},
	}
	for _, tt := range tests {
		if got := tt.kind.Resolve(tt.path); got != tt.want {
			t.Errorf("Kind(%q).Resolve(%q) = %q, want %q", tt.kind, tt.path, got, tt.want)
		}
	}
}

func TestParseKind(t *testing.T) {
	if k, err := ParseKind(""); err != nil || k != KindAuto {
		t.Errorf("ParseKind(\"\") = %q, %v; want auto", k, err)
	}
	if k, err := ParseKind("Markdown"); err != nil || k != KindMarkdown {
		t.Errorf("ParseKind(Markdown) = %q, %v", k, err)
	}
	if _, err := ParseKind("rtf"); err == nil {
		t.Error("ParseKind(rtf) expected an error")
	}
}

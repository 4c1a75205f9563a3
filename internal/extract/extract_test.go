package extract_test

import (
	"archive/zip"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/DeyYed/DeyFinder/internal/extract"
)

func TestText_PlainText(t *testing.T) {
	got, err := extract.Text("resume.txt", "text/plain", []byte("Jane Doe\n\nBackend   Engineer"))
	if err != nil {
		t.Fatalf("Text returned unexpected error: %v", err)
	}
	if got != "Jane Doe\nBackend Engineer" {
		t.Errorf("got %q", got)
	}
}

func TestText_ExtensionFallback(t *testing.T) {
	got, err := extract.Text("resume.md", "application/octet-stream", []byte("# Jane Doe"))
	if err != nil {
		t.Fatalf("Text returned unexpected error: %v", err)
	}
	if !strings.Contains(got, "Jane Doe") {
		t.Errorf("got %q", got)
	}
}

func TestText_HTML(t *testing.T) {
	html := `<html><body><h1>Jane Doe</h1><p>Backend Engineer at <b>Acme</b></p></body></html>`
	got, err := extract.Text("resume.html", "text/html", []byte(html))
	if err != nil {
		t.Fatalf("Text returned unexpected error: %v", err)
	}
	if !strings.Contains(got, "Jane Doe") || !strings.Contains(got, "Acme") {
		t.Errorf("got %q", got)
	}
	if strings.Contains(got, "<") {
		t.Errorf("markup leaked into extracted text: %q", got)
	}
}

func TestText_Docx(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatal(err)
	}
	w.Write([]byte(`<w:document><w:body><w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p><w:p><w:r><w:t>Backend Engineer</w:t></w:r></w:p></w:body></w:document>`))
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	got, err := extract.Text("resume.docx",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document", buf.Bytes())
	if err != nil {
		t.Fatalf("Text returned unexpected error: %v", err)
	}
	if !strings.Contains(got, "Jane Doe") || !strings.Contains(got, "Backend Engineer") {
		t.Errorf("got %q", got)
	}
}

func TestText_UnsupportedFormat(t *testing.T) {
	_, err := extract.Text("avatar.png", "image/png", []byte{0x89, 0x50})
	if !errors.Is(err, extract.ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestText_CorruptDocx(t *testing.T) {
	_, err := extract.Text("resume.docx",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document", []byte("not a zip"))
	if err == nil {
		t.Error("corrupt docx must fail")
	}
}

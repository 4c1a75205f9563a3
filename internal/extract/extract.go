package extract

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"
)

// ErrUnsupportedFormat means the uploaded file's type is not one we can
// decode into plain text.
var ErrUnsupportedFormat = errors.New("extract: unsupported file format")

const (
	mimePDF  = "application/pdf"
	mimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var xmlTags = regexp.MustCompile(`<[^>]+>`)

// Text decodes a typed byte buffer into plain resume text. The MIME type
// decides the decoder; when the browser sends something generic like
// application/octet-stream, the filename extension breaks the tie.
func Text(fileName, mimeType string, data []byte) (string, error) {
	switch normalizeType(fileName, mimeType) {
	case ".pdf":
		return fromPDF(data)
	case ".docx":
		return fromDocx(data)
	case ".html":
		return fromHTML(data)
	case ".txt", ".md":
		return cleanText(string(data)), nil
	default:
		return "", fmt.Errorf("%w: %s (%s)", ErrUnsupportedFormat, fileName, mimeType)
	}
}

func normalizeType(fileName, mimeType string) string {
	switch {
	case strings.Contains(mimeType, mimePDF):
		return ".pdf"
	case strings.Contains(mimeType, mimeDocx):
		return ".docx"
	case strings.Contains(mimeType, "text/html"):
		return ".html"
	case strings.Contains(mimeType, "text/markdown"):
		return ".md"
	case strings.Contains(mimeType, "text/plain"):
		return ".txt"
	}
	return strings.ToLower(filepath.Ext(fileName))
}

func fromPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("extract: reading pdf: %w", err)
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract: decoding pdf text: %w", err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, rs); err != nil {
		return "", fmt.Errorf("extract: decoding pdf text: %w", err)
	}
	return cleanText(buf.String()), nil
}

// fromDocx reads word/document.xml out of the zip container and strips the
// markup. Naive but effective for resume-shaped documents.
func fromDocx(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("extract: reading docx: %w", err)
	}

	var docXML []byte
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("extract: reading docx: %w", err)
		}
		docXML, err = io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", fmt.Errorf("extract: reading docx: %w", err)
		}
		break
	}
	if len(docXML) == 0 {
		return "", fmt.Errorf("extract: docx has no word/document.xml")
	}

	txt := string(docXML)
	txt = strings.ReplaceAll(txt, "</w:p>", "\n")
	txt = strings.ReplaceAll(txt, "<w:tab/>", "\t")
	txt = xmlTags.ReplaceAllString(txt, " ")
	return cleanText(txt), nil
}

func fromHTML(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return cleanText(xmlTags.ReplaceAllString(string(data), " ")), nil
	}
	return cleanText(doc.Text()), nil
}

// cleanText collapses runs of whitespace but keeps line breaks, so section
// structure survives into the analysis prompt.
func cleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

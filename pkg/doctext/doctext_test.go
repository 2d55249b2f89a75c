package doctext

import (
	"archive/zip"
	"bytes"
	"errors"
	"strings"
	"testing"
)

func buildDOCX(t *testing.T, body string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("zip create: %v", err)
	}
	if _, err := w.Write([]byte(body)); err != nil {
		t.Fatalf("zip write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zip close: %v", err)
	}
	return buf.Bytes()
}

func TestFormatOf(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     Format
		wantErr  bool
	}{
		{name: "pdf", filename: "syllabus.pdf", want: FormatPDF},
		{name: "upper case", filename: "NOTES.TXT", want: FormatTXT},
		{name: "docx", filename: "course.v2.docx", want: FormatDOCX},
		{name: "legacy doc", filename: "old.doc", wantErr: true},
		{name: "no extension", filename: "README", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatOf(tt.filename)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedFormat) {
					t.Fatalf("FormatOf(%q) error = %v, want ErrUnsupportedFormat", tt.filename, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("FormatOf(%q) unexpected error: %v", tt.filename, err)
			}
			if got != tt.want {
				t.Errorf("FormatOf(%q) = %q, want %q", tt.filename, got, tt.want)
			}
		})
	}
}

func TestExtractTXT(t *testing.T) {
	got, err := Extract([]byte("\xef\xbb\xbfAssignment 1: Due 03/15/2024"), "txt")
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if got != "Assignment 1: Due 03/15/2024" {
		t.Errorf("Extract() = %q", got)
	}
}

func TestExtractDOCX(t *testing.T) {
	body := `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:r><w:t>CS 101 Syllabus</w:t></w:r></w:p>
<w:p><w:r><w:t xml:space="preserve">Midterm Exam: </w:t></w:r><w:r><w:t>March 10, 2024</w:t></w:r></w:p>
</w:body>
</w:document>`

	got, err := Extract(buildDOCX(t, body), ".docx")
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	want := "CS 101 Syllabus\nMidterm Exam: March 10, 2024"
	if strings.TrimSpace(got) != want {
		t.Errorf("Extract() = %q, want %q", got, want)
	}
}

func TestExtractErrors(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
		ext     string
		want    error
	}{
		{name: "unsupported", content: []byte("x"), ext: ".rtf", want: ErrUnsupportedFormat},
		{name: "docx not a zip", content: []byte("plain text"), ext: ".docx", want: ErrUnreadable},
		{name: "pdf garbage", content: []byte("not a pdf"), ext: ".pdf", want: ErrUnreadable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extract(tt.content, tt.ext)
			if !errors.Is(err, tt.want) {
				t.Errorf("Extract() error = %v, want %v", err, tt.want)
			}
		})
	}
}

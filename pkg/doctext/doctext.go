package doctext

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

// FormatOf returns the Format for a file name, or ErrUnsupportedFormat.
func FormatOf(filename string) (Format, error) {
	ext := Format(strings.ToLower(filepath.Ext(filename)))
	for _, f := range SupportedFormats() {
		if f == ext {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}

// Extract returns the plain text of content. ext may be given with or
// without the leading dot.
func Extract(content []byte, ext string) (string, error) {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	switch Format(strings.ToLower(ext)) {
	case FormatTXT:
		return extractTXT(content), nil
	case FormatPDF:
		return extractPDF(content)
	case FormatDOCX:
		return extractDOCX(content)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

func extractTXT(content []byte) string {
	content = bytes.TrimPrefix(content, []byte("\xef\xbb\xbf"))
	if utf8.Valid(content) {
		return string(content)
	}
	return strings.ToValidUTF8(string(content), "")
}

// extractPDF reads every page through ledongthuc/pdf. The library panics on
// some malformed files, so the panic is turned into ErrUnreadable.
func extractPDF(content []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("%w: pdf: %v", ErrUnreadable, r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("%w: pdf: %v", ErrUnreadable, err)
	}
	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("%w: pdf: %v", ErrUnreadable, err)
	}
	b, err := io.ReadAll(plain)
	if err != nil {
		return "", fmt.Errorf("%w: pdf: %v", ErrUnreadable, err)
	}
	return string(b), nil
}

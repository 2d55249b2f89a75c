package doctext

import "errors"

// Format is a supported document extension, lower case with the dot.
type Format string

const (
	FormatPDF  Format = ".pdf"
	FormatTXT  Format = ".txt"
	FormatDOCX Format = ".docx"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported document format")
	ErrUnreadable        = errors.New("document could not be read")
)

// SupportedFormats lists the extensions Extract accepts.
func SupportedFormats() []Format {
	return []Format{FormatPDF, FormatTXT, FormatDOCX}
}

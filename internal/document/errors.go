package document

import "errors"

var (
	ErrUnsupportedFormat = errors.New("file type not supported, allowed types: .pdf, .txt, .docx")
	ErrUnreadable        = errors.New("document text could not be read")
	ErrEmptyText         = errors.New("no text to extract deadlines from")
)

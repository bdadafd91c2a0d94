package analysis

import "errors"

var (
	// ErrUnsupportedType rejects uploads that are neither PDF nor DOCX.
	ErrUnsupportedType = errors.New("unsupported file type")
	// ErrEmptyText rejects documents whose extracted text is empty or whitespace.
	ErrEmptyText = errors.New("extracted text is empty")
	// ErrExtraction wraps failures of the text-extraction collaborator.
	ErrExtraction = errors.New("text extraction failed")
	// ErrUnavailable marks a transport or status failure of the analysis service.
	ErrUnavailable = errors.New("analysis service unavailable")
	// ErrMalformedResponse marks an unparseable analysis service response.
	ErrMalformedResponse = errors.New("malformed analysis response")
	// ErrNotFound is returned by repos when no record matches.
	ErrNotFound = errors.New("not found")
)

package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func TestTextDocxExtractsParagraphs(t *testing.T) {
	doc := `<w:document xmlns:w="ns"><w:body>` +
		`<w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Software Engineer</w:t></w:r></w:p>` +
		`</w:body></w:document>`
	data := buildDocx(t, doc)

	got, err := Text(context.Background(), data, MimeDOCX, "resume.docx")
	if err != nil {
		t.Fatalf("extract docx: %v", err)
	}
	if !strings.Contains(got, "Jane Doe") || !strings.Contains(got, "Software Engineer") {
		t.Fatalf("unexpected extracted text: %q", got)
	}
	if !strings.Contains(got, "\n") {
		t.Fatalf("expected paragraph break in %q", got)
	}
}

func TestTextZipMimeNormalizedToDocx(t *testing.T) {
	doc := `<w:document><w:body><w:p><w:r><w:t>hello</w:t></w:r></w:p></w:body></w:document>`
	data := buildDocx(t, doc)

	got, err := Text(context.Background(), data, "application/zip", "resume.docx")
	if err != nil {
		t.Fatalf("expected docx to extract from zip mime, got error: %v", err)
	}
	if !strings.Contains(got, "hello") {
		t.Fatalf("unexpected extracted text: %q", got)
	}
}

func TestTextPlainZipRejected(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("notes.txt")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte("hello")); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	_, err = Text(context.Background(), buf.Bytes(), "application/zip", "notes.zip")
	if !errors.Is(err, ErrUnsupportedMime) {
		t.Fatalf("expected ErrUnsupportedMime, got %v", err)
	}
}

func TestTextUnknownMimeRejected(t *testing.T) {
	_, err := Text(context.Background(), []byte("plain"), "text/plain", "notes.txt")
	if !errors.Is(err, ErrUnsupportedMime) {
		t.Fatalf("expected ErrUnsupportedMime, got %v", err)
	}
}

func TestTextCorruptPDFFails(t *testing.T) {
	_, err := Text(context.Background(), []byte("not a pdf"), MimePDF, "resume.pdf")
	if err == nil {
		t.Fatal("expected error for corrupt pdf")
	}
}

package util

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/gen2brain/go-fitz"
)

var pdfMagic = []byte("%PDF-")

func IsPDF(data []byte, contentType, filename string) bool {
	return contentType == "application/pdf" ||
		strings.EqualFold(filepath.Ext(filename), ".pdf") ||
		bytes.HasPrefix(data, pdfMagic)
}

// ExtractText returns the readable text of an uploaded résumé. PDFs go through
// MuPDF; anything else is read as UTF-8 text.
func ExtractText(data []byte, contentType, filename string) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("file is empty")
	}

	var text string
	if IsPDF(data, contentType, filename) {
		var err error
		text, err = ExtractPDFText(data)
		if err != nil {
			return "", err
		}
	} else {
		if !utf8.Valid(data) {
			return "", fmt.Errorf("file is neither a PDF nor UTF-8 text")
		}
		text = string(data)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("no text extracted (the document might be scanned images)")
	}
	return text, nil
}

func ExtractPDFText(data []byte) (string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	var fullText strings.Builder
	for n := 0; n < doc.NumPage(); n++ {
		pageText, err := doc.Text(n)
		if err != nil {
			return "", fmt.Errorf("page %d: failed to extract text: %w", n+1, err)
		}
		if s := strings.TrimSpace(pageText); s != "" {
			fullText.WriteString(s)
			fullText.WriteString("\n\n")
		}
	}
	return fullText.String(), nil
}

// Truncate cuts s to at most max runes.
func Truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	r := []rune(s)
	return string(r[:max])
}

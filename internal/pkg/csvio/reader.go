// Package csvio reads and writes the header-first CSV tables exchanged at the pipeline boundary.
package csvio

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoHeader is returned for an input with no header row.
var ErrNoHeader = errors.New("no header row found")

// ParseWarning represents a non-fatal issue encountered during CSV parsing.
type ParseWarning struct {
	Line    int
	Message string
}

// Row is one data row, padded or truncated to the header width.
type Row struct {
	Line  int
	Cells []string
}

// Document is a parsed CSV table.
type Document struct {
	Header   []string
	Rows     []Row
	Warnings []ParseWarning
	Encoding string
}

// Read parses a whole CSV stream. A header with no data rows is a valid, empty document.
func Read(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read failed: %w", err)
	}

	decoded, enc, err := DetectAndDecode(data)
	if err != nil {
		return nil, fmt.Errorf("encoding detection failed: %w", err)
	}

	reader := csv.NewReader(bytes.NewReader(decoded))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoHeader
		}
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}
	for i, h := range header {
		header[i] = strings.TrimSpace(h)
	}

	doc := &Document{Header: header, Encoding: enc}
	width := len(header)
	line := 1

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				line = perr.Line
			}
			doc.Warnings = append(doc.Warnings, ParseWarning{Line: line, Message: fmt.Sprintf("parse error: %v", err)})
			continue
		}
		line, _ = reader.FieldPos(0)
		if isBlank(record) {
			continue
		}

		switch {
		case len(record) < width:
			doc.Warnings = append(doc.Warnings, ParseWarning{
				Line:    line,
				Message: fmt.Sprintf("row has %d columns, expected %d; padding with empty values", len(record), width),
			})
			padded := make([]string, width)
			copy(padded, record)
			record = padded
		case len(record) > width:
			doc.Warnings = append(doc.Warnings, ParseWarning{
				Line:    line,
				Message: fmt.Sprintf("row has %d columns, expected %d; truncating extra columns", len(record), width),
			})
			record = record[:width]
		}

		doc.Rows = append(doc.Rows, Row{Line: line, Cells: record})
	}

	return doc, nil
}

func isBlank(record []string) bool {
	for _, c := range record {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

package exporter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
)

// CSVRowWriter appends CSV records to a file. Every WriteRows call is
// flushed and synced to disk before it returns; unlike csv.Writer nothing
// stays buffered between calls.
type CSVRowWriter struct {
	file      *os.File
	buffer    bytes.Buffer
	csvWriter *csv.Writer
}

// NewCSVRowWriter opens path for appending. The header is written only when
// the file is empty, so re-running into an existing file appends rows
// without repeating it.
func NewCSVRowWriter(path string, columns []string) (*CSVRowWriter, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	w := &CSVRowWriter{file: file}
	w.csvWriter = csv.NewWriter(&w.buffer)

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	if info.Size() == 0 {
		if err := w.WriteRows([][]string{columns}); err != nil {
			file.Close()
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}
	return w, nil
}

func (w *CSVRowWriter) WriteRows(rows [][]string) error {
	w.buffer.Reset()
	if err := w.csvWriter.WriteAll(rows); err != nil {
		return err
	}
	if _, err := w.file.Write(w.buffer.Bytes()); err != nil {
		return err
	}
	return w.file.Sync()
}

func (w *CSVRowWriter) Close() error {
	return w.file.Close()
}

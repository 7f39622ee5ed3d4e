// Package csvio provides streaming CSV writers and readers for the
// generated tables. Writers append one row at a time so large tables
// (year-partitioned shipments) never accumulate in memory; the combined
// shipment file is produced by an explicit concatenation pass.
package csvio

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Rower is any record that renders itself as one CSV row.
type Rower interface {
	Row() []string
}

// Writer streams rows into one CSV file, header first.
type Writer struct {
	file *os.File
	buf  *bufio.Writer
	csv  *csv.Writer
	rows int
}

// NewWriter creates the file (and its directory) and writes the header.
func NewWriter(path string, header []string) (*Writer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", path, err)
	}

	buf := bufio.NewWriterSize(file, 1<<16)
	w := &Writer{file: file, buf: buf, csv: csv.NewWriter(buf)}
	if err := w.csv.Write(header); err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to write header to %s: %w", path, err)
	}
	return w, nil
}

// Write appends one row.
func (w *Writer) Write(row []string) error {
	w.rows++
	return w.csv.Write(row)
}

// Rows reports how many data rows have been written.
func (w *Writer) Rows() int {
	return w.rows
}

// Close flushes and closes the file.
func (w *Writer) Close() error {
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		w.file.Close()
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	if err := w.buf.Flush(); err != nil {
		w.file.Close()
		return fmt.Errorf("failed to flush buffer: %w", err)
	}
	return w.file.Close()
}

// WriteTable writes a whole in-memory table to one file.
func WriteTable[T Rower](path string, header []string, records []T) (int, error) {
	w, err := NewWriter(path, header)
	if err != nil {
		return 0, err
	}
	for _, r := range records {
		if err := w.Write(r.Row()); err != nil {
			w.Close()
			return 0, fmt.Errorf("failed to write row to %s: %w", path, err)
		}
	}
	return len(records), w.Close()
}

// Concat appends the data rows of each source file (headers skipped) into
// one combined file.
func Concat(dst string, header []string, sources []string) (int, error) {
	w, err := NewWriter(dst, header)
	if err != nil {
		return 0, err
	}

	for _, src := range sources {
		r, err := OpenReader(src)
		if err != nil {
			w.Close()
			return 0, err
		}
		for {
			row, err := r.Read()
			if err == io.EOF {
				break
			}
			if err != nil {
				r.Close()
				w.Close()
				return 0, fmt.Errorf("failed to read %s: %w", src, err)
			}
			if err := w.Write(row); err != nil {
				r.Close()
				w.Close()
				return 0, fmt.Errorf("failed to append row from %s: %w", src, err)
			}
		}
		r.Close()
	}

	rows := w.Rows()
	return rows, w.Close()
}

// Reader streams rows from one CSV file. The header is consumed on open.
type Reader struct {
	file   *os.File
	csv    *csv.Reader
	header []string
}

// OpenReader opens path and reads its header row.
func OpenReader(path string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	cr := csv.NewReader(bufio.NewReaderSize(file, 1<<16))
	cr.ReuseRecord = false

	header, err := cr.Read()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to read header of %s: %w", path, err)
	}

	return &Reader{file: file, csv: cr, header: header}, nil
}

// Header returns the column names.
func (r *Reader) Header() []string {
	return r.header
}

// Read returns the next data row, or io.EOF.
func (r *Reader) Read() ([]string, error) {
	return r.csv.Read()
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	return r.file.Close()
}

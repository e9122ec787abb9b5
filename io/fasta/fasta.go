// Package fasta provides reading and writing of FASTA formatted sequence
// files. Parsing is deliberately simple: lines starting with '>' open a new
// entry, and all following non-empty lines are concatenated into its
// sequence.
package fasta

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/bcblab/resscore/seq"
)

// An Entry corresponds to a single FASTA record.
type Entry struct {
	Header   string
	Sequence []byte
}

// Seq converts an entry to a sequence, using the header as the name.
func (e Entry) Seq() seq.Sequence {
	return seq.Sequence{
		Name:     e.Header,
		Residues: []seq.Residue(string(e.Sequence)),
	}
}

// A Reader reads FASTA entries from an underlying io.Reader.
type Reader struct {
	scanner *bufio.Scanner
	next    string // header stashed while finishing the previous entry
	pending bool
}

func NewReader(r io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(r)}
}

// Read returns the next entry, or io.EOF when the input is exhausted.
// Sequence data appearing before the first header is an error.
func (r *Reader) Read() (Entry, error) {
	entry := Entry{Header: r.next}
	have := r.pending
	r.next, r.pending = "", false

	for r.scanner.Scan() {
		line := bytes.TrimSpace(r.scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			header := string(bytes.TrimSpace(line[1:]))
			if have {
				r.next, r.pending = header, true
				return entry, nil
			}
			entry.Header = header
			have = true
			continue
		}
		if !have {
			return Entry{}, fmt.Errorf(
				"fasta: sequence data before first header: %q", line)
		}
		entry.Sequence = append(entry.Sequence, line...)
	}
	if err := r.scanner.Err(); err != nil {
		return Entry{}, err
	}
	if have {
		return entry, nil
	}
	return Entry{}, io.EOF
}

// ReadAll returns all remaining entries in the input.
func (r *Reader) ReadAll() ([]Entry, error) {
	var entries []Entry
	for {
		entry, err := r.Read()
		if err == io.EOF {
			return entries, nil
		}
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
}

// The column at which sequence lines wrap when writing.
const wrapColumn = 60

// A Writer writes FASTA entries to an underlying io.Writer.
type Writer struct {
	buf *bufio.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{buf: bufio.NewWriter(w)}
}

// Write writes a single entry. The caller must call Flush (or use WriteAll)
// for the output to reach the underlying writer.
func (w *Writer) Write(entry Entry) error {
	if _, err := fmt.Fprintf(w.buf, ">%s\n", entry.Header); err != nil {
		return err
	}
	for start := 0; start < len(entry.Sequence); start += wrapColumn {
		end := start + wrapColumn
		if end > len(entry.Sequence) {
			end = len(entry.Sequence)
		}
		if _, err := w.buf.Write(entry.Sequence[start:end]); err != nil {
			return err
		}
		if err := w.buf.WriteByte('\n'); err != nil {
			return err
		}
	}
	return nil
}

// WriteAll writes all entries and flushes.
func (w *Writer) WriteAll(entries []Entry) error {
	for _, entry := range entries {
		if err := w.Write(entry); err != nil {
			return err
		}
	}
	return w.Flush()
}

// Flush writes buffered output to the underlying writer.
func (w *Writer) Flush() error {
	return w.buf.Flush()
}

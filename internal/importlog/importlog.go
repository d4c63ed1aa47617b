// Package importlog keeps an append-only history of bank files imported
// into the store, so the same export is not counted twice.
package importlog

import (
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// FileName is the history file kept next to the transactions file.
const FileName = "imports.csv"

// Header is the CSV header for imports.csv.
const Header = "timestamp,file,format,checksum,imported,skipped"

// ErrAlreadyImported is returned by Check when a file with the same content
// is already in the history.
var ErrAlreadyImported = errors.New("file already imported")

// Entry is one row in the import history.
type Entry struct {
	Timestamp time.Time
	File      string
	Format    string
	Checksum  string
	Imported  int
	Skipped   int
}

const (
	numFields   = 6
	colTime     = 0
	colFile     = 1
	colFormat   = 2
	colChecksum = 3
	colImported = 4
	colSkipped  = 5
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTime] = e.Timestamp.UTC().Format(time.RFC3339)
	row[colFile] = e.File
	row[colFormat] = e.Format
	row[colChecksum] = e.Checksum
	row[colImported] = strconv.Itoa(e.Imported)
	row[colSkipped] = strconv.Itoa(e.Skipped)
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTime])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTime], err)
	}
	imported, err := strconv.Atoi(record[colImported])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing imported count %q: %w", record[colImported], err)
	}
	skipped, err := strconv.Atoi(record[colSkipped])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing skipped count %q: %w", record[colSkipped], err)
	}

	return Entry{
		Timestamp: ts,
		File:      record[colFile],
		Format:    record[colFormat],
		Checksum:  record[colChecksum],
		Imported:  imported,
		Skipped:   skipped,
	}, nil
}

// Checksum identifies a bank export by content.
func Checksum(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Log is the import history stored at a single path.
type Log struct {
	path string
}

// New returns the Log at path.
func New(path string) *Log {
	return &Log{path: path}
}

// ForStore returns the Log kept in the same directory as the transactions file.
func ForStore(storePath string) *Log {
	return New(filepath.Join(filepath.Dir(storePath), FileName))
}

// Path returns the history file location.
func (l *Log) Path() string {
	return l.path
}

// Append writes entries to the history, creating the file and header if needed.
func (l *Log) Append(entries ...Entry) error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("creating import log dir: %w", err)
	}

	fi, err := os.Stat(l.path)
	needsHeader := os.IsNotExist(err) || (err == nil && fi.Size() == 0)

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening import log: %w", err)
	}

	if err := writeEntries(f, needsHeader, entries); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing import log: %w", err)
	}
	return nil
}

func writeEntries(w io.Writer, header bool, entries []Entry) error {
	cw := csv.NewWriter(w)
	if header {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}
	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing import log: %w", err)
	}
	return nil
}

// Read returns all entries. A missing file is an empty history.
func (l *Log) Read() ([]Entry, error) {
	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening import log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

// Check returns ErrAlreadyImported, wrapped with the earlier import's
// details, when checksum is already recorded.
func (l *Log) Check(checksum string) error {
	entries, err := l.Read()
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.Checksum == checksum {
			return fmt.Errorf("%w: %s on %s (%d transactions)",
				ErrAlreadyImported, e.File, e.Timestamp.Format(time.DateOnly), e.Imported)
		}
	}
	return nil
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading import log CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

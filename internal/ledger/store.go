package ledger

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spendlog-dev/spendlog/internal/model"
)

// Store is the append-only transactions file. The file is opened and closed
// on every call; nothing is held across operations.
type Store struct {
	path string
}

// NewStore returns a Store backed by the CSV file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the location of the transactions file.
func (s *Store) Path() string {
	return s.path
}

// Initialize creates the transactions file with its header if it does not
// exist. created is false when the file was already there. An existing
// empty file gets its header written so later appends stay readable.
func (s *Store) Initialize() (created bool, err error) {
	fi, err := os.Stat(s.path)
	switch {
	case err == nil && fi.Size() == 0:
		return false, s.writeHeader(os.O_WRONLY | os.O_APPEND)
	case err == nil:
		return false, nil
	case !errors.Is(err, fs.ErrNotExist):
		return false, &IOError{Op: "stat", Path: s.path, Err: err}
	}

	if err := s.ensureDir(); err != nil {
		return false, err
	}

	if err := s.writeHeader(os.O_WRONLY | os.O_CREATE | os.O_EXCL); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *Store) writeHeader(flag int) error {
	f, err := os.OpenFile(s.path, flag, 0o644)
	if err != nil {
		return &IOError{Op: "open", Path: s.path, Err: err}
	}
	if err := WriteTransactions(f, nil); err != nil {
		f.Close()
		return &IOError{Op: "write", Path: s.path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &IOError{Op: "close", Path: s.path, Err: err}
	}
	return nil
}

// Append validates tx and adds it to the end of the file, writing the
// header first if the file is new.
func (s *Store) Append(tx model.Transaction) error {
	if err := tx.Validate(); err != nil {
		return fmt.Errorf("appending transaction: %w", err)
	}

	if _, err := s.Initialize(); err != nil {
		return err
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return &IOError{Op: "open", Path: s.path, Err: err}
	}

	if err := AppendTransactions(f, []model.Transaction{tx}); err != nil {
		f.Close()
		return &IOError{Op: "append", Path: s.path, Err: err}
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return &IOError{Op: "sync", Path: s.path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &IOError{Op: "close", Path: s.path, Err: err}
	}
	return nil
}

// ReadAll returns every stored transaction in file order.
func (s *Store) ReadAll() ([]model.Transaction, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &IOError{Op: "open", Path: s.path, Err: ErrStoreMissing}
	}
	if err != nil {
		return nil, &IOError{Op: "open", Path: s.path, Err: err}
	}
	defer f.Close()

	txs, err := ReadTransactions(f)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			return nil, fmt.Errorf("reading %s: %w", s.path, err)
		}
		return nil, &IOError{Op: "read", Path: s.path, Err: err}
	}
	if txs == nil {
		txs = []model.Transaction{}
	}
	return txs, nil
}

func (s *Store) ensureDir() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &IOError{Op: "mkdir", Path: dir, Err: err}
	}
	return nil
}

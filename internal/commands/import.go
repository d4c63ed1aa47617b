package commands

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/spendlog-dev/spendlog/internal/importer"
	"github.com/spendlog-dev/spendlog/internal/importlog"
	"github.com/spendlog-dev/spendlog/internal/model"
)

func newImportCommand(a *app) *cobra.Command {
	var format, category string
	var force bool

	registry := importer.DefaultRegistry()

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import the debits of a bank CSV export as expenses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := args[0]
			data, err := os.ReadFile(src)
			if err != nil {
				return fmt.Errorf("reading %s: %w", src, err)
			}

			history := importlog.ForStore(a.store.Path())
			sum := importlog.Checksum(data)
			if !force {
				if err := history.Check(sum); err != nil {
					return fmt.Errorf("%w; use --force to import it again", err)
				}
			}

			bank, err := registry.Parse(format, bytes.NewReader(data))
			if err != nil {
				return fmt.Errorf("parsing %s: %w", src, err)
			}

			res := importer.ToTransactions(bank, category)
			entry := importlog.Entry{
				Timestamp: time.Now(),
				File:      filepath.Base(src),
				Format:    format,
				Checksum:  sum,
				Skipped:   res.Skipped,
			}
			entry, err = recordImport(a.store, history, entry, res.Transactions)
			if err != nil {
				return err
			}
			a.log.Debug().Str("file", src).Str("format", format).
				Int("imported", entry.Imported).Int("skipped", entry.Skipped).Msg("import finished")

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d transactions from %s (%d skipped)\n",
				entry.Imported, src, entry.Skipped)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "chase", "bank export format ("+strings.Join(registry.Formats(), ", ")+")")
	cmd.Flags().StringVar(&category, "category", "", "category for imported rows (default Other)")
	cmd.Flags().BoolVar(&force, "force", false, "import even if the same file was imported before")

	return cmd
}

type appender interface {
	Append(tx model.Transaction) error
}

// recordImport appends txs to store and adds entry to history with the
// number of rows actually written. A failure after some rows were written
// is reported as a partial import; those rows stay in the store and in the
// history so a plain re-run does not duplicate them.
func recordImport(store appender, history *importlog.Log, entry importlog.Entry, txs []model.Transaction) (importlog.Entry, error) {
	var appendErr error
	for _, tx := range txs {
		if appendErr = store.Append(tx); appendErr != nil {
			break
		}
		entry.Imported++
	}

	if appendErr != nil && entry.Imported == 0 {
		return entry, fmt.Errorf("appending transactions: %w", appendErr)
	}
	if err := history.Append(entry); err != nil {
		if appendErr != nil {
			return entry, fmt.Errorf("partial import: %d of %d transactions appended, history not updated (%v): %w",
				entry.Imported, len(txs), err, appendErr)
		}
		return entry, fmt.Errorf("imported %d transactions but could not record the import: %w", entry.Imported, err)
	}
	if appendErr != nil {
		return entry, fmt.Errorf("partial import: %d of %d transactions appended and recorded in %s: %w",
			entry.Imported, len(txs), history.Path(), appendErr)
	}
	return entry, nil
}

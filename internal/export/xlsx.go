// Package export writes the transactions and their summary to a spreadsheet.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/spendlog-dev/spendlog/internal/model"
	"github.com/spendlog-dev/spendlog/internal/summary"
)

// Sheet names in the exported workbook.
const (
	TransactionsSheet = "Transactions"
	SummarySheet      = "Summary"
)

const headerColor = "#4472C4"

// WriteXLSX writes a workbook with a Transactions sheet and a Summary sheet.
func WriteXLSX(w io.Writer, txs []model.Transaction, s summary.Summary) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", TransactionsSheet); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}
	if _, err := f.NewSheet(SummarySheet); err != nil {
		return fmt.Errorf("creating summary sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{headerColor}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
	if err != nil {
		return fmt.Errorf("creating money style: %w", err)
	}
	totalStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}, NumFmt: 4})
	if err != nil {
		return fmt.Errorf("creating total style: %w", err)
	}

	if err := writeTransactions(f, txs, headerStyle, moneyStyle); err != nil {
		return err
	}
	if err := writeSummary(f, s, headerStyle, moneyStyle, totalStyle); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// WriteFile writes the workbook to path, creating parent directories.
func WriteFile(path string, txs []model.Transaction, s summary.Summary) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating export dir: %w", err)
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	if err := WriteXLSX(out, txs, s); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func writeTransactions(f *excelize.File, txs []model.Transaction, headerStyle, moneyStyle int) error {
	sheet := TransactionsSheet
	if err := f.SetSheetRow(sheet, "A1", &[]any{"Date", "Category", "Amount", "Description"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", "D1", headerStyle); err != nil {
		return fmt.Errorf("styling header: %w", err)
	}

	for i, tx := range txs {
		row := i + 2
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		values := []any{tx.Date.Format(model.DateFormat), tx.Category, tx.Amount.InexactFloat64(), tx.Description}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("writing row %d: %w", row, err)
		}
		amountCell := fmt.Sprintf("C%d", row)
		if err := f.SetCellStyle(sheet, amountCell, amountCell, moneyStyle); err != nil {
			return fmt.Errorf("styling row %d: %w", row, err)
		}
	}

	if err := f.SetColWidth(sheet, "A", "A", 12); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "B", "B", 18); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "D", "D", 40)
}

func writeSummary(f *excelize.File, s summary.Summary, headerStyle, moneyStyle, totalStyle int) error {
	sheet := SummarySheet
	if err := f.SetSheetRow(sheet, "A1", &[]any{"Category", "Amount", "Percentage"}); err != nil {
		return fmt.Errorf("writing summary header: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", "C1", headerStyle); err != nil {
		return fmt.Errorf("styling summary header: %w", err)
	}

	row := 2
	for _, c := range s.Categories {
		values := []any{c.Category, c.Amount.InexactFloat64(), c.Percent.Round(1).InexactFloat64()}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &values); err != nil {
			return fmt.Errorf("writing summary row %d: %w", row, err)
		}
		if err := f.SetCellStyle(sheet, fmt.Sprintf("B%d", row), fmt.Sprintf("B%d", row), moneyStyle); err != nil {
			return err
		}
		row++
	}

	total := []any{"Total", s.Total.InexactFloat64()}
	if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &total); err != nil {
		return fmt.Errorf("writing total row: %w", err)
	}
	if err := f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), totalStyle); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", "A", 18)
}

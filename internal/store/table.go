package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/go-tangra/go-tangra-pcspecs/internal/snapshot"
)

// ErrPersistence wraps every failure to load, lock or save the workbook.
var ErrPersistence = errors.New("inventory persistence failed")

func persistErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrPersistence, op, err)
}

// Table is an inventory worksheet held in memory: a header row followed by
// data rows. Existing rows are never rewritten; Append only adds rows below
// the last one.
type Table struct {
	file  *excelize.File
	sheet string
	rows  int

	headerStyle  int
	dataStyle    int
	decimalStyle int
}

// OpenOrCreate loads the workbook at path, keeping all rows and formatting,
// and selects its active sheet. When no file exists it starts a new
// workbook whose only sheet is named sheet. An empty sheet receives the
// header row.
func OpenOrCreate(path, sheet string, theme Theme) (*Table, error) {
	var f *excelize.File
	switch _, err := os.Stat(path); {
	case err == nil:
		f, err = excelize.OpenFile(path)
		if err != nil {
			return nil, persistErr("open "+path, err)
		}
		sheet = f.GetSheetName(f.GetActiveSheetIndex())
	case errors.Is(err, fs.ErrNotExist):
		f = excelize.NewFile()
		if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
			f.Close()
			return nil, persistErr("name sheet", err)
		}
	default:
		return nil, persistErr("stat "+path, err)
	}

	t := &Table{file: f, sheet: sheet}
	if err := t.init(theme); err != nil {
		f.Close()
		return nil, err
	}
	return t, nil
}

func (t *Table) init(theme Theme) error {
	var err error
	if t.headerStyle, err = t.file.NewStyle(theme.headerStyle()); err != nil {
		return persistErr("header style", err)
	}
	if t.dataStyle, err = t.file.NewStyle(theme.dataStyle()); err != nil {
		return persistErr("data style", err)
	}
	if t.decimalStyle, err = t.file.NewStyle(theme.decimalStyle()); err != nil {
		return persistErr("decimal style", err)
	}

	rows, err := t.file.GetRows(t.sheet)
	if err != nil {
		return persistErr("read rows", err)
	}
	if !blank(rows) {
		t.rows = len(rows)
		return nil
	}
	return t.writeHeader()
}

// blank reports whether the sheet holds no values at all.
func blank(rows [][]string) bool {
	for _, row := range rows {
		for _, v := range row {
			if strings.TrimSpace(v) != "" {
				return false
			}
		}
	}
	return true
}

func (t *Table) writeHeader() error {
	values := make([]any, len(Header))
	for i, h := range Header {
		values[i] = h
	}
	if err := t.file.SetSheetRow(t.sheet, "A1", &values); err != nil {
		return persistErr("write header", err)
	}
	if err := t.styleRow(1, t.headerStyle); err != nil {
		return err
	}
	t.rows = 1
	return nil
}

// Len returns the number of rows in the sheet, header included.
func (t *Table) Len() int {
	return t.rows
}

// Sheet returns the name of the worksheet rows are appended to.
func (t *Table) Sheet() string {
	return t.sheet
}

// Rows returns the cell text of every row, header included.
func (t *Table) Rows() ([][]string, error) {
	return t.file.GetRows(t.sheet)
}

// Append adds the record as one primary row, then one sub-row per disk
// entry, and recomputes column widths over the whole sheet.
func (t *Table) Append(rec snapshot.Record, entries []snapshot.DiskEntry) error {
	row := t.rows + 1
	if err := t.setRow(row, 1, recordRow(rec)); err != nil {
		return err
	}
	if err := t.styleRow(row, t.dataStyle); err != nil {
		return err
	}
	for _, col := range decimalColumns {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		if err := t.file.SetCellStyle(t.sheet, cell, cell, t.decimalStyle); err != nil {
			return persistErr("style "+cell, err)
		}
	}

	for i, e := range entries {
		r := row + 1 + i
		if err := t.setRow(r, firstDiskColumn, diskRow(e)); err != nil {
			return err
		}
		if err := t.styleRow(r, t.dataStyle); err != nil {
			return err
		}
	}

	t.rows = row + len(entries)
	return t.autoWidth()
}

func (t *Table) setRow(row, col int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return persistErr("cell name", err)
	}
	if err := t.file.SetSheetRow(t.sheet, cell, &values); err != nil {
		return persistErr("write row "+cell, err)
	}
	return nil
}

// styleRow applies style to every schema column of row, empty cells included.
func (t *Table) styleRow(row, style int) error {
	first, _ := excelize.CoordinatesToCellName(1, row)
	last, _ := excelize.CoordinatesToCellName(len(Header), row)
	if err := t.file.SetCellStyle(t.sheet, first, last, style); err != nil {
		return persistErr("style row "+first, err)
	}
	return nil
}

// autoWidth sizes each column to its longest value plus two characters.
func (t *Table) autoWidth() error {
	rows, err := t.file.GetRows(t.sheet)
	if err != nil {
		return persistErr("read rows", err)
	}

	var widths []int
	for _, row := range rows {
		for i, v := range row {
			if i >= len(widths) {
				widths = append(widths, make([]int, i+1-len(widths))...)
			}
			widths[i] = max(widths[i], utf8.RuneCountInString(v))
		}
	}

	for i, w := range widths {
		if w == 0 {
			continue
		}
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return persistErr("column name", err)
		}
		if err := t.file.SetColWidth(t.sheet, name, name, float64(min(w+2, maxColumnWidth))); err != nil {
			return persistErr("width "+name, err)
		}
	}
	return nil
}

// ColumnWidth returns the width set on the 1-based column.
func (t *Table) ColumnWidth(col int) (float64, error) {
	name, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return 0, err
	}
	return t.file.GetColWidth(t.sheet, name)
}

// newFileMode is given to a workbook that did not exist before Save.
const newFileMode fs.FileMode = 0o644

// Save writes the workbook to a temporary file beside path and renames it
// over path, so a failed save leaves the previous file intact. The saved
// file keeps the permissions of the one it replaces.
func (t *Table) Save(path string) error {
	mode, err := targetMode(path)
	if err != nil {
		return persistErr("stat "+path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return persistErr("create temp file", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return persistErr("chmod "+tmpName, err)
	}
	if err := t.file.Write(tmp); err != nil {
		tmp.Close()
		return persistErr("write "+tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return persistErr("sync "+tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return persistErr("close "+tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return persistErr("replace "+path, err)
	}
	return nil
}

func targetMode(path string) (fs.FileMode, error) {
	fi, err := os.Stat(path)
	switch {
	case err == nil:
		return fi.Mode().Perm(), nil
	case errors.Is(err, fs.ErrNotExist):
		return newFileMode, nil
	default:
		return 0, err
	}
}

// Close releases the workbook.
func (t *Table) Close() error {
	return t.file.Close()
}

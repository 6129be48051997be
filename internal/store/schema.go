package store

import (
	"github.com/xuri/excelize/v2"

	"github.com/go-tangra/go-tangra-pcspecs/internal/snapshot"
)

// DefaultSheet is the title given to the worksheet of a new workbook.
const DefaultSheet = "System Info"

// Header is the fixed column set. Consumers parse by column name, so the
// text and order must not change.
var Header = []string{
	"Full Name",
	"OS Info",
	"Computer Name",
	"CPU Model",
	"CPU Cores",
	"CPU Threads",
	"CPU Frequency (MHz)",
	"Total Memory (GB)",
	"Total Disk Usage (GB)",
	"GPU Name",
	"GPU Memory Total (MB)",
	"Device",
	"Disk type",
	"Disk Name",
	"Total Size",
}

const (
	// recordColumns is the number of leading columns filled by the primary row.
	recordColumns = 11
	// firstDiskColumn is the 1-based index of the "Device" column.
	firstDiskColumn = recordColumns + 1
	// maxColumnWidth is the widest column Excel accepts.
	maxColumnWidth = 255
)

// decimalColumns are the 1-based columns shown with two decimals.
var decimalColumns = []int{7, 8, 9}

func recordRow(rec snapshot.Record) []any {
	return []any{
		rec.FullName,
		rec.OSInfo,
		rec.ComputerName,
		rec.CPUModel,
		rec.CPUCores,
		rec.CPUThreads,
		rec.CPUFrequencyMHz,
		rec.TotalMemoryGB,
		rec.TotalDiskGB,
		rec.GPUName,
		rec.GPUMemory(),
	}
}

func diskRow(e snapshot.DiskEntry) []any {
	size := e.TotalSize
	if size == "" {
		size = snapshot.NotAvailable
	}
	return []any{e.Device, string(e.MediaType), e.DiskModel, size}
}

// Theme holds the cosmetic styling applied to header and data cells.
type Theme struct {
	HeaderBold  bool
	HeaderFill  string // hex RGB, e.g. "FFFF00"
	BorderColor string // hex RGB
	BorderStyle int    // excelize border style index; 1 is thin
}

// DefaultTheme is a bold, yellow, centered header with thin black borders
// around every cell.
func DefaultTheme() Theme {
	return Theme{
		HeaderBold:  true,
		HeaderFill:  "FFFF00",
		BorderColor: "000000",
		BorderStyle: 1,
	}
}

func (t Theme) borders() []excelize.Border {
	sides := []string{"left", "right", "top", "bottom"}
	b := make([]excelize.Border, len(sides))
	for i, side := range sides {
		b[i] = excelize.Border{Type: side, Color: t.BorderColor, Style: t.BorderStyle}
	}
	return b
}

func (t Theme) headerStyle() *excelize.Style {
	s := &excelize.Style{
		Font:      &excelize.Font{Bold: t.HeaderBold},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    t.borders(),
	}
	if t.HeaderFill != "" {
		s.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{t.HeaderFill}}
	}
	return s
}

func (t Theme) dataStyle() *excelize.Style {
	return &excelize.Style{Border: t.borders()}
}

func (t Theme) decimalStyle() *excelize.Style {
	// Built-in number format 2 is "0.00".
	return &excelize.Style{Border: t.borders(), NumFmt: 2}
}

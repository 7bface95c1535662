// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"fmt"

	"github.com/apex/log"
	"github.com/xuri/excelize/v2"

	"github.com/dbcdiff/dbcdiff/internal/config"
	"github.com/dbcdiff/dbcdiff/internal/differ"
	"github.com/dbcdiff/dbcdiff/internal/highlight"
)

// Sheet is the worksheet holding the comparison table.
const Sheet = "DBC Comparison"

// Columns are the 13 table headers, old side first, new side second,
// comments last.
var Columns = []string{
	"Old Msg Name", "Old Msg ID", "Old Signal", "Old Details",
	"Old Tx Node", "Old Rx Node",
	"New Msg Name", "New Msg ID", "New Signal", "New Details",
	"New Tx Node", "New Rx Node",
	"Comments",
}

// Column indexes into a rendered row, 0-based.
const (
	colOldName = iota
	colOldID
	colOldSignal
	colOldDetails
	colOldTx
	colOldRx
	colNewName
	colNewID
	colNewSignal
	colNewDetails
	colNewTx
	colNewRx
	colComments
)

const (
	redColor   = "FF0000"
	blackColor = "000000"
)

// styleSet holds the style ids registered with one workbook.
type styleSet struct {
	header int
	plain  int
	red    int
}

// Write renders the change list into an xlsx workbook at path. oldName
// and newName are the display names (file basenames) of the two inputs.
// The workbook handle is released on every path; a write fault leaves
// no usable partial report behind.
func Write(path string, changes []differ.Change, oldName, newName string) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Debugf("workbook close: %v", err)
		}
	}()

	if err := f.SetSheetName("Sheet1", Sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	w := &sheetWriter{f: f}
	w.styles = w.newStyles()

	w.writeLabels(oldName, newName)
	w.writeHeaders()
	for i, change := range changes {
		w.writeRow(3+i, change)
	}
	w.finish(len(changes))

	if w.err != nil {
		return fmt.Errorf("failed to build report: %w", w.err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}

	log.Debugf("wrote %s: %d change rows", path, len(changes))
	return nil
}

// sheetWriter wraps the workbook with a sticky error so the layout code
// reads top to bottom instead of drowning in error checks.
type sheetWriter struct {
	f      *excelize.File
	styles styleSet
	err    error
}

func (w *sheetWriter) check(err error) {
	if w.err == nil && err != nil {
		w.err = err
	}
}

func (w *sheetWriter) newStyles() styleSet {
	centered := &excelize.Alignment{Horizontal: "center", Vertical: "center"}
	border := []excelize.Border{
		{Type: "left", Color: blackColor, Style: 1},
		{Type: "right", Color: blackColor, Style: 1},
		{Type: "top", Color: blackColor, Style: 1},
		{Type: "bottom", Color: blackColor, Style: 1},
	}

	header, err := w.f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: centered,
		Border:    border,
	})
	w.check(err)

	plain, err := w.f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Color: blackColor},
		Alignment: centered,
		Border:    border,
	})
	w.check(err)

	red, err := w.f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Color: redColor},
		Alignment: centered,
		Border:    border,
	})
	w.check(err)

	return styleSet{header: header, plain: plain, red: red}
}

// writeLabels writes row 1: the merged side labels and the results cell.
func (w *sheetWriter) writeLabels(oldName, newName string) {
	w.check(w.f.MergeCell(Sheet, "A1", "F1"))
	w.check(w.f.MergeCell(Sheet, "G1", "L1"))

	w.setCell("A1", "Old DBC: "+oldName, w.styles.header)
	w.setCell("G1", "New DBC: "+newName, w.styles.header)
	w.setCell("M1", "Comparison Results", w.styles.header)

	w.check(w.f.SetCellStyle(Sheet, "A1", "M1", w.styles.header))
}

// writeHeaders writes row 2: the 13 column titles and the widths.
func (w *sheetWriter) writeHeaders() {
	for i, name := range Columns {
		w.setCell(cellName(i, 2), name, w.styles.header)
	}

	width, _ := config.GetInt("report.column_width", 22)
	w.check(w.f.SetColWidth(Sheet, "A", "M", float64(width)))
}

// writeRow renders one change on the given sheet row, applying the
// emphasis contract for its kind.
func (w *sheetWriter) writeRow(row int, change differ.Change) {
	values := rowValues(change)
	emphasis := rowEmphasis(change)

	for col, value := range values {
		cell := cellName(col, row)

		// Node cells of a NodesChanged row get per-node emphasis.
		if change.Kind == differ.NodesChanged && isNodeColumn(col) {
			w.setNodeCell(cell, value, counterpartValue(values, col))
			continue
		}

		style := w.styles.plain
		if emphasis[col] {
			style = w.styles.red
		}
		w.setCell(cell, value, style)
	}
}

func (w *sheetWriter) setCell(cell string, value string, style int) {
	if value == "" {
		value = differ.Placeholder
	}
	w.check(w.f.SetCellValue(Sheet, cell, value))
	w.check(w.f.SetCellStyle(Sheet, cell, cell, style))
}

// setNodeCell writes a node list cell as rich text, coloring only the
// names absent from the counterpart cell. Marks are set-based, so a
// strict-policy reorder row shows no red names.
func (w *sheetWriter) setNodeCell(cell, value, counterpart string) {
	names, marks := highlight.CellMarks(value, counterpart)
	if len(names) == 0 {
		w.setCell(cell, differ.Placeholder, w.styles.plain)
		return
	}

	var runs []excelize.RichTextRun
	for i, name := range names {
		color := blackColor
		if marks[i] {
			color = redColor
		}
		runs = append(runs, excelize.RichTextRun{
			Text: name,
			Font: &excelize.Font{Color: color},
		})
		if i < len(names)-1 {
			runs = append(runs, excelize.RichTextRun{
				Text: ",",
				Font: &excelize.Font{Color: blackColor},
			})
		}
	}

	w.check(w.f.SetCellStyle(Sheet, cell, cell, w.styles.plain))
	w.check(w.f.SetCellRichText(Sheet, cell, runs))
}

// finish applies the autofilter over the header row and freezes the two
// header rows.
func (w *sheetWriter) finish(rows int) {
	lastRow := 2 + rows
	w.check(w.f.AutoFilter(Sheet, fmt.Sprintf("A2:M%d", lastRow), nil))
	w.check(w.f.SetPanes(Sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      2,
		TopLeftCell: "A3",
		ActivePane:  "bottomLeft",
	}))
}

// rowValues lays a change out into the 13 report columns.
func rowValues(change differ.Change) []string {
	return []string{
		change.Old.Name, change.Old.ID, change.Old.Signal, change.Old.Details,
		change.Old.Tx, change.Old.Rx,
		change.New.Name, change.New.ID, change.New.Signal, change.New.Details,
		change.New.Tx, change.New.Rx,
		change.Kind.String(),
	}
}

// rowEmphasis maps the emphasis contract onto per-column flags: a
// removed message paints the absent (new) side, an added message the
// absent (old) side, and signal churn paints only the owning side's
// signal cell. Kept pure so the contract is testable without a workbook.
func rowEmphasis(change differ.Change) []bool {
	emphasis := make([]bool, len(Columns))

	switch change.Kind {
	case differ.MessageRemoved:
		for col := colNewName; col <= colNewRx; col++ {
			emphasis[col] = true
		}
	case differ.MessageAdded:
		for col := colOldName; col <= colOldRx; col++ {
			emphasis[col] = true
		}
	case differ.SignalRemoved:
		emphasis[colOldSignal] = true
	case differ.SignalAdded:
		emphasis[colNewSignal] = true
	}

	return emphasis
}

// counterpartValue pairs a node column with the same column on the
// other side (old Tx vs new Tx, old Rx vs new Rx).
func counterpartValue(values []string, col int) string {
	switch col {
	case colOldTx:
		return values[colNewTx]
	case colOldRx:
		return values[colNewRx]
	case colNewTx:
		return values[colOldTx]
	case colNewRx:
		return values[colOldRx]
	}
	return ""
}

func isNodeColumn(col int) bool {
	return col == colOldTx || col == colOldRx || col == colNewTx || col == colNewRx
}

// cellName converts a 0-based column and 1-based row to an A1 ref.
func cellName(col, row int) string {
	name, err := excelize.CoordinatesToCellName(col+1, row)
	if err != nil {
		// Unreachable for the fixed 13-column layout.
		return fmt.Sprintf("A%d", row)
	}
	return name
}

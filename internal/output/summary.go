// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/dustin/go-humanize"

	"github.com/dbcdiff/dbcdiff/internal/config"
	"github.com/dbcdiff/dbcdiff/internal/differ"
)

// summaryHeaders are the terminal table columns. The xlsx report stays
// the artifact of record; this is the quick look for the console.
var summaryHeaders = []string{"Change", "Message", "ID", "Signal", "Old Tx/Rx", "New Tx/Rx"}

// Summary renders the change list as a table on w plus a one-line
// count. If w is nil, os.Stdout is used. colored enables lipgloss
// foreground styling with config-overridable colors.
func Summary(w io.Writer, changes []differ.Change, oldName, newName string, colored bool) {
	if w == nil {
		w = os.Stdout
	}

	headerStyle := lipgloss.NewStyle().Align(lipgloss.Left).Bold(true)
	cellStyle := lipgloss.NewStyle().Align(lipgloss.Left).PaddingRight(2)
	addedStyle := cellStyle
	removedStyle := cellStyle

	if colored {
		addedColor, removedColor := getColors()
		addedStyle = addedStyle.Foreground(addedColor)
		removedStyle = removedStyle.Foreground(removedColor)
	}

	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%s -> %s", oldName, newName)))

	if len(changes) == 0 {
		fmt.Fprintln(w, "No changes.")
		return
	}

	rows := make([][]string, 0, len(changes))
	for _, c := range changes {
		rows = append(rows, summaryRow(c))
	}

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if row >= len(changes) {
				return cellStyle
			}
			switch changes[row].Kind {
			case differ.MessageAdded, differ.SignalAdded:
				return addedStyle
			case differ.MessageRemoved, differ.SignalRemoved:
				return removedStyle
			}
			return cellStyle
		}).
		Headers(summaryHeaders...).
		Rows(rows...)

	fmt.Fprintln(w, t)
	fmt.Fprintln(w, countsLine(changes))
}

// summaryRow flattens a change into the terminal columns, preferring
// whichever side actually carries a value.
func summaryRow(c differ.Change) []string {
	name, id := c.New.Name, c.New.ID
	if name == differ.Placeholder {
		name, id = c.Old.Name, c.Old.ID
	}

	signal := c.New.Signal
	if signal == differ.Placeholder {
		signal = c.Old.Signal
	}

	return []string{
		c.Kind.String(),
		name,
		id,
		signal,
		c.Old.Tx + " / " + c.Old.Rx,
		c.New.Tx + " / " + c.New.Rx,
	}
}

// countsLine aggregates the change list into a single human line.
func countsLine(changes []differ.Change) string {
	counts := make(map[differ.Kind]int)
	for _, c := range changes {
		counts[c.Kind]++
	}

	return fmt.Sprintf("%s changes: %d messages added, %d removed; %d signals added, %d removed; %d node changes",
		humanize.Comma(int64(len(changes))),
		counts[differ.MessageAdded], counts[differ.MessageRemoved],
		counts[differ.SignalAdded], counts[differ.SignalRemoved],
		counts[differ.NodesChanged])
}

// getColors returns the added/removed colors for summary rows. Explicit
// config values win; otherwise pick defaults readable on the detected
// terminal background.
func getColors() (added, removed color.Color) {
	isDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)

	resolveColor := func(key string, light string, dark string) color.Color {
		colorCfg, err := config.GetString(key)
		if err == nil {
			return lipgloss.Color(colorCfg)
		}

		if isDark {
			return lipgloss.Color(dark)
		}
		return lipgloss.Color(light)
	}

	added = resolveColor("colors.added", "#007700", "#00cc66")
	removed = resolveColor("colors.removed", "#aa0000", "#ff5555")

	return
}

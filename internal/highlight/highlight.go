// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package highlight computes which node names inside a report cell get
// visual emphasis. It is deliberately free of any spreadsheet knowledge
// so the marking rules can be tested on their own.
//
// Marks are always set-based: a cell pair holding the same names in a
// different order produces no marks, even when the strict node-order
// policy flagged the row in the first place.
package highlight

import "strings"

// SplitList splits a comma-joined node cell into its names. The "-"
// placeholder and blank segments yield no names.
func SplitList(cell string) []string {
	if cell == "" || cell == "-" {
		return nil
	}

	var names []string
	for part := range strings.SplitSeq(cell, ",") {
		if part = strings.TrimSpace(part); part != "" {
			names = append(names, part)
		}
	}
	return names
}

// Marks reports, per element of list, whether it is absent from other.
// The returned slice is index-aligned with list.
func Marks(list, other []string) []bool {
	if len(list) == 0 {
		return nil
	}

	set := make(map[string]struct{}, len(other))
	for _, name := range other {
		set[name] = struct{}{}
	}

	marks := make([]bool, len(list))
	for i, name := range list {
		_, present := set[name]
		marks[i] = !present
	}
	return marks
}

// CellMarks splits both cells and returns the names of the first cell
// with their marks against the second. Convenience for renderers that
// work on the joined-string representation.
func CellMarks(cell, counterpart string) ([]string, []bool) {
	names := SplitList(cell)
	return names, Marks(names, SplitList(counterpart))
}

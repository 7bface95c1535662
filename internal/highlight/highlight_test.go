// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package highlight

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		name string
		cell string
		want []string
	}{
		{
			name: "empty",
			cell: "",
			want: nil,
		},
		{
			name: "placeholder",
			cell: "-",
			want: nil,
		},
		{
			name: "single",
			cell: "ECU1",
			want: []string{"ECU1"},
		},
		{
			name: "multiple",
			cell: "ECU1,ECU2,ECU3",
			want: []string{"ECU1", "ECU2", "ECU3"},
		},
		{
			name: "whitespace and empties trimmed",
			cell: "ECU1, ECU2,,ECU3 ",
			want: []string{"ECU1", "ECU2", "ECU3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitList(tt.cell))
		})
	}
}

func TestMarks(t *testing.T) {
	tests := []struct {
		name  string
		list  []string
		other []string
		want  []bool
	}{
		{
			name:  "empty list",
			list:  nil,
			other: []string{"A"},
			want:  nil,
		},
		{
			name:  "all present",
			list:  []string{"A", "B"},
			other: []string{"A", "B"},
			want:  []bool{false, false},
		},
		{
			name:  "reorder produces no marks",
			list:  []string{"A", "B"},
			other: []string{"B", "A"},
			want:  []bool{false, false},
		},
		{
			name:  "one missing",
			list:  []string{"A", "B", "C"},
			other: []string{"A", "C"},
			want:  []bool{false, true, false},
		},
		{
			name:  "counterpart empty",
			list:  []string{"A", "B"},
			other: nil,
			want:  []bool{true, true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Marks(tt.list, tt.other))
		})
	}
}

func TestCellMarks(t *testing.T) {
	names, marks := CellMarks("ECU1,ECU2", "ECU2")
	assert.Equal(t, []string{"ECU1", "ECU2"}, names)
	assert.Equal(t, []bool{true, false}, marks)

	// The reorder case from the strict node-order policy: the row is
	// flagged but no individual node stands out.
	names, marks = CellMarks("A,B", "B,A")
	assert.Equal(t, []string{"A", "B"}, names)
	assert.Equal(t, []bool{false, false}, marks)

	names, marks = CellMarks("-", "ECU1")
	assert.Nil(t, names)
	assert.Nil(t, marks)
}

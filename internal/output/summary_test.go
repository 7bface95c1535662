// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbcdiff/dbcdiff/internal/differ"
)

func sampleChanges() []differ.Change {
	oldDB := differ.NewDatabase("old.dbc")
	oldDB.Add(differ.NewMessage("Engine", 0x100,
		[]string{"ECU1"}, []string{"ECU2"}, []string{"RPM", "Temp"}))

	newDB := differ.NewDatabase("new.dbc")
	newDB.Add(differ.NewMessage("Engine", 0x100,
		[]string{"ECU1"}, []string{"ECU2"}, []string{"RPM"}))
	newDB.Add(differ.NewMessage("Brake", 0x200,
		[]string{"ECU3"}, nil, []string{"Pressure"}))

	return differ.Compare(oldDB, newDB, differ.NodeOrderStrict)
}

func TestSummary(t *testing.T) {
	var buf bytes.Buffer
	Summary(&buf, sampleChanges(), "old.dbc", "new.dbc", false)

	out := buf.String()
	assert.Contains(t, out, "old.dbc -> new.dbc")
	assert.Contains(t, out, "Signal Removed")
	assert.Contains(t, out, "Message Added")
	assert.Contains(t, out, "Temp")
	assert.Contains(t, out, "Brake")
	assert.Contains(t, out, "2 changes: 1 messages added, 0 removed; 0 signals added, 1 removed; 0 node changes")
}

func TestSummaryNoChanges(t *testing.T) {
	var buf bytes.Buffer
	Summary(&buf, nil, "a.dbc", "a.dbc", false)

	assert.Contains(t, buf.String(), "No changes.")
	assert.NotContains(t, buf.String(), "Change")
}

func TestSummaryRow(t *testing.T) {
	changes := sampleChanges()
	require.Len(t, changes, 2)

	// SignalRemoved row reports the owning (old) side's nodes.
	row := summaryRow(changes[0])
	assert.Equal(t, "Signal Removed", row[0])
	assert.Equal(t, "Engine", row[1])
	assert.Equal(t, "0x100", row[2])
	assert.Equal(t, "Temp", row[3])
	assert.Equal(t, "ECU1 / ECU2", row[4])
	assert.Equal(t, "- / -", row[5])

	// MessageAdded row falls back to the new side for identity.
	row = summaryRow(changes[1])
	assert.Equal(t, "Message Added", row[0])
	assert.Equal(t, "Brake", row[1])
	assert.Equal(t, "0x200", row[2])
	assert.Equal(t, "-", row[3])
}

func TestCountsLine(t *testing.T) {
	line := countsLine(sampleChanges())
	assert.True(t, strings.HasPrefix(line, "2 changes:"), line)
}

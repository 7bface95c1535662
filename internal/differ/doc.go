// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package differ holds the comparison core: keyed message snapshots and
// the two-pass walk that turns an (old, new) database pair into an
// ordered list of change rows.
//
// Messages are keyed by (name, frame id), so a renamed or re-identified
// frame is reported as one removal plus one addition rather than a
// modification. Signals are compared by name only; encoding changes are
// invisible here. Sender/receiver comparison follows a NodeOrder policy:
// the historical strict mode flags even a pure reorder of the node list,
// set mode compares membership.
//
// The package performs no I/O and trusts its inputs; malformed databases
// are the loader's problem.
package differ

// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output renders the optional terminal summary of a comparison:
// a styled table of change rows and a one-line count. The xlsx report
// remains the artifact of record.
package output

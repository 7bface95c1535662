// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package report renders a change list into an xlsx workbook: one row
// of merged side labels, one row of column headers (frozen, with an
// autofilter), then one bordered row per change. Emphasis is red font:
// whole absent side for message add/remove, the owning signal cell for
// signal churn, and individual node names for node changes.
package report

// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package loader turns a DBC file on disk into a differ.Database. The
// actual DBC grammar is handled by go.einride.tech/can; this package
// only reshapes the compiled descriptor into comparison snapshots.
package loader

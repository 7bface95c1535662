// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command wires the CLI surface: the root dbcdiff command, its
// flags with env- and config-file-backed sources, and the compare
// action that drives loader, differ, report, and summary in sequence.
package command

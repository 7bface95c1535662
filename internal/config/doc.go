// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for dbcdiff's user
// configuration. The configuration is expected to be a YAML document
// located in the user's configuration directory, typically:
//   - Linux/macOS: $XDG_CONFIG_HOME/dbcdiff.yaml or $HOME/.config/dbcdiff.yaml
//   - Windows: %APPDATA%/dbcdiff/dbcdiff.yaml
//
// Actual resolution relies on os.UserConfigDir which follows platform
// conventions. Recognized keys:
//
//	compare:
//	  node_order: strict | set
//	report:
//	  column_width: 22
//	colors:
//	  added: "#00aa00"
//	  removed: "#cc0000"
package config

// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/dbcdiff/dbcdiff/internal/config"
	"github.com/dbcdiff/dbcdiff/internal/meta"
)

// InitApp builds the root command. dbcdiff is a single-verb tool: the
// root action is the comparison itself, taking the three positional
// paths.
func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	sd, _ := os.Getwd()

	// Config is optional; run with defaults when no file exists.
	cfg, _ := config.Load() //nolint
	m := meta.Meta{
		Args:        args,
		Config:      cfg,
		Context:     ctx,
		StartingDir: sd,
	}

	app := &cli.Command{
		Name:      "dbcdiff",
		Usage:     "compare two CAN DBC databases",
		UsageText: usageText,
		ArgsUsage: "<old.dbc> <new.dbc> <report.xlsx>",
		Metadata: map[string]any{
			"meta": m,
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "dbcdiff version info",
				HideDefault: true,
			},
			NewNodeOrderFlag(),
			summaryFlag,
			colorFlag,
		},
		Action: compareAction,
	}

	return app, nil
}

// GetMeta returns the Meta instance stashed in the command metadata.
func GetMeta(cmd *cli.Command) meta.Meta {
	m, _ := cmd.Metadata["meta"].(meta.Meta)
	return m
}

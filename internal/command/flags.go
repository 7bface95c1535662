// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/dbcdiff/dbcdiff/internal/config"
)

var (
	summaryFlag *cli.BoolFlag = &cli.BoolFlag{
		Name:    "summary",
		Aliases: []string{"s"},
		Usage:   "print a change summary to stdout after writing the report",
		Value:   false,
	}

	colorFlag *cli.BoolFlag = &cli.BoolFlag{
		Name:    "color",
		Aliases: []string{"c"},
		Usage:   "enable colored summary output",
		Value:   false,
	}
)

// NewNodeOrderFlag constructs the --node-order flag. Its value is
// resolved flag > DBCDIFF_NODE_ORDER env > config file, where the
// config file is consulted at "compare.node_order" and then the bare
// "node_order" key.
func NewNodeOrderFlag() *cli.StringFlag {
	flag := &cli.StringFlag{
		Name:  "node-order",
		Usage: "Tx/Rx comparison policy: strict (order-sensitive) or set",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("DBCDIFF_NODE_ORDER"),
		),
		Value: "strict",
		Validator: func(value string) error {
			return FlagValidators(value, NodeOrderValidator)
		},
	}

	// Without a config file the chain is just flag and env.
	if path, err := config.File(); err == nil {
		flag.Sources.Chain = append(flag.Sources.Chain,
			yaml.YAML("compare.node_order", altsrc.StringSourcer(path)),
			yaml.YAML("node_order", altsrc.StringSourcer(path)))
	}

	return flag
}

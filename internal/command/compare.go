// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/dbcdiff/dbcdiff/internal/differ"
	"github.com/dbcdiff/dbcdiff/internal/loader"
	"github.com/dbcdiff/dbcdiff/internal/output"
	"github.com/dbcdiff/dbcdiff/internal/report"
)

const usageText = "dbcdiff [options] <old.dbc> <new.dbc> <report.xlsx>"

// ErrUsage marks argument errors so main can map them to exit code 1.
var ErrUsage = errors.New("usage: " + usageText)

// compareAction is the action handler for the root command. It loads
// both databases, runs the comparison, writes the xlsx report, and
// optionally prints a terminal summary.
func compareAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing compare for %v", m.Args[1:])

	args := cmd.Args()
	if args.Len() != 3 {
		return fmt.Errorf("%w (got %d arguments)", ErrUsage, args.Len())
	}
	oldPath, newPath, outPath := args.Get(0), args.Get(1), args.Get(2)

	policy, err := differ.ParseNodeOrder(cmd.String("node-order"))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	// Load faults carry the loader's diagnostics untouched.
	oldDB, err := loader.Load(oldPath)
	if err != nil {
		return err
	}
	newDB, err := loader.Load(newPath)
	if err != nil {
		return err
	}

	changes := differ.Compare(oldDB, newDB, policy)

	if err := report.Write(outPath, changes, oldDB.Name(), newDB.Name()); err != nil {
		return err
	}

	if cmd.Bool("summary") {
		output.Summary(os.Stdout, changes, oldDB.Name(), newDB.Name(), cmd.Bool("color"))
	}

	log.Infof("compared %s against %s: %d changes -> %s",
		oldDB.Name(), newDB.Name(), len(changes), outPath)

	return nil
}

// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"context"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/galaxydex/internal/meta"
)

// ShowCommandAction runs one showcase pass against the archive and renders
// it to the console.
func ShowCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	settings := BuildSettings(cmd)
	store, stats, sc := BuildStack(settings, BuildEmitter(cmd))

	if err := sc.Run(ctx); err != nil {
		// The failure has already been counted; report it and move on.
		ReportStats(settings, stats, store)
		return err
	}

	ReportStats(settings, stats, store)
	return nil
}

// ShowCommandBuilder constructs the cli.Command for "show", wiring metadata,
// flags, and action/validator handlers.
func ShowCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "run the archive showcase once",
		UsageText: `galaxydex show [options]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: NewGlobalFlags("show"),
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := GlobalFlagsValidator(ctx, c); err != nil {
				return err
			}
			return ShowCommandAction(ctx, c)
		},
	}
}

// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"context"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/galaxydex/internal/meta"
	"github.com/staranto/galaxydex/internal/server"
)

// ServeCommandAction starts the presentation server and blocks until it
// exits.
func ServeCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	settings := BuildSettings(cmd)
	store, stats, sc := BuildStack(settings, BuildEmitter(cmd))

	srv := server.New(settings, stats, store, sc)
	return srv.ListenAndServe()
}

// ServeCommandBuilder constructs the cli.Command for "serve", wiring
// metadata, flags, and action/validator handlers.
func ServeCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "serve",
		Usage:     "serve the web front end",
		UsageText: `galaxydex serve [options]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{
			NewPortFlag("serve"),
		}, NewGlobalFlags("serve")...),
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := GlobalFlagsValidator(ctx, c); err != nil {
				return err
			}
			return ServeCommandAction(ctx, c)
		},
	}
}

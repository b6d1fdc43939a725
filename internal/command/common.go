// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/staranto/galaxydex/internal/archive"
	"github.com/staranto/galaxydex/internal/config"
	mylog "github.com/staranto/galaxydex/internal/log"
	"github.com/staranto/galaxydex/internal/meta"
	"github.com/staranto/galaxydex/internal/output"
	"github.com/staranto/galaxydex/internal/showcase"
)

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// BuildSettings resolves the runtime Settings from parsed flags, once, and
// raises the log level when debug is on.
func BuildSettings(cmd *cli.Command) config.Settings {
	settings := config.Settings{
		BaseURL:  cmd.String("base-url"),
		Debug:    cmd.Bool("debug"),
		Insecure: cmd.Bool("insecure"),
		Port:     int(cmd.Int("port")),
		Timeout:  time.Duration(cmd.Int("timeout")) * time.Millisecond,
	}
	mylog.SetDebug(settings.Debug)
	return settings
}

// BuildEmitter constructs the output emitter from the rendering flags.
func BuildEmitter(cmd *cli.Command) *output.Emitter {
	return &output.Emitter{
		Format: cmd.String("output"),
		Color:  cmd.Bool("color"),
		Titles: cmd.Bool("titles"),
	}
}

// BuildStack wires the full fetch stack: store, stats, client and showcase.
// Every component shares the one store and the one stats instance.
func BuildStack(settings config.Settings, emit *output.Emitter) (
	*archive.Store,
	*archive.Stats,
	*showcase.Showcase,
) {
	store := archive.NewStore()
	stats := &archive.Stats{}
	client := archive.NewClient(settings, store, stats)
	return store, stats, showcase.New(client, stats, emit)
}

// ReportStats prints the counter summary after a run. The stats reporter is
// debug-gated on the console; the /stats endpoint serves it unconditionally.
func ReportStats(settings config.Settings, stats *archive.Stats, store *archive.Store) {
	if !settings.Debug {
		return
	}

	snap := stats.Snapshot()
	fmt.Printf("api_calls=%d errors=%d cache_size=%d data_size=%s timeout=%dms\n",
		snap.APICalls,
		snap.Errors,
		store.Len(),
		humanize.Bytes(uint64(snap.DataSize)),
		settings.TimeoutMS(),
	)
}

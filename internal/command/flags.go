// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/staranto/galaxydex/internal/config"
)

func init() {
	cfg, _ = config.Load("")
}

var cfg config.Type

// NewGlobalFlags builds the flag set shared by every subcommand. params[0]
// is the command name, used as the config file namespace so `show.output`
// beats a bare `output`.
func NewGlobalFlags(params ...string) (flags []cli.Flag) {
	flags = []cli.Flag{
		&cli.StringFlag{
			Name:  "base-url",
			Usage: "archive API base URL",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("GALAXYDEX_BASE_URL"),
				yaml.YAML(params[0]+"."+"base-url", altsrc.StringSourcer(cfg.Source)),
				yaml.YAML("base-url", altsrc.StringSourcer(cfg.Source)),
			),
			Value: config.DefaultBaseURL,
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator)
			},
		},
		&cli.BoolWithInverseFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(params[0]+"."+"color", altsrc.StringSourcer(cfg.Source)),
				yaml.YAML("color", altsrc.StringSourcer(cfg.Source)),
			),
			Value: false,
		},
		&cli.BoolWithInverseFlag{
			Name:  "debug",
			Usage: "enable verbose console logging",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(params[0]+"."+"debug", altsrc.StringSourcer(cfg.Source)),
				yaml.YAML("debug", altsrc.StringSourcer(cfg.Source)),
			),
			Value: true,
		},
		&cli.BoolFlag{
			Name:        "insecure",
			Usage:       "skip TLS certificate validation (logged, off by default)",
			HideDefault: true,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(params[0]+"."+"output", altsrc.StringSourcer(cfg.Source)),
				yaml.YAML("output", altsrc.StringSourcer(cfg.Source)),
			),
			Value: "text",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.IntFlag{
			Name:    "timeout",
			Usage:   "request timeout in milliseconds",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("GALAXYDEX_TIMEOUT"),
				yaml.YAML(params[0]+"."+"timeout", altsrc.StringSourcer(cfg.Source)),
				yaml.YAML("timeout", altsrc.StringSourcer(cfg.Source)),
			),
			Value: config.DefaultTimeoutMS,
		},
		&cli.BoolWithInverseFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(params[0]+"."+"titles", altsrc.StringSourcer(cfg.Source)),
				yaml.YAML("titles", altsrc.StringSourcer(cfg.Source)),
			),
			Value: true,
		},
	}

	return
}

// NewPortFlag constructs the listen-port flag for serve. The PORT env
// variable matches what most PaaS runtimes inject.
func NewPortFlag(params ...string) *cli.IntFlag {
	return &cli.IntFlag{
		Name:    "port",
		Aliases: []string{"p"},
		Usage:   "presentation server listen port",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("PORT"),
			yaml.YAML(params[0]+"."+"port", altsrc.StringSourcer(cfg.Source)),
			yaml.YAML("port", altsrc.StringSourcer(cfg.Source)),
		),
		Value: config.DefaultPort,
	}
}

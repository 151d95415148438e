// Package main is a small command-line harness over the vector and utmatrix
// packages: it builds containers from flags, runs one operation and prints
// the result.
//
// Usage:
//
//	lvlinear vector add --a 1,1,1,1 --b 2,2,2,2
//	lvlinear vector mul-scalar --a 1,2,3 --scalar 2 --start 1
//	lvlinear matrix add --size 4 --a-fill 1 --b-fill 2
//	lvlinear --config lvlinear.yaml matrix sub --size 3 --b-size 4
//
// Limits and logging come from the config package (YAML file and
// LVLINEAR_* environment variables).
package main

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/lvlinear/config"
)

// runner carries the state shared by every command after Before has run.
type runner struct {
	cfg *config.Config
	log *log.Logger
}

func newApp(out, errOut io.Writer) *cli.App {
	r := &runner{}

	return &cli.App{
		Name:                 "lvlinear",
		Usage:                "Bounds-checked vector and upper-triangular matrix arithmetic",
		EnableBashCompletion: true,
		Writer:               out,
		ErrWriter:            errOut,
		// Exit codes are applied by main, never from inside Run.
		ExitErrHandler: func(*cli.Context, error) {},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML configuration file",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Override log.level from the configuration",
			},
		},
		Before: func(cCtx *cli.Context) error {
			cfg, err := config.Load(cCtx.String("config"))
			if err != nil {
				return cli.Exit(err.Error(), 2)
			}
			if lvl := cCtx.String("log-level"); lvl != "" {
				cfg.Log.Level = lvl
			}
			logger, err := cfg.NewLogger(errOut)
			if err != nil {
				return cli.Exit(err.Error(), 2)
			}
			r.cfg, r.log = cfg, logger
			return nil
		},
		Commands: []*cli.Command{
			r.vectorCommand(),
			r.matrixCommand(),
		},
	}
}

func main() {
	err := newApp(os.Stdout, os.Stderr).Run(os.Args)
	if err == nil {
		return
	}
	code := 1
	if ec, ok := err.(cli.ExitCoder); ok {
		code = ec.ExitCode()
	}
	log.WithField("code", code).Error(err)
	os.Exit(code)
}

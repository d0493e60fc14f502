package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/codegangsta/cli"
	"github.com/hashicorp/errwrap"

	"github.com/katalvlaran/lvpath/internal/app"
	"github.com/katalvlaran/lvpath/internal/config"
)

// main is the entrypoint for the lvpath command.
func main() {
	// Use a minimal logger until the session logger is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run builds the CLI and executes args (args[0] is the program name).
// Summaries go to outW, logs to logW.
func run(outW, logW io.Writer, args []string) error {
	return newCLI(outW, logW).Run(args)
}

func newCLI(outW, logW io.Writer) *cli.App {
	a := cli.NewApp()
	a.Name = "lvpath"
	a.Usage = "single-source shortest paths over undirected edge lists"
	a.Version = "0.1.0"
	a.Writer = outW
	a.Flags = []cli.Flag{}

	a.Commands = []cli.Command{
		{
			Name:  "run",
			Usage: "execute an HCL run file (load, export, solve, mutate, solve again)",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "config, c", Value: "run.hcl", Usage: "path to the run file"},
			},
			Action: func(ctx *cli.Context) error {
				_, err := app.RunFile(context.Background(), outW, logW, ctx.String("config"))
				return err
			},
		},
		{
			Name:  "paths",
			Usage: "load an edge list and print shortest distances from one node",
			Flags: append(inputFlags(),
				cli.IntFlag{Name: "start, s", Usage: "source node"},
				cli.StringFlag{Name: "engine, e", Value: config.EngineBoth, Usage: "dijkstra, bellman-ford or both"},
			),
			Action: func(ctx *cli.Context) error {
				cfg, err := flagConfig(ctx)
				if err != nil {
					return err
				}
				cfg.Start = ctx.Int("start")
				cfg.Engine = ctx.String("engine")

				return execute(outW, logW, cfg)
			},
		},
		{
			Name:  "export",
			Usage: "load an edge list and write it back as 'source destination weight' lines",
			Flags: append(inputFlags(),
				cli.StringFlag{Name: "output, o", Usage: "target file, gzipped when it ends in .gz"},
			),
			Action: func(ctx *cli.Context) error {
				cfg, err := flagConfig(ctx)
				if err != nil {
					return err
				}
				cfg.Output = ctx.String("output")
				if cfg.Output == "" {
					return fmt.Errorf("export: --output is required")
				}
				cfg.Engine = config.EngineNone

				return execute(outW, logW, cfg)
			},
		},
	}

	return a
}

// inputFlags are shared by every command that reads an edge list directly.
func inputFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{Name: "input, i", Usage: "edge-list file, plain or gzip"},
		cli.StringFlag{Name: "log-level", Value: "info", Usage: "debug, info, warn or error"},
		cli.StringFlag{Name: "log-format", Value: "text", Usage: "text or json"},
	}
}

// flagConfig starts a Config from the shared input flags.
func flagConfig(ctx *cli.Context) (*config.Config, error) {
	cfg := config.Default()
	cfg.Input = ctx.String("input")
	cfg.LogLevel = ctx.String("log-level")
	cfg.LogFormat = ctx.String("log-format")
	if cfg.Input == "" {
		return nil, fmt.Errorf("%s: --input is required", ctx.Command.Name)
	}

	return &cfg, nil
}

func execute(outW, logW io.Writer, cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return errwrap.Wrapf("Invalid flags: {{err}}", err)
	}
	_, err := app.NewApp(outW, logW, cfg).Run(context.Background())

	return err
}

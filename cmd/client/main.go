// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/MKhiriev/go-note-sync/internal/client"
	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

var errMissingArgument = errors.New("missing argument")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	cmd := &cli.Command{
		Name:    "note-sync",
		Usage:   "Synchronize a note account into a local store",
		Version: buildVersion,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a JSON or YAML config file",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (debug, info, warn, error)",
			},
			&cli.StringFlag{
				Name:  "dsn",
				Usage: "Local store DSN: a SQLite path or a postgres:// URL",
			},
			&cli.StringFlag{
				Name:  "token",
				Usage: "Authentication token or OAuth token string",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "sync",
				Usage: "Run one sync pass",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "full", Usage: "Force a full sync"},
				},
				Action: withApp(func(ctx context.Context, app *client.App, _ *cli.Command) error {
					return app.Sync(ctx)
				}),
			},
			{
				Name:  "state",
				Usage: "Show the service sync state and the local high-water mark",
				Action: withApp(func(ctx context.Context, app *client.App, _ *cli.Command) error {
					return app.State(ctx)
				}),
			},
			{
				Name:  "watch",
				Usage: "Sync periodically and serve the status endpoint",
				Flags: []cli.Flag{
					&cli.DurationFlag{Name: "interval", Usage: "Time between sync passes"},
					&cli.StringFlag{Name: "address", Usage: "Status endpoint address, e.g. 127.0.0.1:9464"},
				},
				Action: withApp(func(ctx context.Context, app *client.App, _ *cli.Command) error {
					return app.Watch(ctx)
				}),
			},
			{
				Name:      "thumbnail",
				Usage:     "Render the thumbnail of a note",
				ArgsUsage: "<note-guid>",
				Flags:     []cli.Flag{outFlag()},
				Action: withApp(func(ctx context.Context, app *client.App, cmd *cli.Command) error {
					guid, err := firstArg(cmd, "note guid")
					if err != nil {
						return err
					}
					return app.Thumbnail(ctx, guid, cmd.String("out"))
				}),
			},
			{
				Name:      "ink",
				Usage:     "Render a synced ink resource",
				ArgsUsage: "<resource-guid>",
				Flags:     []cli.Flag{outFlag()},
				Action: withApp(func(ctx context.Context, app *client.App, cmd *cli.Command) error {
					guid, err := firstArg(cmd, "resource guid")
					if err != nil {
						return err
					}
					return app.Ink(ctx, guid, cmd.String("out"))
				}),
			},
			{
				Name:  "notebooks",
				Usage: "List the account's notebooks",
				Action: withApp(func(ctx context.Context, app *client.App, _ *cli.Command) error {
					return app.Notebooks(ctx)
				}),
			},
			{
				Name:  "version",
				Usage: "Print build information",
				Action: func(context.Context, *cli.Command) error {
					printBuildInfo()
					return nil
				},
			},
			{
				Name:  "tags",
				Usage: "List the account's tags",
				Action: withApp(func(ctx context.Context, app *client.App, _ *cli.Command) error {
					return app.Tags(ctx)
				}),
			},
		},
	}

	if err := cmd.Run(ctx, os.Args); err != nil {
		fmt.Fprint(os.Stderr, client.ErrorBanner(err))
		os.Exit(1)
	}
}

func outFlag() cli.Flag {
	return &cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "Write the PNG to this path"}
}

// withApp loads the configuration, builds the client app and runs action on
// it, closing the app afterwards.
func withApp(action func(ctx context.Context, app *client.App, cmd *cli.Command) error) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		cfg, err := config.GetClientConfig(overrides(cmd))
		if err != nil {
			return fmt.Errorf("error getting configs: %w", err)
		}

		log := logger.NewClientLogger("go-note-sync", logger.FileOptions{
			Path:      cfg.App.LogFile,
			MaxSizeKB: cfg.App.LogMaxSizeKB,
			MaxRolls:  cfg.App.LogMaxRolls,
			Level:     cfg.App.LogLevel,
		})
		defer log.Close()

		buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
		log.Info().Str("build", buildInfo.String()).Str("command", cmd.Name).Msg("starting")

		app, err := client.NewApp(ctx, cfg, buildInfo, os.Stdout, log)
		if err != nil {
			log.Err(err).Msg("init client app error")
			return err
		}
		defer func() {
			if err := app.Close(); err != nil {
				log.Err(err).Msg("close client app")
			}
		}()

		if err = action(ctx, app, cmd); err != nil {
			log.Err(err).Str("command", cmd.Name).Msg("command failed")
			return err
		}
		return nil
	}
}

// overrides maps command-line flags onto the highest-priority config layer.
// Unset flags stay zero and leave lower layers in place.
func overrides(cmd *cli.Command) *config.StructuredConfig {
	flags := &config.StructuredConfig{ConfigFilePath: cmd.String("config")}
	flags.App.LogLevel = cmd.String("log-level")
	flags.Storage.DB.DSN = cmd.String("dsn")
	flags.Service.Token = cmd.String("token")

	if cmd.IsSet("full") {
		flags.Sync.FullSync = cmd.Bool("full")
	}
	if cmd.IsSet("interval") {
		flags.Workers.SyncInterval = cmd.Duration("interval")
	}
	if cmd.IsSet("address") {
		flags.Server.HTTPAddress = cmd.String("address")
	}
	return flags
}

func firstArg(cmd *cli.Command, what string) (string, error) {
	if cmd.Args().Len() == 0 {
		return "", fmt.Errorf("%w: %s", errMissingArgument, what)
	}
	return cmd.Args().First(), nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}

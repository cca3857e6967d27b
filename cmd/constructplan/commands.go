package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"constructplan/internal/assist"
	"constructplan/internal/config"
	"constructplan/internal/logging"
	"constructplan/internal/project"
	"constructplan/internal/session"
	"constructplan/internal/trace"
	"constructplan/internal/ui"
)

// loadConfig resolves the config and applies the logging flag overrides.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.Resolve(cmd.String("config"))
	if err != nil {
		return nil, err
	}
	if p := cmd.String("log-file"); p != "" {
		cfg.Log.Path = p
	}
	if l := cmd.String("log-level"); l != "" {
		cfg.Log.Level = l
	}
	return cfg, nil
}

func runTUI(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.Open(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer closeLog()

	catalog, err := project.Load(cfg.Data.Fixtures)
	if err != nil {
		return err
	}

	tp, err := trace.New(ctx, cfg.Trace)
	if err != nil {
		return fmt.Errorf("start tracing: %w", err)
	}
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			logger.Warn("trace shutdown", "err", err)
		}
	}()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	startDir, err := os.Getwd()
	if err != nil {
		logger.Warn("working directory unavailable, file picker uses its default", "err", err)
	}
	deps := ui.Deps{
		Store:     session.NewStore(),
		Catalog:   catalog,
		Config:    cfg,
		Logger:    logger,
		Generator: assist.NewScripted(catalog.Prompts, cfg.Timings.Generate()),
		Context:   ctx,
		StartDir:  startDir,
	}
	if tp.Enabled() {
		deps.Tracer = tp.Tracer()
	}

	logger.Info("starting", "projects", len(catalog.Projects), "tracing", tp.Enabled())
	p := tea.NewProgram(ui.NewAppModel(deps).AsTeaModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}

func configCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Manage the configuration file",
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Write the example configuration",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "path",
						Usage: "Where to write the file",
						Value: config.LocalFile,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					path := cmd.String("path")
					if err := config.CreateConfigFile(path); err != nil {
						return err
					}
					fmt.Printf("Wrote %s\n", path)
					return nil
				},
			},
			{
				Name:  "show",
				Usage: "Print the effective configuration",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg, err := loadConfig(cmd)
					if err != nil {
						return err
					}
					out, err := cfg.Encode()
					if err != nil {
						return err
					}
					_, err = os.Stdout.Write(out)
					return err
				},
			},
		},
	}
}

func fixturesCommand() *cli.Command {
	return &cli.Command{
		Name:  "fixtures",
		Usage: "List the projects in the fixture catalog",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			catalog, err := project.Load(cfg.Data.Fixtures)
			if err != nil {
				return err
			}
			for _, p := range catalog.Projects {
				fmt.Printf("%-6s %-28s %s\n", p.ID, p.Name, p.Status.Label())
			}
			return nil
		},
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/aminakh/trk/internal/cli"
	"github.com/aminakh/trk/internal/config"
	"github.com/aminakh/trk/internal/logger"
	"github.com/aminakh/trk/internal/storage"
	"github.com/aminakh/trk/internal/tracking"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path"`
	Debug   bool   `help:"Enable debug logging."`

	Init    cli.InitCmd   `cmd:"" help:"Initialize trk storage."`
	Tui     cli.TuiCmd    `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Day     cli.DayCmd    `cmd:"" help:"Show trackers for a day."`
	Agenda  cli.AgendaCmd `cmd:"" help:"Show upcoming days and what is due."`
	Mark    cli.MarkCmd   `cmd:"" help:"Toggle a tracker's completion."`
	Stats   cli.StatsCmd  `cmd:"" help:"Show all-time statistics."`
	Filter  cli.FilterCmd `cmd:"" help:"Show or set the display filter."`
	Tracker struct {
		Add    cli.TrackerAddCmd    `cmd:"" help:"Add a new tracker."`
		List   cli.TrackerListCmd   `cmd:"" help:"List all trackers."`
		Edit   cli.TrackerEditCmd   `cmd:"" help:"Edit a tracker."`
		Move   cli.TrackerMoveCmd   `cmd:"" help:"Move a tracker to another category."`
		Delete cli.TrackerDeleteCmd `cmd:"" help:"Delete a tracker."`
	} `cmd:"" help:"Manage trackers."`
	Category struct {
		Add    cli.CategoryAddCmd    `cmd:"" help:"Add a category."`
		List   cli.CategoryListCmd   `cmd:"" help:"List categories."`
		Rename cli.CategoryRenameCmd `cmd:"" help:"Rename a category."`
		Delete cli.CategoryDeleteCmd `cmd:"" help:"Delete a category."`
	} `cmd:"" help:"Manage categories."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a database backup."`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore the database from a backup."`
	} `cmd:"" help:"Manage backups."`
	Doctor cli.DoctorCmd `cmd:"" help:"Run health checks."`
	Debug_ struct {
		DBPath cli.DebugDBPathCmd `cmd:"" name:"db-path" help:"Print the database path."`
		Dump   cli.DebugDumpCmd   `cmd:"" help:"Dump all data as JSON."`
	} `cmd:"" name:"debug" help:"Debugging helpers."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("trk"),
		kong.Description("Personal habit and event tracker"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	var cfg *config.Config
	var err error
	if CLI.Config != "" {
		cfg, err = config.LoadFromFile(CLI.Config)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if CLI.Debug {
		cfg.Log.Debug = true
	}

	if err := logger.Init(logger.Config{Debug: cfg.Log.Debug, ConfigDir: cfg.ConfigDir()}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	store := storage.NewSQLiteStore(cfg.Database.Path)
	appCtx := &cli.Context{
		Config:  cfg,
		Store:   store,
		Service: tracking.NewService(store),
	}

	if err := ctx.Run(appCtx); err != nil {
		logger.Error("command failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

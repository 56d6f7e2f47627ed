package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/sauravks/leetdash/internal/cli"
	"github.com/sauravks/leetdash/internal/constants"
	"github.com/sauravks/leetdash/internal/errors"
	"github.com/sauravks/leetdash/internal/logger"
	"github.com/sauravks/leetdash/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"State document location: a JSON file path, a .db SQLite path, an http(s) URL (read-only), or a PostgreSQL connection string without embedded credentials." default:"${config_path}"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Tui       cli.TuiCmd       `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Today     cli.TodayCmd     `cmd:"" help:"Show problems assigned for today."`
	Solved    cli.SolvedCmd    `cmd:"" help:"Show solved problems."`
	Later     cli.LaterCmd     `cmd:"" help:"Show problems marked for later."`
	Assign    cli.AssignCmd    `cmd:"" help:"Run the daily assignment pass."`
	MarkLater cli.MarkLaterCmd `cmd:"" name:"mark-later" help:"Mark a problem for later review."`
	Init      cli.InitCmd      `cmd:"" help:"Initialize leetdash storage."`
	Doctor    cli.DoctorCmd    `cmd:"" help:"Run health checks on the state document."`
	Backup    struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage state document backups."`
	Keyring struct {
		Set    cli.KeyringSetCmd    `cmd:"" help:"Store a database connection string in the OS keyring."`
		Get    cli.KeyringGetCmd    `cmd:"" help:"Show the stored connection string (password masked)."`
		Delete cli.KeyringDeleteCmd `cmd:"" help:"Delete the stored connection string."`
	} `cmd:"" help:"Manage database credentials."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal LeetCode practice dashboard"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":      constants.Version,
			"config_path":  constants.DefaultConfigPath,
			"daily_target": strconv.Itoa(constants.DailyTarget),
		},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: configDir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	if (strings.HasPrefix(CLI.Config, "postgres://") || strings.HasPrefix(CLI.Config, "postgresql://")) &&
		storage.HasEmbeddedCredentials(CLI.Config) {
		fmt.Fprintf(os.Stderr, "Error: connection strings with embedded credentials are not allowed.\n")
		fmt.Fprintf(os.Stderr, "       Store the full string in the OS keyring with 'leetdash keyring set',\n")
		fmt.Fprintf(os.Stderr, "       or export %s instead.\n", storage.EnvConnectionVar)
		os.Exit(1)
	}

	store := storage.New(CLI.Config)
	appCtx := &cli.Context{Store: store}

	// Load the document before running the command; init, backup, and
	// keyring operate without a loaded snapshot.
	command := ctx.Command()
	if !strings.HasPrefix(command, "init") &&
		!strings.HasPrefix(command, "backup") &&
		!strings.HasPrefix(command, "keyring") {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
	}

	errors.Fatal(ctx.Run(appCtx))
}

// configDir picks a directory for logs near the configured document, falling
// back to the user config dir for remote sources.
func configDir(config string) string {
	if strings.Contains(config, "://") {
		if dir, err := os.UserConfigDir(); err == nil {
			return filepath.Join(dir, constants.AppName)
		}
		return "."
	}
	if strings.HasPrefix(config, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			config = filepath.Join(home, strings.TrimPrefix(config, "~"))
		}
	}
	return filepath.Dir(config)
}

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// CLI is the top-level command-line interface for sqlweave.
type CLI struct {
	Workspace string `help:"Path to the project workspace." default:"." type:"existingdir"`
	LogLevel  string `help:"Log level (debug, info, warn, error)." default:"info" enum:"debug,info,warn,error"`

	SetOptions       SetOptionsCmd       `cmd:"" name:"set-options" help:"Set the user defined options used by the transpiler."`
	TranspileFile    TranspileFileCmd    `cmd:"" name:"transpile-file" help:"Process a single file through the transpiler."`
	TranspileProject TranspileProjectCmd `cmd:"" name:"transpile-project" help:"Process the entire project through the transpiler."`
	ParameterPresets ParameterPresetsCmd `cmd:"" name:"parameter-presets" help:"Create a starter parameter presets file."`
	Version          VersionCmd          `cmd:"" help:"Print version information."`
}

// appContext carries the logger and workspace into command Run methods.
type appContext struct {
	logger    *slog.Logger
	workspace string
}

func main() {
	var cli CLI
	ktx := kong.Parse(&cli,
		kong.Name("sqlweave"),
		kong.Description("Transpile SQL Server code written with Go templating into pure SQL."),
		kong.UsageOnError(),
	)

	app := &appContext{
		logger:    newLogger(cli.LogLevel),
		workspace: cli.Workspace,
	}

	if err := ktx.Run(app); err != nil {
		app.logger.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func newLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
}

// VersionCmd prints build information.
type VersionCmd struct{}

func (c *VersionCmd) Run(_ *appContext) error {
	fmt.Printf("sqlweave %s (commit %s, built %s)\n", Version, Commit, BuildDate)
	return nil
}

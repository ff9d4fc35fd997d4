package main

import (
	"github.com/quarryhill/sqlweave/pkg/transpile"
)

// SetOptionsCmd persists transpiler options to the workspace. Flags that
// are not given keep their default values.
type SetOptionsCmd struct {
	TemplatesDir  string   `short:"t" help:"Path to the directory containing the project's templates."`
	TranspiledDir string   `short:"p" help:"Path to the directory where transpiled files will be output."`
	DebugDir      string   `short:"d" help:"Path to the directory where debug files will be output."`
	AnsiNulls     *bool    `short:"n" help:"Whether to explicitly enable ANSI nulls in transpiled code."`
	QuotedID      *bool    `short:"q" help:"Whether to explicitly enable quoted identifiers in transpiled code."`
	SkipPrefixes  []string `short:"s" help:"File name prefixes to skip when transpiling the project."`
}

func (c *SetOptionsCmd) Run(app *appContext) error {
	opts := transpile.DefaultOptions()

	if c.TemplatesDir != "" {
		opts.TemplatesDir = c.TemplatesDir
	}
	if c.TranspiledDir != "" {
		opts.TranspiledDir = c.TranspiledDir
	}
	if c.DebugDir != "" {
		opts.DebugDir = c.DebugDir
	}
	if c.AnsiNulls != nil {
		opts.AnsiNulls = *c.AnsiNulls
	}
	if c.QuotedID != nil {
		opts.QuotedID = *c.QuotedID
	}
	if len(c.SkipPrefixes) > 0 {
		opts.SkipPrefixes = c.SkipPrefixes
	}

	if err := transpile.SaveOptions(app.workspace, opts); err != nil {
		return err
	}
	app.logger.Info("Options saved", "workspace", app.workspace)
	return nil
}

// TranspileFileCmd renders a single template file.
type TranspileFileCmd struct {
	File   string `arg:"" help:"Path to the template file to transpile."`
	Format string `arg:"" help:"Output format (none, create, replace, debug), case-insensitive."`
}

func (c *TranspileFileCmd) Run(app *appContext) error {
	tp, err := newTranspiler(app, c.Format)
	if err != nil {
		return err
	}

	out, err := tp.TranspileFile(c.File)
	if err != nil {
		return err
	}
	app.logger.Info("File transpiled", "output", out)
	return nil
}

// TranspileProjectCmd renders every template in the templates directory.
type TranspileProjectCmd struct {
	Format string `arg:"" help:"Output format (none, create, replace, debug), case-insensitive."`
}

func (c *TranspileProjectCmd) Run(app *appContext) error {
	tp, err := newTranspiler(app, c.Format)
	if err != nil {
		return err
	}

	written, err := tp.TranspileProject()
	if err != nil {
		return err
	}
	app.logger.Info("Project transpiled", "count", len(written))
	return nil
}

// ParameterPresetsCmd creates the starter presets file.
type ParameterPresetsCmd struct{}

func (c *ParameterPresetsCmd) Run(app *appContext) error {
	path, err := transpile.WriteStarterPresets(app.workspace)
	if err != nil {
		return err
	}
	app.logger.Info("Parameter presets file ready", "path", path)
	return nil
}

func newTranspiler(app *appContext, format string) (*transpile.Transpiler, error) {
	f, err := transpile.ParseFormat(format)
	if err != nil {
		return nil, err
	}

	opts, err := transpile.LoadOptions(app.workspace)
	if err != nil {
		return nil, err
	}

	return transpile.NewTranspiler(app.logger, app.workspace, f, opts)
}

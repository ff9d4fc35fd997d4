package transpile

import (
	"bytes"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"text/template"

	"github.com/natefinch/atomic"
	"github.com/valyala/bytebufferpool"

	"github.com/quarryhill/sqlweave/pkg/values"
)

// TemplateSuffix is stripped from template file names when deriving
// output paths, so "proc.sql.tmpl" transpiles to "proc.sql".
const TemplateSuffix = ".tmpl"

// RenderData is the data handed to every template execution.
type RenderData struct {
	OutFormat string
	AnsiNulls bool
	QuotedID  bool
	Presets   values.Presets
}

// Transpiler renders templated SQL files from a workspace into plain
// SQL. All methods are concurrent-safe.
type Transpiler struct {
	logger    *slog.Logger
	options   *Options
	presets   PresetTable
	funcMap   template.FuncMap
	workspace string
	format    Format
	mu        sync.RWMutex
}

// NewTranspiler creates a Transpiler for one workspace and output
// format. The per-template preset table is loaded once, up front.
func NewTranspiler(logger *slog.Logger, workspace string, format Format, opts *Options) (*Transpiler, error) {
	presets, err := LoadPresets(workspace)
	if err != nil {
		return nil, err
	}

	t := &Transpiler{
		logger:    logger,
		options:   opts,
		presets:   presets,
		workspace: workspace,
		format:    format,
	}
	t.funcMap = t.makeFuncMap()

	logger.Info("Transpiler initialized", "workspace", workspace, "format", format)
	return t, nil
}

// Refresh reloads the options and preset files from the workspace,
// picking up edits without rebuilding the Transpiler.
func (t *Transpiler) Refresh() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	opts, err := LoadOptions(t.workspace)
	if err != nil {
		return err
	}
	presets, err := LoadPresets(t.workspace)
	if err != nil {
		return err
	}

	t.options = opts
	t.presets = presets
	t.logger.Info("Transpiler refreshed", "workspace", t.workspace)
	return nil
}

// templatesDir returns the absolute path of the templates directory.
func (t *Transpiler) templatesDir() string {
	return absAgainst(t.workspace, t.options.TemplatesDir)
}

// outputDir returns the absolute directory rendered files are written
// to, which depends on the output format.
func (t *Transpiler) outputDir() string {
	if t.format == FormatDebug {
		return absAgainst(t.workspace, t.options.DebugDir)
	}
	return absAgainst(t.workspace, t.options.TranspiledDir)
}

// TranspileFile renders a single template file and writes the result,
// returning the output path. The file may be given relative to the
// workspace or absolute, but must live under the templates directory.
func (t *Transpiler) TranspileFile(path string) (string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.transpile(path)
}

func (t *Transpiler) transpile(path string) (string, error) {
	relPath, err := t.relTemplatePath(path)
	if err != nil {
		return "", err
	}

	tmpl, err := t.parse(filepath.Join(t.templatesDir(), relPath))
	if err != nil {
		return "", err
	}

	data := RenderData{
		OutFormat: string(t.format),
		AnsiNulls: t.options.AnsiNulls,
		QuotedID:  t.options.QuotedID,
		Presets:   t.presets.For(relPath),
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err = tmpl.ExecuteTemplate(buf, filepath.Base(relPath), data); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", relPath, err)
	}

	outPath := filepath.Join(t.outputDir(), strings.TrimSuffix(relPath, TemplateSuffix))
	if err = os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	if err = atomic.WriteFile(outPath, bytes.NewReader(buf.B)); err != nil {
		return "", fmt.Errorf("failed to write transpiled file: %w", err)
	}

	t.logger.Info("Transpiled file", "template", relPath, "output", outPath)
	return outPath, nil
}

// TranspileProject empties the output directory, then renders every
// template file whose name does not start with a skip prefix. It
// returns the paths of all files written.
func (t *Transpiler) TranspileProject() ([]string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if err := clearDir(t.outputDir()); err != nil {
		return nil, fmt.Errorf("failed to empty output directory: %w", err)
	}

	var written []string
	err := filepath.WalkDir(t.templatesDir(), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || t.skipped(d.Name()) {
			return nil
		}

		out, err := t.transpile(path)
		if err != nil {
			return err
		}
		written = append(written, out)
		return nil
	})
	if err != nil {
		return nil, err
	}

	t.logger.Info("Transpiled project", "count", len(written), "output_dir", t.outputDir())
	return written, nil
}

// ExecuteString renders a raw template string using the transpiler's
// function map and options. This is ideal for previewing template
// fragments without writing them to disk.
func (t *Transpiler) ExecuteString(content string, presets values.Presets) (string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	tmpl, err := template.New("").Funcs(t.funcMap).Parse(content)
	if err != nil {
		return "", fmt.Errorf("failed to parse string template: %w", err)
	}

	data := RenderData{
		OutFormat: string(t.format),
		AnsiNulls: t.options.AnsiNulls,
		QuotedID:  t.options.QuotedID,
		Presets:   presets,
	}

	var sb strings.Builder
	if err = tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render string template: %w", err)
	}
	return sb.String(), nil
}

// parse builds the template set for one file: the format overlay
// partials first, if the format has any, then the file itself.
func (t *Transpiler) parse(path string) (*template.Template, error) {
	tmpl := template.New("").Funcs(t.funcMap)

	if dir := t.format.overlayDir(); dir != "" {
		pattern := filepath.Join(t.workspace, FormatsDir, dir, "*"+TemplateSuffix)
		parsed, err := tmpl.ParseGlob(pattern)
		if err != nil {
			if !strings.Contains(err.Error(), "pattern matches no files") {
				return nil, fmt.Errorf("failed to parse format partials: %w", err)
			}
		} else {
			tmpl = parsed
		}
	}

	tmpl, err := tmpl.ParseFiles(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template file: %w", err)
	}
	return tmpl, nil
}

// relTemplatePath resolves path against the workspace and returns it
// relative to the templates directory, rejecting files outside it.
func (t *Transpiler) relTemplatePath(path string) (string, error) {
	abs := absAgainst(t.workspace, path)

	rel, err := filepath.Rel(t.templatesDir(), abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("file is not inside the templates directory: %s", path)
	}
	return rel, nil
}

// skipped reports whether a file name matches a configured skip prefix.
func (t *Transpiler) skipped(name string) bool {
	for _, prefix := range t.options.SkipPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// clearDir removes everything inside dir, creating it if missing.
func clearDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return os.MkdirAll(dir, 0o755)
		}
		return err
	}
	for _, entry := range entries {
		if err = os.RemoveAll(filepath.Join(dir, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

// Package app wires the document engine to its configuration, logging,
// and the CLI front ends (demo, interactive, script).
package app

import (
	"fmt"
	"io"
	"os"

	"github.com/dshills/quill/internal/config"
	"github.com/dshills/quill/internal/engine/document"
)

// Options holds the command-line options.
type Options struct {
	// ConfigPath is the configuration file to load (optional).
	ConfigPath string
	// ScriptPath runs a Lua script against a fresh document.
	ScriptPath string
	// Interactive starts the line-oriented editing session.
	Interactive bool
	// LogLevel overrides the configured log level when non-empty.
	LogLevel string
	// Debug forces debug-level logging.
	Debug bool
}

// Application coordinates the document, configuration, and logging.
type Application struct {
	opts    Options
	cfg     config.Config
	logger  *Logger
	doc     *document.Document
	watcher *config.Watcher

	// in and out are the harness's terminal; tests substitute them.
	in  io.Reader
	out io.Writer
}

// New creates an application from command-line options.
func New(opts Options) (*Application, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	if opts.LogLevel != "" {
		cfg.Logging.Level = opts.LogLevel
	}
	if opts.Debug {
		cfg.Logging.Level = "debug"
	}

	logger := NewLogger(LoggerConfig{
		Level:  ParseLogLevel(cfg.Logging.Level),
		Output: os.Stderr,
		Prefix: "quill",
	})

	app := &Application{
		opts:   opts,
		cfg:    cfg,
		logger: logger,
		doc:    newDocument(cfg),
		in:     os.Stdin,
		out:    os.Stdout,
	}

	return app, nil
}

// newDocument creates a document configured per cfg.
func newDocument(cfg config.Config) *document.Document {
	return document.New(
		document.WithHistoryLimit(cfg.History.MaxEntries),
		document.WithNoopSnapshots(cfg.History.NoopSnapshots),
	)
}

// SetIO redirects the application's input and output streams.
func (app *Application) SetIO(in io.Reader, out io.Writer) {
	app.in = in
	app.out = out
}

// Logger returns the application logger.
func (app *Application) Logger() *Logger {
	return app.logger
}

// Document returns the application's document.
func (app *Application) Document() *document.Document {
	return app.doc
}

// Run executes the selected mode: script, interactive, or demo.
func (app *Application) Run() error {
	switch {
	case app.opts.ScriptPath != "":
		app.logger.Debug("running script %s", app.opts.ScriptPath)
		return app.runScript(app.opts.ScriptPath)
	case app.opts.Interactive:
		app.startConfigWatch()
		return app.runInteractive()
	default:
		return app.runDemo()
	}
}

// Shutdown releases application resources.
func (app *Application) Shutdown() {
	if app.watcher != nil {
		app.watcher.Stop()
		app.watcher = nil
	}
}

// startConfigWatch reloads the config file on change so an interactive
// session can adjust the log level without restarting. Best-effort: a
// watch failure is logged and the session continues.
func (app *Application) startConfigWatch() {
	if app.opts.ConfigPath == "" {
		return
	}

	watcher, err := config.NewWatcher(app.opts.ConfigPath)
	if err != nil {
		app.logger.Warn("config watch unavailable: %v", err)
		return
	}

	watcher.OnChange(func(cfg config.Config) {
		app.logger.SetLevel(ParseLogLevel(cfg.Logging.Level))
		app.logger.WithComponent("config").Info("configuration reloaded from %s", app.opts.ConfigPath)
	})

	app.watcher = watcher
}

// runDemo performs a short append/undo sequence and prints the text
// after each step.
func (app *Application) runDemo() error {
	doc := app.doc

	doc.Append("Привет").Append(", мир!")
	app.printText() // Привет, мир!

	app.undo()
	app.printText() // Привет

	doc.Append(" Java!")
	app.printText() // Привет Java!

	app.undo()
	app.printText() // Привет

	return nil
}

// printText prints the current document text.
func (app *Application) printText() {
	fmt.Fprintln(app.out, app.doc.Text())
}

// undo performs an undo, printing a notice when there is nothing left
// to undo.
func (app *Application) undo() {
	if !app.doc.Undo() {
		fmt.Fprintln(app.out, "Nothing to undo: history is empty.")
	}
}

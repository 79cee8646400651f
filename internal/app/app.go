// internal/app/app.go
package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/bethropolis/primer/internal/clipboard"
	"github.com/bethropolis/primer/internal/config"
	"github.com/bethropolis/primer/internal/demo"
	"github.com/bethropolis/primer/internal/event"
	"github.com/bethropolis/primer/internal/logger"
	"github.com/bethropolis/primer/internal/utils"
)

// Streams are the console streams demos read from and write to.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// App wires configuration, the demo registry, the event bus and the clipboard.
type App struct {
	cfg          *config.Config
	streams      Streams
	eventManager *event.Manager
	demoManager  *demo.Manager
	clipboard    *clipboard.Manager

	runs     int // Demos started
	failures int // Demos that returned an error
}

// NewApp creates and initializes a new application instance with the built-in demos.
func NewApp(cfg *config.Config, streams Streams) (*App, error) {
	return newApp(cfg, streams, builtinDemos())
}

func newApp(cfg *config.Config, streams Streams, demos []demo.Demo) (*App, error) {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	if streams.In == nil {
		streams.In = strings.NewReader("") // Reads report io.EOF
	}
	if streams.Out == nil {
		streams.Out = io.Discard
	}
	if streams.Err == nil {
		streams.Err = io.Discard
	}

	a := &App{
		cfg:          cfg,
		streams:      streams,
		eventManager: event.NewManager(),
		demoManager:  demo.NewManager(),
		clipboard:    clipboard.NewManager(cfg.Demos.SystemClipboard),
	}

	if cfg.Demos.SystemClipboard && !clipboard.SystemAvailable() {
		logger.Warnf("App: system clipboard requested but no backend is available")
	}

	if err := registerDemos(a.demoManager, demos); err != nil {
		return nil, fmt.Errorf("demo registration failed: %w", err)
	}

	// --- Subscribe App level handlers ---
	a.eventManager.Subscribe(event.TypeDemoStarted, a.handleDemoStarted)
	a.eventManager.Subscribe(event.TypeDemoFinished, a.handleDemoFinished)
	a.eventManager.Subscribe(event.TypeDemoFailed, a.handleDemoFailed)
	a.eventManager.Subscribe(event.TypeRecordsSorted, a.handleRecordsSorted)

	logger.Debugf("App: %d demos registered", len(a.demoManager.Names()))
	return a, nil
}

// env builds the environment handed to every demo.
func (a *App) env() *demo.Env {
	return &demo.Env{
		In:        a.streams.In,
		Out:       a.streams.Out,
		Err:       a.streams.Err,
		Config:    a.cfg.Demos,
		Clipboard: a.clipboard,
		Events:    a.eventManager,
	}
}

// Run executes the named demo with args.
func (a *App) Run(name string, args []string) error {
	return a.demoManager.Run(name, a.env(), args)
}

// List writes every demo name with its description, names padded to one column.
func (a *App) List(w io.Writer) error {
	names := a.demoManager.Names()
	width := utils.MaxWidth(names)
	for _, name := range names {
		d, _ := a.demoManager.Get(name)
		if _, err := fmt.Fprintf(w, "  %s  %s\n", utils.PadRight(name, width), d.Description()); err != nil {
			return err
		}
	}
	return nil
}

// Clipboard returns the clipboard shared by demos.
func (a *App) Clipboard() *clipboard.Manager {
	return a.clipboard
}

// Stats returns how many demos were started and how many failed.
func (a *App) Stats() (runs, failures int) {
	return a.runs, a.failures
}

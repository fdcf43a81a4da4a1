package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/splashlog/splash/internal/config"
	"github.com/splashlog/splash/internal/format"
	"github.com/splashlog/splash/internal/plugin"
	"github.com/splashlog/splash/internal/sample"
	"github.com/splashlog/splash/internal/tail"
)

// Options configure a splash invocation.
type Options struct {
	Mode       string // parsing mode; empty falls back to config then default
	Path       string // file to tail; empty reads standard input
	ConfigPath string // override config path (optional)
	PollEvery  int    // tail poll interval in seconds; zero uses config/default
	NoColor    bool   // disable all emphasis
}

// Run tails the configured file (or consumes standard input) and writes
// rendered lines to standard output until the context is cancelled or a
// fatal I/O condition occurs.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	reg, err := newRegistry(themeFor(opts))
	if err != nil {
		return err
	}

	mode := opts.Mode
	if mode == "" {
		mode = cfg.Mode
	}
	active := activePlugin(reg, mode)

	if opts.Path == "" {
		return stream(ctx, os.Stdin, os.Stdout, active)
	}

	interval := time.Duration(cfg.PollSeconds) * time.Second
	if opts.PollEvery > 0 {
		interval = time.Duration(opts.PollEvery) * time.Second
	}

	tailer, err := tail.New(opts.Path)
	if err != nil {
		return err
	}

	return tailer.Run(ctx, interval, func(batch string) error {
		renderBatch(os.Stdout, active, batch)
		return nil
	})
}

// ListPlugins writes the registered plugins with version and description.
func ListPlugins(w io.Writer, opts Options) error {
	reg, err := newRegistry(themeFor(opts))
	if err != nil {
		return err
	}

	names := reg.List()
	sort.Strings(names)
	for _, name := range names {
		p, err := reg.Get(name)
		if err != nil {
			continue
		}
		meta := p.Metadata()
		mark := ""
		if reg.IsDisabled(name) {
			mark = " (disabled)"
		}
		fmt.Fprintf(w, "%s %s%s\n    %s\n", meta.Name, meta.Version, mark, meta.Description)
	}
	return nil
}

// Discover writes every candidate plugin file found in the search paths.
func Discover(w io.Writer, opts Options) error {
	d, err := newDiscovery(opts)
	if err != nil {
		return err
	}
	candidates, err := d.Candidates()
	if err != nil {
		return fmt.Errorf("discover plugins: %w", err)
	}
	if len(candidates) == 0 {
		fmt.Fprintln(w, "no plugin candidates found")
		return nil
	}
	for _, c := range candidates {
		fmt.Fprintln(w, c)
	}
	return nil
}

// Find locates the first candidate plugin file matching name. An explicitly
// requested plugin that cannot be found is an error, unlike during scanning.
func Find(w io.Writer, opts Options, name string) error {
	d, err := newDiscovery(opts)
	if err != nil {
		return err
	}
	path, found, err := d.FindByName(name)
	if err != nil {
		return fmt.Errorf("find plugin: %w", err)
	}
	if !found {
		return fmt.Errorf("plugin %q not found in search paths", name)
	}
	fmt.Fprintln(w, path)
	return nil
}

// Detect samples the tail of a file and reports each registered plugin's
// confidence that it handles the format.
func Detect(w io.Writer, opts Options, path string, maxSamples int) error {
	lines, err := sample.LastLines(path, maxSamples)
	if err != nil {
		return err
	}

	reg, err := newRegistry(format.PlainTheme())
	if err != nil {
		return err
	}

	names := reg.List()
	sort.Strings(names)
	for _, name := range names {
		p, err := reg.Get(name)
		if err != nil {
			continue
		}
		fmt.Fprintf(w, "%-8s %.2f\n", name, plugin.DetectFormat(p, lines))
	}
	return nil
}

// newRegistry assembles the registry of built-in formats.
func newRegistry(theme format.Theme) (*plugin.Registry, error) {
	reg := plugin.NewRegistry()
	rules := format.NewRules()
	if err := reg.Register(format.NewCLF(theme)); err != nil {
		return nil, fmt.Errorf("register built-ins: %w", err)
	}
	if err := reg.Register(format.NewAdHoc(rules, theme)); err != nil {
		return nil, fmt.Errorf("register built-ins: %w", err)
	}
	return reg, nil
}

// newDiscovery builds plugin discovery over the default search paths plus
// any extras from the config file.
func newDiscovery(opts Options) (*plugin.Discovery, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	d := plugin.NewDiscovery()
	for _, p := range cfg.PluginPaths {
		d.AddPath(p)
	}
	return d, nil
}

// activePlugin resolves the mode selector through the registry. Any selector
// that is not a registered name, including the empty string, falls back to
// the ad-hoc highlighter. The choice is made once per run, not per line.
func activePlugin(reg *plugin.Registry, mode string) plugin.Plugin {
	if p, err := reg.Get(mode); err == nil {
		return p
	}
	p, err := reg.Get(format.AdHocName)
	if err != nil {
		// the highlighter is always registered by newRegistry
		panic(err)
	}
	return p
}

func themeFor(opts Options) format.Theme {
	if opts.NoColor {
		return format.PlainTheme()
	}
	return format.DefaultTheme()
}

// stream consumes r line by line until it closes or the context is
// cancelled, rendering to w. No offset tracking is involved. The scan runs in
// its own goroutine so cancellation is honored even while a read blocks.
func stream(ctx context.Context, r io.Reader, w io.Writer, p plugin.Plugin) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					if err != nil {
						return fmt.Errorf("read input: %w", err)
					}
					return nil
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			renderLine(w, p, line)
		}
	}
}

// renderBatch splits a tail delta into lines and renders each.
func renderBatch(w io.Writer, p plugin.Plugin, batch string) {
	for _, line := range strings.Split(batch, "\n") {
		renderLine(w, p, line)
	}
}

// renderLine routes one line through the active plugin. Empty lines are
// skipped. A NoMatch drops the line silently; a ParseError is reported to
// stderr and the line skipped.
func renderLine(w io.Writer, p plugin.Plugin, line string) {
	if line == "" {
		return
	}
	switch res := p.ParseLine(line); res.Kind {
	case plugin.Parsed:
		fmt.Fprintln(w, res.Text)
	case plugin.ParseError:
		log.Printf("%s: %s", p.Metadata().Name, res.Err)
	}
}

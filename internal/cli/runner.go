package cli

import (
	"context"
	"time"

	"github.com/achuchra/ts-types-from-strapi/internal/config"
	"github.com/achuchra/ts-types-from-strapi/internal/errors"
	"github.com/achuchra/ts-types-from-strapi/internal/generator"
	"github.com/achuchra/ts-types-from-strapi/internal/utils"
	"github.com/achuchra/ts-types-from-strapi/internal/utils/fileops"
	"github.com/achuchra/ts-types-from-strapi/internal/watcher"
)

// RunSummary contains information about a completed transform run
type RunSummary struct {
	InterfacesFound   int
	InterfacesEmitted int
	AttributesEmitted int
	BytesWritten      int
	Duration          time.Duration
	Interfaces        []string
}

// Runner coordinates the read -> transform -> write pipeline for the CLI
type Runner struct {
	config      *config.Config
	diagnostics *utils.DiagnosticSystem
	files       *fileops.FileOps
	generator   *generator.Generator
	summary     RunSummary
}

// NewRunner creates a runner for the given configuration
func NewRunner(cfg *config.Config, diagnostics *utils.DiagnosticSystem) (*Runner, error) {
	filter, err := cfg.CompileFilter()
	if err != nil {
		return nil, errors.Wrapf(err, "invalid filter %q", cfg.Filter)
	}

	return &Runner{
		config:      cfg,
		diagnostics: diagnostics,
		files:       fileops.NewFileOps(),
		generator: generator.NewGenerator(generator.Options{
			Filter:          filter,
			TrailingNewline: cfg.Output.TrailingNewline,
		}),
	}, nil
}

// Run executes one transform from source to destination. The destination
// is only written once reading, parsing, and rendering have all succeeded;
// a failed run leaves an existing destination untouched.
func (r *Runner) Run(source, destination string) error {
	start := time.Now()
	r.summary = RunSummary{}

	r.diagnostics.Verbose("Reading %s", source)
	text, err := r.files.ReadSource(source)
	if err != nil {
		r.diagnostics.Error("Failed to read source: %v", err)
		return err
	}

	output, err := r.generator.Generate(text)
	if err != nil {
		r.diagnostics.Error("Failed to transform %s: %v", source, err)
		return err
	}

	if err := r.files.WriteGenerated(destination, []byte(output.Content)); err != nil {
		r.diagnostics.Error("Failed to write destination: %v", err)
		return err
	}

	r.summary = RunSummary{
		InterfacesFound:   output.BlocksScanned,
		InterfacesEmitted: len(output.Interfaces),
		BytesWritten:      len(output.Content),
		Duration:          time.Since(start),
		Interfaces:        make([]string, 0, len(output.Interfaces)),
	}
	for _, iface := range output.Interfaces {
		r.summary.AttributesEmitted += len(iface.Attributes)
		r.summary.Interfaces = append(r.summary.Interfaces, iface.Name)
		r.diagnostics.Debug("Emitted %s with %d attributes", iface.Name, len(iface.Attributes))
	}

	r.diagnostics.Progress("Generated %d interfaces -> %s", len(output.Interfaces), destination)
	return nil
}

// Check regenerates in memory and compares against the destination without
// writing anything. ErrStale is returned when the destination is missing
// or no longer matches.
func (r *Runner) Check(source, destination string) error {
	text, err := r.files.ReadSource(source)
	if err != nil {
		r.diagnostics.Error("Failed to read source: %v", err)
		return err
	}

	output, err := r.generator.Generate(text)
	if err != nil {
		r.diagnostics.Error("Failed to transform %s: %v", source, err)
		return err
	}

	existing, exists, err := r.files.ReadGenerated(destination)
	if err != nil {
		r.diagnostics.Error("Failed to read destination: %v", err)
		return err
	}
	if !exists {
		r.diagnostics.Error("✗ %s does not exist", destination)
		return errors.Wrapf(errors.ErrStale, "%s missing", destination)
	}
	if existing != output.Content {
		r.diagnostics.Error("✗ %s is out of date, rerun the generator", destination)
		return errors.Wrapf(errors.ErrStale, "%s", destination)
	}

	r.diagnostics.Success("✓ %s is up to date", destination)
	return nil
}

// Watch runs an initial transform, then reruns it whenever the source
// changes, until the context is cancelled.
func (r *Runner) Watch(ctx context.Context, source, destination string) error {
	if err := r.Run(source, destination); err != nil {
		return err
	}

	debounce := time.Duration(r.config.Watch.DebounceMS) * time.Millisecond
	sourceWatcher, err := watcher.New(source, debounce, func() {
		if err := r.Run(source, destination); err != nil {
			r.diagnostics.Warn("Regeneration failed: %v", err)
		}
	})
	if err != nil {
		return err
	}
	sourceWatcher.Start(ctx)
	defer sourceWatcher.Stop()

	r.diagnostics.Info("Watching %s (debounce %s), press Ctrl-C to stop", source, debounce)
	<-ctx.Done()
	return nil
}

// Summary returns the summary of the last successful run
func (r *Runner) Summary() RunSummary {
	return r.summary
}

// ReportSummary prints the emitted interfaces and the post-run statistics
func (r *Runner) ReportSummary() {
	summary := r.summary

	if len(summary.Interfaces) > 0 {
		r.diagnostics.Subsection("Interfaces")
		for _, name := range summary.Interfaces {
			r.diagnostics.List("%s", name)
		}
	}

	r.diagnostics.Summary("Transform complete", []utils.Stat{
		{Name: "Interfaces found", Value: summary.InterfacesFound},
		{Name: "Interfaces emitted", Value: summary.InterfacesEmitted},
		{Name: "Attributes emitted", Value: summary.AttributesEmitted},
		{Name: "Bytes written", Value: summary.BytesWritten},
		{Name: "Duration", Value: summary.Duration.Round(time.Millisecond)},
	})
}

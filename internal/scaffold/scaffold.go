// Package scaffold embeds the starter configuration file and writes
// it to a target project directory for `decoy init`.
package scaffold

import (
	"embed"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/unbound-force/decoy/internal/config"
)

//go:embed assets/decoy.yaml
var assets embed.FS

// Options configures the scaffold operation.
type Options struct {
	// TargetDir is the root directory to scaffold into.
	// Defaults to the current working directory.
	TargetDir string

	// Force overwrites an existing config file when true.
	// When false, an existing file is skipped.
	Force bool

	// Version is the decoy version string to embed in the
	// version marker comment. Set by ldflags at build time.
	// Defaults to "dev" for development builds.
	Version string

	// Stdout is the writer for summary output.
	// Defaults to os.Stdout.
	Stdout io.Writer
}

// Result reports what the scaffold operation did.
type Result struct {
	// Created is the path written for the first time, if any.
	Created string

	// Skipped is the path that already existed and was not
	// overwritten (Force was false), if any.
	Skipped string

	// Overwritten is the path that existed and was replaced
	// (Force was true), if any.
	Overwritten string
}

// versionMarker returns the version marker comment to prepend to the
// scaffolded file.
func versionMarker(version string) string {
	if version == "" {
		version = "dev"
	}
	return fmt.Sprintf("# scaffolded by decoy %s\n", version)
}

// Run writes a starter .decoy.yaml into the target directory.
//
// The file is prepended with a version marker comment:
//
//	# scaffolded by decoy vX.Y.Z
//
// If the file already exists and opts.Force is false, it is skipped.
// If opts.Force is true, it is overwritten.
func Run(opts Options) (*Result, error) {
	if opts.TargetDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		opts.TargetDir = cwd
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}

	// Check for go.mod and warn if absent.
	goModPath := filepath.Join(opts.TargetDir, "go.mod")
	if _, err := os.Stat(goModPath); os.IsNotExist(err) {
		fmt.Fprintln(opts.Stdout, "Warning: no go.mod found in target directory.")
		fmt.Fprintln(opts.Stdout, "Decoy works best in a Go module root.")
		fmt.Fprintln(opts.Stdout)
	}

	outPath := filepath.Join(opts.TargetDir, config.DefaultFileName)
	_, statErr := os.Stat(outPath)
	exists := statErr == nil

	result := &Result{}
	if exists && !opts.Force {
		result.Skipped = config.DefaultFileName
		printSummary(opts.Stdout, result)
		return result, nil
	}

	content, err := assets.ReadFile("assets/decoy.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded asset: %w", err)
	}

	out := append([]byte(versionMarker(opts.Version)), content...)
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return nil, fmt.Errorf("creating %s: %w", config.DefaultFileName, err)
	}

	if exists {
		result.Overwritten = config.DefaultFileName
	} else {
		result.Created = config.DefaultFileName
	}
	printSummary(opts.Stdout, result)
	return result, nil
}

// printSummary writes a human-readable summary of the scaffold
// operation to w.
func printSummary(w io.Writer, r *Result) {
	fmt.Fprintln(w, "Decoy configuration initialized:")
	if r.Created != "" {
		fmt.Fprintf(w, "  created: %s\n", r.Created)
	}
	if r.Skipped != "" {
		fmt.Fprintf(w, "  skipped: %s (already exists; use --force to overwrite)\n", r.Skipped)
	}
	if r.Overwritten != "" {
		fmt.Fprintf(w, "  overwritten: %s\n", r.Overwritten)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Edit the file, then run `decoy resolve ./...` to check your contracts.")
}

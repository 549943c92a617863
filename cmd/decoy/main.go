package main

import (
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/unbound-force/decoy/internal/config"
	"github.com/unbound-force/decoy/internal/extract"
	"github.com/unbound-force/decoy/internal/report"
	"github.com/unbound-force/decoy/internal/resolve"
	"github.com/unbound-force/decoy/internal/scaffold"
)

// logger is the application-wide structured logger (writes to stderr).
var logger = charmlog.NewWithOptions(os.Stderr, charmlog.Options{
	ReportTimestamp: false,
})

// Set by build flags.
var version = "dev"

func main() {
	root := &cobra.Command{
		Use:   "decoy",
		Short: "Decoy — configurable test doubles for Go contracts",
		Long: `Decoy turns the interface types of a Go package into
configurable test doubles. The resolve command inspects a package,
assigns each interface member a unique public identity, groups
overloads, and reports members whose identities collide.`,
		Version: version,
	}

	root.AddCommand(newResolveCmd())
	root.AddCommand(newSchemaCmd())
	root.AddCommand(newInitCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// resolveParams holds the parsed flags for the resolve command.
type resolveParams struct {
	pkgPath        string
	format         string
	contract       string
	configPath     string
	allowConflicts bool
	interactive    bool
	stdout         io.Writer
	stderr         io.Writer
}

// runResolve is the extracted, testable body of the resolve command.
func runResolve(p resolveParams) error {
	if p.format != "text" && p.format != "json" {
		return fmt.Errorf("invalid format %q: must be 'text' or 'json'", p.format)
	}

	cfg, err := config.Load(p.configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger.Info("resolving contracts", "pkg", p.pkgPath)
	loaded, err := extract.Load(p.pkgPath)
	if err != nil {
		return err
	}

	set := extract.Members(loaded, selector(cfg, p.contract))
	if len(set.Contracts) == 0 {
		if p.contract != "" {
			return fmt.Errorf("contract %q not found in package %q", p.contract, p.pkgPath)
		}
		logger.Warn("no exported interface types found")
		return nil
	}

	res := resolve.Resolve(set.Members)
	view := report.NewView(loaded.Pkg.PkgPath, res)

	logger.Info("resolution complete",
		"contracts", len(set.Contracts),
		"identities", len(view.Identities),
		"conflicts", len(view.Conflicts))

	if p.interactive {
		return runInteractiveResolve(view)
	}

	switch p.format {
	case "json":
		err = report.WriteJSON(p.stdout, view)
	default:
		err = report.WriteText(p.stdout, view)
	}
	if err != nil {
		return err
	}

	return checkConflicts(view, p.allowConflicts)
}

// selector builds the contract-name filter for extraction from the
// config selection globs and the optional --contract flag.
func selector(cfg *config.Config, contract string) func(name string) bool {
	if contract != "" {
		return func(name string) bool { return name == contract }
	}
	return cfg.Selects
}

// checkConflicts returns an error when the view carries unresolved
// conflicts and conflicts are not explicitly allowed. The report has
// already been written by the time this runs, so the error only
// drives the exit code.
func checkConflicts(view report.View, allow bool) error {
	if allow || len(view.Conflicts) == 0 {
		return nil
	}
	return fmt.Errorf("%d unresolved member conflict(s)", len(view.Conflicts))
}

func newResolveCmd() *cobra.Command {
	var (
		format         string
		contract       string
		configPath     string
		allowConflicts bool
		interactive    bool
	)

	cmd := &cobra.Command{
		Use:   "resolve [package]",
		Short: "Resolve double identities for a package's contracts",
		Long: `Resolve a Go package's exported interface types into double
identities: unique public names, overload groups keyed by stable
signature keys, and conflicts for members that collide across
contracts.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(resolveParams{
				pkgPath:        args[0],
				format:         format,
				contract:       contract,
				configPath:     configPath,
				allowConflicts: allowConflicts,
				interactive:    interactive,
				stdout:         os.Stdout,
				stderr:         os.Stderr,
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", "text",
		"output format: text or json")
	cmd.Flags().StringVarP(&contract, "contract", "c", "",
		"resolve a single contract by name (default: all selected by config)")
	cmd.Flags().StringVar(&configPath, "config", "",
		"path to config file (default: .decoy.yaml if present)")
	cmd.Flags().BoolVar(&allowConflicts, "allow-conflicts", false,
		"exit zero even when conflicts are reported")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false,
		"launch interactive TUI for browsing identities")

	return cmd
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for decoy resolve output",
		Long: `Print the JSON Schema (Draft 2020-12) that documents the
structure of decoy resolve --format=json output. Useful for
validating output or generating client types.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), report.Schema)
			return err
		},
	}
}

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Write a starter decoy configuration",
		Long: `Write a starter .decoy.yaml into the target directory (default:
current directory). Existing files are kept unless --force is set.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := ""
			if len(args) == 1 {
				dir = args[0]
			}
			_, err := scaffold.Run(scaffold.Options{
				TargetDir: dir,
				Force:     force,
				Version:   version,
				Stdout:    cmd.OutOrStdout(),
			})
			return err
		},
	}

	cmd.Flags().BoolVar(&force, "force", false,
		"overwrite an existing config file")

	return cmd
}

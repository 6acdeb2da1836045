package commands

import (
	"encoding/json"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/chainspect/chainspect/internal/cli/config"
	"github.com/chainspect/chainspect/runtime/metadata"
)

var (
	// Global flags for inspect commands
	metadataPath string
	outputFormat string
	verbose      bool
	noColor      bool
)

// NewInspectCommand creates the inspect command group
func NewInspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Inspect a runtime metadata snapshot",
		Long: `Inspect a runtime metadata snapshot.

The inspect command reads a JSON metadata snapshot and renders the runtime's
pallets with their storage items, calls, constants, events, and errors.

This is useful for:
  • Exploring an unfamiliar runtime
  • Debugging call indices and storage defaults
  • Checking which pallets emit which events and errors
  • Feeding structured runtime data to tooling (--format json)

Output order follows the source order of the snapshot, so repeated runs over
the same snapshot produce identical output.`,
		Example: `  # Compact overview of every pallet
  chainspect inspect overview

  # Tabular pallet listing
  chainspect inspect pallets

  # Calls, constants, and storage of pallets that have them
  chainspect inspect calls
  chainspect inspect constants
  chainspect inspect storage

  # Events and errors grouped per pallet
  chainspect inspect events
  chainspect inspect errors

  # Detail for one pallet
  chainspect inspect pallet Balances

  # JSON output for tooling
  chainspect inspect pallets --format json

  # Explicit snapshot location
  chainspect inspect overview --metadata snapshots/runtime.json`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				color.NoColor = true
			}
		},
	}

	cmd.PersistentFlags().StringVar(&metadataPath, "metadata", "", "Path to the metadata snapshot (default from chainspect.yml)")
	cmd.PersistentFlags().StringVar(&outputFormat, "format", "", "Output format: text, table, or json (default from chainspect.yml)")
	cmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Log load diagnostics")
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	cmd.AddCommand(newInspectOverviewCommand())
	cmd.AddCommand(newInspectPalletsCommand())
	cmd.AddCommand(newInspectPalletCommand())
	cmd.AddCommand(newInspectCallsCommand())
	cmd.AddCommand(newInspectConstantsCommand())
	cmd.AddCommand(newInspectStorageCommand())
	cmd.AddCommand(newInspectEventsCommand())
	cmd.AddCommand(newInspectErrorsCommand())

	return cmd
}

// loadRegistry resolves the snapshot path (flag, then config) and builds the
// validated registry. Construction failures surface as a single diagnostic;
// nothing is rendered from a snapshot that fails validation.
func loadRegistry() (*metadata.Registry, error) {
	path := metadataPath
	if path == "" {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		path = cfg.Metadata.Path
	}

	logger := zap.NewNop()
	if verbose {
		if dev, err := zap.NewDevelopment(); err == nil {
			logger = dev
		}
	}
	defer func() { _ = logger.Sync() }()

	reg, err := metadata.LoadFile(path)
	if err != nil {
		return nil, err
	}

	logger.Info("loaded metadata snapshot",
		zap.String("path", path),
		zap.Int("pallets", len(reg.Pallets())),
	)
	return reg, nil
}

// resolveFormat returns the effective output format: the --format flag if
// set, otherwise the configured default.
func resolveFormat(fallback string) string {
	if outputFormat != "" {
		return outputFormat
	}
	if cfg, err := config.Load(); err == nil && cfg.Output.Format != "" {
		return cfg.Output.Format
	}
	return fallback
}

func outputJSON(w io.Writer, data interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// newInspectOverviewCommand creates the 'inspect overview' command
func newInspectOverviewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Compact listing of every pallet and its entries",
		Long: `Compact listing of every pallet and its entries.

Each pallet is printed with the names of its storage items (s), calls (c),
constants (cst), events (e), and errors (err).`,
		Example: `  # Text overview
  chainspect inspect overview

  # Structured overview for tooling
  chainspect inspect overview --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegistry()
			if err != nil {
				return err
			}

			if resolveFormat("text") == "json" {
				return outputJSON(cmd.OutOrStdout(), snapshotFromRegistry(reg))
			}

			metadata.NewPrinter(cmd.OutOrStdout()).Overview(reg)
			return nil
		},
	}
}

// snapshot mirrors the registry contents through its read accessors. JSON
// consumers get structured data this way rather than parsing rendered text.
type snapshot struct {
	Pallets []metadata.PalletRecord `json:"pallets"`
	Events  []metadata.EventVariant `json:"events,omitempty"`
	Errors  []metadata.ErrorVariant `json:"errors,omitempty"`
}

func snapshotFromRegistry(reg *metadata.Registry) snapshot {
	snap := snapshot{Pallets: reg.Pallets()}
	for _, pallet := range snap.Pallets {
		snap.Events = append(snap.Events, reg.Events(pallet.Index)...)
		snap.Errors = append(snap.Errors, reg.Errors(pallet.Index)...)
	}
	return snap
}

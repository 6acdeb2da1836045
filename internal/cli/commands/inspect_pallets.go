package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/chainspect/chainspect/internal/cli/ui"
	"github.com/chainspect/chainspect/runtime/metadata"
)

// PalletSummary contains summary information about a pallet
type PalletSummary struct {
	Name          string `json:"name"`
	Index         uint8  `json:"index"`
	StorageCount  int    `json:"storage_count"`
	CallCount     int    `json:"call_count"`
	ConstantCount int    `json:"constant_count"`
	EventCount    int    `json:"event_count"`
	ErrorCount    int    `json:"error_count"`
}

// newInspectPalletsCommand creates the 'inspect pallets' command
func newInspectPalletsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pallets",
		Short: "List all pallets of the runtime",
		Long: `List all pallets of the runtime.

Shows each pallet with its index and per-category entry counts. Use the
'inspect pallet <name>' command for full detail on a single pallet.`,
		Example: `  # Tabular listing
  chainspect inspect pallets

  # Plain per-pallet blocks
  chainspect inspect pallets --format text

  # JSON summaries
  chainspect inspect pallets --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegistry()
			if err != nil {
				return err
			}

			switch resolveFormat("table") {
			case "json":
				return outputJSON(cmd.OutOrStdout(), buildPalletSummaries(reg))
			case "text":
				metadata.NewPrinter(cmd.OutOrStdout()).Pallets(reg)
				return nil
			default:
				renderPalletTable(cmd.OutOrStdout(), reg)
				return nil
			}
		},
	}
}

func buildPalletSummaries(reg *metadata.Registry) []PalletSummary {
	pallets := reg.Pallets()
	summaries := make([]PalletSummary, len(pallets))
	for i, p := range pallets {
		summaries[i] = PalletSummary{
			Name:          p.Name,
			Index:         p.Index,
			StorageCount:  len(p.Storage),
			CallCount:     len(p.Calls),
			ConstantCount: len(p.Constants),
			EventCount:    len(reg.Events(p.Index)),
			ErrorCount:    len(reg.Errors(p.Index)),
		}
	}
	return summaries
}

func renderPalletTable(w io.Writer, reg *metadata.Registry) {
	table := ui.NewTable(w,
		[]string{"Pallet", "Index", "Storage", "Calls", "Constants", "Events", "Errors"},
		&ui.TableOptions{NoColor: noColor})
	for _, s := range buildPalletSummaries(reg) {
		table.AddRow(s.Name,
			fmt.Sprintf("%d", s.Index),
			fmt.Sprintf("%d", s.StorageCount),
			fmt.Sprintf("%d", s.CallCount),
			fmt.Sprintf("%d", s.ConstantCount),
			fmt.Sprintf("%d", s.EventCount),
			fmt.Sprintf("%d", s.ErrorCount))
	}
	table.Render()
}

// PalletDetail bundles one pallet with its event and error variants
type PalletDetail struct {
	Pallet metadata.PalletRecord   `json:"pallet"`
	Events []metadata.EventVariant `json:"events"`
	Errors []metadata.ErrorVariant `json:"errors"`
}

// newInspectPalletCommand creates the 'inspect pallet' command
func newInspectPalletCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pallet <name>",
		Short: "Show detailed information about a specific pallet",
		Long: `Show detailed information about a specific pallet.

Displays all storage items, calls, constants, events, and errors the pallet
declares.`,
		Example: `  # View details of the Balances pallet
  chainspect inspect pallet Balances

  # View details in JSON format
  chainspect inspect pallet Balances --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegistry()
			if err != nil {
				return err
			}

			pallet, ok := reg.Pallet(args[0])
			if !ok {
				return handlePalletNotFound(args[0], reg, cmd.OutOrStdout())
			}

			detail := PalletDetail{
				Pallet: pallet,
				Events: reg.Events(pallet.Index),
				Errors: reg.Errors(pallet.Index),
			}

			if resolveFormat("text") == "json" {
				return outputJSON(cmd.OutOrStdout(), detail)
			}

			renderPalletDetail(cmd.OutOrStdout(), detail)
			return nil
		},
	}
}

// handlePalletNotFound handles the case when a pallet is not found
func handlePalletNotFound(name string, reg *metadata.Registry, writer io.Writer) error {
	red := color.New(color.FgRed, color.Bold)
	yellow := color.New(color.FgYellow)

	red.Fprintf(writer, "Error: Pallet '%s' not found\n\n", name)

	yellow.Fprintln(writer, "Available pallets:")
	for _, p := range reg.Pallets() {
		fmt.Fprintf(writer, "  • %s\n", p.Name)
	}

	return fmt.Errorf("pallet not found: %s", name)
}

func renderPalletDetail(w io.Writer, detail PalletDetail) {
	bold := color.New(color.Bold)
	cyan := color.New(color.FgCyan)
	gray := color.New(color.Faint)

	bold.Fprintf(w, "%s (index %d)\n\n", detail.Pallet.Name, detail.Pallet.Index)

	if len(detail.Pallet.Storage) > 0 {
		cyan.Fprintf(w, "Storage (%d):\n", len(detail.Pallet.Storage))
		for _, s := range detail.Pallet.Storage {
			fmt.Fprintf(w, "  %s", s.Name)
			gray.Fprintf(w, "  %s, %s\n", s.Modifier, s.Type)
		}
		fmt.Fprintln(w)
	}

	if len(detail.Pallet.Calls) > 0 {
		cyan.Fprintf(w, "Calls (%d):\n", len(detail.Pallet.Calls))
		for _, c := range detail.Pallet.Calls {
			fmt.Fprintf(w, "  %s", c.Name)
			gray.Fprintf(w, "  index %d\n", c.Index)
		}
		fmt.Fprintln(w)
	}

	if len(detail.Pallet.Constants) > 0 {
		cyan.Fprintf(w, "Constants (%d):\n", len(detail.Pallet.Constants))
		for _, c := range detail.Pallet.Constants {
			fmt.Fprintf(w, "  %s", c.Name)
			gray.Fprintf(w, "  %s = %v\n", c.Type, c.Value)
		}
		fmt.Fprintln(w)
	}

	if len(detail.Events) > 0 {
		cyan.Fprintf(w, "Events (%d):\n", len(detail.Events))
		for _, e := range detail.Events {
			fmt.Fprintf(w, "  %s\n", e.Variant())
		}
		fmt.Fprintln(w)
	}

	if len(detail.Errors) > 0 {
		cyan.Fprintf(w, "Errors (%d):\n", len(detail.Errors))
		for _, e := range detail.Errors {
			fmt.Fprintf(w, "  %s", e.Name)
			if e.Description != "" {
				gray.Fprintf(w, "  %s", e.Description)
			}
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w)
	}
}

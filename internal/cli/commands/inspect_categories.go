package commands

import (
	"github.com/spf13/cobra"

	"github.com/chainspect/chainspect/runtime/metadata"
)

// PalletCalls groups the calls of one pallet for JSON output
type PalletCalls struct {
	Pallet string               `json:"pallet"`
	Index  uint8                `json:"index"`
	Calls  []metadata.CallEntry `json:"calls"`
}

// PalletConstants groups the constants of one pallet for JSON output
type PalletConstants struct {
	Pallet    string                   `json:"pallet"`
	Index     uint8                    `json:"index"`
	Constants []metadata.ConstantEntry `json:"constants"`
}

// PalletStorage groups the storage entries of one pallet for JSON output
type PalletStorage struct {
	Pallet  string                  `json:"pallet"`
	Index   uint8                   `json:"index"`
	Storage []metadata.StorageEntry `json:"storage"`
}

// PalletEvents groups the event variants of one pallet for JSON output
type PalletEvents struct {
	Pallet string                  `json:"pallet"`
	Index  uint8                   `json:"index"`
	Events []metadata.EventVariant `json:"events"`
}

// PalletErrors groups the error variants of one pallet for JSON output
type PalletErrors struct {
	Pallet string                  `json:"pallet"`
	Index  uint8                   `json:"index"`
	Errors []metadata.ErrorVariant `json:"errors"`
}

// newInspectCallsCommand creates the 'inspect calls' command
func newInspectCallsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "calls",
		Short: "List the calls of every pallet that has any",
		Long: `List the calls of every pallet that has any.

Pallets without calls are skipped. Each call is shown with its index.`,
		Example: `  # Calls of all pallets
  chainspect inspect calls

  # JSON output
  chainspect inspect calls --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegistry()
			if err != nil {
				return err
			}

			if resolveFormat("text") == "json" {
				groups := []PalletCalls{}
				for _, p := range reg.Pallets() {
					if len(p.Calls) == 0 {
						continue
					}
					groups = append(groups, PalletCalls{Pallet: p.Name, Index: p.Index, Calls: p.Calls})
				}
				return outputJSON(cmd.OutOrStdout(), groups)
			}

			metadata.NewPrinter(cmd.OutOrStdout()).PalletsWithCalls(reg)
			return nil
		},
	}
}

// newInspectConstantsCommand creates the 'inspect constants' command
func newInspectConstantsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "constants",
		Short: "List the constants of every pallet that has any",
		Long: `List the constants of every pallet that has any.

Pallets without constants are skipped. Each constant is shown with its type
and literal value bytes.`,
		Example: `  # Constants of all pallets
  chainspect inspect constants

  # JSON output
  chainspect inspect constants --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegistry()
			if err != nil {
				return err
			}

			if resolveFormat("text") == "json" {
				groups := []PalletConstants{}
				for _, p := range reg.Pallets() {
					if len(p.Constants) == 0 {
						continue
					}
					groups = append(groups, PalletConstants{Pallet: p.Name, Index: p.Index, Constants: p.Constants})
				}
				return outputJSON(cmd.OutOrStdout(), groups)
			}

			metadata.NewPrinter(cmd.OutOrStdout()).PalletsWithConstants(reg)
			return nil
		},
	}
}

// newInspectStorageCommand creates the 'inspect storage' command
func newInspectStorageCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "storage",
		Short: "List the storage items of every pallet that has any",
		Long: `List the storage items of every pallet that has any.

Pallets without storage are skipped. Each item is shown with its modifier,
type, and default bytes.`,
		Example: `  # Storage of all pallets
  chainspect inspect storage

  # JSON output
  chainspect inspect storage --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegistry()
			if err != nil {
				return err
			}

			if resolveFormat("text") == "json" {
				groups := []PalletStorage{}
				for _, p := range reg.Pallets() {
					if len(p.Storage) == 0 {
						continue
					}
					groups = append(groups, PalletStorage{Pallet: p.Name, Index: p.Index, Storage: p.Storage})
				}
				return outputJSON(cmd.OutOrStdout(), groups)
			}

			metadata.NewPrinter(cmd.OutOrStdout()).PalletsWithStorage(reg)
			return nil
		},
	}
}

// newInspectEventsCommand creates the 'inspect events' command
func newInspectEventsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "events",
		Short: "List the event variants of every pallet",
		Long: `List the event variants of every pallet.

Every pallet gets a section, including pallets that declare no events. Each
variant is shown with its structural shape.`,
		Example: `  # Events grouped per pallet
  chainspect inspect events

  # JSON output
  chainspect inspect events --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegistry()
			if err != nil {
				return err
			}

			if resolveFormat("text") == "json" {
				groups := []PalletEvents{}
				for _, p := range reg.Pallets() {
					groups = append(groups, PalletEvents{Pallet: p.Name, Index: p.Index, Events: reg.Events(p.Index)})
				}
				return outputJSON(cmd.OutOrStdout(), groups)
			}

			metadata.NewPrinter(cmd.OutOrStdout()).PalletsWithEvents(reg)
			return nil
		},
	}
}

// newInspectErrorsCommand creates the 'inspect errors' command
func newInspectErrorsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "errors",
		Short: "List the error variants of every pallet",
		Long: `List the error variants of every pallet.

Every pallet gets a section, including pallets that declare no errors. Each
variant is shown with its description.`,
		Example: `  # Errors grouped per pallet
  chainspect inspect errors

  # JSON output
  chainspect inspect errors --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegistry()
			if err != nil {
				return err
			}

			if resolveFormat("text") == "json" {
				groups := []PalletErrors{}
				for _, p := range reg.Pallets() {
					groups = append(groups, PalletErrors{Pallet: p.Name, Index: p.Index, Errors: reg.Errors(p.Index)})
				}
				return outputJSON(cmd.OutOrStdout(), groups)
			}

			metadata.NewPrinter(cmd.OutOrStdout()).PalletsWithErrors(reg)
			return nil
		},
	}
}

// Package metadata models the introspectable metadata of a modular runtime:
// a set of independently versioned pallets, each exposing storage items,
// callable operations, constants, events, and errors.
//
// # Overview
//
// The package defines plain, JSON-serializable schema types (PalletRecord,
// StorageEntry, CallEntry, ConstantEntry, EventVariant, ErrorVariant), a
// Registry that indexes them for fast lookup, and a Printer that renders the
// registry as human-readable text.
//
// A Registry is built once, by NewRegistry or DecodeJSON, and is immutable
// afterwards. All construction-time invariants (unique names, unique indices,
// consistent storage modifiers, no dangling event/error references) are
// validated up front; every read path is total and side-effect free, so any
// number of goroutines may query and render concurrently without
// synchronization.
//
// # Example Usage
//
//	reg, err := metadata.LoadFile("metadata.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, pallet := range reg.Pallets() {
//		fmt.Printf("%s (index %d)\n", pallet.Name, pallet.Index)
//	}
//	metadata.NewPrinter(os.Stdout).Overview(reg)
//
// Lookups by pallet index never fail: an index with no associated events or
// errors yields an empty slice, which is a valid, expected state for pallets
// that declare none.
package metadata

package metadata

import "fmt"

// Construction errors. All of them are detected by NewRegistry; no error can
// occur on a read path over a validated registry.

// DuplicateNameError reports a name or index collision: two pallets sharing
// a name or index, or two entries of the same category sharing a name or
// call index within one pallet.
type DuplicateNameError struct {
	Kind   string // colliding definition: "pallet", "pallet index", "storage", "call", "call index", "constant", "event", "error"
	Pallet string // owning pallet, empty for registry-level collisions
	Name   string // the colliding name (or stringified index)
}

func (e *DuplicateNameError) Error() string {
	if e.Pallet == "" {
		return fmt.Sprintf("duplicate %s %q", e.Kind, e.Name)
	}
	return fmt.Sprintf("duplicate %s %q in pallet %q", e.Kind, e.Name, e.Pallet)
}

// UnknownPalletIndexError reports an event or error variant referencing a
// pallet index not present among the registry's pallets.
type UnknownPalletIndexError struct {
	Section string // "event" or "error"
	Variant string // name of the dangling variant
	Index   uint8  // the unresolved pallet index
}

func (e *UnknownPalletIndexError) Error() string {
	return fmt.Sprintf("%s variant %q references unknown pallet index %d", e.Section, e.Variant, e.Index)
}

// InconsistentModifierError reports a Default-modifier storage entry lacking
// default bytes.
type InconsistentModifierError struct {
	Pallet string // owning pallet
	Entry  string // storage entry name
}

func (e *InconsistentModifierError) Error() string {
	return fmt.Sprintf("storage entry %q in pallet %q has Default modifier but no default value", e.Entry, e.Pallet)
}

package metadata

import (
	"fmt"
	"strings"
)

// StorageModifier determines whether absence of a stored value is a valid
// state (Optional) or implies a caller-visible default (Default).
type StorageModifier string

const (
	// ModifierOptional marks a storage entry whose value may be absent.
	ModifierOptional StorageModifier = "Optional"
	// ModifierDefault marks a storage entry that falls back to its default
	// bytes when no value is stored. Entries with this modifier must carry
	// default bytes; NewRegistry rejects the snapshot otherwise.
	ModifierDefault StorageModifier = "Default"
)

// TypeDescriptor identifies the declared type of a storage item, constant,
// or event field.
type TypeDescriptor struct {
	ID     uint32   `json:"id"`               // Type id in the runtime's type registry
	Path   []string `json:"path,omitempty"`   // Symbol path (e.g. ["pallet_balances", "AccountData"])
	Params []string `json:"params,omitempty"` // Type parameters, already rendered
}

// String renders the descriptor in a stable textual form. The output is
// deterministic and total for all constructible values.
func (t TypeDescriptor) String() string {
	if len(t.Path) == 0 {
		return fmt.Sprintf("#%d", t.ID)
	}
	s := strings.Join(t.Path, "::")
	if len(t.Params) > 0 {
		s += "<" + strings.Join(t.Params, ", ") + ">"
	}
	return fmt.Sprintf("%s(#%d)", s, t.ID)
}

// StorageEntry describes one named storage item of a pallet.
type StorageEntry struct {
	Name     string          `json:"name"`              // Unique within the pallet's storage
	Modifier StorageModifier `json:"modifier"`          // Optional or Default
	Type     TypeDescriptor  `json:"type"`              // Declared value type
	Default  []byte          `json:"default,omitempty"` // Default value bytes, required for Default modifier
}

// CallEntry describes one callable operation of a pallet.
type CallEntry struct {
	Name  string `json:"name"`  // Unique within the pallet's calls
	Index uint8  `json:"index"` // Call index, unique within the pallet, stable per snapshot
}

// ConstantEntry describes one named constant of a pallet.
type ConstantEntry struct {
	Name  string         `json:"name"`  // Unique within the pallet's constants
	Type  TypeDescriptor `json:"type"`  // Declared type
	Value []byte         `json:"value"` // Literal value bytes
}

// FieldDescriptor is one field of an event variant's shape.
type FieldDescriptor struct {
	Name string         `json:"name,omitempty"` // Field name, empty for tuple-style fields
	Type TypeDescriptor `json:"type"`           // Field type
}

// EventVariant is one case of a pallet's event enumeration.
type EventVariant struct {
	PalletIndex uint8             `json:"pallet_index"`     // Index of the owning pallet
	Name        string            `json:"name"`             // Variant name
	Fields      []FieldDescriptor `json:"fields,omitempty"` // Structural shape of the variant
}

// Variant renders the structural shape of the event in a stable textual
// form, e.g. `Transfer(from: #0, to: #0, amount: #4)`.
func (e EventVariant) Variant() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		if f.Name != "" {
			parts[i] = f.Name + ": " + f.Type.String()
		} else {
			parts[i] = f.Type.String()
		}
	}
	return e.Name + "(" + strings.Join(parts, ", ") + ")"
}

// ErrorVariant is one case of a pallet's error enumeration.
type ErrorVariant struct {
	PalletIndex uint8  `json:"pallet_index"`          // Index of the owning pallet
	Name        string `json:"name"`                  // Variant name
	Description string `json:"description,omitempty"` // Human-readable description, may be empty
}

// PalletRecord aggregates the metadata of one named, indexed module of the
// runtime. Entry slices preserve the order the entries appeared in the
// source description; rendering relies on that order for determinism.
type PalletRecord struct {
	Name      string          `json:"name"`                // Unique within the registry
	Index     uint8           `json:"index"`               // Unique within the registry, join key for events/errors
	Storage   []StorageEntry  `json:"storage,omitempty"`   // Storage items in source order
	Calls     []CallEntry     `json:"calls,omitempty"`     // Callable operations in source order
	Constants []ConstantEntry `json:"constants,omitempty"` // Constants in source order
}

// StorageItem finds a storage entry by name.
func (p PalletRecord) StorageItem(name string) (StorageEntry, bool) {
	for _, s := range p.Storage {
		if s.Name == name {
			return s, true
		}
	}
	return StorageEntry{}, false
}

// Call finds a call entry by name.
func (p PalletRecord) Call(name string) (CallEntry, bool) {
	for _, c := range p.Calls {
		if c.Name == name {
			return c, true
		}
	}
	return CallEntry{}, false
}

// Constant finds a constant entry by name.
func (p PalletRecord) Constant(name string) (ConstantEntry, bool) {
	for _, c := range p.Constants {
		if c.Name == name {
			return c, true
		}
	}
	return ConstantEntry{}, false
}

// Document is the decoded snapshot form a Registry is built from. It is
// produced by an external decoder (or unmarshalled from a JSON tooling
// snapshot) and validated as a whole by NewRegistry.
type Document struct {
	Version string         `json:"version,omitempty"` // Snapshot format version
	Pallets []PalletRecord `json:"pallets"`           // All pallets in source order
	Events  []EventVariant `json:"events,omitempty"`  // All event variants, grouped by pallet index
	Errors  []ErrorVariant `json:"errors,omitempty"`  // All error variants, grouped by pallet index
}

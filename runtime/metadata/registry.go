package metadata

import "strconv"

// Registry holds the validated metadata of one runtime snapshot and provides
// indexed access to it. It is built once by NewRegistry and never mutated
// afterwards, so all query methods are safe for concurrent use without
// synchronization.
type Registry struct {
	pallets []PalletRecord

	// Pre-computed indexes, built once during construction
	palletsByName  map[string]int
	palletsByIndex map[uint8]int
	eventsByPallet map[uint8][]EventVariant
	errorsByPallet map[uint8][]ErrorVariant
}

// NewRegistry validates a decoded snapshot and builds the derived lookup
// indexes. It fails with a DuplicateNameError, UnknownPalletIndexError, or
// InconsistentModifierError rather than hand out a registry that could
// silently merge or drop definitions. The input document is copied; later
// mutation of doc does not affect the returned registry.
func NewRegistry(doc *Document) (*Registry, error) {
	r := &Registry{
		pallets:        make([]PalletRecord, len(doc.Pallets)),
		palletsByName:  make(map[string]int, len(doc.Pallets)),
		palletsByIndex: make(map[uint8]int, len(doc.Pallets)),
		eventsByPallet: make(map[uint8][]EventVariant),
		errorsByPallet: make(map[uint8][]ErrorVariant),
	}

	for i, p := range doc.Pallets {
		if err := validatePallet(p); err != nil {
			return nil, err
		}
		if _, ok := r.palletsByName[p.Name]; ok {
			return nil, &DuplicateNameError{Kind: "pallet", Name: p.Name}
		}
		if _, ok := r.palletsByIndex[p.Index]; ok {
			return nil, &DuplicateNameError{Kind: "pallet index", Name: strconv.Itoa(int(p.Index))}
		}
		r.pallets[i] = copyPallet(p)
		r.palletsByName[p.Name] = i
		r.palletsByIndex[p.Index] = i
	}

	for _, ev := range doc.Events {
		if _, ok := r.palletsByIndex[ev.PalletIndex]; !ok {
			return nil, &UnknownPalletIndexError{Section: "event", Variant: ev.Name, Index: ev.PalletIndex}
		}
		for _, seen := range r.eventsByPallet[ev.PalletIndex] {
			if seen.Name == ev.Name {
				return nil, &DuplicateNameError{Kind: "event", Pallet: r.palletName(ev.PalletIndex), Name: ev.Name}
			}
		}
		ev.Fields = append([]FieldDescriptor(nil), ev.Fields...)
		r.eventsByPallet[ev.PalletIndex] = append(r.eventsByPallet[ev.PalletIndex], ev)
	}

	for _, errv := range doc.Errors {
		if _, ok := r.palletsByIndex[errv.PalletIndex]; !ok {
			return nil, &UnknownPalletIndexError{Section: "error", Variant: errv.Name, Index: errv.PalletIndex}
		}
		for _, seen := range r.errorsByPallet[errv.PalletIndex] {
			if seen.Name == errv.Name {
				return nil, &DuplicateNameError{Kind: "error", Pallet: r.palletName(errv.PalletIndex), Name: errv.Name}
			}
		}
		r.errorsByPallet[errv.PalletIndex] = append(r.errorsByPallet[errv.PalletIndex], errv)
	}

	return r, nil
}

// validatePallet checks per-pallet invariants: unique names per category,
// unique call indices, and default bytes present wherever the modifier
// requires them.
func validatePallet(p PalletRecord) error {
	storageNames := make(map[string]struct{}, len(p.Storage))
	for _, s := range p.Storage {
		if _, ok := storageNames[s.Name]; ok {
			return &DuplicateNameError{Kind: "storage", Pallet: p.Name, Name: s.Name}
		}
		storageNames[s.Name] = struct{}{}
		if s.Modifier == ModifierDefault && len(s.Default) == 0 {
			return &InconsistentModifierError{Pallet: p.Name, Entry: s.Name}
		}
	}

	callNames := make(map[string]struct{}, len(p.Calls))
	callIndices := make(map[uint8]struct{}, len(p.Calls))
	for _, c := range p.Calls {
		if _, ok := callNames[c.Name]; ok {
			return &DuplicateNameError{Kind: "call", Pallet: p.Name, Name: c.Name}
		}
		callNames[c.Name] = struct{}{}
		if _, ok := callIndices[c.Index]; ok {
			return &DuplicateNameError{Kind: "call index", Pallet: p.Name, Name: strconv.Itoa(int(c.Index))}
		}
		callIndices[c.Index] = struct{}{}
	}

	constantNames := make(map[string]struct{}, len(p.Constants))
	for _, c := range p.Constants {
		if _, ok := constantNames[c.Name]; ok {
			return &DuplicateNameError{Kind: "constant", Pallet: p.Name, Name: c.Name}
		}
		constantNames[c.Name] = struct{}{}
	}

	return nil
}

func copyPallet(p PalletRecord) PalletRecord {
	p.Storage = append([]StorageEntry(nil), p.Storage...)
	p.Calls = append([]CallEntry(nil), p.Calls...)
	p.Constants = append([]ConstantEntry(nil), p.Constants...)
	return p
}

func (r *Registry) palletName(index uint8) string {
	if i, ok := r.palletsByIndex[index]; ok {
		return r.pallets[i].Name
	}
	return ""
}

// Pallets returns all pallets in insertion order.
// Returns a copy to prevent external mutation.
func (r *Registry) Pallets() []PalletRecord {
	pallets := make([]PalletRecord, len(r.pallets))
	for i, p := range r.pallets {
		pallets[i] = copyPallet(p)
	}
	return pallets
}

// Pallet finds a pallet by name using the pre-computed index.
func (r *Registry) Pallet(name string) (PalletRecord, bool) {
	i, ok := r.palletsByName[name]
	if !ok {
		return PalletRecord{}, false
	}
	return copyPallet(r.pallets[i]), true
}

// PalletByIndex finds a pallet by its numeric index.
func (r *Registry) PalletByIndex(index uint8) (PalletRecord, bool) {
	i, ok := r.palletsByIndex[index]
	if !ok {
		return PalletRecord{}, false
	}
	return copyPallet(r.pallets[i]), true
}

// Events returns the event variants of the pallet with the given index, in
// source order. An index with no events yields an empty slice; absence is a
// valid state, not an error.
func (r *Registry) Events(palletIndex uint8) []EventVariant {
	events, ok := r.eventsByPallet[palletIndex]
	if !ok {
		return []EventVariant{}
	}
	result := make([]EventVariant, len(events))
	for i, ev := range events {
		ev.Fields = append([]FieldDescriptor(nil), ev.Fields...)
		result[i] = ev
	}
	return result
}

// Errors returns the error variants of the pallet with the given index, in
// source order. Symmetric to Events.
func (r *Registry) Errors(palletIndex uint8) []ErrorVariant {
	errors, ok := r.errorsByPallet[palletIndex]
	if !ok {
		return []ErrorVariant{}
	}
	result := make([]ErrorVariant, len(errors))
	copy(result, errors)
	return result
}

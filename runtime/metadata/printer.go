package metadata

import (
	"fmt"
	"io"
)

// Printer renders a Registry as human-readable text. Output goes to the
// injected writer, so callers can target the terminal, a log, or a buffer;
// rendering reads the registry but never mutates it, and the same registry
// always renders to byte-identical text.
//
// The output is for humans. Tooling that needs structured data should use
// the Registry accessors directly instead of parsing rendered text.
type Printer struct {
	w io.Writer
}

// NewPrinter creates a printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Overview renders a compact listing of every pallet: its name followed by
// the names of its storage items (s), calls (c), constants (cst), events
// (e), and errors (err).
func (p *Printer) Overview(r *Registry) {
	for _, pallet := range r.Pallets() {
		fmt.Fprintln(p.w, pallet.Name)
		for _, storage := range pallet.Storage {
			fmt.Fprintf(p.w, " s  %s\n", storage.Name)
		}
		for _, call := range pallet.Calls {
			fmt.Fprintf(p.w, " c  %s\n", call.Name)
		}
		for _, constant := range pallet.Constants {
			fmt.Fprintf(p.w, " cst  %s\n", constant.Name)
		}
		for _, event := range r.Events(pallet.Index) {
			fmt.Fprintf(p.w, " e  %s\n", event.Name)
		}
		for _, errv := range r.Errors(pallet.Index) {
			fmt.Fprintf(p.w, " err  %s\n", errv.Name)
		}
	}
	fmt.Fprintln(p.w)
}

// Pallets renders a header block with name and id for every pallet,
// including pallets with no entries at all.
func (p *Printer) Pallets(r *Registry) {
	for _, pallet := range r.Pallets() {
		fmt.Fprintf(p.w, "----------------- Pallet: '%s' -----------------\n\n", pallet.Name)
		fmt.Fprintf(p.w, "Pallet id: %d\n", pallet.Index)
	}
}

// PalletsWithCalls renders full call detail for every pallet that has at
// least one call. Pallets without calls are skipped.
func (p *Printer) PalletsWithCalls(r *Registry) {
	for _, pallet := range r.Pallets() {
		if len(pallet.Calls) == 0 {
			continue
		}
		fmt.Fprintf(p.w, "----------------- Calls for Pallet: %s -----------------\n\n", pallet.Name)
		for _, call := range pallet.Calls {
			fmt.Fprintf(p.w, "Name: %s, index %d\n", call.Name, call.Index)
		}
		fmt.Fprintln(p.w)
	}
}

// PalletsWithConstants renders full constant detail for every pallet that
// has at least one constant.
func (p *Printer) PalletsWithConstants(r *Registry) {
	for _, pallet := range r.Pallets() {
		if len(pallet.Constants) == 0 {
			continue
		}
		fmt.Fprintf(p.w, "----------------- Constants for Pallet: %s -----------------\n\n", pallet.Name)
		for _, constant := range pallet.Constants {
			fmt.Fprintf(p.w, "Name: %s, Type %s, Value %v\n", constant.Name, constant.Type, constant.Value)
		}
		fmt.Fprintln(p.w)
	}
}

// PalletsWithStorage renders full storage detail for every pallet that has
// at least one storage item.
func (p *Printer) PalletsWithStorage(r *Registry) {
	for _, pallet := range r.Pallets() {
		if len(pallet.Storage) == 0 {
			continue
		}
		fmt.Fprintf(p.w, "----------------- Storages for Pallet: %s -----------------\n\n", pallet.Name)
		for _, storage := range pallet.Storage {
			fmt.Fprintf(p.w, "Name: %s, Modifier: %s, Type %s, Default %v\n",
				storage.Name, storage.Modifier, storage.Type, storage.Default)
		}
		fmt.Fprintln(p.w)
	}
}

// PalletsWithEvents renders a labeled section for every pallet, including
// pallets with no events, followed by each event's name and variant shape.
func (p *Printer) PalletsWithEvents(r *Registry) {
	for _, pallet := range r.Pallets() {
		fmt.Fprintf(p.w, "----------------- Events for Pallet: %s -----------------\n\n", pallet.Name)
		for _, event := range r.Events(pallet.Index) {
			fmt.Fprintf(p.w, "Name: %s\n", event.Name)
			fmt.Fprintf(p.w, "Variant: %s\n\n", event.Variant())
		}
		fmt.Fprintln(p.w)
	}
}

// PalletsWithErrors renders a labeled section for every pallet, including
// pallets with no errors, followed by each error's name and description.
func (p *Printer) PalletsWithErrors(r *Registry) {
	for _, pallet := range r.Pallets() {
		fmt.Fprintf(p.w, "----------------- Errors for Pallet: %s -----------------\n\n", pallet.Name)
		for _, errv := range r.Errors(pallet.Index) {
			fmt.Fprintf(p.w, "Name: %s\n", errv.Name)
			fmt.Fprintf(p.w, "Description: %q\n\n", errv.Description)
		}
		fmt.Fprintln(p.w)
	}
}

package metadata

import (
	"encoding/json"
	"fmt"
	"os"
)

// DecodeJSON builds a validated Registry from a JSON tooling snapshot of a
// Document. Binary wire-format metadata is out of scope here; callers with
// raw chain metadata decode it to a Document first.
func DecodeJSON(data []byte) (*Registry, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal metadata: %w", err)
	}
	return NewRegistry(&doc)
}

// LoadFile reads a JSON snapshot from disk and builds a Registry from it.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata file: %w", err)
	}
	reg, err := DecodeJSON(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return reg, nil
}

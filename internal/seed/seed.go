// Package seed reads and writes YAML order lists and watches a seed file
// for changes.
package seed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"ordertable/internal/logging"
	"ordertable/internal/orders"

	"gopkg.in/yaml.v3"
)

// ErrEmpty is returned when a seed file holds no orders.
var ErrEmpty = errors.New("seed: no orders")

// Load reads a YAML list of orders from path.
func Load(path string) ([]orders.Order, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	list, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logging.Seed("loaded %d orders from %s", len(list), path)
	return list, nil
}

// Decode parses a YAML list of orders. Unknown keys are rejected so a typo
// in a column name is not silently dropped.
func Decode(data []byte) ([]orders.Order, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var list []orders.Order
	if err := dec.Decode(&list); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("failed to parse seed: %w", err)
	}
	if len(list) == 0 {
		return nil, ErrEmpty
	}
	for i, o := range list {
		if !o.Status.IsKnown() {
			logging.SeedDebug("order %d has unknown status %q", i, o.Status)
		}
	}
	return list, nil
}

// Save writes list to path as YAML. Record IDs are not written.
func Save(path string, list []orders.Order) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create seed directory: %w", err)
	}

	out := make([]orders.Order, len(list))
	for i, o := range list {
		o.ID = ""
		out[i] = o
	}

	data, err := yaml.Marshal(out)
	if err != nil {
		return fmt.Errorf("failed to marshal seed: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write seed: %w", err)
	}
	logging.Seed("wrote %d orders to %s", len(out), path)
	return nil
}

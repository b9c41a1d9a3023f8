// Package provider supplies the static records shown on the dashboard
// panels.
package provider

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed mock.yaml
var mockYAML []byte

// Provider hands out the dashboard's data. Callers must not mutate the
// returned snapshot.
type Provider interface {
	Snapshot() *Snapshot
}

// Static serves one snapshot loaded at startup.
type Static struct {
	snap *Snapshot
}

// NewStatic wraps an already built snapshot.
func NewStatic(snap *Snapshot) *Static {
	return &Static{snap: snap}
}

func (s *Static) Snapshot() *Snapshot { return s.snap }

// Embedded returns the built-in fixture.
func Embedded() (*Static, error) {
	snap, err := Parse(mockYAML)
	if err != nil {
		return nil, fmt.Errorf("parsing embedded data: %w", err)
	}
	return NewStatic(snap), nil
}

// Load reads a YAML data file. An empty path selects the embedded fixture.
func Load(path string) (*Static, error) {
	if path == "" {
		return Embedded()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading data file %s: %w", path, err)
	}
	snap, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing data file %s: %w", path, err)
	}
	return NewStatic(snap), nil
}

// Parse decodes a snapshot, rejecting unknown fields so typos in a data
// file surface at startup.
func Parse(data []byte) (*Snapshot, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var snap Snapshot
	if err := dec.Decode(&snap); err != nil {
		return nil, err
	}
	if snap.Security.Score < 0 || snap.Security.Score > 100 {
		return nil, fmt.Errorf("security score %d out of range 0-100", snap.Security.Score)
	}
	return &snap, nil
}

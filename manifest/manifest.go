// Package manifest describes kernel modules: which symbols a module
// exports and with what WASM-level signatures. Hosts parse a manifest
// before instantiating a module and verify the instantiated exports
// against it.
package manifest

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/kernlet-dev/kernlet-sdk/internal/abi"
)

// validate is a package-level singleton for better performance.
// Creating a new validator on each call is expensive; reusing is recommended.
var validate = validator.New()

// Export declares one exported symbol and its signature in WASM core value
// types. Core 1.0 allows at most one result.
type Export struct {
	Name    string   `json:"name" yaml:"name" validate:"required"`
	Params  []string `json:"params,omitempty" yaml:"params,omitempty" validate:"dive,oneof=i32 i64 f32 f64"`
	Results []string `json:"results,omitempty" yaml:"results,omitempty" validate:"max=1,dive,oneof=i32 i64 f32 f64"`
	Doc     string   `json:"doc,omitempty" yaml:"doc,omitempty"`
}

// Manifest is the root declaration of a kernel module.
type Manifest struct {
	Name        string   `json:"name" yaml:"name" validate:"required"`
	Version     string   `json:"version" yaml:"version" validate:"required,semver"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Exports     []Export `json:"exports" yaml:"exports" validate:"required,min=1,dive"`
}

// Parse unmarshals YAML bytes into a validated Manifest.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks the manifest against its declaration rules.
func (m *Manifest) Validate() error {
	if err := validate.Struct(m); err != nil {
		return fmt.Errorf("manifest validation failed: %w", err)
	}
	return nil
}

// Export returns the declaration of the named export.
func (m *Manifest) Export(name string) (Export, bool) {
	for _, exp := range m.Exports {
		if exp.Name == name {
			return exp, true
		}
	}
	return Export{}, false
}

// Default returns the canonical kernel manifest: the two compute exports
// and the staging allocator pair.
func Default() *Manifest {
	return &Manifest{
		Name:        "kernlet",
		Version:     "1.0.0",
		Description: "Minimal compute kernels exposed over the WASM C ABI",
		Exports: []Export{
			{
				Name:    abi.ExportCollatzSteps,
				Params:  []string{"i32"},
				Results: []string{"i32"},
				Doc:     "Steps for n to reach 1; does not return if the trajectory never reaches 1",
			},
			{
				Name:   abi.ExportBubbleSort,
				Params: []string{"i32", "i32"},
				Doc:    "In-place sort of count i32 elements at ptr",
			},
			{
				Name:    abi.ExportAllocate,
				Params:  []string{"i32"},
				Results: []string{"i32"},
				Doc:     "Reserve linear memory for host staging; 0 on failure",
			},
			{
				Name:   abi.ExportDeallocate,
				Params: []string{"i32", "i32"},
				Doc:    "Release a staging allocation; idempotent",
			},
		},
	}
}

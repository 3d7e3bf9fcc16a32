// Package gen drives code generation: it consumes a schema.Model and a
// Config, builds one emit.Writer per output unit, and writes the rendered
// units to disk.
package gen

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the immutable configuration of one generation run.
type Config struct {
	// Header is written at the top of every generated unit. Empty means
	// the default generated-code header.
	Header string `yaml:"header"`
	// Target is the output directory.
	Target string `yaml:"target"`
	// Suffix is appended to unit file names, e.g. ".go" or ".dart".
	Suffix string `yaml:"suffix"`
	// EmitDataClasses controls generation of data-holder types. When
	// false, every entity must carry a user-authored substitute type.
	EmitDataClasses bool `yaml:"data_classes"`
	// EmitCompanions controls generation of mutation-companion types.
	EmitCompanions bool `yaml:"companions"`
	// SnapshotVersion selects a stored-schema snapshot to generate
	// against instead of the live source model. Zero means live source.
	SnapshotVersion int `yaml:"snapshot_version"`
	// SnapshotPath is the snapshot file consulted when SnapshotVersion
	// is set.
	SnapshotPath string `yaml:"snapshot_path"`
	// ModularOutput splits output into one independently-importable unit
	// per entity instead of a single unit for the whole model.
	ModularOutput bool `yaml:"modular"`
	// FormatGo runs the goimports pass on units whose Suffix is ".go".
	FormatGo bool `yaml:"format_go"`
	// Aliases is the alias table: origin module -> local import alias
	// assigned in generated units. An empty alias imports unqualified.
	Aliases map[string]string `yaml:"aliases"`
	// Dialects is the ordered list of target dialects. Order is
	// significant: variant maps list entries in exactly this order.
	Dialects []string `yaml:"dialects"`
	// Workers bounds unit-level parallelism. Zero means GOMAXPROCS.
	Workers int `yaml:"workers"`
}

// DefaultHeader is stamped on generated units when no header is configured.
const DefaultHeader = "// Code generated by quill. DO NOT EDIT."

// LoadConfig reads a YAML generation config from path.
func LoadConfig(path string) (*Config, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, NewConfigError("file", path, err.Error())
	}
	c := &Config{}
	if err := yaml.Unmarshal(buf, c); err != nil {
		return nil, NewConfigError("file", path, err.Error())
	}
	return c, nil
}

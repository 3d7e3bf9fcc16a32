package gen

import (
	"maps"

	"github.com/quillgen/quill/dialect"
)

// Option configures code generation.
type Option func(*Config) error

// WithHeader sets the file header comment.
// The header is added at the top of each generated unit.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}

// WithTarget sets the output directory.
func WithTarget(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("Target", nil, "target directory cannot be empty")
		}
		c.Target = dir
		return nil
	}
}

// WithSuffix sets the generated file name suffix, e.g. ".go".
func WithSuffix(suffix string) Option {
	return func(c *Config) error {
		if suffix == "" {
			return NewConfigError("Suffix", nil, "suffix cannot be empty")
		}
		c.Suffix = suffix
		return nil
	}
}

// WithDialects sets the ordered list of target dialects.
// Variant maps in the output list entries in exactly this order.
func WithDialects(names ...string) Option {
	return func(c *Config) error {
		for _, n := range names {
			if !dialect.Valid(n) {
				return NewConfigError("Dialects", n, "unsupported dialect; use sqlite, mysql, or postgres")
			}
		}
		c.Dialects = append(c.Dialects, names...)
		return nil
	}
}

// WithAliases sets alias table entries: origin module -> local import alias.
func WithAliases(aliases map[string]string) Option {
	return func(c *Config) error {
		if c.Aliases == nil {
			c.Aliases = make(map[string]string)
		}
		maps.Copy(c.Aliases, aliases)
		return nil
	}
}

// WithDataClasses controls generation of data-holder types.
// When disabled, every entity must carry a user-authored substitute type.
func WithDataClasses(enabled bool) Option {
	return func(c *Config) error {
		c.EmitDataClasses = enabled
		return nil
	}
}

// WithCompanions controls generation of mutation-companion types.
func WithCompanions(enabled bool) Option {
	return func(c *Config) error {
		c.EmitCompanions = enabled
		return nil
	}
}

// WithSnapshot targets a stored-schema snapshot instead of live source.
// The snapshot at path must carry the given version.
func WithSnapshot(path string, version int) Option {
	return func(c *Config) error {
		if version <= 0 {
			return NewConfigError("SnapshotVersion", version, "snapshot version must be positive")
		}
		if path == "" {
			return NewConfigError("SnapshotPath", nil, "snapshot path cannot be empty")
		}
		c.SnapshotPath = path
		c.SnapshotVersion = version
		return nil
	}
}

// WithModularOutput splits output into one unit per entity.
func WithModularOutput(enabled bool) Option {
	return func(c *Config) error {
		c.ModularOutput = enabled
		return nil
	}
}

// WithFormatGo enables the goimports pass for ".go" units.
func WithFormatGo(enabled bool) Option {
	return func(c *Config) error {
		c.FormatGo = enabled
		return nil
	}
}

// WithWorkers bounds unit-level parallelism.
func WithWorkers(n int) Option {
	return func(c *Config) error {
		if n < 0 {
			return NewConfigError("Workers", n, "worker count cannot be negative")
		}
		c.Workers = n
		return nil
	}
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// NewConfig creates a new Config with the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{}
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewConfig creates a new Config with the given options.
// It panics if any option fails.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}

package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("reads a full yaml config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "quill.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
header: "// generated"
target: internal/db
suffix: .go
data_classes: true
companions: true
modular: true
snapshot_version: 2
snapshot_path: db/schema.snap
aliases:
  lib/core: core
  app/models: ""
dialects: [sqlite, postgres]
workers: 2
`), 0o644))

		c, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "// generated", c.Header)
		assert.Equal(t, "internal/db", c.Target)
		assert.Equal(t, ".go", c.Suffix)
		assert.True(t, c.EmitDataClasses)
		assert.True(t, c.EmitCompanions)
		assert.True(t, c.ModularOutput)
		assert.Equal(t, 2, c.SnapshotVersion)
		assert.Equal(t, "db/schema.snap", c.SnapshotPath)
		assert.Equal(t, map[string]string{"lib/core": "core", "app/models": ""}, c.Aliases)
		assert.Equal(t, []string{"sqlite", "postgres"}, c.Dialects)
		assert.Equal(t, 2, c.Workers)
	})

	t.Run("missing file is a config error", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.True(t, IsConfigError(err))
	})

	t.Run("malformed yaml is a config error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("dialects: [unterminated"), 0o644))
		_, err := LoadConfig(path)
		assert.True(t, IsConfigError(err))
	})
}

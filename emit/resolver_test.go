package emit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	r := NewResolver("app/db", map[string]string{
		"lib/core":   "core",
		"app/models": "",
	})

	t.Run("same-unit symbol spells bare", func(t *testing.T) {
		name, err := r.Resolve(Symbol("app/db", "User"))
		require.NoError(t, err)
		assert.Equal(t, "User", name)
	})

	t.Run("aliased module qualifies", func(t *testing.T) {
		name, err := r.Resolve(Symbol("lib/core", "Base"))
		require.NoError(t, err)
		assert.Equal(t, "core.Base", name)
	})

	t.Run("empty alias spells bare", func(t *testing.T) {
		name, err := r.Resolve(Symbol("app/models", "User"))
		require.NoError(t, err)
		assert.Equal(t, "User", name)
	})

	t.Run("unregistered module is a configuration error", func(t *testing.T) {
		_, err := r.Resolve(Symbol("lib/unknown", "Thing"))
		require.Error(t, err)
		assert.True(t, IsResolveError(err))

		var resolveErr *ResolveError
		require.ErrorAs(t, err, &resolveErr)
		assert.Equal(t, "app/db", resolveErr.Unit)
		assert.Equal(t, Symbol("lib/unknown", "Thing"), resolveErr.Symbol)
	})

	t.Run("unit accessor", func(t *testing.T) {
		assert.Equal(t, "app/db", r.Unit())
	})
}

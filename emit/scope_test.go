package emit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func underscore(n string) string { return n + "_" }

func TestUniqueName(t *testing.T) {
	t.Run("free name returned unchanged", func(t *testing.T) {
		s := newScope(nil)
		assert.Equal(t, "x", s.UniqueName("x", underscore))
	})

	t.Run("collisions escape by mutation", func(t *testing.T) {
		s := newScope(nil)
		assert.Equal(t, "x", s.UniqueName("x", underscore))
		assert.Equal(t, "x_", s.UniqueName("x", underscore))
		assert.Equal(t, "x__", s.UniqueName("x", underscore))
	})

	t.Run("winning name is recorded as used", func(t *testing.T) {
		s := newScope(nil)
		s.UniqueName("x", underscore)
		assert.Equal(t, "y", s.UniqueName("y", underscore))
		assert.Equal(t, "y_", s.UniqueName("y", underscore))
	})
}

func TestReserveNames(t *testing.T) {
	t.Run("reserved names are blocked without output", func(t *testing.T) {
		s := newScope(nil)
		s.ReserveNames("ctx", "tx")
		assert.Equal(t, "ctx_", s.UniqueName("ctx", underscore))
		assert.Equal(t, "tx_", s.UniqueName("tx", underscore))
		assert.Equal(t, "row", s.UniqueName("row", underscore))
	})
}

func TestScopeIsolation(t *testing.T) {
	t.Run("child reservation does not leak to parent or siblings", func(t *testing.T) {
		root := newScope(nil)
		child := root.Child()
		sibling := root.Child()

		child.ReserveNames("y")
		assert.Equal(t, "y", sibling.UniqueName("y", underscore))
		assert.Equal(t, "y", root.UniqueName("y", underscore))
	})

	t.Run("parent usage does not block child", func(t *testing.T) {
		root := newScope(nil)
		root.ReserveNames("y")
		child := root.Child()
		assert.Equal(t, "y", child.UniqueName("y", underscore))
	})
}

func TestNextID(t *testing.T) {
	t.Run("monotonic per scope", func(t *testing.T) {
		s := newScope(nil)
		assert.Equal(t, "tmp0", s.NextID("tmp"))
		assert.Equal(t, "tmp1", s.NextID("tmp"))
		assert.Equal(t, "v2", s.NextID("v"))
	})

	t.Run("independent across scopes", func(t *testing.T) {
		root := newScope(nil)
		root.NextID("tmp")
		assert.Equal(t, "tmp0", root.Child().NextID("tmp"))
	})
}

func TestRoot(t *testing.T) {
	t.Run("ascends to the topmost scope", func(t *testing.T) {
		root := newScope(nil)
		deep := root.Child().Child().Child()
		require.Same(t, root, deep.Root())
	})

	t.Run("root of the root is itself", func(t *testing.T) {
		root := newScope(nil)
		require.Same(t, root, root.Root())
	})
}

package emit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillgen/quill/dialect"
)

func newTestWriter(aliases map[string]string) *Writer {
	return NewWriter(NewResolver("app/db", aliases))
}

func TestRenderPreOrder(t *testing.T) {
	t.Run("sibling order is creation order, subtrees expand in place", func(t *testing.T) {
		w := newTestWriter(nil)

		l1 := w.Leaf()
		l1.Write("A")
		s := w.Child()
		l2 := w.Leaf()
		// Writes land after tree construction; order must not change.
		s.Leaf().Write("B")
		l2.Write("C")

		out, err := w.Render()
		require.NoError(t, err)
		assert.Equal(t, "ABC", out)
	})

	t.Run("late writes to early nodes keep their position", func(t *testing.T) {
		w := newTestWriter(nil)
		first := w.Leaf()
		w.Leaf().Write("second")
		first.Write("first|")

		out, err := w.Render()
		require.NoError(t, err)
		assert.Equal(t, "first|second", out)
	})

	t.Run("top-level declaration spawned from a nested scope renders last", func(t *testing.T) {
		w := newTestWriter(nil)
		body := w.Child().Child().Leaf()
		body.Write("body")
		// Mid-body registration of a new top-level buffer.
		w.Root().Leaf().Write("|toplevel")

		out, err := w.Render()
		require.NoError(t, err)
		assert.Equal(t, "body|toplevel", out)
	})
}

func TestHeaderImportsPrecedence(t *testing.T) {
	t.Run("header then imports precede everything", func(t *testing.T) {
		w := newTestWriter(nil)
		w.Leaf().Write("code")
		w.Imports().Write("imports|")
		w.Header().Write("header|")

		out, err := w.Render()
		require.NoError(t, err)
		assert.Equal(t, "header|imports|code", out)
	})
}

func TestRenderDeterminism(t *testing.T) {
	build := func() *Writer {
		w := newTestWriter(map[string]string{"lib/core": "core"})
		w.Header().WriteLine("// header")
		s := w.Child()
		b := s.Leaf()
		b.Write("type T ")
		b.WriteSymbol(Symbol("lib/core", "Base"))
		b.WriteLine("")
		require.NoError(t, b.WriteVariants(&dialect.Emitter{},
			[]string{dialect.SQLite, dialect.MySQL},
			func(d string) string { return "stmt for " + d }))
		return w
	}

	t.Run("structurally identical trees render byte-identically", func(t *testing.T) {
		a, err := build().Render()
		require.NoError(t, err)
		b, err := build().Render()
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("repeated render of one tree is stable", func(t *testing.T) {
		w := build()
		a, err := w.Render()
		require.NoError(t, err)
		b, err := w.Render()
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})
}

func TestRenderUnresolvedSymbol(t *testing.T) {
	t.Run("aborts with no partial output", func(t *testing.T) {
		w := newTestWriter(nil)
		w.Leaf().Write("before ")
		b := w.Leaf()
		b.WriteSymbol(Symbol("lib/unknown", "Thing"))

		out, err := w.Render()
		require.Error(t, err)
		assert.Empty(t, out)
		assert.True(t, errors.Is(err, ErrUnresolvedSymbol))
		assert.True(t, IsResolveError(err))
	})
}

func TestBufferWrites(t *testing.T) {
	t.Run("Write, WriteLine and Writef compose in append order", func(t *testing.T) {
		w := newTestWriter(nil)
		b := w.Leaf()
		b.Write("a")
		b.WriteLine("b")
		b.Writef("%s=%d", "n", 7)

		out, err := w.Render()
		require.NoError(t, err)
		assert.Equal(t, "ab\nn=7", out)
	})

	t.Run("WriteVariants embeds the rendered snippet", func(t *testing.T) {
		w := newTestWriter(nil)
		b := w.Leaf()
		require.NoError(t, b.WriteVariants(&dialect.Emitter{},
			[]string{dialect.SQLite},
			func(string) string { return "SELECT 1" }))

		out, err := w.Render()
		require.NoError(t, err)
		assert.Equal(t, "SELECT 1", out)
	})

	t.Run("WriteVariants with no dialects fails and appends nothing", func(t *testing.T) {
		w := newTestWriter(nil)
		b := w.Leaf()
		err := b.WriteVariants(&dialect.Emitter{}, nil, func(string) string { return "" })
		require.ErrorIs(t, err, dialect.ErrNoVariants)

		out, err := w.Render()
		require.NoError(t, err)
		assert.Empty(t, out)
	})
}

package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelEntity(t *testing.T) {
	m := &Model{
		Module: "app/db",
		Entities: []*Entity{
			{Name: "user"},
			{Name: "post"},
		},
	}

	t.Run("finds by declared name", func(t *testing.T) {
		e := m.Entity("post")
		require.NotNil(t, e)
		assert.Equal(t, "post", e.Name)
	})

	t.Run("missing entity is nil", func(t *testing.T) {
		assert.Nil(t, m.Entity("comment"))
	})
}

func TestQueryStatementFor(t *testing.T) {
	q := &Query{
		Name: "by_name",
		SQL:  "SELECT * FROM users WHERE name = ?",
		DialectSQL: map[string]string{
			"postgres": "SELECT * FROM users WHERE name = $1",
		},
	}

	t.Run("override wins for its dialect", func(t *testing.T) {
		assert.Equal(t, "SELECT * FROM users WHERE name = $1", q.StatementFor("postgres"))
	})

	t.Run("other dialects fall back to the shared text", func(t *testing.T) {
		assert.Equal(t, "SELECT * FROM users WHERE name = ?", q.StatementFor("sqlite"))
	})

	t.Run("nil override map falls back", func(t *testing.T) {
		q := &Query{SQL: "SELECT 1"}
		assert.Equal(t, "SELECT 1", q.StatementFor("mysql"))
	})
}

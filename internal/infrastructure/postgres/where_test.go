package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWhere_NumeraPlaceholders(t *testing.T) {
	var w where
	assert.Equal(t, "", w.String())

	w.add("establishment_id = $%d", "e1")
	w.add("status = $%d", "s1")
	w.add("order_date >= $%d", "2023-01-01")

	assert.Equal(t, " WHERE establishment_id = $1 AND status = $2 AND order_date >= $3", w.String())
	assert.Equal(t, []any{"e1", "s1", "2023-01-01"}, w.args)
}

func TestNullIfEmpty(t *testing.T) {
	assert.Nil(t, nullIfEmpty(""))
	v := nullIfEmpty("x")
	if assert.NotNil(t, v) {
		assert.Equal(t, "x", *v)
	}
}

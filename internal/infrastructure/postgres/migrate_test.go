package postgres

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_ParesUpDown(t *testing.T) {
	ups, err := fs.Glob(migrationsFS, "migrations/*.up.sql")
	require.NoError(t, err)
	downs, err := fs.Glob(migrationsFS, "migrations/*.down.sql")
	require.NoError(t, err)

	assert.Len(t, ups, 2)
	assert.Len(t, downs, len(ups))
}

func TestMigrations_VendedorEliminadoNoBloqueaPedidos(t *testing.T) {
	raw, err := fs.ReadFile(migrationsFS, "migrations/000002_orders_user_fk.up.sql")
	require.NoError(t, err)
	sql := string(raw)

	assert.Contains(t, sql, "REFERENCES users (id) ON DELETE SET NULL")
	assert.Contains(t, sql, "DROP CONSTRAINT IF EXISTS orders_user_id_fkey")
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, isForeignKeyViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isForeignKeyViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isForeignKeyViolation(errors.New("boom")))
}

package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sql.Open não disca; dá pra validar o pool sem um Postgres de pé.
func TestConfigurePool(t *testing.T) {
	d, err := sql.Open("postgres", "postgres://localhost:5433/ignored?sslmode=disable")
	require.NoError(t, err)
	defer d.Close()

	configurePool(d)

	assert.Equal(t, 8, d.Stats().MaxOpenConnections)
}

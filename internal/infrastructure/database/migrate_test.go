package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPgx5URL(t *testing.T) {
	assert.Equal(t, "pgx5://u:p@db:5432/doctors?sslmode=disable", pgx5URL("postgres://u:p@db:5432/doctors?sslmode=disable"))
	assert.Equal(t, "pgx5://u@db/doctors", pgx5URL("postgresql://u@db/doctors"))
	assert.Equal(t, "pgx5://already", pgx5URL("pgx5://already"))
}

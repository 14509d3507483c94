package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_Embedded(t *testing.T) {
	files, err := fs.Glob(Migrations, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for i, name := range files {
		version, err := goose.NumericComponent(name)
		require.NoError(t, err, name)
		assert.Equal(t, int64(i+1), version, "migration versions must be contiguous")

		body, err := fs.ReadFile(Migrations, name)
		require.NoError(t, err)
		assert.True(t, strings.Contains(string(body), "-- +goose Up"), name)
		assert.True(t, strings.Contains(string(body), "-- +goose Down"), name)
	}
}

package database

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceURL(t *testing.T) {
	assert.Equal(t, "file://migrations", SourceURL("migrations"))
	assert.Equal(t, "file:///srv/app/migrations", SourceURL("/srv/app/migrations"))
	assert.Equal(t, "file://other", SourceURL("file://other"))
}

func TestRunMigrations_UnreachableDatabase(t *testing.T) {
	// sql.Open is lazy; the failure surfaces on Ping.
	err := RunMigrations(slog.New(slog.NewTextHandler(io.Discard, nil)), "postgres://nobody@127.0.0.1:1/none?connect_timeout=1", "migrations", Up)
	require.Error(t, err)
}

func TestMigrationFilesArePaired(t *testing.T) {
	entries, err := os.ReadDir(filepath.Join("..", "..", "migrations"))
	require.NoError(t, err)

	ups, downs := map[string]bool{}, map[string]bool{}
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		}
	}
	require.NotEmpty(t, ups)

	var versions []string
	for v := range ups {
		assert.True(t, downs[v], "missing down migration for %s", v)
		versions = append(versions, v)
	}
	assert.Len(t, downs, len(ups))
	sort.Strings(versions)
	assert.True(t, strings.HasPrefix(versions[0], "000001_"))
}

package migrations

import (
	"io/fs"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaFilesArePaired(t *testing.T) {
	ups, err := fs.Glob(FS, "*.up.sql")
	require.NoError(t, err)
	downs, err := fs.Glob(FS, "*.down.sql")
	require.NoError(t, err)
	require.NotEmpty(t, ups)
	assert.Len(t, downs, len(ups))
}

func TestForeignKeysCascadeOnDelete(t *testing.T) {
	raw, err := fs.ReadFile(FS, "000001_init_schema.up.sql")
	require.NoError(t, err)
	schema := string(raw)

	cases := []struct {
		column string
		parent string
	}{
		{"kelas_id", "kelas"},
		{"siswa_id", "siswa"},
		{"data_pelanggaran_id", "data_pelanggaran"},
		{"guru_id", "guru"},
	}
	for _, tc := range cases {
		pattern := regexp.MustCompile(`(?m)^\s*` + tc.column + `\s+BIGINT\s+NOT NULL\s+REFERENCES\s+` + tc.parent + `\s*\(id\)\s+ON DELETE CASCADE`)
		assert.Regexp(t, pattern, schema, "%s must cascade from %s", tc.column, tc.parent)
	}
}
